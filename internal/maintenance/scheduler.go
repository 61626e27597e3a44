package maintenance

import (
	"context"
	"errors"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/skyfleetdev/airmaint/internal/models"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrAircraftInactive = errors.New("aircraft is not active")
)

// defaultFleetBatch bounds how many aircraft one run processes.
const defaultFleetBatch = 100

// Service is the scheduling engine. It owns schedule status transitions;
// everything it reads (aircraft, components, triggers) is somebody else's
// record and only schedules and work orders are ever written.
type Service struct {
	aircraft   AircraftSource
	components ComponentSource
	programs   ProgramSource
	triggers   TriggerSource
	schedules  ScheduleStore
	workOrders WorkOrderStore
	calc       *Calculator
	fleetBatch int
}

// NewService creates a scheduling service over the given collaborators.
func NewService(
	aircraft AircraftSource,
	components ComponentSource,
	programs ProgramSource,
	triggers TriggerSource,
	schedules ScheduleStore,
	workOrders WorkOrderStore,
	calc *Calculator,
) *Service {
	if calc == nil {
		calc = NewCalculator()
	}
	return &Service{
		aircraft:   aircraft,
		components: components,
		programs:   programs,
		triggers:   triggers,
		schedules:  schedules,
		workOrders: workOrders,
		calc:       calc,
		fleetBatch: defaultFleetBatch,
	}
}

// Calculate exposes the standalone calculator for preview use. No
// persistence side effects.
func (s *Service) Calculate(trigger *models.MaintenanceTrigger, usage UsageContext) TriggerCalculationResult {
	return s.calc.Calculate(trigger, usage)
}

// Run executes one fleet-wide scheduling pass. Per-aircraft failures are
// collected into the result's Errors without aborting the rest of the run;
// only a failure to list the fleet short-circuits. Re-running with unchanged
// usage is a no-op on persisted statuses because the calculator is pure.
func (s *Service) Run(ctx context.Context) RunResult {
	result := RunResult{Alerts: []Alert{}, Errors: []string{}}

	fleet, err := s.aircraft.ListActiveAircraft(ctx, s.fleetBatch)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("failed to list aircraft: %v", err))
		return result
	}

	for i := range fleet {
		if err := ctx.Err(); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("run stopped: %v", err))
			break
		}
		ac := &fleet[i]
		if err := s.processAircraft(ctx, ac, &result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("aircraft %s: %v", ac.RegistrationNumber, err))
		}
	}

	log.WithFields(log.Fields{
		"schedules_processed": result.SchedulesProcessed,
		"to_due":              result.ToDue,
		"to_overdue":          result.ToOverdue,
		"alerts":              len(result.Alerts),
		"errors":              len(result.Errors),
	}).Info("scheduler run finished")

	return result
}

// processAircraft evaluates every active, non-terminal schedule of one
// aircraft: calculate, transition, persist on change, collect alerts. The
// schedule update is written before its alert is appended so an alert always
// reflects the persisted decision.
func (s *Service) processAircraft(ctx context.Context, ac *models.Aircraft, result *RunResult) error {
	schedules, err := s.schedules.FindSchedulesByAircraftID(ctx, ac.ID.Hex())
	if err != nil {
		return fmt.Errorf("failed to load schedules: %w", err)
	}

	for i := range schedules {
		schedule := &schedules[i]
		if !schedule.IsActive || schedule.Status.IsTerminal() {
			continue
		}

		trigger, err := s.triggers.FindTriggerByID(ctx, schedule.TriggerID.Hex())
		if err != nil || trigger == nil || !trigger.IsActive {
			// A missing or inactive trigger is not this aircraft's
			// problem; skip the schedule silently.
			continue
		}

		calcResult := s.calc.Calculate(trigger, s.usageContext(ctx, ac, schedule))
		result.SchedulesProcessed++

		next, changed := NextStatus(schedule.Status, calcResult.Status)
		if changed {
			update := models.ScheduleUpdate{
				Status:     &next,
				DueDate:    calcResult.DueDate,
				DueAtValue: calcResult.DueAtValue,
			}
			if err := s.schedules.UpdateSchedule(ctx, schedule.ID.Hex(), update); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("schedule %s: failed to update status: %v", schedule.ID.Hex(), err))
				continue
			}
			switch next {
			case models.ScheduleDue:
				result.ToDue++
			case models.ScheduleOverdue:
				result.ToOverdue++
			}
		}

		if calcResult.Status != StatusOK {
			result.Alerts = append(result.Alerts, newAlert(schedule, ac, calcResult))
		}
	}

	return nil
}

// usageContext assembles the calculation input for one schedule. Component
// lookup failures degrade to a nil component rather than failing the pass.
func (s *Service) usageContext(ctx context.Context, ac *models.Aircraft, schedule *models.MaintenanceSchedule) UsageContext {
	usage := UsageContext{
		Aircraft:             ac,
		LastCompletedAt:      schedule.LastCompletedAt,
		LastCompletedAtValue: schedule.LastCompletedAtValue,
	}
	if schedule.ComponentID != nil && s.components != nil {
		component, err := s.components.FindComponentByID(ctx, schedule.ComponentID.Hex())
		if err != nil {
			log.WithError(err).WithField("component_id", schedule.ComponentID.Hex()).
				Warn("component lookup failed, calculating without it")
		} else {
			usage.Component = component
		}
	}
	return usage
}

// Alerts recomputes calculation results live, scoped to one aircraft or the
// whole active fleet, and returns non-OK results filtered by the optional
// type allow-list, capped at filter.Limit, ordered OVERDUE, DUE, WARNING.
func (s *Service) Alerts(ctx context.Context, filter AlertFilter) ([]Alert, error) {
	var fleet []models.Aircraft
	if filter.AircraftID != "" {
		ac, err := s.aircraft.FindAircraftByID(ctx, filter.AircraftID)
		if err != nil {
			return nil, fmt.Errorf("aircraft %s: %w", filter.AircraftID, err)
		}
		fleet = []models.Aircraft{*ac}
	} else {
		var err error
		fleet, err = s.aircraft.ListActiveAircraft(ctx, s.fleetBatch)
		if err != nil {
			return nil, fmt.Errorf("failed to list aircraft: %w", err)
		}
	}

	allowed := map[CalcStatus]bool{}
	for _, t := range filter.Types {
		allowed[t] = true
	}

	alerts := []Alert{}
collect:
	for i := range fleet {
		ac := &fleet[i]
		schedules, err := s.schedules.FindSchedulesByAircraftID(ctx, ac.ID.Hex())
		if err != nil {
			log.WithError(err).WithField("aircraft", ac.RegistrationNumber).
				Warn("skipping aircraft in alert query")
			continue
		}
		for j := range schedules {
			schedule := &schedules[j]
			if !schedule.IsActive || schedule.Status.IsTerminal() {
				continue
			}
			trigger, err := s.triggers.FindTriggerByID(ctx, schedule.TriggerID.Hex())
			if err != nil || trigger == nil || !trigger.IsActive {
				continue
			}
			calcResult := s.calc.Calculate(trigger, s.usageContext(ctx, ac, schedule))
			if calcResult.Status == StatusOK {
				continue
			}
			if len(allowed) > 0 && !allowed[calcResult.Status] {
				continue
			}
			alerts = append(alerts, newAlert(schedule, ac, calcResult))
			if filter.Limit > 0 && len(alerts) >= filter.Limit {
				break collect
			}
		}
	}

	sortAlerts(alerts)
	return alerts, nil
}

// alertRank orders alert urgency; lower sorts first.
var alertRank = map[CalcStatus]int{
	StatusOverdue: 0,
	StatusDue:     1,
	StatusWarning: 2,
}

// sortAlerts orders alerts OVERDUE, DUE, WARNING, stable within each group.
func sortAlerts(alerts []Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return alertRank[alerts[i].Type] < alertRank[alerts[j].Type]
	})
}

func newAlert(schedule *models.MaintenanceSchedule, ac *models.Aircraft, calc TriggerCalculationResult) Alert {
	return Alert{
		ScheduleID:   schedule.ID.Hex(),
		AircraftID:   ac.ID.Hex(),
		Registration: ac.RegistrationNumber,
		TriggerID:    calc.TriggerID,
		TriggerName:  calc.TriggerName,
		Type:         calc.Status,
		Message:      alertMessage(ac, calc),
		Calculation:  calc,
	}
}

func alertMessage(ac *models.Aircraft, calc TriggerCalculationResult) string {
	switch calc.Status {
	case StatusOverdue:
		return fmt.Sprintf("%s on %s is overdue", calc.TriggerName, ac.RegistrationNumber)
	case StatusDue:
		return fmt.Sprintf("%s on %s is due", calc.TriggerName, ac.RegistrationNumber)
	default:
		return fmt.Sprintf("%s on %s is at %.0f%% of its interval", calc.TriggerName, ac.RegistrationNumber, calc.PercentageUsed)
	}
}
