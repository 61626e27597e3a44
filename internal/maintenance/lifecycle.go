package maintenance

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/skyfleetdev/airmaint/internal/models"
)

// Initialize bootstraps maintenance schedules for a newly onboarded
// aircraft: one schedule per active trigger of the default program for the
// aircraft's model. An aircraft whose model has no default program gets an
// empty schedule list, not an error.
func (s *Service) Initialize(ctx context.Context, aircraftID string) ([]models.MaintenanceSchedule, error) {
	ac, err := s.aircraft.FindAircraftByID(ctx, aircraftID)
	if err != nil {
		return nil, fmt.Errorf("aircraft %s: %w", aircraftID, err)
	}

	program, err := s.programs.FindDefaultProgramForModel(ctx, ac.Model)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.MaintenanceSchedule{}, nil
		}
		return nil, fmt.Errorf("failed to resolve program for model %s: %w", ac.Model, err)
	}
	if program == nil {
		return []models.MaintenanceSchedule{}, nil
	}

	triggers, err := s.triggers.FindTriggersByProgramID(ctx, program.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to load triggers for program %s: %w", program.Name, err)
	}

	schedules := []models.MaintenanceSchedule{}
	for i := range triggers {
		trigger := &triggers[i]
		if !trigger.IsActive {
			continue
		}
		calcResult := s.calc.Calculate(trigger, UsageContext{Aircraft: ac})
		schedules = append(schedules, models.MaintenanceSchedule{
			AircraftID: ac.ID,
			TriggerID:  trigger.ID,
			Status:     seedStatus(calcResult.Status),
			DueDate:    calcResult.DueDate,
			DueAtValue: calcResult.DueAtValue,
			IsActive:   true,
		})
	}
	if len(schedules) == 0 {
		return []models.MaintenanceSchedule{}, nil
	}

	created, err := s.schedules.InsertSchedules(ctx, schedules)
	if err != nil {
		return nil, fmt.Errorf("failed to create schedules: %w", err)
	}

	log.WithFields(log.Fields{
		"aircraft": ac.RegistrationNumber,
		"program":  program.Name,
		"count":    len(created),
	}).Info("maintenance schedules initialized")

	return created, nil
}

// Complete marks a schedule COMPLETED and immediately creates its successor
// so the recurring obligation continues. When no completion value is given,
// it is inferred from the aircraft's usage counter matching the trigger type;
// calendar-based triggers have no inferred value.
func (s *Service) Complete(ctx context.Context, scheduleID string, completedAtValue *float64) (*models.MaintenanceSchedule, error) {
	schedule, err := s.schedules.FindScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("schedule %s: %w", scheduleID, err)
	}
	trigger, err := s.triggers.FindTriggerByID(ctx, schedule.TriggerID.Hex())
	if err != nil {
		return nil, fmt.Errorf("trigger %s: %w", schedule.TriggerID.Hex(), err)
	}
	ac, err := s.aircraft.FindAircraftByID(ctx, schedule.AircraftID.Hex())
	if err != nil {
		return nil, fmt.Errorf("aircraft %s: %w", schedule.AircraftID.Hex(), err)
	}

	usage := s.usageContext(ctx, ac, schedule)
	if completedAtValue == nil {
		completedAtValue = inferCompletionValue(trigger.Type, ac, usage.Component)
	}

	now := s.calc.now()
	completed := models.ScheduleCompleted
	update := models.ScheduleUpdate{
		Status:               &completed,
		LastCompletedAt:      &now,
		LastCompletedAtValue: completedAtValue,
	}
	if err := s.schedules.UpdateSchedule(ctx, scheduleID, update); err != nil {
		return nil, fmt.Errorf("failed to complete schedule %s: %w", scheduleID, err)
	}

	// Roll the obligation forward from the new completion baseline.
	usage.LastCompletedAt = &now
	usage.LastCompletedAtValue = completedAtValue
	calcResult := s.calc.Calculate(trigger, usage)

	successor := models.MaintenanceSchedule{
		AircraftID:           schedule.AircraftID,
		TriggerID:            schedule.TriggerID,
		ComponentID:          schedule.ComponentID,
		Status:               seedStatus(calcResult.Status),
		DueDate:              calcResult.DueDate,
		DueAtValue:           calcResult.DueAtValue,
		LastCompletedAt:      &now,
		LastCompletedAtValue: completedAtValue,
		IsActive:             true,
	}
	created, err := s.schedules.InsertSchedule(ctx, successor)
	if err != nil {
		return nil, fmt.Errorf("schedule %s completed but successor creation failed: %w", scheduleID, err)
	}

	log.WithFields(log.Fields{
		"aircraft":  ac.RegistrationNumber,
		"trigger":   trigger.Name,
		"successor": created.ID.Hex(),
	}).Info("schedule completed")

	return created, nil
}

// seedStatus maps a fresh calculation onto an initial schedule status.
func seedStatus(calc CalcStatus) models.ScheduleStatus {
	switch calc {
	case StatusWarning:
		return models.ScheduleWarning
	case StatusDue:
		return models.ScheduleDue
	case StatusOverdue:
		return models.ScheduleOverdue
	default:
		return models.ScheduleScheduled
	}
}

// inferCompletionValue picks the usage counter matching the trigger type.
func inferCompletionValue(triggerType models.TriggerType, ac *models.Aircraft, component *models.Component) *float64 {
	var v float64
	switch triggerType {
	case models.TriggerFlightHours:
		v = ac.TotalFlightHours
	case models.TriggerFlightCycles:
		v = float64(ac.TotalFlightCycles)
	case models.TriggerBatteryCycles:
		if component == nil {
			return nil
		}
		v = float64(component.BatteryCycles)
	default:
		return nil
	}
	return &v
}
