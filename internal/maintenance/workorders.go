package maintenance

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/skyfleetdev/airmaint/internal/models"
)

// CreateWorkOrdersForDue scans schedules in DUE or OVERDUE status that have
// no linked work order and raises one for each, flipping the schedule to
// IN_PROGRESS. Per-schedule failures are logged and skipped so one bad
// record cannot stall the rest of the queue. With autoAssign set, the order
// is assigned to the trigger's required role.
func (s *Service) CreateWorkOrdersForDue(ctx context.Context, autoAssign bool) ([]models.WorkOrder, error) {
	due, err := s.schedules.FindDueWithoutWorkOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find due schedules: %w", err)
	}

	created := []models.WorkOrder{}
	for i := range due {
		schedule := &due[i]
		order, err := s.createWorkOrder(ctx, schedule, autoAssign)
		if err != nil {
			log.WithError(err).WithField("schedule_id", schedule.ID.Hex()).
				Warn("skipping work order creation")
			continue
		}
		if order != nil {
			created = append(created, *order)
		}
	}

	if len(created) > 0 {
		log.WithField("count", len(created)).Info("work orders created")
	}
	return created, nil
}

// createWorkOrder raises one work order for a due schedule. A missing
// trigger or aircraft yields (nil, nil): the schedule is skipped, not failed.
func (s *Service) createWorkOrder(ctx context.Context, schedule *models.MaintenanceSchedule, autoAssign bool) (*models.WorkOrder, error) {
	trigger, err := s.triggers.FindTriggerByID(ctx, schedule.TriggerID.Hex())
	if err != nil || trigger == nil {
		return nil, nil
	}
	ac, err := s.aircraft.FindAircraftByID(ctx, schedule.AircraftID.Hex())
	if err != nil || ac == nil {
		return nil, nil
	}

	orderNumber, err := s.workOrders.GenerateOrderNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate order number: %w", err)
	}

	order := models.WorkOrder{
		OrderNumber: orderNumber,
		Title:       fmt.Sprintf("%s - %s", trigger.Name, ac.RegistrationNumber),
		Description: trigger.Description,
		Type:        models.WorkOrderTypeScheduled,
		Status:      models.WorkOrderStatusPending,
		Priority:    trigger.Priority,
		ScheduleID:  schedule.ID,
		AircraftID:  schedule.AircraftID,
		TriggerID:   schedule.TriggerID,
	}
	if autoAssign {
		order.AssignedTo = trigger.RequiredRole
	}

	saved, err := s.workOrders.InsertWorkOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to create work order: %w", err)
	}

	inProgress := models.ScheduleInProgress
	update := models.ScheduleUpdate{
		Status:      &inProgress,
		WorkOrderID: &saved.ID,
	}
	if autoAssign {
		update.AssignedTo = &saved.AssignedTo
	}
	if err := s.schedules.UpdateSchedule(ctx, schedule.ID.Hex(), update); err != nil {
		return nil, fmt.Errorf("work order %s created but schedule link failed: %w", saved.OrderNumber, err)
	}

	return saved, nil
}
