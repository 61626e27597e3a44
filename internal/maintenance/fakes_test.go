package maintenance

import (
	"context"
	"fmt"

	"github.com/skyfleetdev/airmaint/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeFleet is an in-memory implementation of every collaborator interface,
// used to drive the engine without MongoDB.
type fakeFleet struct {
	aircraft   []models.Aircraft
	components map[string]*models.Component
	programs   map[string]*models.MaintenanceProgram // keyed by aircraft model
	triggers   map[string]*models.MaintenanceTrigger
	schedules  []*models.MaintenanceSchedule
	workOrders []models.WorkOrder

	listErr          error
	scheduleLoadErrs map[string]error // aircraft id -> error
	orderSeq         int
	updateCount      int
}

func newFakeFleet() *fakeFleet {
	return &fakeFleet{
		components:       map[string]*models.Component{},
		programs:         map[string]*models.MaintenanceProgram{},
		triggers:         map[string]*models.MaintenanceTrigger{},
		scheduleLoadErrs: map[string]error{},
	}
}

func (f *fakeFleet) ListActiveAircraft(ctx context.Context, limit int) ([]models.Aircraft, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if limit > 0 && len(f.aircraft) > limit {
		return f.aircraft[:limit], nil
	}
	return f.aircraft, nil
}

func (f *fakeFleet) FindAircraftByID(ctx context.Context, id string) (*models.Aircraft, error) {
	for i := range f.aircraft {
		if f.aircraft[i].ID.Hex() == id {
			ac := f.aircraft[i]
			return &ac, nil
		}
	}
	return nil, fmt.Errorf("aircraft %s: %w", id, ErrNotFound)
}

func (f *fakeFleet) FindComponentByID(ctx context.Context, id string) (*models.Component, error) {
	if c, ok := f.components[id]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("component %s: %w", id, ErrNotFound)
}

func (f *fakeFleet) FindDefaultProgramForModel(ctx context.Context, model string) (*models.MaintenanceProgram, error) {
	if p, ok := f.programs[model]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("program for model %s: %w", model, ErrNotFound)
}

func (f *fakeFleet) FindTriggerByID(ctx context.Context, id string) (*models.MaintenanceTrigger, error) {
	if t, ok := f.triggers[id]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("trigger %s: %w", id, ErrNotFound)
}

func (f *fakeFleet) FindTriggersByProgramID(ctx context.Context, programID string) ([]models.MaintenanceTrigger, error) {
	out := []models.MaintenanceTrigger{}
	for _, t := range f.triggers {
		if t.ProgramID.Hex() == programID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeFleet) FindScheduleByID(ctx context.Context, id string) (*models.MaintenanceSchedule, error) {
	for _, s := range f.schedules {
		if s.ID.Hex() == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("schedule %s: %w", id, ErrNotFound)
}

func (f *fakeFleet) FindSchedulesByAircraftID(ctx context.Context, aircraftID string) ([]models.MaintenanceSchedule, error) {
	if err, ok := f.scheduleLoadErrs[aircraftID]; ok {
		return nil, err
	}
	out := []models.MaintenanceSchedule{}
	for _, s := range f.schedules {
		if s.AircraftID.Hex() == aircraftID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeFleet) FindDueWithoutWorkOrder(ctx context.Context) ([]models.MaintenanceSchedule, error) {
	out := []models.MaintenanceSchedule{}
	for _, s := range f.schedules {
		if (s.Status == models.ScheduleDue || s.Status == models.ScheduleOverdue) && s.WorkOrderID == nil {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeFleet) InsertSchedule(ctx context.Context, schedule models.MaintenanceSchedule) (*models.MaintenanceSchedule, error) {
	schedule.ID = primitive.NewObjectID()
	f.schedules = append(f.schedules, &schedule)
	copied := schedule
	return &copied, nil
}

func (f *fakeFleet) InsertSchedules(ctx context.Context, schedules []models.MaintenanceSchedule) ([]models.MaintenanceSchedule, error) {
	out := []models.MaintenanceSchedule{}
	for _, s := range schedules {
		created, err := f.InsertSchedule(ctx, s)
		if err != nil {
			return nil, err
		}
		out = append(out, *created)
	}
	return out, nil
}

func (f *fakeFleet) UpdateSchedule(ctx context.Context, id string, update models.ScheduleUpdate) error {
	for _, s := range f.schedules {
		if s.ID.Hex() != id {
			continue
		}
		f.updateCount++
		if update.Status != nil {
			s.Status = *update.Status
		}
		if update.DueDate != nil {
			s.DueDate = update.DueDate
		}
		if update.DueAtValue != nil {
			s.DueAtValue = update.DueAtValue
		}
		if update.LastCompletedAt != nil {
			s.LastCompletedAt = update.LastCompletedAt
		}
		if update.LastCompletedAtValue != nil {
			s.LastCompletedAtValue = update.LastCompletedAtValue
		}
		if update.WorkOrderID != nil {
			s.WorkOrderID = update.WorkOrderID
		}
		if update.AssignedTo != nil {
			s.AssignedTo = *update.AssignedTo
		}
		if update.IsActive != nil {
			s.IsActive = *update.IsActive
		}
		return nil
	}
	return fmt.Errorf("schedule %s: %w", id, ErrNotFound)
}

func (f *fakeFleet) GenerateOrderNumber(ctx context.Context) (string, error) {
	f.orderSeq++
	return fmt.Sprintf("WO-2026-%04d", f.orderSeq), nil
}

func (f *fakeFleet) InsertWorkOrder(ctx context.Context, order models.WorkOrder) (*models.WorkOrder, error) {
	order.ID = primitive.NewObjectID()
	f.workOrders = append(f.workOrders, order)
	copied := order
	return &copied, nil
}

// scheduleByID returns the stored (mutable) schedule for assertions.
func (f *fakeFleet) scheduleByID(id primitive.ObjectID) *models.MaintenanceSchedule {
	for _, s := range f.schedules {
		if s.ID == id {
			return s
		}
	}
	return nil
}
