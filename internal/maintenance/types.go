// Package maintenance implements the trigger calculation and scheduling
// engine: it decides, per (aircraft, trigger) pair, how close maintenance is
// to being due, advances schedule statuses, and raises alerts and work orders.
package maintenance

import (
	"context"
	"time"

	"github.com/skyfleetdev/airmaint/internal/models"
)

// CalcStatus is the outcome of one trigger calculation.
type CalcStatus string

const (
	StatusOK      CalcStatus = "OK"
	StatusWarning CalcStatus = "WARNING"
	StatusDue     CalcStatus = "DUE"
	StatusOverdue CalcStatus = "OVERDUE"
)

// UsageContext carries the inputs for one calculation: the aircraft's usage
// counters, the component counter when the trigger is component-scoped, and
// the schedule's last-completion marker if any prior completion exists.
type UsageContext struct {
	Aircraft             *models.Aircraft
	Component            *models.Component
	LastCompletedAt      *time.Time
	LastCompletedAtValue *float64
}

// TriggerCalculationResult is the stateless snapshot of how close a schedule
// is to being due. Exactly one of DueDate and DueAtValue is set, depending on
// whether the trigger is calendar-based or usage-based.
type TriggerCalculationResult struct {
	TriggerID      string             `json:"trigger_id"`
	TriggerName    string             `json:"trigger_name"`
	TriggerType    models.TriggerType `json:"trigger_type"`
	DueDate        *time.Time         `json:"due_date,omitempty"`
	DueAtValue     *float64           `json:"due_at_value,omitempty"`
	CurrentValue   float64            `json:"current_value"`
	RemainingValue float64            `json:"remaining_value"`
	RemainingDays  *int               `json:"remaining_days,omitempty"`
	PercentageUsed float64            `json:"percentage_used"`
	Status         CalcStatus         `json:"status"`
}

// Alert is a derived projection of a non-OK calculation result. Alerts are
// regenerated on every run or query and never persisted.
type Alert struct {
	ScheduleID   string                   `json:"schedule_id"`
	AircraftID   string                   `json:"aircraft_id"`
	Registration string                   `json:"registration"`
	TriggerID    string                   `json:"trigger_id"`
	TriggerName  string                   `json:"trigger_name"`
	Type         CalcStatus               `json:"type"`
	Message      string                   `json:"message"`
	Calculation  TriggerCalculationResult `json:"calculation"`
}

// AlertFilter scopes an alert query.
type AlertFilter struct {
	AircraftID string
	Types      []CalcStatus
	Limit      int
}

// RunResult aggregates one fleet-wide scheduler pass.
type RunResult struct {
	SchedulesProcessed int      `json:"schedules_processed"`
	ToDue              int      `json:"to_due"`
	ToOverdue          int      `json:"to_overdue"`
	WorkOrdersCreated  int      `json:"work_orders_created"`
	Alerts             []Alert  `json:"alerts"`
	Errors             []string `json:"errors"`
}

// AircraftSource supplies aircraft records and usage counters.
type AircraftSource interface {
	ListActiveAircraft(ctx context.Context, limit int) ([]models.Aircraft, error)
	FindAircraftByID(ctx context.Context, id string) (*models.Aircraft, error)
}

// ComponentSource supplies component records for component-scoped triggers.
type ComponentSource interface {
	FindComponentByID(ctx context.Context, id string) (*models.Component, error)
}

// ProgramSource resolves the default maintenance program for an aircraft model.
type ProgramSource interface {
	FindDefaultProgramForModel(ctx context.Context, model string) (*models.MaintenanceProgram, error)
}

// TriggerSource supplies trigger definitions.
type TriggerSource interface {
	FindTriggerByID(ctx context.Context, id string) (*models.MaintenanceTrigger, error)
	FindTriggersByProgramID(ctx context.Context, programID string) ([]models.MaintenanceTrigger, error)
}

// ScheduleStore reads and writes maintenance schedules.
type ScheduleStore interface {
	FindScheduleByID(ctx context.Context, id string) (*models.MaintenanceSchedule, error)
	FindSchedulesByAircraftID(ctx context.Context, aircraftID string) ([]models.MaintenanceSchedule, error)
	FindDueWithoutWorkOrder(ctx context.Context) ([]models.MaintenanceSchedule, error)
	InsertSchedule(ctx context.Context, schedule models.MaintenanceSchedule) (*models.MaintenanceSchedule, error)
	InsertSchedules(ctx context.Context, schedules []models.MaintenanceSchedule) ([]models.MaintenanceSchedule, error)
	UpdateSchedule(ctx context.Context, id string, update models.ScheduleUpdate) error
}

// WorkOrderStore creates work orders and allocates order numbers.
type WorkOrderStore interface {
	GenerateOrderNumber(ctx context.Context) (string, error)
	InsertWorkOrder(ctx context.Context, order models.WorkOrder) (*models.WorkOrder, error)
}
