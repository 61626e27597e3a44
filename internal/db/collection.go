package db

import (
	"context"

	"github.com/skyfleetdev/airmaint/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// AircraftCollection defines the interface for aircraft data operations.
type AircraftCollection interface {
	InsertAircraft(ctx context.Context, aircraft models.Aircraft) (*models.Aircraft, error)
	ListActiveAircraft(ctx context.Context, limit int) ([]models.Aircraft, error)
	FindAircraft(ctx context.Context, filter bson.M) ([]models.Aircraft, error)
	FindAircraftByID(ctx context.Context, id string) (*models.Aircraft, error)
	UpdateAircraft(ctx context.Context, id string, aircraft models.Aircraft) error
	DeleteAircraft(ctx context.Context, id string) error
	AddUsage(ctx context.Context, id string, hours float64, cycles int) error
}

// ComponentCollection defines the interface for component data operations.
type ComponentCollection interface {
	InsertComponent(ctx context.Context, component models.Component) (*models.Component, error)
	FindComponentByID(ctx context.Context, id string) (*models.Component, error)
	AddBatteryCycles(ctx context.Context, id string, cycles int) error
}

// ProgramCollection defines the interface for maintenance program operations.
type ProgramCollection interface {
	InsertProgram(ctx context.Context, program models.MaintenanceProgram) (*models.MaintenanceProgram, error)
	FindDefaultProgramForModel(ctx context.Context, model string) (*models.MaintenanceProgram, error)
}

// TriggerCollection defines the interface for maintenance trigger operations.
type TriggerCollection interface {
	InsertTrigger(ctx context.Context, trigger models.MaintenanceTrigger) (*models.MaintenanceTrigger, error)
	FindTriggerByID(ctx context.Context, id string) (*models.MaintenanceTrigger, error)
	FindTriggersByProgramID(ctx context.Context, programID string) ([]models.MaintenanceTrigger, error)
}

// ScheduleCollection defines the interface for maintenance schedule operations.
type ScheduleCollection interface {
	InsertSchedule(ctx context.Context, schedule models.MaintenanceSchedule) (*models.MaintenanceSchedule, error)
	InsertSchedules(ctx context.Context, schedules []models.MaintenanceSchedule) ([]models.MaintenanceSchedule, error)
	FindScheduleByID(ctx context.Context, id string) (*models.MaintenanceSchedule, error)
	FindSchedulesByAircraftID(ctx context.Context, aircraftID string) ([]models.MaintenanceSchedule, error)
	FindDueWithoutWorkOrder(ctx context.Context) ([]models.MaintenanceSchedule, error)
	UpdateSchedule(ctx context.Context, id string, update models.ScheduleUpdate) error
}

// WorkOrderCollection defines the interface for work order operations.
type WorkOrderCollection interface {
	GenerateOrderNumber(ctx context.Context) (string, error)
	InsertWorkOrder(ctx context.Context, order models.WorkOrder) (*models.WorkOrder, error)
	FindWorkOrdersByAircraftID(ctx context.Context, aircraftID string) ([]models.WorkOrder, error)
}

// FlightLogCollection defines the interface for flight log operations.
type FlightLogCollection interface {
	InsertFlightLog(ctx context.Context, flightLog models.FlightLog) error
	FindFlightLogsByAircraftID(ctx context.Context, aircraftID string) ([]models.FlightLog, error)
}
