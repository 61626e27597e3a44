package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduleStatus is the lifecycle state of a maintenance schedule.
type ScheduleStatus string

const (
	ScheduleScheduled  ScheduleStatus = "SCHEDULED"
	ScheduleWarning    ScheduleStatus = "WARNING"
	ScheduleDue        ScheduleStatus = "DUE"
	ScheduleOverdue    ScheduleStatus = "OVERDUE"
	ScheduleInProgress ScheduleStatus = "IN_PROGRESS"
	ScheduleCompleted  ScheduleStatus = "COMPLETED"
	ScheduleSkipped    ScheduleStatus = "SKIPPED"
)

// IsTerminal reports whether the status excludes the schedule from future runs.
func (s ScheduleStatus) IsTerminal() bool {
	return s == ScheduleCompleted || s == ScheduleSkipped
}

// MaintenanceSchedule ties one aircraft to one trigger and carries the live
// due point and status for that pair.
type MaintenanceSchedule struct {
	ID                   primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	AircraftID           primitive.ObjectID  `bson:"aircraft_id" json:"aircraft_id"`
	TriggerID            primitive.ObjectID  `bson:"trigger_id" json:"trigger_id"`
	ComponentID          *primitive.ObjectID `bson:"component_id,omitempty" json:"component_id,omitempty"`
	Status               ScheduleStatus      `bson:"status" json:"status"`
	DueDate              *time.Time          `bson:"due_date,omitempty" json:"due_date,omitempty"`
	DueAtValue           *float64            `bson:"due_at_value,omitempty" json:"due_at_value,omitempty"`
	LastCompletedAt      *time.Time          `bson:"last_completed_at,omitempty" json:"last_completed_at,omitempty"`
	LastCompletedAtValue *float64            `bson:"last_completed_at_value,omitempty" json:"last_completed_at_value,omitempty"`
	WorkOrderID          *primitive.ObjectID `bson:"work_order_id,omitempty" json:"work_order_id,omitempty"`
	AssignedTo           string              `bson:"assigned_to,omitempty" json:"assigned_to,omitempty"`
	IsActive             bool                `bson:"is_active" json:"is_active"`
	CreatedAt            time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time           `bson:"updated_at" json:"updated_at"`
}

// ScheduleUpdate is a partial schedule update; nil fields are left untouched.
type ScheduleUpdate struct {
	Status               *ScheduleStatus     `bson:"status,omitempty"`
	DueDate              *time.Time          `bson:"due_date,omitempty"`
	DueAtValue           *float64            `bson:"due_at_value,omitempty"`
	LastCompletedAt      *time.Time          `bson:"last_completed_at,omitempty"`
	LastCompletedAtValue *float64            `bson:"last_completed_at_value,omitempty"`
	WorkOrderID          *primitive.ObjectID `bson:"work_order_id,omitempty"`
	AssignedTo           *string             `bson:"assigned_to,omitempty"`
	IsActive             *bool               `bson:"is_active,omitempty"`
}
