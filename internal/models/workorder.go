package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkOrder is an actionable maintenance task raised for a due schedule.
type WorkOrder struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderNumber   string             `bson:"order_number" json:"order_number"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	Type          string             `bson:"type" json:"type"`     // "scheduled", "unscheduled", "inspection"
	Status        string             `bson:"status" json:"status"` // "pending", "in_progress", "completed", "cancelled"
	Priority      string             `bson:"priority" json:"priority"`
	ScheduleID    primitive.ObjectID `bson:"schedule_id" json:"schedule_id"`
	AircraftID    primitive.ObjectID `bson:"aircraft_id" json:"aircraft_id"`
	TriggerID     primitive.ObjectID `bson:"trigger_id" json:"trigger_id"`
	AssignedTo    string             `bson:"assigned_to,omitempty" json:"assigned_to,omitempty"`
	EstimatedCost float64            `bson:"estimated_cost" json:"estimated_cost"` // in USD
	LaborCost     float64            `bson:"labor_cost" json:"labor_cost"`
	PartsCost     float64            `bson:"parts_cost" json:"parts_cost"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// Work order types and statuses.
const (
	WorkOrderTypeScheduled   = "scheduled"
	WorkOrderTypeUnscheduled = "unscheduled"
	WorkOrderTypeInspection  = "inspection"

	WorkOrderStatusPending    = "pending"
	WorkOrderStatusInProgress = "in_progress"
	WorkOrderStatusCompleted  = "completed"
	WorkOrderStatusCancelled  = "cancelled"
)
