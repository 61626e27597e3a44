package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaintenanceProgram groups the triggers that apply to one aircraft model.
// The program marked as default for a model seeds schedules at onboarding.
type MaintenanceProgram struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	AircraftModel string             `bson:"aircraft_model" json:"aircraft_model"`
	IsDefault     bool               `bson:"is_default" json:"is_default"`
	IsActive      bool               `bson:"is_active" json:"is_active"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// TriggerType says how a trigger measures its due point.
type TriggerType string

const (
	TriggerCalendarDays  TriggerType = "CALENDAR_DAYS"
	TriggerFlightHours   TriggerType = "FLIGHT_HOURS"
	TriggerFlightCycles  TriggerType = "FLIGHT_CYCLES"
	TriggerBatteryCycles TriggerType = "BATTERY_CYCLES"
	TriggerCalendarDate  TriggerType = "CALENDAR_DATE"
)

// ValidTriggerTypes is the canonical set of accepted trigger type strings.
var ValidTriggerTypes = map[TriggerType]bool{
	TriggerCalendarDays:  true,
	TriggerFlightHours:   true,
	TriggerFlightCycles:  true,
	TriggerBatteryCycles: true,
	TriggerCalendarDate:  true,
}

// MaintenanceTrigger defines one recurring maintenance obligation within a program.
// IntervalValue is days, hours, cycles or a day-of-year depending on Type.
type MaintenanceTrigger struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProgramID     primitive.ObjectID `bson:"program_id" json:"program_id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Type          TriggerType        `bson:"type" json:"type"`
	IntervalValue float64            `bson:"interval_value" json:"interval_value"`
	ComponentType string             `bson:"component_type,omitempty" json:"component_type,omitempty"`
	ComponentLoc  string             `bson:"component_location,omitempty" json:"component_location,omitempty"`
	Priority      string             `bson:"priority" json:"priority"` // "low", "medium", "high", "critical"
	RequiredRole  string             `bson:"required_role" json:"required_role"`
	IsRII         bool               `bson:"is_rii" json:"is_rii"` // Required Inspection Item
	IsActive      bool               `bson:"is_active" json:"is_active"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
