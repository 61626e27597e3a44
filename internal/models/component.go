package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Component represents an installable aircraft component tracked for maintenance.
type Component struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	SerialNumber  string              `bson:"serial_number" json:"serial_number"`
	Type          string              `bson:"type" json:"type"`         // e.g. "battery", "motor", "propeller"
	Location      string              `bson:"location" json:"location"` // position on the aircraft, e.g. "left_wing"
	AircraftID    *primitive.ObjectID `bson:"aircraft_id,omitempty" json:"aircraft_id,omitempty"`
	BatteryCycles int                 `bson:"battery_cycles" json:"battery_cycles"`
	Status        string              `bson:"status" json:"status"` // "installed", "in_storage", "retired"
	CreatedAt     time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time           `bson:"updated_at" json:"updated_at"`
}
