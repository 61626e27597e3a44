package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Aircraft represents a fleet aircraft.
type Aircraft struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RegistrationNumber string             `bson:"registration_number" json:"registration_number"`
	Model              string             `bson:"model" json:"model"`
	SerialNumber       string             `bson:"serial_number" json:"serial_number"`
	BaseLocation       Location           `bson:"base_location" json:"base_location"`
	TotalFlightHours   float64            `bson:"total_flight_hours" json:"total_flight_hours"`
	TotalFlightCycles  int                `bson:"total_flight_cycles" json:"total_flight_cycles"`
	Status             string             `bson:"status" json:"status"` // "active", "inactive" or "retired"
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updated_at"`
}

// Aircraft status values.
const (
	AircraftStatusActive   = "active"
	AircraftStatusInactive = "inactive"
	AircraftStatusRetired  = "retired"
)
