package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FlightLog records one flight; ingesting it advances the aircraft's
// cumulative hours and cycles that drive maintenance calculations.
type FlightLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AircraftID  primitive.ObjectID `bson:"aircraft_id" json:"aircraft_id"`
	Departure   string             `bson:"departure" json:"departure"`
	Arrival     string             `bson:"arrival" json:"arrival"`
	DepartedAt  time.Time          `bson:"departed_at" json:"departed_at"`
	ArrivedAt   time.Time          `bson:"arrived_at" json:"arrived_at"`
	HoursFlown  float64            `bson:"hours_flown" json:"hours_flown"`
	CyclesAdded int                `bson:"cycles_added" json:"cycles_added"`
	Pilot       string             `bson:"pilot,omitempty" json:"pilot,omitempty"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
