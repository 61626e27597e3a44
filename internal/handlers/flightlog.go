package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/skyfleetdev/airmaint/internal/db"
	"github.com/skyfleetdev/airmaint/internal/maintenance"
	"github.com/skyfleetdev/airmaint/internal/models"
)

// FlightLogHandler ingests flight logs and advances aircraft usage counters.
type FlightLogHandler struct {
	flightLogCollection db.FlightLogCollection
	aircraftCollection  db.AircraftCollection
}

// NewFlightLogHandler creates a new flight log handler
func NewFlightLogHandler(flightLogCollection db.FlightLogCollection, aircraftCollection db.AircraftCollection) *FlightLogHandler {
	return &FlightLogHandler{
		flightLogCollection: flightLogCollection,
		aircraftCollection:  aircraftCollection,
	}
}

// Handle routes /api/flightlogs requests (list by aircraft, ingest).
func (h *FlightLogHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.ingest(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *FlightLogHandler) list(w http.ResponseWriter, r *http.Request) {
	aircraftID := r.URL.Query().Get("aircraft_id")
	if aircraftID == "" {
		http.Error(w, "aircraft_id is required", http.StatusBadRequest)
		return
	}

	logs, err := h.flightLogCollection.FindFlightLogsByAircraftID(r.Context(), aircraftID)
	if err != nil {
		http.Error(w, "Failed to list flight logs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(logs)
}

func (h *FlightLogHandler) ingest(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var flightLog models.FlightLog
	if err := json.Unmarshal(body, &flightLog); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if flightLog.AircraftID.IsZero() {
		http.Error(w, "aircraft_id is required", http.StatusBadRequest)
		return
	}
	if flightLog.HoursFlown < 0 || flightLog.CyclesAdded < 0 {
		http.Error(w, "Hours and cycles must be non-negative", http.StatusBadRequest)
		return
	}

	aircraftID := flightLog.AircraftID.Hex()
	if _, err := h.aircraftCollection.FindAircraftByID(r.Context(), aircraftID); err != nil {
		if errors.Is(err, maintenance.ErrNotFound) {
			http.Error(w, "Aircraft not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load aircraft", http.StatusInternalServerError)
		return
	}

	if err := h.flightLogCollection.InsertFlightLog(r.Context(), flightLog); err != nil {
		http.Error(w, "Failed to store flight log", http.StatusInternalServerError)
		return
	}

	if err := h.aircraftCollection.AddUsage(r.Context(), aircraftID, flightLog.HoursFlown, flightLog.CyclesAdded); err != nil {
		// The log is stored; the counter bump failing is recoverable on
		// the next reconciliation, so report but do not fail the ingest.
		log.WithError(err).WithField("aircraft_id", aircraftID).Error("failed to bump usage counters")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(flightLog)
}
