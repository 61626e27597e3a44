package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/skyfleetdev/airmaint/internal/db"
	"github.com/skyfleetdev/airmaint/internal/maintenance"
	"github.com/skyfleetdev/airmaint/internal/models"
)

// AircraftHandler handles aircraft CRUD requests
type AircraftHandler struct {
	aircraftCollection db.AircraftCollection
}

// NewAircraftHandler creates a new aircraft handler
func NewAircraftHandler(aircraftCollection db.AircraftCollection) *AircraftHandler {
	return &AircraftHandler{aircraftCollection: aircraftCollection}
}

// Handle routes /api/aircraft requests (list, create).
func (h *AircraftHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleByID routes /api/aircraft/{id} requests (get, update, delete).
func (h *AircraftHandler) HandleByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/aircraft/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Invalid aircraft ID", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *AircraftHandler) list(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}
	if model := r.URL.Query().Get("model"); model != "" {
		filter["model"] = model
	}

	aircraft, err := h.aircraftCollection.FindAircraft(r.Context(), filter)
	if err != nil {
		http.Error(w, "Failed to list aircraft", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(aircraft)
}

func (h *AircraftHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var aircraft models.Aircraft
	if err := json.Unmarshal(body, &aircraft); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if aircraft.RegistrationNumber == "" || aircraft.Model == "" {
		http.Error(w, "Registration number and model are required", http.StatusBadRequest)
		return
	}
	if aircraft.Status == "" {
		aircraft.Status = models.AircraftStatusActive
	}

	created, err := h.aircraftCollection.InsertAircraft(r.Context(), aircraft)
	if err != nil {
		http.Error(w, "Failed to create aircraft", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *AircraftHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	aircraft, err := h.aircraftCollection.FindAircraftByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, maintenance.ErrNotFound) {
			http.Error(w, "Aircraft not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load aircraft", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(aircraft)
}

func (h *AircraftHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var aircraft models.Aircraft
	if err := json.Unmarshal(body, &aircraft); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.aircraftCollection.UpdateAircraft(r.Context(), id, aircraft); err != nil {
		if errors.Is(err, maintenance.ErrNotFound) {
			http.Error(w, "Aircraft not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update aircraft", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AircraftHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.aircraftCollection.DeleteAircraft(r.Context(), id); err != nil {
		if errors.Is(err, maintenance.ErrNotFound) {
			http.Error(w, "Aircraft not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete aircraft", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
