package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/skyfleetdev/airmaint/internal/maintenance"
	"github.com/skyfleetdev/airmaint/internal/models"
)

// MaintenanceHandler exposes the scheduling engine over HTTP.
type MaintenanceHandler struct {
	service *maintenance.Service
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(service *maintenance.Service) *MaintenanceHandler {
	return &MaintenanceHandler{service: service}
}

// Run triggers one fleet-wide scheduler pass.
func (h *MaintenanceHandler) Run(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result := h.service.Run(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

// GenerateWorkOrders raises work orders for DUE/OVERDUE schedules.
func (h *MaintenanceHandler) GenerateWorkOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	autoAssign := r.URL.Query().Get("auto_assign") == "true"
	orders, err := h.service.CreateWorkOrdersForDue(r.Context(), autoAssign)
	if err != nil {
		http.Error(w, "Failed to create work orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(orders)
}

// Alerts returns the current urgency-sorted alert list.
func (h *MaintenanceHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter := maintenance.AlertFilter{
		AircraftID: r.URL.Query().Get("aircraft_id"),
	}
	if typesParam := r.URL.Query().Get("types"); typesParam != "" {
		for _, t := range strings.Split(typesParam, ",") {
			filter.Types = append(filter.Types, maintenance.CalcStatus(strings.ToUpper(strings.TrimSpace(t))))
		}
	}
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit < 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	alerts, err := h.service.Alerts(r.Context(), filter)
	if err != nil {
		if errors.Is(err, maintenance.ErrNotFound) {
			http.Error(w, "Aircraft not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to compute alerts", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(alerts)
}

// PreviewRequest carries a what-if calculation: a trigger definition plus the
// usage snapshot to evaluate it against. Nothing is persisted.
type PreviewRequest struct {
	Trigger              models.MaintenanceTrigger `json:"trigger"`
	Aircraft             *models.Aircraft          `json:"aircraft,omitempty"`
	Component            *models.Component         `json:"component,omitempty"`
	LastCompletedAt      *time.Time                `json:"last_completed_at,omitempty"`
	LastCompletedAtValue *float64                  `json:"last_completed_at_value,omitempty"`
}

// Preview runs the standalone calculator with no persistence side effects.
func (h *MaintenanceHandler) Preview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req PreviewRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	result := h.service.Calculate(&req.Trigger, maintenance.UsageContext{
		Aircraft:             req.Aircraft,
		Component:            req.Component,
		LastCompletedAt:      req.LastCompletedAt,
		LastCompletedAtValue: req.LastCompletedAtValue,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

// InitializeSchedules bootstraps schedules for a newly onboarded aircraft.
func (h *MaintenanceHandler) InitializeSchedules(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	aircraftID := r.URL.Query().Get("aircraft_id")
	if aircraftID == "" {
		http.Error(w, "aircraft_id is required", http.StatusBadRequest)
		return
	}

	schedules, err := h.service.Initialize(r.Context(), aircraftID)
	if err != nil {
		if errors.Is(err, maintenance.ErrNotFound) {
			http.Error(w, "Aircraft not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to initialize schedules", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(schedules)
}

// CompleteRequest marks a schedule as completed.
type CompleteRequest struct {
	ScheduleID       string   `json:"schedule_id"`
	CompletedAtValue *float64 `json:"completed_at_value,omitempty"`
}

// CompleteSchedule closes a schedule and creates its successor.
func (h *MaintenanceHandler) CompleteSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req CompleteRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.ScheduleID == "" {
		http.Error(w, "schedule_id is required", http.StatusBadRequest)
		return
	}

	successor, err := h.service.Complete(r.Context(), req.ScheduleID, req.CompletedAtValue)
	if err != nil {
		if errors.Is(err, maintenance.ErrNotFound) {
			http.Error(w, "Schedule not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to complete schedule", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(successor)
}
