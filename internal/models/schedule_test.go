package models

import (
	"testing"
)

func TestScheduleStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		name     string
		status   ScheduleStatus
		expected bool
	}{
		{"scheduled", ScheduleScheduled, false},
		{"warning", ScheduleWarning, false},
		{"due", ScheduleDue, false},
		{"overdue", ScheduleOverdue, false},
		{"in progress", ScheduleInProgress, false},
		{"completed", ScheduleCompleted, true},
		{"skipped", ScheduleSkipped, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.status.IsTerminal()
			if result != tt.expected {
				t.Errorf("IsTerminal(%s) = %v, want %v", tt.status, result, tt.expected)
			}
		})
	}
}

func TestValidTriggerTypes(t *testing.T) {
	for _, typ := range []TriggerType{
		TriggerCalendarDays,
		TriggerFlightHours,
		TriggerFlightCycles,
		TriggerBatteryCycles,
		TriggerCalendarDate,
	} {
		if !ValidTriggerTypes[typ] {
			t.Errorf("expected %s to be a valid trigger type", typ)
		}
	}
	if ValidTriggerTypes["ENGINE_STARTS"] {
		t.Errorf("unexpected trigger type accepted")
	}
}
