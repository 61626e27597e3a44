package models

import (
	"testing"
)

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		expected bool
	}{
		{"admin role", RoleAdmin, true},
		{"fleet manager role", RoleFleetManager, true},
		{"mechanic role", RoleMechanic, true},
		{"inspector role", RoleInspector, true},
		{"viewer role", RoleViewer, true},
		{"invalid role", "invalid", false},
		{"empty role", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidRole(tt.role)
			if result != tt.expected {
				t.Errorf("IsValidRole(%s) = %v, want %v", tt.role, result, tt.expected)
			}
		})
	}
}

func TestUser_HasPermission(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	fleetManager := &User{Role: RoleFleetManager}
	mechanic := &User{Role: RoleMechanic}
	inspector := &User{Role: RoleInspector}
	viewer := &User{Role: RoleViewer}

	tests := []struct {
		name     string
		user     *User
		action   string
		expected bool
	}{
		// Admin - full access
		{"admin can manage users", admin, "manage_users", true},
		{"admin can run scheduler", admin, "run_scheduler", true},
		{"admin can manage aircraft", admin, "manage_aircraft", true},

		// Fleet manager - everything except user management
		{"fleet manager cannot manage users", fleetManager, "manage_users", false},
		{"fleet manager can run scheduler", fleetManager, "run_scheduler", true},
		{"fleet manager can manage workorders", fleetManager, "manage_workorders", true},
		{"fleet manager can manage schedules", fleetManager, "manage_schedules", true},

		// Mechanic - operational tasks on the hangar floor
		{"mechanic can view alerts", mechanic, "view_alerts", true},
		{"mechanic can complete schedule", mechanic, "complete_schedule", true},
		{"mechanic can log flight", mechanic, "log_flight", true},
		{"mechanic cannot run scheduler", mechanic, "run_scheduler", false},
		{"mechanic cannot manage aircraft", mechanic, "manage_aircraft", false},

		// Inspector - sign-offs but no flight logging
		{"inspector can complete schedule", inspector, "complete_schedule", true},
		{"inspector cannot log flight", inspector, "log_flight", false},
		{"inspector can view work orders", inspector, "view_work_orders", true},

		// Viewer - read only
		{"viewer can view alerts", viewer, "view_alerts", true},
		{"viewer cannot complete schedule", viewer, "complete_schedule", false},
		{"viewer cannot run scheduler", viewer, "run_scheduler", false},

		// Unknown role
		{"unknown role has nothing", &User{Role: "ghost"}, "view_alerts", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.user.HasPermission(tt.action)
			if result != tt.expected {
				t.Errorf("HasPermission(%s) = %v, want %v for role %s", tt.action, result, tt.expected, tt.user.Role)
			}
		})
	}
}
