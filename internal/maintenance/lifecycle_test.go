package maintenance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skyfleetdev/airmaint/internal/models"
)

// addProgram registers a default program for the SF-220 model with the given
// triggers attached.
func addProgram(f *fakeFleet, triggers ...*models.MaintenanceTrigger) *models.MaintenanceProgram {
	program := &models.MaintenanceProgram{
		ID:            primitive.NewObjectID(),
		Name:          "SF-220 base program",
		AircraftModel: "SF-220",
		IsDefault:     true,
		IsActive:      true,
	}
	f.programs["SF-220"] = program
	for _, trigger := range triggers {
		trigger.ProgramID = program.ID
		f.triggers[trigger.ID.Hex()] = trigger
	}
	return program
}

func TestInitialize_CreatesOneSchedulePerTrigger(t *testing.T) {
	f := newFakeFleet()
	ac := models.Aircraft{
		ID:                 primitive.NewObjectID(),
		RegistrationNumber: "N201SF",
		Model:              "SF-220",
		TotalFlightHours:   90,
		Status:             models.AircraftStatusActive,
	}
	f.aircraft = append(f.aircraft, ac)

	hours := hoursTrigger(100) // 90/100 used -> WARNING
	calendar := &models.MaintenanceTrigger{
		ID:            primitive.NewObjectID(),
		Name:          "annual inspection",
		Type:          models.TriggerCalendarDays,
		IntervalValue: 365,
		CreatedAt:     testNow.AddDate(0, 0, -10),
		IsActive:      true,
	}
	retired := hoursTrigger(50)
	retired.IsActive = false
	addProgram(f, hours, calendar, retired)
	service := newTestService(f)

	schedules, err := service.Initialize(context.Background(), ac.ID.Hex())
	require.NoError(t, err)
	require.Len(t, schedules, 2, "inactive triggers get no schedule")

	byTrigger := map[string]models.MaintenanceSchedule{}
	for _, s := range schedules {
		byTrigger[s.TriggerID.Hex()] = s
		assert.Equal(t, ac.ID, s.AircraftID)
		assert.True(t, s.IsActive)
	}
	assert.Equal(t, models.ScheduleWarning, byTrigger[hours.ID.Hex()].Status, "seeded from the calculation")
	assert.Equal(t, models.ScheduleScheduled, byTrigger[calendar.ID.Hex()].Status, "OK seeds SCHEDULED")
	require.NotNil(t, byTrigger[hours.ID.Hex()].DueAtValue)
	assert.Equal(t, 100.0, *byTrigger[hours.ID.Hex()].DueAtValue)
	require.NotNil(t, byTrigger[calendar.ID.Hex()].DueDate)
}

func TestInitialize_NoDefaultProgramReturnsEmpty(t *testing.T) {
	f := newFakeFleet()
	ac := models.Aircraft{
		ID:     primitive.NewObjectID(),
		Model:  "SF-999",
		Status: models.AircraftStatusActive,
	}
	f.aircraft = append(f.aircraft, ac)
	service := newTestService(f)

	schedules, err := service.Initialize(context.Background(), ac.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, schedules)
}

func TestInitialize_UnknownAircraft(t *testing.T) {
	f := newFakeFleet()
	service := newTestService(f)

	_, err := service.Initialize(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestComplete_InfersValueAndCreatesSuccessor(t *testing.T) {
	f := newFakeFleet()
	schedule := addAircraft(f, "N101SF", 105, 100, models.ScheduleOverdue)
	service := newTestService(f)

	before := len(f.schedules)
	successor, err := service.Complete(context.Background(), schedule.ID.Hex(), nil)
	require.NoError(t, err)

	assert.Equal(t, models.ScheduleCompleted, schedule.Status)
	require.NotNil(t, schedule.LastCompletedAtValue)
	assert.Equal(t, 105.0, *schedule.LastCompletedAtValue, "inferred from current flight hours")
	require.NotNil(t, schedule.LastCompletedAt)
	assert.Equal(t, testNow, *schedule.LastCompletedAt)

	assert.Equal(t, before+1, len(f.schedules), "exactly one successor")
	require.NotNil(t, successor)
	assert.Equal(t, schedule.AircraftID, successor.AircraftID)
	assert.Equal(t, schedule.TriggerID, successor.TriggerID)
	assert.Equal(t, models.ScheduleScheduled, successor.Status)
	require.NotNil(t, successor.DueAtValue)
	assert.Equal(t, 205.0, *successor.DueAtValue, "next interval starts at the completion baseline")
	require.NotNil(t, successor.LastCompletedAtValue)
	assert.Equal(t, 105.0, *successor.LastCompletedAtValue)
}

func TestComplete_ExplicitValueWins(t *testing.T) {
	f := newFakeFleet()
	schedule := addAircraft(f, "N101SF", 105, 100, models.ScheduleDue)
	service := newTestService(f)

	value := 103.5
	successor, err := service.Complete(context.Background(), schedule.ID.Hex(), &value)
	require.NoError(t, err)

	require.NotNil(t, schedule.LastCompletedAtValue)
	assert.Equal(t, 103.5, *schedule.LastCompletedAtValue)
	require.NotNil(t, successor.DueAtValue)
	assert.Equal(t, 203.5, *successor.DueAtValue)
}

func TestComplete_CalendarTriggerHasNoInferredValue(t *testing.T) {
	f := newFakeFleet()
	ac := models.Aircraft{
		ID:               primitive.NewObjectID(),
		Model:            "SF-220",
		TotalFlightHours: 50,
		Status:           models.AircraftStatusActive,
	}
	f.aircraft = append(f.aircraft, ac)
	trigger := &models.MaintenanceTrigger{
		ID:            primitive.NewObjectID(),
		Name:          "annual inspection",
		Type:          models.TriggerCalendarDays,
		IntervalValue: 365,
		CreatedAt:     testNow.AddDate(-1, 0, -5),
		IsActive:      true,
	}
	f.triggers[trigger.ID.Hex()] = trigger
	schedule := &models.MaintenanceSchedule{
		ID:         primitive.NewObjectID(),
		AircraftID: ac.ID,
		TriggerID:  trigger.ID,
		Status:     models.ScheduleOverdue,
		IsActive:   true,
	}
	f.schedules = append(f.schedules, schedule)
	service := newTestService(f)

	successor, err := service.Complete(context.Background(), schedule.ID.Hex(), nil)
	require.NoError(t, err)

	assert.Nil(t, schedule.LastCompletedAtValue)
	assert.Equal(t, models.ScheduleScheduled, successor.Status, "fresh year from the completion date")
	require.NotNil(t, successor.DueDate)
	assert.Equal(t, testNow.Add(365*24*time.Hour), *successor.DueDate)
}

func TestComplete_UnknownSchedule(t *testing.T) {
	f := newFakeFleet()
	service := newTestService(f)

	_, err := service.Complete(context.Background(), primitive.NewObjectID().Hex(), nil)
	assert.ErrorIs(t, err, ErrNotFound)
}
