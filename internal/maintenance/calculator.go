package maintenance

import (
	"math"
	"time"

	"github.com/skyfleetdev/airmaint/internal/models"
)

// Calculation constants. A trigger enters WARNING once 80% of its interval is
// used; usage-based triggers enter DUE inside a type-specific window before
// the due point, and remaining days are forecast from coarse fleet-average
// daily usage rates.
const (
	warningThresholdPct = 80.0

	flightHoursDueWindow  = 5.0
	flightCyclesDueWindow = 10.0
	batteryDueWindow      = 20.0

	flightHoursPerDay   = 2.0
	flightCyclesPerDay  = 3.0
	batteryCyclesPerDay = 1.0

	calendarDateWarningDays = 30
)

// Calculator computes trigger calculation results. It is pure: given the same
// trigger, context and clock it always returns the same result, performs no
// I/O, and is safe for concurrent use.
type Calculator struct {
	now func() time.Time
}

// NewCalculator returns a Calculator using the system clock.
func NewCalculator() *Calculator {
	return &Calculator{now: time.Now}
}

// NewCalculatorAt returns a Calculator with an injected clock.
func NewCalculatorAt(now func() time.Time) *Calculator {
	if now == nil {
		now = time.Now
	}
	return &Calculator{now: now}
}

// Calculate evaluates one trigger against a usage context. It never fails:
// an unknown trigger type degrades to a neutral OK result so one malformed
// trigger cannot abort a fleet-wide batch.
func (c *Calculator) Calculate(trigger *models.MaintenanceTrigger, usage UsageContext) TriggerCalculationResult {
	result := TriggerCalculationResult{
		TriggerID:   trigger.ID.Hex(),
		TriggerName: trigger.Name,
		TriggerType: trigger.Type,
		Status:      StatusOK,
	}

	switch trigger.Type {
	case models.TriggerCalendarDays:
		c.calcCalendarDays(trigger, usage, &result)
	case models.TriggerFlightHours:
		current := 0.0
		if usage.Aircraft != nil {
			current = usage.Aircraft.TotalFlightHours
		}
		c.calcUsage(trigger, usage, current, flightHoursDueWindow, flightHoursPerDay, &result)
	case models.TriggerFlightCycles:
		current := 0.0
		if usage.Aircraft != nil {
			current = float64(usage.Aircraft.TotalFlightCycles)
		}
		c.calcUsage(trigger, usage, current, flightCyclesDueWindow, flightCyclesPerDay, &result)
	case models.TriggerBatteryCycles:
		current := 0.0
		if usage.Component != nil {
			current = float64(usage.Component.BatteryCycles)
		}
		c.calcUsage(trigger, usage, current, batteryDueWindow, batteryCyclesPerDay, &result)
	case models.TriggerCalendarDate:
		c.calcCalendarDate(trigger, &result)
	}

	return result
}

// calcCalendarDays handles elapsed-days triggers. The base date is the last
// completion when one exists, otherwise the trigger's creation time.
func (c *Calculator) calcCalendarDays(trigger *models.MaintenanceTrigger, usage UsageContext, result *TriggerCalculationResult) {
	now := c.now()
	base := trigger.CreatedAt
	if usage.LastCompletedAt != nil {
		base = *usage.LastCompletedAt
	}

	interval := time.Duration(trigger.IntervalValue) * 24 * time.Hour
	dueDate := base.Add(interval)
	elapsed := now.Sub(base)
	remaining := dueDate.Sub(now)
	remainingDays := int(math.Ceil(float64(remaining) / float64(24*time.Hour)))

	result.DueDate = &dueDate
	result.CurrentValue = float64(elapsed) / float64(24*time.Hour)
	result.RemainingValue = math.Max(0, float64(remaining)/float64(24*time.Hour))
	result.RemainingDays = &remainingDays
	if interval > 0 {
		result.PercentageUsed = clampPct(float64(elapsed) / float64(interval) * 100)
	}

	switch {
	case remaining <= 0:
		result.Status = StatusOverdue
	case remainingDays <= 0:
		// Unreachable in practice: OVERDUE already fired at the same
		// boundary. Kept to match observed production behavior.
		result.Status = StatusDue
	case result.PercentageUsed >= warningThresholdPct:
		result.Status = StatusWarning
	}
}

// calcUsage handles counter-based triggers (flight hours, flight cycles,
// battery cycles). The base value is the last completion value or zero.
func (c *Calculator) calcUsage(trigger *models.MaintenanceTrigger, usage UsageContext, current, dueWindow, perDay float64, result *TriggerCalculationResult) {
	base := 0.0
	if usage.LastCompletedAtValue != nil {
		base = *usage.LastCompletedAtValue
	}

	dueAt := base + trigger.IntervalValue
	remaining := dueAt - current
	used := current - base

	result.DueAtValue = &dueAt
	result.CurrentValue = current
	result.RemainingValue = math.Max(0, remaining)
	if perDay > 0 {
		days := int(math.Ceil(remaining / perDay))
		result.RemainingDays = &days
	}
	if trigger.IntervalValue > 0 {
		result.PercentageUsed = clampPct(used / trigger.IntervalValue * 100)
	}

	switch {
	case remaining <= 0:
		result.Status = StatusOverdue
	case remaining <= dueWindow:
		result.Status = StatusDue
	case result.PercentageUsed >= warningThresholdPct:
		result.Status = StatusWarning
	}
}

// calcCalendarDate handles fixed day-of-year triggers. Once the day has
// passed, the due date rolls to next year's occurrence, so this type never
// reports OVERDUE.
func (c *Calculator) calcCalendarDate(trigger *models.MaintenanceTrigger, result *TriggerCalculationResult) {
	now := c.now()
	dayOfYear := int(trigger.IntervalValue)
	if dayOfYear < 1 {
		dayOfYear = 1
	}

	dueDate := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()).AddDate(0, 0, dayOfYear-1)
	if dueDate.Before(now) {
		dueDate = time.Date(now.Year()+1, 1, 1, 0, 0, 0, 0, now.Location()).AddDate(0, 0, dayOfYear-1)
	}

	remainingDays := int(math.Ceil(float64(dueDate.Sub(now)) / float64(24*time.Hour)))

	result.DueDate = &dueDate
	result.RemainingValue = math.Max(0, float64(remainingDays))
	result.RemainingDays = &remainingDays
	result.PercentageUsed = clampPct(100 - float64(remainingDays)/365*100)

	switch {
	case remainingDays <= 0:
		result.Status = StatusDue
	case remainingDays <= calendarDateWarningDays:
		result.Status = StatusWarning
	}
}

func clampPct(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}
