package maintenance

import "github.com/skyfleetdev/airmaint/internal/models"

// transitions maps (current schedule status, calculated status) to the next
// schedule status. The calculator re-derives its status from raw usage every
// run, so a late data update could make a due schedule appear to heal; the
// table enforces the no-downgrade rules that keep the urgency signal sticky:
//
//   - IN_PROGRESS is frozen (a work order owns the schedule now).
//   - OVERDUE never downgrades; clearing it requires explicit completion.
//   - DUE never downgrades to WARNING.
//   - The run loop only persists DUE and OVERDUE; WARNING and OK leave the
//     stored status alone (WARNING surfaces through alerts instead).
//
// Statuses absent from the table (terminal states, IN_PROGRESS) keep their
// current value.
var transitions = map[models.ScheduleStatus]map[CalcStatus]models.ScheduleStatus{
	models.ScheduleScheduled: {
		StatusOK:      models.ScheduleScheduled,
		StatusWarning: models.ScheduleScheduled,
		StatusDue:     models.ScheduleDue,
		StatusOverdue: models.ScheduleOverdue,
	},
	models.ScheduleWarning: {
		StatusOK:      models.ScheduleWarning,
		StatusWarning: models.ScheduleWarning,
		StatusDue:     models.ScheduleDue,
		StatusOverdue: models.ScheduleOverdue,
	},
	models.ScheduleDue: {
		StatusOK:      models.ScheduleDue,
		StatusWarning: models.ScheduleDue,
		StatusDue:     models.ScheduleDue,
		StatusOverdue: models.ScheduleOverdue,
	},
	models.ScheduleOverdue: {
		StatusOK:      models.ScheduleOverdue,
		StatusWarning: models.ScheduleOverdue,
		StatusDue:     models.ScheduleOverdue,
		StatusOverdue: models.ScheduleOverdue,
	},
}

// NextStatus applies the transition table and reports whether the schedule's
// persisted status should change.
func NextStatus(current models.ScheduleStatus, calc CalcStatus) (models.ScheduleStatus, bool) {
	row, ok := transitions[current]
	if !ok {
		return current, false
	}
	next, ok := row[calc]
	if !ok {
		return current, false
	}
	return next, next != current
}
