package schedule

import (
	"time"

	"property-keeper/internal/model"
)

// Classify derives a task's urgency state at the given moment. Pure function
// of (IsCompleted, NextDueDate, ReminderDaysBefore, now).
func Classify(task model.MaintenanceTask, now time.Time) model.UrgencyState {
	if task.IsCompleted {
		return model.UrgencyCompleted
	}
	daysUntil := DaysUntil(now, task.NextDueDate)
	switch {
	case daysUntil < 0:
		return model.UrgencyOverdue
	case daysUntil <= task.ReminderDaysBefore:
		return model.UrgencyDueSoon
	default:
		return model.UrgencyUpcoming
	}
}

// NextOccurrence computes the due date after one completion. For a once task
// it reports done; otherwise it advances one frequency unit from the task's
// current NextDueDate, not from the completion time, so early or late
// completions never shift the anchor.
func NextOccurrence(task model.MaintenanceTask) (next time.Time, done bool) {
	if task.Frequency == model.FrequencyOnce {
		return task.NextDueDate, true
	}
	return Advance(task.Frequency, task.NextDueDate), false
}

// FireAt returns when a reminder for the task should fire.
func FireAt(task model.MaintenanceTask) time.Time {
	return task.NextDueDate.AddDate(0, 0, -task.ReminderDaysBefore)
}
