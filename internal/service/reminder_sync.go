package service

import (
	"context"
	"fmt"
	"html"
	"time"

	"property-keeper/internal/model"
	"property-keeper/internal/notify"
	"property-keeper/internal/schedule"
)

// ReminderSyncer reconciles the reminder subsystem's scheduled entries with
// the current task set: exactly one pending reminder per active task, none for
// completed or deleted ones. Sync is idempotent, so it can be called after
// every mutation without bookkeeping in the callers.
type ReminderSyncer struct {
	scheduler notify.Scheduler
}

func NewReminderSyncer(scheduler notify.Scheduler) *ReminderSyncer {
	return &ReminderSyncer{scheduler: scheduler}
}

// Sync brings the scheduler in line with the given tasks. Reminders whose fire
// time is already past are not scheduled; an overdue task is visible in the
// task list and a late reminder would only duplicate that. Individual
// schedule/cancel failures do not abort the pass; they are collected into a
// SyncError so the next sync retries just those tasks.
func (s *ReminderSyncer) Sync(ctx context.Context, tasks []model.MaintenanceTask, now time.Time) error {
	desired := make(map[uint]notify.ScheduledReminder)
	for _, task := range tasks {
		if task.IsCompleted {
			continue
		}
		fireAt := schedule.FireAt(task)
		if !fireAt.After(now) {
			continue
		}
		desired[task.ID] = notify.ScheduledReminder{
			TaskID:  task.ID,
			FireAt:  fireAt,
			Payload: reminderText(task),
		}
	}

	scheduled, err := s.scheduler.ListScheduled(ctx)
	if err != nil {
		return fmt.Errorf("list scheduled reminders: %w", err)
	}
	current := make(map[uint]notify.ScheduledReminder, len(scheduled))
	for _, entry := range scheduled {
		current[entry.TaskID] = entry
	}

	failed := make(map[uint]error)

	for taskID := range current {
		if _, keep := desired[taskID]; keep {
			continue
		}
		if err := s.scheduler.Cancel(ctx, taskID); err != nil {
			failed[taskID] = err
		}
	}

	for taskID, want := range desired {
		have, ok := current[taskID]
		if ok && have.FireAt.Equal(want.FireAt) {
			continue
		}
		if err := s.scheduler.Schedule(ctx, taskID, want.FireAt, want.Payload); err != nil {
			failed[taskID] = err
		}
	}

	if len(failed) > 0 {
		return &SyncError{Failed: failed}
	}
	return nil
}

func reminderText(task model.MaintenanceTask) string {
	return fmt.Sprintf("🔧 <b>%s</b>\n⏰ due %s", html.EscapeString(task.Title), task.NextDueDate.Format("2006-01-02"))
}
