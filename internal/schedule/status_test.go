package schedule

import (
	"testing"
	"time"

	"property-keeper/internal/model"
)

func TestClassify(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task model.MaintenanceTask
		want model.UrgencyState
	}{
		{
			name: "completed wins over everything",
			task: model.MaintenanceTask{IsCompleted: true, NextDueDate: now.AddDate(0, 0, -10)},
			want: model.UrgencyCompleted,
		},
		{
			name: "one day past due is overdue regardless of offset",
			task: model.MaintenanceTask{NextDueDate: now.AddDate(0, 0, -1), ReminderDaysBefore: 30},
			want: model.UrgencyOverdue,
		},
		{
			name: "three days out with offset three is due soon",
			task: model.MaintenanceTask{NextDueDate: now.AddDate(0, 0, 3), ReminderDaysBefore: 3},
			want: model.UrgencyDueSoon,
		},
		{
			name: "three days out with offset two is upcoming",
			task: model.MaintenanceTask{NextDueDate: now.AddDate(0, 0, 3), ReminderDaysBefore: 2},
			want: model.UrgencyUpcoming,
		},
		{
			name: "due later today with zero offset is due soon",
			task: model.MaintenanceTask{NextDueDate: now.Add(6 * time.Hour), ReminderDaysBefore: 0},
			want: model.UrgencyDueSoon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.task, now); got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	now := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	task := model.MaintenanceTask{NextDueDate: now.AddDate(0, 0, 5), ReminderDaysBefore: 3}
	first := Classify(task, now)
	for i := 0; i < 10; i++ {
		if got := Classify(task, now); got != first {
			t.Fatalf("classification changed between calls: %s then %s", first, got)
		}
	}
}

func TestNextOccurrenceOnceIsTerminal(t *testing.T) {
	task := model.MaintenanceTask{Frequency: model.FrequencyOnce, NextDueDate: date(2024, time.March, 1)}
	next, done := NextOccurrence(task)
	if !done {
		t.Fatal("expected once task to be done after completion")
	}
	if !next.Equal(task.NextDueDate) {
		t.Errorf("once task should keep its due date, got %v", next)
	}
}

func TestNextOccurrenceAnchorsToPriorDueDate(t *testing.T) {
	task := model.MaintenanceTask{Frequency: model.FrequencyWeekly, NextDueDate: date(2024, time.March, 1)}
	next, done := NextOccurrence(task)
	if done {
		t.Fatal("weekly task must not terminate")
	}
	if want := date(2024, time.March, 8); !next.Equal(want) {
		t.Errorf("next occurrence = %v, want %v", next, want)
	}
}

func TestFireAt(t *testing.T) {
	task := model.MaintenanceTask{NextDueDate: date(2024, time.March, 1), ReminderDaysBefore: 3}
	if got, want := FireAt(task), date(2024, time.February, 27); !got.Equal(want) {
		t.Errorf("FireAt() = %v, want %v", got, want)
	}
}
