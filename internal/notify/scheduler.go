// Package notify is the reminder-scheduling subsystem: an interface the
// synchronizer reconciles against, plus an in-process implementation that
// fires due reminders through a delivery channel.
package notify

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// ScheduledReminder is one pending reminder, keyed by task id.
type ScheduledReminder struct {
	TaskID  uint
	FireAt  time.Time
	Payload string
}

// Scheduler is the contract the reminder synchronizer reconciles against.
// Schedule and Cancel must be idempotent per task id so overlapping syncs
// converge instead of conflicting.
type Scheduler interface {
	Schedule(ctx context.Context, taskID uint, fireAt time.Time, payload string) error
	Cancel(ctx context.Context, taskID uint) error
	ListScheduled(ctx context.Context) ([]ScheduledReminder, error)
}

// Sender delivers a fired reminder to the user.
type Sender interface {
	Send(ctx context.Context, text string) error
}

// LocalScheduler keeps pending reminders in memory and runs a cron pump that
// delivers the due ones. Schedule overwrites any existing entry for the task
// id; Cancel of an unknown id is a no-op.
type LocalScheduler struct {
	mu      sync.Mutex
	entries map[uint]ScheduledReminder
	cron    *cron.Cron
	sender  Sender
}

func NewLocalScheduler(sender Sender, pollEvery time.Duration) (*LocalScheduler, error) {
	s := &LocalScheduler{
		entries: make(map[uint]ScheduledReminder),
		cron:    cron.New(),
		sender:  sender,
	}
	if pollEvery <= 0 {
		pollEvery = time.Minute
	}
	spec := "@every " + pollEvery.String()
	if _, err := s.cron.AddFunc(spec, func() { s.deliverDue(time.Now()) }); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *LocalScheduler) Start() {
	s.cron.Start()
}

func (s *LocalScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *LocalScheduler) Schedule(ctx context.Context, taskID uint, fireAt time.Time, payload string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[taskID] = ScheduledReminder{TaskID: taskID, FireAt: fireAt, Payload: payload}
	return nil
}

func (s *LocalScheduler) Cancel(ctx context.Context, taskID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, taskID)
	return nil
}

func (s *LocalScheduler) ListScheduled(ctx context.Context) ([]ScheduledReminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ScheduledReminder, 0, len(s.entries))
	for _, entry := range s.entries {
		out = append(out, entry)
	}
	return out, nil
}

// deliverDue sends every reminder whose fire time has passed and drops it from
// the pending set. A failed send stays pending for the next tick.
func (s *LocalScheduler) deliverDue(now time.Time) {
	s.mu.Lock()
	var due []ScheduledReminder
	for _, entry := range s.entries {
		if !entry.FireAt.After(now) {
			due = append(due, entry)
		}
	}
	s.mu.Unlock()

	for _, entry := range due {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := s.sender.Send(ctx, entry.Payload)
		cancel()
		if err != nil {
			log.Printf("[warn] deliver reminder for task %d: %v", entry.TaskID, err)
			continue
		}
		s.mu.Lock()
		// Drop only if the entry was not rescheduled while sending.
		if current, ok := s.entries[entry.TaskID]; ok && current.FireAt.Equal(entry.FireAt) {
			delete(s.entries, entry.TaskID)
		}
		s.mu.Unlock()
	}
}
