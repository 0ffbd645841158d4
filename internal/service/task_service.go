package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"property-keeper/internal/model"
	"property-keeper/internal/repository"
	"property-keeper/internal/schedule"
)

// TaskInput represents data required to create or edit a maintenance task.
type TaskInput struct {
	PropertyID         uint
	Title              string
	Frequency          model.Frequency
	NextDueDate        time.Time
	ReminderDaysBefore int
	AssignedWorkerID   *uint
}

// CompletionInput carries one completion event. ClientKey is an idempotency
// key: callers retrying an ambiguous failure pass the same key and the ledger
// write is skipped instead of duplicated. A fresh key is generated when empty.
type CompletionInput struct {
	ClientKey string
	Now       time.Time
	WorkerID  *uint
	Notes     string
	Cost      *float64
}

// ClassifiedTask pairs a task with its urgency at a given moment.
type ClassifiedTask struct {
	Task    model.MaintenanceTask
	Urgency model.UrgencyState
}

// Overview summarizes a property's task list by urgency.
type Overview struct {
	Tasks       []ClassifiedTask
	Overdue     int
	DueSoon     int
	Upcoming    int
	Completed   int
	ActiveTotal int
}

// TaskDetail is a task joined with its latest completion for display. The
// latest completion comes from the ledger at read time; the task record itself
// carries no completion summary.
type TaskDetail struct {
	Task                 model.MaintenanceTask
	Urgency              model.UrgencyState
	LastCompletedDate    *time.Time
	LastCompletionWorker string
}

// TaskService wraps the maintenance task lifecycle: CRUD, the completion
// workflow and ledger reads.
type TaskService struct {
	db             *gorm.DB
	taskRepo       *repository.TaskRepository
	completionRepo *repository.CompletionRepository
	workerRepo     *repository.WorkerRepository
}

func NewTaskService(db *gorm.DB, taskRepo *repository.TaskRepository, completionRepo *repository.CompletionRepository, workerRepo *repository.WorkerRepository) *TaskService {
	return &TaskService{db: db, taskRepo: taskRepo, completionRepo: completionRepo, workerRepo: workerRepo}
}

func validateInput(input TaskInput) error {
	if input.Title == "" {
		return validationf("title is required")
	}
	if err := input.Frequency.Validate(); err != nil {
		return validationf("%v", err)
	}
	if input.NextDueDate.IsZero() {
		return validationf("due date is required")
	}
	if input.ReminderDaysBefore < 0 {
		return validationf("reminder offset must not be negative")
	}
	return nil
}

func (s *TaskService) CreateTask(ctx context.Context, input TaskInput) (*model.MaintenanceTask, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	task := model.MaintenanceTask{
		PropertyID:         input.PropertyID,
		Title:              input.Title,
		Frequency:          input.Frequency,
		NextDueDate:        input.NextDueDate,
		ReminderDaysBefore: input.ReminderDaysBefore,
		AssignedWorkerID:   input.AssignedWorkerID,
	}
	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) GetTask(ctx context.Context, taskID uint) (*model.MaintenanceTask, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, mapNotFound(err, "find task")
	}
	return task, nil
}

func (s *TaskService) ListByProperty(ctx context.Context, propertyID uint) ([]model.MaintenanceTask, error) {
	return s.taskRepo.ListByProperty(ctx, propertyID)
}

// ListActive returns all non-terminated tasks across properties; this is the
// set the reminder synchronizer reconciles against.
func (s *TaskService) ListActive(ctx context.Context) ([]model.MaintenanceTask, error) {
	return s.taskRepo.ListActive(ctx)
}

// UpdateTask applies edits to title, schedule, reminder offset and assignee.
// Completion state is owned by CompleteTask and cannot be edited here.
func (s *TaskService) UpdateTask(ctx context.Context, taskID uint, input TaskInput) (*model.MaintenanceTask, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, mapNotFound(err, "find task")
	}

	task.Title = input.Title
	task.Frequency = input.Frequency
	task.NextDueDate = input.NextDueDate
	task.ReminderDaysBefore = input.ReminderDaysBefore
	task.AssignedWorkerID = input.AssignedWorkerID
	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes the task and its completion history. The caller is
// expected to run a reminder sync afterwards so the scheduled reminder goes
// away with the task.
func (s *TaskService) DeleteTask(ctx context.Context, taskID uint) error {
	if _, err := s.taskRepo.FindByID(ctx, taskID); err != nil {
		return mapNotFound(err, "find task")
	}
	return s.taskRepo.Delete(ctx, taskID)
}

// CompleteTask records one completion and advances the task's schedule as a
// single transaction: either the ledger row and the task update both land, or
// neither does. A once task terminates; a recurring task rolls NextDueDate one
// frequency unit forward from its prior value, regardless of when the
// completion actually happened.
func (s *TaskService) CompleteTask(ctx context.Context, taskID uint, input CompletionInput) (*model.MaintenanceTask, error) {
	if input.Now.IsZero() {
		return nil, validationf("completion time is required")
	}
	if input.ClientKey == "" {
		input.ClientKey = uuid.NewString()
	}

	var result *model.MaintenanceTask
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taskRepo := s.taskRepo.WithTx(tx)
		completionRepo := s.completionRepo.WithTx(tx)

		task, err := taskRepo.FindByID(ctx, taskID)
		if err != nil {
			return mapNotFound(err, "find task")
		}

		// Retried call with a key we already recorded: nothing to do. Checked
		// before the terminal guard so a retried once-completion succeeds.
		if _, err := completionRepo.FindByClientKey(ctx, input.ClientKey); err == nil {
			result = task
			return nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check completion key: %w", err)
		}

		if task.IsCompleted {
			return validationf("task %d is already completed", taskID)
		}

		completion := model.MaintenanceCompletion{
			TaskID:        task.ID,
			ClientKey:     input.ClientKey,
			CompletedDate: input.Now,
			WorkerID:      input.WorkerID,
			Notes:         input.Notes,
			Cost:          input.Cost,
		}
		if err := completionRepo.Create(ctx, &completion); err != nil {
			return err
		}

		next, done := schedule.NextOccurrence(*task)
		if done {
			task.IsCompleted = true
		} else {
			task.NextDueDate = next
		}
		if err := taskRepo.Save(ctx, task); err != nil {
			return err
		}

		result = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Overview classifies every task of a property at the given moment and tallies
// the urgency buckets.
func (s *TaskService) Overview(ctx context.Context, propertyID uint, now time.Time) (*Overview, error) {
	tasks, err := s.taskRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	overview := Overview{Tasks: make([]ClassifiedTask, 0, len(tasks))}
	for _, task := range tasks {
		urgency := schedule.Classify(task, now)
		overview.Tasks = append(overview.Tasks, ClassifiedTask{Task: task, Urgency: urgency})
		switch urgency {
		case model.UrgencyOverdue:
			overview.Overdue++
		case model.UrgencyDueSoon:
			overview.DueSoon++
		case model.UrgencyUpcoming:
			overview.Upcoming++
		case model.UrgencyCompleted:
			overview.Completed++
		}
	}
	overview.ActiveTotal = overview.Overdue + overview.DueSoon + overview.Upcoming
	return &overview, nil
}

func (s *TaskService) History(ctx context.Context, taskID uint) ([]model.MaintenanceCompletion, error) {
	return s.completionRepo.ListByTask(ctx, taskID)
}

func (s *TaskService) HistoryByWorker(ctx context.Context, workerID uint) ([]model.MaintenanceCompletion, error) {
	return s.completionRepo.ListByWorker(ctx, workerID)
}

// TaskDetail joins the task with its urgency and latest completion. The worker
// name on the latest completion is resolved through the worker lookup; a
// deleted worker simply leaves the name empty.
func (s *TaskService) TaskDetail(ctx context.Context, taskID uint, now time.Time) (*TaskDetail, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, mapNotFound(err, "find task")
	}

	detail := TaskDetail{
		Task:    *task,
		Urgency: schedule.Classify(*task, now),
	}

	latest, err := s.completionRepo.LatestByTask(ctx, taskID)
	switch {
	case err == nil:
		completedAt := latest.CompletedDate
		detail.LastCompletedDate = &completedAt
		if latest.WorkerID != nil {
			if worker, err := s.workerRepo.FindByID(ctx, *latest.WorkerID); err == nil {
				detail.LastCompletionWorker = worker.Name
			}
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Never completed.
	default:
		return nil, fmt.Errorf("latest completion: %w", err)
	}

	return &detail, nil
}
