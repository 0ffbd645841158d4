package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"property-keeper/internal/model"
)

// TaskRepository handles CRUD for maintenance tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *TaskRepository) WithTx(tx *gorm.DB) *TaskRepository {
	return &TaskRepository{db: tx}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.MaintenanceTask) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, taskID uint) (*model.MaintenanceTask, error) {
	var task model.MaintenanceTask
	if err := r.db.WithContext(ctx).First(&task, taskID).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ListByProperty(ctx context.Context, propertyID uint) ([]model.MaintenanceTask, error) {
	var tasks []model.MaintenanceTask
	if err := r.db.WithContext(ctx).Where("property_id = ?", propertyID).
		Order("next_due_date ASC, created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListActive returns every task whose lifecycle has not terminated, across all
// properties. The reminder synchronizer reconciles against this set.
func (r *TaskRepository) ListActive(ctx context.Context) ([]model.MaintenanceTask, error) {
	var tasks []model.MaintenanceTask
	if err := r.db.WithContext(ctx).Where("is_completed = ?", false).
		Order("next_due_date ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) Save(ctx context.Context, task *model.MaintenanceTask) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

// Delete removes a task together with its completion history.
func (r *TaskRepository) Delete(ctx context.Context, taskID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", taskID).Delete(&model.MaintenanceCompletion{}).Error; err != nil {
			return fmt.Errorf("delete task history: %w", err)
		}
		if err := tx.Delete(&model.MaintenanceTask{}, taskID).Error; err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		return nil
	})
}

// ClearWorker drops the assignment from every task referencing the worker.
func (r *TaskRepository) ClearWorker(ctx context.Context, workerID uint) error {
	if err := r.db.WithContext(ctx).Model(&model.MaintenanceTask{}).
		Where("assigned_worker_id = ?", workerID).
		Update("assigned_worker_id", nil).Error; err != nil {
		return fmt.Errorf("clear worker assignment: %w", err)
	}
	return nil
}
