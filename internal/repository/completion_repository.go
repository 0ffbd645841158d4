package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"property-keeper/internal/model"
)

// CompletionRepository is the append-only completion ledger. It exposes no
// update or delete; rows survive until their task is removed.
type CompletionRepository struct {
	db *gorm.DB
}

func NewCompletionRepository(db *gorm.DB) *CompletionRepository {
	return &CompletionRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *CompletionRepository) WithTx(tx *gorm.DB) *CompletionRepository {
	return &CompletionRepository{db: tx}
}

func (r *CompletionRepository) Create(ctx context.Context, completion *model.MaintenanceCompletion) error {
	if err := r.db.WithContext(ctx).Create(completion).Error; err != nil {
		return fmt.Errorf("append completion: %w", err)
	}
	return nil
}

func (r *CompletionRepository) ListByTask(ctx context.Context, taskID uint) ([]model.MaintenanceCompletion, error) {
	var completions []model.MaintenanceCompletion
	if err := r.db.WithContext(ctx).Where("task_id = ?", taskID).
		Order("completed_date DESC").
		Find(&completions).Error; err != nil {
		return nil, err
	}
	return completions, nil
}

func (r *CompletionRepository) ListByWorker(ctx context.Context, workerID uint) ([]model.MaintenanceCompletion, error) {
	var completions []model.MaintenanceCompletion
	if err := r.db.WithContext(ctx).Where("worker_id = ?", workerID).
		Order("completed_date DESC").
		Find(&completions).Error; err != nil {
		return nil, err
	}
	return completions, nil
}

// LatestByTask returns the most recent completion for a task, or
// gorm.ErrRecordNotFound when the task has never been completed.
func (r *CompletionRepository) LatestByTask(ctx context.Context, taskID uint) (*model.MaintenanceCompletion, error) {
	var completion model.MaintenanceCompletion
	if err := r.db.WithContext(ctx).Where("task_id = ?", taskID).
		Order("completed_date DESC").
		First(&completion).Error; err != nil {
		return nil, err
	}
	return &completion, nil
}

// FindByClientKey looks up a completion by its idempotency key.
func (r *CompletionRepository) FindByClientKey(ctx context.Context, clientKey string) (*model.MaintenanceCompletion, error) {
	var completion model.MaintenanceCompletion
	if err := r.db.WithContext(ctx).Where("client_key = ?", clientKey).First(&completion).Error; err != nil {
		return nil, err
	}
	return &completion, nil
}
