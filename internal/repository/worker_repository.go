package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"property-keeper/internal/model"
)

// WorkerRepository manages workers.
type WorkerRepository struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

func (r *WorkerRepository) Create(ctx context.Context, worker *model.Worker) error {
	if err := r.db.WithContext(ctx).Create(worker).Error; err != nil {
		return fmt.Errorf("create worker: %w", err)
	}
	return nil
}

func (r *WorkerRepository) FindByID(ctx context.Context, id uint) (*model.Worker, error) {
	var worker model.Worker
	if err := r.db.WithContext(ctx).First(&worker, id).Error; err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *WorkerRepository) ListAll(ctx context.Context) ([]model.Worker, error) {
	var workers []model.Worker
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

func (r *WorkerRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Worker{}, id).Error; err != nil {
		return fmt.Errorf("delete worker: %w", err)
	}
	return nil
}
