package service

import (
	"context"

	"property-keeper/internal/model"
	"property-keeper/internal/repository"
)

// WorkerService provides helpers around workers.
type WorkerService struct {
	workerRepo *repository.WorkerRepository
	taskRepo   *repository.TaskRepository
}

func NewWorkerService(workerRepo *repository.WorkerRepository, taskRepo *repository.TaskRepository) *WorkerService {
	return &WorkerService{workerRepo: workerRepo, taskRepo: taskRepo}
}

func (s *WorkerService) Create(ctx context.Context, name, phone string) (*model.Worker, error) {
	if name == "" {
		return nil, validationf("worker name is required")
	}
	worker := model.Worker{Name: name, Phone: phone}
	if err := s.workerRepo.Create(ctx, &worker); err != nil {
		return nil, err
	}
	return &worker, nil
}

func (s *WorkerService) List(ctx context.Context) ([]model.Worker, error) {
	return s.workerRepo.ListAll(ctx)
}

// Delete removes the worker and clears the assignment on any task referencing
// it. Tasks hold a weak reference, so they survive the delete.
func (s *WorkerService) Delete(ctx context.Context, workerID uint) error {
	if _, err := s.workerRepo.FindByID(ctx, workerID); err != nil {
		return mapNotFound(err, "find worker")
	}
	if err := s.taskRepo.ClearWorker(ctx, workerID); err != nil {
		return err
	}
	return s.workerRepo.Delete(ctx, workerID)
}
