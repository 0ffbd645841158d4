package service

import (
	"context"

	"property-keeper/internal/model"
	"property-keeper/internal/repository"
)

// PropertyService provides helpers around properties.
type PropertyService struct {
	repo *repository.PropertyRepository
}

func NewPropertyService(repo *repository.PropertyRepository) *PropertyService {
	return &PropertyService{repo: repo}
}

func (s *PropertyService) Create(ctx context.Context, name, address string) (*model.Property, error) {
	if name == "" {
		return nil, validationf("property name is required")
	}
	property := model.Property{Name: name, Address: address}
	if err := s.repo.Create(ctx, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (s *PropertyService) Get(ctx context.Context, id uint) (*model.Property, error) {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "find property")
	}
	return property, nil
}

func (s *PropertyService) List(ctx context.Context) ([]model.Property, error) {
	return s.repo.ListAll(ctx)
}
