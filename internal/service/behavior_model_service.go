package service

import (
	"context"
	"errors"
	"fmt"
	"greenmind/internal/cache"
	"greenmind/internal/model"
	"greenmind/internal/repository"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// BehaviorModelService handles OCEAN behavior model CRUD
type BehaviorModelService struct {
	repo          repository.BehaviorModelRepo
	templateCache cache.TemplateCache
	validate      *validator.Validate
}

// NewBehaviorModelService creates a new behavior model service
func NewBehaviorModelService(repo repository.BehaviorModelRepo, templateCache cache.TemplateCache) *BehaviorModelService {
	return &BehaviorModelService{
		repo:          repo,
		templateCache: templateCache,
		validate:      validator.New(),
	}
}

// Create validates and stores a new behavior model
func (s *BehaviorModelService) Create(ctx context.Context, m *model.BehaviorModel) error {
	if err := s.validate.Struct(m); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	m.ID = uuid.New().String()
	return s.repo.Create(ctx, m)
}

// Get retrieves a behavior model by ID
func (s *BehaviorModelService) Get(ctx context.Context, id string) (*model.BehaviorModel, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: behavior model %s", ErrNotFound, id)
	}
	return m, nil
}

// List returns all behavior models
func (s *BehaviorModelService) List(ctx context.Context) ([]*model.BehaviorModel, error) {
	return s.repo.List(ctx)
}

// Update replaces a behavior model and drops its cached templates
func (s *BehaviorModelService) Update(ctx context.Context, id string, m *model.BehaviorModel) error {
	if err := s.validate.Struct(m); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	m.ID = id
	m.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, m); err != nil {
		return mapRepoErr(err, "behavior model", id)
	}
	s.invalidateTemplates(ctx, id)
	return nil
}

// Delete removes a behavior model
func (s *BehaviorModelService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoErr(err, "behavior model", id)
	}
	s.invalidateTemplates(ctx, id)
	return nil
}

func (s *BehaviorModelService) invalidateTemplates(ctx context.Context, id string) {
	if err := s.templateCache.Invalidate(ctx, id); err != nil {
		log.Printf("Warning: failed to invalidate templates for model %s: %v", id, err)
	}
}

func mapRepoErr(err error, kind, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
	}
	return err
}
