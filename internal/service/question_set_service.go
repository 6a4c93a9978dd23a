package service

import (
	"context"
	"fmt"
	"greenmind/internal/model"
	"greenmind/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// QuestionSetService assembles question templates into ordered sets
type QuestionSetService struct {
	repo      repository.QuestionSetRepo
	templates repository.TemplateRepo
	validate  *validator.Validate
}

// NewQuestionSetService creates a new question set service
func NewQuestionSetService(repo repository.QuestionSetRepo, templates repository.TemplateRepo) *QuestionSetService {
	return &QuestionSetService{
		repo:      repo,
		templates: templates,
		validate:  validator.New(),
	}
}

// Create validates that every referenced template exists and stores the set
func (s *QuestionSetService) Create(ctx context.Context, set *model.QuestionSet) error {
	if err := s.validate.Struct(set); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	seen := make(map[string]bool, len(set.QuestionIDs))
	for _, id := range set.QuestionIDs {
		if seen[id] {
			return fmt.Errorf("%w: question %s listed twice", ErrValidation, id)
		}
		seen[id] = true
	}

	found, err := s.templates.GetByIDs(ctx, set.QuestionIDs)
	if err != nil {
		return err
	}
	for _, t := range found {
		delete(seen, t.ID)
	}
	for _, id := range set.QuestionIDs {
		if seen[id] {
			return fmt.Errorf("%w: unknown question %s", ErrValidation, id)
		}
	}

	set.ID = uuid.New().String()
	return s.repo.Create(ctx, set)
}

// Get retrieves a question set by ID
func (s *QuestionSetService) Get(ctx context.Context, id string) (*model.QuestionSet, error) {
	set, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, fmt.Errorf("%w: question set %s", ErrNotFound, id)
	}
	return set, nil
}

// List returns all question sets, newest first
func (s *QuestionSetService) List(ctx context.Context) ([]*model.QuestionSet, error) {
	return s.repo.List(ctx)
}

// Delete removes a question set. Scenarios keep the question ids they copied.
func (s *QuestionSetService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoErr(err, "question set", id)
	}
	return nil
}
