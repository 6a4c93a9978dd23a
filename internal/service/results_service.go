package service

import (
	"context"
	"fmt"
	"greenmind/internal/cache"
	"greenmind/internal/model"
	"greenmind/internal/repository"
	"greenmind/internal/scenario"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
)

// ResultsService collects behavior feedback and reports OCEAN analytics
type ResultsService struct {
	store    *scenario.Store
	feedback repository.FeedbackRepo
	cache    cache.AnalyticsCache
	validate *validator.Validate
	now      func() time.Time
}

// NewResultsService creates a new results service
func NewResultsService(store *scenario.Store, feedback repository.FeedbackRepo, analyticsCache cache.AnalyticsCache) *ResultsService {
	return &ResultsService{
		store:    store,
		feedback: feedback,
		cache:    analyticsCache,
		validate: validator.New(),
		now:      time.Now,
	}
}

// SubmitFeedback records a user's trait scores for a sent scenario
func (s *ResultsService) SubmitFeedback(ctx context.Context, scenarioID string, fb *model.Feedback) error {
	if err := s.validate.Struct(fb); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	sc, err := s.store.Get(scenarioID)
	if err != nil {
		return err
	}
	if sc.Status != model.ScenarioSent {
		return fmt.Errorf("%w: scenario %s has not been sent", scenario.ErrPreconditionFailed, scenarioID)
	}
	assigned := false
	for _, id := range sc.UsersAssigned {
		if id == fb.UserID {
			assigned = true
			break
		}
	}
	if !assigned {
		return fmt.Errorf("%w: user %s is not assigned to scenario %s", ErrValidation, fb.UserID, scenarioID)
	}

	fb.ID = uuid.New().String()
	fb.ScenarioID = scenarioID
	fb.SubmittedAt = s.now()
	if err := s.feedback.Create(ctx, fb); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, scenarioID); err != nil {
		log.Printf("Warning: failed to invalidate analytics for %s: %v", scenarioID, err)
	}
	return nil
}

// Analytics returns per-trait score statistics for a scenario
func (s *ResultsService) Analytics(ctx context.Context, scenarioID string) (*model.OceanAnalytics, error) {
	sc, err := s.store.Get(scenarioID)
	if err != nil {
		return nil, err
	}

	cached, err := s.cache.Get(ctx, scenarioID)
	if err != nil {
		log.Printf("Warning: analytics cache read failed: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	list, err := s.feedback.ListByScenario(ctx, scenarioID)
	if err != nil {
		return nil, err
	}

	analytics := Summarize(sc, list)
	analytics.GeneratedAt = s.now()

	if err := s.cache.Set(ctx, analytics); err != nil {
		log.Printf("Warning: analytics cache write failed: %v", err)
	}
	return analytics, nil
}

// Summarize aggregates feedback into one TraitSummary per OCEAN trait.
// Trait scores include every answer; the response rate only counts users
// assigned by the latest simulation.
func Summarize(sc *model.Scenario, feedback []*model.Feedback) *model.OceanAnalytics {
	assigned := make(map[string]bool, len(sc.UsersAssigned))
	for _, id := range sc.UsersAssigned {
		assigned[id] = true
	}

	scores := make(map[model.Trait]stats.Float64Data, len(model.Traits))
	current := make(map[string]bool)
	former := make(map[string]bool)
	for _, fb := range feedback {
		if assigned[fb.UserID] {
			current[fb.UserID] = true
		} else {
			former[fb.UserID] = true
		}
		for _, ts := range fb.Scores {
			scores[ts.Trait] = append(scores[ts.Trait], float64(ts.Score))
		}
	}

	out := &model.OceanAnalytics{
		ScenarioID:        sc.ID,
		Respondents:       len(current),
		AssignedUsers:     len(sc.UsersAssigned),
		FormerRespondents: len(former),
		Traits:            make([]model.TraitSummary, 0, len(model.Traits)),
	}
	if out.AssignedUsers > 0 {
		out.ResponseRate = float64(out.Respondents) / float64(out.AssignedUsers)
	}

	for _, trait := range model.Traits {
		summary := model.TraitSummary{Trait: trait, Name: trait.Name()}
		data := scores[trait]
		if len(data) > 0 {
			summary.Count = len(data)
			summary.Mean, _ = data.Mean()
			summary.Median, _ = data.Median()
			summary.StdDev, _ = data.StandardDeviation()
			summary.Min, _ = data.Min()
			summary.Max, _ = data.Max()
		}
		out.Traits = append(out.Traits, summary)
	}
	return out
}
