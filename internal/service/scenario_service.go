package service

import (
	"context"
	"fmt"
	"greenmind/internal/cache"
	"greenmind/internal/model"
	"greenmind/internal/repository"
	"greenmind/internal/scenario"
	"log"
)

// ScenarioService exposes the scenario store to the transport layer, keeps
// its population in sync with MongoDB and announces lifecycle events.
type ScenarioService struct {
	store        *scenario.Store
	userRepo     repository.UserRepo
	questionSets repository.QuestionSetRepo
	analytics    cache.AnalyticsCache
	broadcaster  Broadcaster
}

// NewScenarioService creates a new scenario service
func NewScenarioService(store *scenario.Store, userRepo repository.UserRepo, questionSets repository.QuestionSetRepo) *ScenarioService {
	return &ScenarioService{
		store:        store,
		userRepo:     userRepo,
		questionSets: questionSets,
	}
}

// SetBroadcaster sets the WebSocket broadcaster
func (s *ScenarioService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SetAnalyticsCache sets the analytics snapshot cache dropped on simulate and delete
func (s *ScenarioService) SetAnalyticsCache(c cache.AnalyticsCache) {
	s.analytics = c
}

// SyncUsers reloads the population from the users collection
func (s *ScenarioService) SyncUsers(ctx context.Context) (int, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.store.SetUsers(users); err != nil {
		return 0, err
	}
	log.Printf("Synced %d users into scenario store", len(users))
	s.broadcast(EventUsersSynced, map[string]int{"count": len(users)})
	return len(users), nil
}

// UpsertUsers persists users and merges them into the store
func (s *ScenarioService) UpsertUsers(ctx context.Context, users []model.User) (int, error) {
	if err := s.store.UpsertUsers(users); err != nil {
		return 0, err
	}
	n, err := s.userRepo.UpsertMany(ctx, users)
	if err != nil {
		return 0, err
	}
	log.Printf("Upserted %d users", n)
	s.broadcast(EventUsersSynced, map[string]int{"count": len(s.store.Users())})
	return n, nil
}

// Users returns the population with assignment back-references
func (s *ScenarioService) Users() []*model.User {
	return s.store.Users()
}

// Generate creates a draft scenario
func (s *ScenarioService) Generate(req model.GenerateScenarioRequest) (*model.Scenario, error) {
	sc, err := s.store.Generate(scenario.GenerateInput{
		Name:        req.Name,
		Demographic: req.Demographic,
		Percentage:  req.Percentage,
		Questions:   req.Questions,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("Scenario %s created (ages %d-%d, %s, %.0f%%)",
		sc.ID, sc.Demographic.MinAge(), sc.Demographic.MaxAge(), sc.Demographic.Location, sc.Percentage*100)
	s.broadcast(EventScenarioCreated, sc)
	return sc, nil
}

// List returns all scenarios in creation order
func (s *ScenarioService) List() []*model.Scenario {
	return s.store.Scenarios()
}

// Get returns a single scenario
func (s *ScenarioService) Get(id string) (*model.Scenario, error) {
	return s.store.Get(id)
}

// AttachQuestions replaces the question list of a scenario
func (s *ScenarioService) AttachQuestions(id string, questionIDs []string) (*model.Scenario, error) {
	sc, err := s.store.AttachQuestions(id, questionIDs)
	if err != nil {
		return nil, err
	}
	s.broadcast(EventScenarioUpdated, sc)
	return sc, nil
}

// AttachQuestionSet attaches the ordered questions of a question set
func (s *ScenarioService) AttachQuestionSet(ctx context.Context, id, questionSetID string) (*model.Scenario, error) {
	set, err := s.questionSets.GetByID(ctx, questionSetID)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, fmt.Errorf("%w: question set %s", ErrNotFound, questionSetID)
	}
	return s.AttachQuestions(id, set.QuestionIDs)
}

// Simulate distributes the scenario to a random share of eligible users
func (s *ScenarioService) Simulate(id string) (*model.Scenario, error) {
	sc, err := s.store.Simulate(id)
	if err != nil {
		return nil, err
	}
	log.Printf("Scenario %s simulated: %d users assigned", sc.ID, len(sc.UsersAssigned))
	s.invalidateAnalytics(sc.ID)
	s.broadcast(EventScenarioSimulated, sc)
	return sc, nil
}

// GetSimulated returns the users assigned by the last simulation
func (s *ScenarioService) GetSimulated(id string) ([]*model.User, error) {
	return s.store.AssignedUsers(id)
}

// Delete removes a scenario
func (s *ScenarioService) Delete(id string) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	log.Printf("Scenario %s deleted", id)
	s.invalidateAnalytics(id)
	s.broadcast(EventScenarioDeleted, map[string]string{"id": id})
	return nil
}

// Export serializes all scenarios as JSON
func (s *ScenarioService) Export() ([]byte, error) {
	return s.store.ExportJSON()
}

// Import replaces all scenarios with the JSON document
func (s *ScenarioService) Import(data []byte) (int, error) {
	if err := s.store.ImportJSON(data); err != nil {
		return 0, err
	}
	n := len(s.store.Scenarios())
	log.Printf("Imported %d scenarios", n)
	return n, nil
}

func (s *ScenarioService) invalidateAnalytics(id string) {
	if s.analytics == nil {
		return
	}
	if err := s.analytics.Invalidate(context.Background(), id); err != nil {
		log.Printf("Warning: failed to invalidate analytics for %s: %v", id, err)
	}
}

func (s *ScenarioService) broadcast(msgType string, payload interface{}) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToDashboards(msgType, payload)
	}
}
