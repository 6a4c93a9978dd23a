package scenario

import (
	"fmt"
	"greenmind/internal/model"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// GenerateInput describes a new scenario
type GenerateInput struct {
	Name        string
	Demographic model.Demographic
	Percentage  float64
	Questions   []string
}

// Store is an in-memory registry of scenarios and the user population they
// target. All methods are safe for concurrent use; a failed mutation leaves
// the store unchanged.
type Store struct {
	mu sync.RWMutex

	scenarios     map[string]*model.Scenario
	scenarioOrder []string

	users     map[string]*model.User
	userOrder []string

	sampler  *Sampler
	validate *validator.Validate
	now      func() time.Time
	newID    func() string
}

// NewStore creates an empty store sampling with sampler
func NewStore(sampler *Sampler) *Store {
	return &Store{
		scenarios: make(map[string]*model.Scenario),
		users:     make(map[string]*model.User),
		sampler:   sampler,
		validate:  validator.New(),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     func() string { return uuid.New().String() },
	}
}

// Generate creates a draft scenario
func (s *Store) Generate(in GenerateInput) (*model.Scenario, error) {
	if err := ValidateDemographic(in.Demographic); err != nil {
		return nil, err
	}
	if err := ValidatePercentage(in.Percentage); err != nil {
		return nil, err
	}
	questions, err := normalizeQuestions(in.Questions)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sc := &model.Scenario{
		ID:            s.newID(),
		Name:          in.Name,
		Demographic:   in.Demographic,
		Percentage:    in.Percentage,
		Questions:     questions,
		UsersAssigned: []string{},
		Status:        model.ScenarioDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenarios[sc.ID] = sc
	s.scenarioOrder = append(s.scenarioOrder, sc.ID)
	return sc.Clone(), nil
}

// AttachQuestions replaces the question list of a scenario. Attaching to a
// sent scenario is allowed and does not re-run the distribution.
func (s *Store) AttachQuestions(id string, questionIDs []string) (*model.Scenario, error) {
	questions, err := normalizeQuestions(questionIDs)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sc, ok := s.scenarios[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	sc.Questions = questions
	sc.UpdatedAt = s.now()
	return sc.Clone(), nil
}

// Simulate samples the eligible population, records the assignees and marks
// the scenario sent. Each run draws a fresh sample.
func (s *Store) Simulate(id string) (*model.Scenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc, ok := s.scenarios[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if len(sc.Questions) == 0 {
		return nil, fmt.Errorf("%w: scenario %s has no questions", ErrPreconditionFailed, id)
	}

	population := make([]*model.User, 0, len(s.userOrder))
	for _, uid := range s.userOrder {
		population = append(population, s.users[uid])
	}
	picked, err := s.sampler.Sample(Filter(population, sc.Demographic), sc.Percentage)
	if err != nil {
		return nil, err
	}

	assigned := make([]string, 0, len(picked))
	for _, u := range picked {
		assigned = append(assigned, u.ID)
		if !contains(u.AssignedScenarios, id) {
			u.AssignedScenarios = append(u.AssignedScenarios, id)
		}
	}
	sc.UsersAssigned = assigned
	sc.Status = model.ScenarioSent
	sc.UpdatedAt = s.now()
	return sc.Clone(), nil
}

// Delete removes a scenario in any state. Assignment back-references already
// written to users are kept.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.scenarios[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.scenarios, id)
	for i, sid := range s.scenarioOrder {
		if sid == id {
			s.scenarioOrder = append(s.scenarioOrder[:i], s.scenarioOrder[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns a copy of a scenario
func (s *Store) Get(id string) (*model.Scenario, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sc, ok := s.scenarios[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return sc.Clone(), nil
}

// Scenarios returns copies of all scenarios in creation order
func (s *Store) Scenarios() []*model.Scenario {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Scenario, 0, len(s.scenarioOrder))
	for _, id := range s.scenarioOrder {
		out = append(out, s.scenarios[id].Clone())
	}
	return out
}

// Users returns copies of the population in ingestion order
func (s *Store) Users() []*model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		out = append(out, s.users[id].Clone())
	}
	return out
}

// AssignedUsers returns the users chosen by the last simulation of a scenario.
// Assignees no longer present in the population are skipped.
func (s *Store) AssignedUsers(id string) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sc, ok := s.scenarios[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	out := make([]*model.User, 0, len(sc.UsersAssigned))
	for _, uid := range sc.UsersAssigned {
		if u, ok := s.users[uid]; ok {
			out = append(out, u.Clone())
		}
	}
	return out, nil
}

// SetUsers replaces the population. Back-references of users that are still
// present are carried over. Every record is validated before anything changes.
func (s *Store) SetUsers(users []model.User) error {
	next := make(map[string]*model.User, len(users))
	order := make([]string, 0, len(users))
	for i := range users {
		u := users[i]
		if err := s.validate.Struct(&u); err != nil {
			return fmt.Errorf("%w: user %q: %v", ErrInvalidArgument, u.ID, err)
		}
		if _, dup := next[u.ID]; dup {
			return fmt.Errorf("%w: duplicate user id %q", ErrInvalidArgument, u.ID)
		}
		next[u.ID] = u.Clone()
		order = append(order, u.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, u := range next {
		if prev, ok := s.users[id]; ok {
			for _, sid := range prev.AssignedScenarios {
				if !contains(u.AssignedScenarios, sid) {
					u.AssignedScenarios = append(u.AssignedScenarios, sid)
				}
			}
		}
	}
	s.users = next
	s.userOrder = order
	return nil
}

// UpsertUsers adds new users and updates the attributes of known ones,
// keeping their back-references. Nothing changes if any record is invalid.
func (s *Store) UpsertUsers(users []model.User) error {
	seen := make(map[string]bool, len(users))
	for i := range users {
		if err := s.validate.Struct(&users[i]); err != nil {
			return fmt.Errorf("%w: user %q: %v", ErrInvalidArgument, users[i].ID, err)
		}
		if seen[users[i].ID] {
			return fmt.Errorf("%w: duplicate user id %q", ErrInvalidArgument, users[i].ID)
		}
		seen[users[i].ID] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range users {
		u := users[i].Clone()
		if prev, ok := s.users[u.ID]; ok {
			u.AssignedScenarios = prev.AssignedScenarios
		} else {
			u.AssignedScenarios = nil
			s.userOrder = append(s.userOrder, u.ID)
		}
		s.users[u.ID] = u
	}
	return nil
}

func normalizeQuestions(ids []string) ([]string, error) {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			return nil, fmt.Errorf("%w: empty question id", ErrInvalidArgument)
		}
		out = append(out, id)
	}
	return out, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
