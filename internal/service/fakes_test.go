package service

import (
	"context"
	"greenmind/internal/model"
	"greenmind/internal/repository"
	"strconv"
	"sync"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo is a testify mock of repository.UserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepo) UpsertMany(ctx context.Context, users []model.User) (int, error) {
	args := m.Called(ctx, users)
	return args.Int(0), args.Error(1)
}

type fakeQuestionSetRepo struct {
	sets map[string]*model.QuestionSet
}

func newFakeQuestionSetRepo() *fakeQuestionSetRepo {
	return &fakeQuestionSetRepo{sets: map[string]*model.QuestionSet{}}
}

func (r *fakeQuestionSetRepo) Create(ctx context.Context, set *model.QuestionSet) error {
	r.sets[set.ID] = set
	return nil
}

func (r *fakeQuestionSetRepo) GetByID(ctx context.Context, id string) (*model.QuestionSet, error) {
	return r.sets[id], nil
}

func (r *fakeQuestionSetRepo) List(ctx context.Context) ([]*model.QuestionSet, error) {
	out := make([]*model.QuestionSet, 0, len(r.sets))
	for _, s := range r.sets {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeQuestionSetRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.sets[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.sets, id)
	return nil
}

type fakeBehaviorModelRepo struct {
	models map[string]*model.BehaviorModel
}

func newFakeBehaviorModelRepo() *fakeBehaviorModelRepo {
	return &fakeBehaviorModelRepo{models: map[string]*model.BehaviorModel{}}
}

func (r *fakeBehaviorModelRepo) Create(ctx context.Context, m *model.BehaviorModel) error {
	r.models[m.ID] = m
	return nil
}

func (r *fakeBehaviorModelRepo) GetByID(ctx context.Context, id string) (*model.BehaviorModel, error) {
	return r.models[id], nil
}

func (r *fakeBehaviorModelRepo) List(ctx context.Context) ([]*model.BehaviorModel, error) {
	out := make([]*model.BehaviorModel, 0, len(r.models))
	for _, m := range r.models {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeBehaviorModelRepo) Update(ctx context.Context, m *model.BehaviorModel) error {
	if _, ok := r.models[m.ID]; !ok {
		return repository.ErrNotFound
	}
	r.models[m.ID] = m
	return nil
}

func (r *fakeBehaviorModelRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.models[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.models, id)
	return nil
}

type fakeTemplateRepo struct {
	templates []model.QuestionTemplate
}

func (r *fakeTemplateRepo) CreateMany(ctx context.Context, templates []model.QuestionTemplate) error {
	r.templates = append(r.templates, templates...)
	return nil
}

func (r *fakeTemplateRepo) ListByModel(ctx context.Context, behaviorModelID string) ([]model.QuestionTemplate, error) {
	var out []model.QuestionTemplate
	for _, t := range r.templates {
		if t.BehaviorModelID == behaviorModelID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTemplateRepo) GetByIDs(ctx context.Context, ids []string) ([]model.QuestionTemplate, error) {
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []model.QuestionTemplate
	for _, t := range r.templates {
		if want[t.ID] {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeFeedbackRepo struct {
	list []*model.Feedback
}

func (r *fakeFeedbackRepo) Create(ctx context.Context, fb *model.Feedback) error {
	r.list = append(r.list, fb)
	return nil
}

func (r *fakeFeedbackRepo) ListByScenario(ctx context.Context, scenarioID string) ([]*model.Feedback, error) {
	var out []*model.Feedback
	for _, fb := range r.list {
		if fb.ScenarioID == scenarioID {
			out = append(out, fb)
		}
	}
	return out, nil
}

type fakeTemplateCache struct {
	entries     map[string][]model.QuestionTemplate
	invalidated []string
}

func newFakeTemplateCache() *fakeTemplateCache {
	return &fakeTemplateCache{entries: map[string][]model.QuestionTemplate{}}
}

func (c *fakeTemplateCache) key(id string, count int) string {
	return id + "/" + strconv.Itoa(count)
}

func (c *fakeTemplateCache) Set(ctx context.Context, id string, count int, templates []model.QuestionTemplate) error {
	c.entries[c.key(id, count)] = templates
	return nil
}

func (c *fakeTemplateCache) Get(ctx context.Context, id string, count int) ([]model.QuestionTemplate, error) {
	return c.entries[c.key(id, count)], nil
}

func (c *fakeTemplateCache) Invalidate(ctx context.Context, id string) error {
	c.invalidated = append(c.invalidated, id)
	return nil
}

type fakeAnalyticsCache struct {
	entries map[string]*model.OceanAnalytics
	sets    int
}

func newFakeAnalyticsCache() *fakeAnalyticsCache {
	return &fakeAnalyticsCache{entries: map[string]*model.OceanAnalytics{}}
}

func (c *fakeAnalyticsCache) Get(ctx context.Context, id string) (*model.OceanAnalytics, error) {
	return c.entries[id], nil
}

func (c *fakeAnalyticsCache) Set(ctx context.Context, a *model.OceanAnalytics) error {
	c.sets++
	c.entries[a.ScenarioID] = a
	return nil
}

func (c *fakeAnalyticsCache) Invalidate(ctx context.Context, id string) error {
	delete(c.entries, id)
	return nil
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []string
}

func (b *recordingBroadcaster) BroadcastToDashboards(msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, msgType)
}
