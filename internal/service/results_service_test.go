package service

import (
	"context"
	"fmt"
	"greenmind/internal/model"
	"greenmind/internal/scenario"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sentScenario(t *testing.T) (*scenario.Store, *model.Scenario) {
	t.Helper()
	store := scenario.NewStore(scenario.NewSeededSampler(3))
	require.NoError(t, store.SetUsers([]model.User{
		{ID: "u1", Age: 20, Location: "Hanoi"},
		{ID: "u2", Age: 21, Location: "Hanoi"},
		{ID: "u3", Age: 22, Location: "Hanoi"},
		{ID: "u4", Age: 23, Location: "Hanoi"},
	}))
	sc, err := store.Generate(scenario.GenerateInput{
		Demographic: model.Demographic{AgeRange: [2]int{18, 30}, Location: "Hanoi"},
		Percentage:  1,
		Questions:   []string{"q1", "q2"},
	})
	require.NoError(t, err)
	sc, err = store.Simulate(sc.ID)
	require.NoError(t, err)
	return store, sc
}

func TestSubmitFeedbackAndAnalytics(t *testing.T) {
	store, sc := sentScenario(t)
	repo := &fakeFeedbackRepo{}
	ac := newFakeAnalyticsCache()
	svc := NewResultsService(store, repo, ac)
	ctx := context.Background()

	require.NoError(t, svc.SubmitFeedback(ctx, sc.ID, &model.Feedback{
		UserID: "u1",
		Scores: []model.TraitScore{
			{QuestionID: "q1", Trait: model.TraitOpenness, Score: 4},
			{QuestionID: "q2", Trait: model.TraitNeuroticism, Score: 2},
		},
	}))
	require.NoError(t, svc.SubmitFeedback(ctx, sc.ID, &model.Feedback{
		UserID: "u2",
		Scores: []model.TraitScore{{QuestionID: "q1", Trait: model.TraitOpenness, Score: 2}},
	}))

	a, err := svc.Analytics(ctx, sc.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, a.Respondents)
	assert.Equal(t, 4, a.AssignedUsers)
	assert.InDelta(t, 0.5, a.ResponseRate, 1e-9)
	require.Len(t, a.Traits, 5)

	openness := a.Traits[0]
	assert.Equal(t, model.TraitOpenness, openness.Trait)
	assert.Equal(t, 2, openness.Count)
	assert.InDelta(t, 3.0, openness.Mean, 1e-9)
	assert.InDelta(t, 1.0, openness.StdDev, 1e-9)
	assert.InDelta(t, 2.0, openness.Min, 1e-9)
	assert.InDelta(t, 4.0, openness.Max, 1e-9)

	assert.Equal(t, 0, a.Traits[1].Count)
	assert.Equal(t, 1, a.Traits[4].Count)

	// second read is served from cache
	_, err = svc.Analytics(ctx, sc.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, ac.sets)

	// new feedback invalidates the snapshot
	require.NoError(t, svc.SubmitFeedback(ctx, sc.ID, &model.Feedback{
		UserID: "u3",
		Scores: []model.TraitScore{{QuestionID: "q1", Trait: model.TraitExtraversion, Score: 5}},
	}))
	a, err = svc.Analytics(ctx, sc.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, a.Respondents)
	assert.Equal(t, 2, ac.sets)
}

func TestSubmitFeedbackRejections(t *testing.T) {
	store, sc := sentScenario(t)
	svc := NewResultsService(store, &fakeFeedbackRepo{}, newFakeAnalyticsCache())
	ctx := context.Background()

	valid := []model.TraitScore{{QuestionID: "q1", Trait: model.TraitOpenness, Score: 3}}

	err := svc.SubmitFeedback(ctx, sc.ID, &model.Feedback{UserID: "stranger", Scores: valid})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.SubmitFeedback(ctx, sc.ID, &model.Feedback{UserID: "u1",
		Scores: []model.TraitScore{{QuestionID: "q1", Trait: model.TraitOpenness, Score: 9}}})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.SubmitFeedback(ctx, "missing", &model.Feedback{UserID: "u1", Scores: valid})
	assert.ErrorIs(t, err, scenario.ErrNotFound)

	draft, err := store.Generate(scenario.GenerateInput{
		Demographic: model.Demographic{AgeRange: [2]int{18, 30}, Location: "Hanoi"},
		Percentage:  1,
	})
	require.NoError(t, err)
	err = svc.SubmitFeedback(ctx, draft.ID, &model.Feedback{UserID: "u1", Scores: valid})
	assert.ErrorIs(t, err, scenario.ErrPreconditionFailed)
}

func TestAnalyticsAfterResimulation(t *testing.T) {
	store := scenario.NewStore(scenario.NewSeededSampler(11))
	users := make([]model.User, 10)
	for i := range users {
		users[i] = model.User{ID: fmt.Sprintf("u%d", i), Age: 20, Location: "Hanoi"}
	}
	require.NoError(t, store.SetUsers(users))
	sc, err := store.Generate(scenario.GenerateInput{
		Demographic: model.Demographic{AgeRange: [2]int{18, 30}, Location: "Hanoi"},
		Percentage:  0.1,
		Questions:   []string{"q1"},
	})
	require.NoError(t, err)

	svc := NewResultsService(store, &fakeFeedbackRepo{}, newFakeAnalyticsCache())
	ctx := context.Background()

	answered := map[string]bool{}
	for len(answered) < 3 {
		sent, err := store.Simulate(sc.ID)
		require.NoError(t, err)
		require.Len(t, sent.UsersAssigned, 1)
		uid := sent.UsersAssigned[0]
		if answered[uid] {
			continue
		}
		answered[uid] = true
		require.NoError(t, svc.SubmitFeedback(ctx, sc.ID, &model.Feedback{
			UserID: uid,
			Scores: []model.TraitScore{{QuestionID: "q1", Trait: model.TraitAgreeableness, Score: 3}},
		}))
	}

	a, err := svc.Analytics(ctx, sc.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, a.AssignedUsers)
	assert.Equal(t, 1, a.Respondents)
	assert.Equal(t, 2, a.FormerRespondents)
	assert.LessOrEqual(t, a.ResponseRate, 1.0)
	assert.InDelta(t, 1.0, a.ResponseRate, 1e-9)
	assert.Equal(t, 3, a.Traits[3].Count)
}
