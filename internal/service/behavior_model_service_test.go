package service

import (
	"context"
	"greenmind/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBehaviorModelCRUD(t *testing.T) {
	repo := newFakeBehaviorModelRepo()
	tc := newFakeTemplateCache()
	svc := NewBehaviorModelService(repo, tc)
	ctx := context.Background()

	m := &model.BehaviorModel{Name: "Punctuality", Trait: model.TraitConscientiousness}
	require.NoError(t, svc.Create(ctx, m))
	assert.NotEmpty(t, m.ID)

	got, err := svc.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Punctuality", got.Name)

	update := &model.BehaviorModel{Name: "Planning", Trait: model.TraitConscientiousness, Keywords: []string{"deadlines"}}
	require.NoError(t, svc.Update(ctx, m.ID, update))
	got, _ = svc.Get(ctx, m.ID)
	assert.Equal(t, "Planning", got.Name)
	assert.Equal(t, []string{m.ID}, tc.invalidated)

	require.NoError(t, svc.Delete(ctx, m.ID))
	_, err = svc.Get(ctx, m.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, m.ID), ErrNotFound)
}

func TestBehaviorModelValidation(t *testing.T) {
	svc := NewBehaviorModelService(newFakeBehaviorModelRepo(), newFakeTemplateCache())
	ctx := context.Background()

	assert.ErrorIs(t, svc.Create(ctx, &model.BehaviorModel{Name: "x", Trait: "Z"}), ErrValidation)
	assert.ErrorIs(t, svc.Create(ctx, &model.BehaviorModel{Trait: model.TraitOpenness}), ErrValidation)
	assert.ErrorIs(t, svc.Update(ctx, "missing", &model.BehaviorModel{Name: "x", Trait: model.TraitOpenness}), ErrNotFound)
}
