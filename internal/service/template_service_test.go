package service

import (
	"context"
	"encoding/json"
	"greenmind/internal/config"
	"greenmind/internal/model"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTemplateFixture(cfg *config.AIConfig) (*TemplateService, *fakeBehaviorModelRepo, *fakeTemplateRepo, *fakeTemplateCache) {
	models := newFakeBehaviorModelRepo()
	models.models["bm-1"] = &model.BehaviorModel{
		ID:       "bm-1",
		Name:     "Curiosity",
		Trait:    model.TraitOpenness,
		Keywords: []string{"art", "travel"},
	}
	templates := &fakeTemplateRepo{}
	tc := newFakeTemplateCache()
	return NewTemplateService(cfg, models, templates, tc), models, templates, tc
}

func TestGenerateUsesMockWithoutAPIKey(t *testing.T) {
	svc, _, repo, tc := newTemplateFixture(&config.AIConfig{TimeoutMS: 1000})

	got, err := svc.Generate(context.Background(), "bm-1", 4)
	require.NoError(t, err)
	require.Len(t, got, 4)
	for i, tpl := range got {
		assert.Equal(t, "mock", tpl.Source)
		assert.Equal(t, model.TraitOpenness, tpl.Trait)
		assert.Equal(t, i%2 == 1, tpl.Reversed)
		assert.Len(t, tpl.Options, 5)
	}
	assert.Contains(t, got[0].Prompt, "art")
	assert.Contains(t, got[2].Prompt, "travel")
	assert.Len(t, repo.templates, 4)
	assert.Len(t, tc.entries, 1)

	again, err := svc.Generate(context.Background(), "bm-1", 4)
	require.NoError(t, err)
	assert.Equal(t, got, again)
	assert.Len(t, repo.templates, 4, "cached batch is not stored twice")
}

func TestGenerateCallsGemini(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/test-model:generateContent"))
		assert.Equal(t, "k", r.URL.Query().Get("key"))

		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if len(body.Contents) == 0 || len(body.Contents[0].Parts) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		gotPrompt = body.Contents[0].Parts[0].Text

		inner := `{"questions":[{"prompt":"I love museums.","reversed":false},{"prompt":"","reversed":false},{"prompt":"Art bores me.","reversed":true}]}`
		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{"parts": []map[string]string{{"text": inner}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	svc, _, _, _ := newTemplateFixture(&config.AIConfig{APIKey: "k", BaseURL: srv.URL, TemplateModel: "test-model", TimeoutMS: 2000})
	got, err := svc.Generate(context.Background(), "bm-1", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "gemini", got[0].Source)
	assert.Equal(t, "I love museums.", got[0].Prompt)
	assert.Equal(t, "Art bores me.", got[1].Prompt)
	assert.True(t, got[1].Reversed)
	assert.Contains(t, gotPrompt, "Openness")
	assert.Contains(t, gotPrompt, "art, travel")
}

func TestGenerateFallsBackOnGeminiError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc, _, _, _ := newTemplateFixture(&config.AIConfig{APIKey: "k", BaseURL: srv.URL, TemplateModel: "m", TimeoutMS: 2000})
	got, err := svc.Generate(context.Background(), "bm-1", 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "mock", got[0].Source)
}

func TestGenerateValidation(t *testing.T) {
	svc, _, _, _ := newTemplateFixture(&config.AIConfig{TimeoutMS: 1000})

	_, err := svc.Generate(context.Background(), "bm-1", 0)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.Generate(context.Background(), "bm-1", MaxTemplatesPerRequest+1)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.Generate(context.Background(), "nope", 2)
	assert.ErrorIs(t, err, ErrNotFound)
}
