package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"greenmind/internal/cache"
	"greenmind/internal/config"
	"greenmind/internal/model"
	"greenmind/internal/repository"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxTemplatesPerRequest bounds a single generation batch
const MaxTemplatesPerRequest = 20

// LikertOptions are the answer labels attached to every generated template
var LikertOptions = []string{"Strongly disagree", "Disagree", "Neutral", "Agree", "Strongly agree"}

// TemplateService generates question templates for behavior models via Gemini
type TemplateService struct {
	config    *config.AIConfig
	client    *http.Client
	models    repository.BehaviorModelRepo
	templates repository.TemplateRepo
	cache     cache.TemplateCache
}

// NewTemplateService creates a new template service
func NewTemplateService(cfg *config.AIConfig, models repository.BehaviorModelRepo, templates repository.TemplateRepo, templateCache cache.TemplateCache) *TemplateService {
	return &TemplateService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
		models:    models,
		templates: templates,
		cache:     templateCache,
	}
}

// generatedQuestion is the JSON shape requested from the model
type generatedQuestion struct {
	Prompt   string `json:"prompt"`
	Reversed bool   `json:"reversed"`
}

// Generate builds count templates for a behavior model. Cached batches are
// reused; Gemini failures fall back to the built-in generator.
func (s *TemplateService) Generate(ctx context.Context, behaviorModelID string, count int) ([]model.QuestionTemplate, error) {
	if count < 1 || count > MaxTemplatesPerRequest {
		return nil, fmt.Errorf("%w: count must be between 1 and %d", ErrValidation, MaxTemplatesPerRequest)
	}

	bm, err := s.models.GetByID(ctx, behaviorModelID)
	if err != nil {
		return nil, err
	}
	if bm == nil {
		return nil, fmt.Errorf("%w: behavior model %s", ErrNotFound, behaviorModelID)
	}

	cached, err := s.cache.Get(ctx, behaviorModelID, count)
	if err != nil {
		log.Printf("Warning: template cache read failed: %v", err)
	}
	if len(cached) > 0 {
		return cached, nil
	}

	questions, source := s.generateQuestions(ctx, bm, count)

	now := time.Now()
	out := make([]model.QuestionTemplate, 0, len(questions))
	for _, q := range questions {
		out = append(out, model.QuestionTemplate{
			ID:              uuid.New().String(),
			BehaviorModelID: bm.ID,
			Trait:           bm.Trait,
			Prompt:          q.Prompt,
			Options:         append([]string{}, LikertOptions...),
			Reversed:        q.Reversed,
			Source:          source,
			CreatedAt:       now,
		})
	}

	if err := s.templates.CreateMany(ctx, out); err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, behaviorModelID, count, out); err != nil {
		log.Printf("Warning: template cache write failed: %v", err)
	}
	log.Printf("Generated %d %s templates for behavior model %s", len(out), source, bm.ID)
	return out, nil
}

// List returns the stored templates of a behavior model
func (s *TemplateService) List(ctx context.Context, behaviorModelID string) ([]model.QuestionTemplate, error) {
	return s.templates.ListByModel(ctx, behaviorModelID)
}

func (s *TemplateService) generateQuestions(ctx context.Context, bm *model.BehaviorModel, count int) ([]generatedQuestion, string) {
	if !s.config.IsEnabled() {
		return mockQuestions(bm, count), "mock"
	}

	response, err := s.callGemini(ctx, s.config.TemplateModel, buildTemplatePrompt(bm, count))
	if err != nil {
		log.Printf("Gemini template generation failed, using mock: %v", err)
		return mockQuestions(bm, count), "mock"
	}

	var result struct {
		Questions []generatedQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(response), &result); err != nil {
		log.Printf("Gemini returned invalid JSON, using mock: %v", err)
		return mockQuestions(bm, count), "mock"
	}

	questions := make([]generatedQuestion, 0, count)
	for _, q := range result.Questions {
		if strings.TrimSpace(q.Prompt) == "" {
			continue
		}
		questions = append(questions, q)
		if len(questions) == count {
			break
		}
	}
	if len(questions) == 0 {
		return mockQuestions(bm, count), "mock"
	}
	return questions, "gemini"
}

// callGemini makes a request to the Gemini API
func (s *TemplateService) callGemini(ctx context.Context, modelName, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", s.config.ModelEndpoint(modelName), s.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

func buildTemplatePrompt(bm *model.BehaviorModel, count int) string {
	return fmt.Sprintf(`You write personality assessment items. Return ONLY valid JSON:
{
  "questions": [{"prompt": "first-person statement", "reversed": false}]
}

Trait: %s (%s)
Behavior: %s
Description: %s
Keywords: %s

Write exactly %d short first-person statements answerable on a 5-point agreement scale.
Mark an item "reversed": true when agreeing indicates LOW %s.`,
		bm.Trait.Name(), bm.Trait, bm.Name, bm.Description, strings.Join(bm.Keywords, ", "), count, bm.Trait.Name())
}

var mockStems = map[model.Trait][2]string{
	model.TraitOpenness:          {"I enjoy exploring new ideas about %s.", "I prefer familiar routines over trying new %s."},
	model.TraitConscientiousness: {"I plan ahead when it comes to %s.", "I often leave %s unfinished."},
	model.TraitExtraversion:      {"I feel energized by %s with other people.", "I avoid %s when there is a crowd."},
	model.TraitAgreeableness:     {"I try to help others with %s.", "I rarely consider other people's views on %s."},
	model.TraitNeuroticism:       {"I worry a lot about %s.", "I stay calm when %s goes wrong."},
}

// mockQuestions alternates regular and reverse-keyed items over the keywords
func mockQuestions(bm *model.BehaviorModel, count int) []generatedQuestion {
	topics := bm.Keywords
	if len(topics) == 0 {
		topics = []string{strings.ToLower(bm.Name)}
	}
	stems, ok := mockStems[bm.Trait]
	if !ok {
		stems = [2]string{"I relate to %s.", "I do not relate to %s."}
	}

	out := make([]generatedQuestion, count)
	for i := range out {
		reversed := i%2 == 1
		stem := stems[0]
		if reversed {
			stem = stems[1]
		}
		out[i] = generatedQuestion{
			Prompt:   fmt.Sprintf(stem, topics[(i/2)%len(topics)]),
			Reversed: reversed,
		}
	}
	return out
}
