package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"greenmind/internal/model"
	"time"

	"github.com/redis/go-redis/v9"
)

// TemplateCache handles Redis operations for AI-generated question templates
type TemplateCache interface {
	Set(ctx context.Context, behaviorModelID string, count int, templates []model.QuestionTemplate) error
	Get(ctx context.Context, behaviorModelID string, count int) ([]model.QuestionTemplate, error)
	Invalidate(ctx context.Context, behaviorModelID string) error
}

type templateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTemplateCache creates a new template cache
func NewTemplateCache(client *redis.Client) TemplateCache {
	return &templateCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *templateCache) key(behaviorModelID string, count int) string {
	return fmt.Sprintf("template:%s:%d", behaviorModelID, count)
}

func (c *templateCache) Set(ctx context.Context, behaviorModelID string, count int, templates []model.QuestionTemplate) error {
	data, err := json.Marshal(templates)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(behaviorModelID, count), data, c.ttl).Err()
}

func (c *templateCache) Get(ctx context.Context, behaviorModelID string, count int) ([]model.QuestionTemplate, error) {
	data, err := c.client.Get(ctx, c.key(behaviorModelID, count)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var templates []model.QuestionTemplate
	if err := json.Unmarshal([]byte(data), &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// Invalidate drops every cached batch of a behavior model
func (c *templateCache) Invalidate(ctx context.Context, behaviorModelID string) error {
	iter := c.client.Scan(ctx, 0, fmt.Sprintf("template:%s:*", behaviorModelID), 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
