package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"greenmind/internal/model"
	"time"

	"github.com/redis/go-redis/v9"
)

// AnalyticsCache holds computed OCEAN analytics per scenario
type AnalyticsCache interface {
	Get(ctx context.Context, scenarioID string) (*model.OceanAnalytics, error)
	Set(ctx context.Context, analytics *model.OceanAnalytics) error
	Invalidate(ctx context.Context, scenarioID string) error
}

type analyticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnalyticsCache creates a new analytics cache
func NewAnalyticsCache(client *redis.Client) AnalyticsCache {
	return &analyticsCache{
		client: client,
		ttl:    10 * time.Minute,
	}
}

func (c *analyticsCache) key(scenarioID string) string {
	return fmt.Sprintf("analytics:%s", scenarioID)
}

func (c *analyticsCache) Get(ctx context.Context, scenarioID string) (*model.OceanAnalytics, error) {
	data, err := c.client.Get(ctx, c.key(scenarioID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var a model.OceanAnalytics
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *analyticsCache) Set(ctx context.Context, analytics *model.OceanAnalytics) error {
	data, err := json.Marshal(analytics)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(analytics.ScenarioID), data, c.ttl).Err()
}

func (c *analyticsCache) Invalidate(ctx context.Context, scenarioID string) error {
	return c.client.Del(ctx, c.key(scenarioID)).Err()
}
