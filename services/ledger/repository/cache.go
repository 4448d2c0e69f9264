package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/ledger/internal/pkg/constants"
	"github.com/piresc/ledger/internal/pkg/models"
)

// StatsCache implements ledger.StatsCache on Redis
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a Redis-backed stats cache
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

func (c *StatsCache) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	raw, err := c.client.Get(ctx, constants.KeyDashboardStats).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached stats: %w", err)
	}

	var stats models.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode cached stats: %w", err)
	}
	return &stats, nil
}

func (c *StatsCache) SetStats(ctx context.Context, stats *models.DashboardStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}
	if err := c.client.Set(ctx, constants.KeyDashboardStats, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache stats: %w", err)
	}
	return nil
}

func (c *StatsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, constants.KeyDashboardStats).Err(); err != nil {
		return fmt.Errorf("failed to invalidate stats: %w", err)
	}
	return nil
}

// NoopStatsCache never caches
type NoopStatsCache struct{}

func (NoopStatsCache) GetStats(ctx context.Context) (*models.DashboardStats, error) { return nil, nil }
func (NoopStatsCache) SetStats(ctx context.Context, stats *models.DashboardStats) error {
	return nil
}
func (NoopStatsCache) Invalidate(ctx context.Context) error { return nil }
