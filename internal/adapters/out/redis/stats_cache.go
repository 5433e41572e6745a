// Package redis implements the dashboard statistics cache on top of Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"negoce/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// StatsCache stores precomputed dashboard payloads with a fixed TTL.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache wraps an existing Redis client. The TTL applies to every
// Set call.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

// Get returns the cached payload, mapping a Redis nil reply to
// ports.ErrCacheMiss.
func (c *StatsCache) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("stats cache get %q: %w", key, err)
	}
	return payload, nil
}

// Set stores the payload under the configured TTL.
func (c *StatsCache) Set(ctx context.Context, key string, payload []byte) error {
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("stats cache set %q: %w", key, err)
	}
	return nil
}

// Invalidate drops the entry. Deleting a missing key is not an error.
func (c *StatsCache) Invalidate(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("stats cache invalidate %q: %w", key, err)
	}
	return nil
}
