package ports

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by StatsCache.Get when no cached value exists.
var ErrCacheMiss = errors.New("stats cache miss")

// DashboardStatsCacheKey is the cache key under which the dashboard
// statistics payload is stored.
const DashboardStatsCacheKey = "stats:dashboard"

// StatsCache is a short-lived cache in front of the dashboard statistics
// query. The cache is best effort: adapters may fail without affecting the
// underlying query path.
type StatsCache interface {
	// Get returns the cached JSON payload, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a JSON payload under the adapter's configured TTL.
	Set(ctx context.Context, key string, payload []byte) error

	// Invalidate drops a cached entry, if present.
	Invalidate(ctx context.Context, key string) error
}
