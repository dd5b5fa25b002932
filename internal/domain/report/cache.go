package report

import (
	"context"
	"time"
)

// Cache stores computed reports keyed by granularity and window anchor.
// Get returns ok=false on a miss; errors indicate a degraded cache, which
// callers treat as a miss.
type Cache interface {
	Get(ctx context.Context, key string) (*Report, bool, error)
	Set(ctx context.Context, key string, r *Report, ttl time.Duration) error
}

// NoopCache satisfies Cache without storing anything.
type NoopCache struct{}

func (NoopCache) Get(_ context.Context, _ string) (*Report, bool, error) {
	return nil, false, nil
}

func (NoopCache) Set(_ context.Context, _ string, _ *Report, _ time.Duration) error {
	return nil
}
