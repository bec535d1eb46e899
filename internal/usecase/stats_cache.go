package usecase

import (
	"context"
	"time"
)

// StatsCache is the optional read-through cache in front of the aggregation
// queries. A nil implementation is valid everywhere it is consumed; every
// write path invalidates by pattern so cached aggregates never outlive a
// mutation by more than the invalidation round-trip.
type StatsCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const (
	statsCacheTTL     = 60 * time.Second
	statsCachePattern = "applications:stats:*"
)

func statsCacheKey(jobID string) string {
	if jobID == "" {
		return "applications:stats:all"
	}
	return "applications:stats:" + jobID
}
