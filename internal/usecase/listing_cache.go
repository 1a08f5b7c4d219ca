package usecase

import (
	"context"
	"time"
)

// ListingCache holds store query results between requests. Implementations
// must treat an unreachable backend as a miss.
type ListingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const (
	listingKeyPrefix  = "profiles:list:"
	listingKeyPattern = listingKeyPrefix + "*"
)
