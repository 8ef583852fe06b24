// Package cache provides a small byte-value cache used for the computed
// dashboard payload. The server works fine without one; a nil Cache simply
// disables caching.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque values under string keys with a TTL. Get returns
// common.ErrorNotFound for a missing or expired key.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
