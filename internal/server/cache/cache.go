// Package cache implements the playlist read cache: a byte-level Store
// abstraction with Redis and in-memory backends, and a cache-aside wrapper
// around playlist song reads.
package cache

import (
	"context"
	"time"
)

// Store is a minimal byte-valued cache with per-key expiry.
//
// Get returns common.ErrCacheMiss when the key is absent and
// common.ErrCacheUnavailable (wrapped) when the backend cannot be reached.
// Callers distinguish the two with errors.Is; neither may be surfaced to
// the end caller.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
