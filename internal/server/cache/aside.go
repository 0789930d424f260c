package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dmitrijs2005/tunedeck/internal/common"
	"github.com/dmitrijs2005/tunedeck/internal/logging"
	"github.com/dmitrijs2005/tunedeck/internal/server/models"
)

const keyPrefix = "playlist-songs:"

// Loader fetches the authoritative song list from persistent storage.
type Loader func(ctx context.Context) ([]models.SongSummary, error)

// SongCache wraps playlist song reads with a get-or-compute-then-store
// policy. A cached entry is authoritative until the next invalidation; the
// TTL is only a safety net behind the explicit invalidation protocol.
//
// Store failures never fail a read: an unavailable backend degrades to the
// loader and is logged. Loader failures propagate and nothing is cached.
type SongCache struct {
	store  Store
	ttl    time.Duration
	logger logging.Logger
}

// NewSongCache builds a SongCache over the given store.
func NewSongCache(store Store, ttl time.Duration, logger logging.Logger) *SongCache {
	return &SongCache{
		store:  store,
		ttl:    ttl,
		logger: logger.With("module", "song_cache"),
	}
}

// GetSongs returns the cached song list for playlistID, or invokes loader
// on a miss and stores the result. An empty playlist is cached as an empty
// list, not treated as a miss.
func (c *SongCache) GetSongs(ctx context.Context, playlistID string, loader Loader) ([]models.SongSummary, error) {
	key := keyPrefix + playlistID

	cached, err := c.store.Get(ctx, key)
	if err == nil {
		songs := make([]models.SongSummary, 0)
		if jsonErr := json.Unmarshal(cached, &songs); jsonErr == nil {
			return songs, nil
		}
		// a corrupt entry behaves like a miss
		c.logger.Warn(ctx, "discarding corrupt cache entry", "key", key)
	} else if !errors.Is(err, common.ErrCacheMiss) {
		c.logger.Warn(ctx, "cache store unavailable, falling back to loader", "key", key, "error", err.Error())
	}

	songs, err := loader(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(songs)
	if err != nil {
		// do not fail the read over a cache encoding problem
		c.logger.Error(ctx, "cache encode failed", "key", key, "error", err.Error())
		return songs, nil
	}
	if err := c.store.Set(ctx, key, encoded, c.ttl); err != nil {
		c.logger.Warn(ctx, "cache populate failed", "key", key, "error", err.Error())
	}

	return songs, nil
}

// Invalidate removes the cached entry for playlistID. It is idempotent and
// best-effort: a store failure is logged, and the TTL bounds the resulting
// staleness.
func (c *SongCache) Invalidate(ctx context.Context, playlistID string) {
	key := keyPrefix + playlistID
	if err := c.store.Delete(ctx, key); err != nil {
		c.logger.Warn(ctx, "cache invalidate failed", "key", key, "error", err.Error())
	}
}
