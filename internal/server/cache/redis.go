package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tunedeck/internal/common"
	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store over a Redis client. Backend failures are
// wrapped in common.ErrCacheUnavailable so the cache-aside layer can degrade
// to the loader instead of failing the read.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore constructs a store over the given client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.ErrCacheMiss
		}
		return nil, fmt.Errorf("%w: %v", common.ErrCacheUnavailable, err)
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrCacheUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	// DEL of an absent key is a no-op, which keeps invalidation idempotent
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrCacheUnavailable, err)
	}
	return nil
}
