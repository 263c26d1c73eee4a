// Package cache provides a best-effort Redis page cache for the hot read
// endpoints (category list, featured, trending). Misses and Redis failures
// fall through to the backend; a nil client disables caching entirely so the
// storefront runs unchanged without Redis.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	keyPrefix  = "catalog:"
	DefaultTTL = 5 * time.Minute
)

type PageCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New builds a page cache over the given client. rdb may be nil, in which
// case every operation is a no-op.
func New(rdb *redis.Client, ttl time.Duration) *PageCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &PageCache{rdb: rdb, ttl: ttl}
}

// GetJSON loads a cached value into dest. Returns true only on a clean hit.
func (c *PageCache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	b, err := c.rdb.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(b, dest) == nil
}

// SetJSON stores a value best effort, ignoring marshal and Redis errors.
func (c *PageCache) SetJSON(ctx context.Context, key string, value any) {
	if c == nil || c.rdb == nil {
		return
	}
	b, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, keyPrefix+key, b, c.ttl).Err()
}

// InvalidateAll drops every cached catalog page. Called after admin writes so
// the storefront never serves stale product or category data.
func (c *PageCache) InvalidateAll(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	iter := c.rdb.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Warn().Err(err).Msg("cache scan failed during invalidation")
		return
	}
	if len(keys) > 0 {
		_ = c.rdb.Del(ctx, keys...).Err()
	}
}
