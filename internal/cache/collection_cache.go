package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
)

// CollectionCache mirrors entity collections into Redis as JSON documents,
// one key per collection name. Writes go through after every successful
// database mutation; reads are served from here when the database errors.
type CollectionCache struct {
	redis *RedisClient
}

// NewCollectionCache creates a new CollectionCache.
func NewCollectionCache(redis *RedisClient) *CollectionCache {
	return &CollectionCache{redis: redis}
}

func (c *CollectionCache) key(collection string) string {
	return fmt.Sprintf("collection:%s", collection)
}

// Put replaces the cached snapshot of a collection. Failures are logged and
// swallowed: the cache is an availability fallback, never the system of record.
func (c *CollectionCache) Put(ctx context.Context, collection string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("collection", collection).Msg("Failed to marshal collection snapshot")
		return
	}
	if err := c.redis.Set(ctx, c.key(collection), string(data), 0); err != nil {
		log.Warn().Err(err).Str("collection", collection).Msg("Failed to cache collection snapshot")
	}
}

// Get loads the cached snapshot of a collection into dest. It returns false
// when the key is absent. A corrupted payload is logged, the key is deleted,
// and the caller falls back to defaults.
func (c *CollectionCache) Get(ctx context.Context, collection string, dest interface{}) (bool, error) {
	raw, err := c.redis.Get(ctx, c.key(collection))
	if err != nil {
		if IsNil(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		log.Error().Err(err).Str("collection", collection).Msg("Corrupted collection snapshot, clearing key")
		c.Invalidate(ctx, collection)
		return false, nil
	}
	return true, nil
}

// Invalidate drops the cached snapshot of a collection.
func (c *CollectionCache) Invalidate(ctx context.Context, collection string) {
	if err := c.redis.Delete(ctx, c.key(collection)); err != nil {
		log.Warn().Err(err).Str("collection", collection).Msg("Failed to invalidate collection snapshot")
	}
}
