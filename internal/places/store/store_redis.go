package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"codice/internal/places/metrics"
	"codice/internal/places/models"
)

const redisPlaceKeyPrefix = "places:"

// RedisCache is a read-through cache in front of another Store. Place data
// never changes at runtime, so entries only expire to bound memory, not for
// correctness.
type RedisCache struct {
	client   *redis.Client
	inner    Store
	cacheTTL time.Duration
	metrics  *metrics.Metrics
}

// NewRedisCache constructs a Redis read-through cache over inner.
// Usage: pass a configured Redis client; metrics may be nil.
func NewRedisCache(client *redis.Client, inner Store, cacheTTL time.Duration, metrics *metrics.Metrics) *RedisCache {
	return &RedisCache{
		client:   client,
		inner:    inner,
		cacheTTL: cacheTTL,
		metrics:  metrics,
	}
}

// Find loads a place by code, consulting Redis first and falling back to the
// inner store on miss. Cache write failures are swallowed: the lookup result
// is authoritative and a cold cache only costs latency.
//
// Errors: returns sentinel.ErrNotFound when the inner store has no entry;
// wraps Redis or JSON decode errors.
func (c *RedisCache) Find(ctx context.Context, code string) (*models.Place, error) {
	start := time.Now()
	key := redisPlaceKeyPrefix + strings.ToUpper(code)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var place models.Place
		if err := json.Unmarshal(data, &place); err != nil {
			return nil, fmt.Errorf("decode cached place: %w", err)
		}
		c.recordHit(start)
		return &place, nil
	case errors.Is(err, redis.Nil):
		c.recordMiss()
	default:
		return nil, fmt.Errorf("find cached place: %w", err)
	}

	place, err := c.inner.Find(ctx, code)
	if err != nil {
		c.metrics.ObserveLookup("redis", start, false)
		return nil, err
	}

	if payload, err := json.Marshal(place); err == nil {
		_ = c.client.Set(ctx, key, payload, c.cacheTTL).Err()
	}
	c.metrics.ObserveLookup("redis", start, true)
	return place, nil
}

// Put writes through to the inner store and invalidates the cached entry.
func (c *RedisCache) Put(ctx context.Context, place *models.Place) error {
	if err := c.inner.Put(ctx, place); err != nil {
		return err
	}
	_ = c.client.Del(ctx, redisPlaceKeyPrefix+strings.ToUpper(place.Code)).Err()
	return nil
}

// Count delegates to the inner store.
func (c *RedisCache) Count(ctx context.Context) (int, error) {
	return c.inner.Count(ctx)
}

func (c *RedisCache) recordHit(start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.CacheHits.Inc()
	c.metrics.ObserveLookup("redis", start, true)
}

func (c *RedisCache) recordMiss() {
	if c.metrics == nil {
		return
	}
	c.metrics.CacheMisses.Inc()
}
