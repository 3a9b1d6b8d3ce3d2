// Package cache implements the read-through Redis cache in front of the article
// store. Every operation is best-effort: backend failures are logged and
// counted, reads degrade to misses and writes are dropped.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Atlas00000/sharevoices/internal/logger"
	"github.com/Atlas00000/sharevoices/internal/metrics"
)

const (
	defaultTimeout  = 200 * time.Millisecond
	defaultTTL      = time.Hour
	defaultStatsTTL = 5 * time.Minute
	scanBatchSize   = 100
)

// setIfGeneration writes KEYS[1] only while the write generation at KEYS[2]
// still holds the value observed before the store read.
var setIfGeneration = redis.NewScript(`
if (redis.call("GET", KEYS[2]) or "0") == ARGV[3] then
	return redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
end
return false
`)

// Option mutates cache configuration.
type Option func(*Cache)

// WithTimeout bounds every round trip to Redis.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Cache) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithTTL sets the lifetime of article and listing entries.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithStatsTTL sets the lifetime of statistics entries.
func WithStatsTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.statsTTL = ttl
		}
	}
}

// Cache is a JSON cache backed by Redis.
type Cache struct {
	client   *redis.Client
	timeout  time.Duration
	ttl      time.Duration
	statsTTL time.Duration
}

// New wraps a connected Redis client.
func New(client *redis.Client, options ...Option) *Cache {
	c := &Cache{
		client:   client,
		timeout:  defaultTimeout,
		ttl:      defaultTTL,
		statsTTL: defaultStatsTTL,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// TTL returns the lifetime used for articles and listings.
func (c *Cache) TTL() time.Duration { return c.ttl }

// StatsTTL returns the lifetime used for statistics.
func (c *Cache) StatsTTL() time.Duration { return c.statsTTL }

// Ping checks connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}

// Get decodes the entry stored at key into dest and reports whether it was a hit.
// Backend and decode errors count as misses.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	started := time.Now()
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	data, err := c.client.Get(ctx, key).Bytes()
	metrics.ObserveDependencyCall(metrics.DependencyCache, "get", started)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.ObserveCache("get", "miss")
			return false
		}
		c.fail(ctx, "get", key, err)
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.fail(ctx, "decode", key, err)
		return false
	}

	metrics.ObserveCache("get", "hit")
	return true
}

// Set stores value at key for ttl.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		c.fail(ctx, "encode", key, err)
		return
	}

	started := time.Now()
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.fail(ctx, "set", key, err)
		return
	}
	metrics.ObserveDependencyCall(metrics.DependencyCache, "set", started)
	metrics.ObserveCache("set", "ok")
}

// Invalidate deletes the given keys.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}

	started := time.Now()
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.fail(ctx, "invalidate", keys[0], err)
		return
	}
	metrics.ObserveDependencyCall(metrics.DependencyCache, "invalidate", started)
	metrics.ObserveCache("invalidate", "ok")
}

// InvalidatePattern deletes every key matching a glob pattern using SCAN,
// one bounded round trip per batch.
func (c *Cache) InvalidatePattern(ctx context.Context, pattern string) {
	started := time.Now()
	var cursor uint64
	for {
		keys, next, err := c.scan(ctx, cursor, pattern)
		if err != nil {
			c.fail(ctx, "scan", pattern, err)
			return
		}
		if len(keys) > 0 {
			if err := c.del(ctx, keys); err != nil {
				c.fail(ctx, "invalidate", pattern, err)
				return
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	metrics.ObserveDependencyCall(metrics.DependencyCache, "invalidate_pattern", started)
	metrics.ObserveCache("invalidate_pattern", "ok")
}

// InvalidateArticle removes every entry that can hold a stale view of the
// article: the entity under its id and each known slug, all listings, its
// statistics and the global statistics. It also advances the write generation
// so fills that read the store before this call are discarded.
func (c *Cache) InvalidateArticle(ctx context.Context, id string, slugs ...string) {
	c.bumpGeneration(ctx)

	keys := []string{ArticleKey(id), ArticleStatsKey(id), GlobalStatsKey}
	for _, slug := range slugs {
		if slug != "" {
			keys = append(keys, ArticleKey(slug))
		}
	}
	c.Invalidate(ctx, keys...)
	c.InvalidatePattern(ctx, ArticleListPattern)
}

// Fill guards a read-through population against a concurrent write. Take it
// with BeginFill before reading the store, then Set the loaded value through it.
type Fill struct {
	cache      *Cache
	generation int64
	ok         bool
}

// BeginFill records the current write generation. If Redis cannot be read
// the returned Fill drops every Set.
func (c *Cache) BeginFill(ctx context.Context) Fill {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	generation, err := c.client.Get(ctx, generationKey).Int64()
	switch {
	case errors.Is(err, redis.Nil):
		return Fill{cache: c, ok: true}
	case err != nil:
		c.fail(ctx, "generation", generationKey, err)
		return Fill{cache: c}
	}
	return Fill{cache: c, generation: generation, ok: true}
}

// Set stores value at key for ttl unless an article write happened since
// BeginFill.
func (f Fill) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if !f.ok {
		return
	}
	c := f.cache
	if ttl <= 0 {
		ttl = c.ttl
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.fail(ctx, "encode", key, err)
		return
	}

	started := time.Now()
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err = setIfGeneration.Run(ctx, c.client, []string{key, generationKey},
		data, ttl.Milliseconds(), strconv.FormatInt(f.generation, 10)).Err()
	switch {
	case errors.Is(err, redis.Nil):
		metrics.ObserveCache("set", "stale")
		return
	case err != nil:
		c.fail(ctx, "set", key, err)
		return
	}
	metrics.ObserveDependencyCall(metrics.DependencyCache, "set", started)
	metrics.ObserveCache("set", "ok")
}

func (c *Cache) bumpGeneration(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		c.fail(ctx, "generation", generationKey, err)
	}
}

func (c *Cache) scan(ctx context.Context, cursor uint64, pattern string) ([]string, uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
}

func (c *Cache) del(ctx context.Context, keys []string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.client.Del(ctx, keys...).Err()
}

func (c *Cache) fail(ctx context.Context, operation, key string, err error) {
	metrics.ObserveCache(operation, "error")
	metrics.ObserveDependencyFailure(metrics.DependencyCache, operation)
	logger.WarnContext(ctx, "cache operation failed",
		slog.String("operation", operation),
		slog.String("key", key),
		slog.String("error", err.Error()))
}

// GetOrLoad returns the cached value at key, or calls load and caches its
// result for ttl. Errors from load are returned and nothing is cached, and
// neither is a result that raced with an article write.
func GetOrLoad[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	var cached T
	if c.Get(ctx, key, &cached) {
		return cached, nil
	}

	fill := c.BeginFill(ctx)
	value, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	fill.Set(ctx, key, value, ttl)
	return value, nil
}
