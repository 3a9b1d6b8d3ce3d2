package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Atlas00000/sharevoices/internal/cache"
	"github.com/Atlas00000/sharevoices/internal/domain"
)

func setupCache(t *testing.T, options ...cache.Option) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := cache.New(client, options...)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCache_GetSet(t *testing.T) {
	c, mr := setupCache(t, cache.WithTTL(time.Minute))
	ctx := context.Background()

	var got domain.Article
	assert.False(t, c.Get(ctx, cache.ArticleKey("a1"), &got))

	c.Set(ctx, cache.ArticleKey("a1"), domain.Article{ID: "a1", Title: "Cached"}, c.TTL())

	require.True(t, c.Get(ctx, cache.ArticleKey("a1"), &got))
	assert.Equal(t, "Cached", got.Title)
	assert.Equal(t, time.Minute, mr.TTL("article:a1"))
}

func TestCache_GetCorruptEntryIsMiss(t *testing.T) {
	c, mr := setupCache(t)
	require.NoError(t, mr.Set("article:broken", "{not json"))

	var got domain.Article
	assert.False(t, c.Get(context.Background(), "article:broken", &got))
}

func TestCache_BackendDownIsMiss(t *testing.T) {
	c, mr := setupCache(t, cache.WithTimeout(50*time.Millisecond))
	mr.Close()
	ctx := context.Background()

	var got domain.Article
	assert.False(t, c.Get(ctx, "article:a1", &got))
	assert.NotPanics(t, func() {
		c.Set(ctx, "article:a1", domain.Article{ID: "a1"}, time.Minute)
		c.InvalidateArticle(ctx, "a1", "slug")
	})
}

func TestCache_InvalidateArticle(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	keys := []string{
		"article:a1",
		"article:old-slug",
		"article:new-slug",
		"article:stats:a1",
		"global:stats",
		"articles:1:10:::::",
		"articles:2:10:news::::",
	}
	for _, key := range keys {
		require.NoError(t, mr.Set(key, "{}"))
	}
	require.NoError(t, mr.Set("article:a2", "{}"))
	require.NoError(t, mr.Set("article:stats:a2", "{}"))

	c.InvalidateArticle(ctx, "a1", "old-slug", "new-slug")

	for _, key := range keys {
		assert.False(t, mr.Exists(key), "key %s should be invalidated", key)
	}
	assert.True(t, mr.Exists("article:a2"))
	assert.True(t, mr.Exists("article:stats:a2"))
}

func TestCache_InvalidatePatternScansInBatches(t *testing.T) {
	c, mr := setupCache(t)
	for i := 0; i < 250; i++ {
		require.NoError(t, mr.Set(cache.ArticleListKey(domain.ArticleFilter{Page: i + 1, Limit: 10}), "{}"))
	}
	require.NoError(t, mr.Set("article:keep", "{}"))

	c.InvalidatePattern(context.Background(), cache.ArticleListPattern)

	assert.Equal(t, []string{"article:keep"}, mr.Keys())
}

func TestGetOrLoad(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	calls := 0
	load := func(context.Context) (domain.GlobalStats, error) {
		calls++
		return domain.GlobalStats{TotalArticles: 7}, nil
	}

	first, err := cache.GetOrLoad(ctx, c, cache.GlobalStatsKey, c.StatsTTL(), load)
	require.NoError(t, err)
	second, err := cache.GetOrLoad(ctx, c, cache.GlobalStatsKey, c.StatsTTL(), load)
	require.NoError(t, err)

	assert.Equal(t, int64(7), first.TotalArticles)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)

	_, err = cache.GetOrLoad(ctx, c, "global:other", c.StatsTTL(), func(context.Context) (int, error) {
		return 0, errors.New("boom")
	})
	assert.EqualError(t, err, "boom")
}

func TestArticleListKey(t *testing.T) {
	key := cache.ArticleListKey(domain.ArticleFilter{
		Page: 2, Limit: 20, Category: "health", Status: "published", AuthorID: "u1", Search: "water",
	})
	assert.Equal(t, "articles:2:20:health:published:u1:water", key)

	t.Run("separator inside a value does not shift fields", func(t *testing.T) {
		a := cache.ArticleListKey(domain.ArticleFilter{Page: 1, Limit: 10, Category: "env:published", Search: "water"})
		b := cache.ArticleListKey(domain.ArticleFilter{Page: 1, Limit: 10, Category: "env", Status: "published", Search: ":water"})
		assert.NotEqual(t, a, b)
	})

	t.Run("free text stays under the listing pattern", func(t *testing.T) {
		key := cache.ArticleListKey(domain.ArticleFilter{Page: 1, Limit: 10, Search: "a b:c*"})
		assert.Equal(t, "articles:1:10::::a+b%3Ac%2A", key)
	})
}

func TestArticleKey_SeparateFromStatsNamespace(t *testing.T) {
	id := "5f0c1d5e-8c1b-4c1e-9d5e-2b7f7f0e3a11"

	assert.Equal(t, "article:clean-water", cache.ArticleKey("clean-water"))
	assert.NotEqual(t, cache.ArticleStatsKey(id), cache.ArticleKey("stats:"+id))
}

func TestFill_Set(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the value when no write intervened", func(t *testing.T) {
		c, mr := setupCache(t, cache.WithTTL(time.Minute))

		fill := c.BeginFill(ctx)
		fill.Set(ctx, cache.ArticleKey("a1"), domain.Article{ID: "a1"}, c.TTL())

		assert.True(t, mr.Exists("article:a1"))
		assert.Equal(t, time.Minute, mr.TTL("article:a1"))
	})

	t.Run("drops a value loaded before a write", func(t *testing.T) {
		c, mr := setupCache(t)

		fill := c.BeginFill(ctx)
		c.InvalidateArticle(ctx, "a1", "old-slug")
		fill.Set(ctx, cache.ArticleKey("a1"), domain.Article{ID: "a1", Title: "Old"}, c.TTL())

		assert.False(t, mr.Exists("article:a1"))

		next := c.BeginFill(ctx)
		next.Set(ctx, cache.ArticleKey("a1"), domain.Article{ID: "a1", Title: "New"}, c.TTL())
		assert.True(t, mr.Exists("article:a1"))
	})

	t.Run("backend down drops the fill", func(t *testing.T) {
		c, mr := setupCache(t, cache.WithTimeout(50*time.Millisecond))
		mr.Close()

		assert.NotPanics(t, func() {
			c.BeginFill(ctx).Set(ctx, cache.ArticleKey("a1"), domain.Article{ID: "a1"}, c.TTL())
		})
	})
}

func TestGetOrLoad_SkipsResultThatRacedWithWrite(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	stats, err := cache.GetOrLoad(ctx, c, cache.GlobalStatsKey, c.StatsTTL(), func(context.Context) (domain.GlobalStats, error) {
		c.InvalidateArticle(ctx, "a1")
		return domain.GlobalStats{TotalArticles: 3}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalArticles)
	assert.False(t, mr.Exists(cache.GlobalStatsKey))
}
