package cache_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorials/infras/otel/mocks"
	"tutorials/shared/cache"
)

type cachedTutorial struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func newTestCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	redisCache, server := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "tutorial:get:1", cachedTutorial{ID: 1, Title: "Intro"}, 60))

	var got cachedTutorial
	require.NoError(t, redisCache.Get(ctx, "tutorial:get:1", &got))
	assert.Equal(t, cachedTutorial{ID: 1, Title: "Intro"}, got)

	require.NoError(t, redisCache.Save(ctx, "raw", "plain text", 60))

	var raw string
	require.NoError(t, redisCache.Get(ctx, "raw", &raw))
	assert.Equal(t, "plain text", raw)

	server.FastForward(61 * time.Second)

	err := redisCache.Get(ctx, "tutorial:get:1", &got)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestRedisCache_GetMiss(t *testing.T) {
	redisCache, _ := newTestCache(t)

	var got cachedTutorial
	err := redisCache.Get(context.Background(), "missing", &got)

	assert.True(t, errors.Is(err, cache.Nil))
}

func TestRedisCache_DeleteAndClear(t *testing.T) {
	redisCache, server := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "tutorial:gets:a", []int{1}, 60))
	require.NoError(t, redisCache.Save(ctx, "tutorial:gets:b", []int{2}, 60))
	require.NoError(t, redisCache.Save(ctx, "tutorial:get:1", cachedTutorial{ID: 1}, 60))

	require.NoError(t, redisCache.Clear(ctx, "tutorial:gets:*"))

	assert.False(t, server.Exists("tutorial:gets:a"))
	assert.False(t, server.Exists("tutorial:gets:b"))
	assert.True(t, server.Exists("tutorial:get:1"))

	require.NoError(t, redisCache.Delete(ctx, "tutorial:get:1"))
	assert.False(t, server.Exists("tutorial:get:1"))
}

func TestRedisCache_Disabled(t *testing.T) {
	redisCache := cache.NewRedisCache(nil, mocks.NewOtel())
	ctx := context.Background()

	assert.NoError(t, redisCache.Save(ctx, "key", "value", 60))

	var got string
	assert.True(t, errors.Is(redisCache.Get(ctx, "key", &got), cache.Nil))
	assert.NoError(t, redisCache.Delete(ctx, "key"))
	assert.NoError(t, redisCache.Clear(ctx, "key*"))

	_, err := redisCache.Increment(ctx, "key", 60)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestRedisCache_IncrementKeepsFixedWindow(t *testing.T) {
	redisCache, server := newTestCache(t)
	ctx := context.Background()

	count, err := redisCache.Increment(ctx, "limiter:a", 60)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, 60*time.Second, server.TTL("limiter:a"))

	server.FastForward(30 * time.Second)

	count, err = redisCache.Increment(ctx, "limiter:a", 60)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, 30*time.Second, server.TTL("limiter:a"))

	server.FastForward(31 * time.Second)
	assert.False(t, server.Exists("limiter:a"))

	count, err = redisCache.Increment(ctx, "limiter:a", 60)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRedisCache_IncrementConcurrent(t *testing.T) {
	redisCache, server := newTestCache(t)
	ctx := context.Background()

	const hits = 50

	var wg sync.WaitGroup

	for range hits {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := redisCache.Increment(ctx, "limiter:b", 60)
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	value, err := server.Get("limiter:b")
	require.NoError(t, err)
	assert.Equal(t, "50", value)
}
