package caching

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (CacheService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := NewRedisCacheService("redis://"+mr.Addr(), "", 0)
	t.Cleanup(func() { _ = cache.Close() })
	return cache, mr
}

func TestRateLimit_CountsUntilLimit(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	limited, err := cache.IsRateLimited(ctx, "login:acme:jane@acme.io", 3)
	require.NoError(t, err)
	assert.False(t, limited)

	for i := 1; i <= 3; i++ {
		count, err := cache.IncrementRateLimit(ctx, "login:acme:jane@acme.io", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(i), count)
	}

	limited, err = cache.IsRateLimited(ctx, "login:acme:jane@acme.io", 3)
	require.NoError(t, err)
	assert.True(t, limited)
}

func TestRateLimit_WindowExpires(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	_, err := cache.IncrementRateLimit(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, mr.TTL("saasboard:ratelimit:k"))

	// a later hit must not extend the window
	mr.FastForward(30 * time.Second)
	_, err = cache.IncrementRateLimit(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, mr.TTL("saasboard:ratelimit:k"))

	mr.FastForward(31 * time.Second)
	limited, err := cache.IsRateLimited(ctx, "k", 1)
	require.NoError(t, err)
	assert.False(t, limited)
}

func TestDelete_ClearsCounter(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	_, err := cache.IncrementRateLimit(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.NoError(t, cache.Delete(ctx, "k"))

	limited, err := cache.IsRateLimited(ctx, "k", 1)
	require.NoError(t, err)
	assert.False(t, limited)
}

func TestPing(t *testing.T) {
	cache, mr := newTestCache(t)
	assert.NoError(t, cache.Ping(context.Background()))

	mr.Close()
	assert.Error(t, cache.Ping(context.Background()))
}
