package cache

import (
	"context"
	"testing"
	"time"

	"plant-advisor/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, maxSize int, ttl time.Duration) *Manager {
	t.Helper()
	m := NewManager(config.CacheConfig{
		Enabled:         true,
		Backend:         "memory",
		MaxSize:         maxSize,
		TTL:             ttl,
		CleanupInterval: time.Minute,
	})
	require.NotNil(t, m)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestManagerDisabled(t *testing.T) {
	m := NewManager(config.CacheConfig{Enabled: false})
	assert.Nil(t, m)
}

func TestManagerSetGet(t *testing.T) {
	m := newTestManager(t, 10, time.Hour)
	ctx := context.Background()

	_, err := m.Get(ctx, "prompt-a")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, m.Set(ctx, "prompt-a", "response-a"))

	val, err := m.Get(ctx, "prompt-a")
	require.NoError(t, err)
	assert.Equal(t, "response-a", val)
}

func TestManagerExpiry(t *testing.T) {
	m := newTestManager(t, 10, 10*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "prompt-a", "response-a"))
	time.Sleep(30 * time.Millisecond)

	_, err := m.Get(ctx, "prompt-a")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestManagerLRUEviction(t *testing.T) {
	m := newTestManager(t, 2, time.Hour)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", "1"))
	require.NoError(t, m.Set(ctx, "b", "2"))

	// touch "a" so "b" becomes the eviction candidate
	_, err := m.Get(ctx, "a")
	require.NoError(t, err)

	require.NoError(t, m.Set(ctx, "c", "3"))

	_, err = m.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrCacheMiss)

	val, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", val)
}

func TestManagerStats(t *testing.T) {
	m := newTestManager(t, 10, time.Hour)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", "1"))
	_, _ = m.Get(ctx, "a")
	_, _ = m.Get(ctx, "missing")

	stats := m.GetStats()
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
	assert.Equal(t, 1, stats["size"])
}
