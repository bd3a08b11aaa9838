package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewCache(client, zap.NewNop(), "catalog"), mr
}

func TestCache_SetGet(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "suggest:packages:goa", []byte(`{"suggestions":[]}`), time.Minute))

	got, err := cache.Get(ctx, "suggest:packages:goa")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"suggestions":[]}`), got)
}

func TestCache_GetMissing(t *testing.T) {
	cache, _ := setupCache(t)

	got, err := cache.Get(context.Background(), "suggest:packages:nothing")
	require.NoError(t, err, "a miss is not an error")
	assert.Nil(t, got)
}

func TestCache_TTLExpiry(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "suggest:packages:goa", []byte("x"), 30*time.Second))

	mr.FastForward(31 * time.Second)

	got, err := cache.Get(ctx, "suggest:packages:goa")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCache_ClearOnlyOwnPrefix(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "suggest:packages:goa", []byte("a"), time.Minute))
	require.NoError(t, cache.Set(ctx, "suggest:combined:goa", []byte("b"), time.Minute))
	mr.Set("other-app:key", "keep")

	require.NoError(t, cache.Clear(ctx))

	got, err := cache.Get(ctx, "suggest:packages:goa")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.True(t, mr.Exists("other-app:key"), "foreign keys must survive a clear")
}

func TestSuggestKey(t *testing.T) {
	assert.Equal(t, "suggest:packages:goa", SuggestKey("packages", "  Goa "))
	assert.Equal(t, "suggest:combined:bali trip", SuggestKey("combined", "Bali Trip"))
}
