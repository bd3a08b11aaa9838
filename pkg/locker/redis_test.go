package locker

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testLockKey = "departure:status:lock"

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestRedisLocker_Acquire(t *testing.T) {
	client := setupTestRedis(t)
	locker := NewRedisLocker(client, zap.NewNop())

	acquired, err := locker.Acquire(context.Background(), testLockKey, 5*time.Second)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestRedisLocker_Acquire_AlreadyHeld(t *testing.T) {
	client := setupTestRedis(t)
	locker1 := NewRedisLocker(client, zap.NewNop())
	locker2 := NewRedisLocker(client, zap.NewNop())

	ctx := context.Background()

	acquired1, err := locker1.Acquire(ctx, testLockKey, 5*time.Second)
	require.NoError(t, err)
	require.True(t, acquired1)

	// Contention reports false, not an error
	acquired2, _ := locker2.Acquire(ctx, testLockKey, 5*time.Second)
	assert.False(t, acquired2, "second instance must not win a held lock")
}

func TestRedisLocker_ReleaseThenReacquire(t *testing.T) {
	client := setupTestRedis(t)
	locker := NewRedisLocker(client, zap.NewNop())

	ctx := context.Background()

	acquired, err := locker.Acquire(ctx, testLockKey, 5*time.Second)
	require.NoError(t, err)
	require.True(t, acquired)

	require.NoError(t, locker.Release(ctx, testLockKey))

	acquired, err = locker.Acquire(ctx, testLockKey, 5*time.Second)
	require.NoError(t, err)
	assert.True(t, acquired, "lock should be free again after release")
}

func TestRedisLocker_Release_NotOwned(t *testing.T) {
	client := setupTestRedis(t)
	owner := NewRedisLocker(client, zap.NewNop())
	other := NewRedisLocker(client, zap.NewNop())

	ctx := context.Background()

	acquired, err := owner.Acquire(ctx, testLockKey, 5*time.Second)
	require.NoError(t, err)
	require.True(t, acquired)

	// A non-owner release is a no-op and must not free the lock
	require.NoError(t, other.Release(ctx, testLockKey))

	stolen, _ := other.Acquire(ctx, testLockKey, 5*time.Second)
	assert.False(t, stolen, "lock must survive a non-owner release")

	require.NoError(t, owner.Release(ctx, testLockKey))
}

func TestRedisLocker_ConcurrentAcquisition(t *testing.T) {
	client := setupTestRedis(t)

	// Five instances race for the same sweep tick
	const instances = 5
	results := make(chan bool, instances)
	ctx := context.Background()

	for i := 0; i < instances; i++ {
		go func() {
			locker := NewRedisLocker(client, zap.NewNop())
			acquired, _ := locker.Acquire(ctx, testLockKey, 2*time.Second)
			results <- acquired
		}()
	}

	winners := 0
	for i := 0; i < instances; i++ {
		if <-results {
			winners++
		}
	}

	assert.Equal(t, 1, winners, "exactly one instance should win the lock")
}

func TestRedisLocker_ContextCancellation(t *testing.T) {
	client := setupTestRedis(t)
	locker := NewRedisLocker(client, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	acquired, err := locker.Acquire(ctx, testLockKey, 5*time.Second)
	assert.Error(t, err)
	assert.False(t, acquired)
}
