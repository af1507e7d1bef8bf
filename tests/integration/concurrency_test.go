package integration

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	redisStorage "custody-ledger/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisClient(t *testing.T) *goredis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestNonceStoreConcurrentSameNonce(t *testing.T) {
	store := redisStorage.NewNonceStore(newRedisClient(t))
	ctx := context.Background()

	const workers = 50
	var accepted atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.CheckAndSet(ctx, "operator-1", "nonce-shared", 2*time.Minute)
			assert.NoError(t, err)
			if ok {
				accepted.Add(1)
			}
		}()
	}
	wg.Wait()

	// SET NX admits the nonce exactly once no matter how many racers.
	assert.Equal(t, int64(1), accepted.Load())
}

func TestNonceStoreConcurrentDistinctNonces(t *testing.T) {
	store := redisStorage.NewNonceStore(newRedisClient(t))
	ctx := context.Background()

	const workers = 50
	var accepted atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ok, err := store.CheckAndSet(ctx, "operator-1", fmt.Sprintf("nonce-%d", n), 2*time.Minute)
			assert.NoError(t, err)
			if ok {
				accepted.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(workers), accepted.Load())
}

func TestNonceStoreScopesAreIndependent(t *testing.T) {
	store := redisStorage.NewNonceStore(newRedisClient(t))
	ctx := context.Background()

	ok, err := store.CheckAndSet(ctx, "operator-1", "nonce", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	// Same nonce under a different operator scope is still fresh.
	ok, err = store.CheckAndSet(ctx, "operator-2", "nonce", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.CheckAndSet(ctx, "operator-1", "nonce", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRateLimitStoreConcurrentCounting(t *testing.T) {
	store := redisStorage.NewRateLimitStore(newRedisClient(t))
	ctx := context.Background()

	const (
		workers = 40
		limit   = 25
	)
	var allowed atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := store.Allow(ctx, "transfers:0xabc", limit, time.Hour)
			assert.NoError(t, err)
			if res.Allowed {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	// INCR is atomic, so exactly limit requests land inside the window.
	assert.Equal(t, int64(limit), allowed.Load())
}

func TestRateLimitStoreWindowMetadata(t *testing.T) {
	store := redisStorage.NewRateLimitStore(newRedisClient(t))
	ctx := context.Background()

	res, err := store.Allow(ctx, "minting:0xdef", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, int64(3), res.Limit)
	assert.Equal(t, int64(2), res.Remaining)
	assert.Greater(t, res.ResetAt, time.Now().Unix()-1)

	for i := 0; i < 2; i++ {
		res, err = store.Allow(ctx, "minting:0xdef", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	}

	res, err = store.Allow(ctx, "minting:0xdef", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, int64(0), res.Remaining)
}
