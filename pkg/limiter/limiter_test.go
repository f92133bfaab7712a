package limiter

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestRateLimiterStore_Basic(t *testing.T) {
	store := NewRateLimiterStore(1, 2)

	limiter := store.GetLimiter(1)
	require.NotNil(t, limiter)
	assert.Equal(t, rate.Limit(1), limiter.Limit())
	assert.Equal(t, 2, limiter.Burst())
	assert.Same(t, limiter, store.GetLimiter(1))
	assert.NotSame(t, limiter, store.GetLimiter(2))
}

func TestRateLimiterStore_CustomLimit(t *testing.T) {
	store := NewRateLimiterStore(1, 2)

	store.SetLimiter(7, 5, 10)
	limiter := store.GetLimiter(7)

	assert.Equal(t, rate.Limit(5), limiter.Limit())
	assert.Equal(t, 10, limiter.Burst())
}

func TestRateLimiterStore_Concurrency(t *testing.T) {
	store := NewRateLimiterStore(10, 5)

	var wg sync.WaitGroup
	seen := make([]*rate.Limiter, 100)

	for i := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen[i] = store.GetLimiter(42)
		}()
	}
	wg.Wait()

	for _, l := range seen {
		assert.Same(t, seen[0], l)
	}
}

func TestRateLimiterStore_Enforcement(t *testing.T) {
	store := NewRateLimiterStore(2, 2) // 2 events/sec

	assert.True(t, store.Allow(3))
	assert.True(t, store.Allow(3))
	assert.False(t, store.Allow(3), "third call should be rate limited")
	assert.True(t, store.Allow(4), "other users keep their own bucket")

	time.Sleep(600 * time.Millisecond)
	assert.True(t, store.Allow(3), "one token should be available after refill")
}

func TestRateLimiterStore_Nil(t *testing.T) {
	var store *RateLimiterStore

	assert.True(t, store.Allow(1))
	store.SetLimiter(1, 1, 1)

	r, b := store.Defaults()
	assert.Equal(t, rate.Inf, r)
	assert.Zero(t, b)
}
