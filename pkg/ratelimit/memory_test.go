package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRateLimiter_IsLimited_IsPerKey(t *testing.T) {
	limiter := NewInMemoryRateLimiter(1, time.Second)

	limited, err := limiter.IsLimited("client-a")
	require.NoError(t, err)
	assert.False(t, limited, "first request for client-a should pass")

	limited, err = limiter.IsLimited("client-a")
	require.NoError(t, err)
	assert.True(t, limited, "second immediate request for client-a should be limited")

	limited, err = limiter.IsLimited("client-b")
	require.NoError(t, err)
	assert.False(t, limited, "client-b has its own bucket")
}

func TestInMemoryRateLimiter_RefillsAfterWindow(t *testing.T) {
	limiter := NewInMemoryRateLimiter(2, time.Minute)
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return clock }

	for i := 0; i < 2; i++ {
		limited, err := limiter.IsLimited("signup")
		require.NoError(t, err)
		assert.False(t, limited)
	}

	limited, _ := limiter.IsLimited("signup")
	assert.True(t, limited)

	clock = clock.Add(time.Minute)
	limited, _ = limiter.IsLimited("signup")
	assert.False(t, limited)
}

func TestInMemoryRateLimiter_EmptyKeySharesBucket(t *testing.T) {
	limiter := NewInMemoryRateLimiter(1, time.Hour)

	limited, _ := limiter.IsLimited("")
	assert.False(t, limited)
	limited, _ = limiter.IsLimited("")
	assert.True(t, limited)
}

func TestInMemoryRateLimiter_SweepsIdleBuckets(t *testing.T) {
	limiter := NewInMemoryRateLimiter(10, time.Second)
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return clock }

	_, _ = limiter.IsLimited("stale")
	clock = clock.Add(time.Minute)

	for i := 1; i < sweepInterval; i++ {
		_, _ = limiter.IsLimited("fresh")
	}

	assert.Equal(t, 1, limiter.size())
}

func TestNewRateLimiter_DefaultsToInMemory(t *testing.T) {
	limiter := NewRateLimiter(&RateLimitConfig{Requests: 5, Window: time.Second})

	_, ok := limiter.(*InMemoryRateLimiter)
	assert.True(t, ok)

	requests, window := limiter.GetLimitDetails()
	assert.Equal(t, 5, requests)
	assert.Equal(t, time.Second, window)
	assert.NoError(t, limiter.Close())
}
