package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_SlidingWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter := newRateLimiter(3)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		allowed, remaining, _ := limiter.allow("key-1")
		assert.True(t, allowed)
		assert.Equal(t, 2-i, remaining)
		now = now.Add(time.Second)
	}

	allowed, remaining, reset := limiter.allow("key-1")
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
	// Window resets when the oldest counted hit ages out.
	assert.Equal(t, time.Date(2026, 3, 1, 12, 1, 0, 0, time.UTC), reset)

	// Advance past the oldest hit; one slot frees up.
	now = time.Date(2026, 3, 1, 12, 1, 0, 1, time.UTC)
	allowed, remaining, _ = limiter.allow("key-1")
	assert.True(t, allowed)
	assert.Equal(t, 0, remaining)
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	limiter := newRateLimiter(1)

	allowed, _, _ := limiter.allow("key-a")
	assert.True(t, allowed)
	allowed, _, _ = limiter.allow("key-a")
	assert.False(t, allowed)

	allowed, _, _ = limiter.allow("key-b")
	assert.True(t, allowed, "one key's exhaustion must not affect another")
}
