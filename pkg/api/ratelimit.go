package api

import (
	"sync"
	"time"
)

// rateLimiter enforces a sliding 60-second window per API key. Timestamps
// older than the window are pruned on every check, so memory stays bounded
// by limit * active keys.
type rateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	limit  int
	hits   map[string][]time.Time
	now    func() time.Time
}

func newRateLimiter(limit int) *rateLimiter {
	return &rateLimiter{
		window: time.Minute,
		limit:  limit,
		hits:   make(map[string][]time.Time),
		now:    time.Now,
	}
}

// allow records one hit for the key and reports whether it fits the
// window, how many requests remain, and when the window resets (the moment
// the oldest counted hit ages out).
func (r *rateLimiter) allow(keyID string) (allowed bool, remaining int, reset time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	cutoff := now.Add(-r.window)

	kept := r.hits[keyID][:0]
	for _, ts := range r.hits[keyID] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= r.limit {
		r.hits[keyID] = kept
		return false, 0, kept[0].Add(r.window)
	}

	kept = append(kept, now)
	r.hits[keyID] = kept

	remaining = r.limit - len(kept)
	return true, remaining, kept[0].Add(r.window)
}
