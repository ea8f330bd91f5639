package llm

import (
	"math"
	"sync"
)

const (
	// cacheWriteCostMultiplier is the provider surcharge on tokens written
	// into the prompt cache, relative to normal input pricing.
	cacheWriteCostMultiplier = 1.25

	// cacheReadCostMultiplier is what cached input tokens cost relative to
	// normal input pricing.
	cacheReadCostMultiplier = 0.10
)

// PromptCacheTracker accumulates provider-side prompt cache usage across a
// run. Provider clients send requests with the stable prefix (system prompt,
// then prior conversation, then the latest turn) marked for caching; this
// tracker turns the reported usage into hit rates and dollar savings.
type PromptCacheTracker struct {
	mu sync.Mutex

	totalCalls  int
	cacheHits   int
	cacheMisses int

	totalInputTokens  int
	cachedInputTokens int
	writtenTokens     int
}

func NewPromptCacheTracker() *PromptCacheTracker {
	return &PromptCacheTracker{}
}

// RecordCall registers one provider call. A call counts as a hit when any
// input tokens were served from the prompt cache.
func (t *PromptCacheTracker) RecordCall(inputTokens, cachedTokens, writtenTokens int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalCalls++
	if cachedTokens > 0 {
		t.cacheHits++
	} else {
		t.cacheMisses++
	}
	t.totalInputTokens += inputTokens
	t.cachedInputTokens += cachedTokens
	t.writtenTokens += writtenTokens
}

// HitRate returns the fraction of calls that read from the prompt cache,
// zero when nothing has been recorded.
func (t *PromptCacheTracker) HitRate() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hitRateLocked()
}

func (t *PromptCacheTracker) hitRateLocked() float64 {
	if t.totalCalls == 0 {
		return 0
	}
	return float64(t.cacheHits) / float64(t.totalCalls)
}

// EstimatedSavings returns the dollars saved by cache reads, given the
// model's input price per million tokens. Cached tokens bill at the read
// multiplier instead of full price.
func (t *PromptCacheTracker) EstimatedSavings(inputCostPerMtok float64) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	fullPrice := float64(t.cachedInputTokens) * inputCostPerMtok / 1_000_000
	return fullPrice * (1 - cacheReadCostMultiplier)
}

// NetSavings subtracts the cache write surcharge from the read savings. It
// can go negative early in a run, when prefixes have been written but not yet
// reused.
func (t *PromptCacheTracker) NetSavings(inputCostPerMtok float64) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	perTok := inputCostPerMtok / 1_000_000
	saved := float64(t.cachedInputTokens) * perTok * (1 - cacheReadCostMultiplier)
	surcharge := float64(t.writtenTokens) * perTok * (cacheWriteCostMultiplier - 1)
	return saved - surcharge
}

// Summary reports the cache counters, with the hit rate rounded to three
// decimals.
func (t *PromptCacheTracker) Summary() map[string]any {
	t.mu.Lock()
	defer t.mu.Unlock()

	return map[string]any{
		"total_calls":         t.totalCalls,
		"cache_hits":          t.cacheHits,
		"cache_misses":        t.cacheMisses,
		"hit_rate":            math.Round(t.hitRateLocked()*1000) / 1000,
		"total_input_tokens":  t.totalInputTokens,
		"cached_input_tokens": t.cachedInputTokens,
		"written_tokens":      t.writtenTokens,
	}
}
