package costs

import (
	"log/slog"
	"slices"
	"sync"
)

// DegradationTier orders capability levels from full service down to
// minimal cached operation.
type DegradationTier string

const (
	TierFull    DegradationTier = "FULL"
	TierReduced DegradationTier = "REDUCED"
	TierCached  DegradationTier = "CACHED"
	TierPartial DegradationTier = "PARTIAL"
)

// Budget-used percentages at which each tier activates.
const (
	reducedAtPercent = 60.0
	cachedAtPercent  = 80.0
	partialAtPercent = 95.0
)

// tierFor maps consumed budget percent to the active tier.
func tierFor(usedPercent float64) DegradationTier {
	switch {
	case usedPercent >= partialAtPercent:
		return TierPartial
	case usedPercent >= cachedAtPercent:
		return TierCached
	case usedPercent >= reducedAtPercent:
		return TierReduced
	default:
		return TierFull
	}
}

// modelChains lists the model fallback chain per tier, preferred first.
var modelChains = map[DegradationTier][]string{
	TierFull:    {"claude-sonnet-4-5-20250929", "gpt-4o"},
	TierReduced: {"claude-haiku-3-5-20241022", "gpt-4o-mini"},
	TierCached:  {"claude-haiku-3-5-20241022"},
	TierPartial: {"gpt-4o-mini"},
}

// DegradationManager maps budget consumption to capability limits. Tier
// transitions are logged and counted; they never rewrite state already
// produced at an earlier tier.
type DegradationManager struct {
	tracker *BudgetTracker

	mu          sync.Mutex
	lastTier    DegradationTier
	transitions int
}

// NewDegradationManager wraps a budget tracker.
func NewDegradationManager(tracker *BudgetTracker) *DegradationManager {
	return &DegradationManager{tracker: tracker, lastTier: TierFull}
}

// Tier returns the active degradation tier, logging the transition when it
// changed since the last observation.
func (m *DegradationManager) Tier() DegradationTier {
	status := m.tracker.Status()

	m.mu.Lock()
	defer m.mu.Unlock()
	if status.CurrentTier != m.lastTier {
		m.transitions++
		slog.Info("Degradation tier changed",
			"from", m.lastTier,
			"to", status.CurrentTier,
			"budget_used_percent", status.BudgetUsedPercent,
			"transitions", m.transitions)
		m.lastTier = status.CurrentTier
	}
	return status.CurrentTier
}

// PreferredModel returns the first model in the current tier's chain.
func (m *DegradationManager) PreferredModel() string {
	return m.FallbackChain()[0]
}

// FallbackChain returns a copy of the current tier's model chain,
// preferred model first.
func (m *DegradationManager) FallbackChain() []string {
	chain, ok := modelChains[m.Tier()]
	if !ok {
		chain = modelChains[TierFull]
	}
	return slices.Clone(chain)
}

// ShouldSkipSearch reports whether new web searches are suppressed at the
// current tier; cached results are still served.
func (m *DegradationManager) ShouldSkipSearch() bool {
	tier := m.Tier()
	return tier == TierCached || tier == TierPartial
}

// ShouldSkipScraping reports whether page fetching is suppressed.
func (m *DegradationManager) ShouldSkipScraping() bool {
	return m.Tier() == TierPartial
}

// MaxSearchResults returns the per-search result cap at the current tier.
func (m *DegradationManager) MaxSearchResults() int {
	switch m.Tier() {
	case TierReduced:
		return 5
	case TierCached:
		return 3
	case TierPartial:
		return 0
	default:
		return 10
	}
}

// Transitions returns how many tier changes have been observed.
func (m *DegradationManager) Transitions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transitions
}
