// Package costs implements budget tracking and capability degradation for
// research runs. A BudgetTracker accumulates per-call USD cost against hard
// cost and call ceilings; a DegradationManager maps consumed budget to a
// capability tier consulted by the search, scraping, and routing layers.
package costs

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
)

// ErrBudgetExhausted is the terminal condition raised when a run's cost or
// call budget is fully consumed. It is never retried.
var ErrBudgetExhausted = errors.New("budget exhausted")

// Fallback limits for trackers constructed with non-positive config values.
const (
	defaultMaxCostUSD    = 2.00
	defaultMaxLLMCalls   = 50
	defaultWarnAtPercent = 80
)

// CallRecord captures a single LLM API call for cost accounting.
type CallRecord struct {
	Model        string  `json:"model"`
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	CostUSD      float64 `json:"cost_usd"`
	StepName     string  `json:"step_name"` // graph node that made the call
}

// BudgetStatus is a point-in-time budget consumption snapshot.
type BudgetStatus struct {
	TotalCostUSD       float64         `json:"total_cost_usd"`
	TotalLLMCalls      int             `json:"total_llm_calls"`
	TotalInputTokens   int             `json:"total_input_tokens"`
	TotalOutputTokens  int             `json:"total_output_tokens"`
	BudgetRemainingUSD float64         `json:"budget_remaining_usd"`
	BudgetUsedPercent  float64         `json:"budget_used_percent"`
	CurrentTier        DegradationTier `json:"current_tier"`
}

// RecordOutcome reports the effect of recording one call.
type RecordOutcome struct {
	CostUSD float64

	// True exactly once, when usage first crosses the warn threshold.
	WarningCrossed bool

	Status BudgetStatus
}

// BudgetTracker accumulates the cost of LLM calls within a single research
// run. Totals are monotone: recording never subtracts, and a rejected
// CheckBudget leaves them untouched. Safe for concurrent use.
type BudgetTracker struct {
	mu            sync.Mutex
	maxCostUSD    float64
	maxLLMCalls   int
	warnAtPercent float64
	records       []CallRecord
	totalCostUSD  float64
	inputTokens   int
	outputTokens  int
	warned        bool
}

// NewBudgetTracker creates a tracker from config. Non-positive limits fall
// back to the defaults ($2.00, 50 calls, warn at 80%).
func NewBudgetTracker(cfg config.BudgetConfig) *BudgetTracker {
	t := &BudgetTracker{
		maxCostUSD:    cfg.MaxCostPerRun,
		maxLLMCalls:   cfg.MaxLLMCalls,
		warnAtPercent: float64(cfg.WarnAtPercent),
	}
	if t.maxCostUSD <= 0 {
		t.maxCostUSD = defaultMaxCostUSD
	}
	if t.maxLLMCalls <= 0 {
		t.maxLLMCalls = defaultMaxLLMCalls
	}
	if t.warnAtPercent <= 0 {
		t.warnAtPercent = defaultWarnAtPercent
	}
	return t
}

// EstimateCost returns the projected USD cost of a prospective call.
func (t *BudgetTracker) EstimateCost(model string, inputTokens, outputTokens int) float64 {
	return EstimateCost(model, inputTokens, outputTokens)
}

// CheckBudget rejects a prospective call whose estimated cost would push
// the run past its USD ceiling or call limit. Nothing is recorded; the
// caller must skip the external call on error.
func (t *BudgetTracker) CheckBudget(estimatedUSD float64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.totalCostUSD+estimatedUSD > t.maxCostUSD {
		return fmt.Errorf("estimated cost $%.4f would exceed budget ($%.4f spent of $%.2f): %w",
			estimatedUSD, t.totalCostUSD, t.maxCostUSD, ErrBudgetExhausted)
	}
	if len(t.records) >= t.maxLLMCalls {
		return fmt.Errorf("LLM call limit reached: %d >= %d: %w",
			len(t.records), t.maxLLMCalls, ErrBudgetExhausted)
	}
	return nil
}

// Record accounts a completed call and returns its cost. A zero CostUSD is
// computed from the pricing table. The call counts even when it tips the
// budget over; the returned error marks exhaustion for subsequent calls.
func (t *BudgetTracker) Record(rec CallRecord) (RecordOutcome, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if rec.CostUSD == 0 {
		rec.CostUSD = EstimateCost(rec.Model, rec.InputTokens, rec.OutputTokens)
	}
	t.records = append(t.records, rec)
	t.totalCostUSD += rec.CostUSD
	t.inputTokens += rec.InputTokens
	t.outputTokens += rec.OutputTokens

	outcome := RecordOutcome{CostUSD: rec.CostUSD}

	pct := t.usedPercentLocked()
	if pct >= t.warnAtPercent && !t.warned {
		t.warned = true
		outcome.WarningCrossed = true
		slog.Warn("Budget warning threshold crossed",
			"used_percent", round(pct, 1),
			"total_cost_usd", round(t.totalCostUSD, 4),
			"max_cost_usd", t.maxCostUSD)
	}
	outcome.Status = t.statusLocked()

	if t.totalCostUSD >= t.maxCostUSD {
		return outcome, fmt.Errorf("budget exhausted: $%.4f >= $%.2f: %w",
			t.totalCostUSD, t.maxCostUSD, ErrBudgetExhausted)
	}
	if len(t.records) >= t.maxLLMCalls {
		return outcome, fmt.Errorf("LLM call limit reached: %d >= %d: %w",
			len(t.records), t.maxLLMCalls, ErrBudgetExhausted)
	}
	return outcome, nil
}

// Status returns the current budget consumption snapshot.
func (t *BudgetTracker) Status() BudgetStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.statusLocked()
}

// TotalCostUSD returns the unrounded accumulated cost.
func (t *BudgetTracker) TotalCostUSD() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalCostUSD
}

// TotalCalls returns the number of recorded calls.
func (t *BudgetTracker) TotalCalls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}

// Records returns a copy of every recorded call, in order.
func (t *BudgetTracker) Records() []CallRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]CallRecord, len(t.records))
	copy(out, t.records)
	return out
}

func (t *BudgetTracker) statusLocked() BudgetStatus {
	pct := t.usedPercentLocked()
	return BudgetStatus{
		TotalCostUSD:       round(t.totalCostUSD, 4),
		TotalLLMCalls:      len(t.records),
		TotalInputTokens:   t.inputTokens,
		TotalOutputTokens:  t.outputTokens,
		BudgetRemainingUSD: round(math.Max(0, t.maxCostUSD-t.totalCostUSD), 4),
		BudgetUsedPercent:  round(math.Min(pct, 100), 1),
		CurrentTier:        tierFor(pct),
	}
}

func (t *BudgetTracker) usedPercentLocked() float64 {
	if t.maxCostUSD <= 0 {
		return 0
	}
	return t.totalCostUSD / t.maxCostUSD * 100
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
