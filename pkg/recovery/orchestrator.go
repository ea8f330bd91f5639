// Package recovery wraps pipeline node execution with retries, per-node
// circuit breakers, and a dead-letter queue, so one flaky step degrades the
// run instead of killing it.
package recovery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/costs"
)

const (
	defaultMaxAttempts      = 3
	defaultBackoffInitial   = 500 * time.Millisecond
	defaultBackoffCap       = 8 * time.Second
	defaultBreakerThreshold = 3
	defaultBreakerCooldown  = 2 * time.Minute
	defaultDeadLetterLimit  = 200

	// maxAttemptsCeiling bounds the retry loop and the backoff shift.
	maxAttemptsCeiling = 10
)

// Dead-letter reasons.
const (
	ReasonRetryExhausted = "retry_exhausted"
	ReasonCircuitOpen    = "circuit_open"
)

// Status classifies how a wrapped node invocation ended.
type Status string

const (
	// StatusSucceeded means the first attempt succeeded.
	StatusSucceeded Status = "succeeded"
	// StatusRecovered means a retry succeeded after at least one failure.
	StatusRecovered Status = "recovered"
	// StatusExhausted means every attempt failed and the node was
	// dead-lettered; the run continues without its output.
	StatusExhausted Status = "retry_exhausted"
	// StatusSkipped means an open circuit breaker short-circuited the node.
	StatusSkipped Status = "circuit_open"
	// StatusTerminal means the error is not retryable (budget exhaustion,
	// cancellation) and must propagate to the engine.
	StatusTerminal Status = "terminal"
)

// Outcome reports one wrapped invocation.
type Outcome struct {
	Status   Status
	Attempts int

	// Err is the last error observed. Nil for succeeded/recovered.
	Err error

	// SkipMessage is set for StatusSkipped and StatusExhausted; callers
	// append it to the run's error log.
	SkipMessage string
}

// DeadLetterEntry records a permanently failed or skipped node invocation.
type DeadLetterEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Node      string    `json:"node"`
	ErrorType string    `json:"error_type"`
	Message   string    `json:"message"`
	Attempts  int       `json:"attempts"`
	Reason    string    `json:"reason"`
}

// Metrics accumulates recovery counters across a run. DeadLetterCount is
// monotone even when the queue itself evicts old entries.
type Metrics struct {
	RetriesAttempted     int `json:"retries_attempted"`
	RecoveredFailures    int `json:"recovered_failures"`
	RetryExhausted       int `json:"retry_exhausted"`
	CircuitBreakerOpened int `json:"circuit_breaker_opened"`
	CircuitBreakerSkips  int `json:"circuit_breaker_skips"`
	DeadLetterCount      int `json:"dead_letter_count"`
}

type breakerState struct {
	consecutiveFailures int
	openUntil           time.Time
}

// Orchestrator applies the retry policy and tracks per-node breakers. One
// orchestrator serves one run; metrics and the dead-letter queue are scoped
// to it.
type Orchestrator struct {
	maxAttempts      int
	backoffInitial   time.Duration
	backoffCap       time.Duration
	breakerThreshold int
	breakerCooldown  time.Duration
	dlqLimit         int

	mu       sync.Mutex
	breakers map[string]*breakerState
	dlq      []DeadLetterEntry
	metrics  Metrics
}

// NewOrchestrator builds an orchestrator from configuration, substituting
// defaults for unset values and clamping attempts to a sane ceiling.
func NewOrchestrator(cfg config.RecoveryConfig) *Orchestrator {
	o := &Orchestrator{
		maxAttempts:      cfg.MaxAttempts,
		backoffInitial:   cfg.BackoffInitial,
		backoffCap:       cfg.BackoffCap,
		breakerThreshold: cfg.BreakerThreshold,
		breakerCooldown:  cfg.BreakerCooldown,
		dlqLimit:         cfg.DeadLetterLimit,
		breakers:         make(map[string]*breakerState),
	}
	if o.maxAttempts <= 0 {
		o.maxAttempts = defaultMaxAttempts
	}
	if o.maxAttempts > maxAttemptsCeiling {
		o.maxAttempts = maxAttemptsCeiling
	}
	if o.backoffInitial <= 0 {
		o.backoffInitial = defaultBackoffInitial
	}
	if o.backoffCap < o.backoffInitial {
		o.backoffCap = defaultBackoffCap
	}
	if o.breakerThreshold <= 0 {
		o.breakerThreshold = defaultBreakerThreshold
	}
	if o.breakerCooldown <= 0 {
		o.breakerCooldown = defaultBreakerCooldown
	}
	if o.dlqLimit <= 0 {
		o.dlqLimit = defaultDeadLetterLimit
	}
	return o
}

// Run executes op under the retry policy for the named node.
//
// Transient failures retry with exponential backoff and jitter. Exhaustion
// dead-letters the node and returns StatusExhausted so the caller can skip
// it and keep the run alive. Terminal errors (budget exhaustion,
// cancellation) return immediately with StatusTerminal.
func (o *Orchestrator) Run(ctx context.Context, node string, op func(context.Context) error) Outcome {
	if msg, skipped := o.checkBreaker(node); skipped {
		return Outcome{Status: StatusSkipped, SkipMessage: msg}
	}

	var lastErr error
	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		err := op(ctx)
		if err == nil {
			o.recordSuccess(node, attempt > 1)
			if attempt > 1 {
				slog.Info("Node recovered after retry", "node", node, "attempt", attempt)
				return Outcome{Status: StatusRecovered, Attempts: attempt}
			}
			return Outcome{Status: StatusSucceeded, Attempts: attempt}
		}
		lastErr = err

		if isTerminal(err) {
			return Outcome{Status: StatusTerminal, Attempts: attempt, Err: err}
		}
		if attempt == o.maxAttempts {
			break
		}

		delay := o.backoff(attempt - 1)
		slog.Warn("Node failed, retrying",
			"node", node, "attempt", attempt, "backoff", delay, "error", err)
		o.mu.Lock()
		o.metrics.RetriesAttempted++
		o.mu.Unlock()

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return Outcome{Status: StatusTerminal, Attempts: attempt, Err: ctx.Err()}
		}
	}

	msg := o.recordExhaustion(node, lastErr)
	return Outcome{Status: StatusExhausted, Attempts: o.maxAttempts, Err: lastErr, SkipMessage: msg}
}

// checkBreaker short-circuits the node while its breaker is open, recording
// the skip in the dead-letter queue.
func (o *Orchestrator) checkBreaker(node string) (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	b := o.breakers[node]
	if b == nil || !time.Now().Before(b.openUntil) {
		return "", false
	}

	msg := fmt.Sprintf("Node '%s' skipped because circuit breaker is open.", node)
	o.metrics.CircuitBreakerSkips++
	o.appendDeadLetterLocked(DeadLetterEntry{
		Timestamp: time.Now().UTC(),
		Node:      node,
		ErrorType: "circuit_breaker",
		Message:   msg,
		Reason:    ReasonCircuitOpen,
	})
	slog.Warn("Circuit breaker open, skipping node",
		"node", node, "open_until", b.openUntil)
	return msg, true
}

// recordSuccess closes the node's breaker and credits a recovery when the
// success came from a retry.
func (o *Orchestrator) recordSuccess(node string, recovered bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if recovered {
		o.metrics.RecoveredFailures++
	}
	if b := o.breakers[node]; b != nil {
		b.consecutiveFailures = 0
		b.openUntil = time.Time{}
	}
}

// recordExhaustion dead-letters the failure and advances the node's breaker.
func (o *Orchestrator) recordExhaustion(node string, err error) string {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.metrics.RetryExhausted++
	o.appendDeadLetterLocked(DeadLetterEntry{
		Timestamp: time.Now().UTC(),
		Node:      node,
		ErrorType: errorType(err),
		Message:   err.Error(),
		Attempts:  o.maxAttempts,
		Reason:    ReasonRetryExhausted,
	})

	b := o.breakers[node]
	if b == nil {
		b = &breakerState{}
		o.breakers[node] = b
	}
	b.consecutiveFailures++
	if b.consecutiveFailures >= o.breakerThreshold && !time.Now().Before(b.openUntil) {
		b.openUntil = time.Now().Add(o.breakerCooldown)
		o.metrics.CircuitBreakerOpened++
		slog.Warn("Circuit breaker opened",
			"node", node, "consecutive_failures", b.consecutiveFailures,
			"cooldown", o.breakerCooldown)
	}

	msg := fmt.Sprintf("Node '%s' failed after %d attempts: %v", node, o.maxAttempts, err)
	slog.Error("Node retries exhausted, dead-lettered", "node", node, "error", err)
	return msg
}

func (o *Orchestrator) appendDeadLetterLocked(entry DeadLetterEntry) {
	o.metrics.DeadLetterCount++
	o.dlq = append(o.dlq, entry)
	if len(o.dlq) > o.dlqLimit {
		o.dlq = o.dlq[len(o.dlq)-o.dlqLimit:]
	}
}

// backoff computes min(initial << retry, cap) plus jitter in [0, initial).
func (o *Orchestrator) backoff(retry int) time.Duration {
	delay := o.backoffInitial << retry
	if delay > o.backoffCap || delay <= 0 {
		delay = o.backoffCap
	}
	return delay + time.Duration(rand.Int64N(int64(o.backoffInitial)))
}

// Metrics returns a snapshot of the recovery counters.
func (o *Orchestrator) Metrics() Metrics {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.metrics
}

// DeadLetters returns a copy of the retained dead-letter entries, oldest
// first.
func (o *Orchestrator) DeadLetters() []DeadLetterEntry {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]DeadLetterEntry, len(o.dlq))
	copy(out, o.dlq)
	return out
}

// BreakerOpen reports whether the node's breaker currently short-circuits.
func (o *Orchestrator) BreakerOpen(node string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	b := o.breakers[node]
	return b != nil && time.Now().Before(b.openUntil)
}

// isTerminal reports errors that must propagate without retry.
func isTerminal(err error) bool {
	return errors.Is(err, costs.ErrBudgetExhausted) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// errorType gives dead-letter entries a coarse failure class.
func errorType(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "error"
	}
}
