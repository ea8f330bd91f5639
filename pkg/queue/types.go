// Package queue runs the worker pool that drains the durable session queue.
//
// Sessions are claimed from the database with a conditional status update,
// heartbeated while running, and written back with a terminal status when
// the pipeline finishes. Orphan detection re-queues sessions whose owning
// pod stopped heartbeating so another replica resumes them from their
// latest checkpoint.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/dmhernandez2525/research-agent-sub001/ent"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/agent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoSessionsAvailable indicates no queued sessions are waiting.
	ErrNoSessionsAvailable = errors.New("no sessions available")

	// ErrAtCapacity indicates this replica is already processing its
	// concurrent session limit.
	ErrAtCapacity = errors.New("at capacity")
)

// SessionRunner drives one research session through the pipeline.
// Resume is attempted first; a session with no usable checkpoint returns
// checkpoint.ErrNotFound and the worker restarts it with Run and the
// durable query. Totals reports the run's accumulated cost for the
// terminal status write.
type SessionRunner interface {
	Run(ctx context.Context, sessionID, query string) (agent.RunResult, error)
	Resume(ctx context.Context, sessionID string) (agent.RunResult, error)
	Totals() (costUSD float64, llmCalls int)
}

// RunnerFactory builds a per-session runner. Each session gets its own
// budget tracker and degradation state, so the runner cannot be shared.
// The session is already registered in the cancellation registry when the
// factory is called.
type RunnerFactory func(session *ent.ResearchSession) SessionRunner

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy       bool           `json:"is_healthy"`
	DBReachable     bool           `json:"db_reachable"`
	DBError         string         `json:"db_error,omitempty"`
	PodID           string         `json:"pod_id"`
	ActiveWorkers   int            `json:"active_workers"`
	TotalWorkers    int            `json:"total_workers"`
	ActiveSessions  int            `json:"active_sessions"`
	MaxConcurrent   int            `json:"max_concurrent"`
	QueueDepth      int            `json:"queue_depth"`
	WorkerStats     []WorkerHealth `json:"worker_stats"`
	LastOrphanScan  time.Time      `json:"last_orphan_scan"`
	OrphansRequeued int            `json:"orphans_requeued"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"` // "idle" or "working"
	CurrentSessionID  string    `json:"current_session_id,omitempty"`
	SessionsProcessed int       `json:"sessions_processed"`
	LastActivity      time.Time `json:"last_activity"`
}
