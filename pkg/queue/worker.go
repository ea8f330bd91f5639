package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmhernandez2525/research-agent-sub001/ent"
	"github.com/dmhernandez2525/research-agent-sub001/ent/researchsession"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/agent"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/checkpoint"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/costs"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/events"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/services"
)

// eventLinger is how long a finished session's event ring stays in memory
// so SSE/WebSocket clients catch the terminal event before the ring drops.
const eventLinger = 60 * time.Second

// Worker polls the durable queue and processes claimed sessions one at a
// time. Claiming is a conditional status update in SessionService, so any
// number of workers across any number of pods can poll the same table.
type Worker struct {
	id   string
	pool *WorkerPool

	mu                sync.Mutex
	status            string
	currentSessionID  string
	sessionsProcessed int
	lastActivity      time.Time
}

func newWorker(id string, pool *WorkerPool) *Worker {
	return &Worker{
		id:           id,
		pool:         pool,
		status:       "idle",
		lastActivity: time.Now(),
	}
}

// run is the worker's poll loop. Poll intervals are jittered so workers
// across replicas do not hammer the queue table in lockstep.
func (w *Worker) run(ctx context.Context) {
	log := slog.With("worker_id", w.id)
	log.Info("Worker started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Worker stopping: context cancelled")
			return
		case <-w.pool.stopCh:
			log.Info("Worker stopping: pool shutdown")
			return
		case <-time.After(w.jitteredPollInterval()):
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoSessionsAvailable) || errors.Is(err, ErrAtCapacity) {
					continue
				}
				log.Error("Poll failed", "error", err)
			}
		}
	}
}

// jitteredPollInterval returns PollInterval ± PollIntervalJitter.
func (w *Worker) jitteredPollInterval() time.Duration {
	base := w.pool.config.PollInterval
	jitter := w.pool.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2*jitter))) - jitter
	return base + offset
}

func (w *Worker) pollAndProcess(ctx context.Context) error {
	if w.pool.registry.Len() >= w.pool.config.MaxConcurrentSessions {
		return ErrAtCapacity
	}

	claimed, err := w.pool.service.ClaimNextQueuedSession(ctx, w.pool.podID)
	if err != nil {
		return fmt.Errorf("failed to claim session: %w", err)
	}
	if claimed == nil {
		return ErrNoSessionsAvailable
	}

	w.process(claimed)
	return nil
}

// process runs one claimed session to a terminal status. The session
// context is detached from the poll context so pool shutdown drains
// in-flight sessions instead of aborting them.
func (w *Worker) process(row *ent.ResearchSession) {
	log := slog.With("worker_id", w.id, "session_id", row.ID)
	log.Info("Processing session", "query", row.Query)

	w.setWorking(row.ID)
	defer w.setIdle()

	sessionCtx, cancel := context.WithTimeout(context.Background(), w.pool.config.SessionTimeout)
	defer cancel()

	w.pool.registry.Register(row.ID, w.id, cancel)
	defer w.pool.registry.Deregister(row.ID)

	w.pool.bus.PublishSessionStatus(row.ID, events.SessionStatusPayload{
		Status: string(researchsession.StatusRunning),
		Detail: fmt.Sprintf("claimed by pod %s", w.pool.podID),
	})

	var cancelRequested atomic.Bool
	hbDone := make(chan struct{})
	var hbWG sync.WaitGroup
	hbWG.Add(1)
	go func() {
		defer hbWG.Done()
		w.heartbeat(sessionCtx, row.ID, hbDone, &cancelRequested, cancel)
	}()

	runner := w.pool.factory(row)
	result, runErr := w.resumeOrRun(sessionCtx, runner, row)

	close(hbDone)
	hbWG.Wait()

	// A shutdown force-cancel is not a terminal outcome: the row stays
	// RUNNING and orphan detection re-queues it once the heartbeat goes
	// stale, so another replica resumes from the checkpoint.
	if runErr != nil && errors.Is(runErr, context.Canceled) &&
		!cancelRequested.Load() && w.pool.stopping() {
		log.Info("Shutdown interrupted session; leaving it for orphan re-queue")
		return
	}

	outcome := w.buildOutcome(sessionCtx, runner, result, runErr)
	if err := w.pool.service.CompleteSession(context.Background(), row.ID, outcome); err != nil {
		log.Error("Failed to write terminal status", "status", outcome.Status, "error", err)
	}

	w.pool.bus.PublishSessionStatus(row.ID, events.SessionStatusPayload{
		Status: string(outcome.Status),
		Detail: outcome.ErrorMessage,
	})

	// Keep the ring around long enough for late subscribers to see the
	// terminal event, then drop it. The JSONL log persists regardless.
	sessionID := row.ID
	time.AfterFunc(eventLinger, func() { w.pool.bus.DropSession(sessionID) })

	w.mu.Lock()
	w.sessionsProcessed++
	w.mu.Unlock()

	log.Info("Session processed", "status", outcome.Status,
		"cost_usd", outcome.TotalCostUSD, "llm_calls", outcome.LLMCalls)
}

// resumeOrRun tries checkpoint resume first. A session with no usable
// checkpoint (fresh claims, quarantined snapshots) restarts from the
// durable query.
func (w *Worker) resumeOrRun(ctx context.Context, runner SessionRunner, row *ent.ResearchSession) (agent.RunResult, error) {
	result, err := runner.Resume(ctx, row.ID)
	if err != nil && errors.Is(err, checkpoint.ErrNotFound) {
		return runner.Run(ctx, row.ID, row.Query)
	}
	return result, err
}

// heartbeat stamps last_interaction_at on an interval so orphan detection
// knows this pod is alive, and polls for cross-replica cancellation: a
// session moved to cancelling by any replica gets its context cancelled
// here.
func (w *Worker) heartbeat(ctx context.Context, sessionID string, done <-chan struct{}, cancelRequested *atomic.Bool, cancel context.CancelFunc) {
	ticker := time.NewTicker(w.pool.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			requested, err := w.pool.service.Heartbeat(ctx, sessionID)
			if err != nil {
				slog.Warn("Heartbeat failed", "session_id", sessionID, "error", err)
				continue
			}
			if requested && !cancelRequested.Load() {
				slog.Info("Cancellation requested; stopping session", "session_id", sessionID)
				cancelRequested.Store(true)
				cancel()
			}
		}
	}
}

// buildOutcome maps the pipeline result to a terminal session status.
func (w *Worker) buildOutcome(sessionCtx context.Context, runner SessionRunner, result agent.RunResult, runErr error) services.Completion {
	costUSD, llmCalls := runner.Totals()
	outcome := services.Completion{
		Status:       researchsession.StatusCompleted,
		TotalCostUSD: costUSD,
		LLMCalls:     llmCalls,
		ReportPath:   result.ReportPath,
	}
	if result.State.ReportMetadata != nil {
		outcome.ReportMetadata = result.State.ReportMetadata
	}

	switch {
	case runErr == nil:
		// A run can end cleanly without a report when no content survived
		// scraping; surface the pipeline's own explanation as a warning.
		if result.State.FinalReport == "" {
			if n := len(result.State.ErrorLog); n > 0 {
				outcome.Warning = result.State.ErrorLog[n-1].Message
			} else {
				outcome.Warning = "run finished without producing a report"
			}
		}
	case errors.Is(runErr, context.Canceled):
		outcome.Status = researchsession.StatusCancelled
		outcome.ErrorMessage = "Cancelled by user request"
	case errors.Is(runErr, context.DeadlineExceeded) || sessionCtx.Err() == context.DeadlineExceeded:
		outcome.Status = researchsession.StatusTimedOut
		outcome.ErrorMessage = fmt.Sprintf("Session exceeded %s timeout", w.pool.config.SessionTimeout)
	case errors.Is(runErr, costs.ErrBudgetExhausted):
		outcome.Status = researchsession.StatusFailed
		outcome.ErrorMessage = runErr.Error()
	default:
		outcome.Status = researchsession.StatusFailed
		outcome.ErrorMessage = runErr.Error()
	}
	return outcome
}

func (w *Worker) setWorking(sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = "working"
	w.currentSessionID = sessionID
	w.lastActivity = time.Now()
}

func (w *Worker) setIdle() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = "idle"
	w.currentSessionID = ""
	w.lastActivity = time.Now()
}

// health snapshots the worker's stats for pool health reporting.
func (w *Worker) health() WorkerHealth {
	w.mu.Lock()
	defer w.mu.Unlock()
	return WorkerHealth{
		ID:                w.id,
		Status:            w.status,
		CurrentSessionID:  w.currentSessionID,
		SessionsProcessed: w.sessionsProcessed,
		LastActivity:      w.lastActivity,
	}
}
