package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dmhernandez2525/research-agent-sub001/ent/researchsession"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/events"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/services"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/session"
)

// orphanState tracks orphan detection metrics.
type orphanState struct {
	mu              sync.Mutex
	lastOrphanScan  time.Time
	orphansRequeued int
}

// WorkerPool manages the workers draining the session queue on this
// replica. All replicas run identical pools against the same table; the
// database is the only coordinator.
type WorkerPool struct {
	podID    string
	service  *services.SessionService
	registry *session.Registry
	bus      *events.Bus
	factory  RunnerFactory
	config   *config.QueueConfig

	workers []*Worker
	stopCh  chan struct{}
	wg      sync.WaitGroup
	orphans orphanState

	mu      sync.Mutex
	started bool
}

// NewWorkerPool creates a worker pool. Start must be called before the
// pool processes anything.
func NewWorkerPool(podID string, service *services.SessionService, registry *session.Registry, bus *events.Bus, factory RunnerFactory, cfg *config.QueueConfig) *WorkerPool {
	return &WorkerPool{
		podID:    podID,
		service:  service,
		registry: registry,
		bus:      bus,
		factory:  factory,
		config:   cfg,
		stopCh:   make(chan struct{}),
	}
}

// Start launches the workers and the orphan detection loop.
func (p *WorkerPool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return fmt.Errorf("worker pool already started")
	}
	p.started = true

	slog.Info("Starting worker pool",
		"pod_id", p.podID,
		"workers", p.config.WorkerCount,
		"max_concurrent", p.config.MaxConcurrentSessions)

	for i := 0; i < p.config.WorkerCount; i++ {
		w := newWorker(fmt.Sprintf("%s-worker-%d", p.podID, i), p)
		p.workers = append(p.workers, w)
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			w.run(ctx)
		}()
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	return nil
}

// Stop drains the pool: workers stop claiming immediately, in-flight
// sessions get GracefulShutdownTimeout to finish, then remaining sessions
// are cancelled. Cancelled sessions keep their checkpoints and are
// re-queued by orphan detection on another replica.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool", "pod_id", p.podID, "active_sessions", p.registry.Len())
	close(p.stopCh)

	done := make(chan struct{})
	go func() {
		p.waitForActiveSessions()
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool drained cleanly")
	case <-time.After(p.config.GracefulShutdownTimeout):
		slog.Warn("Graceful shutdown timeout; cancelling remaining sessions",
			"remaining", p.registry.Len())
		p.registry.CancelAll()
		p.wg.Wait()
	}
}

// stopping reports whether Stop has been called.
func (p *WorkerPool) stopping() bool {
	select {
	case <-p.stopCh:
		return true
	default:
		return false
	}
}

// waitForActiveSessions blocks until every registered session finishes.
func (p *WorkerPool) waitForActiveSessions() {
	for p.registry.Len() > 0 {
		time.Sleep(100 * time.Millisecond)
	}
}

// runOrphanDetection periodically re-queues sessions whose heartbeat went
// stale. All pods run this independently; the requeue update is guarded by
// status so double recovery is harmless.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			requeued, err := p.service.RequeueOrphanedSessions(ctx, p.config.OrphanThreshold)
			if err != nil {
				slog.Error("Orphan detection failed", "error", err)
				continue
			}
			if requeued > 0 {
				slog.Warn("Re-queued orphaned sessions for checkpoint resume", "count", requeued)
			}
			p.orphans.mu.Lock()
			p.orphans.lastOrphanScan = time.Now()
			p.orphans.orphansRequeued += requeued
			p.orphans.mu.Unlock()
		}
	}
}

// CancelSession requests in-process cancellation of a session owned by
// this pod. Returns false when the session runs elsewhere.
func (p *WorkerPool) CancelSession(sessionID string) bool {
	return p.registry.Cancel(sessionID)
}

// Health reports pool health including per-worker stats and queue depth.
func (p *WorkerPool) Health(ctx context.Context) PoolHealth {
	p.orphans.mu.Lock()
	lastScan := p.orphans.lastOrphanScan
	requeued := p.orphans.orphansRequeued
	p.orphans.mu.Unlock()

	health := PoolHealth{
		PodID:           p.podID,
		TotalWorkers:    len(p.workers),
		ActiveSessions:  p.registry.Len(),
		MaxConcurrent:   p.config.MaxConcurrentSessions,
		LastOrphanScan:  lastScan,
		OrphansRequeued: requeued,
	}

	for _, w := range p.workers {
		stat := w.health()
		health.WorkerStats = append(health.WorkerStats, stat)
		if stat.Status == "working" {
			health.ActiveWorkers++
		}
	}

	depth, err := p.service.CountByStatus(ctx, researchsession.StatusQueued)
	if err != nil {
		health.DBReachable = false
		health.DBError = err.Error()
		return health
	}
	health.DBReachable = true
	health.QueueDepth = depth
	health.IsHealthy = true
	return health
}
