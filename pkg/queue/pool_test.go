package queue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmhernandez2525/research-agent-sub001/ent"
	"github.com/dmhernandez2525/research-agent-sub001/ent/researchsession"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/agent"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/events"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/models"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/services"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/session"
	testdb "github.com/dmhernandez2525/research-agent-sub001/test/database"
)

type poolFixture struct {
	pool     *WorkerPool
	service  *services.SessionService
	registry *session.Registry
	bus      *events.Bus
	client   *ent.Client
}

func fastQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             1,
		MaxConcurrentSessions:   2,
		PollInterval:            20 * time.Millisecond,
		PollIntervalJitter:      0,
		SessionTimeout:          5 * time.Second,
		GracefulShutdownTimeout: 2 * time.Second,
		HeartbeatInterval:       20 * time.Millisecond,
		OrphanDetectionInterval: 40 * time.Millisecond,
		OrphanThreshold:         time.Minute,
	}
}

func newPoolFixture(t *testing.T, factory RunnerFactory, mutate func(*config.QueueConfig)) *poolFixture {
	t.Helper()

	cfg := fastQueueConfig()
	if mutate != nil {
		mutate(cfg)
	}

	client := testdb.NewTestClient(t)
	registry := session.NewRegistry()
	service := services.NewSessionService(client.Client, registry, services.AdmissionLimits{
		MaxConcurrentSessions: cfg.MaxConcurrentSessions,
		QueueLimit:            10,
	})
	bus := events.NewBus(nil, nil)
	t.Cleanup(bus.Close)

	return &poolFixture{
		pool:     NewWorkerPool("pod-test", service, registry, bus, factory, cfg),
		service:  service,
		registry: registry,
		bus:      bus,
		client:   client.Client,
	}
}

func (f *poolFixture) createSession(t *testing.T, query string) string {
	t.Helper()
	resp, err := f.service.CreateSession(context.Background(), models.CreateSessionRequest{Query: query})
	require.NoError(t, err)
	return resp.ID
}

func (f *poolFixture) waitForStatus(t *testing.T, sessionID string, want researchsession.Status) *ent.ResearchSession {
	t.Helper()
	var row *ent.ResearchSession
	require.Eventually(t, func() bool {
		var err error
		row, err = f.client.ResearchSession.Get(context.Background(), sessionID)
		return err == nil && row.Status == want
	}, 10*time.Second, 25*time.Millisecond, "session never reached status %s", want)
	return row
}

func TestWorkerPool_ProcessesQueuedSession(t *testing.T) {
	runner := &fakeRunner{costUSD: 0.05, llmCalls: 3}
	runner.result.ReportPath = "reports/pool-test.md"
	runner.result.State.FinalReport = "# Findings"
	runner.result.State.ReportMetadata = map[string]any{"pages_scraped": float64(4)}

	f := newPoolFixture(t, func(*ent.ResearchSession) SessionRunner { return runner }, nil)
	sessionID := f.createSession(t, "webassembly outside the browser")

	require.NoError(t, f.pool.Start(context.Background()))
	defer f.pool.Stop()

	row := f.waitForStatus(t, sessionID, researchsession.StatusCompleted)
	assert.Equal(t, 0.05, row.TotalCostUsd)
	assert.Equal(t, 3, row.LlmCalls)
	require.NotNil(t, row.ReportPath)
	assert.Equal(t, "reports/pool-test.md", *row.ReportPath)
	assert.NotNil(t, row.CompletedAt)

	// Resume was attempted first, then the fresh run.
	run, resume := runner.calls()
	assert.Equal(t, 1, run)
	assert.Equal(t, 1, resume)

	// Lifecycle events landed on the bus: running, then terminal.
	var statuses []string
	for _, evt := range f.bus.History(sessionID, 0) {
		if evt.Type == events.EventTypeSessionStatus {
			statuses = append(statuses, evt.Payload["status"].(string))
		}
	}
	assert.Equal(t, []string{"running", "completed"}, statuses)

	health := f.pool.Health(context.Background())
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, 0, health.QueueDepth)
	assert.Equal(t, 1, health.TotalWorkers)
}

func TestWorkerPool_ResumeShortCircuitsRun(t *testing.T) {
	resumed := agent.RunResult{ReportPath: "reports/resumed.md"}
	resumed.State.FinalReport = "# Resumed"
	runner := &fakeRunner{resumeResult: &resumed, costUSD: 0.01, llmCalls: 1}

	f := newPoolFixture(t, func(*ent.ResearchSession) SessionRunner { return runner }, nil)
	sessionID := f.createSession(t, "resumable research")

	require.NoError(t, f.pool.Start(context.Background()))
	defer f.pool.Stop()

	row := f.waitForStatus(t, sessionID, researchsession.StatusCompleted)
	require.NotNil(t, row.ReportPath)
	assert.Equal(t, "reports/resumed.md", *row.ReportPath)

	run, resume := runner.calls()
	assert.Equal(t, 0, run)
	assert.Equal(t, 1, resume)
}

func TestWorkerPool_CancelRunningSession(t *testing.T) {
	runner := &fakeRunner{block: true}
	f := newPoolFixture(t, func(*ent.ResearchSession) SessionRunner { return runner }, nil)
	sessionID := f.createSession(t, "long running research")

	require.NoError(t, f.pool.Start(context.Background()))
	defer f.pool.Stop()

	f.waitForStatus(t, sessionID, researchsession.StatusRunning)
	require.Eventually(t, func() bool { return f.registry.Len() == 1 }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, f.service.CancelSession(context.Background(), sessionID))

	row := f.waitForStatus(t, sessionID, researchsession.StatusCancelled)
	require.NotNil(t, row.ErrorMessage)
	assert.Equal(t, "Cancelled by user request", *row.ErrorMessage)
	assert.NotNil(t, row.CompletedAt)
}

func TestWorkerPool_SessionTimeout(t *testing.T) {
	runner := &fakeRunner{block: true}
	f := newPoolFixture(t, func(*ent.ResearchSession) SessionRunner { return runner }, func(cfg *config.QueueConfig) {
		cfg.SessionTimeout = 80 * time.Millisecond
	})
	sessionID := f.createSession(t, "research that overruns")

	require.NoError(t, f.pool.Start(context.Background()))
	defer f.pool.Stop()

	row := f.waitForStatus(t, sessionID, researchsession.StatusTimedOut)
	require.NotNil(t, row.ErrorMessage)
	assert.Contains(t, *row.ErrorMessage, "timeout")
}

func TestWorkerPool_ShutdownLeavesInterruptedSessionForRequeue(t *testing.T) {
	runner := &fakeRunner{block: true}
	f := newPoolFixture(t, func(*ent.ResearchSession) SessionRunner { return runner }, func(cfg *config.QueueConfig) {
		cfg.GracefulShutdownTimeout = 100 * time.Millisecond
	})
	sessionID := f.createSession(t, "interrupted by shutdown")

	require.NoError(t, f.pool.Start(context.Background()))
	f.waitForStatus(t, sessionID, researchsession.StatusRunning)

	// Drain times out, the session is force-cancelled, and the worker
	// leaves the row RUNNING for orphan recovery instead of finalizing it.
	f.pool.Stop()

	row, err := f.client.ResearchSession.Get(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusRunning, row.Status)
	assert.Nil(t, row.CompletedAt)

	requeued, err := f.service.RequeueOrphanedSessions(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, requeued)

	row, err = f.client.ResearchSession.Get(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusQueued, row.Status)
	assert.Nil(t, row.PodID)
	assert.Nil(t, row.StartedAt)
}

func TestWorkerPool_OrphanFromDeadPodCompletesOnPeer(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	ctx := context.Background()

	newPod := func(podID string, runner SessionRunner, mutate func(*config.QueueConfig)) (*WorkerPool, *services.SessionService, *ent.Client) {
		cfg := fastQueueConfig()
		if mutate != nil {
			mutate(cfg)
		}
		client := shared.NewClient(t)
		registry := session.NewRegistry()
		service := services.NewSessionService(client.Client, registry, services.AdmissionLimits{
			MaxConcurrentSessions: cfg.MaxConcurrentSessions,
			QueueLimit:            10,
		})
		bus := events.NewBus(nil, nil)
		t.Cleanup(bus.Close)
		pool := NewWorkerPool(podID, service, registry, bus,
			func(*ent.ResearchSession) SessionRunner { return runner }, cfg)
		return pool, service, client.Client
	}

	// Pod A claims the session, then dies mid-run: the drain times out and
	// the row stays RUNNING under pod A's ownership.
	blocked := &fakeRunner{block: true}
	podA, serviceA, clientA := newPod("pod-a", blocked, func(cfg *config.QueueConfig) {
		cfg.GracefulShutdownTimeout = 100 * time.Millisecond
	})

	resp, err := serviceA.CreateSession(ctx, models.CreateSessionRequest{Query: "research orphaned by a pod crash"})
	require.NoError(t, err)
	sessionID := resp.ID

	require.NoError(t, podA.Start(ctx))
	require.Eventually(t, func() bool {
		row, err := clientA.ResearchSession.Get(ctx, sessionID)
		return err == nil && row.Status == researchsession.StatusRunning
	}, 10*time.Second, 25*time.Millisecond)
	podA.Stop()

	// Pod B's orphan scan notices the stale heartbeat, requeues the row,
	// and its own worker finishes the research.
	completer := &fakeRunner{costUSD: 0.02, llmCalls: 2}
	completer.result.ReportPath = "reports/peer.md"
	podB, _, clientB := newPod("pod-b", completer, func(cfg *config.QueueConfig) {
		cfg.OrphanThreshold = 200 * time.Millisecond
		cfg.OrphanDetectionInterval = 50 * time.Millisecond
	})
	require.NoError(t, podB.Start(ctx))
	defer podB.Stop()

	var row *ent.ResearchSession
	require.Eventually(t, func() bool {
		row, err = clientB.ResearchSession.Get(ctx, sessionID)
		return err == nil && row.Status == researchsession.StatusCompleted
	}, 10*time.Second, 25*time.Millisecond)

	require.NotNil(t, row.ReportPath)
	assert.Equal(t, "reports/peer.md", *row.ReportPath)
	run, resume := completer.calls()
	assert.Equal(t, 1, run)
	assert.Equal(t, 1, resume)
}

func TestWorkerPool_OrphanDetectionRequeuesStaleSessions(t *testing.T) {
	f := newPoolFixture(t, func(*ent.ResearchSession) SessionRunner { return &fakeRunner{} }, func(cfg *config.QueueConfig) {
		cfg.WorkerCount = 0
		cfg.OrphanThreshold = 50 * time.Millisecond
		cfg.OrphanDetectionInterval = 30 * time.Millisecond
	})

	// A session left RUNNING by a pod that stopped heartbeating.
	ctx := context.Background()
	stale := time.Now().Add(-time.Minute)
	sessionID := uuid.NewString()
	err := f.client.ResearchSession.Create().
		SetID(sessionID).
		SetQuery("orphaned research").
		SetRunID(uuid.NewString()).
		SetStatus(researchsession.StatusRunning).
		SetCreatedAt(stale).
		SetStartedAt(stale).
		SetPodID("dead-pod").
		SetLastInteractionAt(stale).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, f.pool.Start(ctx))
	defer f.pool.Stop()

	row := f.waitForStatus(t, sessionID, researchsession.StatusQueued)
	assert.Nil(t, row.PodID)

	health := f.pool.Health(ctx)
	assert.GreaterOrEqual(t, health.OrphansRequeued, 1)
	assert.False(t, health.LastOrphanScan.IsZero())
}
