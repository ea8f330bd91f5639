package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmhernandez2525/research-agent-sub001/ent"
	"github.com/dmhernandez2525/research-agent-sub001/ent/researchsession"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/agent"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/checkpoint"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/costs"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/events"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/session"
)

// fakeRunner is a scripted SessionRunner. With no resumeResult set, Resume
// reports checkpoint.ErrNotFound the way a fresh session does. With block
// set, Run parks until the session context is cancelled.
type fakeRunner struct {
	mu          sync.Mutex
	runCalls    int
	resumeCalls int

	resumeResult *agent.RunResult
	resumeErr    error
	result       agent.RunResult
	err          error
	block        bool

	costUSD  float64
	llmCalls int
}

func (f *fakeRunner) Run(ctx context.Context, sessionID, query string) (agent.RunResult, error) {
	f.mu.Lock()
	f.runCalls++
	f.mu.Unlock()
	if f.block {
		<-ctx.Done()
		return agent.RunResult{}, ctx.Err()
	}
	return f.result, f.err
}

func (f *fakeRunner) Resume(ctx context.Context, sessionID string) (agent.RunResult, error) {
	f.mu.Lock()
	f.resumeCalls++
	f.mu.Unlock()
	if f.resumeErr != nil {
		return agent.RunResult{}, f.resumeErr
	}
	if f.resumeResult == nil {
		return agent.RunResult{}, fmt.Errorf("recovering session %s: %w", sessionID, checkpoint.ErrNotFound)
	}
	return *f.resumeResult, nil
}

func (f *fakeRunner) Totals() (float64, int) { return f.costUSD, f.llmCalls }

func (f *fakeRunner) calls() (run, resume int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.runCalls, f.resumeCalls
}

func newUnitWorker(t *testing.T) *Worker {
	t.Helper()
	pool := NewWorkerPool("pod-test", nil, session.NewRegistry(), events.NewBus(nil, nil), nil, config.DefaultQueueConfig())
	return newWorker("pod-test-worker-0", pool)
}

func TestBuildOutcome(t *testing.T) {
	w := newUnitWorker(t)
	ctx := context.Background()

	t.Run("clean run completes with report totals", func(t *testing.T) {
		runner := &fakeRunner{costUSD: 0.42, llmCalls: 9}
		result := agent.RunResult{ReportPath: "reports/sess-1.md"}
		result.State.FinalReport = "# Report"
		result.State.ReportMetadata = map[string]any{"quality": 0.8}

		outcome := w.buildOutcome(ctx, runner, result, nil)
		assert.Equal(t, researchsession.StatusCompleted, outcome.Status)
		assert.Empty(t, outcome.ErrorMessage)
		assert.Empty(t, outcome.Warning)
		assert.Equal(t, "reports/sess-1.md", outcome.ReportPath)
		assert.Equal(t, 0.42, outcome.TotalCostUSD)
		assert.Equal(t, 9, outcome.LLMCalls)
		assert.Equal(t, map[string]any{"quality": 0.8}, outcome.ReportMetadata)
	})

	t.Run("reportless run surfaces the last logged error as warning", func(t *testing.T) {
		runner := &fakeRunner{}
		var result agent.RunResult
		result.State.ErrorLog = []agent.ErrorEntry{
			{Step: agent.NodeScrape, Message: "No pages could be scraped; terminating early"},
		}

		outcome := w.buildOutcome(ctx, runner, result, nil)
		assert.Equal(t, researchsession.StatusCompleted, outcome.Status)
		assert.Equal(t, "No pages could be scraped; terminating early", outcome.Warning)
	})

	t.Run("reportless run without logged errors gets a generic warning", func(t *testing.T) {
		outcome := w.buildOutcome(ctx, &fakeRunner{}, agent.RunResult{}, nil)
		assert.Equal(t, researchsession.StatusCompleted, outcome.Status)
		assert.Equal(t, "run finished without producing a report", outcome.Warning)
	})

	t.Run("context cancellation maps to cancelled", func(t *testing.T) {
		err := fmt.Errorf("running step search: %w", context.Canceled)
		outcome := w.buildOutcome(ctx, &fakeRunner{}, agent.RunResult{}, err)
		assert.Equal(t, researchsession.StatusCancelled, outcome.Status)
		assert.Equal(t, "Cancelled by user request", outcome.ErrorMessage)
	})

	t.Run("deadline maps to timed_out", func(t *testing.T) {
		err := fmt.Errorf("running step summarize: %w", context.DeadlineExceeded)
		outcome := w.buildOutcome(ctx, &fakeRunner{}, agent.RunResult{}, err)
		assert.Equal(t, researchsession.StatusTimedOut, outcome.Status)
		assert.Contains(t, outcome.ErrorMessage, "timeout")
	})

	t.Run("budget exhaustion maps to failed", func(t *testing.T) {
		err := fmt.Errorf("summarize subtopic 2: %w", costs.ErrBudgetExhausted)
		outcome := w.buildOutcome(ctx, &fakeRunner{costUSD: 5.0, llmCalls: 40}, agent.RunResult{}, err)
		assert.Equal(t, researchsession.StatusFailed, outcome.Status)
		assert.Contains(t, outcome.ErrorMessage, "budget exhausted")
		assert.Equal(t, 5.0, outcome.TotalCostUSD)
	})

	t.Run("any other error maps to failed", func(t *testing.T) {
		outcome := w.buildOutcome(ctx, &fakeRunner{}, agent.RunResult{}, fmt.Errorf("synthesis produced no report"))
		assert.Equal(t, researchsession.StatusFailed, outcome.Status)
		assert.Equal(t, "synthesis produced no report", outcome.ErrorMessage)
	})
}

func sessionRow(id, query string) *ent.ResearchSession {
	return &ent.ResearchSession{ID: id, Query: query}
}

func TestResumeOrRun(t *testing.T) {
	w := newUnitWorker(t)
	ctx := context.Background()

	t.Run("resume short-circuits run", func(t *testing.T) {
		resumed := agent.RunResult{ReportPath: "reports/resumed.md"}
		runner := &fakeRunner{resumeResult: &resumed}

		result, err := w.resumeOrRun(ctx, runner, sessionRow("sess-resume", "original query"))
		require.NoError(t, err)
		assert.Equal(t, "reports/resumed.md", result.ReportPath)
		run, resume := runner.calls()
		assert.Equal(t, 0, run)
		assert.Equal(t, 1, resume)
	})

	t.Run("missing checkpoint falls back to a fresh run", func(t *testing.T) {
		runner := &fakeRunner{result: agent.RunResult{ReportPath: "reports/fresh.md"}}

		result, err := w.resumeOrRun(ctx, runner, sessionRow("sess-fresh", "original query"))
		require.NoError(t, err)
		assert.Equal(t, "reports/fresh.md", result.ReportPath)
		run, resume := runner.calls()
		assert.Equal(t, 1, run)
		assert.Equal(t, 1, resume)
	})

	t.Run("other resume errors propagate without a fresh run", func(t *testing.T) {
		runner := &fakeRunner{resumeErr: fmt.Errorf("checkpoint store unreadable")}

		_, err := w.resumeOrRun(ctx, runner, sessionRow("sess-bad", "original query"))
		require.Error(t, err)
		run, _ := runner.calls()
		assert.Equal(t, 0, run)
	})
}

func TestJitteredPollInterval(t *testing.T) {
	w := newUnitWorker(t)
	w.pool.config.PollInterval = time.Second
	w.pool.config.PollIntervalJitter = 500 * time.Millisecond

	for i := 0; i < 100; i++ {
		d := w.jitteredPollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.LessOrEqual(t, d, 1500*time.Millisecond)
	}

	w.pool.config.PollIntervalJitter = 0
	assert.Equal(t, time.Second, w.jitteredPollInterval())
}
