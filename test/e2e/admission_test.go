package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmhernandez2525/research-agent-sub001/ent"
	"github.com/dmhernandez2525/research-agent-sub001/ent/researchsession"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/agent"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/checkpoint"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/queue"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/services"
)

// blockingRunner parks its session until released, holding the running
// slot open. Resume reports no checkpoint so the worker starts fresh.
type blockingRunner struct {
	release chan struct{}
}

func (r *blockingRunner) Run(ctx context.Context, sessionID, query string) (agent.RunResult, error) {
	select {
	case <-r.release:
		result := agent.RunResult{}
		result.State.FinalReport = "# Done"
		return result, nil
	case <-ctx.Done():
		return agent.RunResult{}, ctx.Err()
	}
}

func (r *blockingRunner) Resume(ctx context.Context, sessionID string) (agent.RunResult, error) {
	return agent.RunResult{}, fmt.Errorf("recovering session %s: %w", sessionID, checkpoint.ErrNotFound)
}

func (r *blockingRunner) Totals() (float64, int) { return 0, 0 }

// With max_concurrent=1 and queue_limit=0 there is room for exactly one
// session in the whole system: while it runs, the next create is refused
// with 429 instead of queueing.
func TestAdmissionRejectsSecondSessionWithNoQueueRoom(t *testing.T) {
	runner := &blockingRunner{release: make(chan struct{})}
	factory := func(*ent.ResearchSession) queue.SessionRunner { return runner }
	s := newStack(t, services.AdmissionLimits{MaxConcurrentSessions: 1, QueueLimit: 0}, factory)

	resp, body := s.do(t, http.MethodPost, "/api/sessions", `{"query":"first session"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	s.waitForStatus(t, created.ID, researchsession.StatusRunning)

	resp, body = s.do(t, http.MethodPost, "/api/sessions", `{"query":"second session"}`)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Contains(t, string(body), "queue limit")

	// Releasing the first session frees the slot.
	close(runner.release)
	s.waitForStatus(t, created.ID, researchsession.StatusCompleted)

	resp, body = s.do(t, http.MethodPost, "/api/sessions", `{"query":"third session"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
}
