package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmhernandez2525/research-agent-sub001/ent/researchsession"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/models"
	testdb "github.com/dmhernandez2525/research-agent-sub001/test/database"
)

func testService(t *testing.T, limits AdmissionLimits) *SessionService {
	client := testdb.NewTestClient(t)
	return NewSessionService(client.Client, nil, limits)
}

func defaultLimits() AdmissionLimits {
	return AdmissionLimits{MaxConcurrentSessions: 3, QueueLimit: 10}
}

func TestSessionService_CreateSession(t *testing.T) {
	service := testService(t, defaultLimits())
	ctx := context.Background()

	t.Run("creates queued session with position", func(t *testing.T) {
		resp, err := service.CreateSession(ctx, models.CreateSessionRequest{
			Query: "webassembly outside the browser",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, researchsession.StatusQueued, resp.Status)
		assert.NotEmpty(t, resp.RunID)
		require.NotNil(t, resp.QueuedPosition)
		assert.Equal(t, 1, *resp.QueuedPosition)
	})

	t.Run("positions are FIFO", func(t *testing.T) {
		resp, err := service.CreateSession(ctx, models.CreateSessionRequest{Query: "second query"})
		require.NoError(t, err)
		require.NotNil(t, resp.QueuedPosition)
		assert.Equal(t, 2, *resp.QueuedPosition)
	})

	t.Run("rejects empty query", func(t *testing.T) {
		_, err := service.CreateSession(ctx, models.CreateSessionRequest{})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown output format", func(t *testing.T) {
		_, err := service.CreateSession(ctx, models.CreateSessionRequest{Query: "q", OutputFormat: "docx"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects non-positive budget", func(t *testing.T) {
		budget := -1.0
		_, err := service.CreateSession(ctx, models.CreateSessionRequest{Query: "q", BudgetUSD: &budget})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects duplicate session id", func(t *testing.T) {
		id := uuid.New().String()
		_, err := service.CreateSession(ctx, models.CreateSessionRequest{SessionID: id, Query: "q"})
		require.NoError(t, err)
		_, err = service.CreateSession(ctx, models.CreateSessionRequest{SessionID: id, Query: "q"})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestSessionService_QueueOverflow(t *testing.T) {
	service := testService(t, AdmissionLimits{MaxConcurrentSessions: 1, QueueLimit: 0})
	ctx := context.Background()

	first, err := service.CreateSession(ctx, models.CreateSessionRequest{Query: "first"})
	require.NoError(t, err)

	claimed, err := service.ClaimNextQueuedSession(ctx, "pod-1")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, first.ID, claimed.ID)

	_, err = service.CreateSession(ctx, models.CreateSessionRequest{Query: "second"})
	assert.ErrorIs(t, err, ErrQueueOverflow)
}

func TestSessionService_ClaimNextQueuedSession(t *testing.T) {
	service := testService(t, defaultLimits())
	ctx := context.Background()

	t.Run("empty queue claims nothing", func(t *testing.T) {
		claimed, err := service.ClaimNextQueuedSession(ctx, "pod-1")
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})

	t.Run("claims oldest first and stamps worker fields", func(t *testing.T) {
		older, err := service.CreateSession(ctx, models.CreateSessionRequest{Query: "older"})
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
		_, err = service.CreateSession(ctx, models.CreateSessionRequest{Query: "newer"})
		require.NoError(t, err)

		claimed, err := service.ClaimNextQueuedSession(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, older.ID, claimed.ID)
		assert.Equal(t, researchsession.StatusRunning, claimed.Status)
		require.NotNil(t, claimed.PodID)
		assert.Equal(t, "pod-1", *claimed.PodID)
		assert.NotNil(t, claimed.StartedAt)
		assert.NotNil(t, claimed.LastInteractionAt)
	})
}

func TestSessionService_CancelSession(t *testing.T) {
	service := testService(t, defaultLimits())
	ctx := context.Background()

	t.Run("queued cancels directly", func(t *testing.T) {
		resp, err := service.CreateSession(ctx, models.CreateSessionRequest{Query: "to cancel"})
		require.NoError(t, err)

		require.NoError(t, service.CancelSession(ctx, resp.ID))
		got, err := service.GetSession(ctx, resp.ID)
		require.NoError(t, err)
		assert.Equal(t, researchsession.StatusCancelled, got.Status)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("running transitions to cancelling", func(t *testing.T) {
		resp, err := service.CreateSession(ctx, models.CreateSessionRequest{Query: "running"})
		require.NoError(t, err)
		_, err = service.ClaimNextQueuedSession(ctx, "pod-1")
		require.NoError(t, err)

		require.NoError(t, service.CancelSession(ctx, resp.ID))
		got, err := service.GetSession(ctx, resp.ID)
		require.NoError(t, err)
		assert.Equal(t, researchsession.StatusCancelling, got.Status)

		cancelRequested, err := service.Heartbeat(ctx, resp.ID)
		require.NoError(t, err)
		assert.True(t, cancelRequested)

		// Idempotent while cancelling.
		assert.NoError(t, service.CancelSession(ctx, resp.ID))
	})

	t.Run("terminal is not cancellable", func(t *testing.T) {
		resp, err := service.CreateSession(ctx, models.CreateSessionRequest{Query: "done"})
		require.NoError(t, err)
		claimed, err := service.ClaimNextQueuedSession(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		require.NoError(t, service.CompleteSession(ctx, resp.ID, Completion{
			Status: researchsession.StatusCompleted,
		}))

		assert.ErrorIs(t, service.CancelSession(ctx, resp.ID), ErrNotCancellable)
	})

	t.Run("unknown session", func(t *testing.T) {
		assert.ErrorIs(t, service.CancelSession(ctx, "nope"), ErrNotFound)
	})
}

func TestSessionService_CompleteSession(t *testing.T) {
	service := testService(t, defaultLimits())
	ctx := context.Background()

	resp, err := service.CreateSession(ctx, models.CreateSessionRequest{Query: "complete me"})
	require.NoError(t, err)
	_, err = service.ClaimNextQueuedSession(ctx, "pod-1")
	require.NoError(t, err)

	require.NoError(t, service.CompleteSession(ctx, resp.ID, Completion{
		Status:       researchsession.StatusCompleted,
		Warning:      "partial coverage",
		TotalCostUSD: 0.42,
		LLMCalls:     17,
		ReportPath:   "/reports/complete-me_20260826_120000.md",
		ReportMetadata: map[string]any{
			"degradation_tier": "full",
		},
	}))

	got, err := service.GetSession(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusCompleted, got.Status)
	assert.NotNil(t, got.CompletedAt)
	assert.InDelta(t, 0.42, got.TotalCostUsd, 1e-9)
	assert.Equal(t, 17, got.LlmCalls)
	require.NotNil(t, got.Warning)
	assert.Equal(t, "partial coverage", *got.Warning)
	assert.Equal(t, "full", got.ReportMetadata["degradation_tier"])
	assert.Nil(t, got.QueuedPosition)
}

func TestSessionService_ListSessions(t *testing.T) {
	service := testService(t, AdmissionLimits{MaxConcurrentSessions: 10, QueueLimit: 50})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := service.CreateSession(ctx, models.CreateSessionRequest{
			Query:     fmt.Sprintf("query %d", i),
			CreatedBy: "key-1",
		})
		require.NoError(t, err)
	}
	_, err := service.CreateSession(ctx, models.CreateSessionRequest{Query: "other owner", CreatedBy: "key-2"})
	require.NoError(t, err)

	t.Run("paginates", func(t *testing.T) {
		page, err := service.ListSessions(ctx, models.SessionFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 6, page.TotalCount)
		assert.Len(t, page.Sessions, 2)
	})

	t.Run("filters by creator", func(t *testing.T) {
		page, err := service.ListSessions(ctx, models.SessionFilters{CreatedBy: "key-2"})
		require.NoError(t, err)
		assert.Equal(t, 1, page.TotalCount)
	})

	t.Run("filters by status", func(t *testing.T) {
		page, err := service.ListSessions(ctx, models.SessionFilters{Status: string(researchsession.StatusQueued)})
		require.NoError(t, err)
		assert.Equal(t, 6, page.TotalCount)
		for _, s := range page.Sessions {
			assert.NotNil(t, s.QueuedPosition)
		}
	})
}

func TestSessionService_RequeueOrphanedSessions(t *testing.T) {
	service := testService(t, defaultLimits())
	ctx := context.Background()

	resp, err := service.CreateSession(ctx, models.CreateSessionRequest{Query: "orphan"})
	require.NoError(t, err)
	claimed, err := service.ClaimNextQueuedSession(ctx, "pod-dead")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	// Fresh heartbeat: not an orphan yet.
	count, err := service.RequeueOrphanedSessions(ctx, 2*time.Minute)
	require.NoError(t, err)
	assert.Zero(t, count)

	// A zero threshold makes any heartbeat stale.
	time.Sleep(5 * time.Millisecond)
	count, err = service.RequeueOrphanedSessions(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := service.GetSession(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, researchsession.StatusQueued, got.Status)
	assert.Nil(t, got.PodID)
	assert.Nil(t, got.StartedAt)
}

func TestSessionService_SoftDeleteOldSessions(t *testing.T) {
	service := testService(t, defaultLimits())
	ctx := context.Background()

	resp, err := service.CreateSession(ctx, models.CreateSessionRequest{Query: "expired"})
	require.NoError(t, err)
	_, err = service.ClaimNextQueuedSession(ctx, "pod-1")
	require.NoError(t, err)
	require.NoError(t, service.CompleteSession(ctx, resp.ID, Completion{Status: researchsession.StatusCompleted}))

	// Backdate completion past the retention window.
	err = service.client.ResearchSession.UpdateOneID(resp.ID).
		SetCompletedAt(time.Now().Add(-40 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	ids, err := service.SoftDeleteOldSessions(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, []string{resp.ID}, ids)

	// Deleted sessions disappear from default listings.
	page, err := service.ListSessions(ctx, models.SessionFilters{})
	require.NoError(t, err)
	assert.Zero(t, page.TotalCount)

	page, err = service.ListSessions(ctx, models.SessionFilters{IncludeDeleted: true})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalCount)

	_, err = service.SoftDeleteOldSessions(ctx, 0)
	assert.Error(t, err)
}

func TestSessionService_MarkStep(t *testing.T) {
	service := testService(t, defaultLimits())
	ctx := context.Background()

	resp, err := service.CreateSession(ctx, models.CreateSessionRequest{Query: "stepper"})
	require.NoError(t, err)

	require.NoError(t, service.MarkStep(ctx, resp.ID, "search", 1))
	got, err := service.GetSession(ctx, resp.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CurrentStep)
	assert.Equal(t, "search", *got.CurrentStep)
	require.NotNil(t, got.StepIndex)
	assert.Equal(t, 1, *got.StepIndex)

	assert.ErrorIs(t, service.MarkStep(ctx, "nope", "plan", 0), ErrNotFound)
}
