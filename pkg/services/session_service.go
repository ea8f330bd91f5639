// Package services holds the session service: admission, lifecycle updates,
// claiming for the worker pool, cancellation and retention. The ent
// ResearchSession row doubles as the durable queue entry, so every operation
// here is a database transition.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/dmhernandez2525/research-agent-sub001/ent"
	"github.com/dmhernandez2525/research-agent-sub001/ent/researchsession"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/models"
)

// Canceller cancels the in-process context of a running session.
// *session.Registry satisfies it.
type Canceller interface {
	Cancel(sessionID string) bool
}

// AdmissionLimits caps how many sessions run and wait at once.
type AdmissionLimits struct {
	MaxConcurrentSessions int
	QueueLimit            int
}

// SessionService manages research session lifecycle.
type SessionService struct {
	client    *ent.Client
	canceller Canceller // nil when no in-process runs exist (e.g. CLI tools)
	limits    AdmissionLimits
}

// NewSessionService creates a new SessionService.
func NewSessionService(client *ent.Client, canceller Canceller, limits AdmissionLimits) *SessionService {
	return &SessionService{client: client, canceller: canceller, limits: limits}
}

// CreateSession admits a new research session into the durable queue.
//
// Admission: when the running count has reached max_concurrent_sessions AND
// the queued count has reached queue_limit, the request is rejected with
// ErrQueueOverflow. Otherwise the session is inserted as QUEUED and a worker
// claims it FIFO.
func (s *SessionService) CreateSession(httpCtx context.Context, req models.CreateSessionRequest) (*models.SessionResponse, error) {
	if req.Query == "" {
		return nil, NewValidationError("query", "required")
	}
	switch req.OutputFormat {
	case "", "md", "pdf":
	default:
		return nil, NewValidationError("output_format", "must be one of: md, pdf")
	}
	if req.BudgetUSD != nil && *req.BudgetUSD <= 0 {
		return nil, NewValidationError("budget_usd", "must be positive")
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	// Background context with timeout: the insert must not be lost to a
	// client disconnect mid-request.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	running, err := tx.ResearchSession.Query().
		Where(researchsession.StatusIn(researchsession.StatusRunning, researchsession.StatusCancelling)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count running sessions: %w", err)
	}
	queued, err := tx.ResearchSession.Query().
		Where(researchsession.StatusEQ(researchsession.StatusQueued)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count queued sessions: %w", err)
	}
	if running >= s.limits.MaxConcurrentSessions && queued >= s.limits.QueueLimit {
		return nil, ErrQueueOverflow
	}

	builder := tx.ResearchSession.Create().
		SetID(sessionID).
		SetQuery(req.Query).
		SetRunID(uuid.New().String()).
		SetStatus(researchsession.StatusQueued).
		SetCreatedAt(time.Now())

	if req.BudgetUSD != nil {
		builder.SetBudgetUsd(*req.BudgetUSD)
	}
	if req.OutputFormat != "" {
		builder.SetOutputFormat(req.OutputFormat)
	}
	if req.CreatedBy != "" {
		builder.SetCreatedBy(req.CreatedBy)
	}
	if req.SessionMetadata != nil {
		builder.SetSessionMetadata(req.SessionMetadata)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	slog.Info("Session created",
		"session_id", created.ID, "queued_ahead", queued, "running", running)
	position := queued + 1
	return &models.SessionResponse{ResearchSession: created, QueuedPosition: &position}, nil
}

// GetSession retrieves a session by ID, with its queue position when queued.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*models.SessionResponse, error) {
	found, err := s.client.ResearchSession.Query().
		Where(researchsession.IDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s.withPosition(ctx, found)
}

// ListSessions lists sessions with filtering and pagination.
func (s *SessionService) ListSessions(ctx context.Context, filters models.SessionFilters) (*models.SessionListResponse, error) {
	query := s.client.ResearchSession.Query()

	if filters.Status != "" {
		query = query.Where(researchsession.StatusEQ(researchsession.Status(filters.Status)))
	}
	if filters.CreatedBy != "" {
		query = query.Where(researchsession.CreatedByEQ(filters.CreatedBy))
	}
	if filters.Search != "" {
		search := filters.Search
		query = query.Where(func(sel *sql.Selector) {
			sel.Where(sql.ExprP("to_tsvector('english', query) @@ plainto_tsquery($1)", search))
		})
	}
	if filters.CreatedAfter != nil {
		query = query.Where(researchsession.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(researchsession.CreatedAtLT(*filters.CreatedBefore))
	}
	if !filters.IncludeDeleted {
		query = query.Where(researchsession.DeletedAtIsNil())
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(researchsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]*models.SessionResponse, len(rows))
	for i, row := range rows {
		resp, err := s.withPosition(ctx, row)
		if err != nil {
			return nil, err
		}
		sessions[i] = resp
	}

	return &models.SessionListResponse{
		Sessions:   sessions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// CancelSession cancels a session. QUEUED sessions transition directly to
// CANCELLED; RUNNING sessions transition to CANCELLING and have their
// in-process context cancelled, then the worker records the terminal status
// at the next suspension point. Terminal sessions return ErrNotCancellable.
func (s *SessionService) CancelSession(ctx context.Context, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	found, err := s.client.ResearchSession.Query().
		Where(researchsession.IDEQ(sessionID)).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	switch found.Status {
	case researchsession.StatusQueued:
		// Conditional update: a worker claiming concurrently wins the race
		// and the session cancels through the running path instead.
		n, err := s.client.ResearchSession.Update().
			Where(
				researchsession.IDEQ(sessionID),
				researchsession.StatusEQ(researchsession.StatusQueued),
			).
			SetStatus(researchsession.StatusCancelled).
			SetCompletedAt(time.Now()).
			Save(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to cancel queued session: %w", err)
		}
		if n == 0 {
			return s.cancelRunning(writeCtx, sessionID)
		}
		slog.Info("Queued session cancelled", "session_id", sessionID)
		return nil

	case researchsession.StatusRunning:
		return s.cancelRunning(writeCtx, sessionID)

	case researchsession.StatusCancelling:
		return nil

	default:
		return ErrNotCancellable
	}
}

func (s *SessionService) cancelRunning(ctx context.Context, sessionID string) error {
	n, err := s.client.ResearchSession.Update().
		Where(
			researchsession.IDEQ(sessionID),
			researchsession.StatusEQ(researchsession.StatusRunning),
		).
		SetStatus(researchsession.StatusCancelling).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark session cancelling: %w", err)
	}
	if n == 0 {
		return ErrNotCancellable
	}
	if s.canceller != nil && !s.canceller.Cancel(sessionID) {
		// Running on another replica; its worker observes the CANCELLING
		// status on the next heartbeat and stops at a suspension point.
		slog.Info("Cancellation recorded for session on another replica", "session_id", sessionID)
	}
	return nil
}

// ClaimNextQueuedSession atomically claims the oldest queued session for a
// worker. Returns (nil, nil) when the queue is empty or another worker won
// the claim race.
func (s *SessionService) ClaimNextQueuedSession(ctx context.Context, podID string) (*ent.ResearchSession, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	candidate, err := tx.ResearchSession.Query().
		Where(researchsession.StatusEQ(researchsession.StatusQueued)).
		Order(ent.Asc(researchsession.FieldCreatedAt)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query queued session: %w", err)
	}

	now := time.Now()
	count, err := tx.ResearchSession.Update().
		Where(
			researchsession.IDEQ(candidate.ID),
			researchsession.StatusEQ(researchsession.StatusQueued),
		).
		SetStatus(researchsession.StatusRunning).
		SetStartedAt(now).
		SetPodID(podID).
		SetLastInteractionAt(now).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim session: %w", err)
	}
	if count == 0 {
		// Lost the race to another worker.
		return nil, nil
	}

	claimed, err := tx.ResearchSession.Get(claimCtx, candidate.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch claimed session: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

// Heartbeat stamps last_interaction_at on an active session and reports
// whether cancellation has been requested since the last beat.
func (s *SessionService) Heartbeat(ctx context.Context, sessionID string) (cancelRequested bool, err error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	found, err := s.client.ResearchSession.Query().
		Where(researchsession.IDEQ(sessionID)).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to get session: %w", err)
	}

	err = s.client.ResearchSession.UpdateOneID(sessionID).
		SetLastInteractionAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to heartbeat session: %w", err)
	}
	return found.Status == researchsession.StatusCancelling, nil
}

// MarkStep records the last completed pipeline node on the session row so
// resume and the API can see run position without opening checkpoints.
func (s *SessionService) MarkStep(ctx context.Context, sessionID, step string, stepIndex int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.ResearchSession.UpdateOneID(sessionID).
		SetCurrentStep(step).
		SetStepIndex(stepIndex).
		SetLastInteractionAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark step: %w", err)
	}
	return nil
}

// Completion carries the terminal outcome of a run.
type Completion struct {
	Status         researchsession.Status
	ErrorMessage   string
	Warning        string
	TotalCostUSD   float64
	LLMCalls       int
	ReportPath     string
	ReportMetadata map[string]any
}

// CompleteSession writes the terminal status and run totals.
func (s *SessionService) CompleteSession(ctx context.Context, sessionID string, outcome Completion) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.client.ResearchSession.UpdateOneID(sessionID).
		SetStatus(outcome.Status).
		SetCompletedAt(time.Now()).
		SetTotalCostUsd(outcome.TotalCostUSD).
		SetLlmCalls(outcome.LLMCalls)

	if outcome.ErrorMessage != "" {
		update.SetErrorMessage(outcome.ErrorMessage)
	}
	if outcome.Warning != "" {
		update.SetWarning(outcome.Warning)
	}
	if outcome.ReportPath != "" {
		update.SetReportPath(outcome.ReportPath)
	}
	if outcome.ReportMetadata != nil {
		update.SetReportMetadata(outcome.ReportMetadata)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete session: %w", err)
	}
	slog.Info("Session completed",
		"session_id", sessionID, "status", outcome.Status,
		"cost_usd", outcome.TotalCostUSD, "llm_calls", outcome.LLMCalls)
	return nil
}

// RequeueOrphanedSessions resets RUNNING sessions whose heartbeat went stale
// back to QUEUED so a live worker resumes them from their checkpoint.
func (s *SessionService) RequeueOrphanedSessions(ctx context.Context, staleAfter time.Duration) (int, error) {
	threshold := time.Now().Add(-staleAfter)

	count, err := s.client.ResearchSession.Update().
		Where(
			researchsession.StatusEQ(researchsession.StatusRunning),
			researchsession.LastInteractionAtNotNil(),
			researchsession.LastInteractionAtLT(threshold),
		).
		SetStatus(researchsession.StatusQueued).
		ClearPodID().
		ClearStartedAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue orphaned sessions: %w", err)
	}
	if count > 0 {
		slog.Warn("Requeued orphaned sessions", "count", count, "stale_after", staleAfter)
	}
	return count, nil
}

// SoftDeleteOldSessions soft-deletes terminal sessions past the retention
// window and returns their IDs so the caller can purge event logs and
// checkpoint directories.
func (s *SessionService) SoftDeleteOldSessions(ctx context.Context, retentionDays int) ([]string, error) {
	if retentionDays <= 0 {
		return nil, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}
	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rows, err := s.client.ResearchSession.Query().
		Where(
			researchsession.CompletedAtLT(cutoff),
			researchsession.DeletedAtIsNil(),
		).
		All(deleteCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to find expired sessions: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	_, err = s.client.ResearchSession.Update().
		Where(researchsession.IDIn(ids...)).
		SetDeletedAt(time.Now()).
		Save(deleteCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to soft delete sessions: %w", err)
	}
	return ids, nil
}

// CountByStatus returns session counts for the health endpoint.
func (s *SessionService) CountByStatus(ctx context.Context, statuses ...researchsession.Status) (int, error) {
	count, err := s.client.ResearchSession.Query().
		Where(researchsession.StatusIn(statuses...)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}

// withPosition attaches the FIFO queue position for queued sessions: one
// plus the number of queued sessions created earlier.
func (s *SessionService) withPosition(ctx context.Context, row *ent.ResearchSession) (*models.SessionResponse, error) {
	resp := &models.SessionResponse{ResearchSession: row}
	if row.Status != researchsession.StatusQueued {
		return resp, nil
	}
	ahead, err := s.client.ResearchSession.Query().
		Where(
			researchsession.StatusEQ(researchsession.StatusQueued),
			researchsession.CreatedAtLT(row.CreatedAt),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute queue position: %w", err)
	}
	position := ahead + 1
	resp.QueuedPosition = &position
	return resp, nil
}
