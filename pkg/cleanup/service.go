// Package cleanup provides data retention for finished research sessions.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/checkpoint"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/events"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/services"
)

// Service periodically enforces retention: terminal sessions past the
// retention window are soft-deleted and their on-disk artifacts (event
// log, checkpoint directory) removed.
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config         *config.RetentionConfig
	sessionService *services.SessionService
	eventLog       *events.Log
	checkpoints    *checkpoint.Store

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service. eventLog and checkpoints may
// be nil; the corresponding artifact purge is then skipped.
func NewService(
	cfg *config.RetentionConfig,
	sessionService *services.SessionService,
	eventLog *events.Log,
	checkpoints *checkpoint.Store,
) *Service {
	return &Service{
		config:         cfg,
		sessionService: sessionService,
		eventLog:       eventLog,
		checkpoints:    checkpoints,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"session_retention_days", s.config.SessionRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single retention pass.
func (s *Service) RunOnce(ctx context.Context) {
	ids, err := s.sessionService.SoftDeleteOldSessions(ctx, s.config.SessionRetentionDays)
	if err != nil {
		slog.Error("Retention: soft-delete sessions failed", "error", err)
		return
	}
	if len(ids) == 0 {
		return
	}

	for _, id := range ids {
		s.purgeArtifacts(id)
	}
	slog.Info("Retention: soft-deleted old sessions", "count", len(ids))
}

// purgeArtifacts removes a session's event log and checkpoints. The DB row
// is already soft-deleted, so a partial failure here leaves only stray
// files that the next pass cannot find; log and move on.
func (s *Service) purgeArtifacts(sessionID string) {
	if s.eventLog != nil {
		if err := s.eventLog.Remove(sessionID); err != nil {
			slog.Error("Retention: event log removal failed",
				"session_id", sessionID, "error", err)
		}
	}
	if s.checkpoints != nil {
		if err := s.checkpoints.Remove(sessionID); err != nil {
			slog.Error("Retention: checkpoint removal failed",
				"session_id", sessionID, "error", err)
		}
	}
}
