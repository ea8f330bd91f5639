package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmhernandez2525/research-agent-sub001/ent"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/api"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/cleanup"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/database"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/events"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/masking"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/queue"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/report"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/services"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/session"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the research agent server: HTTP API, worker pool, retention",
		RunE:  runServe,
	}
	cmd.Flags().String("port", getEnv("HTTP_PORT", "8080"), "HTTP listen port")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	configDir, _ := cmd.Flags().GetString("config-dir")
	httpPort, _ := cmd.Flags().GetString("port")
	loadDotEnv(configDir)
	podID := resolvePodID()
	ctx := cmd.Context()

	slog.Info("Starting research agent",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", configDir)

	// 1. Configuration
	cfg, err := config.Initialize(ctx, configDir)
	if err != nil {
		return err
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		return err
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		return err
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Event infrastructure: JSONL log + masked bus, rings rebuilt from
	// disk so SSE catch-up survives a restart.
	eventLog, err := events.NewLog(getEnv("EVENTS_DIR", "./data/events"))
	if err != nil {
		return err
	}
	bus := events.NewBus(eventLog, masking.NewService(cfg.Masking))
	defer bus.Close()
	if err := bus.ReplayAll(); err != nil {
		slog.Warn("Event log replay incomplete", "error", err)
	}

	// 4. Session registry and service
	registry := session.NewRegistry()
	sessionService := services.NewSessionService(dbClient.Client, registry, services.AdmissionLimits{
		MaxConcurrentSessions: cfg.Settings.API.MaxConcurrentSessions,
		QueueLimit:            cfg.Settings.API.QueueLimit,
	})

	// 5. Pipeline engine and per-session runner factory
	eng, err := newEngine(cfg, bus)
	if err != nil {
		return err
	}
	factory := func(row *ent.ResearchSession) queue.SessionRunner {
		go mirrorProgress(bus.SubscribeLive(row.ID), row.ID, registry, sessionService)
		return eng.newExecutor(row.BudgetUsd, progressWriter(cfg, row))
	}

	// 6. Worker pool
	pool := queue.NewWorkerPool(podID, sessionService, registry, bus, factory, cfg.Queue)
	if err := pool.Start(ctx); err != nil {
		return err
	}

	// 7. Retention loop
	retention := cleanup.NewService(cfg.Retention, sessionService, eventLog, eng.checkpoints)
	retention.Start(ctx)

	// 8. HTTP server
	keys, err := api.NewKeyStore(cfg.Settings.API.KeysFile)
	if err != nil {
		return err
	}
	apiServer := api.NewServer(sessionService, registry, bus, dbClient, pool, keys, api.Config{
		RateLimitPerMinute: cfg.Settings.API.RateLimitPerMinute,
		AllowedWSOrigins:   cfg.Settings.API.AllowedWSOrigins,
	})
	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           apiServer.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Research agent started",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop admitting HTTP work, drain the pool,
	// stop the retention loop.
	httpShutdownCtx, httpCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	pool.Stop()
	retention.Stop()

	slog.Info("Shutdown complete")
	return nil
}

// progressWriter opens the progressive report for a session; a failure
// only disables the partial report, never the run.
func progressWriter(cfg *config.Config, row *ent.ResearchSession) *report.ProgressWriter {
	path := filepath.Join(cfg.Settings.Report.OutputDir,
		report.SanitizeFilename(row.Query)+"_"+row.RunID+"_progress.md")
	w, err := report.NewProgressWriter(path, row.Query)
	if err != nil {
		slog.Warn("Progressive report disabled for session",
			"session_id", row.ID, "error", err)
		return nil
	}
	return w
}

// mirrorProgress consumes one session's live event feed, keeping the
// registry's progress mirror and the durable current_step column in sync
// with the pipeline. The subscription closes when the session's events are
// dropped after completion.
func mirrorProgress(sub *events.Subscription, sessionID string, registry *session.Registry, svc *services.SessionService) {
	defer sub.Close()

	var p session.Progress
	for evt := range sub.C {
		switch evt.Type {
		case events.EventTypeStepStart:
			p.Step, _ = evt.Payload["step"].(string)
			if idx, ok := evt.Payload["step_index"].(float64); ok {
				p.StepIndex = int(idx)
			}
			if err := svc.MarkStep(context.Background(), sessionID, p.Step, p.StepIndex); err != nil {
				slog.Warn("Failed to persist session step",
					"session_id", sessionID, "step", p.Step, "error", err)
			}
		case events.EventTypeStepEnd:
			if cost, ok := evt.Payload["cost_usd"].(float64); ok {
				p.CostUSD = cost
			}
		case events.EventTypeLLMCall:
			p.LLMCalls++
		case events.EventTypeSessionStatus:
			status, _ := evt.Payload["status"].(string)
			switch status {
			case "completed", "failed", "cancelled", "timed_out":
				return
			}
		default:
			continue
		}
		if entry, ok := registry.Get(sessionID); ok {
			entry.SetProgress(p)
		}
	}
}
