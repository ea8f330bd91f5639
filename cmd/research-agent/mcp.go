package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/database"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/events"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/masking"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/mcp"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/services"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the research tools over MCP stdio",
		RunE:  runMCP,
	}
}

func runMCP(cmd *cobra.Command, _ []string) error {
	configDir, _ := cmd.Flags().GetString("config-dir")
	loadDotEnv(configDir)
	ctx := cmd.Context()

	cfg, err := config.Initialize(ctx, configDir)
	if err != nil {
		return err
	}

	// stdio carries the protocol; events stay in-process.
	bus := events.NewBus(nil, masking.NewService(cfg.Masking))
	eng, err := newEngine(cfg, bus)
	if err != nil {
		return err
	}

	mcpCfg := mcp.Config{
		NewRunner: func(budgetUSD float64) mcp.Runner {
			var budget *float64
			if budgetUSD > 0 {
				budget = &budgetUSD
			}
			return eng.newExecutor(budget, nil)
		},
		Memory:    eng.memory,
		ReportDir: cfg.Settings.Report.OutputDir,
	}

	// The status tool and sessions:// resources need Postgres; without it
	// the server still runs research, recall and evaluate.
	if dbConfig, err := database.LoadConfigFromEnv(); err == nil {
		if dbClient, err := database.NewClient(ctx, dbConfig); err == nil {
			defer dbClient.Close()
			mcpCfg.Sessions = services.NewSessionService(dbClient.Client, nil, services.AdmissionLimits{
				MaxConcurrentSessions: cfg.Settings.API.MaxConcurrentSessions,
				QueueLimit:            cfg.Settings.API.QueueLimit,
			})
		} else {
			slog.Warn("Database unavailable; session tools disabled", "error", err)
		}
	}

	server, err := mcp.NewServer(mcpCfg)
	if err != nil {
		return err
	}
	slog.Info("MCP server listening on stdio")
	return server.Run(ctx)
}
