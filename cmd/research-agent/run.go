package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/events"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/masking"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run \"research query\"",
		Short: "Run one research session in-process and print the report path",
		Args:  cobra.ExactArgs(1),
		RunE:  runOnce,
	}
	cmd.Flags().Float64("budget", 0, "Budget ceiling in USD for this run (0 uses the configured default)")
	return cmd
}

func runOnce(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(args[0])
	if query == "" {
		return fmt.Errorf("query must not be empty")
	}
	configDir, _ := cmd.Flags().GetString("config-dir")
	budgetUSD, _ := cmd.Flags().GetFloat64("budget")
	loadDotEnv(configDir)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cfg, err := config.Initialize(ctx, configDir)
	if err != nil {
		return err
	}

	// No JSONL log for one-shot runs; events only feed the console.
	bus := events.NewBus(nil, masking.NewService(cfg.Masking))
	eng, err := newEngine(cfg, bus)
	if err != nil {
		return err
	}

	sub := bus.SubscribeGlobal()
	printerDone := make(chan struct{})
	go func() {
		defer close(printerDone)
		printEvents(sub)
	}()

	var budget *float64
	if budgetUSD > 0 {
		budget = &budgetUSD
	}
	executor := eng.newExecutor(budget, nil)
	sessionID := "cli-" + uuid.NewString()

	color.New(color.Bold).Printf("Researching: %s\n\n", query)
	result, runErr := executor.Run(ctx, sessionID, query)

	sub.Close()
	<-printerDone

	cost, calls := executor.Totals()
	fmt.Println()
	if runErr != nil {
		if ctx.Err() != nil {
			color.Yellow("Run interrupted (%.4f USD spent, %d LLM calls)", cost, calls)
			return nil
		}
		return fmt.Errorf("research run failed after %.4f USD and %d LLM calls: %w", cost, calls, runErr)
	}

	color.Green("Report written: %s", result.ReportPath)
	fmt.Printf("Cost: $%.4f across %d LLM calls, %d sources\n",
		cost, calls, len(result.State.Sources))
	if result.Quality != nil && !result.Quality.Passed {
		color.Yellow("Quality check flagged the report; see the metadata sidecar for details")
	}
	return nil
}

// printEvents renders the live event feed for a terminal.
func printEvents(sub *events.Subscription) {
	stepColor := color.New(color.FgCyan)
	doneColor := color.New(color.FgGreen)
	warnColor := color.New(color.FgYellow)
	errColor := color.New(color.FgRed)

	for evt := range sub.C {
		switch evt.Type {
		case events.EventTypeStepStart:
			step, _ := evt.Payload["step"].(string)
			stepColor.Printf("▸ %s\n", step)
		case events.EventTypeStepEnd:
			step, _ := evt.Payload["step"].(string)
			ms, _ := evt.Payload["duration_ms"].(float64)
			cost, _ := evt.Payload["cost_usd"].(float64)
			doneColor.Printf("✓ %s (%.1fs, $%.4f total)\n", step, ms/1000, cost)
		case events.EventTypeStepError:
			step, _ := evt.Payload["step"].(string)
			msg, _ := evt.Payload["error"].(string)
			if recoverable, _ := evt.Payload["recoverable"].(bool); recoverable {
				warnColor.Printf("  retrying %s: %s\n", step, msg)
			} else {
				errColor.Printf("✗ %s: %s\n", step, msg)
			}
		case events.EventTypeBudgetWarning:
			pct, _ := evt.Payload["percent_used"].(float64)
			warnColor.Printf("  budget at %.0f%%\n", pct)
		case events.EventTypeSessionWarning:
			msg, _ := evt.Payload["warning"].(string)
			warnColor.Printf("  %s\n", msg)
		}
	}
	_ = os.Stdout.Sync()
}
