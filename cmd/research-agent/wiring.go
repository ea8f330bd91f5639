package main

import (
	"fmt"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/agent"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/checkpoint"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/compaction"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/costs"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/events"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/llm"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/memory"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/recovery"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/scraping"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/search"
)

// engine bundles the process-wide pipeline collaborators. Per-session
// pieces (budget tracker, router, recovery orchestrator) are built fresh
// for every run by newExecutor; everything here is shared.
type engine struct {
	cfg         *config.Config
	bus         *events.Bus
	checkpoints *checkpoint.Store
	memory      *memory.Memory
	search      search.Client
	scraper     *scraping.Scraper
	rotator     *llm.KeyRotator
	cache       *llm.DiskCache
}

// newEngine builds the shared pipeline infrastructure. bus may carry a
// JSONL log (serve) or not (run, mcp).
func newEngine(cfg *config.Config, bus *events.Bus) (*engine, error) {
	e := &engine{
		cfg:     cfg,
		bus:     bus,
		search:  search.NewTavilyClient(cfg.Settings.Search),
		scraper: scraping.NewScraper(cfg.Settings.Scraping),
		rotator: llm.NewKeyRotator(cfg.Settings.Rotation.Cooldown),
		cache:   llm.NewDiskCache(cfg.Settings.Cache),
	}

	if cfg.Settings.Checkpoint.Enabled {
		e.checkpoints = checkpoint.NewStore(cfg.Settings.Checkpoint)
	}

	if cfg.Settings.Memory.Enabled {
		store, err := memory.NewSQLiteStore(
			cfg.Settings.Memory.DatabasePath,
			cfg.Settings.Memory.Collection,
			memory.NewHashingEmbedder(0),
		)
		if err != nil {
			return nil, fmt.Errorf("opening memory store: %w", err)
		}
		e.memory = memory.New(store, cfg.Settings.Memory)
	}

	return e, nil
}

// newExecutor builds a pipeline executor for one session. budgetOverride,
// when non-nil, replaces the configured per-run cost ceiling; progress may
// be nil to disable the progressive report.
func (e *engine) newExecutor(budgetOverride *float64, progress agent.ProgressSink) *agent.Executor {
	budgetCfg := e.cfg.Settings.Budget
	if budgetOverride != nil {
		budgetCfg.MaxCostPerRun = *budgetOverride
	}
	budget := costs.NewBudgetTracker(budgetCfg)
	degradation := costs.NewDegradationManager(budget)

	router := llm.NewRouter(llm.RouterConfig{
		Tiers:       e.cfg.Settings.Tiers,
		Budget:      budget,
		Degradation: degradation,
		Rotator:     e.rotator,
		Cache:       e.cache,
		PromptCache: llm.NewPromptCacheTracker(),
		Estimates:   llm.NewEstimateTracker(),
	})

	return agent.NewExecutor(agent.ExecutorConfig{
		LLM:         router,
		Search:      e.search,
		Scraper:     e.scraper,
		Budget:      budget,
		Degradation: degradation,
		Recovery:    recovery.NewOrchestrator(e.cfg.Settings.Recovery),
		Checkpoints: e.checkpoints,
		Bus:         e.bus,
		Memory:      e.memory,
		Progress:    progress,
		ReportDir:   e.cfg.Settings.Report.OutputDir,
		Context:     compaction.NewManager(e.cfg.Settings.Compaction),
	})
}
