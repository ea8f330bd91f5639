package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/checkpoint"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/compaction"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/costs"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/events"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/graph"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/llm"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/memory"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/quality"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/recovery"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/report"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/search"
)

// Search self-loop exit: enough accumulated results, or the retry budget
// for thin searches is spent.
const (
	searchResultsThreshold = 3
	searchRetryLimit       = 3
)

// ExecutorConfig carries the executor's collaborators. Budget, Degradation,
// Recovery, Checkpoints, Bus, Memory, Progress and Context may be nil; each nil
// disables the corresponding behavior.
type ExecutorConfig struct {
	LLM         Completer
	Search      search.Client
	Scraper     PageScraper
	Budget      *costs.BudgetTracker
	Degradation *costs.DegradationManager
	Recovery    *recovery.Orchestrator
	Checkpoints *checkpoint.Store
	Bus         *events.Bus
	Memory      *memory.Memory
	Progress    ProgressSink
	ReportDir   string

	// Context tracks the run's LLM transcript and masks old turns when the
	// estimated context grows past its budget. Nil disables tracking.
	Context *compaction.Manager
}

// RunResult is the outcome of one completed pipeline run.
type RunResult struct {
	State      ResearchState
	ReportPath string
	Quality    *quality.Result
}

// Executor drives one research session through the graph: nodes are wrapped
// with the recovery orchestrator, merged state is checkpointed after every
// step, and lifecycle events stream to the bus.
type Executor struct {
	cfg ExecutorConfig
}

func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{cfg: cfg}
}

// Run executes a fresh research session for the query.
func (e *Executor) Run(ctx context.Context, sessionID, query string) (RunResult, error) {
	return e.run(ctx, sessionID, NewState(query), "", 0)
}

// Totals reports the accumulated cost and LLM call count for this
// executor's budget tracker. Zero values when no tracker is configured.
func (e *Executor) Totals() (costUSD float64, llmCalls int) {
	if e.cfg.Budget == nil {
		return 0, 0
	}
	return e.cfg.Budget.TotalCostUSD(), e.cfg.Budget.TotalCalls()
}

// Resume continues a session from its latest usable checkpoint. Corrupt
// snapshots are quarantined by the store. A session with no usable
// checkpoint returns checkpoint.ErrNotFound; the caller restarts it with
// Run and the durable query.
func (e *Executor) Resume(ctx context.Context, sessionID string) (RunResult, error) {
	if e.cfg.Checkpoints == nil {
		return RunResult{}, fmt.Errorf("resuming session %s: %w", sessionID, checkpoint.ErrNotFound)
	}
	snap, err := e.cfg.Checkpoints.Recover(sessionID)
	if err != nil {
		return RunResult{}, fmt.Errorf("recovering session %s: %w", sessionID, err)
	}
	if snap == nil {
		return RunResult{}, fmt.Errorf("resuming session %s: %w", sessionID, checkpoint.ErrNotFound)
	}
	state, err := LoadState(snap.State)
	if err != nil {
		return RunResult{}, fmt.Errorf("recovering session %s: %w", sessionID, err)
	}

	slog.Info("Resuming session from checkpoint",
		"session_id", sessionID, "step", snap.Meta.StepName,
		"step_index", snap.Meta.StepIndex, "checkpoint_id", snap.Meta.CheckpointID)
	return e.run(ctx, sessionID, state, snap.Meta.StepName, snap.Meta.StepIndex+1)
}

func (e *Executor) run(ctx context.Context, sessionID string, state ResearchState, fromStep string, fromIndex int) (RunResult, error) {
	completer := e.cfg.LLM
	if e.cfg.Context != nil {
		completer = &transcribedCompleter{inner: completer, context: e.cfg.Context}
	}
	if e.cfg.Bus != nil {
		completer = &eventedCompleter{inner: completer, bus: e.cfg.Bus, budget: e.cfg.Budget, sessionID: sessionID}
	}

	planNode := &PlanNode{LLM: completer, MemoryContext: e.recallContext(ctx, state.Query)}
	nodes := []graph.Node[ResearchState, Delta]{
		planNode,
		&SearchNode{LLM: completer, Search: e.cfg.Search, Degradation: e.cfg.Degradation},
		&ScrapeNode{Scraper: e.cfg.Scraper, Degradation: e.cfg.Degradation},
		&SummarizeNode{LLM: completer, Progress: e.cfg.Progress},
		&SynthesizeNode{LLM: completer},
	}

	eng, err := graph.New(graph.Config[ResearchState, Delta]{
		Start:   NodePlan,
		Reducer: MergeDelta,
		Hooks:   e.hooks(sessionID),
	})
	if err != nil {
		return RunResult{}, err
	}
	for _, node := range nodes {
		if err := eng.Add(e.wrap(sessionID, node)); err != nil {
			return RunResult{}, err
		}
	}

	eng.Connect(NodePlan, NodeSearch, nil)
	eng.Connect(NodeSearch, NodeScrape, func(s ResearchState) bool {
		return len(s.SearchResults) >= searchResultsThreshold || s.SearchRetryCount >= searchRetryLimit
	})
	eng.Connect(NodeSearch, NodeSearch, nil)
	eng.Connect(NodeScrape, NodeSummarize, func(s ResearchState) bool {
		return len(s.ScrapedPages) > 0
	})
	eng.Connect(NodeScrape, graph.Terminate, nil)
	eng.Connect(NodeSummarize, NodeSearch, func(s ResearchState) bool {
		return s.CurrentSubtopicIndex < len(s.Subtopics)
	})
	eng.Connect(NodeSummarize, NodeSynthesize, nil)
	eng.Connect(NodeSynthesize, graph.Terminate, nil)

	final, runErr := eng.Run(ctx, state, fromStep, fromIndex)
	if runErr != nil {
		return RunResult{State: final}, runErr
	}
	return e.finish(ctx, sessionID, final)
}

// wrap runs the node under the recovery policy. Exhausted and skipped
// outcomes degrade into per-node skip deltas so the run continues; terminal
// errors propagate to the engine.
func (e *Executor) wrap(sessionID string, node graph.Node[ResearchState, Delta]) graph.Node[ResearchState, Delta] {
	name := node.Name()
	return graph.NodeFunc[ResearchState, Delta]{ID: name, Fn: func(ctx context.Context, state ResearchState) (Delta, error) {
		if e.cfg.Recovery == nil {
			return node.Run(ctx, state)
		}

		var delta Delta
		outcome := e.cfg.Recovery.Run(ctx, name, func(ctx context.Context) error {
			d, err := node.Run(ctx, state)
			if err != nil {
				return err
			}
			delta = d
			return nil
		})

		switch outcome.Status {
		case recovery.StatusSucceeded, recovery.StatusRecovered:
			return delta, nil
		case recovery.StatusTerminal:
			e.publishStepError(sessionID, name, outcome.Err.Error(), false)
			return Delta{}, outcome.Err
		default: // exhausted or circuit open
			e.publishStepError(sessionID, name, outcome.SkipMessage, false)
			if e.cfg.Progress != nil {
				if err := e.cfg.Progress.AppendErrorNote(name, outcome.SkipMessage); err != nil {
					slog.Warn("Failed to append progress error note", "error", err)
				}
			}
			return e.skipDelta(name, state, outcome.SkipMessage), nil
		}
	}}
}

// skipDelta keeps the pipeline moving past a dead-lettered node: the plan
// falls back to a single subtopic, search advances its retry counter, and
// summarize advances the subtopic index so the loop cannot stall.
func (e *Executor) skipDelta(node string, state ResearchState, message string) Delta {
	entry := ErrorEntry{Step: node, Message: message, Recoverable: node != NodeSynthesize}
	delta := Delta{Step: node, StepIndex: stepIndices[node], ErrorLog: []ErrorEntry{entry}}

	switch node {
	case NodePlan:
		fallback := fallbackPlanDelta(state.Query)
		fallback.ErrorLog = []ErrorEntry{entry}
		return fallback
	case NodeSearch:
		delta.SearchRetryCount = intPtr(state.SearchRetryCount + 1)
	case NodeSummarize:
		delta.CurrentSubtopicIndex = intPtr(state.CurrentSubtopicIndex + 1)
	}
	return delta
}

func (e *Executor) hooks(sessionID string) graph.Hooks[ResearchState] {
	return graph.Hooks[ResearchState]{
		Gate: func(state ResearchState, next string) error {
			if e.cfg.Budget == nil {
				return nil
			}
			if err := e.cfg.Budget.CheckBudget(0); err != nil {
				return fmt.Errorf("dispatching node %q: %w", next, err)
			}
			return nil
		},
		OnStepStart: func(step string, stepIndex int) {
			if e.cfg.Bus != nil {
				e.cfg.Bus.PublishStepStart(sessionID, events.StepStartPayload{
					Step: step, StepIndex: stepIndex,
				})
			}
		},
		Sink: func(ctx context.Context, state ResearchState, stepIndex int, step string) error {
			if e.cfg.Checkpoints == nil {
				return nil
			}
			_, err := e.cfg.Checkpoints.Save(sessionID, state, stepIndex, step)
			return err
		},
		OnStepEnd: func(state ResearchState, step string, stepIndex int, elapsed time.Duration) {
			if e.cfg.Bus == nil {
				return
			}
			var cost float64
			if e.cfg.Budget != nil {
				cost = e.cfg.Budget.TotalCostUSD()
			}
			e.cfg.Bus.PublishStepEnd(sessionID, events.StepEndPayload{
				Step: step, StepIndex: stepIndex,
				DurationMs: elapsed.Milliseconds(), CostUSD: cost,
			})
		},
	}
}

// finish runs the post-pipeline stage: report metadata, quality check,
// report file, memory write-back.
func (e *Executor) finish(ctx context.Context, sessionID string, state ResearchState) (RunResult, error) {
	result := RunResult{}

	if state.FinalReport == "" && len(state.ScrapedPages) == 0 {
		warning := "No pages could be scraped; terminating early"
		slog.Warn("Run ended without scrapeable content", "session_id", sessionID)
		state.ErrorLog = append(state.ErrorLog, ErrorEntry{Step: NodeScrape, Message: warning, Recoverable: false})
		if e.cfg.Bus != nil {
			e.cfg.Bus.PublishSessionWarning(sessionID, events.SessionWarningPayload{Warning: warning})
		}
		if e.cfg.Progress != nil {
			if err := e.cfg.Progress.AppendStatus(warning); err != nil {
				slog.Warn("Failed to append progress status", "error", err)
			}
		}
	}

	metadata := map[string]any{}
	if e.cfg.Recovery != nil {
		metadata["recovery_metrics"] = e.cfg.Recovery.Metrics()
		if dlq := e.cfg.Recovery.DeadLetters(); len(dlq) > 0 {
			metadata["dead_letter_queue"] = dlq
		}
	}
	if e.cfg.Budget != nil {
		metadata["budget"] = e.cfg.Budget.Status()
	}
	if e.cfg.Degradation != nil {
		metadata["degradation_tier"] = string(e.cfg.Degradation.Tier())
	}
	if e.cfg.Context != nil {
		metadata["context"] = e.cfg.Context.Report()
	}

	if state.FinalReport != "" {
		questions := make([]string, len(state.Subtopics))
		for i, s := range state.Subtopics {
			questions[i] = s.Question
		}
		check := quality.CheckReport(state.FinalReport, questions)
		result.Quality = &check
		metadata["quality"] = check
		if e.cfg.Bus != nil {
			e.cfg.Bus.PublishQualityCheck(sessionID, events.QualityCheckPayload{
				Passed:        check.Passed,
				WordCount:     check.WordCount,
				CitationCount: check.CitationCount,
				Coverage:      check.SubtopicCoverage,
			})
		}

		if e.cfg.ReportDir != "" {
			meta := report.Metadata{SessionID: sessionID, SourceCount: len(state.Sources)}
			if e.cfg.Budget != nil {
				meta.TotalCost = e.cfg.Budget.TotalCostUSD()
				meta.LLMCalls = e.cfg.Budget.TotalCalls()
			}
			path, err := report.Write(state.FinalReport, state.Query, e.cfg.ReportDir, meta)
			if err != nil {
				slog.Error("Failed to write report file", "session_id", sessionID, "error", err)
				state.ErrorLog = append(state.ErrorLog, ErrorEntry{
					Step: NodeSynthesize, Message: fmt.Sprintf("Writing report failed: %v", err), Recoverable: true,
				})
			} else {
				result.ReportPath = path
				metadata["report_path"] = path
			}
		}

		e.storeFindings(ctx, sessionID, state)
	}

	state = MergeDelta(state, Delta{ReportMetadata: metadata})
	result.State = state
	return result, nil
}

// recallContext formats cross-session memory for the planner prompt.
func (e *Executor) recallContext(ctx context.Context, query string) string {
	if e.cfg.Memory == nil {
		return ""
	}
	entries, err := e.cfg.Memory.Recall(ctx, query)
	if err != nil {
		slog.Warn("Memory recall failed", "error", err)
		return ""
	}
	return e.cfg.Memory.FormatContext(entries)
}

// storeFindings writes this session's key findings into cross-session
// memory. Failures log and never affect the run outcome.
func (e *Executor) storeFindings(ctx context.Context, sessionID string, state ResearchState) {
	if e.cfg.Memory == nil {
		return
	}
	var findings []string
	for _, s := range state.Summaries {
		findings = append(findings, s.KeyFindings...)
	}
	if len(findings) == 0 {
		return
	}
	stored, err := e.cfg.Memory.Store(ctx, findings, state.Query, map[string]string{"session_id": sessionID})
	if err != nil {
		slog.Warn("Failed to store findings in memory", "session_id", sessionID, "error", err)
		return
	}
	slog.Info("Findings stored in cross-session memory",
		"session_id", sessionID, "stored", stored, "candidates", len(findings))
}

func (e *Executor) publishStepError(sessionID, step, message string, recoverable bool) {
	if e.cfg.Bus == nil {
		return
	}
	e.cfg.Bus.PublishStepError(sessionID, events.StepErrorPayload{
		Step: step, Error: message, Recoverable: recoverable,
	})
}

// transcribedCompleter appends each exchange to the context manager, which
// masks old turns once the estimated token total crosses its budget.
type transcribedCompleter struct {
	inner   Completer
	context *compaction.Manager
}

func (c *transcribedCompleter) Generate(ctx context.Context, node string, req *llm.Request) (*llm.Response, error) {
	resp, err := c.inner.Generate(ctx, node, req)
	if err != nil {
		return nil, err
	}

	prompt := llm.Message{Role: llm.RoleUser}
	if n := len(req.Messages); n > 0 {
		prompt = req.Messages[n-1]
	}
	c.context.AddTurn(compaction.Turn{
		Role: prompt.Role, Content: prompt.Content,
		TokenCount: resp.Usage.InputTokens, StepName: node,
	})
	c.context.AddTurn(compaction.Turn{
		Role: llm.RoleAssistant, Content: resp.Content,
		TokenCount: resp.Usage.OutputTokens, StepName: node,
	})
	return resp, nil
}

// eventedCompleter publishes an llm_call event per completion and a
// budget_warning event on the warn-threshold crossing.
type eventedCompleter struct {
	inner     Completer
	bus       *events.Bus
	budget    *costs.BudgetTracker
	sessionID string
}

func (c *eventedCompleter) Generate(ctx context.Context, node string, req *llm.Request) (*llm.Response, error) {
	resp, err := c.inner.Generate(ctx, node, req)
	if err != nil {
		return nil, err
	}

	c.bus.PublishLLMCall(c.sessionID, events.LLMCallPayload{
		Step:         node,
		Provider:     resp.Provider,
		Model:        resp.Model,
		InputTokens:  int64(resp.Usage.InputTokens),
		OutputTokens: int64(resp.Usage.OutputTokens),
		CostUSD:      resp.CostUSD,
		CacheHit:     resp.FromCache,
	})

	if resp.BudgetWarning && c.budget != nil {
		status := c.budget.Status()
		c.bus.PublishBudgetWarning(c.sessionID, events.BudgetWarningPayload{
			SpentUSD:    status.TotalCostUSD,
			BudgetUSD:   status.TotalCostUSD + status.BudgetRemainingUSD,
			PercentUsed: status.BudgetUsedPercent,
			CallsUsed:   status.TotalLLMCalls,
			Level:       string(status.CurrentTier),
		})
	}
	return resp, nil
}
