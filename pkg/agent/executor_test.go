package agent

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/checkpoint"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/compaction"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/events"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/recovery"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/search"
)

const planTwoSubtopics = `{
	"subtopics": [
		{"id": 1, "question": "Which runtimes exist?", "rationale": "survey"},
		{"id": 2, "question": "What about serverless?", "rationale": "adoption"}
	],
	"reasoning": "two angles"
}`

func fullPipelineCompleter() *fakeCompleter {
	return newFakeCompleter().
		reply(NodePlan, planTwoSubtopics).
		reply(NodeSearch,
			`{"original": "q1", "variations": ["runtimes survey"]}`,
			`{"original": "q2", "variations": ["serverless wasm"]}`).
		reply(NodeSummarize,
			`{"summary": "Wasmtime and WAMR dominate.", "key_findings": ["Wasmtime implements WASI"]}`,
			`{"summary": "Spin builds on Wasmtime.", "key_findings": ["Spin targets serverless"]}`).
		reply(NodeSynthesize, reportMarkdown)
}

func fullPipelineSearch() *fakeSearchClient {
	return &fakeSearchClient{byQuery: map[string][]search.Item{
		"runtimes survey": {
			{URL: "https://example.org/wasmtime", Title: "Wasmtime", Score: 0.9},
			{URL: "https://example.org/wamr", Title: "WAMR", Score: 0.8},
			{URL: "https://example.org/wasmer", Title: "Wasmer", Score: 0.7},
		},
		"serverless wasm": {
			{URL: "https://example.org/spin", Title: "Spin", Score: 0.9},
			{URL: "https://example.org/faasm", Title: "Faasm", Score: 0.8},
			{URL: "https://example.org/wasmcloud", Title: "wasmCloud", Score: 0.7},
		},
	}}
}

func TestExecutorFullRun(t *testing.T) {
	llm := fullPipelineCompleter()
	progress := &fakeProgress{}
	bus := events.NewBus(nil, nil)
	store := checkpoint.NewStore(config.CheckpointConfig{Directory: t.TempDir(), MaxCheckpoints: 10})
	reportDir := t.TempDir()

	exec := NewExecutor(ExecutorConfig{
		LLM:         llm,
		Search:      fullPipelineSearch(),
		Scraper:     &fakeScraper{fn: pageFromTarget},
		Checkpoints: store,
		Bus:         bus,
		Progress:    progress,
		ReportDir:   reportDir,
	})

	result, err := exec.Run(context.Background(), "sess-full", "webassembly outside the browser")
	require.NoError(t, err)
	state := result.State

	assert.Equal(t, reportMarkdown, state.FinalReport)
	assert.Len(t, state.Subtopics, 2)
	assert.Equal(t, 2, state.CurrentSubtopicIndex)
	assert.Len(t, state.Summaries, 2)
	assert.Len(t, state.ScrapedPages, 6)
	assert.Len(t, state.SearchResults, 6)
	assert.Empty(t, state.ErrorLog)

	assert.Equal(t, 1, llm.callCount(NodePlan))
	assert.Equal(t, 2, llm.callCount(NodeSearch))
	assert.Equal(t, 2, llm.callCount(NodeSummarize))
	assert.Equal(t, 1, llm.callCount(NodeSynthesize))

	require.Len(t, progress.sections, 2)
	assert.Equal(t, "Which runtimes exist?", progress.sections[0].Title)
	assert.Equal(t, "What about serverless?", progress.sections[1].Title)

	require.NotNil(t, result.Quality)
	assert.Contains(t, state.ReportMetadata, "quality")

	require.NotEmpty(t, result.ReportPath)
	data, err := os.ReadFile(result.ReportPath)
	require.NoError(t, err)
	assert.Equal(t, reportMarkdown, string(data))

	var stepStarts, llmCalls int
	for _, evt := range bus.History("sess-full", 0) {
		switch evt.Type {
		case events.EventTypeStepStart:
			stepStarts++
		case events.EventTypeLLMCall:
			llmCalls++
		}
	}
	assert.Equal(t, 8, stepStarts, "plan, 2x(search, scrape, summarize), synthesize")
	assert.Equal(t, 6, llmCalls)
}

func TestExecutorRecordsContextTranscript(t *testing.T) {
	ctxMgr := compaction.NewManager(config.CompactionConfig{})

	exec := NewExecutor(ExecutorConfig{
		LLM:       fullPipelineCompleter(),
		Search:    fullPipelineSearch(),
		Scraper:   &fakeScraper{fn: pageFromTarget},
		ReportDir: t.TempDir(),
		Context:   ctxMgr,
	})

	result, err := exec.Run(context.Background(), "sess-transcript", "webassembly outside the browser")
	require.NoError(t, err)

	// Six completions, each a prompt/reply pair.
	assert.Equal(t, 12, ctxMgr.TurnCount())
	assert.Equal(t, 6*150, ctxMgr.TotalTokens())

	report, ok := result.State.ReportMetadata["context"].(compaction.Report)
	require.True(t, ok, "run metadata carries the context report")
	assert.Equal(t, 12, report.TurnCount)
	assert.Zero(t, report.MaskedCount)
}

func TestExecutorResumeFromFinalCheckpoint(t *testing.T) {
	llm := fullPipelineCompleter()
	store := checkpoint.NewStore(config.CheckpointConfig{Directory: t.TempDir(), MaxCheckpoints: 10})

	cfg := ExecutorConfig{
		LLM:         llm,
		Search:      fullPipelineSearch(),
		Scraper:     &fakeScraper{fn: pageFromTarget},
		Checkpoints: store,
	}
	exec := NewExecutor(cfg)

	_, err := exec.Run(context.Background(), "sess-resume", "webassembly outside the browser")
	require.NoError(t, err)

	snap, err := store.Recover("sess-resume")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, NodeSynthesize, snap.Meta.StepName)

	callsBefore := len(llm.calls)
	result, err := exec.Resume(context.Background(), "sess-resume")
	require.NoError(t, err)

	assert.Equal(t, reportMarkdown, result.State.FinalReport)
	assert.Len(t, llm.calls, callsBefore, "resuming past synthesis replays no nodes")
}

func TestExecutorResumeUnknownSession(t *testing.T) {
	store := checkpoint.NewStore(config.CheckpointConfig{Directory: t.TempDir(), MaxCheckpoints: 10})
	exec := NewExecutor(ExecutorConfig{
		LLM:         newFakeCompleter(),
		Search:      &fakeSearchClient{},
		Scraper:     &fakeScraper{},
		Checkpoints: store,
	})

	_, err := exec.Resume(context.Background(), "sess-missing")
	assert.ErrorIs(t, err, checkpoint.ErrNotFound)
}

func TestExecutorResumeWithoutStore(t *testing.T) {
	exec := NewExecutor(ExecutorConfig{LLM: newFakeCompleter(), Search: &fakeSearchClient{}, Scraper: &fakeScraper{}})
	_, err := exec.Resume(context.Background(), "sess-any")
	assert.ErrorIs(t, err, checkpoint.ErrNotFound)
}

func TestExecutorNoScrapeableContent(t *testing.T) {
	llm := newFakeCompleter().
		reply(NodePlan, `{"subtopics": [{"id": 1, "question": "q", "rationale": "r"}]}`).
		reply(NodeSearch, `{"original": "q", "variations": ["v"]}`)
	client := &fakeSearchClient{fallback: []search.Item{
		{URL: "https://example.org/a", Score: 0.9},
		{URL: "https://example.org/b", Score: 0.8},
		{URL: "https://example.org/c", Score: 0.7},
	}}
	progress := &fakeProgress{}
	bus := events.NewBus(nil, nil)

	exec := NewExecutor(ExecutorConfig{
		LLM:      llm,
		Search:   client,
		Scraper:  &fakeScraper{fn: nil}, // every fetch fails
		Bus:      bus,
		Progress: progress,
	})

	result, err := exec.Run(context.Background(), "sess-dry", "unreachable topic")
	require.NoError(t, err)
	state := result.State

	assert.Empty(t, state.FinalReport)
	assert.Empty(t, state.ScrapedPages)
	assert.Zero(t, llm.callCount(NodeSummarize))
	assert.Zero(t, llm.callCount(NodeSynthesize))

	require.NotEmpty(t, state.ErrorLog)
	last := state.ErrorLog[len(state.ErrorLog)-1]
	assert.Equal(t, "No pages could be scraped; terminating early", last.Message)
	assert.False(t, last.Recoverable)
	assert.Contains(t, progress.statuses, "No pages could be scraped; terminating early")

	var warned bool
	for _, evt := range bus.History("sess-dry", 0) {
		if evt.Type == events.EventTypeSessionWarning {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestExecutorExhaustedPlanFallsBack(t *testing.T) {
	llm := newFakeCompleter().fail(NodePlan, errors.New("provider down"))
	progress := &fakeProgress{}
	orch := recovery.NewOrchestrator(config.RecoveryConfig{
		MaxAttempts:      2,
		BackoffInitial:   time.Millisecond,
		BackoffCap:       2 * time.Millisecond,
		BreakerThreshold: 5,
		BreakerCooldown:  10 * time.Millisecond,
		DeadLetterLimit:  10,
	})

	exec := NewExecutor(ExecutorConfig{
		LLM:      llm,
		Search:   &fakeSearchClient{}, // nothing found, search loop runs dry
		Scraper:  &fakeScraper{},
		Recovery: orch,
		Progress: progress,
	})

	result, err := exec.Run(context.Background(), "sess-skip", "resilient query")
	require.NoError(t, err, "an exhausted planner degrades, it does not kill the run")
	state := result.State

	assert.Equal(t, 2, llm.callCount(NodePlan))
	require.Len(t, state.Subtopics, 1)
	assert.Equal(t, "resilient query", state.Subtopics[0].Question)

	var planEntries int
	for _, e := range state.ErrorLog {
		if e.Step == NodePlan {
			planEntries++
		}
	}
	assert.Equal(t, 1, planEntries)
	require.NotEmpty(t, progress.errors)
	assert.Contains(t, progress.errors[0], NodePlan)

	assert.NotEmpty(t, orch.DeadLetters())
	assert.Contains(t, state.ReportMetadata, "recovery_metrics")
	assert.Contains(t, state.ReportMetadata, "dead_letter_queue")
}
