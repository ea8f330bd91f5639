// Package e2e runs scenario tests across the whole stack: pipeline
// executor with scripted providers, durable queue against Postgres, and
// the HTTP surface. Provider mocks mirror the real router's contract,
// including budget accounting per completion.
package e2e

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/agent"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/checkpoint"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/costs"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/events"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/llm"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/scraping"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/search"
)

const mockCallCostUSD = 0.01

const planTwoSubtopics = `{
	"subtopics": [
		{"id": 1, "question": "Which runtimes exist?", "rationale": "survey"},
		{"id": 2, "question": "What about serverless?", "rationale": "adoption"}
	],
	"reasoning": "two angles"
}`

const planOneSubtopic = `{"subtopics": [{"id": 1, "question": "How is it used?", "rationale": "focus"}]}`

const reportMarkdown = "## Executive Summary\n\nWASM runs outside browsers [1].\n\n## Key Findings\n\n- Wasmtime implements WASI [1]\n- Spin targets serverless [2]\n\n## Sources\n\n1. Wasmtime\n2. Spin"

// mockCompleter answers per-node scripted replies the way the tier router
// would: each successful completion is recorded against the budget tracker
// before the response is returned. Replies for a node are consumed in
// order; the last reply repeats.
type mockCompleter struct {
	mu      sync.Mutex
	budget  *costs.BudgetTracker
	replies map[string][]string
	errs    map[string]error
	calls   []string
}

func newMockCompleter(budget *costs.BudgetTracker) *mockCompleter {
	return &mockCompleter{
		budget:  budget,
		replies: make(map[string][]string),
		errs:    make(map[string]error),
	}
}

func (m *mockCompleter) reply(node string, contents ...string) *mockCompleter {
	m.replies[node] = append(m.replies[node], contents...)
	return m
}

func (m *mockCompleter) fail(node string, err error) *mockCompleter {
	m.errs[node] = err
	return m
}

func (m *mockCompleter) Generate(ctx context.Context, node string, req *llm.Request) (*llm.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, node)

	if err := m.errs[node]; err != nil {
		return nil, err
	}
	queue := m.replies[node]
	if len(queue) == 0 {
		return nil, fmt.Errorf("no scripted reply for node %q", node)
	}
	content := queue[0]
	if len(queue) > 1 {
		m.replies[node] = queue[1:]
	}

	if m.budget != nil {
		// The charge lands even when it tips the run over its ceiling;
		// the dispatch gate rejects the next node, not this response.
		_, _ = m.budget.Record(costs.CallRecord{
			Model:        "mock-model",
			InputTokens:  100,
			OutputTokens: 50,
			CostUSD:      mockCallCostUSD,
			StepName:     node,
		})
	}
	return &llm.Response{
		Content:  content,
		Model:    "mock-model",
		Provider: "mock",
		Usage:    llm.Usage{InputTokens: 100, OutputTokens: 50},
		CostUSD:  mockCallCostUSD,
	}, nil
}

func (m *mockCompleter) callCount(node string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c == node {
			n++
		}
	}
	return n
}

// mockSearch serves one scripted result batch per call, in order; calls
// past the script reuse the last batch. An empty script returns nothing.
type mockSearch struct {
	mu      sync.Mutex
	script  [][]search.Item
	call    int
	queries []string
}

func (m *mockSearch) Search(ctx context.Context, query string, maxResults int) ([]search.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, query)
	if len(m.script) == 0 {
		return nil, nil
	}
	idx := m.call
	if idx >= len(m.script) {
		idx = len(m.script) - 1
	}
	m.call++
	return m.script[idx], nil
}

func (m *mockSearch) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queries)
}

// mockScraper turns targets into pages via fn; nil fn fails every fetch.
type mockScraper struct {
	mu      sync.Mutex
	fn      func(t scraping.Target) (scraping.Page, bool)
	batches [][]scraping.Target
}

func (m *mockScraper) ScrapeAll(ctx context.Context, targets []scraping.Target) ([]scraping.Page, scraping.BatchStats) {
	m.mu.Lock()
	m.batches = append(m.batches, targets)
	m.mu.Unlock()

	stats := scraping.BatchStats{Attempted: len(targets)}
	var pages []scraping.Page
	for _, t := range targets {
		if m.fn == nil {
			stats.FetchFails++
			continue
		}
		if p, ok := m.fn(t); ok {
			pages = append(pages, p)
			stats.Succeeded++
		} else {
			stats.FetchFails++
		}
	}
	return pages, stats
}

func (m *mockScraper) lastBatch() []scraping.Target {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.batches) == 0 {
		return nil
	}
	return m.batches[len(m.batches)-1]
}

func pageFor(t scraping.Target) (scraping.Page, bool) {
	return scraping.Page{
		URL:           t.URL,
		SubQuestionID: t.SubQuestionID,
		Title:         t.Title,
		Content:       "Substantive content scraped from " + t.URL,
		WordCount:     120,
		QualityScore:  0.8,
	}, true
}

// pipeline bundles one executor run's collaborators so scenario tests can
// inspect every side effect: scripted providers, event history, and the
// checkpoint trail.
type pipeline struct {
	completer *mockCompleter
	search    *mockSearch
	scraper   *mockScraper
	budget    *costs.BudgetTracker
	bus       *events.Bus
	store     *checkpoint.Store
	reportDir string
	exec      *agent.Executor
}

type pipelineOptions struct {
	budgetCfg     *config.BudgetConfig
	checkpointDir string
	script        [][]search.Item
	scrapeFn      func(t scraping.Target) (scraping.Page, bool)
}

func newPipeline(t *testing.T, opts pipelineOptions) *pipeline {
	t.Helper()

	p := &pipeline{
		search:    &mockSearch{script: opts.script},
		scraper:   &mockScraper{fn: opts.scrapeFn},
		bus:       events.NewBus(nil, nil),
		reportDir: t.TempDir(),
	}
	t.Cleanup(p.bus.Close)

	if opts.budgetCfg != nil {
		p.budget = costs.NewBudgetTracker(*opts.budgetCfg)
	}
	p.completer = newMockCompleter(p.budget)

	dir := opts.checkpointDir
	if dir == "" {
		dir = t.TempDir()
	}
	p.store = checkpoint.NewStore(config.CheckpointConfig{Directory: dir, MaxCheckpoints: 20})

	p.exec = agent.NewExecutor(agent.ExecutorConfig{
		LLM:         p.completer,
		Search:      p.search,
		Scraper:     p.scraper,
		Budget:      p.budget,
		Checkpoints: p.store,
		Bus:         p.bus,
		ReportDir:   p.reportDir,
	})
	return p
}
