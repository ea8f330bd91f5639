package agent

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/llm"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/scraping"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/search"
)

type completerCall struct {
	Node string
	Req  llm.Request
}

// fakeCompleter answers per-node scripted replies. Replies for a node are
// consumed in order; the last reply repeats for further calls.
type fakeCompleter struct {
	mu      sync.Mutex
	replies map[string][]string
	errs    map[string]error
	calls   []completerCall
}

func newFakeCompleter() *fakeCompleter {
	return &fakeCompleter{replies: make(map[string][]string), errs: make(map[string]error)}
}

func (f *fakeCompleter) reply(node string, contents ...string) *fakeCompleter {
	f.replies[node] = append(f.replies[node], contents...)
	return f
}

func (f *fakeCompleter) fail(node string, err error) *fakeCompleter {
	f.errs[node] = err
	return f
}

func (f *fakeCompleter) Generate(ctx context.Context, node string, req *llm.Request) (*llm.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, completerCall{Node: node, Req: *req})

	if err := f.errs[node]; err != nil {
		return nil, err
	}
	queue := f.replies[node]
	if len(queue) == 0 {
		return nil, fmt.Errorf("no scripted reply for node %q", node)
	}
	content := queue[0]
	if len(queue) > 1 {
		f.replies[node] = queue[1:]
	}
	return &llm.Response{
		Content:  content,
		Model:    "fake-model",
		Provider: "fake",
		Usage:    llm.Usage{InputTokens: 100, OutputTokens: 50},
		CostUSD:  0.01,
	}, nil
}

func (f *fakeCompleter) callCount(node string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Node == node {
			n++
		}
	}
	return n
}

func (f *fakeCompleter) lastCall(node string) (completerCall, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].Node == node {
			return f.calls[i], true
		}
	}
	return completerCall{}, false
}

// fakeSearchClient serves canned items per query, falling back to a default
// set for unscripted queries.
type fakeSearchClient struct {
	mu       sync.Mutex
	byQuery  map[string][]search.Item
	fallback []search.Item
	err      error
	queries  []string
}

func (f *fakeSearchClient) Search(ctx context.Context, query string, maxResults int) ([]search.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	if items, ok := f.byQuery[query]; ok {
		return items, nil
	}
	return f.fallback, nil
}

func (f *fakeSearchClient) seenQueries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.queries))
	copy(out, f.queries)
	return out
}

// fakeScraper turns every target into a page via fn; nil fn drops everything.
type fakeScraper struct {
	mu      sync.Mutex
	fn      func(t scraping.Target) (scraping.Page, bool)
	batches [][]scraping.Target
}

func (f *fakeScraper) ScrapeAll(ctx context.Context, targets []scraping.Target) ([]scraping.Page, scraping.BatchStats) {
	f.mu.Lock()
	f.batches = append(f.batches, targets)
	f.mu.Unlock()

	stats := scraping.BatchStats{Attempted: len(targets)}
	var pages []scraping.Page
	for _, t := range targets {
		if f.fn == nil {
			stats.FetchFails++
			continue
		}
		if p, ok := f.fn(t); ok {
			pages = append(pages, p)
			stats.Succeeded++
		} else {
			stats.FetchFails++
		}
	}
	return pages, stats
}

func pageFromTarget(t scraping.Target) (scraping.Page, bool) {
	return scraping.Page{
		URL:           t.URL,
		SubQuestionID: t.SubQuestionID,
		Title:         t.Title,
		Content:       "Substantive content scraped from " + t.URL,
		WordCount:     120,
		QualityScore:  0.8,
	}, true
}

type progressSection struct {
	Title    string
	Summary  string
	Findings []string
	Sources  []string
}

// fakeProgress records everything appended to the progressive report.
type fakeProgress struct {
	mu       sync.Mutex
	sections []progressSection
	errors   []string
	statuses []string
}

func (f *fakeProgress) AppendSubtopic(title, summary string, keyFindings, citations []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sections = append(f.sections, progressSection{Title: title, Summary: summary, Findings: keyFindings, Sources: citations})
	return nil
}

func (f *fakeProgress) AppendErrorNote(node, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = append(f.errors, node+": "+message)
	return nil
}

func (f *fakeProgress) AppendStatus(message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append(f.statuses, message)
	return nil
}
