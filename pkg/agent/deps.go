package agent

import (
	"context"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/llm"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/scraping"
)

// Completer is the LLM surface the nodes depend on; *llm.Router satisfies it.
// node selects the model tier.
type Completer interface {
	Generate(ctx context.Context, node string, req *llm.Request) (*llm.Response, error)
}

// PageScraper is the batch scraping surface; *scraping.Scraper satisfies it.
type PageScraper interface {
	ScrapeAll(ctx context.Context, targets []scraping.Target) ([]scraping.Page, scraping.BatchStats)
}

// ProgressSink receives the summarize node's per-subtopic sections as they
// complete; *report.ProgressWriter satisfies it.
type ProgressSink interface {
	AppendSubtopic(title, summary string, keyFindings, citations []string) error
	AppendErrorNote(node, message string) error
	AppendStatus(message string) error
}
