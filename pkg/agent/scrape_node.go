package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/costs"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/scraping"
)

// ScrapeNode fetches every search result not yet scraped and extracts its
// content. Unusable pages (fetch failures, paywalls, junk) are dropped
// silently; the batch statistics land in the error log only when the whole
// batch produced nothing.
type ScrapeNode struct {
	Scraper     PageScraper
	Degradation *costs.DegradationManager
}

func (n *ScrapeNode) Name() string { return NodeScrape }

func (n *ScrapeNode) Run(ctx context.Context, state ResearchState) (Delta, error) {
	delta := Delta{Step: NodeScrape, StepIndex: stepIndices[NodeScrape]}

	if n.Degradation != nil && n.Degradation.ShouldSkipScraping() {
		slog.Warn("Scraping skipped under budget degradation", "tier", n.Degradation.Tier())
		delta.ErrorLog = []ErrorEntry{{
			Step:        NodeScrape,
			Message:     "Scraping skipped: budget degradation",
			Recoverable: true,
		}}
		return delta, nil
	}

	targets := pendingTargets(state)
	if len(targets) == 0 {
		slog.Info("No new URLs to scrape")
		return delta, nil
	}

	pages, stats := n.Scraper.ScrapeAll(ctx, targets)
	if err := ctx.Err(); err != nil {
		return delta, err
	}

	scraped := make([]ScrapedPage, len(pages))
	for i, p := range pages {
		scraped[i] = ScrapedPage{
			URL:          p.URL,
			SubtopicID:   p.SubQuestionID,
			Title:        p.Title,
			Content:      p.Content,
			WordCount:    p.WordCount,
			QualityScore: p.QualityScore,
		}
	}
	delta.ScrapedPages = scraped

	slog.Info("Scrape batch complete",
		"attempted", stats.Attempted, "succeeded", stats.Succeeded,
		"fetch_fails", stats.FetchFails, "paywalled", stats.Paywalled,
		"rejected", stats.Rejected, "low_quality", stats.LowQuality)

	if stats.Succeeded == 0 {
		delta.ErrorLog = []ErrorEntry{{
			Step: NodeScrape,
			Message: fmt.Sprintf(
				"No usable content from %d URLs (%d fetch failures, %d paywalled, %d below quality)",
				stats.Attempted, stats.FetchFails, stats.Paywalled, stats.Rejected+stats.Empty),
			Recoverable: true,
		}}
	}
	return delta, nil
}

// pendingTargets lists search results whose URL has not been scraped yet.
func pendingTargets(state ResearchState) []scraping.Target {
	done := make(map[string]bool, len(state.ScrapedPages))
	for _, p := range state.ScrapedPages {
		done[p.URL] = true
	}
	var targets []scraping.Target
	for _, r := range state.SearchResults {
		if done[r.URL] {
			continue
		}
		done[r.URL] = true
		targets = append(targets, scraping.Target{
			URL:           r.URL,
			Title:         r.Title,
			SubQuestionID: r.SubtopicID,
		})
	}
	return targets
}
