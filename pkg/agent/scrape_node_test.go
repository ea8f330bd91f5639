package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrapeState() ResearchState {
	state := NewState("wasm")
	state.Subtopics = []Subtopic{{ID: 1, Question: "q", Status: "pending"}}
	state.SearchResults = []SearchResult{
		{SubtopicID: 1, Title: "A", URL: "https://example.org/a"},
		{SubtopicID: 1, Title: "B", URL: "https://example.org/b"},
		{SubtopicID: 1, Title: "A dup", URL: "https://example.org/a"},
	}
	return state
}

func TestScrapeNodeScrapesPendingTargets(t *testing.T) {
	scraper := &fakeScraper{fn: pageFromTarget}
	node := &ScrapeNode{Scraper: scraper}

	delta, err := node.Run(context.Background(), scrapeState())
	require.NoError(t, err)

	require.Len(t, scraper.batches, 1)
	assert.Len(t, scraper.batches[0], 2, "duplicate search result URL collapses to one target")

	require.Len(t, delta.ScrapedPages, 2)
	assert.Equal(t, "https://example.org/a", delta.ScrapedPages[0].URL)
	assert.Equal(t, 1, delta.ScrapedPages[0].SubtopicID)
	assert.Equal(t, 0.8, delta.ScrapedPages[0].QualityScore)
	assert.Empty(t, delta.ErrorLog)
}

func TestScrapeNodeSkipsAlreadyScraped(t *testing.T) {
	scraper := &fakeScraper{fn: pageFromTarget}
	node := &ScrapeNode{Scraper: scraper}

	state := scrapeState()
	state.ScrapedPages = []ScrapedPage{{URL: "https://example.org/a", SubtopicID: 1}}

	delta, err := node.Run(context.Background(), state)
	require.NoError(t, err)

	require.Len(t, scraper.batches, 1)
	require.Len(t, scraper.batches[0], 1)
	assert.Equal(t, "https://example.org/b", scraper.batches[0][0].URL)
	require.Len(t, delta.ScrapedPages, 1)
}

func TestScrapeNodeNothingPending(t *testing.T) {
	scraper := &fakeScraper{fn: pageFromTarget}
	node := &ScrapeNode{Scraper: scraper}

	state := NewState("wasm")
	delta, err := node.Run(context.Background(), state)
	require.NoError(t, err)
	assert.Empty(t, scraper.batches, "no search results means no scrape batch")
	assert.Empty(t, delta.ScrapedPages)
	assert.Empty(t, delta.ErrorLog)
}

func TestScrapeNodeTotalFailureLogsEntry(t *testing.T) {
	scraper := &fakeScraper{fn: nil}
	node := &ScrapeNode{Scraper: scraper}

	delta, err := node.Run(context.Background(), scrapeState())
	require.NoError(t, err)
	assert.Empty(t, delta.ScrapedPages)
	require.Len(t, delta.ErrorLog, 1)
	assert.Equal(t, NodeScrape, delta.ErrorLog[0].Step)
	assert.True(t, delta.ErrorLog[0].Recoverable)
	assert.Contains(t, delta.ErrorLog[0].Message, "No usable content from 2 URLs")
}

func TestScrapeNodeCancelledContext(t *testing.T) {
	scraper := &fakeScraper{fn: pageFromTarget}
	node := &ScrapeNode{Scraper: scraper}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := node.Run(ctx, scrapeState())
	assert.ErrorIs(t, err, context.Canceled)
}
