package e2e

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/agent"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/search"
)

// Two empty search rounds self-loop with an incrementing retry counter;
// the third round returns five fresh results, resets the counter, and the
// whole batch reaches the scraper. The checkpoint trail preserves the
// counter at every step.
func TestSearchRetriesThenScrapesFullBatch(t *testing.T) {
	five := []search.Item{
		{URL: "https://example.org/one", Title: "One", Score: 0.9},
		{URL: "https://example.org/two", Title: "Two", Score: 0.8},
		{URL: "https://example.org/three", Title: "Three", Score: 0.7},
		{URL: "https://example.org/four", Title: "Four", Score: 0.6},
		{URL: "https://example.org/five", Title: "Five", Score: 0.5},
	}
	p := newPipeline(t, pipelineOptions{
		script:   [][]search.Item{nil, nil, five},
		scrapeFn: pageFor,
	})
	p.completer.
		reply(agent.NodePlan, planOneSubtopic).
		reply(agent.NodeSearch, `{"original": "how is it used", "variations": ["usage in practice"]}`).
		reply(agent.NodeSummarize, `{"summary": "Used widely.", "key_findings": ["Adoption is broad"]}`).
		reply(agent.NodeSynthesize, reportMarkdown)

	result, err := p.exec.Run(context.Background(), "sess-retry", "how is it used")
	require.NoError(t, err)

	assert.Equal(t, 3, p.completer.callCount(agent.NodeSearch))
	assert.Equal(t, 3, p.search.callCount())
	assert.Zero(t, result.State.SearchRetryCount)
	assert.Len(t, result.State.SearchResults, 5)

	// The scraper saw one batch holding all five unique URLs.
	require.Len(t, p.scraper.batches, 1)
	batch := p.scraper.lastBatch()
	require.Len(t, batch, 5)
	seen := make(map[string]bool, len(batch))
	for _, target := range batch {
		seen[target.URL] = true
	}
	assert.Len(t, seen, 5)

	// Retry counter across the checkpoint trail: two thin rounds push it
	// to 1 and 2, the productive round resets it.
	metas, err := p.store.List("sess-retry")
	require.NoError(t, err)

	var steps []string
	var retries []int
	for _, meta := range metas {
		snap, err := p.store.Load("sess-retry", meta.CheckpointID)
		require.NoError(t, err)
		var state struct {
			Step             string `json:"step"`
			SearchRetryCount int    `json:"search_retry_count"`
		}
		require.NoError(t, json.Unmarshal(snap.State, &state))
		steps = append(steps, meta.StepName)
		retries = append(retries, state.SearchRetryCount)
	}
	assert.Equal(t, []string{
		agent.NodePlan,
		agent.NodeSearch, agent.NodeSearch, agent.NodeSearch,
		agent.NodeScrape, agent.NodeSummarize, agent.NodeSynthesize,
	}, steps)
	assert.Equal(t, []int{0, 1, 2, 0, 0, 0, 0}, retries)
}
