package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/search"
)

const expansionJSON = `{"original": "q", "variations": ["wasm runtimes", "wasm server side", "wasm vs containers"]}`

func searchState(retry int, seen ...string) ResearchState {
	state := NewState("wasm")
	state.Subtopics = []Subtopic{{ID: 1, Question: "Where does WASM run outside browsers?", Status: "pending"}}
	state.SearchRetryCount = retry
	state.SeenURLs = seen
	return state
}

func TestSearchNodeCollectsAndDedupes(t *testing.T) {
	llm := newFakeCompleter().reply(NodeSearch, expansionJSON)
	client := &fakeSearchClient{byQuery: map[string][]search.Item{
		"wasm runtimes": {
			{URL: "https://example.org/wasmtime", Title: "Wasmtime", Score: 0.9},
			{URL: "https://example.org/wamr", Title: "WAMR", Score: 0.6},
		},
		"wasm server side": {
			{URL: "https://example.org/wasmtime/", Title: "Wasmtime again", Score: 0.8},
			{URL: "https://example.org/spin", Title: "Spin", Score: 0.7},
		},
		"wasm vs containers": {
			{URL: "https://example.org/compare#intro", Title: "Comparison", Score: 0.5},
			{URL: "https://example.org/junk", Title: "Junk", Score: 0.1},
		},
	}}
	node := &SearchNode{LLM: llm, Search: client}

	delta, err := node.Run(context.Background(), searchState(0))
	require.NoError(t, err)

	require.Len(t, delta.SearchResults, 4, "duplicate wasmtime and sub-threshold junk dropped")
	assert.Equal(t, "Wasmtime", delta.SearchResults[0].Title)
	for i := 1; i < len(delta.SearchResults); i++ {
		assert.GreaterOrEqual(t, delta.SearchResults[i-1].Score, delta.SearchResults[i].Score)
	}
	for _, r := range delta.SearchResults {
		assert.Equal(t, 1, r.SubtopicID)
	}

	require.Len(t, delta.SeenURLs, 4)
	assert.Contains(t, delta.SeenURLs, "https://example.org/compare", "fragment stripped")

	require.NotNil(t, delta.SearchRetryCount)
	assert.Zero(t, *delta.SearchRetryCount)
	assert.ElementsMatch(t, []string{"wasm runtimes", "wasm server side", "wasm vs containers"}, client.seenQueries())
}

func TestSearchNodeFiltersSeenURLs(t *testing.T) {
	llm := newFakeCompleter().reply(NodeSearch, expansionJSON)
	client := &fakeSearchClient{fallback: []search.Item{
		{URL: "https://example.org/known/", Title: "Already seen", Score: 0.9},
		{URL: "https://example.org/new", Title: "Fresh", Score: 0.8},
	}}
	node := &SearchNode{LLM: llm, Search: client}

	delta, err := node.Run(context.Background(), searchState(0, "https://example.org/known"))
	require.NoError(t, err)

	require.Len(t, delta.SearchResults, 1)
	assert.Equal(t, "Fresh", delta.SearchResults[0].Title)
	require.NotNil(t, delta.SearchRetryCount)
	assert.Equal(t, 1, *delta.SearchRetryCount, "one fresh result is a thin search")
}

func TestSearchNodeThinSearchAdvancesRetry(t *testing.T) {
	llm := newFakeCompleter().reply(NodeSearch, expansionJSON)
	client := &fakeSearchClient{fallback: nil}
	node := &SearchNode{LLM: llm, Search: client}

	delta, err := node.Run(context.Background(), searchState(2))
	require.NoError(t, err)
	require.NotNil(t, delta.SearchRetryCount)
	assert.Equal(t, 3, *delta.SearchRetryCount)
}

func TestSearchNodeRetryResetsOnGoodBatch(t *testing.T) {
	llm := newFakeCompleter().reply(NodeSearch, expansionJSON)
	client := &fakeSearchClient{byQuery: map[string][]search.Item{
		"wasm runtimes": {
			{URL: "https://example.org/a", Score: 0.9},
			{URL: "https://example.org/b", Score: 0.8},
			{URL: "https://example.org/c", Score: 0.7},
		},
	}}
	node := &SearchNode{LLM: llm, Search: client}

	delta, err := node.Run(context.Background(), searchState(2))
	require.NoError(t, err)
	require.NotNil(t, delta.SearchRetryCount)
	assert.Zero(t, *delta.SearchRetryCount)
}

func TestSearchNodeExpansionFailureSearchesOriginal(t *testing.T) {
	llm := newFakeCompleter().fail(NodeSearch, errors.New("provider down"))
	client := &fakeSearchClient{fallback: []search.Item{
		{URL: "https://example.org/a", Score: 0.9},
		{URL: "https://example.org/b", Score: 0.8},
		{URL: "https://example.org/c", Score: 0.7},
	}}
	node := &SearchNode{LLM: llm, Search: client}

	delta, err := node.Run(context.Background(), searchState(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"Where does WASM run outside browsers?"}, client.seenQueries())
	assert.Len(t, delta.SearchResults, 3)
}

func TestSearchNodeUnparseableExpansionSearchesOriginal(t *testing.T) {
	llm := newFakeCompleter().reply(NodeSearch, "not json at all")
	client := &fakeSearchClient{}
	node := &SearchNode{LLM: llm, Search: client}

	_, err := node.Run(context.Background(), searchState(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"Where does WASM run outside browsers?"}, client.seenQueries())
}

func TestSearchNodeFailedQueriesContributeNothing(t *testing.T) {
	llm := newFakeCompleter().reply(NodeSearch, expansionJSON)
	client := &fakeSearchClient{err: errors.New("backend 500")}
	node := &SearchNode{LLM: llm, Search: client}

	delta, err := node.Run(context.Background(), searchState(0))
	require.NoError(t, err)
	assert.Empty(t, delta.SearchResults)
	require.NotNil(t, delta.SearchRetryCount)
	assert.Equal(t, 1, *delta.SearchRetryCount)
}

func TestSearchNodeIndexOutOfRange(t *testing.T) {
	llm := newFakeCompleter()
	client := &fakeSearchClient{}
	node := &SearchNode{LLM: llm, Search: client}

	state := searchState(0)
	state.CurrentSubtopicIndex = 5

	delta, err := node.Run(context.Background(), state)
	require.NoError(t, err)
	assert.Empty(t, delta.SearchResults)
	assert.Empty(t, client.seenQueries())
	assert.Zero(t, llm.callCount(NodeSearch))
}
