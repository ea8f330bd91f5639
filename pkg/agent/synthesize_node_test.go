package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reportMarkdown = `## Executive Summary

WASM runs outside browsers [1].

## Key Findings

- Wasmtime implements WASI [1]
- Spin targets serverless [2]

## Sources

1. Wasmtime
2. Spin`

func synthesizeState() ResearchState {
	state := NewState("wasm")
	state.Subtopics = []Subtopic{
		{ID: 1, Question: "Which runtimes exist?"},
		{ID: 2, Question: "What about serverless?"},
	}
	state.ScrapedPages = []ScrapedPage{
		{URL: "https://example.org/wasmtime", Title: "Wasmtime docs"},
		{URL: "https://example.org/spin", Title: "Spin docs"},
	}
	state.Summaries = []Summary{
		{SubtopicID: 1, SubQuestion: "Which runtimes exist?", Summary: "Wasmtime leads.",
			SourceURLs: []string{"https://example.org/wasmtime"}},
		{SubtopicID: 2, SubQuestion: "What about serverless?", Summary: "Spin is built on it.",
			SourceURLs: []string{"https://example.org/spin", "https://example.org/wasmtime"}},
	}
	return state
}

func TestSynthesizeNodeBuildsReport(t *testing.T) {
	llm := newFakeCompleter().reply(NodeSynthesize, reportMarkdown)
	node := &SynthesizeNode{LLM: llm}

	delta, err := node.Run(context.Background(), synthesizeState())
	require.NoError(t, err)

	assert.True(t, delta.SetFinalReport)
	assert.Equal(t, reportMarkdown, delta.FinalReport)

	require.Len(t, delta.Sources, 2, "shared URL counted once across summaries")
	assert.Equal(t, "https://example.org/wasmtime", delta.Sources[0].URL)
	assert.Equal(t, "Wasmtime docs", delta.Sources[0].Title)
	assert.Equal(t, "https://example.org/spin", delta.Sources[1].URL)

	call, ok := llm.lastCall(NodeSynthesize)
	require.True(t, ok)
	content := call.Req.Messages[0].Content
	assert.Contains(t, content, "1. Wasmtime docs - https://example.org/wasmtime")
	assert.Contains(t, content, "2. Spin docs - https://example.org/spin")
	assert.Contains(t, content, "## Sub-question 1: Which runtimes exist?")
	assert.Contains(t, content, "## Sub-question 2: What about serverless?")
}

func TestSynthesizeNodeNoSummaries(t *testing.T) {
	llm := newFakeCompleter()
	node := &SynthesizeNode{LLM: llm}

	state := synthesizeState()
	state.Summaries = nil

	delta, err := node.Run(context.Background(), state)
	require.NoError(t, err)
	assert.False(t, delta.SetFinalReport)
	require.Len(t, delta.ErrorLog, 1)
	assert.False(t, delta.ErrorLog[0].Recoverable)
	assert.Zero(t, llm.callCount(NodeSynthesize))
}

func TestSynthesizeNodeErrorsPropagate(t *testing.T) {
	boom := errors.New("provider down")
	node := &SynthesizeNode{LLM: newFakeCompleter().fail(NodeSynthesize, boom)}

	_, err := node.Run(context.Background(), synthesizeState())
	assert.ErrorIs(t, err, boom)
}

func TestSynthesizeNodeEmptyReportRejected(t *testing.T) {
	node := &SynthesizeNode{LLM: newFakeCompleter().reply(NodeSynthesize, "   \n\t")}
	_, err := node.Run(context.Background(), synthesizeState())
	assert.ErrorContains(t, err, "empty report")
}

func TestCollectSourcesUntitledFallsBackToURL(t *testing.T) {
	state := synthesizeState()
	state.ScrapedPages = nil

	sources := collectSources(state)
	require.Len(t, sources, 2)
	assert.Empty(t, sources[0].Title)
	assert.Contains(t, numberedSourceList(sources), "1. https://example.org/wasmtime - https://example.org/wasmtime")
}
