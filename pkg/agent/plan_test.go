package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanNodeDecomposesQuery(t *testing.T) {
	llm := newFakeCompleter().reply(NodePlan, `{
		"subtopics": [
			{"id": 7, "question": "What is WASM?", "rationale": "basics"},
			{"id": 2, "question": "How does WASI work?", "rationale": "runtime"},
			{"id": 9, "question": "Where is WASM used in production?", "rationale": "adoption"}
		],
		"reasoning": "three angles"
	}`)
	node := &PlanNode{LLM: llm}

	delta, err := node.Run(context.Background(), NewState("webassembly outside the browser"))
	require.NoError(t, err)

	assert.Equal(t, NodePlan, delta.Step)
	assert.True(t, delta.SetSubtopics)
	require.Len(t, delta.Subtopics, 3)
	for i, s := range delta.Subtopics {
		assert.Equal(t, i+1, s.ID)
		assert.Equal(t, "pending", s.Status)
	}
	require.NotNil(t, delta.CurrentSubtopicIndex)
	assert.Zero(t, *delta.CurrentSubtopicIndex)
}

func TestPlanNodeFencedOutput(t *testing.T) {
	llm := newFakeCompleter().reply(NodePlan,
		"Here is the plan:\n```json\n{\"subtopics\": [{\"id\": 1, \"question\": \"q1\", \"rationale\": \"r\"}]}\n```")
	node := &PlanNode{LLM: llm}

	delta, err := node.Run(context.Background(), NewState("query"))
	require.NoError(t, err)
	require.Len(t, delta.Subtopics, 1)
	assert.Equal(t, "q1", delta.Subtopics[0].Question)
}

func TestPlanNodeCapsSubtopics(t *testing.T) {
	var parts []string
	for i := 0; i < 14; i++ {
		parts = append(parts, `{"id": 1, "question": "q", "rationale": "r"}`)
	}
	llm := newFakeCompleter().reply(NodePlan, `{"subtopics": [`+strings.Join(parts, ",")+`]}`)
	node := &PlanNode{LLM: llm}

	delta, err := node.Run(context.Background(), NewState("broad query"))
	require.NoError(t, err)
	assert.Len(t, delta.Subtopics, maxSubtopics)
	assert.Equal(t, maxSubtopics, delta.Subtopics[maxSubtopics-1].ID)
}

func TestPlanNodeEmptyQueryFallsBack(t *testing.T) {
	llm := newFakeCompleter()
	node := &PlanNode{LLM: llm}

	delta, err := node.Run(context.Background(), NewState("   "))
	require.NoError(t, err)
	require.Len(t, delta.Subtopics, 1)
	assert.Equal(t, "General research", delta.Subtopics[0].Question)
	assert.Zero(t, llm.callCount(NodePlan), "fallback must not spend an LLM call")
}

func TestPlanNodeMemoryContextInPrompt(t *testing.T) {
	llm := newFakeCompleter().reply(NodePlan, `{"subtopics": [{"id": 1, "question": "q", "rationale": "r"}]}`)
	node := &PlanNode{LLM: llm, MemoryContext: "Relevant findings from prior research:\n- WASI preview 2 shipped"}

	_, err := node.Run(context.Background(), NewState("wasm"))
	require.NoError(t, err)

	call, ok := llm.lastCall(NodePlan)
	require.True(t, ok)
	require.Len(t, call.Req.Messages, 1)
	assert.Contains(t, call.Req.Messages[0].Content, "WASI preview 2 shipped")
	assert.Contains(t, call.Req.Messages[0].Content, "wasm")
}

func TestPlanNodeErrorsPropagate(t *testing.T) {
	boom := errors.New("provider down")
	node := &PlanNode{LLM: newFakeCompleter().fail(NodePlan, boom)}

	_, err := node.Run(context.Background(), NewState("query"))
	assert.ErrorIs(t, err, boom)
}

func TestPlanNodeUnparseableOutput(t *testing.T) {
	node := &PlanNode{LLM: newFakeCompleter().reply(NodePlan, "I could not produce JSON, sorry.")}
	_, err := node.Run(context.Background(), NewState("query"))
	assert.Error(t, err)
}

func TestPlanNodeNoSubtopics(t *testing.T) {
	node := &PlanNode{LLM: newFakeCompleter().reply(NodePlan, `{"subtopics": [], "reasoning": "none"}`)}
	_, err := node.Run(context.Background(), NewState("query"))
	assert.ErrorContains(t, err, "no subtopics")
}
