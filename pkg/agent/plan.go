package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/llm"
)

const (
	planMaxTokens   = 4096
	planTemperature = 0.2
	maxSubtopics    = 10
)

// PlanNode decomposes the research query into sub-questions with a
// SMART-tier call. Decomposition failures surface as errors so the recovery
// wrapper retries them; total failure falls back to a single subtopic
// wrapping the original query (see fallbackPlanDelta).
type PlanNode struct {
	LLM Completer

	// MemoryContext is a pre-formatted block of recalled findings from
	// earlier sessions, appended to the planner prompt when non-empty.
	MemoryContext string
}

func (n *PlanNode) Name() string { return NodePlan }

type plannerOutput struct {
	Subtopics []Subtopic `json:"subtopics"`
	Reasoning string     `json:"reasoning"`
}

func (n *PlanNode) Run(ctx context.Context, state ResearchState) (Delta, error) {
	query := strings.TrimSpace(state.Query)
	if query == "" {
		slog.Warn("Empty research query, planning against generic fallback")
		return fallbackPlanDelta("General research"), nil
	}
	slog.Info("Planning research", "query", query)

	userPrompt := fmt.Sprintf(plannerUserTemplate, query)
	if n.MemoryContext != "" {
		userPrompt += "\n\n" + n.MemoryContext
	}

	resp, err := n.LLM.Generate(ctx, NodePlan, &llm.Request{
		System:        plannerSystemPrompt,
		Messages:      []llm.Message{{Role: llm.RoleUser, Content: userPrompt}},
		MaxTokens:     planMaxTokens,
		Temperature:   planTemperature,
		PromptVersion: promptVersion,
	})
	if err != nil {
		return Delta{}, fmt.Errorf("decomposing query: %w", err)
	}

	var out plannerOutput
	if err := decodeModelJSON(resp.Content, &out); err != nil {
		return Delta{}, fmt.Errorf("parsing planner output: %w", err)
	}
	if len(out.Subtopics) == 0 {
		return Delta{}, fmt.Errorf("planner produced no subtopics")
	}
	if len(out.Subtopics) > maxSubtopics {
		out.Subtopics = out.Subtopics[:maxSubtopics]
	}
	for i := range out.Subtopics {
		out.Subtopics[i].ID = i + 1
		if out.Subtopics[i].Status == "" {
			out.Subtopics[i].Status = "pending"
		}
	}

	slog.Info("Query decomposed",
		"subtopics", len(out.Subtopics), "reasoning_length", len(out.Reasoning))
	return Delta{
		Step:                 NodePlan,
		StepIndex:            stepIndices[NodePlan],
		Subtopics:            out.Subtopics,
		SetSubtopics:         true,
		CurrentSubtopicIndex: intPtr(0),
	}, nil
}

// fallbackPlanDelta wraps the query in a single subtopic when decomposition
// fails outright, so the pipeline still runs end to end.
func fallbackPlanDelta(query string) Delta {
	return Delta{
		Step:      NodePlan,
		StepIndex: stepIndices[NodePlan],
		Subtopics: []Subtopic{{
			ID:        1,
			Question:  query,
			Rationale: "Direct investigation of the original query.",
			Status:    "pending",
		}},
		SetSubtopics:         true,
		CurrentSubtopicIndex: intPtr(0),
	}
}
