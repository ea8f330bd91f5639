package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/costs"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/llm"
)

const (
	summarizeMaxTokens   = 4096
	summarizeTemperature = 0.1
)

// SummarizeNode compresses the scraped content of the current subtopic into
// a summary with key findings. The node always advances the subtopic index,
// even on failure, so the loop over subtopics cannot stall; only budget
// exhaustion and cancellation propagate as errors.
type SummarizeNode struct {
	LLM      Completer
	Progress ProgressSink // nil disables the progressive report
}

func (n *SummarizeNode) Name() string { return NodeSummarize }

type summarizerOutput struct {
	Summary       string   `json:"summary"`
	KeyFindings   []string `json:"key_findings"`
	Disagreements string   `json:"disagreements"`
}

func (n *SummarizeNode) Run(ctx context.Context, state ResearchState) (Delta, error) {
	idx := state.CurrentSubtopicIndex
	delta := Delta{
		Step:                 NodeSummarize,
		StepIndex:            stepIndices[NodeSummarize],
		CurrentSubtopicIndex: intPtr(idx + 1),
	}

	if idx >= len(state.Subtopics) {
		slog.Warn("Summarize skipped, subtopic index out of range",
			"index", idx, "subtopics", len(state.Subtopics))
		return delta, nil
	}
	subtopic := state.Subtopics[idx]

	var pages []ScrapedPage
	for _, p := range state.ScrapedPages {
		if p.SubtopicID == subtopic.ID {
			pages = append(pages, p)
		}
	}
	if len(pages) == 0 {
		slog.Warn("No scraped content for subtopic",
			"subtopic_id", subtopic.ID, "question", subtopic.Question)
		delta.ErrorLog = []ErrorEntry{{
			Step:        NodeSummarize,
			Message:     fmt.Sprintf("No content to summarize for subtopic %d", subtopic.ID),
			Recoverable: true,
		}}
		return delta, nil
	}

	summary, err := n.summarizeGroup(ctx, subtopic, pages)
	if err != nil {
		if errors.Is(err, costs.ErrBudgetExhausted) || ctx.Err() != nil {
			return Delta{}, err
		}
		slog.Error("Summarization failed, continuing without subtopic summary",
			"subtopic_id", subtopic.ID, "error", err)
		delta.ErrorLog = []ErrorEntry{{
			Step:        NodeSummarize,
			Message:     fmt.Sprintf("Summarizing subtopic %d failed: %v", subtopic.ID, err),
			Recoverable: true,
		}}
		return delta, nil
	}

	delta.Summaries = []Summary{summary}
	if n.Progress != nil {
		if err := n.Progress.AppendSubtopic(subtopic.Question, summary.Summary,
			summary.KeyFindings, summary.SourceURLs); err != nil {
			slog.Warn("Failed to append progress section", "error", err)
		}
	}
	return delta, nil
}

func (n *SummarizeNode) summarizeGroup(ctx context.Context, subtopic Subtopic, pages []ScrapedPage) (Summary, error) {
	resp, err := n.LLM.Generate(ctx, NodeSummarize, &llm.Request{
		System: summarizerSystemPrompt,
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf(summarizerUserTemplate, subtopic.Question, len(pages), contentBlock(pages)),
		}},
		MaxTokens:     summarizeMaxTokens,
		Temperature:   summarizeTemperature,
		PromptVersion: promptVersion,
	})
	if err != nil {
		return Summary{}, err
	}

	var out summarizerOutput
	if err := decodeModelJSON(resp.Content, &out); err != nil {
		return Summary{}, err
	}
	if strings.TrimSpace(out.Summary) == "" {
		return Summary{}, fmt.Errorf("summarizer returned empty summary")
	}

	urls := make([]string, 0, len(pages))
	seen := make(map[string]bool, len(pages))
	for _, p := range pages {
		if !seen[p.URL] {
			seen[p.URL] = true
			urls = append(urls, p.URL)
		}
	}

	slog.Info("Subtopic summarized",
		"subtopic_id", subtopic.ID, "sources", len(urls),
		"findings", len(out.KeyFindings), "summary_words", len(strings.Fields(out.Summary)))
	return Summary{
		SubtopicID:  subtopic.ID,
		SubQuestion: subtopic.Question,
		Summary:     out.Summary,
		SourceURLs:  urls,
		KeyFindings: out.KeyFindings,
	}, nil
}

// contentBlock concatenates pages with source headers so the model can
// attribute claims.
func contentBlock(pages []ScrapedPage) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = fmt.Sprintf("Source: %s (%s)\n\n%s", p.Title, p.URL, p.Content)
	}
	return strings.Join(parts, "\n\n---\n\n")
}
