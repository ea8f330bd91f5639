package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/llm"
)

const synthesizeTemperature = 0.3

// SynthesizeNode builds the final Markdown report from all subtopic
// summaries with one STRATEGIC-tier call. The node numbers the sources
// itself and hands the model the numbered list, so [N] citations in the
// report are bound to a source list the pipeline controls.
type SynthesizeNode struct {
	LLM Completer
}

func (n *SynthesizeNode) Name() string { return NodeSynthesize }

func (n *SynthesizeNode) Run(ctx context.Context, state ResearchState) (Delta, error) {
	delta := Delta{Step: NodeSynthesize, StepIndex: stepIndices[NodeSynthesize]}

	if len(state.Summaries) == 0 {
		slog.Warn("No summaries to synthesize, skipping report generation")
		delta.ErrorLog = []ErrorEntry{{
			Step:        NodeSynthesize,
			Message:     "No subtopic summaries available for synthesis",
			Recoverable: false,
		}}
		return delta, nil
	}

	sources := collectSources(state)
	slog.Info("Synthesizing final report",
		"summaries", len(state.Summaries), "sources", len(sources))

	resp, err := n.LLM.Generate(ctx, NodeSynthesize, &llm.Request{
		System: synthesizerSystemPrompt,
		Messages: []llm.Message{{
			Role: llm.RoleUser,
			Content: fmt.Sprintf(synthesizerUserTemplate,
				state.Query, numberedSourceList(sources), synthesisContext(state.Summaries)),
		}},
		Temperature:   synthesizeTemperature,
		PromptVersion: promptVersion,
	})
	if err != nil {
		return Delta{}, fmt.Errorf("synthesizing report: %w", err)
	}

	report := strings.TrimSpace(resp.Content)
	if report == "" {
		return Delta{}, fmt.Errorf("synthesis produced an empty report")
	}

	slog.Info("Report synthesized",
		"words", len(strings.Fields(report)), "model", resp.Model)
	delta.FinalReport = report
	delta.SetFinalReport = true
	delta.Sources = sources
	return delta, nil
}

// collectSources numbers the unique source URLs across all summaries in
// first-use order; the numbering is what the report's [N] citations refer to.
func collectSources(state ResearchState) []Source {
	titles := make(map[string]string, len(state.ScrapedPages))
	for _, p := range state.ScrapedPages {
		titles[p.URL] = p.Title
	}

	now := time.Now().UTC().Format(time.RFC3339)
	seen := make(map[string]bool)
	var sources []Source
	for _, s := range state.Summaries {
		for _, url := range s.SourceURLs {
			if seen[url] {
				continue
			}
			seen[url] = true
			sources = append(sources, Source{
				URL:        url,
				Title:      titles[url],
				AccessedAt: now,
				Relevance:  s.SubQuestion,
			})
		}
	}
	return sources
}

func numberedSourceList(sources []Source) string {
	if len(sources) == 0 {
		return "(none)"
	}
	var b strings.Builder
	for i, s := range sources {
		title := s.Title
		if title == "" {
			title = s.URL
		}
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, title, s.URL)
	}
	return b.String()
}

func synthesisContext(summaries []Summary) string {
	parts := make([]string, len(summaries))
	for i, s := range summaries {
		sourceList := "none"
		if len(s.SourceURLs) > 0 {
			sourceList = strings.Join(s.SourceURLs, ", ")
		}
		parts[i] = fmt.Sprintf("## Sub-question %d: %s\n\n%s\n\nSources: %s",
			s.SubtopicID, s.SubQuestion, s.Summary, sourceList)
	}
	return strings.Join(parts, "\n\n---\n\n")
}
