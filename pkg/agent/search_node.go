package agent

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/costs"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/llm"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/search"
)

const (
	expandMaxTokens      = 256
	expandTemperature    = 0.7
	maxConcurrentQueries = 3
	minRelevanceScore    = 0.3
	defaultMaxResults    = 10

	// minNewResults is the bar under which the search is considered thin
	// and the retry counter advances.
	minNewResults = 3
)

// SearchNode searches the web for the current subtopic: the sub-question is
// expanded into 3 query variations by a FAST-tier call, the variations run
// concurrently, and results are relevance-filtered, URL-normalized and
// deduplicated against everything already seen.
type SearchNode struct {
	LLM         Completer
	Search      search.Client
	Degradation *costs.DegradationManager
}

func (n *SearchNode) Name() string { return NodeSearch }

type expandedQueries struct {
	Original   string   `json:"original"`
	Variations []string `json:"variations"`
}

func (n *SearchNode) Run(ctx context.Context, state ResearchState) (Delta, error) {
	delta := Delta{Step: NodeSearch, StepIndex: stepIndices[NodeSearch]}

	if state.CurrentSubtopicIndex >= len(state.Subtopics) {
		slog.Info("No more subtopics to search", "index", state.CurrentSubtopicIndex)
		return delta, nil
	}
	subtopic := state.Subtopics[state.CurrentSubtopicIndex]

	maxResults := defaultMaxResults
	if n.Degradation != nil {
		if n.Degradation.ShouldSkipSearch() {
			slog.Warn("Search skipped under budget degradation",
				"subtopic_id", subtopic.ID, "tier", n.Degradation.Tier())
			delta.SearchRetryCount = intPtr(state.SearchRetryCount + 1)
			delta.ErrorLog = []ErrorEntry{{
				Step:        NodeSearch,
				Message:     fmt.Sprintf("Search for subtopic %d skipped: budget degradation", subtopic.ID),
				Recoverable: true,
			}}
			return delta, nil
		}
		maxResults = n.Degradation.MaxSearchResults()
	}

	slog.Info("Searching subtopic",
		"subtopic_id", subtopic.ID, "question", subtopic.Question, "max_results", maxResults)

	queries := n.expandQueries(ctx, subtopic.Question)
	raw := n.searchAll(ctx, queries, subtopic.ID, maxResults)

	// In-batch dedup, then cross-subtopic dedup against seen URLs.
	unique := dedupeResults(raw)
	seen := make(map[string]bool, len(state.SeenURLs))
	for _, u := range state.SeenURLs {
		seen[search.NormalizeURL(u)] = true
	}
	fresh := make([]SearchResult, 0, len(unique))
	for _, r := range unique {
		if !seen[search.NormalizeURL(r.URL)] {
			fresh = append(fresh, r)
		}
	}

	sort.SliceStable(fresh, func(i, j int) bool { return fresh[i].Score > fresh[j].Score })
	if len(fresh) > maxResults {
		fresh = fresh[:maxResults]
	}

	newURLs := make([]string, len(fresh))
	for i, r := range fresh {
		newURLs[i] = search.NormalizeURL(r.URL)
	}

	retry := 0
	if len(fresh) < minNewResults {
		retry = state.SearchRetryCount + 1
	}

	slog.Info("Search complete",
		"subtopic_id", subtopic.ID,
		"raw", len(raw), "unique", len(unique), "new", len(fresh),
		"retry_count", retry)

	delta.SearchResults = fresh
	delta.SeenURLs = newURLs
	delta.SearchRetryCount = intPtr(retry)
	return delta, nil
}

// expandQueries asks a FAST-tier model for 3 query variations, falling back
// to the original question when expansion fails.
func (n *SearchNode) expandQueries(ctx context.Context, question string) []string {
	resp, err := n.LLM.Generate(ctx, NodeSearch, &llm.Request{
		System:        expandSystemPrompt,
		Messages:      []llm.Message{{Role: llm.RoleUser, Content: question}},
		MaxTokens:     expandMaxTokens,
		Temperature:   expandTemperature,
		PromptVersion: promptVersion,
	})
	if err != nil {
		slog.Warn("Query expansion failed, searching original question",
			"question", question, "error", err)
		return []string{question}
	}

	var out expandedQueries
	if err := decodeModelJSON(resp.Content, &out); err != nil || len(out.Variations) == 0 {
		slog.Warn("Unparseable query expansion, searching original question",
			"question", question, "error", err)
		return []string{question}
	}
	slog.Debug("Expanded search queries", "question", question, "variations", out.Variations)
	return out.Variations
}

// searchAll runs every query concurrently under a shared semaphore. Failed
// queries log and contribute nothing.
func (n *SearchNode) searchAll(ctx context.Context, queries []string, subtopicID, maxResults int) []SearchResult {
	sem := make(chan struct{}, maxConcurrentQueries)
	var (
		mu  sync.Mutex
		out []SearchResult
		wg  sync.WaitGroup
	)
	for _, query := range queries {
		wg.Add(1)
		go func(query string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			items, err := n.Search.Search(ctx, query, maxResults)
			if err != nil {
				slog.Warn("Search query failed", "query", query, "error", err)
				return
			}
			results := make([]SearchResult, 0, len(items))
			for _, item := range items {
				if item.Score < minRelevanceScore {
					continue
				}
				results = append(results, SearchResult{
					SubtopicID: subtopicID,
					Query:      query,
					Title:      item.Title,
					URL:        item.URL,
					Snippet:    item.Snippet,
					Score:      item.Score,
				})
			}
			mu.Lock()
			out = append(out, results...)
			mu.Unlock()
		}(query)
	}
	wg.Wait()
	return out
}

// dedupeResults drops results whose normalized URL repeats, keeping the
// first occurrence.
func dedupeResults(results []SearchResult) []SearchResult {
	seen := make(map[string]bool, len(results))
	unique := make([]SearchResult, 0, len(results))
	for _, r := range results {
		norm := search.NormalizeURL(r.URL)
		if seen[norm] {
			continue
		}
		seen[norm] = true
		unique = append(unique, r)
	}
	return unique
}
