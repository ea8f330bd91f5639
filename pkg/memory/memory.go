package memory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
)

const (
	defaultStalenessDays      = 30
	defaultRelevanceThreshold = 0.80
	defaultMaxResults         = 5
)

// Entry is one recalled memory with retrieval annotations.
type Entry struct {
	Content   string  `json:"content"`
	Query     string  `json:"query"`
	Timestamp string  `json:"timestamp"`
	Score     float64 `json:"score"`
	IsStale   bool    `json:"is_stale"`
}

// Memory stores key findings across research sessions and recalls the ones
// relevant to a new query. Entries older than the staleness window are
// still returned but flagged, so the planner can weigh them accordingly.
type Memory struct {
	store              VectorStore
	relevanceThreshold float64
	stalenessDays      int
	maxResults         int
}

// New wraps a vector store with the recall policy from configuration.
func New(store VectorStore, cfg config.MemoryConfig) *Memory {
	m := &Memory{
		store:              store,
		relevanceThreshold: cfg.RelevanceThreshold,
		stalenessDays:      cfg.StalenessDays,
		maxResults:         cfg.MaxResults,
	}
	if m.relevanceThreshold <= 0 {
		m.relevanceThreshold = defaultRelevanceThreshold
	}
	if m.stalenessDays <= 0 {
		m.stalenessDays = defaultStalenessDays
	}
	if m.maxResults <= 0 {
		m.maxResults = defaultMaxResults
	}
	return m
}

// Store persists key findings, one document per finding. Blank findings are
// skipped. Extra metadata entries override the defaults, which lets callers
// (and tests) pin stored_at. Returns the number actually stored after
// deduplication.
func (m *Memory) Store(ctx context.Context, findings []string, query string, metadata map[string]string) (int, error) {
	if len(findings) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	storedAt := now.Format(time.RFC3339)
	docs := make([]Document, 0, len(findings))
	for i, finding := range findings {
		finding = strings.TrimSpace(finding)
		if finding == "" {
			continue
		}

		meta := map[string]string{
			"query":     query,
			"stored_at": storedAt,
			"type":      "finding",
		}
		for k, v := range metadata {
			meta[k] = v
		}
		docs = append(docs, Document{
			ID:       fmt.Sprintf("mem-%d-%d", now.Unix(), i),
			Content:  finding,
			Metadata: meta,
		})
	}
	if len(docs) == 0 {
		return 0, nil
	}

	added, err := m.store.Add(ctx, docs)
	if err != nil {
		return added, fmt.Errorf("failed to store findings: %w", err)
	}
	slog.Info("Stored research findings", "query", query, "findings_count", added)
	return added, nil
}

// Recall returns memories relevant to the query, most similar first.
// Matches below the relevance threshold are dropped; survivors older than
// the staleness window (or with unparseable timestamps) are flagged stale.
func (m *Memory) Recall(ctx context.Context, query string) ([]Entry, error) {
	results, err := m.store.Search(ctx, query, m.maxResults, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to search memories: %w", err)
	}

	now := time.Now().UTC()
	var entries []Entry
	for _, result := range results {
		if result.Score < m.relevanceThreshold {
			continue
		}
		storedAt := result.Metadata["stored_at"]
		entries = append(entries, Entry{
			Content:   result.Content,
			Query:     result.Metadata["query"],
			Timestamp: storedAt,
			Score:     result.Score,
			IsStale:   m.isStale(storedAt, now),
		})
	}

	stale := 0
	for _, e := range entries {
		if e.IsStale {
			stale++
		}
	}
	slog.Info("Recalled memories",
		"query", query, "results_count", len(entries), "stale_count", stale)
	return entries, nil
}

func (m *Memory) isStale(storedAt string, now time.Time) bool {
	if storedAt == "" {
		return true
	}
	stored, err := time.Parse(time.RFC3339, storedAt)
	if err != nil {
		return true
	}
	return now.Sub(stored) > time.Duration(m.stalenessDays)*24*time.Hour
}

// FormatContext renders entries as a prompt block for the planner and
// searcher. Empty input renders nothing.
func (m *Memory) FormatContext(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, "Previous research findings:")
	for _, entry := range entries {
		note := ""
		if entry.IsStale {
			note = " [stale]"
		}
		lines = append(lines, fmt.Sprintf("- %s%s", entry.Content, note))
	}
	return strings.Join(lines, "\n")
}

// Count returns the number of stored memories.
func (m *Memory) Count(ctx context.Context) (int, error) {
	return m.store.Count(ctx)
}

// Clear removes all stored memories.
func (m *Memory) Clear(ctx context.Context) error {
	if err := m.store.DeleteCollection(ctx); err != nil {
		return err
	}
	slog.Info("Memory cleared")
	return nil
}
