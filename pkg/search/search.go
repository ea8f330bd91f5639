// Package search provides the web search backend used by the search node:
// a narrow Client interface, the Tavily implementation with retry, and URL
// normalization for cross-subtopic deduplication.
package search

import (
	"context"
)

// Item is one raw result from a search backend, before it is bound to a
// sub-question.
type Item struct {
	URL     string  `json:"url"`
	Title   string  `json:"title"`
	Snippet string  `json:"snippet"`
	Score   float64 `json:"score"` // backend relevance, clamped to [0,1]
}

// Client is the search backend capability the pipeline depends on.
// Implementations must be safe for concurrent use; the search node fans
// query variations out under a shared semaphore.
type Client interface {
	Search(ctx context.Context, query string, maxResults int) ([]Item, error)
}

// clamp01 keeps backend scores inside the documented [0,1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
