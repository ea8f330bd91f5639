package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"time"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
)

const (
	tavilyEndpoint = "https://api.tavily.com/search"

	searchAttempts   = 3
	searchBackoff    = 1 * time.Second
	searchBackoffMax = 30 * time.Second
)

// ErrTransient marks failures worth retrying: network errors, timeouts,
// and backend 5xx/429 responses.
var ErrTransient = errors.New("transient search failure")

// TavilyClient calls the Tavily search API. Transient failures retry with
// exponential backoff and jitter before surfacing to the node's recovery
// policy.
type TavilyClient struct {
	endpoint string
	apiKey   string
	depth    config.SearchDepth
	http     *http.Client
}

// NewTavilyClient resolves the API key from the configured environment
// variable. A missing key is not fatal here; the first search reports it,
// matching lazy provider-key resolution elsewhere.
func NewTavilyClient(cfg config.SearchConfig) *TavilyClient {
	keyEnv := cfg.APIKeyEnv
	if keyEnv == "" {
		keyEnv = "TAVILY_API_KEY"
	}
	endpoint := cfg.BaseURL
	if endpoint == "" {
		endpoint = tavilyEndpoint
	}
	return &TavilyClient{
		endpoint: endpoint,
		apiKey:   os.Getenv(keyEnv),
		depth:    cfg.Depth,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

type tavilyRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	MaxResults  int    `json:"max_results"`
	SearchDepth string `json:"search_depth"`
}

type tavilyResponse struct {
	Results []struct {
		URL     string  `json:"url"`
		Title   string  `json:"title"`
		Content string  `json:"content"`
		Score   float64 `json:"score"`
	} `json:"results"`
}

// Search executes one query, retrying transient failures up to three
// attempts with exponential backoff capped at 30s.
func (c *TavilyClient) Search(ctx context.Context, query string, maxResults int) ([]Item, error) {
	if c.apiKey == "" {
		return nil, errors.New("tavily API key is not configured")
	}

	var lastErr error
	for attempt := 0; attempt < searchAttempts; attempt++ {
		if attempt > 0 {
			delay := backoffDelay(attempt - 1)
			slog.Warn("Search failed, retrying",
				"query", query, "attempt", attempt, "backoff", delay, "error", lastErr)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		items, err := c.searchOnce(ctx, query, maxResults)
		if err == nil {
			return items, nil
		}
		lastErr = err
		if !errors.Is(err, ErrTransient) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("search %q failed after %d attempts: %w", query, searchAttempts, lastErr)
}

func (c *TavilyClient) searchOnce(ctx context.Context, query string, maxResults int) ([]Item, error) {
	body, err := json.Marshal(tavilyRequest{
		APIKey:      c.apiKey,
		Query:       query,
		MaxResults:  maxResults,
		SearchDepth: string(c.depth),
	})
	if err != nil {
		return nil, fmt.Errorf("encoding search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %w", ErrTransient, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: tavily returned %d", ErrTransient, resp.StatusCode)
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("tavily returned %d: %s", resp.StatusCode, msg)
	}

	var parsed tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	items := make([]Item, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		items = append(items, Item{
			URL:     r.URL,
			Title:   r.Title,
			Snippet: r.Content,
			Score:   clamp01(r.Score),
		})
	}
	return items, nil
}

// backoffDelay computes min(base << retry, cap) plus jitter in [0, base).
func backoffDelay(retry int) time.Duration {
	delay := searchBackoff << retry
	if delay > searchBackoffMax || delay <= 0 {
		delay = searchBackoffMax
	}
	return delay + time.Duration(rand.Int64N(int64(searchBackoff)))
}
