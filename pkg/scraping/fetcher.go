// Package scraping fetches search-result pages and turns them into clean,
// quality-scored text for summarization: HTTP fetch with size caps, HTML
// sanitization against prompt injection, paywall detection, main-text
// extraction, and multi-dimension content quality scoring.
package scraping

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
)

const userAgent = "research-agent/1.0 (+https://github.com/dmhernandez2525/research-agent-sub001)"

// ErrUnusableContent marks pages dropped for content reasons: paywalled,
// empty after extraction, or below the quality threshold. Callers count
// these but never fail on them.
var ErrUnusableContent = errors.New("unusable content")

// Fetcher retrieves raw HTML with a per-request timeout and a hard byte cap
// so a single huge page cannot blow up the pipeline.
type Fetcher struct {
	client   *http.Client
	maxBytes int64
}

func NewFetcher(cfg config.ScrapingConfig) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	maxBytes := int64(cfg.MaxContentLength)
	if maxBytes <= 0 {
		maxBytes = 500_000
	}
	return &Fetcher{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
	}
}

// Fetch downloads the URL and returns at most the configured number of
// bytes. Redirects are followed; non-2xx statuses are errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}
	return string(body), nil
}
