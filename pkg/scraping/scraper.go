package scraping

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
)

// Target is one URL to scrape, carrying its search-result provenance.
type Target struct {
	URL           string
	Title         string
	SubQuestionID int
}

// Page is one successfully scraped and accepted page.
type Page struct {
	URL           string
	SubQuestionID int
	Title         string
	Content       string
	WordCount     int
	QualityScore  float64

	// LowQuality marks pages kept but scoring under the flag threshold.
	LowQuality bool
}

// BatchStats counts content-unusable drops for event emission; the drops
// themselves are silent per the error model.
type BatchStats struct {
	Attempted  int `json:"attempted"`
	Succeeded  int `json:"succeeded"`
	FetchFails int `json:"fetch_fails"`
	Paywalled  int `json:"paywalled"`
	Empty      int `json:"empty"`
	LowQuality int `json:"low_quality"`
	Rejected   int `json:"rejected"`
}

// Scraper runs the full per-URL path: fetch, paywall check, sanitize,
// extract, quality score. A batch fans out under the configured concurrency
// cap and observes cancellation between URLs.
type Scraper struct {
	fetcher  *Fetcher
	sanitize *Sanitizer
	paywall  *PaywallDetector
	quality  *QualityScorer

	engine        config.ScrapeEngine
	maxConcurrent int
	maxContent    int
	minQuality    float64
	flagQuality   float64
}

func NewScraper(cfg config.ScrapingConfig) *Scraper {
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 5
	}
	maxContent := cfg.MaxContentLength
	if maxContent <= 0 {
		maxContent = 500_000
	}
	return &Scraper{
		fetcher:       NewFetcher(cfg),
		sanitize:      NewSanitizer(maxContent),
		paywall:       NewPaywallDetector(0),
		quality:       NewQualityScorer(),
		engine:        cfg.Engine,
		maxConcurrent: maxConcurrent,
		maxContent:    maxContent,
		minQuality:    cfg.MinQuality,
		flagQuality:   cfg.FlagQuality,
	}
}

// ScrapeAll fetches every target with bounded concurrency. Failures and
// content-unusable pages are dropped and counted; the returned pages keep
// the input order of their targets.
func (s *Scraper) ScrapeAll(ctx context.Context, targets []Target) ([]Page, BatchStats) {
	stats := BatchStats{Attempted: len(targets)}
	if len(targets) == 0 {
		return nil, stats
	}

	type slot struct {
		page *Page
		err  error
	}
	results := make([]slot, len(targets))
	sem := make(chan struct{}, s.maxConcurrent)
	done := make(chan int, len(targets))

	launched := 0
	for i, target := range targets {
		if ctx.Err() != nil {
			break
		}
		launched++
		go func(i int, target Target) {
			sem <- struct{}{}
			defer func() { <-sem }()
			page, err := s.Scrape(ctx, target)
			results[i] = slot{page: page, err: err}
			done <- i
		}(i, target)
	}

	for range launched {
		<-done
	}

	pages := make([]Page, 0, len(targets))
	for _, r := range results {
		switch {
		case r.page != nil:
			stats.Succeeded++
			if r.page.LowQuality {
				stats.LowQuality++
			}
			pages = append(pages, *r.page)
		case r.err == nil:
			// slot never ran (cancelled before launch)
		case strings.Contains(r.err.Error(), "paywalled"):
			stats.Paywalled++
		case strings.Contains(r.err.Error(), "empty"):
			stats.Empty++
		case strings.Contains(r.err.Error(), "below quality"):
			stats.Rejected++
		default:
			stats.FetchFails++
		}
	}
	return pages, stats
}

// Scrape runs the full path for one URL. Content-unusable outcomes return
// errors wrapping ErrUnusableContent.
func (s *Scraper) Scrape(ctx context.Context, target Target) (*Page, error) {
	rawHTML, err := s.fetcher.Fetch(ctx, target.URL)
	if err != nil {
		slog.Warn("Fetch failed", "url", target.URL, "error", err)
		return nil, err
	}

	if pw := s.paywall.Detect(rawHTML); pw.IsPaywalled {
		slog.Info("Dropping paywalled page",
			"url", target.URL, "weight", pw.TotalWeight, "confidence", pw.Confidence)
		return nil, fmt.Errorf("%w: paywalled (weight %.1f)", ErrUnusableContent, pw.TotalWeight)
	}

	sanitized := s.sanitize.Sanitize(rawHTML)
	extraction := ExtractText(sanitized.SanitizedHTML)
	content := extraction.Text
	metrics := s.quality.Score(content, rawHTML, extraction.LinkText)

	// Fallback pass: when article extraction came up empty or far below
	// the quality bar, rescore the raw body text before giving up. Some
	// pages carry their content in markup the block walk skips.
	if s.engine == config.ScrapeEngineArticle && (content == "" || metrics.OverallScore < s.minQuality/2) {
		fallback := ExtractText(rawHTML)
		if fallbackMetrics := s.quality.Score(fallback.Text, rawHTML, fallback.LinkText); fallbackMetrics.OverallScore > metrics.OverallScore {
			slog.Debug("Fallback extraction engaged", "url", target.URL,
				"article_score", metrics.OverallScore, "fallback_score", fallbackMetrics.OverallScore)
			content = fallback.Text
			extraction = fallback
			metrics = fallbackMetrics
		}
	}

	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: empty after extraction", ErrUnusableContent)
	}
	if len(content) > s.maxContent {
		content = content[:s.maxContent]
	}
	if metrics.OverallScore < s.minQuality {
		slog.Info("Dropping page below quality threshold",
			"url", target.URL, "score", metrics.OverallScore, "threshold", s.minQuality)
		return nil, fmt.Errorf("%w: below quality threshold (%.3f)", ErrUnusableContent, metrics.OverallScore)
	}

	title := target.Title
	if title == "" {
		title = extraction.Title
	}

	page := &Page{
		URL:           target.URL,
		SubQuestionID: target.SubQuestionID,
		Title:         title,
		Content:       content,
		WordCount:     metrics.WordCount,
		QualityScore:  metrics.OverallScore,
		LowQuality:    metrics.OverallScore < s.flagQuality,
	}
	slog.Info("Scraped page accepted",
		"url", target.URL, "words", page.WordCount, "quality", page.QualityScore)
	return page, nil
}
