package scraping

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
)

func testScrapingConfig() config.ScrapingConfig {
	return config.DefaultSettings().Scraping
}

// goodArticleHTML renders a page substantive enough to clear the quality bar.
func goodArticleHTML(title string) string {
	var paragraphs strings.Builder
	for i := range 30 {
		fmt.Fprintf(&paragraphs,
			"<p>Paragraph %d reviews the trial design and reports measured outcomes in detail. "+
				"Each cohort was followed for twelve months and results were independently verified.</p>\n", i)
	}
	return fmt.Sprintf(`<html><head><title>%s</title></head><body>
		<article><h1>%s</h1>%s</article></body></html>`, title, title, paragraphs.String())
}

func TestScrapeAcceptsGoodPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, goodArticleHTML("Trial Outcomes"))
	}))
	defer srv.Close()

	s := NewScraper(testScrapingConfig())
	page, err := s.Scrape(context.Background(), Target{URL: srv.URL, SubQuestionID: 2})

	require.NoError(t, err)
	assert.Equal(t, srv.URL, page.URL)
	assert.Equal(t, 2, page.SubQuestionID)
	assert.Equal(t, "Trial Outcomes", page.Title)
	assert.Greater(t, page.WordCount, 400)
	assert.GreaterOrEqual(t, page.QualityScore, 0.4)
	assert.Contains(t, page.Content, "reports measured outcomes")
}

func TestScrapeKeepsProvidedTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, goodArticleHTML("Page Title"))
	}))
	defer srv.Close()

	s := NewScraper(testScrapingConfig())
	page, err := s.Scrape(context.Background(), Target{URL: srv.URL, Title: "Search Result Title"})

	require.NoError(t, err)
	assert.Equal(t, "Search Result Title", page.Title)
}

func TestScrapeDropsPaywalledPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><div class="paywall-overlay">
			Subscribe to continue reading. This article is for subscribers only.
			</div></body></html>`)
	}))
	defer srv.Close()

	s := NewScraper(testScrapingConfig())
	_, err := s.Scrape(context.Background(), Target{URL: srv.URL})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnusableContent))
	assert.Contains(t, err.Error(), "paywalled")
}

func TestScrapeDropsEmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><script>app()</script></body></html>`)
	}))
	defer srv.Close()

	s := NewScraper(testScrapingConfig())
	_, err := s.Scrape(context.Background(), Target{URL: srv.URL})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnusableContent))
	assert.Contains(t, err.Error(), "empty")
}

func TestScrapeDropsLowQualityPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><p>tiny stub page</p></body></html>`)
	}))
	defer srv.Close()

	s := NewScraper(testScrapingConfig())
	_, err := s.Scrape(context.Background(), Target{URL: srv.URL})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnusableContent))
	assert.Contains(t, err.Error(), "below quality")
}

func TestScrapeFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	s := NewScraper(testScrapingConfig())
	_, err := s.Scrape(context.Background(), Target{URL: srv.URL})

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnusableContent))
}

func TestScrapeAllMixedBatch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/good1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, goodArticleHTML("First"))
	})
	mux.HandleFunc("/good2", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, goodArticleHTML("Second"))
	})
	mux.HandleFunc("/paywalled", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<div class="paywall-box">Subscribe to continue reading.</div>`)
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := NewScraper(testScrapingConfig())
	pages, stats := s.ScrapeAll(context.Background(), []Target{
		{URL: srv.URL + "/good1", SubQuestionID: 1},
		{URL: srv.URL + "/paywalled", SubQuestionID: 1},
		{URL: srv.URL + "/good2", SubQuestionID: 2},
		{URL: srv.URL + "/broken", SubQuestionID: 2},
	})

	require.Len(t, pages, 2)
	assert.Equal(t, "First", pages[0].Title)
	assert.Equal(t, "Second", pages[1].Title)
	assert.Equal(t, 4, stats.Attempted)
	assert.Equal(t, 2, stats.Succeeded)
	assert.Equal(t, 1, stats.Paywalled)
	assert.Equal(t, 1, stats.FetchFails)
}

func TestScrapeAllEmptyInput(t *testing.T) {
	s := NewScraper(testScrapingConfig())
	pages, stats := s.ScrapeAll(context.Background(), nil)

	assert.Empty(t, pages)
	assert.Zero(t, stats.Attempted)
}

func TestScrapeAllCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, goodArticleHTML("Unreached"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewScraper(testScrapingConfig())
	pages, stats := s.ScrapeAll(ctx, []Target{{URL: srv.URL}, {URL: srv.URL}})

	assert.Empty(t, pages)
	assert.Equal(t, 2, stats.Attempted)
	assert.Zero(t, stats.Succeeded)
}
