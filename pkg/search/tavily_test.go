package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *TavilyClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewTavilyClient(config.SearchConfig{
		BaseURL: server.URL,
		Depth:   config.SearchDepthAdvanced,
	})
	client.apiKey = "tvly-test"
	return client
}

func TestSearchParsesResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req tavilyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tvly-test", req.APIKey)
		assert.Equal(t, "golang generics", req.Query)
		assert.Equal(t, "advanced", req.SearchDepth)

		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"url": "https://go.dev/blog", "title": "Blog", "content": "snippet", "score": 0.91},
				{"url": "https://example.com", "title": "Other", "content": "x", "score": 1.7},
			},
		})
	})

	items, err := client.Search(context.Background(), "golang generics", 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "https://go.dev/blog", items[0].URL)
	assert.Equal(t, 0.91, items[0].Score)
	assert.Equal(t, 1.0, items[1].Score, "out-of-range scores are clamped")
}

func TestSearchRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"url": "https://example.com", "score": 0.5},
			},
		})
	})

	items, err := client.Search(context.Background(), "q", 5)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestSearchGivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Search(context.Background(), "q", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransient)
	assert.Equal(t, int32(searchAttempts), calls.Load())
}

func TestSearchDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "bad request", http.StatusBadRequest)
	})

	_, err := client.Search(context.Background(), "q", 5)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTransient)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSearchRequiresAPIKey(t *testing.T) {
	client := NewTavilyClient(config.SearchConfig{APIKeyEnv: "SEARCH_TEST_KEY_UNSET"})
	_, err := client.Search(context.Background(), "q", 5)
	assert.ErrorContains(t, err, "API key")
}
