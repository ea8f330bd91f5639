package memory

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
)

func newTestMemory(t *testing.T, cfg config.MemoryConfig) *Memory {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "memory.db"), "research", NewHashingEmbedder(0))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return New(store, cfg)
}

func TestMemoryStoreAndRecall(t *testing.T) {
	m := newTestMemory(t, config.MemoryConfig{RelevanceThreshold: 0.9, StalenessDays: 30, MaxResults: 5})
	ctx := context.Background()

	stored, err := m.Store(ctx,
		[]string{"Wasmtime implements WASI preview two", "Spin targets serverless platforms"},
		"webassembly outside the browser",
		map[string]string{"session_id": "sess-1"})
	require.NoError(t, err)
	assert.Equal(t, 2, stored)

	entries, err := m.Recall(ctx, "Wasmtime implements WASI preview two")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	top := entries[0]
	assert.Equal(t, "Wasmtime implements WASI preview two", top.Content)
	assert.Equal(t, "webassembly outside the browser", top.Query)
	assert.GreaterOrEqual(t, top.Score, 0.9)
	assert.False(t, top.IsStale)

	count, err := m.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMemoryRecallDropsBelowThreshold(t *testing.T) {
	m := newTestMemory(t, config.MemoryConfig{RelevanceThreshold: 0.99, StalenessDays: 30, MaxResults: 5})
	ctx := context.Background()

	_, err := m.Store(ctx, []string{"sourdough starters need regular feeding"}, "baking", nil)
	require.NoError(t, err)

	entries, err := m.Recall(ctx, "quantum networking hardware roadmaps")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMemoryStoreSkipsBlanksAndDuplicates(t *testing.T) {
	m := newTestMemory(t, config.MemoryConfig{RelevanceThreshold: 0.9, StalenessDays: 30, MaxResults: 5})
	ctx := context.Background()

	stored, err := m.Store(ctx, []string{"", "   ", "eBPF verifiers bound loop complexity"}, "ebpf", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, stored)

	// The same finding on a later run is a near-duplicate and is skipped.
	stored, err = m.Store(ctx, []string{"eBPF verifiers bound loop complexity"}, "ebpf again", nil)
	require.NoError(t, err)
	assert.Zero(t, stored)

	count, err := m.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryRecallFlagsStaleEntries(t *testing.T) {
	m := newTestMemory(t, config.MemoryConfig{RelevanceThreshold: 0.9, StalenessDays: 30, MaxResults: 5})
	ctx := context.Background()

	old := time.Now().UTC().AddDate(0, 0, -60).Format(time.RFC3339)
	_, err := m.Store(ctx, []string{"TLS thirteen removed renegotiation entirely"}, "tls history",
		map[string]string{"stored_at": old})
	require.NoError(t, err)

	entries, err := m.Recall(ctx, "TLS thirteen removed renegotiation entirely")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.True(t, entries[0].IsStale)
}

func TestMemoryDefaultsApplyToZeroConfig(t *testing.T) {
	m := newTestMemory(t, config.MemoryConfig{})
	assert.Equal(t, defaultRelevanceThreshold, m.relevanceThreshold)
	assert.Equal(t, defaultStalenessDays, m.stalenessDays)
	assert.Equal(t, defaultMaxResults, m.maxResults)
}

func TestFormatContext(t *testing.T) {
	m := newTestMemory(t, config.MemoryConfig{})

	assert.Empty(t, m.FormatContext(nil))

	got := m.FormatContext([]Entry{
		{Content: "Wasmtime implements WASI", IsStale: false},
		{Content: "WASI sockets were still a proposal", IsStale: true},
	})
	assert.Contains(t, got, "Previous research findings:")
	assert.Contains(t, got, "- Wasmtime implements WASI")
	assert.Contains(t, got, "- WASI sockets were still a proposal [stale]")
}

func TestMemoryClear(t *testing.T) {
	m := newTestMemory(t, config.MemoryConfig{RelevanceThreshold: 0.9})
	ctx := context.Background()

	_, err := m.Store(ctx, []string{"io_uring batches syscalls via shared rings"}, "linux io", nil)
	require.NoError(t, err)
	require.NoError(t, m.Clear(ctx))

	count, err := m.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
