package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"simple", "Quantum Computing", "quantum-computing"},
		{"punctuation stripped", "What is CRISPR? (2024 update!)", "what-is-crispr-2024-update"},
		{"whitespace collapsed", "  a   b\t\tc  ", "a-b-c"},
		{"hyphens kept", "state-of-the-art", "state-of-the-art"},
		{"only unsafe chars", "???!!!", "report"},
		{"empty", "", "report"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.query))
		})
	}
}

func TestSanitizeFilenameTruncates(t *testing.T) {
	got := SanitizeFilename(strings.Repeat("word ", 40))

	assert.LessOrEqual(t, len(got), 80)
	assert.False(t, strings.HasSuffix(got, "-"))
}

func TestFilenameFormat(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, "fusion-energy_20260314_092653.md", Filename("Fusion Energy", ts))
}

func TestWriteReportAndSidecar(t *testing.T) {
	dir := t.TempDir()
	content := "# Report\n\nFour words of findings here.\n"

	path, err := Write(content, "Test Query", dir, Metadata{
		SessionID: "sess-1",
		TotalCost: 0.42,
		LLMCalls:  7,
	})
	require.NoError(t, err)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(written))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "test-query_"))
	assert.True(t, strings.HasSuffix(path, ".md"))

	metaRaw, err := os.ReadFile(strings.TrimSuffix(path, ".md") + ".meta.json")
	require.NoError(t, err)

	var meta Metadata
	require.NoError(t, json.Unmarshal(metaRaw, &meta))
	assert.Equal(t, "Test Query", meta.Query)
	assert.Equal(t, 7, meta.WordCount)
	assert.Equal(t, filepath.Base(path), meta.Filename)
	assert.Equal(t, "sess-1", meta.SessionID)
	assert.InDelta(t, 0.42, meta.TotalCost, 0.001)
	assert.Equal(t, 7, meta.LLMCalls)

	_, err = time.Parse(time.RFC3339, meta.GeneratedAt)
	assert.NoError(t, err)
}

func TestWriteCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	_, err := Write("content", "q", dir, Metadata{})

	require.NoError(t, err)
	assert.DirExists(t, dir)
}
