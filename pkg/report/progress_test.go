package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProgress(t *testing.T, title string) *ProgressWriter {
	t.Helper()
	w, err := NewProgressWriter(filepath.Join(t.TempDir(), "progress.md"), title)
	require.NoError(t, err)
	return w
}

func TestProgressHeader(t *testing.T) {
	w := newTestProgress(t, "Quantum Research")

	content, err := w.Read()
	require.NoError(t, err)
	assert.Contains(t, content, "# Quantum Research")
	assert.Contains(t, content, "Research in progress.")
}

func TestProgressNoHeaderWithoutTitle(t *testing.T) {
	w := newTestProgress(t, "")

	content, err := w.Read()
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestProgressHeaderNotRewrittenOnReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.md")
	w, err := NewProgressWriter(path, "Original Title")
	require.NoError(t, err)
	require.NoError(t, w.AppendStatus("resumed"))

	reopened, err := NewProgressWriter(path, "Different Title")
	require.NoError(t, err)

	content, err := reopened.Read()
	require.NoError(t, err)
	assert.Contains(t, content, "# Original Title")
	assert.NotContains(t, content, "Different Title")
	assert.Contains(t, content, "*resumed*")
}

func TestProgressAppendSubtopic(t *testing.T) {
	w := newTestProgress(t, "Topic")
	err := w.AppendSubtopic("Surface Codes", "They work.",
		[]string{"Break-even crossed"},
		[]string{"https://example.org/paper"})
	require.NoError(t, err)

	content, err := w.Read()
	require.NoError(t, err)
	assert.Contains(t, content, "## Surface Codes")
	assert.Contains(t, content, "They work.")
	assert.Contains(t, content, "**Key Findings:**\n- Break-even crossed")
	assert.Contains(t, content, "**Sources:**\n- https://example.org/paper")
	assert.Contains(t, content, "\n---\n")
}

func TestProgressAppendSubtopicOmitsEmptyLists(t *testing.T) {
	w := newTestProgress(t, "Topic")
	require.NoError(t, w.AppendSubtopic("Bare", "Summary only.", nil, nil))

	content, err := w.Read()
	require.NoError(t, err)
	assert.NotContains(t, content, "Key Findings")
	assert.NotContains(t, content, "Sources")
}

func TestProgressErrorNoteAndStatus(t *testing.T) {
	w := newTestProgress(t, "Topic")
	require.NoError(t, w.AppendErrorNote("search", "provider unreachable"))
	require.NoError(t, w.AppendStatus("Budget 80% consumed"))

	content, err := w.Read()
	require.NoError(t, err)
	assert.Contains(t, content, "> **Note:** Error in *search* step: provider unreachable")
	assert.Contains(t, content, "*Budget 80% consumed*")
}

func TestProgressSubtopicCount(t *testing.T) {
	w := newTestProgress(t, "Topic")

	count, err := w.SubtopicCount()
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, w.AppendSubtopic("First", "a", nil, nil))
	require.NoError(t, w.AppendSubtopic("Second", "b", nil, nil))

	count, err = w.SubtopicCount()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestProgressReadMissingFile(t *testing.T) {
	w := &ProgressWriter{path: filepath.Join(t.TempDir(), "never-created.md")}

	content, err := w.Read()
	require.NoError(t, err)
	assert.Empty(t, content)
}
