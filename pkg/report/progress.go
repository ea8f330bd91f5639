package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ProgressWriter appends completed subtopic summaries to a Markdown file
// that is readable at any point during a run. If the agent dies before
// synthesis, the file is the partial report.
type ProgressWriter struct {
	path string
}

// NewProgressWriter opens the progress file at path, writing a header if the
// file does not exist yet and a title is given.
func NewProgressWriter(path, title string) (*ProgressWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating progress directory: %w", err)
	}
	w := &ProgressWriter{path: path}

	if _, err := os.Stat(path); os.IsNotExist(err) && title != "" {
		header := fmt.Sprintf("# %s\n\n*Research in progress. Started %s.*\n\n",
			title, time.Now().UTC().Format("2006-01-02 15:04 UTC"))
		if err := os.WriteFile(path, []byte(header), 0o644); err != nil {
			return nil, fmt.Errorf("writing progress header: %w", err)
		}
	}
	return w, nil
}

func (w *ProgressWriter) Path() string { return w.path }

// AppendSubtopic adds one completed subtopic section.
func (w *ProgressWriter) AppendSubtopic(title, summary string, keyFindings, citations []string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\n## %s\n\n%s\n", title, summary)
	if len(keyFindings) > 0 {
		b.WriteString("\n**Key Findings:**\n")
		for _, finding := range keyFindings {
			fmt.Fprintf(&b, "- %s\n", finding)
		}
	}
	if len(citations) > 0 {
		b.WriteString("\n**Sources:**\n")
		for _, citation := range citations {
			fmt.Fprintf(&b, "- %s\n", citation)
		}
	}
	b.WriteString("\n---\n")

	if err := w.append(b.String()); err != nil {
		return err
	}
	slog.Info("Progress subtopic appended", "title", title, "path", w.path)
	return nil
}

// AppendErrorNote records a step failure in the progress file.
func (w *ProgressWriter) AppendErrorNote(node, message string) error {
	return w.append(fmt.Sprintf("\n> **Note:** Error in *%s* step: %s\n\n", node, message))
}

// AppendStatus records a one-line status update.
func (w *ProgressWriter) AppendStatus(message string) error {
	return w.append(fmt.Sprintf("\n*%s*\n", message))
}

// Read returns the full progress content, or empty when no file exists.
func (w *ProgressWriter) Read() (string, error) {
	data, err := os.ReadFile(w.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading progress file: %w", err)
	}
	return string(data), nil
}

// SubtopicCount counts the level-2 headings written so far.
func (w *ProgressWriter) SubtopicCount() (int, error) {
	content, err := w.Read()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "## ") {
			count++
		}
	}
	return count, nil
}

func (w *ProgressWriter) append(section string) error {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening progress file: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(section); err != nil {
		return fmt.Errorf("appending progress section: %w", err)
	}
	return f.Sync()
}
