// Package report writes research output to disk: the final report with a
// metadata sidecar, and a progressive Markdown file that stays readable
// mid-run so a crashed session still leaves a partial report behind.
package report

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const maxFilenameLength = 80

var (
	unsafeChars   = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// SanitizeFilename turns a research query into a filesystem-safe filename
// component: lowercased, stripped of unsafe characters, whitespace collapsed
// to hyphens, truncated to 80 characters.
func SanitizeFilename(query string) string {
	sanitized := strings.ToLower(strings.TrimSpace(query))
	sanitized = unsafeChars.ReplaceAllString(sanitized, "")
	sanitized = whitespaceRun.ReplaceAllString(sanitized, "-")
	sanitized = strings.Trim(sanitized, "-")
	if len(sanitized) > maxFilenameLength {
		sanitized = strings.TrimRight(sanitized[:maxFilenameLength], "-")
	}
	if sanitized == "" {
		return "report"
	}
	return sanitized
}

// Filename builds the report filename: <sanitized-query>_<YYYYMMDD_HHMMSS>.md.
func Filename(query string, ts time.Time) string {
	return fmt.Sprintf("%s_%s.md", SanitizeFilename(query), ts.UTC().Format("20060102_150405"))
}

// Metadata is the sidecar written next to every report.
type Metadata struct {
	Query       string  `json:"query"`
	GeneratedAt string  `json:"generated_at"`
	WordCount   int     `json:"word_count"`
	Filename    string  `json:"filename"`
	SessionID   string  `json:"session_id,omitempty"`
	TotalCost   float64 `json:"total_cost_usd,omitempty"`
	LLMCalls    int     `json:"llm_calls,omitempty"`
	SourceCount int     `json:"source_count,omitempty"`
}

// Write stores the report under outputDir with a .meta.json sidecar and
// returns the report path. The directory is created if missing.
func Write(report, query, outputDir string, meta Metadata) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	now := time.Now().UTC()
	filename := Filename(query, now)
	reportPath := filepath.Join(outputDir, filename)

	if err := os.WriteFile(reportPath, []byte(report), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	meta.Query = query
	meta.GeneratedAt = now.Format(time.RFC3339)
	meta.WordCount = len(strings.Fields(report))
	meta.Filename = filename

	encoded, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report metadata: %w", err)
	}
	metaPath := strings.TrimSuffix(reportPath, ".md") + ".meta.json"
	if err := os.WriteFile(metaPath, encoded, 0o644); err != nil {
		return "", fmt.Errorf("writing report metadata: %w", err)
	}

	slog.Info("Report written",
		"path", reportPath, "meta_path", metaPath, "word_count", meta.WordCount)
	return reportPath, nil
}
