// Package quality validates generated research reports: required sections,
// citation presence, subtopic coverage and word count. The check is
// advisory, a failing report is still delivered with its warnings.
package quality

import (
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strings"
)

var requiredSections = []string{
	"Executive Summary",
	"Findings",
	"Sources",
}

var (
	// Matches both [Source N] and bare [N] citation references.
	citationPattern = regexp.MustCompile(`\[(?:Source\s+)?(\d+)\]`)
	headingPattern  = regexp.MustCompile(`(?m)^#{1,3}\s+(.+)$`)
)

const minSubtopicCoverage = 0.8

// Result is the outcome of a report quality check.
type Result struct {
	Passed              bool     `json:"passed"`
	WordCount           int      `json:"word_count"`
	HasExecutiveSummary bool     `json:"has_executive_summary"`
	HasFindings         bool     `json:"has_findings"`
	HasSources          bool     `json:"has_sources"`
	CitationCount       int      `json:"citation_count"`
	HasCitations        bool     `json:"has_citations"`
	SubtopicCoverage    float64  `json:"subtopic_coverage"`
	SubtopicCoverageOK  bool     `json:"subtopic_coverage_ok"`
	Warnings            []string `json:"warnings,omitempty"`
}

// CheckReport runs all quality checks on a generated Markdown report.
// subtopics are the sub-question texts the report was supposed to cover.
func CheckReport(report string, subtopics []string) Result {
	if strings.TrimSpace(report) == "" {
		return Result{Warnings: []string{"Report is empty"}}
	}

	var warnings []string
	sections := checkSections(report)

	result := Result{
		WordCount:           len(strings.Fields(report)),
		HasExecutiveSummary: sections["Executive Summary"],
		HasFindings:         sections["Findings"],
		HasSources:          sections["Sources"],
	}
	for _, section := range requiredSections {
		if !sections[section] {
			warnings = append(warnings, fmt.Sprintf("Missing '%s' section", section))
		}
	}

	result.CitationCount = countCitations(report)
	result.HasCitations = result.CitationCount > 0
	if !result.HasCitations {
		warnings = append(warnings, "No citation references found in report")
	}

	coverage := subtopicCoverage(report, subtopics)
	result.SubtopicCoverage = math.Round(coverage*1000) / 1000
	result.SubtopicCoverageOK = coverage >= minSubtopicCoverage
	if !result.SubtopicCoverageOK && len(subtopics) > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"Subtopic coverage %.0f%% is below %.0f%% threshold",
			coverage*100, minSubtopicCoverage*100))
	}

	result.Passed = result.HasExecutiveSummary &&
		result.HasFindings &&
		result.HasSources &&
		result.HasCitations &&
		result.SubtopicCoverageOK
	result.Warnings = warnings

	slog.Info("Report quality check complete",
		"passed", result.Passed,
		"word_count", result.WordCount,
		"citation_count", result.CitationCount,
		"subtopic_coverage", result.SubtopicCoverage,
		"warnings", len(result.Warnings))
	return result
}

// checkSections looks for # to ### headings containing each required section
// name, case-insensitive.
func checkSections(report string) map[string]bool {
	var headings []string
	for _, m := range headingPattern.FindAllStringSubmatch(report, -1) {
		headings = append(headings, strings.ToLower(strings.TrimSpace(m[1])))
	}

	found := make(map[string]bool, len(requiredSections))
	for _, section := range requiredSections {
		needle := strings.ToLower(section)
		for _, h := range headings {
			if strings.Contains(h, needle) {
				found[section] = true
				break
			}
		}
	}
	return found
}

// countCitations counts unique citation numbers referenced in the report.
func countCitations(report string) int {
	seen := map[string]bool{}
	for _, m := range citationPattern.FindAllStringSubmatch(report, -1) {
		seen[m[1]] = true
	}
	return len(seen)
}

// subtopicCoverage is the fraction of subtopics mentioned in the report. A
// subtopic counts as covered when at least 40% of its significant words
// (3+ characters) appear, case-insensitive.
func subtopicCoverage(report string, subtopics []string) float64 {
	if len(subtopics) == 0 {
		return 1.0
	}

	reportLower := strings.ToLower(report)
	covered := 0
	for _, question := range subtopics {
		var words []string
		for _, w := range strings.Fields(question) {
			if len(w) >= 3 {
				words = append(words, strings.ToLower(w))
			}
		}
		if len(words) == 0 {
			covered++
			continue
		}
		matches := 0
		for _, w := range words {
			if strings.Contains(reportLower, w) {
				matches++
			}
		}
		if float64(matches)/float64(len(words)) >= 0.4 {
			covered++
		}
	}
	return float64(covered) / float64(len(subtopics))
}
