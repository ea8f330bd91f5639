// Package agent implements the research pipeline: state and reducers, the
// five pipeline nodes (plan, search, scrape, summarize, synthesize), and the
// executor that wires them into the graph engine with recovery, budget
// tracking, checkpointing and event emission.
package agent

import (
	"encoding/json"
	"fmt"
)

// SchemaVersion is stamped into every serialized state. Version 2 added
// report_metadata and error_log; version 1 snapshots load with those fields
// defaulted.
const SchemaVersion = 2

// Pipeline node names. They double as event step labels, tier-routing keys
// and checkpoint step names.
const (
	NodePlan       = "plan"
	NodeSearch     = "search"
	NodeScrape     = "scrape"
	NodeSummarize  = "summarize"
	NodeSynthesize = "synthesize"
)

// Fixed step indices of the pipeline stages, used in events and checkpoints.
var stepIndices = map[string]int{
	NodePlan:       0,
	NodeSearch:     1,
	NodeScrape:     2,
	NodeSummarize:  3,
	NodeSynthesize: 4,
}

// Subtopic is one decomposed sub-question from the planner.
type Subtopic struct {
	ID        int    `json:"id"`
	Question  string `json:"question"`
	Rationale string `json:"rationale,omitempty"`
	Status    string `json:"status,omitempty"`
}

// SearchResult is one accepted web search hit.
type SearchResult struct {
	SubtopicID int     `json:"subtopic_id"`
	Query      string  `json:"query"`
	Title      string  `json:"title,omitempty"`
	URL        string  `json:"url"`
	Snippet    string  `json:"snippet,omitempty"`
	Score      float64 `json:"score"`
}

// ScrapedPage is extracted content from one fetched page.
type ScrapedPage struct {
	URL          string  `json:"url"`
	SubtopicID   int     `json:"subtopic_id"`
	Title        string  `json:"title,omitempty"`
	Content      string  `json:"content"`
	WordCount    int     `json:"word_count"`
	QualityScore float64 `json:"quality_score"`
}

// Summary is the compressed result for one subtopic.
type Summary struct {
	SubtopicID  int      `json:"subtopic_id"`
	SubQuestion string   `json:"sub_question,omitempty"`
	Summary     string   `json:"summary"`
	SourceURLs  []string `json:"source_urls,omitempty"`
	KeyFindings []string `json:"key_findings,omitempty"`
}

// Source is one cited source in the final report.
type Source struct {
	URL        string `json:"url"`
	Title      string `json:"title,omitempty"`
	AccessedAt string `json:"accessed_at,omitempty"`
	Relevance  string `json:"relevance,omitempty"`
}

// ErrorEntry is a logged error or warning from a pipeline step.
type ErrorEntry struct {
	Step        string `json:"step"`
	Message     string `json:"message"`
	Recoverable bool   `json:"recoverable"`
}

// ResearchState is the full state flowing through the pipeline. List fields
// are append-only across node deltas; scalars are last-writer-wins.
type ResearchState struct {
	Schema string `json:"_schema_version"`

	Query     string `json:"query"`
	Step      string `json:"step"`
	StepIndex int    `json:"step_index"`

	CurrentSubtopicIndex int      `json:"current_subtopic_index"`
	SearchRetryCount     int      `json:"search_retry_count"`
	SeenURLs             []string `json:"seen_urls,omitempty"`

	Subtopics []Subtopic `json:"subtopics,omitempty"`

	SearchResults []SearchResult `json:"search_results,omitempty"`
	ScrapedPages  []ScrapedPage  `json:"scraped_pages,omitempty"`
	Summaries     []Summary      `json:"subtopic_summaries,omitempty"`

	FinalReport string   `json:"final_report,omitempty"`
	Sources     []Source `json:"sources,omitempty"`

	ReportMetadata map[string]any `json:"report_metadata,omitempty"`
	ErrorLog       []ErrorEntry   `json:"error_log,omitempty"`
}

// NewState builds the initial state for a fresh run.
func NewState(query string) ResearchState {
	return ResearchState{
		Schema: fmt.Sprintf("%d", SchemaVersion),
		Query:  query,
	}
}

// Delta is a node's partial state update. Slice fields append; pointer
// scalars apply only when non-nil; Subtopics and FinalReport replace when
// their Set flag is true.
type Delta struct {
	Step      string
	StepIndex int

	Subtopics    []Subtopic
	SetSubtopics bool

	SearchResults []SearchResult
	SeenURLs      []string
	ScrapedPages  []ScrapedPage
	Summaries     []Summary
	Sources       []Source
	ErrorLog      []ErrorEntry

	FinalReport    string
	SetFinalReport bool

	CurrentSubtopicIndex *int
	SearchRetryCount     *int

	// ReportMetadata entries overwrite existing keys.
	ReportMetadata map[string]any
}

// MergeDelta applies a node delta to the state and returns the new state.
// Append-only lists concatenate; scalars overwrite only when the delta
// carries a value.
func MergeDelta(state ResearchState, d Delta) ResearchState {
	if d.Step != "" {
		state.Step = d.Step
		state.StepIndex = d.StepIndex
	}
	if d.SetSubtopics {
		state.Subtopics = d.Subtopics
	}
	state.SearchResults = append(state.SearchResults, d.SearchResults...)
	state.SeenURLs = append(state.SeenURLs, d.SeenURLs...)
	state.ScrapedPages = append(state.ScrapedPages, d.ScrapedPages...)
	state.Summaries = append(state.Summaries, d.Summaries...)
	state.Sources = append(state.Sources, d.Sources...)
	state.ErrorLog = append(state.ErrorLog, d.ErrorLog...)
	if d.SetFinalReport {
		state.FinalReport = d.FinalReport
	}
	if d.CurrentSubtopicIndex != nil {
		state.CurrentSubtopicIndex = *d.CurrentSubtopicIndex
	}
	if d.SearchRetryCount != nil {
		state.SearchRetryCount = *d.SearchRetryCount
	}
	if len(d.ReportMetadata) > 0 {
		if state.ReportMetadata == nil {
			state.ReportMetadata = make(map[string]any, len(d.ReportMetadata))
		}
		for k, v := range d.ReportMetadata {
			state.ReportMetadata[k] = v
		}
	}
	return state
}

// LoadState decodes a checkpointed state, migrating older schema versions
// forward. Migration is additive: version 1 snapshots gain empty
// report_metadata and error_log.
func LoadState(raw json.RawMessage) (ResearchState, error) {
	var state ResearchState
	if err := json.Unmarshal(raw, &state); err != nil {
		return ResearchState{}, fmt.Errorf("decoding research state: %w", err)
	}
	if state.Schema == "" || state.Schema == "1" {
		if state.ReportMetadata == nil {
			state.ReportMetadata = map[string]any{}
		}
	}
	state.Schema = fmt.Sprintf("%d", SchemaVersion)
	return state, nil
}

// intPtr is a delta helper for has-value scalars.
func intPtr(v int) *int { return &v }
