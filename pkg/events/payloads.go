package events

// SessionStatusPayload is the payload for session_status events.
// Published when a session transitions between lifecycle states.
type SessionStatusPayload struct {
	Status string `json:"status"`           // queued, running, cancelling, completed, failed, cancelled, timed_out
	Detail string `json:"detail,omitempty"` // human-readable transition context
}

// StepStartPayload is the payload for step_start events.
type StepStartPayload struct {
	Step      string `json:"step"`       // node name: plan, search, scrape, summarize, synthesize
	StepIndex int    `json:"step_index"` // 0-based dispatch order
}

// StepEndPayload is the payload for step_end events. Fired once per
// completed node, after delta merge and checkpoint write.
type StepEndPayload struct {
	Step       string  `json:"step"`        // node name
	StepIndex  int     `json:"step_index"`  // 0-based dispatch order
	DurationMs int64   `json:"duration_ms"` // wall time for the node
	CostUSD    float64 `json:"cost_usd"`    // session total after this node
}

// StepErrorPayload is the payload for step_error events.
type StepErrorPayload struct {
	Step        string `json:"step"`        // node name
	Error       string `json:"error"`       // masked error message
	Recoverable bool   `json:"recoverable"` // false when retries are exhausted or the breaker is open
}

// LLMCallPayload is the payload for llm_call events, one per completion.
type LLMCallPayload struct {
	Step         string  `json:"step"`          // requesting node
	Provider     string  `json:"provider"`      // anthropic, openai
	Model        string  `json:"model"`         // resolved model ID
	InputTokens  int64   `json:"input_tokens"`  // prompt tokens
	OutputTokens int64   `json:"output_tokens"` // completion tokens
	CostUSD      float64 `json:"cost_usd"`      // cost of this call
	CacheHit     bool    `json:"cache_hit"`     // served from the disk cache
}

// BudgetWarningPayload is the payload for budget_warning events.
// Published on warn-threshold crossings and degradation transitions.
type BudgetWarningPayload struct {
	SpentUSD    float64 `json:"spent_usd"`       // cumulative session spend
	BudgetUSD   float64 `json:"budget_usd"`      // configured ceiling
	PercentUsed float64 `json:"percent_used"`    // 0..100
	CallsUsed   int     `json:"calls_used"`      // LLM calls so far
	Level       string  `json:"level,omitempty"` // degradation level after this crossing
}

// QualityCheckPayload is the payload for quality_check events (advisory).
type QualityCheckPayload struct {
	Passed          bool     `json:"passed"`
	WordCount       int      `json:"word_count"`
	CitationCount   int      `json:"citation_count"`
	Coverage        float64  `json:"coverage"` // fraction of subtopics covered, 0..1
	MissingSections []string `json:"missing_sections,omitempty"`
}

// SessionWarningPayload is the payload for session_warning events.
type SessionWarningPayload struct {
	Warning string `json:"warning"` // e.g. "No pages could be scraped; terminating early"
}
