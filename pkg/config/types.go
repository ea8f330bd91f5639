package config

import "time"

// Section structs for the research-agent.yaml file. Durations accept Go
// duration strings ("30s", "2m") via yaml.v3's time.Duration support.

// SearchConfig controls the web search stage.
type SearchConfig struct {
	// Search backend (tavily, serper, searxng)
	Provider SearchProvider `yaml:"provider"`

	// Environment variable holding the search API key
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Optional custom endpoint (required for searxng)
	BaseURL string `yaml:"base_url,omitempty"`

	// Maximum results kept per search batch
	MaxResults int `yaml:"max_results" validate:"min=1"`

	// Crawl depth hint passed to the backend
	Depth SearchDepth `yaml:"search_depth"`

	// Results scoring below this relevance are discarded
	MinRelevance float64 `yaml:"min_relevance"`

	// Query variations generated per subtopic by the fast-tier expansion call
	QueryVariations int `yaml:"query_variations"`

	// Concurrent query fan-out limit
	MaxConcurrent int `yaml:"max_concurrent"`
}

// ScrapingConfig controls the page fetch and extraction stage.
type ScrapingConfig struct {
	// Content extraction strategy (article, raw)
	Engine ScrapeEngine `yaml:"engine"`

	// Per-request timeout
	Timeout time.Duration `yaml:"timeout"`

	// Concurrent fetch limit
	MaxConcurrent int `yaml:"max_concurrent" validate:"min=1"`

	// Max characters kept per scraped page
	MaxContentLength int `yaml:"max_content_length"`

	// Pages scoring below this quality are dropped
	MinQuality float64 `yaml:"min_quality"`

	// Pages between MinQuality and this are kept but flagged low-quality
	FlagQuality float64 `yaml:"flag_quality"`
}

// BudgetConfig defines the per-run cost guardrails.
type BudgetConfig struct {
	// Hard USD ceiling per research run
	MaxCostPerRun float64 `yaml:"max_cost_per_run"`

	// Hard LLM call count ceiling per research run
	MaxLLMCalls int `yaml:"max_llm_calls_per_run"`

	// Budget percentage at which the tier router starts proposing cheaper
	// models for non-synthesis calls
	WarnAtPercent int `yaml:"warn_at_percentage" validate:"min=0,max=100"`
}

// CheckpointConfig controls durable state snapshots.
type CheckpointConfig struct {
	Enabled bool `yaml:"enabled"`

	// Root directory; per-run subdirectories are created beneath it
	Directory string `yaml:"directory"`

	// Extra checkpoint every N events inside a node; node boundaries
	// always checkpoint
	SaveInterval int `yaml:"save_interval"`

	// Retained checkpoints per run; older ones are rotated out
	MaxCheckpoints int `yaml:"max_checkpoints"`
}

// ReportConfig controls final report output.
type ReportConfig struct {
	OutputDir string       `yaml:"output_dir"`
	Format    ReportFormat `yaml:"format"`

	// Minimum subtopic coverage for the quality check to pass
	MinCoverage float64 `yaml:"min_coverage"`
}

// CacheConfig controls the disk-backed LLM response cache.
type CacheConfig struct {
	Enabled bool `yaml:"enabled"`

	Directory string `yaml:"directory"`

	// Entry lifetime
	TTL time.Duration `yaml:"ttl"`

	// Only calls at or below this temperature are cached
	MaxTemperature float64 `yaml:"max_temperature"`
}

// RotationConfig controls API key rotation.
type RotationConfig struct {
	// How long a rate-limited key sits out before rejoining the rotation
	Cooldown time.Duration `yaml:"cooldown"`
}

// CompactionConfig controls context compaction for long LLM conversations.
type CompactionConfig struct {
	// Recent messages always kept verbatim
	WindowSize int `yaml:"window_size"`

	// Context token ceiling the compaction stages are computed against
	MaxContextTokens int `yaml:"max_context_tokens"`

	// Minimum turns between consecutive compactions
	CooldownTurns int `yaml:"cooldown_turns"`
}

// RecoveryConfig controls node retry, circuit breaking, and the dead-letter queue.
type RecoveryConfig struct {
	// Attempts per node before the failure is recorded as exhausted
	MaxAttempts int `yaml:"max_attempts"`

	// Initial retry backoff; doubles per attempt up to BackoffCap
	BackoffInitial time.Duration `yaml:"backoff_initial"`
	BackoffCap     time.Duration `yaml:"backoff_cap"`

	// Consecutive failures that open a node's circuit breaker
	BreakerThreshold int `yaml:"breaker_threshold"`

	// How long an open breaker blocks a node before a probe is allowed
	BreakerCooldown time.Duration `yaml:"breaker_cooldown"`

	// Dead-letter queue capacity; oldest entries are evicted beyond it
	DeadLetterLimit int `yaml:"dead_letter_limit"`
}

// MemoryConfig controls the cross-session research memory store.
type MemoryConfig struct {
	Enabled bool `yaml:"enabled"`

	// SQLite database path for the embedded vector store
	DatabasePath string `yaml:"database_path"`

	Collection string `yaml:"collection"`

	// Entries older than this many days are annotated as stale on recall
	StalenessDays int `yaml:"staleness_days"`

	// Minimum cosine similarity for recall hits
	RelevanceThreshold float64 `yaml:"relevance_threshold"`

	// Max entries returned per recall
	MaxResults int `yaml:"max_results"`
}

// APIConfig groups HTTP server and admission settings.
type APIConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port" validate:"min=1,max=65535"`

	// Sessions running concurrently before new ones queue
	MaxConcurrentSessions int `yaml:"max_concurrent_sessions"`

	// Queued sessions allowed before admission rejects with queue overflow
	QueueLimit int `yaml:"queue_limit"`

	// Per-key sliding-window request limit
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`

	// JSON file holding issued API keys
	KeysFile string `yaml:"keys_file"`

	// Additional allowed WebSocket origins beyond the same-host defaults
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}

// MaskingConfig defines data masking applied to events and stored state.
type MaskingConfig struct {
	Enabled        bool             `yaml:"enabled"`
	PatternGroups  []string         `yaml:"pattern_groups,omitempty"`
	Patterns       []string         `yaml:"patterns,omitempty"`
	CustomPatterns []MaskingPattern `yaml:"custom_patterns,omitempty"`
}

// MaskingPattern defines a regex-based masking pattern
type MaskingPattern struct {
	Pattern     string `yaml:"pattern" validate:"required"`
	Replacement string `yaml:"replacement" validate:"required"`
	Description string `yaml:"description,omitempty"`
}

// TierModels lists candidate models for one tier, in preference order.
// The tier router walks the list and picks the first model whose provider
// has a usable key.
type TierModels struct {
	Models []string `yaml:"models"`

	// Output token ceiling for calls routed to this tier; 0 uses the
	// global default
	MaxTokens int64 `yaml:"max_tokens,omitempty"`
}

// TiersConfig binds tiers to model lists and pipeline nodes to tiers.
type TiersConfig struct {
	Fast      TierModels `yaml:"fast"`
	Smart     TierModels `yaml:"smart"`
	Strategic TierModels `yaml:"strategic"`

	// Node name to tier; unknown nodes fall back to smart
	NodeTiers map[string]Tier `yaml:"node_tiers,omitempty"`
}

// ForTier returns the model list for the given tier.
func (t *TiersConfig) ForTier(tier Tier) TierModels {
	switch tier {
	case TierFast:
		return t.Fast
	case TierStrategic:
		return t.Strategic
	default:
		return t.Smart
	}
}

// TierForNode resolves the tier a node's calls are routed to.
func (t *TiersConfig) TierForNode(node string) Tier {
	if tier, ok := t.NodeTiers[node]; ok && tier.IsValid() {
		return tier
	}
	return TierSmart
}
