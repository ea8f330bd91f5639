package config

import "time"

// LLMConfig holds global LLM call defaults applied when a provider or tier
// does not override them.
type LLMConfig struct {
	// Default provider name (must exist in the provider registry)
	Provider string `yaml:"provider,omitempty"`

	// Default sampling temperature
	Temperature float64 `yaml:"temperature"`

	// Default output token ceiling
	MaxTokens int64 `yaml:"max_tokens"`

	// Per-request timeout
	Timeout time.Duration `yaml:"timeout"`
}

// Defaults aggregates every tunable section with its built-in value.
// YAML and environment overrides are merged on top.
type Defaults struct {
	LLM        LLMConfig        `yaml:"llm"`
	Search     SearchConfig     `yaml:"search"`
	Scraping   ScrapingConfig   `yaml:"scraping"`
	Budget     BudgetConfig     `yaml:"costs"`
	Checkpoint CheckpointConfig `yaml:"checkpoints"`
	Report     ReportConfig     `yaml:"report"`
	Cache      CacheConfig      `yaml:"cache"`
	Rotation   RotationConfig   `yaml:"rotation"`
	Compaction CompactionConfig `yaml:"compaction"`
	Recovery   RecoveryConfig   `yaml:"recovery"`
	Memory     MemoryConfig     `yaml:"memory"`
	API        APIConfig        `yaml:"api"`
	Tiers      TiersConfig      `yaml:"tiers"`
}

// DefaultSettings returns the built-in configuration. Every value here can
// be overridden per-section in research-agent.yaml or via RESEARCH_AGENT_*
// environment variables.
func DefaultSettings() *Defaults {
	return &Defaults{
		LLM: LLMConfig{
			Provider:    "anthropic",
			Temperature: 0.1,
			MaxTokens:   4096,
			Timeout:     120 * time.Second,
		},
		Search: SearchConfig{
			Provider:        SearchProviderTavily,
			APIKeyEnv:       "TAVILY_API_KEY",
			MaxResults:      10,
			Depth:           SearchDepthAdvanced,
			MinRelevance:    0.3,
			QueryVariations: 3,
			MaxConcurrent:   3,
		},
		Scraping: ScrapingConfig{
			Engine:           ScrapeEngineArticle,
			Timeout:          30 * time.Second,
			MaxConcurrent:    5,
			MaxContentLength: 500_000,
			MinQuality:       0.4,
			FlagQuality:      0.7,
		},
		Budget: BudgetConfig{
			MaxCostPerRun: 2.00,
			MaxLLMCalls:   50,
			WarnAtPercent: 80,
		},
		Checkpoint: CheckpointConfig{
			Enabled:        true,
			Directory:      "./data/checkpoints",
			SaveInterval:   5,
			MaxCheckpoints: 5,
		},
		Report: ReportConfig{
			OutputDir:   "./reports",
			Format:      ReportFormatMarkdown,
			MinCoverage: 0.80,
		},
		Cache: CacheConfig{
			Enabled:        true,
			Directory:      "./data/llm_cache",
			TTL:            24 * time.Hour,
			MaxTemperature: 0.0,
		},
		Rotation: RotationConfig{
			Cooldown: 60 * time.Second,
		},
		Compaction: CompactionConfig{
			WindowSize:       10,
			MaxContextTokens: 100_000,
			CooldownTurns:    3,
		},
		Recovery: RecoveryConfig{
			MaxAttempts:      3,
			BackoffInitial:   500 * time.Millisecond,
			BackoffCap:       8 * time.Second,
			BreakerThreshold: 3,
			BreakerCooldown:  120 * time.Second,
			DeadLetterLimit:  200,
		},
		Memory: MemoryConfig{
			Enabled:            true,
			DatabasePath:       "./data/memory.db",
			Collection:         "research_memory",
			StalenessDays:      30,
			RelevanceThreshold: 0.80,
			MaxResults:         5,
		},
		API: APIConfig{
			Host:                  "0.0.0.0",
			Port:                  8000,
			MaxConcurrentSessions: 3,
			QueueLimit:            10,
			RateLimitPerMinute:    60,
			KeysFile:              "./data/api_keys.json",
		},
		Tiers: TiersConfig{
			Fast: TierModels{
				Models: []string{"claude-haiku-3-5-20241022", "gpt-4o-mini"},
			},
			Smart: TierModels{
				Models: []string{"claude-sonnet-4-5-20250929", "gpt-4o"},
			},
			Strategic: TierModels{
				Models:    []string{"claude-sonnet-4-5-20250929", "gpt-4o"},
				MaxTokens: 8192,
			},
			NodeTiers: map[string]Tier{
				"plan":       TierSmart,
				"search":     TierFast,
				"scrape":     TierFast,
				"summarize":  TierSmart,
				"synthesize": TierStrategic,
			},
		},
	}
}
