package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTestConfig builds a fully-valid Config from built-in defaults.
func validTestConfig() *Config {
	builtin := GetBuiltinConfig()
	return &Config{
		Settings: DefaultSettings(),
		Queue:    DefaultQueueConfig(),
		Masking: &MaskingConfig{
			Enabled:       true,
			PatternGroups: []string{"security"},
		},
		LLMProviderRegistry: NewLLMProviderRegistry(
			mergeLLMProviders(builtin.LLMProviders, nil)),
	}
}

func TestValidateAllDefaults(t *testing.T) {
	cfg := validTestConfig()
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateLLMProviders(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		contains string
	}{
		{
			name: "invalid provider type",
			mutate: func(cfg *Config) {
				cfg.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
					"bad": {Type: "mystery", Model: "m"},
				})
				// Point tiers at the surviving provider so only the type fails
				cfg.Settings.Tiers = TiersConfig{
					Fast:      TierModels{Models: []string{"m"}},
					Smart:     TierModels{Models: []string{"m"}},
					Strategic: TierModels{Models: []string{"m"}},
				}
			},
			contains: "invalid provider type",
		},
		{
			name: "missing model",
			mutate: func(cfg *Config) {
				cfg.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
					"bad": {Type: ProviderTypeOpenAI},
				})
			},
			contains: "model",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidateTierModelWithoutProvider(t *testing.T) {
	cfg := validTestConfig()
	cfg.Settings.Tiers.Fast.Models = []string{"phantom-model"}

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.Contains(t, err.Error(), "phantom-model")
}

func TestValidateTierEmptyModels(t *testing.T) {
	cfg := validTestConfig()
	cfg.Settings.Tiers.Smart.Models = nil

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one model required")
}

func TestValidateNodeTierUnknown(t *testing.T) {
	cfg := validTestConfig()
	cfg.Settings.Tiers.NodeTiers["plan"] = "ultra"

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tier")
}

func TestValidateSettingsBounds(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Defaults)
		contains string
	}{
		{
			name:     "temperature out of range",
			mutate:   func(s *Defaults) { s.LLM.Temperature = 3.5 },
			contains: "temperature",
		},
		{
			name:     "searxng requires base_url",
			mutate:   func(s *Defaults) { s.Search.Provider = SearchProviderSearxNG },
			contains: "base_url",
		},
		{
			name:     "zero budget",
			mutate:   func(s *Defaults) { s.Budget.MaxCostPerRun = 0 },
			contains: "max_cost_per_run",
		},
		{
			name:     "warn percentage above 100",
			mutate:   func(s *Defaults) { s.Budget.WarnAtPercent = 150 },
			contains: "warn_at_percentage",
		},
		{
			name:     "scraping concurrency zero",
			mutate:   func(s *Defaults) { s.Scraping.MaxConcurrent = 0 },
			contains: "max_concurrent",
		},
		{
			name:     "checkpoint directory required when enabled",
			mutate:   func(s *Defaults) { s.Checkpoint.Directory = "" },
			contains: "directory",
		},
		{
			name:     "invalid report format",
			mutate:   func(s *Defaults) { s.Report.Format = "docx" },
			contains: "report format",
		},
		{
			name:     "backoff cap below initial",
			mutate:   func(s *Defaults) { s.Recovery.BackoffCap = 100 * time.Millisecond },
			contains: "backoff",
		},
		{
			name:     "relevance threshold above 1",
			mutate:   func(s *Defaults) { s.Memory.RelevanceThreshold = 1.5 },
			contains: "relevance_threshold",
		},
		{
			name:     "port out of range",
			mutate:   func(s *Defaults) { s.API.Port = 70000 },
			contains: "port",
		},
		{
			name:     "negative queue limit",
			mutate:   func(s *Defaults) { s.API.QueueLimit = -1 },
			contains: "queue_limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg.Settings)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidateMaskingUnknownGroup(t *testing.T) {
	cfg := validTestConfig()
	cfg.Masking.PatternGroups = []string{"nonexistent-group"}

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent-group")
}

func TestValidateMaskingCustomPatternIncomplete(t *testing.T) {
	cfg := validTestConfig()
	cfg.Masking.CustomPatterns = []MaskingPattern{{Pattern: `secret-\d+`}}

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "replacement required")
}

func TestValidateMaskingSkippedWhenDisabled(t *testing.T) {
	cfg := validTestConfig()
	cfg.Masking.Enabled = false
	cfg.Masking.PatternGroups = []string{"nonexistent-group"}

	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateQueue(t *testing.T) {
	cfg := validTestConfig()
	cfg.Queue.WorkerCount = 0

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker_count")
}

func TestValidationErrorFormat(t *testing.T) {
	err := NewValidationError("settings", "search", "max_results", ErrInvalidValue)
	assert.Contains(t, err.Error(), "settings 'search'")
	assert.Contains(t, err.Error(), "field 'max_results'")
	assert.ErrorIs(t, err, ErrInvalidValue)
}
