package config

import (
	"fmt"
	"slices"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Validate in order: providers → tiers → settings → masking → queue
	// This ensures dependencies are validated before dependents

	if err := v.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if err := v.validateTiers(); err != nil {
		return fmt.Errorf("tier validation failed: %w", err)
	}

	if err := v.validateSettings(); err != nil {
		return fmt.Errorf("settings validation failed: %w", err)
	}

	if err := v.validateMasking(); err != nil {
		return fmt.Errorf("masking validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateLLMProviders() error {
	for name, provider := range v.cfg.LLMProviderRegistry.GetAll() {
		// Validate provider type
		if !provider.Type.IsValid() {
			return NewValidationError("llm_provider", name, "type", fmt.Errorf("invalid provider type: %s", provider.Type))
		}

		// Validate model is not empty
		if provider.Model == "" {
			return NewValidationError("llm_provider", name, "model", fmt.Errorf("%w: model", ErrMissingRequiredField))
		}

		// Validate output token ceiling if specified
		if provider.MaxOutputTokens < 0 {
			return NewValidationError("llm_provider", name, "max_output_tokens", fmt.Errorf("must not be negative"))
		}

		// API key presence is checked at call time by the key rotator, not
		// here: a deployment may configure providers it never routes to.
	}

	return nil
}

func (v *ConfigValidator) validateTiers() error {
	tiers := &v.cfg.Settings.Tiers

	for _, entry := range []struct {
		tier   Tier
		models TierModels
	}{
		{TierFast, tiers.Fast},
		{TierSmart, tiers.Smart},
		{TierStrategic, tiers.Strategic},
	} {
		if len(entry.models.Models) == 0 {
			return NewValidationError("tier", string(entry.tier), "models", fmt.Errorf("at least one model required"))
		}
		if entry.models.MaxTokens < 0 {
			return NewValidationError("tier", string(entry.tier), "max_tokens", fmt.Errorf("must not be negative"))
		}

		// Every tier model must resolve to a provider entry
		for _, model := range entry.models.Models {
			if _, err := v.cfg.LLMProviderRegistry.ByModel(model); err != nil {
				return NewValidationError("tier", string(entry.tier), "models",
					fmt.Errorf("%w: model '%s' has no provider entry", ErrInvalidReference, model))
			}
		}
	}

	for node, tier := range tiers.NodeTiers {
		if !tier.IsValid() {
			return NewValidationError("tier", node, "node_tiers", fmt.Errorf("invalid tier: %s", tier))
		}
	}

	return nil
}

func (v *ConfigValidator) validateSettings() error {
	s := v.cfg.Settings

	if s.LLM.Temperature < 0 || s.LLM.Temperature > 2 {
		return NewValidationError("settings", "llm", "temperature", fmt.Errorf("must be between 0 and 2"))
	}
	if s.LLM.MaxTokens < 1 {
		return NewValidationError("settings", "llm", "max_tokens", fmt.Errorf("must be at least 1"))
	}

	if !s.Search.Provider.IsValid() {
		return NewValidationError("settings", "search", "provider", fmt.Errorf("invalid search provider: %s", s.Search.Provider))
	}
	if !s.Search.Depth.IsValid() {
		return NewValidationError("settings", "search", "search_depth", fmt.Errorf("invalid search depth: %s", s.Search.Depth))
	}
	if s.Search.Provider == SearchProviderSearxNG && s.Search.BaseURL == "" {
		return NewValidationError("settings", "search", "base_url", fmt.Errorf("%w: base_url (required for searxng)", ErrMissingRequiredField))
	}
	if s.Search.MaxResults < 1 {
		return NewValidationError("settings", "search", "max_results", fmt.Errorf("must be at least 1"))
	}
	if s.Search.MinRelevance < 0 || s.Search.MinRelevance > 1 {
		return NewValidationError("settings", "search", "min_relevance", fmt.Errorf("must be between 0 and 1"))
	}

	if !s.Scraping.Engine.IsValid() {
		return NewValidationError("settings", "scraping", "engine", fmt.Errorf("invalid scrape engine: %s", s.Scraping.Engine))
	}
	if s.Scraping.MaxConcurrent < 1 {
		return NewValidationError("settings", "scraping", "max_concurrent", fmt.Errorf("must be at least 1"))
	}
	if s.Scraping.Timeout <= 0 {
		return NewValidationError("settings", "scraping", "timeout", fmt.Errorf("must be positive"))
	}
	if s.Scraping.MinQuality < 0 || s.Scraping.MinQuality > 1 {
		return NewValidationError("settings", "scraping", "min_quality", fmt.Errorf("must be between 0 and 1"))
	}

	if s.Budget.MaxCostPerRun <= 0 {
		return NewValidationError("settings", "costs", "max_cost_per_run", fmt.Errorf("must be positive"))
	}
	if s.Budget.MaxLLMCalls < 1 {
		return NewValidationError("settings", "costs", "max_llm_calls_per_run", fmt.Errorf("must be at least 1"))
	}
	if s.Budget.WarnAtPercent < 0 || s.Budget.WarnAtPercent > 100 {
		return NewValidationError("settings", "costs", "warn_at_percentage", fmt.Errorf("must be between 0 and 100"))
	}

	if s.Checkpoint.Enabled {
		if s.Checkpoint.Directory == "" {
			return NewValidationError("settings", "checkpoints", "directory", fmt.Errorf("%w: directory", ErrMissingRequiredField))
		}
		if s.Checkpoint.SaveInterval < 1 {
			return NewValidationError("settings", "checkpoints", "save_interval", fmt.Errorf("must be at least 1"))
		}
		if s.Checkpoint.MaxCheckpoints < 1 {
			return NewValidationError("settings", "checkpoints", "max_checkpoints", fmt.Errorf("must be at least 1"))
		}
	}

	if !s.Report.Format.IsValid() {
		return NewValidationError("settings", "report", "format", fmt.Errorf("invalid report format: %s", s.Report.Format))
	}
	if s.Report.OutputDir == "" {
		return NewValidationError("settings", "report", "output_dir", fmt.Errorf("%w: output_dir", ErrMissingRequiredField))
	}
	if s.Report.MinCoverage < 0 || s.Report.MinCoverage > 1 {
		return NewValidationError("settings", "report", "min_coverage", fmt.Errorf("must be between 0 and 1"))
	}

	if s.Cache.Enabled && s.Cache.TTL <= 0 {
		return NewValidationError("settings", "cache", "ttl", fmt.Errorf("must be positive"))
	}

	if s.Rotation.Cooldown <= 0 {
		return NewValidationError("settings", "rotation", "cooldown", fmt.Errorf("must be positive"))
	}

	if s.Compaction.WindowSize < 1 {
		return NewValidationError("settings", "compaction", "window_size", fmt.Errorf("must be at least 1"))
	}
	if s.Compaction.MaxContextTokens < 1 {
		return NewValidationError("settings", "compaction", "max_context_tokens", fmt.Errorf("must be at least 1"))
	}

	if s.Recovery.MaxAttempts < 1 {
		return NewValidationError("settings", "recovery", "max_attempts", fmt.Errorf("must be at least 1"))
	}
	if s.Recovery.BreakerThreshold < 1 {
		return NewValidationError("settings", "recovery", "breaker_threshold", fmt.Errorf("must be at least 1"))
	}
	if s.Recovery.BackoffInitial <= 0 || s.Recovery.BackoffCap < s.Recovery.BackoffInitial {
		return NewValidationError("settings", "recovery", "backoff", fmt.Errorf("backoff_initial must be positive and backoff_cap must not be below it"))
	}
	if s.Recovery.DeadLetterLimit < 1 {
		return NewValidationError("settings", "recovery", "dead_letter_limit", fmt.Errorf("must be at least 1"))
	}

	if s.Memory.Enabled {
		if s.Memory.DatabasePath == "" {
			return NewValidationError("settings", "memory", "database_path", fmt.Errorf("%w: database_path", ErrMissingRequiredField))
		}
		if s.Memory.RelevanceThreshold < 0 || s.Memory.RelevanceThreshold > 1 {
			return NewValidationError("settings", "memory", "relevance_threshold", fmt.Errorf("must be between 0 and 1"))
		}
	}

	if s.API.Port < 1 || s.API.Port > 65535 {
		return NewValidationError("settings", "api", "port", fmt.Errorf("must be between 1 and 65535"))
	}
	if s.API.MaxConcurrentSessions < 1 {
		return NewValidationError("settings", "api", "max_concurrent_sessions", fmt.Errorf("must be at least 1"))
	}
	if s.API.QueueLimit < 0 {
		return NewValidationError("settings", "api", "queue_limit", fmt.Errorf("must not be negative"))
	}
	if s.API.RateLimitPerMinute < 1 {
		return NewValidationError("settings", "api", "rate_limit_per_minute", fmt.Errorf("must be at least 1"))
	}

	return nil
}

func (v *ConfigValidator) validateMasking() error {
	masking := v.cfg.Masking
	if masking == nil || !masking.Enabled {
		return nil
	}

	builtin := GetBuiltinConfig()

	// Validate pattern groups reference built-in patterns
	for _, groupName := range masking.PatternGroups {
		if _, exists := builtin.PatternGroups[groupName]; !exists {
			return NewValidationError("masking", "events", "pattern_groups", fmt.Errorf("pattern group '%s' not found", groupName))
		}
	}

	// Validate individual patterns reference built-in patterns or code maskers
	for _, patternName := range masking.Patterns {
		if _, exists := builtin.MaskingPatterns[patternName]; exists {
			continue
		}
		if slices.Contains(builtin.CodeMaskers, patternName) {
			continue
		}
		return NewValidationError("masking", "events", "patterns", fmt.Errorf("pattern '%s' not found", patternName))
	}

	// Validate custom patterns have required fields
	for i, pattern := range masking.CustomPatterns {
		if pattern.Pattern == "" {
			return NewValidationError("masking", "events", fmt.Sprintf("custom_patterns[%d].pattern", i), fmt.Errorf("pattern required"))
		}
		if pattern.Replacement == "" {
			return NewValidationError("masking", "events", fmt.Sprintf("custom_patterns[%d].replacement", i), fmt.Errorf("replacement required"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue

	if q.WorkerCount < 1 {
		return NewValidationError("queue", "workers", "worker_count", fmt.Errorf("must be at least 1"))
	}
	if q.MaxConcurrentSessions < 1 {
		return NewValidationError("queue", "workers", "max_concurrent_sessions", fmt.Errorf("must be at least 1"))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue", "workers", "poll_interval", fmt.Errorf("must be positive"))
	}
	if q.SessionTimeout <= 0 {
		return NewValidationError("queue", "workers", "session_timeout", fmt.Errorf("must be positive"))
	}
	if q.OrphanThreshold <= 0 {
		return NewValidationError("queue", "workers", "orphan_threshold", fmt.Errorf("must be positive"))
	}

	return nil
}
