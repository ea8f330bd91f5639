package config

// Config is the umbrella configuration object that encapsulates all
// resolved settings and registries. This is the primary object returned by
// Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Resolved settings (built-in defaults merged with YAML and env)
	Settings *Defaults

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Data retention configuration
	Retention *RetentionConfig

	// Event masking configuration
	Masking *MaskingConfig

	// LLM provider registry (built-in merged with llm-providers.yaml)
	LLMProviderRegistry *LLMProviderRegistry
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	LLMProviders int
	TierModels   int
	NodeTiers    int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	if c.Settings != nil {
		s.TierModels = len(c.Settings.Tiers.Fast.Models) +
			len(c.Settings.Tiers.Smart.Models) +
			len(c.Settings.Tiers.Strategic.Models)
		s.NodeTiers = len(c.Settings.Tiers.NodeTiers)
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetLLMProvider retrieves an LLM provider configuration by name.
// This is a convenience method that wraps LLMProviderRegistry.Get().
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

// ProviderForModel retrieves the provider entry serving the given model ID.
// This is a convenience method that wraps LLMProviderRegistry.ByModel().
func (c *Config) ProviderForModel(model string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.ByModel(model)
}
