package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ResearchAgentYAMLConfig represents the complete research-agent.yaml file
// structure. Sections are pointers so an absent section falls through to
// built-in defaults untouched.
type ResearchAgentYAMLConfig struct {
	LLM         *LLMConfig            `yaml:"llm"`
	Search      *SearchConfig         `yaml:"search"`
	Scraping    *ScrapingConfig       `yaml:"scraping"`
	Costs       *BudgetConfig         `yaml:"costs"`
	Checkpoints *CheckpointYAMLConfig `yaml:"checkpoints"`
	Report      *ReportConfig         `yaml:"report"`
	Cache       *CacheYAMLConfig      `yaml:"cache"`
	Rotation    *RotationConfig       `yaml:"rotation"`
	Compaction  *CompactionConfig     `yaml:"compaction"`
	Recovery    *RecoveryConfig       `yaml:"recovery"`
	Memory      *MemoryYAMLConfig     `yaml:"memory"`
	API         *APIConfig            `yaml:"api"`
	Tiers       *TiersConfig          `yaml:"tiers"`
	Queue       *QueueConfig          `yaml:"queue"`
	Retention   *RetentionConfig      `yaml:"retention"`
	Masking     *MaskingConfig        `yaml:"masking"`
}

// CheckpointYAMLConfig mirrors CheckpointConfig with a tri-state Enabled.
// nil means "use default" (enabled), explicit false disables.
type CheckpointYAMLConfig struct {
	Enabled        *bool  `yaml:"enabled,omitempty"`
	Directory      string `yaml:"directory,omitempty"`
	SaveInterval   int    `yaml:"save_interval,omitempty"`
	MaxCheckpoints int    `yaml:"max_checkpoints,omitempty"`
}

// CacheYAMLConfig mirrors CacheConfig with a tri-state Enabled.
type CacheYAMLConfig struct {
	Enabled        *bool    `yaml:"enabled,omitempty"`
	Directory      string   `yaml:"directory,omitempty"`
	TTL            string   `yaml:"ttl,omitempty"` // Parsed to time.Duration
	MaxTemperature *float64 `yaml:"max_temperature,omitempty"`
}

// MemoryYAMLConfig mirrors MemoryConfig with a tri-state Enabled.
type MemoryYAMLConfig struct {
	Enabled            *bool   `yaml:"enabled,omitempty"`
	DatabasePath       string  `yaml:"database_path,omitempty"`
	Collection         string  `yaml:"collection,omitempty"`
	StalenessDays      int     `yaml:"staleness_days,omitempty"`
	RelevanceThreshold float64 `yaml:"relevance_threshold,omitempty"`
	MaxResults         int     `yaml:"max_results,omitempty"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Resolution order (last wins):
//  1. Built-in defaults
//  2. research-agent.yaml / llm-providers.yaml from configDir
//  3. RESEARCH_AGENT_* environment variables
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	// 1. Load configuration files
	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Validate all configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"llm_providers", stats.LLMProviders,
		"tier_models", stats.TierModels,
		"node_tiers", stats.NodeTiers)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load research-agent.yaml (sections + queue + masking). A missing
	// file is not an error: defaults plus environment keys are a complete
	// configuration.
	yamlConfig, err := loader.loadResearchAgentYAML()
	if err != nil {
		return nil, NewLoadError("research-agent.yaml", err)
	}

	// 2. Load llm-providers.yaml (also optional)
	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 4. Merge built-in + user-defined providers (user overrides built-in)
	llmProvidersMerged := mergeLLMProviders(builtin.LLMProviders, llmProviders)

	// 5. Resolve settings: defaults, then YAML sections, then env overrides
	settings, err := resolveSettings(yamlConfig)
	if err != nil {
		return nil, err
	}
	applyEnvOverrides(settings)

	// 6. Resolve queue config (merge user YAML with built-in defaults)
	queueConfig := DefaultQueueConfig()
	if yamlConfig.Queue != nil {
		if err := mergo.Merge(queueConfig, yamlConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	// 7. Resolve retention config
	retentionConfig := DefaultRetentionConfig()
	if yamlConfig.Retention != nil {
		if err := mergo.Merge(retentionConfig, yamlConfig.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	// 8. Resolve masking config
	maskingConfig := resolveMaskingConfig(yamlConfig.Masking)

	// 9. Build registry
	llmProviderRegistry := NewLLMProviderRegistry(llmProvidersMerged)

	return &Config{
		configDir:           configDir,
		Settings:            settings,
		Queue:               queueConfig,
		Retention:           retentionConfig,
		Masking:             maskingConfig,
		LLMProviderRegistry: llmProviderRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

// loadYAML reads and parses one optional config file. Returns (false, nil)
// when the file does not exist.
func (l *configLoader) loadYAML(filename string, target any) (bool, error) {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return true, nil
}

func (l *configLoader) loadResearchAgentYAML() (*ResearchAgentYAMLConfig, error) {
	var config ResearchAgentYAMLConfig

	found, err := l.loadYAML("research-agent.yaml", &config)
	if err != nil {
		return nil, err
	}
	if !found {
		slog.Info("No research-agent.yaml found, using built-in defaults",
			"config_dir", l.configDir)
	}

	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]LLMProviderConfig, error) {
	var config LLMProvidersYAMLConfig

	// Initialize map to avoid nil map
	config.LLMProviders = make(map[string]LLMProviderConfig)

	if _, err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		return nil, err
	}

	return config.LLMProviders, nil
}

// resolveSettings merges YAML sections over built-in defaults. Value
// sections go through mergo (non-zero fields override); sections with
// tri-state booleans are resolved field by field.
func resolveSettings(yamlConfig *ResearchAgentYAMLConfig) (*Defaults, error) {
	settings := DefaultSettings()

	valueSections := []struct {
		name string
		dst  any
		src  any
	}{
		{"llm", &settings.LLM, yamlConfig.LLM},
		{"search", &settings.Search, yamlConfig.Search},
		{"scraping", &settings.Scraping, yamlConfig.Scraping},
		{"costs", &settings.Budget, yamlConfig.Costs},
		{"report", &settings.Report, yamlConfig.Report},
		{"rotation", &settings.Rotation, yamlConfig.Rotation},
		{"compaction", &settings.Compaction, yamlConfig.Compaction},
		{"recovery", &settings.Recovery, yamlConfig.Recovery},
		{"api", &settings.API, yamlConfig.API},
		{"tiers", &settings.Tiers, yamlConfig.Tiers},
	}
	for _, section := range valueSections {
		if isNilSection(section.src) {
			continue
		}
		if err := mergo.Merge(section.dst, section.src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge %s config: %w", section.name, err)
		}
	}

	resolveCheckpointConfig(&settings.Checkpoint, yamlConfig.Checkpoints)
	if err := resolveCacheConfig(&settings.Cache, yamlConfig.Cache); err != nil {
		return nil, err
	}
	resolveMemoryConfig(&settings.Memory, yamlConfig.Memory)

	return settings, nil
}

func isNilSection(src any) bool {
	switch v := src.(type) {
	case *LLMConfig:
		return v == nil
	case *SearchConfig:
		return v == nil
	case *ScrapingConfig:
		return v == nil
	case *BudgetConfig:
		return v == nil
	case *ReportConfig:
		return v == nil
	case *RotationConfig:
		return v == nil
	case *CompactionConfig:
		return v == nil
	case *RecoveryConfig:
		return v == nil
	case *APIConfig:
		return v == nil
	case *TiersConfig:
		return v == nil
	default:
		return src == nil
	}
}

// resolveCheckpointConfig applies YAML checkpoint settings over defaults.
func resolveCheckpointConfig(cfg *CheckpointConfig, y *CheckpointYAMLConfig) {
	if y == nil {
		return
	}
	if y.Enabled != nil {
		cfg.Enabled = *y.Enabled
	}
	if y.Directory != "" {
		cfg.Directory = y.Directory
	}
	if y.SaveInterval > 0 {
		cfg.SaveInterval = y.SaveInterval
	}
	if y.MaxCheckpoints > 0 {
		cfg.MaxCheckpoints = y.MaxCheckpoints
	}
}

// resolveCacheConfig applies YAML cache settings over defaults.
func resolveCacheConfig(cfg *CacheConfig, y *CacheYAMLConfig) error {
	if y == nil {
		return nil
	}
	if y.Enabled != nil {
		cfg.Enabled = *y.Enabled
	}
	if y.Directory != "" {
		cfg.Directory = y.Directory
	}
	if y.TTL != "" {
		d, err := parseDurationSetting("cache.ttl", y.TTL)
		if err != nil {
			return err
		}
		cfg.TTL = d
	}
	if y.MaxTemperature != nil {
		cfg.MaxTemperature = *y.MaxTemperature
	}
	return nil
}

// resolveMemoryConfig applies YAML memory settings over defaults.
func resolveMemoryConfig(cfg *MemoryConfig, y *MemoryYAMLConfig) {
	if y == nil {
		return
	}
	if y.Enabled != nil {
		cfg.Enabled = *y.Enabled
	}
	if y.DatabasePath != "" {
		cfg.DatabasePath = y.DatabasePath
	}
	if y.Collection != "" {
		cfg.Collection = y.Collection
	}
	if y.StalenessDays > 0 {
		cfg.StalenessDays = y.StalenessDays
	}
	if y.RelevanceThreshold > 0 {
		cfg.RelevanceThreshold = y.RelevanceThreshold
	}
	if y.MaxResults > 0 {
		cfg.MaxResults = y.MaxResults
	}
}

// resolveMaskingConfig resolves event masking from YAML, applying defaults.
// Masking defaults to enabled with the security pattern group.
func resolveMaskingConfig(y *MaskingConfig) *MaskingConfig {
	cfg := &MaskingConfig{
		Enabled:       true,
		PatternGroups: []string{"security"},
	}

	if y == nil {
		return cfg
	}

	cfg.Enabled = y.Enabled
	if len(y.PatternGroups) > 0 {
		cfg.PatternGroups = y.PatternGroups
	}
	if len(y.Patterns) > 0 {
		cfg.Patterns = y.Patterns
	}
	if len(y.CustomPatterns) > 0 {
		cfg.CustomPatterns = y.CustomPatterns
	}

	return cfg
}
