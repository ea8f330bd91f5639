package config

import (
	"sync"
)

// BuiltinConfig holds all built-in configuration data.
// This provides default LLM providers and masking patterns so the agent is
// usable with nothing but API keys in the environment.
type BuiltinConfig struct {
	LLMProviders    map[string]LLMProviderConfig
	MaskingPatterns map[string]MaskingPattern
	PatternGroups   map[string][]string
	CodeMaskers     []string
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		LLMProviders:    initBuiltinLLMProviders(),
		MaskingPatterns: initBuiltinMaskingPatterns(),
		PatternGroups:   initBuiltinPatternGroups(),
		CodeMaskers:     []string{"env_api_keys"},
	}
}

// initBuiltinLLMProviders defines one provider entry per built-in tier model.
// User entries in llm-providers.yaml override by name.
func initBuiltinLLMProviders() map[string]LLMProviderConfig {
	return map[string]LLMProviderConfig{
		"anthropic-sonnet": {
			Type:      ProviderTypeAnthropic,
			Model:     "claude-sonnet-4-5-20250929",
			APIKeyEnv: "ANTHROPIC_API_KEY",
		},
		"anthropic-haiku": {
			Type:      ProviderTypeAnthropic,
			Model:     "claude-haiku-3-5-20241022",
			APIKeyEnv: "ANTHROPIC_API_KEY",
		},
		"openai-gpt4o": {
			Type:      ProviderTypeOpenAI,
			Model:     "gpt-4o",
			APIKeyEnv: "OPENAI_API_KEY",
		},
		"openai-gpt4o-mini": {
			Type:      ProviderTypeOpenAI,
			Model:     "gpt-4o-mini",
			APIKeyEnv: "OPENAI_API_KEY",
		},
	}
}

// initBuiltinMaskingPatterns defines the regex patterns used to scrub
// credentials from logs, events, and stored state.
func initBuiltinMaskingPatterns() map[string]MaskingPattern {
	return map[string]MaskingPattern{
		"anthropic_api_key": {
			Pattern:     `sk-ant-[A-Za-z0-9\-_]{20,}`,
			Replacement: "***MASKED_ANTHROPIC_KEY***",
			Description: "Anthropic API keys",
		},
		"openai_api_key": {
			Pattern:     `sk-(?:proj-)?[A-Za-z0-9\-_]{20,}`,
			Replacement: "***MASKED_OPENAI_KEY***",
			Description: "OpenAI API keys",
		},
		"agent_api_key": {
			Pattern:     `ra_[A-Za-z0-9\-_]{20,}`,
			Replacement: "***MASKED_AGENT_KEY***",
			Description: "Research agent API keys",
		},
		"bearer_token": {
			Pattern:     `(?i)bearer\s+[A-Za-z0-9\-._~+/]{16,}=*`,
			Replacement: "***MASKED_BEARER_TOKEN***",
			Description: "HTTP bearer tokens",
		},
		"basic_auth_url": {
			Pattern:     `://[^/\s:@]+:[^/\s:@]+@`,
			Replacement: "://***MASKED_CREDENTIALS***@",
			Description: "URLs with embedded credentials",
		},
	}
}

// initBuiltinPatternGroups defines named groups of masking patterns.
// Group entries may name regex patterns or code maskers.
func initBuiltinPatternGroups() map[string][]string {
	return map[string][]string{
		"security": {
			"env_api_keys",
			"anthropic_api_key",
			"openai_api_key",
			"agent_api_key",
			"bearer_token",
			"basic_auth_url",
		},
		"llm_keys": {
			"env_api_keys",
			"anthropic_api_key",
			"openai_api_key",
		},
	}
}
