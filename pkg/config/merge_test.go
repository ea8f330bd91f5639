package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeLLMProvidersUserOverridesBuiltin(t *testing.T) {
	builtin := map[string]LLMProviderConfig{
		"anthropic-sonnet": {
			Type:      ProviderTypeAnthropic,
			Model:     "claude-sonnet-4-5-20250929",
			APIKeyEnv: "ANTHROPIC_API_KEY",
		},
	}
	user := map[string]LLMProviderConfig{
		"anthropic-sonnet": {
			Type:      ProviderTypeAnthropic,
			Model:     "claude-sonnet-4-5-20250929",
			APIKeyEnv: "CUSTOM_KEY_VAR",
			BaseURL:   "https://proxy.internal/v1",
		},
		"extra": {
			Type:  ProviderTypeOpenAI,
			Model: "gpt-4o",
		},
	}

	merged := mergeLLMProviders(builtin, user)

	require.Len(t, merged, 2)
	assert.Equal(t, "CUSTOM_KEY_VAR", merged["anthropic-sonnet"].APIKeyEnv)
	assert.Equal(t, "https://proxy.internal/v1", merged["anthropic-sonnet"].BaseURL)
	assert.Equal(t, ProviderTypeOpenAI, merged["extra"].Type)
}

func TestMergeLLMProvidersCopies(t *testing.T) {
	builtin := map[string]LLMProviderConfig{
		"p": {Type: ProviderTypeOpenAI, Model: "gpt-4o"},
	}

	merged := mergeLLMProviders(builtin, nil)
	merged["p"].Model = "mutated"

	// Source map untouched
	assert.Equal(t, "gpt-4o", builtin["p"].Model)
}

func TestLLMProviderRegistry(t *testing.T) {
	registry := NewLLMProviderRegistry(map[string]*LLMProviderConfig{
		"a": {Type: ProviderTypeAnthropic, Model: "claude-sonnet-4-5-20250929"},
		"b": {Type: ProviderTypeOpenAI, Model: "gpt-4o"},
	})

	assert.Equal(t, 2, registry.Len())
	assert.True(t, registry.Has("a"))
	assert.False(t, registry.Has("z"))

	got, err := registry.Get("b")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", got.Model)

	_, err = registry.Get("missing")
	assert.ErrorIs(t, err, ErrLLMProviderNotFound)

	byModel, err := registry.ByModel("claude-sonnet-4-5-20250929")
	require.NoError(t, err)
	assert.Equal(t, ProviderTypeAnthropic, byModel.Type)

	_, err = registry.ByModel("unknown")
	assert.ErrorIs(t, err, ErrLLMProviderNotFound)
}
