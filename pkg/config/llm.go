package config

import (
	"fmt"
	"sync"
)

// LLMProviderConfig defines one LLM provider entry from llm-providers.yaml.
// A provider entry binds a concrete model to the credentials and endpoint
// used to reach it.
type LLMProviderConfig struct {
	// Provider type (required)
	Type ProviderType `yaml:"type" validate:"required"`

	// Model name (required)
	Model string `yaml:"model" validate:"required"`

	// Environment variable name for the API key. Multi-key rotation reads
	// <PROVIDER>_API_KEYS (comma-separated) first, then this variable.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Optional custom endpoint/base URL
	BaseURL string `yaml:"base_url,omitempty"`

	// Output token ceiling for this provider; 0 uses the global default
	MaxOutputTokens int64 `yaml:"max_output_tokens,omitempty"`
}

// LLMProviderRegistry stores LLM provider configurations in memory with thread-safe access
type LLMProviderRegistry struct {
	providers map[string]*LLMProviderConfig
	mu        sync.RWMutex
}

// NewLLMProviderRegistry creates a new LLM provider registry
func NewLLMProviderRegistry(providers map[string]*LLMProviderConfig) *LLMProviderRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*LLMProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &LLMProviderRegistry{
		providers: copied,
	}
}

// Get retrieves an LLM provider configuration by name (thread-safe)
func (r *LLMProviderRegistry) Get(name string) (*LLMProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrLLMProviderNotFound, name)
	}
	return provider, nil
}

// ByModel retrieves the provider configuration serving the given model ID
// (thread-safe). The tier router uses this to resolve tier model lists to
// credentials.
func (r *LLMProviderRegistry) ByModel(model string) (*LLMProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, provider := range r.providers {
		if provider.Model == model {
			return provider, nil
		}
	}
	return nil, fmt.Errorf("%w: no provider serves model %s", ErrLLMProviderNotFound, model)
}

// GetAll returns all LLM provider configurations (thread-safe, returns copy)
func (r *LLMProviderRegistry) GetAll() map[string]*LLMProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make(map[string]*LLMProviderConfig, len(r.providers))
	for k, v := range r.providers {
		result[k] = v
	}
	return result
}

// Has checks if an LLM provider exists in the registry (thread-safe)
func (r *LLMProviderRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.providers[name]
	return exists
}

// Len returns the number of LLM providers in the registry (thread-safe)
func (r *LLMProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
