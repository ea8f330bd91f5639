package masking

import (
	"os"
	"strings"
)

// envKeyMinLen guards against masking trivially short values that would
// shred unrelated text when replaced.
const envKeyMinLen = 8

// EnvKeyMasker masks the literal values of provider API keys taken from
// the process environment. The regex patterns catch well-known key shapes;
// this masker catches keys in formats the patterns don't know about
// (Tavily, self-hosted gateways) because it matches the exact values the
// process was started with.
type EnvKeyMasker struct {
	values []string
}

// NewEnvKeyMasker snapshots API key values from the environment.
// Variables named *_API_KEY hold a single key; *_API_KEYS hold a
// comma-separated list.
func NewEnvKeyMasker() *EnvKeyMasker {
	m := &EnvKeyMasker{}
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || value == "" {
			continue
		}
		switch {
		case strings.HasSuffix(name, "_API_KEY"):
			m.add(value)
		case strings.HasSuffix(name, "_API_KEYS"):
			for _, v := range strings.Split(value, ",") {
				m.add(strings.TrimSpace(v))
			}
		}
	}
	return m
}

func (m *EnvKeyMasker) add(value string) {
	if len(value) >= envKeyMinLen {
		m.values = append(m.values, value)
	}
}

// Name returns the unique identifier for this masker.
func (m *EnvKeyMasker) Name() string {
	return "env_api_keys"
}

// AppliesTo reports whether any known key value occurs in the data.
func (m *EnvKeyMasker) AppliesTo(data string) bool {
	for _, v := range m.values {
		if strings.Contains(data, v) {
			return true
		}
	}
	return false
}

// Mask replaces every occurrence of a known key value.
func (m *EnvKeyMasker) Mask(data string) string {
	for _, v := range m.values {
		data = strings.ReplaceAll(data, v, "***MASKED_API_KEY***")
	}
	return data
}
