package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple substitution with {{.VAR}}",
			input: "api_key_env: {{.TAVILY_API_KEY}}",
			env:   map[string]string{"TAVILY_API_KEY": "tvly-secret123"},
			want:  "api_key_env: tvly-secret123",
		},
		{
			name:  "literal ${VAR} is NOT expanded (no collision)",
			input: "pattern: ${USER_ID}",
			env:   map[string]string{"USER_ID": "123"},
			want:  "pattern: ${USER_ID}",
		},
		{
			name:  "literal $VAR is NOT expanded (no collision)",
			input: "regex: ^secret.*$",
			env:   map[string]string{},
			want:  "regex: ^secret.*$",
		},
		{
			name:  "multiple substitutions in one line",
			input: "base_url: {{.PROTOCOL}}://{{.HOST}}:{{.PORT}}",
			env: map[string]string{
				"PROTOCOL": "https",
				"HOST":     "searx.internal",
				"PORT":     "443",
			},
			want: "base_url: https://searx.internal:443",
		},
		{
			name:  "missing variable expands to empty",
			input: "endpoint: {{.MISSING_VAR}}",
			env:   map[string]string{},
			want:  "endpoint: ",
		},
		{
			name:  "no substitution when no variables",
			input: "static: value",
			env:   map[string]string{"UNUSED": "value"},
			want:  "static: value",
		},
		{
			name:  "variables in nested YAML structure",
			input: "search:\n  base_url: {{.SEARX_URL}}\n  max_results: {{.MAX_RESULTS}}",
			env: map[string]string{
				"SEARX_URL":   "http://localhost:8888",
				"MAX_RESULTS": "5",
			},
			want: "search:\n  base_url: http://localhost:8888\n  max_results: 5",
		},
		{
			name:  "special characters in expanded value",
			input: "password: {{.PASSWORD}}",
			env:   map[string]string{"PASSWORD": "p@ssw0rd!#$%"},
			want:  "password: p@ssw0rd!#$%",
		},
		{
			name:  "regex pattern with $ preserved",
			input: `pattern: "^\\$[0-9]+$"`,
			env:   map[string]string{},
			want:  `pattern: "^\\$[0-9]+$"`,
		},
		{
			name:  "empty string variable",
			input: "value: {{.EMPTY}}",
			env:   map[string]string{"EMPTY": ""},
			want:  "value: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v) // Automatic cleanup after test
			}

			result := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(result))
		})
	}
}

// TestExpandEnvMalformedTemplates verifies that malformed template syntax
// is passed through unchanged rather than causing errors. This allows the
// YAML parser to handle the content or fail with a clearer error message.
func TestExpandEnvMalformedTemplates(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "unclosed template - missing closing braces",
			input: "api_key: {{.API_KEY",
		},
		{
			name:  "malformed variable name - missing dot",
			input: "api_key: {{API_KEY}}",
		},
		{
			name:  "unclosed with valid YAML around it",
			input: "host: localhost\napi_key: {{.API_KEY\nport: 8000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("API_KEY", "should-not-appear")

			result := ExpandEnv([]byte(tt.input))

			assert.Equal(t, tt.input, string(result),
				"Malformed template should be passed through unchanged")
			assert.NotContains(t, string(result), "should-not-appear",
				"Malformed template should not expand environment variables")
		})
	}
}

// TestExpandEnvPassThroughToYAMLParser verifies that when ExpandEnv returns
// original data due to template errors, the YAML parser can still process it.
func TestExpandEnvPassThroughToYAMLParser(t *testing.T) {
	input := `
search:
  provider: tavily
  api_key_env: "{{.TAVILY_KEY"
`

	expanded := ExpandEnv([]byte(input))

	var result map[string]any
	err := yaml.Unmarshal(expanded, &result)
	assert.NoError(t, err, "Malformed template treated as string literal, YAML parses")
	assert.NotNil(t, result)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("RESEARCH_AGENT_API__PORT", "9100")
	t.Setenv("RESEARCH_AGENT_COSTS__MAX_COST_PER_RUN", "1.25")
	t.Setenv("RESEARCH_AGENT_CHECKPOINTS__ENABLED", "false")
	t.Setenv("RESEARCH_AGENT_SEARCH__PROVIDER", "serper")
	t.Setenv("RESEARCH_AGENT_REPORT__OUTPUT_DIR", "/tmp/reports")

	settings := DefaultSettings()
	applyEnvOverrides(settings)

	assert.Equal(t, 9100, settings.API.Port)
	assert.Equal(t, 1.25, settings.Budget.MaxCostPerRun)
	assert.False(t, settings.Checkpoint.Enabled)
	assert.Equal(t, SearchProviderSerper, settings.Search.Provider)
	assert.Equal(t, "/tmp/reports", settings.Report.OutputDir)
}

func TestApplyEnvOverridesIgnoresUnparseable(t *testing.T) {
	t.Setenv("RESEARCH_AGENT_API__PORT", "not-a-number")
	t.Setenv("RESEARCH_AGENT_SEARCH__PROVIDER", "bing")

	settings := DefaultSettings()
	applyEnvOverrides(settings)

	// Defaults survive unparseable overrides
	assert.Equal(t, 8000, settings.API.Port)
	assert.Equal(t, SearchProviderTavily, settings.Search.Provider)
}
