package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"text/template"
	"time"
)

// EnvPrefix is the prefix for environment variable overrides. Section and
// field are joined with a double underscore, e.g.
// RESEARCH_AGENT_COSTS__MAX_COST_PER_RUN=1.50.
const EnvPrefix = "RESEARCH_AGENT_"

// ExpandEnv expands environment variables in YAML content using Go templates.
// Uses {{.VAR_NAME}} syntax to avoid collision with $ in regex patterns.
//
// This prevents conflicts with literal $ characters commonly found in:
//   - Regex patterns: ^secret.*$, price\$[0-9]+
//   - Passwords: p@ss$word
//   - Shell snippets: $PATH, ${ARRAY[0]}
//
// Examples:
//   - {{.TAVILY_API_KEY}} → value of TAVILY_API_KEY environment variable
//   - {{.DB_HOST}}:{{.DB_PORT}} → hostname:port with both variables expanded
//   - pattern: "user_${USER_ID}_.*" → preserved literally ($ not touched)
//
// Missing variables expand to empty string (unless template is malformed).
// Validation should catch required fields that are empty.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		// If template parsing fails, return original data
		// This allows YAML without any template syntax to pass through
		return data
	}

	// Build environment map for template
	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		// Split only on first = to handle values with = in them
		if idx := bytes.IndexByte([]byte(env), '='); idx > 0 {
			key := env[:idx]
			value := env[idx+1:]
			envMap[key] = value
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		// If execution fails, return original data
		return data
	}

	return buf.Bytes()
}

// applyEnvOverrides applies RESEARCH_AGENT_* environment variables on top of
// resolved settings. Env wins over YAML. Unparseable values are logged and
// skipped rather than failing startup.
func applyEnvOverrides(s *Defaults) {
	overrideString(&s.LLM.Provider, "LLM__PROVIDER")
	overrideString(&s.API.Host, "API__HOST")
	overrideInt(&s.API.Port, "API__PORT")
	overrideInt(&s.API.MaxConcurrentSessions, "API__MAX_CONCURRENT_SESSIONS")
	overrideInt(&s.API.QueueLimit, "API__QUEUE_LIMIT")
	overrideInt(&s.API.RateLimitPerMinute, "API__RATE_LIMIT_PER_MINUTE")
	overrideString(&s.API.KeysFile, "API__KEYS_FILE")
	overrideFloat(&s.Budget.MaxCostPerRun, "COSTS__MAX_COST_PER_RUN")
	overrideInt(&s.Budget.MaxLLMCalls, "COSTS__MAX_LLM_CALLS_PER_RUN")
	overrideBool(&s.Checkpoint.Enabled, "CHECKPOINTS__ENABLED")
	overrideString(&s.Checkpoint.Directory, "CHECKPOINTS__DIRECTORY")
	overrideString(&s.Report.OutputDir, "REPORT__OUTPUT_DIR")
	overrideInt(&s.Search.MaxResults, "SEARCH__MAX_RESULTS")
	overrideBool(&s.Cache.Enabled, "CACHE__ENABLED")
	overrideString(&s.Cache.Directory, "CACHE__DIRECTORY")
	overrideBool(&s.Memory.Enabled, "MEMORY__ENABLED")
	overrideString(&s.Memory.DatabasePath, "MEMORY__DATABASE_PATH")

	if raw, ok := os.LookupEnv(EnvPrefix + "SEARCH__PROVIDER"); ok {
		provider := SearchProvider(raw)
		if provider.IsValid() {
			s.Search.Provider = provider
		} else {
			slog.Warn("Ignoring invalid search provider override",
				"env", EnvPrefix+"SEARCH__PROVIDER", "value", raw)
		}
	}
}

func overrideString(target *string, suffix string) {
	if raw, ok := os.LookupEnv(EnvPrefix + suffix); ok && raw != "" {
		*target = raw
	}
}

func overrideInt(target *int, suffix string) {
	raw, ok := os.LookupEnv(EnvPrefix + suffix)
	if !ok {
		return
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("Ignoring unparseable integer override",
			"env", EnvPrefix+suffix, "value", raw, "error", err)
		return
	}
	*target = v
}

func overrideFloat(target *float64, suffix string) {
	raw, ok := os.LookupEnv(EnvPrefix + suffix)
	if !ok {
		return
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Warn("Ignoring unparseable float override",
			"env", EnvPrefix+suffix, "value", raw, "error", err)
		return
	}
	*target = v
}

func overrideBool(target *bool, suffix string) {
	raw, ok := os.LookupEnv(EnvPrefix + suffix)
	if !ok {
		return
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("Ignoring unparseable boolean override",
			"env", EnvPrefix+suffix, "value", raw, "error", err)
		return
	}
	*target = v
}

// parseDurationSetting parses a duration string from YAML with field context.
func parseDurationSetting(field, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidValue, field, err)
	}
	return d, nil
}
