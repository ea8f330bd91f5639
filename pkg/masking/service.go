package masking

import (
	"log/slog"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
)

// Service applies credential masking to event payloads, error messages,
// and persisted session state. It is created once at startup, compiles
// every pattern eagerly, and is safe for concurrent use.
type Service struct {
	enabled            bool
	patterns           map[string]*CompiledPattern
	patternGroups      map[string][]string
	customPatternNames []string
	codeMaskers        map[string]Masker
	resolved           *resolvedPatterns
}

// NewService creates a masking service from the masking config.
// A nil config disables masking entirely.
func NewService(cfg *config.MaskingConfig) *Service {
	s := &Service{
		enabled:       cfg != nil && cfg.Enabled,
		patterns:      make(map[string]*CompiledPattern),
		patternGroups: config.GetBuiltinConfig().PatternGroups,
		codeMaskers:   make(map[string]Masker),
	}

	// 1. Compile all built-in regex patterns
	s.compileBuiltinPatterns()

	// 2. Compile custom patterns from the config
	if cfg != nil {
		s.compileCustomPatterns(cfg.CustomPatterns)
	}

	// 3. Register code-based maskers
	s.registerMasker(NewEnvKeyMasker())

	// 4. Resolve the configured pattern set once; it never changes at runtime
	if s.enabled {
		s.resolved = s.resolvePatterns(cfg)
	} else {
		s.resolved = &resolvedPatterns{}
	}

	slog.Info("Masking service initialized",
		"enabled", s.enabled,
		"compiled_patterns", len(s.patterns),
		"active_patterns", len(s.resolved.regexPatterns),
		"code_maskers", len(s.resolved.codeMaskerNames))

	return s
}

// registerMasker adds a code-based masker to the registry.
func (s *Service) registerMasker(m Masker) {
	s.codeMaskers[m.Name()] = m
}

// Enabled reports whether masking is active.
func (s *Service) Enabled() bool {
	return s.enabled
}

// Mask scrubs credentials from data. Code-based maskers run first because
// they match exact known values; the regex patterns then sweep for
// well-known key shapes. Masking never fails: maskers return their input
// unchanged on internal errors and regex replacement cannot error.
func (s *Service) Mask(data string) string {
	if !s.enabled || data == "" {
		return data
	}

	masked := data

	// Phase 1: Code-based maskers
	for _, name := range s.resolved.codeMaskerNames {
		masker, ok := s.codeMaskers[name]
		if !ok {
			slog.Warn("Unknown code masker referenced in config", "masker", name)
			continue
		}
		if masker.AppliesTo(masked) {
			masked = masker.Mask(masked)
		}
	}

	// Phase 2: Regex patterns
	for _, pattern := range s.resolved.regexPatterns {
		masked = pattern.Regex.ReplaceAllString(masked, pattern.Replacement)
	}

	return masked
}

// MaskError scrubs an error's message. Nil errors yield an empty string.
func (s *Service) MaskError(err error) string {
	if err == nil {
		return ""
	}
	return s.Mask(err.Error())
}
