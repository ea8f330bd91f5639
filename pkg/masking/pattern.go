package masking

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// resolvedPatterns holds the resolved set of maskers and patterns for a masking operation.
type resolvedPatterns struct {
	codeMaskerNames []string           // Names of code-based maskers to apply
	regexPatterns   []*CompiledPattern // Compiled regex patterns to apply
}

// compileBuiltinPatterns compiles all built-in regex patterns from config.
// Invalid patterns are logged and skipped.
func (s *Service) compileBuiltinPatterns() {
	for name, pattern := range config.GetBuiltinConfig().MaskingPatterns {
		compiled, err := regexp.Compile(pattern.Pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		s.patterns[name] = &CompiledPattern{
			Name:        name,
			Regex:       compiled,
			Replacement: pattern.Replacement,
			Description: pattern.Description,
		}
	}
}

// compileCustomPatterns compiles custom patterns from the masking config.
// Custom patterns are keyed as "custom:{index}" to avoid collisions with
// built-in names.
func (s *Service) compileCustomPatterns(patterns []config.MaskingPattern) {
	for i, pattern := range patterns {
		name := fmt.Sprintf("custom:%d", i)
		compiled, err := regexp.Compile(pattern.Pattern)
		if err != nil {
			slog.Error("Failed to compile custom masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		s.patterns[name] = &CompiledPattern{
			Name:        name,
			Regex:       compiled,
			Replacement: pattern.Replacement,
			Description: pattern.Description,
		}
		s.customPatternNames = append(s.customPatternNames, name)
	}
}

// resolvePatterns expands a MaskingConfig into a deduplicated resolvedPatterns.
// Custom patterns are always active when masking is enabled.
func (s *Service) resolvePatterns(cfg *config.MaskingConfig) *resolvedPatterns {
	seen := make(map[string]bool)
	resolved := &resolvedPatterns{}
	builtin := config.GetBuiltinConfig()

	// 1. Expand pattern_groups → individual pattern names
	for _, groupName := range cfg.PatternGroups {
		groupPatterns, ok := s.patternGroups[groupName]
		if !ok {
			continue
		}
		for _, name := range groupPatterns {
			if seen[name] {
				continue
			}
			seen[name] = true
			s.addToResolved(resolved, name, builtin)
		}
	}

	// 2. Add individual patterns from cfg.Patterns
	for _, name := range cfg.Patterns {
		if seen[name] {
			continue
		}
		seen[name] = true
		s.addToResolved(resolved, name, builtin)
	}

	// 3. Add compiled custom patterns
	for _, name := range s.customPatternNames {
		if seen[name] {
			continue
		}
		seen[name] = true
		if cp, ok := s.patterns[name]; ok {
			resolved.regexPatterns = append(resolved.regexPatterns, cp)
		}
	}

	return resolved
}

// addToResolved adds a pattern name to the resolved set, categorizing it as
// either a code masker or a regex pattern.
func (s *Service) addToResolved(resolved *resolvedPatterns, name string, builtin *config.BuiltinConfig) {
	// Check if it's a code-based masker
	if slices.Contains(builtin.CodeMaskers, name) {
		resolved.codeMaskerNames = append(resolved.codeMaskerNames, name)
		return
	}

	// Otherwise, look up in compiled regex patterns
	if cp, ok := s.patterns[name]; ok {
		resolved.regexPatterns = append(resolved.regexPatterns, cp)
	}
}
