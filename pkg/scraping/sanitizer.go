package scraping

import (
	"log/slog"
	"regexp"
)

// Patterns for elements removed entirely, tag and content.
var stripElements = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<script[\s>].*?</script>`),
	regexp.MustCompile(`(?is)<style[\s>].*?</style>`),
	regexp.MustCompile(`(?is)<iframe[\s>].*?</iframe>`),
	regexp.MustCompile(`(?is)<object[\s>].*?</object>`),
	regexp.MustCompile(`(?i)<embed[^>]*>`),
	regexp.MustCompile(`(?is)<noscript[\s>].*?</noscript>`),
}

// Attribute patterns stripped in place: hidden-element styling leaves text
// an LLM would read but a human never sees.
var hiddenAttrPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)style\s*=\s*"[^"]*display\s*:\s*none[^"]*"`),
	regexp.MustCompile(`(?i)style\s*=\s*'[^']*display\s*:\s*none[^']*'`),
	regexp.MustCompile(`(?i)style\s*=\s*"[^"]*visibility\s*:\s*hidden[^"]*"`),
	regexp.MustCompile(`(?i)style\s*=\s*'[^']*visibility\s*:\s*hidden[^']*'`),
	regexp.MustCompile(`(?i)aria-hidden\s*=\s*"true"`),
	regexp.MustCompile(`(?i)hidden\s*=\s*"[^"]*"`),
}

var (
	commentPattern      = regexp.MustCompile(`(?s)<!--.*?-->`)
	eventHandlerPattern = regexp.MustCompile(`\s+on\w+\s*=\s*["'][^"']*["']`)
	dataAttrPattern     = regexp.MustCompile(`\s+data-[\w-]+\s*=\s*["'][^"']*["']`)
)

// Conversation boundary markers that could steer downstream LLM calls.
// Each match is replaced with "[REMOVED]".
var injectionMarkers = []*regexp.Regexp{
	regexp.MustCompile(`<\|im_start\|>`),
	regexp.MustCompile(`<\|im_end\|>`),
	regexp.MustCompile(`\[INST\]`),
	regexp.MustCompile(`\[/INST\]`),
	regexp.MustCompile(`<<SYS>>`),
	regexp.MustCompile(`<</SYS>>`),
	regexp.MustCompile(`(?m)^Human:`),
	regexp.MustCompile(`(?m)^Assistant:`),
	regexp.MustCompile(`<\|system\|>`),
	regexp.MustCompile(`<\|user\|>`),
	regexp.MustCompile(`<\|assistant\|>`),
	regexp.MustCompile(`(?i)ignore\s+(previous|above|all)\s+instructions`),
	regexp.MustCompile(`(?i)system\s*:\s*you\s+are`),
}

// SanitizationResult reports one sanitization pass.
type SanitizationResult struct {
	OriginalLength        int    `json:"original_length"`
	SanitizedLength       int    `json:"sanitized_length"`
	ElementsRemoved       int    `json:"elements_removed"`
	InjectionMarkersFound int    `json:"injection_markers_found"`
	SanitizedHTML         string `json:"-"`
}

// Sanitizer strips script/style/iframe/object/embed/noscript elements,
// comments, event handlers, data-* attributes and hidden-element styling,
// and neutralizes prompt-injection boundary markers.
type Sanitizer struct {
	maxOutputLength int
}

func NewSanitizer(maxOutputLength int) *Sanitizer {
	if maxOutputLength <= 0 {
		maxOutputLength = 500_000
	}
	return &Sanitizer{maxOutputLength: maxOutputLength}
}

// Sanitize cleans raw HTML for LLM consumption.
func (s *Sanitizer) Sanitize(html string) SanitizationResult {
	working := html
	removed := 0

	for _, pattern := range stripElements {
		removed += len(pattern.FindAllStringIndex(working, -1))
		working = pattern.ReplaceAllString(working, "")
	}

	removed += len(commentPattern.FindAllStringIndex(working, -1))
	working = commentPattern.ReplaceAllString(working, "")

	working = eventHandlerPattern.ReplaceAllString(working, "")
	working = dataAttrPattern.ReplaceAllString(working, "")

	injections := 0
	for _, marker := range injectionMarkers {
		injections += len(marker.FindAllStringIndex(working, -1))
		working = marker.ReplaceAllString(working, "[REMOVED]")
	}
	if injections > 0 {
		slog.Warn("Prompt injection markers neutralized in scraped content", "count", injections)
	}

	for _, pattern := range hiddenAttrPatterns {
		working = pattern.ReplaceAllString(working, "")
	}

	if len(working) > s.maxOutputLength {
		working = working[:s.maxOutputLength]
	}

	return SanitizationResult{
		OriginalLength:        len(html),
		SanitizedLength:       len(working),
		ElementsRemoved:       removed,
		InjectionMarkersFound: injections,
		SanitizedHTML:         working,
	}
}
