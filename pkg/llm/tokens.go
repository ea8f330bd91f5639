package llm

import (
	"log/slog"
	"math"
	"strings"
	"sync"

	"github.com/montanaflynn/stats"
	"github.com/pkoukk/tiktoken-go"
)

const (
	defaultEncoding = "cl100k_base"

	// perMessageOverhead and replyPriming approximate the chat framing
	// tokens providers add around message content.
	perMessageOverhead = 4
	replyPriming       = 2

	// defaultExpectedOutputTokens is assumed when the caller has no better
	// estimate of response length.
	defaultExpectedOutputTokens = 500
)

// encodingPrefixes maps model id prefixes to tokenizer encodings. Order
// matters: "gpt-4o" must be checked before "gpt-4".
var encodingPrefixes = []struct {
	prefix   string
	encoding string
}{
	{"claude", "cl100k_base"},
	{"gpt-4o", "o200k_base"},
	{"gpt-4", "cl100k_base"},
	{"gpt-3.5", "cl100k_base"},
}

func encodingForModel(model string) string {
	for _, e := range encodingPrefixes {
		if strings.HasPrefix(model, e.prefix) {
			return e.encoding
		}
	}
	return defaultEncoding
}

// Estimator counts tokens for budget pre-checks before a provider call is
// made. Tokenizers are constructed lazily and cached per encoding.
type Estimator struct {
	mu       sync.Mutex
	encoders map[string]*tiktoken.Tiktoken
}

func NewEstimator() *Estimator {
	return &Estimator{encoders: make(map[string]*tiktoken.Tiktoken)}
}

func (e *Estimator) encoder(model string) *tiktoken.Tiktoken {
	name := encodingForModel(model)

	e.mu.Lock()
	defer e.mu.Unlock()
	if enc, ok := e.encoders[name]; ok {
		return enc
	}
	enc, err := tiktoken.GetEncoding(name)
	if err != nil {
		slog.Warn("Failed to load tokenizer encoding, falling back to character estimate",
			"encoding", name, "error", err)
		e.encoders[name] = nil
		return nil
	}
	e.encoders[name] = enc
	return enc
}

// CountTokens returns the token count of text under the model's encoding.
// If the tokenizer cannot be loaded it falls back to len(text)/4.
func (e *Estimator) CountTokens(text, model string) int {
	if text == "" {
		return 0
	}
	enc := e.encoder(model)
	if enc == nil {
		return len(text) / 4
	}
	return len(enc.Encode(text, nil, nil))
}

// CountMessageTokens counts the tokens of a conversation including the
// per-message framing overhead and the assistant reply priming.
func (e *Estimator) CountMessageTokens(messages []Message, model string) int {
	total := 0
	for _, m := range messages {
		total += perMessageOverhead + e.CountTokens(m.Content, model)
	}
	return total + replyPriming
}

// EstimateCall returns the expected input and output token counts for a call.
// expectedOutput <= 0 selects defaultExpectedOutputTokens.
func (e *Estimator) EstimateCall(system string, messages []Message, model string, expectedOutput int) (inputTokens, outputTokens int) {
	inputTokens = e.CountMessageTokens(messages, model)
	if system != "" {
		inputTokens += perMessageOverhead + e.CountTokens(system, model)
	}
	outputTokens = expectedOutput
	if outputTokens <= 0 {
		outputTokens = defaultExpectedOutputTokens
	}
	return inputTokens, outputTokens
}

// EstimateTracker compares pre-call token estimates against the usage
// providers report, so estimation drift is visible in run summaries.
type EstimateTracker struct {
	mu        sync.Mutex
	errorPcts []float64
}

func NewEstimateTracker() *EstimateTracker {
	return &EstimateTracker{}
}

// Record stores the signed percent error of one estimate. A zero actual
// count records zero error rather than dividing by it.
func (t *EstimateTracker) Record(estimated, actual int) {
	pct := 0.0
	if actual != 0 {
		pct = float64(estimated-actual) / float64(actual) * 100
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.errorPcts = append(t.errorPcts, pct)
}

// MeanErrorPercent returns the signed mean error. Positive means estimates
// run high.
func (t *EstimateTracker) MeanErrorPercent() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.errorPcts) == 0 {
		return 0
	}
	mean, err := stats.Mean(t.errorPcts)
	if err != nil {
		return 0
	}
	return mean
}

// MeanAbsoluteErrorPercent returns the mean of absolute errors, the headline
// accuracy number.
func (t *EstimateTracker) MeanAbsoluteErrorPercent() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.errorPcts) == 0 {
		return 0
	}
	abs := make([]float64, len(t.errorPcts))
	for i, p := range t.errorPcts {
		abs[i] = math.Abs(p)
	}
	mean, err := stats.Mean(abs)
	if err != nil {
		return 0
	}
	return mean
}

// Summary reports sample count and both error means rounded to two decimals.
func (t *EstimateTracker) Summary() map[string]any {
	t.mu.Lock()
	samples := len(t.errorPcts)
	t.mu.Unlock()

	return map[string]any{
		"samples":                samples,
		"mean_error_percent":     round2(t.MeanErrorPercent()),
		"mean_abs_error_percent": round2(t.MeanAbsoluteErrorPercent()),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
