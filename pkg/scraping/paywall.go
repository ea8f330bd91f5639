package scraping

import (
	"log/slog"
	"math"
	"regexp"
)

// paywallPattern is one weighted paywall indicator. Higher weight means a
// stronger signal that the page body is gated.
type paywallPattern struct {
	name   string
	re     *regexp.Regexp
	weight float64
}

var paywallPatterns = []paywallPattern{
	// Hard paywalls
	{"subscription_required", regexp.MustCompile(`(?i)subscribe\s+to\s+(read|continue|access|unlock)`), 3.0},
	{"subscribers_only", regexp.MustCompile(`(?i)(this\s+)?(article|content|story)\s+is\s+(for\s+)?(subscribers?|members?)\s+only`), 3.0},
	{"premium_content", regexp.MustCompile(`(?i)premium\s+(content|article|access)`), 2.5},
	{"paywall_class", regexp.MustCompile(`(?i)class\s*=\s*["'][^"']*paywall[^"']*["']`), 2.5},
	{"paywall_id", regexp.MustCompile(`(?i)id\s*=\s*["'][^"']*paywall[^"']*["']`), 2.5},

	// Login gates
	{"login_to_read", regexp.MustCompile(`(?i)(log\s*in|sign\s*in)\s+to\s+(read|continue|access|view)`), 2.0},
	{"create_account", regexp.MustCompile(`(?i)create\s+(a\s+)?(free\s+)?account\s+to\s+(read|continue|access)`), 2.0},
	{"registration_wall", regexp.MustCompile(`(?i)class\s*=\s*["'][^"']*regwall[^"']*["']`), 2.5},

	// Metered paywalls
	{"free_articles_remaining", regexp.MustCompile(`(?i)(you\s+have\s+)?\d+\s+(free\s+)?(articles?|stories?)\s+remaining`), 2.0},
	{"article_limit_reached", regexp.MustCompile(`(?i)(you.ve|you\s+have)\s+reached\s+(your|the)\s+(monthly\s+)?(article|reading)\s+limit`), 2.5},

	// Soft signals
	{"subscribe_now_button", regexp.MustCompile(`(?i)subscribe\s+now`), 1.0},
	{"unlock_article", regexp.MustCompile(`(?i)unlock\s+(this\s+)?(article|story|content)`), 2.0},
	{"continue_reading_cta", regexp.MustCompile(`(?i)(continue|keep)\s+reading\s+(with|for|by)\s+(a\s+)?subscription`), 2.5},
	{"trial_offer", regexp.MustCompile(`(?i)(start|begin)\s+(your\s+)?(free\s+)?trial`), 1.0},

	// Truncation markers
	{"content_truncated", regexp.MustCompile(`(?i)class\s*=\s*["'][^"']*truncat[^"']*["']`), 1.5},
	{"read_more_premium", regexp.MustCompile(`(?i)read\s+more\s+with\s+(a\s+)?subscription`), 2.5},

	// Overlay patterns
	{"overlay_modal", regexp.MustCompile(`(?i)class\s*=\s*["'][^"']*(?:paywall|subscribe)[-_]?(?:modal|overlay|popup|gate)[^"']*["']`), 3.0},
}

// Counter-signals that the content is freely readable; their weight is
// subtracted before thresholding.
var openAccessPatterns = []paywallPattern{
	{"open_access_badge", regexp.MustCompile(`(?i)class\s*=\s*["'][^"']*open[-_]?access[^"']*["']`), 2.0},
	{"creative_commons", regexp.MustCompile(`(?i)creative\s+commons`), 1.5},
	{"free_to_read", regexp.MustCompile(`(?i)free\s+to\s+read`), 1.5},
}

// PaywallSignal is one matched indicator.
type PaywallSignal struct {
	PatternName string  `json:"pattern_name"`
	MatchedText string  `json:"matched_text,omitempty"`
	Weight      float64 `json:"weight"`
}

// PaywallResult is the outcome of a detection pass.
type PaywallResult struct {
	IsPaywalled     bool            `json:"is_paywalled"`
	Confidence      float64         `json:"confidence"`
	DetectedSignals []PaywallSignal `json:"detected_signals,omitempty"`
	TotalWeight     float64         `json:"total_weight"`
}

// PaywallDetector flags paywalled, login-gated and metered pages before
// extraction so truncated teasers never reach summarization.
type PaywallDetector struct {
	threshold float64
}

// NewPaywallDetector uses a weight threshold; the default 3.0 requires one
// strong signal or several weak ones.
func NewPaywallDetector(threshold float64) *PaywallDetector {
	if threshold <= 0 {
		threshold = 3.0
	}
	return &PaywallDetector{threshold: threshold}
}

// Detect scans raw HTML for weighted paywall signals, offset by open-access
// counter-signals.
func (d *PaywallDetector) Detect(html string) PaywallResult {
	if html == "" {
		return PaywallResult{}
	}

	var signals []PaywallSignal
	total := 0.0
	for _, p := range paywallPatterns {
		match := p.re.FindString(html)
		if match == "" {
			continue
		}
		if len(match) > 100 {
			match = match[:100]
		}
		signals = append(signals, PaywallSignal{PatternName: p.name, MatchedText: match, Weight: p.weight})
		total += p.weight
	}

	openWeight := 0.0
	for _, p := range openAccessPatterns {
		if p.re.MatchString(html) {
			openWeight += p.weight
		}
	}

	adjusted := math.Max(0, total-openWeight)
	confidence := 0.0
	if adjusted > 0 {
		confidence = math.Min(1.0, adjusted/(d.threshold*2))
	}

	result := PaywallResult{
		IsPaywalled:     adjusted >= d.threshold,
		Confidence:      round3(confidence),
		DetectedSignals: signals,
		TotalWeight:     round2(adjusted),
	}
	if result.IsPaywalled {
		slog.Info("Paywall detected",
			"signals", len(signals), "total_weight", result.TotalWeight, "confidence", result.Confidence)
	}
	return result
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
