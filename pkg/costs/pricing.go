package costs

import "strings"

// ModelPricing holds per-million-token USD prices.
type ModelPricing struct {
	InputPerMtok  float64
	OutputPerMtok float64
}

// defaultPricing applies when a model has no table entry.
var defaultPricing = ModelPricing{InputPerMtok: 5.00, OutputPerMtok: 15.00}

// modelPricing is keyed by model ID. PricingFor falls back to the longest
// key that prefixes the requested ID, so newly versioned releases of a
// known family resolve without a table change.
var modelPricing = map[string]ModelPricing{
	"claude-sonnet-4-5-20250929": {InputPerMtok: 3.00, OutputPerMtok: 15.00},
	"claude-haiku-3-5-20241022":  {InputPerMtok: 0.80, OutputPerMtok: 4.00},
	"claude-sonnet-4-5":          {InputPerMtok: 3.00, OutputPerMtok: 15.00},
	"claude-haiku-3-5":           {InputPerMtok: 0.80, OutputPerMtok: 4.00},
	"gpt-4o":                     {InputPerMtok: 2.50, OutputPerMtok: 10.00},
	"gpt-4o-mini":                {InputPerMtok: 0.15, OutputPerMtok: 0.60},
}

// PricingFor resolves pricing for a model ID: exact match first, then the
// longest table key prefixing the ID, then the default rate.
func PricingFor(model string) ModelPricing {
	if p, ok := modelPricing[model]; ok {
		return p
	}
	best := ""
	for key := range modelPricing {
		if strings.HasPrefix(model, key) && len(key) > len(best) {
			best = key
		}
	}
	if best != "" {
		return modelPricing[best]
	}
	return defaultPricing
}

// EstimateCost converts token counts to USD for the given model.
func EstimateCost(model string, inputTokens, outputTokens int) float64 {
	p := PricingFor(model)
	return (float64(inputTokens)*p.InputPerMtok + float64(outputTokens)*p.OutputPerMtok) / 1_000_000
}
