package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/costs"
)

// ErrModelRouting is returned when every model in a tier's fallback chain
// failed or no provider client was usable.
var ErrModelRouting = errors.New("model routing failed")

// RouterConfig carries the router's collaborators. Budget, Degradation,
// Rotator, Cache, PromptCache and Estimates may be nil, which disables the
// corresponding behavior; Clients defaults to live SDK clients resolving
// keys from the environment.
type RouterConfig struct {
	Tiers       config.TiersConfig
	Budget      *costs.BudgetTracker
	Degradation *costs.DegradationManager
	Rotator     *KeyRotator
	Cache       *DiskCache
	PromptCache *PromptCacheTracker
	Estimates   *EstimateTracker
	Clients     map[string]Client
}

// Router resolves each pipeline node's calls to a model tier and walks the
// tier's fallback chain until a provider answers. Every call passes the
// budget gate before any provider is contacted; budget errors are terminal
// and never routed around.
type Router struct {
	tiers       config.TiersConfig
	budget      *costs.BudgetTracker
	degradation *costs.DegradationManager
	rotator     *KeyRotator
	cache       *DiskCache
	promptCache *PromptCacheTracker
	estimates   *EstimateTracker
	estimator   *Estimator
	clients     map[string]Client
}

func NewRouter(cfg RouterConfig) *Router {
	clients := cfg.Clients
	if clients == nil {
		clients = map[string]Client{
			anthropicProvider: NewAnthropicClient(""),
			openaiProvider:    NewOpenAIClient(""),
		}
	}
	return &Router{
		tiers:       cfg.Tiers,
		budget:      cfg.Budget,
		degradation: cfg.Degradation,
		rotator:     cfg.Rotator,
		cache:       cfg.Cache,
		promptCache: cfg.PromptCache,
		estimates:   cfg.Estimates,
		estimator:   NewEstimator(),
		clients:     clients,
	}
}

// Generate routes one call for the named pipeline node.
//
// Resolution order per model in the chain:
//  1. budget pre-check against the estimated cost
//  2. local response cache
//  3. provider call with a rotated key, one retry on a fresh key after a 429
//
// Provider failures fall through to the next model in the chain; budget
// exhaustion aborts immediately.
func (r *Router) Generate(ctx context.Context, node string, req *Request) (*Response, error) {
	tier := r.tiers.TierForNode(node)
	tierModels := r.tiers.ForTier(tier)

	models := tierModels.Models
	if r.degradation != nil && tier != config.TierStrategic {
		if dt := r.degradation.Tier(); dt != costs.TierFull {
			models = r.degradation.FallbackChain()
			slog.Info("Routing with degraded model chain",
				"node", node, "tier", tier, "degradation", dt, "models", models)
		}
	}
	if len(models) == 0 {
		return nil, fmt.Errorf("no models configured for tier %q: %w", tier, ErrModelRouting)
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = tierModels.MaxTokens
	}

	var lastErr error
	for _, model := range models {
		provider := providerForModel(model)
		client, ok := r.clients[provider]
		if !ok {
			slog.Warn("No client for model's provider, skipping", "model", model, "provider", provider)
			continue
		}

		attempt := *req
		attempt.Model = model
		attempt.MaxTokens = maxTokens

		estIn, estOut := r.estimator.EstimateCall(req.System, req.Messages, model, 0)
		if r.budget != nil {
			if err := r.budget.CheckBudget(costs.EstimateCost(model, estIn, estOut)); err != nil {
				return nil, fmt.Errorf("routing %s call for node %q: %w", model, node, err)
			}
		}

		if cached := r.cache.Get(&attempt); cached != nil {
			slog.Debug("Serving LLM call from response cache", "node", node, "model", model)
			return cached, nil
		}

		resp, err := r.callWithRotation(ctx, client, provider, &attempt)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return nil, fmt.Errorf("routing call for node %q: %w", node, err)
			}
			slog.Warn("Model call failed, trying next in chain",
				"node", node, "model", model, "error", err)
			continue
		}

		r.settle(node, &attempt, resp, estIn)
		return resp, nil
	}

	if lastErr == nil {
		return nil, fmt.Errorf("no usable provider among tier %q models %v: %w", tier, models, ErrModelRouting)
	}
	return nil, fmt.Errorf("all models in tier %q failed for node %q: %w: %w", tier, node, ErrModelRouting, lastErr)
}

// callWithRotation performs the provider call with a rotated key. On a rate
// limit the key is benched and the call retried once on the next key; any
// further failure is the caller's to handle via the model chain.
func (r *Router) callWithRotation(ctx context.Context, client Client, provider string, req *Request) (*Response, error) {
	key := r.nextKey(provider)
	req.APIKey = key

	resp, err := client.Generate(ctx, req)
	if err == nil || !errors.Is(err, ErrRateLimited) {
		return resp, err
	}

	if key != "" && r.rotator != nil {
		r.rotator.MarkRateLimited(provider, key)
	}
	nextKey := r.nextKey(provider)
	if nextKey == "" || nextKey == key {
		return nil, err
	}

	slog.Info("Retrying rate-limited call on rotated key", "provider", provider)
	req.APIKey = nextKey
	return client.Generate(ctx, req)
}

// nextKey asks the rotator for a key, falling back to empty so the provider
// SDK resolves its own environment default.
func (r *Router) nextKey(provider string) string {
	if r.rotator == nil {
		return ""
	}
	key, err := r.rotator.GetKey(provider)
	if err != nil {
		slog.Debug("Key rotation unavailable, using provider default resolution",
			"provider", provider, "error", err)
		return ""
	}
	return key
}

// settle records cost and cache accounting for a completed provider call and
// annotates the response with the recorded cost.
func (r *Router) settle(node string, req *Request, resp *Response, estimatedInput int) {
	if r.estimates != nil {
		r.estimates.Record(estimatedInput, resp.Usage.InputTokens)
	}
	if r.promptCache != nil {
		r.promptCache.RecordCall(resp.Usage.InputTokens, resp.Usage.CacheReadTokens, resp.Usage.CacheWriteTokens)
	}

	if r.budget != nil {
		outcome, err := r.budget.Record(costs.CallRecord{
			Model:        resp.Model,
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			StepName:     node,
		})
		resp.CostUSD = outcome.CostUSD
		resp.BudgetWarning = outcome.WarningCrossed
		if err != nil {
			// The response is already paid for; the next pre-check
			// rejects further calls.
			slog.Warn("Budget exhausted after recording call", "node", node, "error", err)
		}
	}

	stored := *resp
	stored.CostUSD = 0
	stored.BudgetWarning = false
	r.cache.Put(req, &stored)
}

// Close releases all provider clients.
func (r *Router) Close() error {
	var errs []error
	for name, client := range r.clients {
		if err := client.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s client: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// providerForModel infers the hosting provider from the model id prefix.
func providerForModel(model string) string {
	switch {
	case strings.HasPrefix(model, "claude"):
		return anthropicProvider
	case strings.HasPrefix(model, "gpt"), strings.HasPrefix(model, "o1"),
		strings.HasPrefix(model, "o3"), strings.HasPrefix(model, "chatgpt"):
		return openaiProvider
	case strings.HasPrefix(model, "gemini"):
		return "google"
	default:
		return ""
	}
}
