package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/costs"
)

type fakeResult struct {
	resp *Response
	err  error
}

type fakeClient struct {
	provider string
	calls    []Request
	results  []fakeResult
}

func newFakeClient(provider string, results ...fakeResult) *fakeClient {
	return &fakeClient{provider: provider, results: results}
}

func (f *fakeClient) Generate(_ context.Context, req *Request) (*Response, error) {
	f.calls = append(f.calls, *req)
	if len(f.results) == 0 {
		return nil, errors.New("fake client exhausted")
	}
	r := f.results[0]
	f.results = f.results[1:]
	return r.resp, r.err
}

func (f *fakeClient) Provider() string { return f.provider }
func (f *fakeClient) Close() error     { return nil }

func ok(model string) fakeResult {
	return fakeResult{resp: &Response{
		Content:  "ok",
		Model:    model,
		Provider: providerForModel(model),
		Usage:    Usage{InputTokens: 1000, OutputTokens: 100},
	}}
}

func fail(err error) fakeResult {
	return fakeResult{err: err}
}

func newTestBudget(maxCost float64) *costs.BudgetTracker {
	return costs.NewBudgetTracker(config.BudgetConfig{
		MaxCostPerRun: maxCost,
		MaxLLMCalls:   50,
		WarnAtPercent: 80,
	})
}

func planRequest() *Request {
	return &Request{
		System:   "You are a research planner.",
		Messages: []Message{{Role: RoleUser, Content: "Plan research on solid-state batteries."}},
	}
}

func TestRouterGenerate_RoutesNodeToTierChain(t *testing.T) {
	anthropic := newFakeClient("anthropic", ok("claude-sonnet-4-5-20250929"))
	openai := newFakeClient("openai")
	budget := newTestBudget(2.00)

	r := NewRouter(RouterConfig{
		Tiers:   config.DefaultSettings().Tiers,
		Budget:  budget,
		Clients: map[string]Client{"anthropic": anthropic, "openai": openai},
	})

	resp, err := r.Generate(context.Background(), "plan", planRequest())
	require.NoError(t, err)

	require.Len(t, anthropic.calls, 1)
	assert.Equal(t, "claude-sonnet-4-5-20250929", anthropic.calls[0].Model)
	assert.Empty(t, openai.calls)

	assert.Equal(t, "ok", resp.Content)
	assert.InDelta(t, 0.0045, resp.CostUSD, 1e-9)
	assert.Equal(t, 1, budget.TotalCalls())
}

func TestRouterGenerate_StrategicTierRaisesMaxTokens(t *testing.T) {
	anthropic := newFakeClient("anthropic", ok("claude-sonnet-4-5-20250929"))
	r := NewRouter(RouterConfig{
		Tiers:   config.DefaultSettings().Tiers,
		Budget:  newTestBudget(2.00),
		Clients: map[string]Client{"anthropic": anthropic},
	})

	_, err := r.Generate(context.Background(), "synthesize", planRequest())
	require.NoError(t, err)

	require.Len(t, anthropic.calls, 1)
	assert.Equal(t, int64(8192), anthropic.calls[0].MaxTokens)
}

func TestRouterGenerate_FallsBackAcrossProviders(t *testing.T) {
	anthropic := newFakeClient("anthropic", fail(errors.New("overloaded")))
	openai := newFakeClient("openai", ok("gpt-4o"))

	r := NewRouter(RouterConfig{
		Tiers:   config.DefaultSettings().Tiers,
		Budget:  newTestBudget(2.00),
		Clients: map[string]Client{"anthropic": anthropic, "openai": openai},
	})

	resp, err := r.Generate(context.Background(), "plan", planRequest())
	require.NoError(t, err)

	assert.Len(t, anthropic.calls, 1)
	require.Len(t, openai.calls, 1)
	assert.Equal(t, "gpt-4o", openai.calls[0].Model)
	assert.Equal(t, "openai", resp.Provider)
}

func TestRouterGenerate_BudgetPreCheckRejectsBeforeAnyCall(t *testing.T) {
	anthropic := newFakeClient("anthropic", ok("claude-sonnet-4-5-20250929"))
	openai := newFakeClient("openai", ok("gpt-4o"))

	r := NewRouter(RouterConfig{
		Tiers:   config.DefaultSettings().Tiers,
		Budget:  newTestBudget(0.000001),
		Clients: map[string]Client{"anthropic": anthropic, "openai": openai},
	})

	_, err := r.Generate(context.Background(), "plan", planRequest())
	require.ErrorIs(t, err, costs.ErrBudgetExhausted)

	assert.Empty(t, anthropic.calls, "no provider is contacted after a budget rejection")
	assert.Empty(t, openai.calls)
}

func TestRouterGenerate_ServesSecondCallFromCache(t *testing.T) {
	anthropic := newFakeClient("anthropic", ok("claude-sonnet-4-5-20250929"))
	budget := newTestBudget(2.00)
	cache := newTestCache(t, time.Hour)

	r := NewRouter(RouterConfig{
		Tiers:   config.DefaultSettings().Tiers,
		Budget:  budget,
		Cache:   cache,
		Clients: map[string]Client{"anthropic": anthropic},
	})

	first, err := r.Generate(context.Background(), "plan", planRequest())
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	second, err := r.Generate(context.Background(), "plan", planRequest())
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Content, second.Content)
	assert.Zero(t, second.CostUSD)

	assert.Len(t, anthropic.calls, 1, "the cached call never reaches the provider")
	assert.Equal(t, 1, budget.TotalCalls(), "cached calls are free")
}

func TestRouterGenerate_RateLimitRotatesToNextKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEYS", "key-one-FAKE,key-two-FAKE")

	rateLimited := fmt.Errorf("anthropic messages.new: %w: too many requests", ErrRateLimited)
	anthropic := newFakeClient("anthropic", fail(rateLimited), ok("claude-sonnet-4-5-20250929"))
	rotator := NewKeyRotator(time.Minute)

	r := NewRouter(RouterConfig{
		Tiers:   config.DefaultSettings().Tiers,
		Budget:  newTestBudget(2.00),
		Rotator: rotator,
		Clients: map[string]Client{"anthropic": anthropic},
	})

	resp, err := r.Generate(context.Background(), "plan", planRequest())
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)

	require.Len(t, anthropic.calls, 2)
	assert.Equal(t, "key-one-FAKE", anthropic.calls[0].APIKey)
	assert.Equal(t, "key-two-FAKE", anthropic.calls[1].APIKey)

	stats := rotator.Stats()
	assert.Equal(t, KeyStats{Total: 2, Available: 1}, stats["anthropic"])
}

func TestRouterGenerate_AllModelsFailed(t *testing.T) {
	anthropic := newFakeClient("anthropic", fail(errors.New("overloaded")))
	openai := newFakeClient("openai", fail(errors.New("quota exceeded")))

	r := NewRouter(RouterConfig{
		Tiers:   config.DefaultSettings().Tiers,
		Budget:  newTestBudget(2.00),
		Clients: map[string]Client{"anthropic": anthropic, "openai": openai},
	})

	_, err := r.Generate(context.Background(), "plan", planRequest())
	require.ErrorIs(t, err, ErrModelRouting)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestRouterGenerate_NoUsableProvider(t *testing.T) {
	tiers := config.DefaultSettings().Tiers
	tiers.Smart = config.TierModels{Models: []string{"gemini-pro"}}

	r := NewRouter(RouterConfig{
		Tiers:   tiers,
		Budget:  newTestBudget(2.00),
		Clients: map[string]Client{"anthropic": newFakeClient("anthropic")},
	})

	_, err := r.Generate(context.Background(), "plan", planRequest())
	require.ErrorIs(t, err, ErrModelRouting)
	assert.Contains(t, err.Error(), "no usable provider")
}

func TestRouterGenerate_DegradedChainSparesStrategic(t *testing.T) {
	budget := newTestBudget(1.00)
	degradation := costs.NewDegradationManager(budget)

	// Spend 70% of the budget so smart-tier traffic degrades to the
	// REDUCED chain while strategic keeps its primary model.
	_, err := budget.Record(costs.CallRecord{Model: "claude-sonnet-4-5-20250929", CostUSD: 0.70, StepName: "plan"})
	require.NoError(t, err)

	anthropic := newFakeClient("anthropic",
		ok("claude-haiku-3-5-20241022"),
		ok("claude-sonnet-4-5-20250929"),
	)

	r := NewRouter(RouterConfig{
		Tiers:       config.DefaultSettings().Tiers,
		Budget:      budget,
		Degradation: degradation,
		Clients:     map[string]Client{"anthropic": anthropic},
	})

	_, err = r.Generate(context.Background(), "summarize", planRequest())
	require.NoError(t, err)
	_, err = r.Generate(context.Background(), "synthesize", planRequest())
	require.NoError(t, err)

	require.Len(t, anthropic.calls, 2)
	assert.Equal(t, "claude-haiku-3-5-20241022", anthropic.calls[0].Model)
	assert.Equal(t, "claude-sonnet-4-5-20250929", anthropic.calls[1].Model)
}

func TestRouterGenerate_BudgetWarningSurfaced(t *testing.T) {
	// The recorded call costs $0.021, crossing 80% of a $0.025 budget,
	// while the pre-call estimate stays within it.
	heavy := fakeResult{resp: &Response{
		Content:  "ok",
		Model:    "claude-sonnet-4-5-20250929",
		Provider: "anthropic",
		Usage:    Usage{InputTokens: 2000, OutputTokens: 1000},
	}}
	anthropic := newFakeClient("anthropic", heavy)

	r := NewRouter(RouterConfig{
		Tiers:   config.DefaultSettings().Tiers,
		Budget:  newTestBudget(0.025),
		Clients: map[string]Client{"anthropic": anthropic},
	})

	resp, err := r.Generate(context.Background(), "plan", planRequest())
	require.NoError(t, err)
	assert.True(t, resp.BudgetWarning)
	assert.InDelta(t, 0.021, resp.CostUSD, 1e-9)
}

func TestRouterGenerate_RecordsPromptCacheAndEstimates(t *testing.T) {
	result := ok("claude-sonnet-4-5-20250929")
	result.resp.Usage.CacheReadTokens = 400
	anthropic := newFakeClient("anthropic", result)

	promptCache := NewPromptCacheTracker()
	estimates := NewEstimateTracker()

	r := NewRouter(RouterConfig{
		Tiers:       config.DefaultSettings().Tiers,
		Budget:      newTestBudget(2.00),
		PromptCache: promptCache,
		Estimates:   estimates,
		Clients:     map[string]Client{"anthropic": anthropic},
	})

	_, err := r.Generate(context.Background(), "plan", planRequest())
	require.NoError(t, err)

	summary := promptCache.Summary()
	assert.Equal(t, 1, summary["total_calls"])
	assert.Equal(t, 1, summary["cache_hits"])
	assert.Equal(t, 1000, summary["total_input_tokens"])

	assert.Equal(t, 1, estimates.Summary()["samples"])
}
