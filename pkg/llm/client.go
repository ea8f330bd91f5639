// Package llm routes chat completions to hosted model providers with tiered
// model selection, key rotation, deterministic response caching, and budget
// enforcement. Callers interact with the Router; individual provider clients
// satisfy the Client interface and stay unaware of routing policy.
package llm

import (
	"context"
	"errors"
)

// Role identifies the author of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

var (
	// ErrRateLimited wraps provider 429 responses so the router can rotate
	// keys instead of burning retry attempts.
	ErrRateLimited = errors.New("provider rate limited")

	// ErrNoKeysAvailable is returned by the key rotator when a provider has
	// no configured keys or every key is cooling down.
	ErrNoKeysAvailable = errors.New("no API keys available")

	// ErrEmptyResponse is returned when a provider call succeeds at the
	// transport level but carries no usable content.
	ErrEmptyResponse = errors.New("empty model response")
)

// Message is one turn of a provider-neutral conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Request is a provider-neutral chat completion request.
//
// The message order is significant for provider-side prompt caching: the
// system prompt and the prior conversation form a stable prefix, and only the
// latest message varies between calls. Providers mark the stable prefix with
// cache-control hints where their API supports it.
type Request struct {
	// Model is the provider model identifier. The Router fills it in from
	// the tier chain; direct Client callers set it themselves.
	Model string

	// System is the system prompt, kept separate from Messages because
	// providers encode it differently.
	System string

	Messages    []Message
	MaxTokens   int64
	Temperature float64

	// PromptVersion is a hash of the prompt templates that produced this
	// request. It participates in the response cache key so edited prompts
	// never replay stale completions.
	PromptVersion string

	// APIKey overrides the provider default key resolution for this call.
	// Empty means the client resolves its key from the environment.
	APIKey string
}

// Usage is the token accounting returned by a provider.
type Usage struct {
	InputTokens      int `json:"input_tokens"`
	OutputTokens     int `json:"output_tokens"`
	CacheReadTokens  int `json:"cache_read_tokens"`
	CacheWriteTokens int `json:"cache_write_tokens"`
}

// Response is a provider-neutral chat completion result.
type Response struct {
	Content    string `json:"content"`
	Model      string `json:"model"`
	Provider   string `json:"provider"`
	Usage      Usage  `json:"usage"`
	StopReason string `json:"stop_reason,omitempty"`

	// FromCache is true when the response was served from the local
	// response cache without a provider call.
	FromCache bool `json:"from_cache,omitempty"`

	// CostUSD is the recorded cost of the call. Zero for cached responses.
	CostUSD float64 `json:"cost_usd,omitempty"`

	// BudgetWarning is true exactly once per run, on the response whose
	// recorded cost first crossed the budget warn threshold.
	BudgetWarning bool `json:"budget_warning,omitempty"`
}

// Client is a single-provider chat completion client.
type Client interface {
	// Generate performs one chat completion. Implementations return
	// ErrRateLimited (wrapped) on provider 429s.
	Generate(ctx context.Context, req *Request) (*Response, error)

	// Provider returns the provider name, e.g. "anthropic".
	Provider() string

	Close() error
}
