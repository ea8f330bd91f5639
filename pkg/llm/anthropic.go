package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicProvider = "anthropic"

// messagesAPI is the slice of the Anthropic SDK the client uses. Keeping it
// narrow allows tests to substitute a fake without a live client.
type messagesAPI interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// AnthropicClient calls the Anthropic Messages API. The system prompt is sent
// as a cache-marked block so repeated calls with the same stable prefix bill
// at the cached-read rate.
type AnthropicClient struct {
	messages messagesAPI
}

// NewAnthropicClient builds a client backed by the official SDK. An empty
// apiKey defers to the SDK's ANTHROPIC_API_KEY environment resolution, and
// Request.APIKey can still override the key per call.
func NewAnthropicClient(apiKey string) *AnthropicClient {
	var opts []option.RequestOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	ac := sdk.NewClient(opts...)
	return &AnthropicClient{messages: &ac.Messages}
}

func (c *AnthropicClient) Provider() string { return anthropicProvider }

func (c *AnthropicClient) Close() error { return nil }

func (c *AnthropicClient) Generate(ctx context.Context, req *Request) (*Response, error) {
	params := sdk.MessageNewParams{
		Model:       sdk.Model(req.Model),
		MaxTokens:   defaultedMaxTokens(req.MaxTokens),
		Messages:    encodeAnthropicMessages(req.Messages),
		Temperature: sdk.Float(req.Temperature),
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{
			Text:         req.System,
			CacheControl: sdk.NewCacheControlEphemeralParam(),
		}}
	}

	var opts []option.RequestOption
	if req.APIKey != "" {
		opts = append(opts, option.WithAPIKey(req.APIKey))
	}

	msg, err := c.messages.New(ctx, params, opts...)
	if err != nil {
		if isAnthropicRateLimit(err) {
			return nil, fmt.Errorf("anthropic messages.new: %w: %w", ErrRateLimited, err)
		}
		return nil, fmt.Errorf("anthropic messages.new: %w", err)
	}

	var content strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			content.WriteString(block.Text)
		}
	}
	if content.Len() == 0 {
		return nil, fmt.Errorf("anthropic: %w", ErrEmptyResponse)
	}

	return &Response{
		Content:  content.String(),
		Model:    string(msg.Model),
		Provider: anthropicProvider,
		Usage: Usage{
			InputTokens:      int(msg.Usage.InputTokens),
			OutputTokens:     int(msg.Usage.OutputTokens),
			CacheReadTokens:  int(msg.Usage.CacheReadInputTokens),
			CacheWriteTokens: int(msg.Usage.CacheCreationInputTokens),
		},
		StopReason: string(msg.StopReason),
	}, nil
}

// encodeAnthropicMessages converts the conversation preserving order, since
// order is what makes the cached prefix stable. System turns never appear
// here; tool observations are sent as user turns because these calls carry
// no tool-use blocks to pair them with.
func encodeAnthropicMessages(messages []Message) []sdk.MessageParam {
	out := make([]sdk.MessageParam, 0, len(messages))
	for _, m := range messages {
		if m.Content == "" {
			continue
		}
		switch m.Role {
		case RoleAssistant:
			out = append(out, sdk.NewAssistantMessage(sdk.NewTextBlock(m.Content)))
		default:
			out = append(out, sdk.NewUserMessage(sdk.NewTextBlock(m.Content)))
		}
	}
	return out
}

func defaultedMaxTokens(n int64) int64 {
	if n <= 0 {
		return 4096
	}
	return n
}

func isAnthropicRateLimit(err error) bool {
	var apierr *sdk.Error
	return errors.As(err, &apierr) && apierr.StatusCode == http.StatusTooManyRequests
}
