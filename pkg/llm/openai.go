package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const openaiProvider = "openai"

// chatCompletionsAPI is the slice of the OpenAI SDK the client uses.
type chatCompletionsAPI interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// OpenAIClient calls the OpenAI Chat Completions API. OpenAI applies prompt
// caching automatically to long stable prefixes, so unlike Anthropic there is
// no cache marker to set; the reported cached token counts are still
// surfaced in Usage.
type OpenAIClient struct {
	chat chatCompletionsAPI
}

// NewOpenAIClient builds a client backed by the official SDK. An empty
// apiKey defers to the SDK's OPENAI_API_KEY environment resolution.
func NewOpenAIClient(apiKey string) *OpenAIClient {
	var opts []option.RequestOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	oc := openai.NewClient(opts...)
	return &OpenAIClient{chat: &oc.Chat.Completions}
}

func (c *OpenAIClient) Provider() string { return openaiProvider }

func (c *OpenAIClient) Close() error { return nil }

func (c *OpenAIClient) Generate(ctx context.Context, req *Request) (*Response, error) {
	params := openai.ChatCompletionNewParams{
		Model:               shared.ChatModel(req.Model),
		Messages:            encodeOpenAIMessages(req.System, req.Messages),
		Temperature:         openai.Float(req.Temperature),
		MaxCompletionTokens: openai.Int(defaultedMaxTokens(req.MaxTokens)),
	}

	var opts []option.RequestOption
	if req.APIKey != "" {
		opts = append(opts, option.WithAPIKey(req.APIKey))
	}

	completion, err := c.chat.New(ctx, params, opts...)
	if err != nil {
		if isOpenAIRateLimit(err) {
			return nil, fmt.Errorf("openai chat.completions.new: %w: %w", ErrRateLimited, err)
		}
		return nil, fmt.Errorf("openai chat.completions.new: %w", err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("openai: %w", ErrEmptyResponse)
	}
	choice := completion.Choices[0]

	return &Response{
		Content:  choice.Message.Content,
		Model:    completion.Model,
		Provider: openaiProvider,
		Usage: Usage{
			InputTokens:     int(completion.Usage.PromptTokens),
			OutputTokens:    int(completion.Usage.CompletionTokens),
			CacheReadTokens: int(completion.Usage.PromptTokensDetails.CachedTokens),
		},
		StopReason: string(choice.FinishReason),
	}, nil
}

func encodeOpenAIMessages(system string, messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)+1)
	if system != "" {
		out = append(out, openai.SystemMessage(system))
	}
	for _, m := range messages {
		if m.Content == "" {
			continue
		}
		switch m.Role {
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}

func isOpenAIRateLimit(err error) bool {
	var apierr *openai.Error
	return errors.As(err, &apierr) && apierr.StatusCode == http.StatusTooManyRequests
}
