package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatAPI struct {
	lastParams openai.ChatCompletionNewParams
	resp       *openai.ChatCompletion
	err        error
}

func (s *stubChatAPI) New(_ context.Context, body openai.ChatCompletionNewParams, _ ...option.RequestOption) (*openai.ChatCompletion, error) {
	s.lastParams = body
	return s.resp, s.err
}

func openaiTextCompletion(text string) *openai.ChatCompletion {
	return &openai.ChatCompletion{
		Model: "gpt-4o",
		Choices: []openai.ChatCompletionChoice{{
			Message:      openai.ChatCompletionMessage{Content: text},
			FinishReason: "stop",
		}},
		Usage: openai.CompletionUsage{PromptTokens: 100, CompletionTokens: 20},
	}
}

func TestOpenAIGenerate_BuildsParams(t *testing.T) {
	stub := &stubChatAPI{resp: openaiTextCompletion("Paris.")}
	client := &OpenAIClient{chat: stub}

	resp, err := client.Generate(context.Background(), &Request{
		Model:  "gpt-4o",
		System: "You are terse.",
		Messages: []Message{
			{Role: RoleUser, Content: "Capital of France?"},
			{Role: RoleAssistant, Content: "Paris."},
			{Role: RoleUser, Content: "And of Spain?"},
		},
		Temperature: 0.3,
		MaxTokens:   2048,
	})
	require.NoError(t, err)

	params := stub.lastParams
	assert.Equal(t, "gpt-4o", string(params.Model))
	assert.Len(t, params.Messages, 4, "system prompt plus conversation")
	assert.InDelta(t, 0.3, params.Temperature.Value, 1e-9)
	assert.Equal(t, int64(2048), params.MaxCompletionTokens.Value)

	assert.Equal(t, "Paris.", resp.Content)
	assert.Equal(t, openaiProvider, resp.Provider)
	assert.Equal(t, "stop", resp.StopReason)
}

func TestOpenAIGenerate_ExtractsUsage(t *testing.T) {
	completion := openaiTextCompletion("answer")
	completion.Usage = openai.CompletionUsage{
		PromptTokens:     900,
		CompletionTokens: 80,
		PromptTokensDetails: openai.CompletionUsagePromptTokensDetails{
			CachedTokens: 600,
		},
	}
	stub := &stubChatAPI{resp: completion}
	client := &OpenAIClient{chat: stub}

	resp, err := client.Generate(context.Background(), &Request{
		Model:    "gpt-4o",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, Usage{InputTokens: 900, OutputTokens: 80, CacheReadTokens: 600}, resp.Usage)
}

func TestOpenAIGenerate_NoChoices(t *testing.T) {
	stub := &stubChatAPI{resp: &openai.ChatCompletion{}}
	client := &OpenAIClient{chat: stub}

	_, err := client.Generate(context.Background(), &Request{
		Model:    "gpt-4o-mini",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.ErrorIs(t, err, ErrEmptyResponse)
}

func TestOpenAIGenerate_WrapsProviderError(t *testing.T) {
	stub := &stubChatAPI{err: errors.New("upstream unavailable")}
	client := &OpenAIClient{chat: stub}

	_, err := client.Generate(context.Background(), &Request{
		Model:    "gpt-4o",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimited)
	assert.Contains(t, err.Error(), "openai chat.completions.new")
}
