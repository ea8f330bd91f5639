package llm

import (
	"context"
	"errors"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMessagesAPI struct {
	lastParams sdk.MessageNewParams
	resp       *sdk.Message
	err        error
}

func (s *stubMessagesAPI) New(_ context.Context, body sdk.MessageNewParams, _ ...option.RequestOption) (*sdk.Message, error) {
	s.lastParams = body
	return s.resp, s.err
}

func anthropicTextMessage(text string) *sdk.Message {
	return &sdk.Message{
		Model:      "claude-sonnet-4-5-20250929",
		StopReason: sdk.StopReasonEndTurn,
		Content:    []sdk.ContentBlockUnion{{Type: "text", Text: text}},
		Usage:      sdk.Usage{InputTokens: 10, OutputTokens: 5},
	}
}

func TestAnthropicGenerate_BuildsParams(t *testing.T) {
	stub := &stubMessagesAPI{resp: anthropicTextMessage("The capital is Paris.")}
	client := &AnthropicClient{messages: stub}

	resp, err := client.Generate(context.Background(), &Request{
		Model:  "claude-sonnet-4-5-20250929",
		System: "You are a research assistant.",
		Messages: []Message{
			{Role: RoleUser, Content: "Earlier question"},
			{Role: RoleAssistant, Content: "Earlier answer"},
			{Role: RoleUser, Content: "What is the capital of France?"},
		},
		Temperature: 0.2,
		MaxTokens:   2048,
	})
	require.NoError(t, err)

	params := stub.lastParams
	assert.Equal(t, sdk.Model("claude-sonnet-4-5-20250929"), params.Model)
	assert.Equal(t, int64(2048), params.MaxTokens)
	assert.Len(t, params.Messages, 3)
	require.Len(t, params.System, 1)
	assert.Equal(t, "You are a research assistant.", params.System[0].Text)

	assert.Equal(t, "The capital is Paris.", resp.Content)
	assert.Equal(t, anthropicProvider, resp.Provider)
	assert.Equal(t, string(sdk.StopReasonEndTurn), resp.StopReason)
}

func TestAnthropicGenerate_DefaultsMaxTokens(t *testing.T) {
	stub := &stubMessagesAPI{resp: anthropicTextMessage("ok")}
	client := &AnthropicClient{messages: stub}

	_, err := client.Generate(context.Background(), &Request{
		Model:    "claude-haiku-3-5-20241022",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4096), stub.lastParams.MaxTokens)
}

func TestAnthropicGenerate_ExtractsUsage(t *testing.T) {
	msg := anthropicTextMessage("answer")
	msg.Usage = sdk.Usage{
		InputTokens:              1000,
		OutputTokens:             50,
		CacheReadInputTokens:     700,
		CacheCreationInputTokens: 200,
	}
	stub := &stubMessagesAPI{resp: msg}
	client := &AnthropicClient{messages: stub}

	resp, err := client.Generate(context.Background(), &Request{
		Model:    "claude-sonnet-4-5-20250929",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, Usage{
		InputTokens:      1000,
		OutputTokens:     50,
		CacheReadTokens:  700,
		CacheWriteTokens: 200,
	}, resp.Usage)
}

func TestAnthropicGenerate_ConcatenatesTextBlocks(t *testing.T) {
	msg := anthropicTextMessage("first part. ")
	msg.Content = append(msg.Content, sdk.ContentBlockUnion{Type: "text", Text: "second part."})
	stub := &stubMessagesAPI{resp: msg}
	client := &AnthropicClient{messages: stub}

	resp, err := client.Generate(context.Background(), &Request{
		Model:    "claude-sonnet-4-5-20250929",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "first part. second part.", resp.Content)
}

func TestAnthropicGenerate_EmptyContent(t *testing.T) {
	stub := &stubMessagesAPI{resp: &sdk.Message{}}
	client := &AnthropicClient{messages: stub}

	_, err := client.Generate(context.Background(), &Request{
		Model:    "claude-sonnet-4-5-20250929",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.ErrorIs(t, err, ErrEmptyResponse)
}

func TestAnthropicGenerate_WrapsProviderError(t *testing.T) {
	stub := &stubMessagesAPI{err: errors.New("upstream unavailable")}
	client := &AnthropicClient{messages: stub}

	_, err := client.Generate(context.Background(), &Request{
		Model:    "claude-sonnet-4-5-20250929",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimited)
	assert.Contains(t, err.Error(), "anthropic messages.new")
}

func TestEncodeAnthropicMessages(t *testing.T) {
	encoded := encodeAnthropicMessages([]Message{
		{Role: RoleUser, Content: "question"},
		{Role: RoleAssistant, Content: "answer"},
		{Role: RoleTool, Content: "observation"},
		{Role: RoleUser, Content: ""},
	})

	// The empty message is dropped, the tool observation becomes a user
	// turn, and order is preserved.
	require.Len(t, encoded, 3)
	assert.Equal(t, "user", string(encoded[0].Role))
	assert.Equal(t, "assistant", string(encoded[1].Role))
	assert.Equal(t, "user", string(encoded[2].Role))
}
