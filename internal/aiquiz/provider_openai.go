package aiquiz

import (
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/saulo-duarte/quizgen/internal/config"
)

type openaiProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider talks to the chat-completions endpoint. baseURL may point
// at any OpenAI-compatible gateway; empty keeps the public API.
func NewOpenAIProvider(apiKey, baseURL, model string) Provider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &openaiProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (p *openaiProvider) Complete(ctx context.Context, c Completion) (string, error) {
	log := config.WithContext(ctx)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.System},
			{Role: openai.ChatMessageRoleUser, Content: c.User},
		},
		MaxTokens:   c.MaxTokens,
		Temperature: c.Temperature,
	})
	if err != nil {
		log.WithError(err).Error("OpenAI chat completion failed")
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	raw := resp.Choices[0].Message.Content
	log.Debugf("[AIQUIZ] Raw OpenAI response:\n%s", raw)
	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyResponse
	}
	return raw, nil
}
