package aiquiz

import (
	"context"
	"fmt"
	"strings"

	"github.com/saulo-duarte/quizgen/internal/config"
	"google.golang.org/genai"
)

// Completion is one system+user exchange with the generation model.
type Completion struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float32
	// JSON asks providers that support it to constrain output to JSON.
	JSON bool
}

type Provider interface {
	Complete(ctx context.Context, c Completion) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) Complete(ctx context.Context, c Completion) (string, error) {
	log := config.WithContext(ctx)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(c.System, genai.RoleUser),
		Temperature:       genai.Ptr(c.Temperature),
		MaxOutputTokens:   int32(c.MaxTokens),
	}
	if c.JSON {
		cfg.ResponseMIMEType = "application/json"
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(c.User), cfg)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return "", err
	}

	raw := result.Text()
	log.Debugf("[AIQUIZ] Raw Gemini response:\n%s", raw)
	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyResponse
	}
	return raw, nil
}
