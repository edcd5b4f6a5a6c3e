package aiquiz

import (
	"context"

	"github.com/saulo-duarte/quizgen/internal/config"
	"github.com/saulo-duarte/quizgen/internal/knowledge"
)

type AIQuizContainer struct {
	Service Service
	Handler *Handler
}

func NewAIQuizContainer(ctx context.Context, cfg config.GenerationSettings, contexts knowledge.ContextProvider) *AIQuizContainer {
	provider := newProvider(ctx, cfg)
	service := NewService(provider, contexts, Options{
		Timeout:              cfg.Timeout,
		ExplanationMaxTokens: cfg.ExplanationMaxTokens,
	})
	handler := NewHandler(service)

	return &AIQuizContainer{
		Service: service,
		Handler: handler,
	}
}

// newProvider returns nil when the selected provider has no credential so the
// service reports ErrNotConfigured per request instead of failing at boot.
func newProvider(ctx context.Context, cfg config.GenerationSettings) Provider {
	log := config.WithContext(ctx).WithField("provider", cfg.Provider)

	if cfg.APIKey() == "" {
		log.Warn("Generation API key not configured; quiz generation will fail")
		return nil
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		provider, err := NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.WithError(err).Error("Failed to create Gemini provider")
			return nil
		}
		return provider
	case config.ProviderOpenAI:
		return NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	default:
		log.Errorf("Unknown generation provider %q", cfg.Provider)
		return nil
	}
}
