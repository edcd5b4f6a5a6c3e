package aiquiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/saulo-duarte/quizgen/internal/config"
	"github.com/saulo-duarte/quizgen/internal/knowledge"
	"github.com/saulo-duarte/quizgen/internal/metrics"
)

const (
	quizMaxTokens          = 2000
	quizTemperature        = 0.7
	explanationTemperature = 0.5
)

type Service interface {
	GenerateQuiz(ctx context.Context, topic string) ([]Question, error)
	GenerateExplanation(ctx context.Context, prompt string) (string, error)
	GenerateExplanationWithContext(ctx context.Context, in ExplanationInput) (string, error)
}

type Options struct {
	// Timeout bounds every call to the generation model.
	Timeout              time.Duration
	ExplanationMaxTokens int
}

type service struct {
	provider             Provider
	contexts             knowledge.ContextProvider
	timeout              time.Duration
	explanationMaxTokens int
}

// NewService builds the generation client. A nil provider means no
// credential was configured: every call then fails with ErrNotConfigured.
func NewService(provider Provider, contexts knowledge.ContextProvider, opts Options) Service {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.ExplanationMaxTokens <= 0 {
		opts.ExplanationMaxTokens = 200
	}
	return &service{
		provider:             provider,
		contexts:             contexts,
		timeout:              opts.Timeout,
		explanationMaxTokens: opts.ExplanationMaxTokens,
	}
}

func (s *service) GenerateQuiz(ctx context.Context, topic string) ([]Question, error) {
	log := config.WithContext(ctx).WithField("topic", topic)

	if s.provider == nil {
		metrics.GenerationCalls.WithLabelValues("quiz", "not_configured").Inc()
		return nil, ErrNotConfigured
	}

	contextText := knowledge.FormatContextForPrompt(s.relatedContext(ctx, topic))

	raw, err := s.complete(ctx, Completion{
		System:      quizSystemPrompt,
		User:        BuildQuizPrompt(topic, contextText),
		MaxTokens:   quizMaxTokens,
		Temperature: quizTemperature,
		JSON:        true,
	})
	if err != nil {
		metrics.GenerationCalls.WithLabelValues("quiz", "upstream_error").Inc()
		log.WithError(err).Error("Quiz generation request failed")
		return nil, err
	}

	questions, err := DecodeQuestions(raw)
	if err != nil {
		metrics.GenerationCalls.WithLabelValues("quiz", "malformed").Inc()
		log.WithError(err).Errorf("[AIQUIZ] Could not decode quiz. Raw content:\n%s", raw)
		return nil, err
	}

	metrics.GenerationCalls.WithLabelValues("quiz", "ok").Inc()
	log.WithField("grounded", contextText != "").Infof("[AIQUIZ] Generated %d questions", len(questions))
	return questions, nil
}

func (s *service) GenerateExplanation(ctx context.Context, prompt string) (string, error) {
	if s.provider == nil {
		metrics.GenerationCalls.WithLabelValues("explanation", "not_configured").Inc()
		return "", ErrNotConfigured
	}

	raw, err := s.complete(ctx, Completion{
		System:      explanationSystemPrompt,
		User:        prompt,
		MaxTokens:   s.explanationMaxTokens,
		Temperature: explanationTemperature,
	})
	if err != nil {
		metrics.GenerationCalls.WithLabelValues("explanation", "upstream_error").Inc()
		return "", err
	}

	text := strings.TrimSpace(raw)
	if text == "" {
		metrics.GenerationCalls.WithLabelValues("explanation", "empty").Inc()
		return "", ErrEmptyResponse
	}

	metrics.GenerationCalls.WithLabelValues("explanation", "ok").Inc()
	return text, nil
}

// GenerateExplanationWithContext grounds the explanation in Wikipedia context.
// If the grounded call fails it retries once with the context-free prompt.
func (s *service) GenerateExplanationWithContext(ctx context.Context, in ExplanationInput) (string, error) {
	log := config.WithContext(ctx)

	if s.provider == nil {
		return "", ErrNotConfigured
	}

	contextText := knowledge.FormatContextForPrompt(s.relatedContext(ctx, in.Topic))
	prompt := BuildExplanationPrompt(in.Question, in.CorrectAnswer, in.UserAnswer, in.Options, contextText)

	text, err := s.GenerateExplanation(ctx, prompt)
	if err == nil {
		return text, nil
	}

	log.WithError(err).Warn("Grounded explanation failed, retrying without context")
	plain := BuildExplanationPrompt(in.Question, in.CorrectAnswer, in.UserAnswer, in.Options, "")
	return s.GenerateExplanation(ctx, plain)
}

func (s *service) relatedContext(ctx context.Context, topic string) []knowledge.Snippet {
	if s.contexts == nil || strings.TrimSpace(topic) == "" {
		return nil
	}
	return s.contexts.RelatedContext(ctx, topic)
}

func (s *service) complete(ctx context.Context, c Completion) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.provider.Complete(ctx, c)
	if err != nil {
		if errors.Is(err, ErrEmptyResponse) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return raw, nil
}

// DecodeQuestions parses model output into exactly QuestionsPerQuiz questions.
// Markdown code fences around the JSON are tolerated.
func DecodeQuestions(raw string) ([]Question, error) {
	clean := stripFences(raw)

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(clean), &items); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response as JSON array: %v", ErrMalformedOutput, err)
	}
	if len(items) != QuestionsPerQuiz {
		return nil, fmt.Errorf("%w: expected %d questions, got %d", ErrMalformedOutput, QuestionsPerQuiz, len(items))
	}

	questions := make([]Question, len(items))
	for i, item := range items {
		if err := json.Unmarshal(item, &questions[i]); err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", ErrMalformedOutput, i+1, err)
		}
	}
	return questions, nil
}

func stripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
