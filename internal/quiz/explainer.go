package quiz

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/quizgen/internal/aiquiz"
	"github.com/saulo-duarte/quizgen/internal/config"
	"github.com/saulo-duarte/quizgen/internal/metrics"
)

type Explainer interface {
	Explain(ctx context.Context, in aiquiz.ExplanationInput) string
}

type explainer struct {
	generator aiquiz.Service
}

func NewExplainer(generator aiquiz.Service) Explainer {
	return &explainer{generator: generator}
}

// Explain always returns a non-empty explanation. It tries the grounded
// generation path, then a plain prompt, then a fixed sentence.
func (e *explainer) Explain(ctx context.Context, in aiquiz.ExplanationInput) string {
	log := config.WithContext(ctx).WithField("topic", in.Topic)

	text, err := e.generator.GenerateExplanationWithContext(ctx, in)
	if err == nil && text != "" {
		metrics.ExplanationTiers.WithLabelValues("grounded").Inc()
		return text
	}
	log.WithError(err).Warn("Grounded explanation unavailable")

	prompt := aiquiz.BuildExplanationPrompt(in.Question, in.CorrectAnswer, in.UserAnswer, in.Options, "")
	text, err = e.generator.GenerateExplanation(ctx, prompt)
	if err == nil && text != "" {
		metrics.ExplanationTiers.WithLabelValues("plain").Inc()
		return text
	}
	log.WithError(err).Warn("Plain explanation unavailable, using fallback text")

	metrics.ExplanationTiers.WithLabelValues("fallback").Inc()
	return FallbackExplanation(in.CorrectAnswer)
}

func FallbackExplanation(correctAnswer string) string {
	return fmt.Sprintf("The correct answer is %s. Please review the question and try to understand why this answer is correct.", correctAnswer)
}
