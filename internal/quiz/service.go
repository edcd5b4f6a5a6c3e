package quiz

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/saulo-duarte/quizgen/internal/aiquiz"
	"github.com/saulo-duarte/quizgen/internal/config"
	"github.com/sirupsen/logrus"
)

type QuizService interface {
	Generate(ctx context.Context, dto GenerateQuizDTO) (*Quiz, error)
	GetQuiz(ctx context.Context, quizID string) (*Quiz, error)
	ListQuizzes(ctx context.Context) ([]*Quiz, error)
	Submit(ctx context.Context, quizID string, dto SubmitQuizDTO) (*SubmissionResponse, error)
	ListResults(ctx context.Context, quizID string) ([]ResultResponse, error)
}

type Options struct {
	// PersistExplanations stores explanations with the result so history
	// reads do not call the generation model again.
	PersistExplanations bool
}

type quizService struct {
	repo      QuizRepository
	generator aiquiz.Service
	explainer Explainer
	opts      Options
}

func NewService(repo QuizRepository, generator aiquiz.Service, explainer Explainer, opts Options) QuizService {
	return &quizService{
		repo:      repo,
		generator: generator,
		explainer: explainer,
		opts:      opts,
	}
}

func (s *quizService) Generate(ctx context.Context, dto GenerateQuizDTO) (*Quiz, error) {
	dto.Topic = strings.TrimSpace(dto.Topic)
	if err := validateStruct(dto); err != nil {
		return nil, err
	}

	log := config.WithContext(ctx).WithField("topic", dto.Topic)
	log.Info("Generating quiz...")

	questions, err := s.generator.GenerateQuiz(ctx, dto.Topic)
	if err != nil {
		log.WithError(err).Error("Quiz generation failed")
		return nil, err
	}

	if err := ValidateQuestions(questions); err != nil {
		log.WithError(err).Error("Generated quiz rejected")
		return nil, err
	}

	quiz := &Quiz{
		Topic:     dto.Topic,
		Questions: questions,
	}
	if err := s.repo.Create(ctx, quiz); err != nil {
		log.WithError(err).Error("Failed to save quiz")
		return nil, err
	}

	log.WithField("quiz_id", quiz.ID.String()).Info("Quiz created")
	return quiz, nil
}

func (s *quizService) GetQuiz(ctx context.Context, quizID string) (*Quiz, error) {
	log := config.WithContext(ctx).WithField("quiz_id", quizID)

	id, err := uuid.Parse(quizID)
	if err != nil {
		log.Warn("Invalid quiz ID")
		return nil, ErrQuizNotFound
	}

	quiz, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz")
		return nil, err
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}
	return quiz, nil
}

func (s *quizService) ListQuizzes(ctx context.Context) ([]*Quiz, error) {
	quizzes, err := s.repo.List(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list quizzes")
		return nil, err
	}
	return quizzes, nil
}

func (s *quizService) Submit(ctx context.Context, quizID string, dto SubmitQuizDTO) (*SubmissionResponse, error) {
	if err := validateStruct(dto); err != nil {
		return nil, err
	}

	quiz, err := s.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	total := len(quiz.Questions)
	if len(dto.Answers) != total {
		return nil, newFieldError("answers", fmt.Sprintf("The answers field must contain %d items.", total))
	}

	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"quiz_id": quiz.ID.String(),
		"topic":   quiz.Topic,
	})

	explanations := s.explainWrongAnswers(ctx, quiz, dto.Answers, nil)

	result := &QuizResult{
		QuizID:         quiz.ID,
		UserAnswers:    dto.Answers,
		Score:          Score(quiz.Questions, dto.Answers),
		TotalQuestions: total,
	}
	if s.opts.PersistExplanations {
		result.Explanations = explanations
	}

	if err := s.repo.CreateResult(ctx, result); err != nil {
		log.WithError(err).Error("Failed to save quiz result")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"result_id": result.ID.String(),
		"score":     result.Score,
	}).Info("Quiz submitted")

	response := toResultResponse(quiz, result, explanations)
	return &SubmissionResponse{
		Success:         true,
		Result:          response,
		Score:           response.Score,
		TotalQuestions:  response.TotalQuestions,
		Percentage:      response.Percentage,
		QuestionResults: response.QuestionResults,
	}, nil
}

func (s *quizService) ListResults(ctx context.Context, quizID string) ([]ResultResponse, error) {
	quiz, err := s.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	results, err := s.repo.ListResultsByQuiz(ctx, quiz.ID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list quiz results")
		return nil, err
	}

	return lo.Map(results, func(r *QuizResult, _ int) ResultResponse {
		var stored []string
		if s.opts.PersistExplanations {
			stored = r.Explanations
		}
		return toResultResponse(quiz, r, s.explainWrongAnswers(ctx, quiz, r.UserAnswers, stored))
	}), nil
}

// explainWrongAnswers returns one entry per question: empty for correct
// answers, otherwise the stored explanation or a freshly generated one.
// Questions are explained one after another.
func (s *quizService) explainWrongAnswers(ctx context.Context, quiz *Quiz, answers, stored []string) []string {
	explanations := make([]string, len(quiz.Questions))
	for i, q := range quiz.Questions {
		answer := answerAt(answers, i)
		if answer == q.CorrectAnswer {
			continue
		}
		if i < len(stored) && stored[i] != "" {
			explanations[i] = stored[i]
			continue
		}
		explanations[i] = s.explainer.Explain(ctx, aiquiz.ExplanationInput{
			Question:      q.Question,
			CorrectAnswer: q.CorrectAnswer,
			UserAnswer:    answer,
			Options:       q.Options,
			Topic:         quiz.Topic,
		})
	}
	return explanations
}

func toResultResponse(quiz *Quiz, r *QuizResult, explanations []string) ResultResponse {
	breakdown := make([]QuestionResult, len(quiz.Questions))
	for i, q := range quiz.Questions {
		answer := answerAt(r.UserAnswers, i)
		qr := QuestionResult{
			Question:      q.Question,
			UserAnswer:    answer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     answer == q.CorrectAnswer,
			Options:       q.Options,
		}
		if !qr.IsCorrect && i < len(explanations) {
			qr.Explanation = explanations[i]
		}
		breakdown[i] = qr
	}

	return ResultResponse{
		ID:              r.ID,
		QuizID:          r.QuizID,
		UserAnswers:     []string(r.UserAnswers),
		Score:           r.Score,
		TotalQuestions:  r.TotalQuestions,
		Percentage:      r.Percentage(),
		QuestionResults: breakdown,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func answerAt(answers []string, i int) string {
	if i < len(answers) {
		return answers[i]
	}
	return ""
}
