package quiz

import (
	"time"

	"github.com/google/uuid"
)

type GenerateQuizDTO struct {
	Topic string `json:"topic" validate:"required,max=255"`
}

type SubmitQuizDTO struct {
	Answers []string `json:"answers" validate:"required,min=1,dive,oneof=A B C D"`
}

type QuestionResult struct {
	Question      string            `json:"question"`
	UserAnswer    string            `json:"user_answer"`
	CorrectAnswer string            `json:"correct_answer"`
	IsCorrect     bool              `json:"is_correct"`
	Options       map[string]string `json:"options"`
	Explanation   string            `json:"explanation,omitempty"`
}

type ResultResponse struct {
	ID              uuid.UUID        `json:"id"`
	QuizID          uuid.UUID        `json:"quiz_id"`
	UserAnswers     []string         `json:"user_answers"`
	Score           int              `json:"score"`
	TotalQuestions  int              `json:"total_questions"`
	Percentage      float64          `json:"percentage"`
	QuestionResults []QuestionResult `json:"question_results"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type SubmissionResponse struct {
	Success         bool             `json:"success"`
	Result          ResultResponse   `json:"result"`
	Score           int              `json:"score"`
	TotalQuestions  int              `json:"total_questions"`
	Percentage      float64          `json:"percentage"`
	QuestionResults []QuestionResult `json:"question_results"`
}
