package quiz

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizgen/internal/aiquiz"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz is write-once: questions never change after creation.
type Quiz struct {
	ID        uuid.UUID                            `gorm:"type:char(36);primaryKey" json:"id"`
	Topic     string                               `gorm:"size:255;not null" json:"topic"`
	Questions datatypes.JSONSlice[aiquiz.Question] `gorm:"not null" json:"questions"`
	CreatedAt time.Time                            `gorm:"index" json:"created_at"`
	UpdatedAt time.Time                            `json:"updated_at"`

	Results []QuizResult `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
}

func (q *Quiz) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// QuizResult is one submission. UserAnswers and Explanations are aligned
// positionally with Quiz.Questions; explanations are empty for correct answers.
type QuizResult struct {
	ID             uuid.UUID                   `gorm:"type:char(36);primaryKey" json:"id"`
	QuizID         uuid.UUID                   `gorm:"type:char(36);not null;index" json:"quiz_id"`
	UserAnswers    datatypes.JSONSlice[string] `gorm:"not null" json:"user_answers"`
	Explanations   datatypes.JSONSlice[string] `json:"-"`
	Score          int                         `gorm:"not null" json:"score"`
	TotalQuestions int                         `gorm:"not null" json:"total_questions"`
	CreatedAt      time.Time                   `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}

func (r *QuizResult) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r *QuizResult) Percentage() float64 {
	return Percentage(r.Score, r.TotalQuestions)
}

func Models() []interface{} {
	return []interface{}{&Quiz{}, &QuizResult{}}
}
