package quiz_test

import (
	"testing"

	"github.com/saulo-duarte/quizgen/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQuestions(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		require.NoError(t, quiz.ValidateQuestions(photosynthesisQuestions()))
	})

	t.Run("WrongCount", func(t *testing.T) {
		err := quiz.ValidateQuestions(photosynthesisQuestions()[:4])
		assert.ErrorIs(t, err, quiz.ErrInvalidQuestions)
		assert.Contains(t, err.Error(), "expected 5 questions, got 4")
	})

	t.Run("MissingOption", func(t *testing.T) {
		questions := photosynthesisQuestions()
		delete(questions[1].Options, "D")

		err := quiz.ValidateQuestions(questions)
		assert.ErrorIs(t, err, quiz.ErrInvalidQuestions)
		assert.Contains(t, err.Error(), "question 2")
	})

	t.Run("ExtraOption", func(t *testing.T) {
		questions := photosynthesisQuestions()
		questions[0].Options["E"] = "fifth"

		assert.ErrorIs(t, quiz.ValidateQuestions(questions), quiz.ErrInvalidQuestions)
	})

	t.Run("AnswerNotAnOption", func(t *testing.T) {
		questions := photosynthesisQuestions()
		questions[4].CorrectAnswer = "b"

		err := quiz.ValidateQuestions(questions)
		assert.ErrorIs(t, err, quiz.ErrInvalidQuestions)
		assert.Contains(t, err.Error(), "question 5")
	})

	t.Run("EmptyQuestionText", func(t *testing.T) {
		questions := photosynthesisQuestions()
		questions[3].Question = ""

		assert.ErrorIs(t, quiz.ValidateQuestions(questions), quiz.ErrInvalidQuestions)
	})
}

func TestValidationError_Message(t *testing.T) {
	err := &quiz.ValidationError{Fields: map[string][]string{
		"topic":   {"The topic field is required."},
		"answers": {"The answers field is required."},
	}}
	assert.Equal(t,
		"validation failed: answers: The answers field is required.; topic: The topic field is required.",
		err.Error())
}
