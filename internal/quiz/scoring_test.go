package quiz_test

import (
	"testing"

	"github.com/saulo-duarte/quizgen/internal/quiz"
	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	questions := photosynthesisQuestions()

	assert.Equal(t, 1, quiz.Score(questions, []string{"A", "A", "A", "A", "A"}))
	assert.Equal(t, 5, quiz.Score(questions, []string{"B", "B", "A", "C", "D"}))
	assert.Equal(t, 0, quiz.Score(questions, nil))
	assert.Equal(t, 2, quiz.Score(questions, []string{"B", "B"}))
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		score, total int
		want         float64
	}{
		{1, 5, 20},
		{5, 5, 100},
		{0, 5, 0},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{1, 8, 12.5},
		{0, 0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, quiz.Percentage(c.score, c.total), "%d/%d", c.score, c.total)
	}
}
