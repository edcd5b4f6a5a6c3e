package quiz

import (
	"github.com/saulo-duarte/quizgen/internal/aiquiz"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Score counts positions where the answer matches the stored correct answer.
func Score(questions []aiquiz.Question, answers []string) int {
	score := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			score++
		}
	}
	return score
}

// Percentage is score/total*100 rounded half away from zero to 2 places.
func Percentage(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return decimal.NewFromInt(int64(score)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(total))).
		Round(2).
		InexactFloat64()
}
