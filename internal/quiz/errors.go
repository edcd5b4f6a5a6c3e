package quiz

import "errors"

var (
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrInvalidQuestions = errors.New("generated quiz failed validation")
)
