package quiz_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizgen/internal/aiquiz"
	"github.com/saulo-duarte/quizgen/internal/quiz"
)

type memoryRepo struct {
	mu      sync.Mutex
	quizzes []*quiz.Quiz
	results []*quiz.QuizResult
	failOn  string
}

func (m *memoryRepo) Create(_ context.Context, q *quiz.Quiz) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn == "create" {
		return errors.New("insert failed")
	}
	q.ID = uuid.New()
	q.CreatedAt = time.Now()
	q.UpdatedAt = q.CreatedAt
	m.quizzes = append(m.quizzes, q)
	return nil
}

func (m *memoryRepo) GetByID(_ context.Context, id uuid.UUID) (*quiz.Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, q := range m.quizzes {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, nil
}

func (m *memoryRepo) List(_ context.Context) ([]*quiz.Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*quiz.Quiz, 0, len(m.quizzes))
	for i := len(m.quizzes) - 1; i >= 0; i-- {
		out = append(out, m.quizzes[i])
	}
	return out, nil
}

func (m *memoryRepo) CreateResult(_ context.Context, r *quiz.QuizResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = uuid.New()
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	m.results = append(m.results, r)
	return nil
}

func (m *memoryRepo) ListResultsByQuiz(_ context.Context, quizID uuid.UUID) ([]*quiz.QuizResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*quiz.QuizResult
	for i := len(m.results) - 1; i >= 0; i-- {
		if m.results[i].QuizID == quizID {
			out = append(out, m.results[i])
		}
	}
	return out, nil
}

type fakeGenerator struct {
	questions   []aiquiz.Question
	quizErr     error
	groundedErr error
	plainErr    error

	grounded []aiquiz.ExplanationInput
	plain    []string
}

func (f *fakeGenerator) GenerateQuiz(_ context.Context, _ string) ([]aiquiz.Question, error) {
	if f.quizErr != nil {
		return nil, f.quizErr
	}
	return f.questions, nil
}

func (f *fakeGenerator) GenerateExplanation(_ context.Context, prompt string) (string, error) {
	f.plain = append(f.plain, prompt)
	if f.plainErr != nil {
		return "", f.plainErr
	}
	return "plain explanation", nil
}

func (f *fakeGenerator) GenerateExplanationWithContext(_ context.Context, in aiquiz.ExplanationInput) (string, error) {
	f.grounded = append(f.grounded, in)
	if f.groundedErr != nil {
		return "", f.groundedErr
	}
	return "Option " + in.CorrectAnswer + " is right because of the facts.", nil
}

func question(text, correct string) aiquiz.Question {
	return aiquiz.Question{
		Question:      text,
		Options:       map[string]string{"A": "first", "B": "second", "C": "third", "D": "fourth"},
		CorrectAnswer: correct,
	}
}

// photosynthesisQuestions has correct answers B, B, A, C, D.
func photosynthesisQuestions() []aiquiz.Question {
	return []aiquiz.Question{
		question("What pigment captures light?", "B"),
		question("Where does photosynthesis happen?", "B"),
		question("Which gas is absorbed?", "A"),
		question("What is released?", "C"),
		question("What sugar is produced?", "D"),
	}
}

func newTestService(gen *fakeGenerator, repo *memoryRepo, persist bool) quiz.QuizService {
	return quiz.NewService(repo, gen, quiz.NewExplainer(gen), quiz.Options{PersistExplanations: persist})
}
