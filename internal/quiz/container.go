package quiz

import (
	"github.com/saulo-duarte/quizgen/internal/aiquiz"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Service QuizService
	Handler *Handler
}

func NewQuizContainer(db *gorm.DB, generator aiquiz.Service, opts Options) *QuizContainer {
	repo := NewRepository(db)
	explainer := NewExplainer(generator)
	service := NewService(repo, generator, explainer, opts)
	handler := NewHandler(service)

	return &QuizContainer{
		Service: service,
		Handler: handler,
	}
}
