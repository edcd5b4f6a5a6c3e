package container

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quizgen/internal/aiquiz"
	"github.com/saulo-duarte/quizgen/internal/config"
	"github.com/saulo-duarte/quizgen/internal/knowledge"
	"github.com/saulo-duarte/quizgen/internal/quiz"
	"github.com/saulo-duarte/quizgen/internal/router"
)

type Container struct {
	Settings           *config.Settings
	KnowledgeContainer *knowledge.KnowledgeContainer
	AIQuizContainer    *aiquiz.AIQuizContainer
	QuizContainer      *quiz.QuizContainer
}

func New() *Container {
	ctx := context.Background()
	settings := config.Init()

	if err := config.Connect(ctx, settings.DatabaseDriver, settings.DatabaseDSN); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.DB.WithContext(ctx).AutoMigrate(quiz.Models()...); err != nil {
		log.Fatalf("failed to migrate DB: %v", err)
	}

	knowledgeContainer := knowledge.NewKnowledgeContainer(settings.Wikipedia)
	aiQuizContainer := aiquiz.NewAIQuizContainer(ctx, settings.Generation, knowledgeContainer.Provider)
	quizContainer := quiz.NewQuizContainer(config.DB, aiQuizContainer.Service, quiz.Options{
		PersistExplanations: settings.PersistExplanations,
	})

	return &Container{
		Settings:           settings,
		KnowledgeContainer: knowledgeContainer,
		AIQuizContainer:    aiQuizContainer,
		QuizContainer:      quizContainer,
	}
}

func (c *Container) Router() *chi.Mux {
	return router.New(router.RouterConfig{
		QuizHandler:      c.QuizContainer.Handler,
		AIQuizHandler:    c.AIQuizContainer.Handler,
		KnowledgeHandler: c.KnowledgeContainer.Handler,
		AllowedOrigins:   c.Settings.CORSAllowedOrigins,
	})
}
