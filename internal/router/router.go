package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/quizgen/internal/aiquiz"
	"github.com/saulo-duarte/quizgen/internal/config"
	"github.com/saulo-duarte/quizgen/internal/knowledge"
	"github.com/saulo-duarte/quizgen/internal/metrics"
	"github.com/saulo-duarte/quizgen/internal/middlewares"
	"github.com/saulo-duarte/quizgen/internal/quiz"
)

type RouterConfig struct {
	QuizHandler      *quiz.Handler
	AIQuizHandler    *aiquiz.Handler
	KnowledgeHandler *knowledge.Handler
	AllowedOrigins   []string
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
		r.Mount("/ai-quiz", aiquiz.Routes(cfg.AIQuizHandler))
		r.Mount("/topics", knowledge.Routes(cfg.KnowledgeHandler))
	})
	return r
}
