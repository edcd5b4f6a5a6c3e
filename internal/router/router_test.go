package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/saulo-duarte/quizgen/internal/aiquiz"
	"github.com/saulo-duarte/quizgen/internal/knowledge"
	"github.com/saulo-duarte/quizgen/internal/metrics"
	"github.com/saulo-duarte/quizgen/internal/quiz"
	"github.com/saulo-duarte/quizgen/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() http.Handler {
	generator := aiquiz.NewService(nil, nil, aiquiz.Options{})
	return router.New(router.RouterConfig{
		QuizHandler:      quiz.NewHandler(quiz.NewService(nil, generator, quiz.NewExplainer(generator), quiz.Options{})),
		AIQuizHandler:    aiquiz.NewHandler(generator),
		KnowledgeHandler: knowledge.NewHandler(knowledge.NewWikipediaClient(knowledge.WikipediaConfig{})),
		AllowedOrigins:   []string{"*"},
	})
}

func TestHealthz(t *testing.T) {
	r := newRouter()
	before := testutil.ToFloat64(metrics.RequestCounter.WithLabelValues(http.MethodGet, "/healthz", "200"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.RequestCounter.WithLabelValues(http.MethodGet, "/healthz", "200")))
}

func TestMetricsEndpoint(t *testing.T) {
	r := newRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "quizgen_http_requests_total")
}

func TestPreviewWithoutCredential(t *testing.T) {
	r := newRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/ai-quiz", strings.NewReader(`{"topic":"Go"}`)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	r := newRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
