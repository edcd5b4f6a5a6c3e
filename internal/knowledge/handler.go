package knowledge

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quizgen/internal/config"
)

type SummaryFetcher interface {
	Summary(ctx context.Context, topic string) (*Summary, error)
}

type Handler struct {
	summaries SummaryFetcher
}

func NewHandler(s SummaryFetcher) *Handler {
	return &Handler{summaries: s}
}

// GetSummary godoc
// @Summary  Wikipedia summary for a topic
// @Tags     topics
// @Produce  json
// @Param    topic path string true "Topic"
// @Success  200 {object} map[string]Summary
// @Failure  404 {object} map[string]string
// @Router   /topics/{topic}/summary [get]
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	topic := strings.TrimSpace(chi.URLParam(r, "topic"))
	if topic == "" {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "topic required"})
		return
	}

	summary, err := h.summaries.Summary(r.Context(), topic)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			config.JSON(w, http.StatusNotFound, map[string]string{"error": "summary not found"})
			return
		}
		log.WithError(err).WithField("topic", topic).Warn("Failed to fetch Wikipedia summary")
		config.JSON(w, http.StatusBadGateway, map[string]string{"error": "knowledge source unavailable"})
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"summary": summary})
}
