package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/saulo-duarte/quizgen/internal/config"
)

type Handler struct {
	service  Service
	validate *validator.Validate
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s, validate: validator.New()}
}

// GenerateQuestions godoc
// @Summary  Preview generated questions without saving a quiz
// @Tags     ai-quiz
// @Accept   json
// @Produce  json
// @Param    request body QuestionRequest true "Topic"
// @Success  201 {object} QuestionResponse
// @Failure  400 {object} map[string]string
// @Failure  500 {object} map[string]string
// @Router   /ai-quiz [post]
func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	req.Topic = strings.TrimSpace(req.Topic)
	if err := h.validate.Struct(req); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "topic is required and must not exceed 255 characters"})
		return
	}

	questions, err := h.service.GenerateQuiz(r.Context(), req.Topic)
	if err != nil {
		log.WithError(err).Error("Failed to generate questions")
		status := http.StatusInternalServerError
		if errors.Is(err, ErrUpstream) {
			status = http.StatusBadGateway
		}
		config.JSON(w, status, map[string]string{"error": "Failed to generate questions: " + err.Error()})
		return
	}

	config.JSON(w, http.StatusCreated, QuestionResponse{Questions: questions})
}
