package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quizgen/internal/aiquiz"
	"github.com/saulo-duarte/quizgen/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

// GenerateQuiz godoc
// @Summary  Generate a quiz for a topic
// @Tags     quizzes
// @Accept   json
// @Produce  json
// @Param    request body GenerateQuizDTO true "Topic"
// @Success  201 {object} map[string]interface{}
// @Failure  400 {object} map[string]interface{}
// @Failure  500 {object} map[string]string
// @Router   /quizzes/generate [post]
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto GenerateQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body for quiz generation")
		writeValidation(w, newFieldError("topic", "The request body must be a JSON object."))
		return
	}

	quiz, err := h.service.Generate(r.Context(), dto)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			writeValidation(w, verr)
			return
		}
		config.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to generate quiz: " + err.Error(),
		})
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"quiz":    quiz,
	})
}

// ListQuizzes godoc
// @Summary  List quizzes, newest first
// @Tags     quizzes
// @Produce  json
// @Success  200 {object} map[string]interface{}
// @Router   /quizzes [get]
func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.service.ListQuizzes(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if quizzes == nil {
		quizzes = []*Quiz{}
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"quizzes": quizzes})
}

// GetQuiz godoc
// @Summary  Get a quiz
// @Tags     quizzes
// @Produce  json
// @Param    id path string true "Quiz ID"
// @Success  200 {object} map[string]interface{}
// @Failure  404 {object} map[string]string
// @Router   /quizzes/{id} [get]
func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.service.GetQuiz(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"quiz": quiz})
}

// SubmitQuiz godoc
// @Summary  Submit answers and get the scored breakdown
// @Tags     quizzes
// @Accept   json
// @Produce  json
// @Param    id      path string        true "Quiz ID"
// @Param    request body SubmitQuizDTO true "Answers"
// @Success  200 {object} SubmissionResponse
// @Failure  400 {object} map[string]interface{}
// @Failure  404 {object} map[string]string
// @Router   /quizzes/{id}/submit [post]
func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto SubmitQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body for quiz submission")
		writeValidation(w, newFieldError("answers", "The answers field must be an array."))
		return
	}

	response, err := h.service.Submit(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

// ListResults godoc
// @Summary  List results for a quiz with per-question breakdown
// @Tags     quizzes
// @Produce  json
// @Param    id path string true "Quiz ID"
// @Success  200 {object} map[string]interface{}
// @Failure  404 {object} map[string]string
// @Router   /quizzes/{id}/results [get]
func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.ListResults(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if results == nil {
		results = []ResultResponse{}
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

func writeValidation(w http.ResponseWriter, verr *ValidationError) {
	config.JSON(w, http.StatusBadRequest, map[string]interface{}{"error": verr.Fields})
}

func writeError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		writeValidation(w, verr)
	case errors.Is(err, ErrQuizNotFound):
		config.JSON(w, http.StatusNotFound, map[string]string{"error": "quiz not found"})
	case errors.Is(err, aiquiz.ErrNotConfigured):
		config.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	default:
		config.JSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
