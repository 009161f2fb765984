package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quizifai/internal/auth"
	"github.com/saulo-duarte/quizifai/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req SaveQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid save-quiz request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.service.SaveQuiz(r.Context(), claims.UserID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, saved)
}

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	quizzes, err := h.service.ListQuizzesByUser(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, quizzes)
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	saved, err := h.service.GetQuiz(r.Context(), claims.UserID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, saved)
}

func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.service.DeleteQuiz(r.Context(), claims.UserID, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "quiz deleted successfully",
	})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		config.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidQuiz):
		config.Error(w, http.StatusBadRequest, err.Error())
	default:
		config.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
