package aiquiz

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/saulo-duarte/quizifai/internal/config"
	"github.com/saulo-duarte/quizifai/internal/extract"
)

const defaultMaxUploadBytes = 5 << 20

type Handler struct {
	service        Service
	maxUploadBytes int64
}

func NewHandler(s Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Handler{service: s, maxUploadBytes: maxUploadBytes}
}

func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "API is working!")
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid generate-quiz request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.generate(w, r, req)
}

// GenerateQuizFromUpload takes a multipart form with a "file" field and uses
// the document text as the topic.
func (h *Handler) GenerateQuizFromUpload(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			config.Error(w, http.StatusRequestEntityTooLarge, "file is too large")
			return
		}
		log.WithError(err).Warn("Invalid multipart upload")
		config.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		config.Error(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded file")
		config.Error(w, http.StatusBadRequest, "failed to read file")
		return
	}

	text, err := extract.Text(header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupportedType):
			config.Error(w, http.StatusUnsupportedMediaType, err.Error())
		case errors.Is(err, extract.ErrEmptyDocument):
			config.Error(w, http.StatusBadRequest, "Topic is required")
		default:
			log.WithError(err).Warnf("Failed to extract text from %s", header.Filename)
			config.Error(w, http.StatusUnprocessableEntity, "failed to read document text")
		}
		return
	}

	numQuestions, _ := strconv.Atoi(r.FormValue("numQuestions"))
	h.generate(w, r, QuizRequest{
		Topic:        text,
		NumQuestions: numQuestions,
		Difficulty:   r.FormValue("difficulty"),
	})
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request, req QuizRequest) {
	log := config.WithContext(r.Context())

	resp, err := h.service.GenerateQuiz(r.Context(), req)
	if err != nil {
		status, body := errorResponse(err)
		if status >= http.StatusInternalServerError {
			log.WithError(err).Error("Error generating quiz")
		}
		config.JSON(w, status, body)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func errorResponse(err error) (int, ErrorResponse) {
	var validationErr *ValidationError
	var formatErr *FormatError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, ErrorResponse{Error: validationErr.Message}
	case errors.As(err, &formatErr):
		raw := formatErr.Raw
		return http.StatusInternalServerError, ErrorResponse{
			Error: "Failed to parse Gemini response as JSON",
			Raw:   &raw,
		}
	default:
		return http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to generate quiz",
			Details: err.Error(),
		}
	}
}
