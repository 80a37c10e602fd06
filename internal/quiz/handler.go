package quiz

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quizhub/internal/auth"
	"github.com/saulo-duarte/quizhub/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("Attempt to create quiz without authentication")
		config.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var dto CreateQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body for quiz create")
		config.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := config.Validate(dto); err != nil {
		config.Error(w, http.StatusBadRequest, "category_id, slug, question are required")
		return
	}
	if len(dto.Choices) == 0 {
		config.Error(w, http.StatusBadRequest, "At least one choice is required")
		return
	}

	response, err := h.service.Create(r.Context(), claims.UserID, dto)
	if err != nil {
		h.writeServiceError(w, r, err, "Failed to create quiz")
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID, ok := parseID(w, chi.URLParam(r, "quizId"), "Invalid quiz id")
	if !ok {
		return
	}

	var dto UpdateQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body for quiz update")
		config.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.service.Update(r.Context(), quizID, dto)
	if err != nil {
		h.writeServiceError(w, r, err, "Failed to update quiz")
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	quizID, ok := parseID(w, chi.URLParam(r, "quizId"), "Invalid quiz id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), quizID); err != nil {
		h.writeServiceError(w, r, err, "Failed to delete quiz")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "Quiz deleted"})
}

func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := parseID(w, chi.URLParam(r, "categoryId"), "Invalid category id")
	if !ok {
		return
	}

	responses, err := h.service.ListByCategory(r.Context(), categoryID)
	if err != nil {
		h.writeServiceError(w, r, err, "Failed to list quizzes by category")
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) GetDetail(w http.ResponseWriter, r *http.Request) {
	quizID, ok := parseID(w, chi.URLParam(r, "quizId"), "Invalid quiz id")
	if !ok {
		return
	}

	response, err := h.service.GetDetail(r.Context(), quizID)
	if err != nil {
		h.writeServiceError(w, r, err, "Failed to get quiz detail")
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	var tagErr *UnknownTagError

	switch {
	case errors.Is(err, ErrCategoryNotFound):
		config.Error(w, http.StatusNotFound, "Category not found")
	case errors.Is(err, ErrQuizNotFound):
		config.Error(w, http.StatusNotFound, "Quiz not found")
	case errors.Is(err, ErrSlugTaken):
		config.Error(w, http.StatusConflict, "Quiz with this slug already exists")
	case errors.As(err, &tagErr):
		config.Error(w, http.StatusBadRequest, tagErr.Error())
	default:
		config.WithContext(r.Context()).WithError(err).Error(logMsg)
		config.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}

// parseID rejects only malformed ids. An id of 0 is well-formed and
// resolves to not-found like any other absent row.
func parseID(w http.ResponseWriter, raw string, message string) (uint64, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		config.Error(w, http.StatusBadRequest, message)
		return 0, false
	}
	return id, true
}
