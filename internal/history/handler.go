package history

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/quizhub/internal/auth"
	"github.com/saulo-duarte/quizhub/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload AnswerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Warn("Invalid request body for answer add")
		config.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := config.Validate(payload); err != nil {
		config.Error(w, http.StatusBadRequest, "quizId, categoryId, isCorrect, answeredAt are required")
		return
	}

	answer, err := h.service.Add(r.Context(), claims.UserID, payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateAnswer):
			config.JSON(w, http.StatusOK, map[string]string{"message": "already exists"})
		case errors.Is(err, ErrInvalidAnsweredAt):
			config.Error(w, http.StatusBadRequest, "Invalid answeredAt")
		default:
			log.WithError(err).Error("Failed to add answer")
			config.Error(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	config.JSON(w, http.StatusCreated, map[string]uint64{"id": answer.ID})
}

func (h *Handler) Sync(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for history sync")
		config.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// An empty batch is not an error; it simply syncs nothing.
	if len(req.Answers) == 0 {
		config.JSON(w, http.StatusOK, SyncResponse{Synced: 0})
		return
	}

	synced, err := h.service.Sync(r.Context(), claims.UserID, req.Answers)
	if err != nil {
		log.WithError(err).Error("Failed to sync history")
		config.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	config.JSON(w, http.StatusOK, SyncResponse{Synced: synced})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	responses, err := h.service.List(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to list history")
		config.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	config.JSON(w, http.StatusOK, responses)
}
