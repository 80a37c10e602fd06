package category

import (
	"net/http"

	"github.com/saulo-duarte/quizhub/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	responses, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list categories")
		config.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	config.JSON(w, http.StatusOK, responses)
}
