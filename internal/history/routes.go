package history

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quizhub/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Post("/sync", h.Sync)

	return r
}
