package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quizhub/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/category/{categoryId}/quizzes", h.ListByCategory)
	r.Get("/{quizId}", h.GetDetail)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Post("/", h.Create)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleEditor))

			r.Put("/{quizId}", h.Update)
			r.Delete("/{quizId}", h.Delete)
		})
	})

	return r
}
