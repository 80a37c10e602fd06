package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/saulo-duarte/quizhub/internal/category"
	"github.com/saulo-duarte/quizhub/internal/config"
	"github.com/saulo-duarte/quizhub/internal/history"
	"github.com/saulo-duarte/quizhub/internal/middlewares"
	"github.com/saulo-duarte/quizhub/internal/quiz"
)

type RouterConfig struct {
	CategoryHandler *category.Handler
	QuizHandler     *quiz.Handler
	HistoryHandler  *history.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)
	r.Use(middlewares.Metrics)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"message": "health check"})
	})

	r.Get("/db", func(w http.ResponseWriter, req *http.Request) {
		if err := config.Ping(req.Context()); err != nil {
			config.WithContext(req.Context()).WithError(err).Error("Database ping failed")
			config.Error(w, http.StatusInternalServerError, "Database connection failed")
			return
		}
		config.JSON(w, http.StatusOK, map[string]string{"message": "database connection successful"})
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/quiz", func(r chi.Router) {
		r.Get("/categories", cfg.CategoryHandler.List)
		r.Mount("/history", history.Routes(cfg.HistoryHandler))
		r.Mount("/", quiz.Routes(cfg.QuizHandler))
	})

	return r
}
