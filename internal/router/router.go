package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dawood1123/Lumina-study-app/internal/config"
	"github.com/dawood1123/Lumina-study-app/internal/middlewares"
	"github.com/dawood1123/Lumina-study-app/internal/quiz"
	"github.com/dawood1123/Lumina-study-app/internal/session"
)

type RouterConfig struct {
	SessionHandler *session.Handler
	QuizHandler    *quiz.Handler
	AllowedOrigins []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Mount("/session", session.Routes(cfg.SessionHandler))
	r.Mount("/quiz", quiz.Routes(cfg.QuizHandler))
	return r
}
