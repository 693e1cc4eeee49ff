package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Get)
	r.Post("/", h.Submit)
	r.Post("/quiz-from-content", h.QuizFromContent)
	r.Post("/reset", h.Reset)
	return r
}
