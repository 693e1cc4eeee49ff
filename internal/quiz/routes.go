package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetState)
	r.Post("/answer", h.Answer)
	r.Post("/next", h.Next)
	r.Get("/summary", h.GetSummary)
	return r
}
