package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/dawood1123/Lumina-study-app/internal/assistant"
	"github.com/dawood1123/Lumina-study-app/internal/config"
	"github.com/dawood1123/Lumina-study-app/internal/markdown"
	"github.com/dawood1123/Lumina-study-app/internal/quiz"
	"github.com/dawood1123/Lumina-study-app/internal/validator"
)

type SubmitRequest struct {
	Topic   string          `json:"topic" validate:"required"`
	Level   assistant.Level `json:"level" validate:"required,oneof=Beginner Intermediate"`
	Mode    assistant.Mode  `json:"mode" validate:"required,oneof=Explain Summary Quiz"`
	Context string          `json:"context" validate:"max=2000"`
}

// View is a snapshot plus what the page needs to draw it.
type View struct {
	Snapshot
	Blocks []markdown.Block `json:"blocks,omitempty"`
	HTML   string           `json:"html,omitempty"`
	Quiz   *quiz.State      `json:"quiz,omitempty"`
}

type Handler struct {
	session *Session
}

func NewHandler(s *Session) *Handler {
	return &Handler{session: s}
}

func (h *Handler) view(snap Snapshot) View {
	v := View{Snapshot: snap}
	if snap.Result != nil && snap.Result.Mode != assistant.Quiz {
		v.Blocks = markdown.Parse(snap.Result.Content)
		v.HTML = markdown.HTML(v.Blocks)
	}
	if r := h.session.Quiz(); r != nil && snap.Phase == PhaseResult {
		st := r.State()
		v.Quiz = &st
	}
	return v
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.view(h.session.Snapshot()))
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SubmitRequest
	if err := validator.DecodeAndValidate(r.Body, &req); err != nil {
		if errors.Is(err, validator.ErrInvalidBody) {
			config.ErrorJSON(w, http.StatusBadRequest, err.Error())
			return
		}
		log.WithError(err).Warn("Invalid study request")
		config.JSON(w, http.StatusUnprocessableEntity, validator.TranslateErrors(err))
		return
	}

	// The generation outlives a dropped connection.
	ctx := context.WithoutCancel(r.Context())
	snap, err := h.session.Submit(ctx, req.Topic, req.Level, req.Mode, req.Context)
	if err != nil {
		h.writeError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, h.view(snap))
}

func (h *Handler) QuizFromContent(w http.ResponseWriter, r *http.Request) {
	ctx := context.WithoutCancel(r.Context())
	snap, err := h.session.StartQuizFromContent(ctx)
	if err != nil {
		h.writeError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, h.view(snap))
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	config.WithContext(r.Context()).Info("Session reset")
	config.JSON(w, http.StatusOK, h.view(h.session.Reset()))
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrEmptyTopic), errors.Is(err, ErrInvalidRequest):
		config.ErrorJSON(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrBusy), errors.Is(err, ErrNoResult):
		config.ErrorJSON(w, http.StatusConflict, err.Error())
	default:
		config.ErrorJSON(w, http.StatusInternalServerError, "internal server error")
	}
}
