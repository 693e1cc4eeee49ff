package quiz

import (
	"errors"
	"net/http"

	"github.com/dawood1123/Lumina-study-app/internal/config"
	"github.com/dawood1123/Lumina-study-app/internal/validator"
)

// RunnerSource hands out the runner for the quiz currently on screen, or
// nil when there is none.
type RunnerSource interface {
	Quiz() *Runner
}

type AnswerRequest struct {
	Index *int `json:"index" validate:"required,min=0"`
}

type Handler struct {
	source RunnerSource
}

func NewHandler(source RunnerSource) *Handler {
	return &Handler{source: source}
}

func (h *Handler) runner(w http.ResponseWriter) *Runner {
	r := h.source.Quiz()
	if r == nil {
		config.ErrorJSON(w, http.StatusNotFound, "no active quiz")
	}
	return r
}

func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	runner := h.runner(w)
	if runner == nil {
		return
	}
	config.JSON(w, http.StatusOK, runner.State())
}

func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	runner := h.runner(w)
	if runner == nil {
		return
	}

	var req AnswerRequest
	if err := validator.DecodeAndValidate(r.Body, &req); err != nil {
		if errors.Is(err, validator.ErrInvalidBody) {
			config.ErrorJSON(w, http.StatusBadRequest, err.Error())
			return
		}
		config.JSON(w, http.StatusUnprocessableEntity, validator.TranslateErrors(err))
		return
	}

	st := runner.SelectAnswer(*req.Index)
	log.WithField("question", st.Index).Debugf("answer %d recorded, score %d", *req.Index, st.Score)
	config.JSON(w, http.StatusOK, st)
}

func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	runner := h.runner(w)
	if runner == nil {
		return
	}

	st := runner.Advance()
	if st.Complete {
		config.WithContext(r.Context()).Infof("quiz finished with %d/%d", st.Score, st.Total)
	}
	config.JSON(w, http.StatusOK, st)
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	runner := h.runner(w)
	if runner == nil {
		return
	}

	summary, err := runner.Summary()
	if err != nil {
		config.ErrorJSON(w, http.StatusConflict, err.Error())
		return
	}
	config.JSON(w, http.StatusOK, summary)
}
