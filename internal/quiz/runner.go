package quiz

import (
	"errors"
	"sync"

	"github.com/dawood1123/Lumina-study-app/internal/assistant"
)

var ErrNotComplete = errors.New("quiz is not complete")

// Runner walks a fixed list of questions forward. A question is locked by
// its first answer and the runner only advances past answered questions.
type Runner struct {
	mu        sync.Mutex
	questions []assistant.Question
	index     int
	selected  *int
	score     int
	answered  bool
	complete  bool
}

// NewRunner borrows questions; it never modifies them.
func NewRunner(questions []assistant.Question) *Runner {
	return &Runner{
		questions: questions,
		complete:  len(questions) == 0,
	}
}

// SelectAnswer is ignored when the question is already answered, the quiz
// is finished, or idx is not one of the options.
func (r *Runner) SelectAnswer(idx int) State {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.complete || r.answered {
		return r.stateLocked()
	}
	q := r.questions[r.index]
	if idx < 0 || idx >= len(q.Options) {
		return r.stateLocked()
	}

	sel := idx
	r.selected = &sel
	r.answered = true
	if idx == q.CorrectIndex {
		r.score++
	}
	return r.stateLocked()
}

// Advance is a no-op until the current question is answered.
func (r *Runner) Advance() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.complete || !r.answered {
		return r.stateLocked()
	}

	if r.index < len(r.questions)-1 {
		r.index++
		r.selected = nil
		r.answered = false
		return r.stateLocked()
	}

	r.complete = true
	return r.stateLocked()
}

func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stateLocked()
}

func (r *Runner) Summary() (Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.complete {
		return Summary{}, ErrNotComplete
	}

	total := len(r.questions)
	s := Summary{Score: r.score, Total: total, Message: EffortMessage}
	if total > 0 && r.score == total {
		s.Perfect = true
		s.Message = PerfectMessage
	}
	return s, nil
}

func (r *Runner) stateLocked() State {
	total := len(r.questions)
	st := State{
		Index:    r.index,
		Total:    total,
		Answered: r.answered,
		Complete: r.complete,
		Score:    r.score,
	}
	if total == 0 {
		return st
	}

	st.Progress = (r.index + 1) * 100 / total
	st.IsLast = r.index == total-1
	if r.selected != nil {
		sel := *r.selected
		st.Selected = &sel
	}

	q := r.questions[r.index]
	st.Question = q.Question
	st.Options = make([]Option, len(q.Options))
	for i, text := range q.Options {
		st.Options[i] = Option{
			Letter: Letter(i),
			Text:   text,
			Status: optionStatus(q, i, r.selected, r.answered),
		}
	}
	if r.answered {
		st.Explanation = q.Explanation
	}
	return st
}
