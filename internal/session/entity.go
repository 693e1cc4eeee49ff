package session

import (
	"github.com/dawood1123/Lumina-study-app/internal/assistant"
	"github.com/google/uuid"
)

type Phase string

const (
	PhaseIdle              Phase = "idle"
	PhaseLoading           Phase = "loading"
	PhaseQuizTransitioning Phase = "quiz_transitioning"
	PhaseResult            Phase = "result"
	PhaseError             Phase = "error"
)

func (p Phase) Busy() bool {
	return p == PhaseLoading || p == PhaseQuizTransitioning
}

type Result struct {
	ID      uuid.UUID            `json:"id"`
	Content string               `json:"content"`
	Quiz    []assistant.Question `json:"quiz,omitempty"`
	Mode    assistant.Mode       `json:"mode"`
	Topic   string               `json:"topic"`
}

func (r *Result) clone() *Result {
	if r == nil {
		return nil
	}
	c := *r
	if r.Quiz != nil {
		c.Quiz = make([]assistant.Question, len(r.Quiz))
		for i, q := range r.Quiz {
			q.Options = append([]string(nil), q.Options...)
			c.Quiz[i] = q
		}
	}
	return &c
}

// Snapshot is the whole session at one moment. A Result may be present in
// the error phase when a quiz-from-content attempt failed on top of it.
type Snapshot struct {
	Phase   Phase           `json:"phase"`
	Result  *Result         `json:"result,omitempty"`
	Error   string          `json:"error,omitempty"`
	Level   assistant.Level `json:"level"`
	Context string          `json:"context"`
}

func (s Snapshot) clone() Snapshot {
	s.Result = s.Result.clone()
	return s
}
