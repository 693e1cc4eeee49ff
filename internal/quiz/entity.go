package quiz

import "github.com/dawood1123/Lumina-study-app/internal/assistant"

type OptionStatus string

const (
	OptionPending   OptionStatus = "pending"
	OptionCorrect   OptionStatus = "correct"
	OptionIncorrect OptionStatus = "incorrect"
	OptionNeutral   OptionStatus = "neutral"
)

const (
	PerfectMessage = "Perfect score! You're a master."
	EffortMessage  = "Great effort! Keep practicing to improve."
)

type Option struct {
	Letter string       `json:"letter"`
	Text   string       `json:"text"`
	Status OptionStatus `json:"status"`
}

// State is a copy of the runner at one moment. Explanation is only filled
// once the current question has been answered.
type State struct {
	Index       int      `json:"index"`
	Total       int      `json:"total"`
	Question    string   `json:"question"`
	Options     []Option `json:"options"`
	Explanation string   `json:"explanation,omitempty"`
	Selected    *int     `json:"selected"`
	Answered    bool     `json:"answered"`
	Complete    bool     `json:"complete"`
	Score       int      `json:"score"`
	Progress    int      `json:"progress"`
	IsLast      bool     `json:"is_last"`
}

type Summary struct {
	Score   int    `json:"score"`
	Total   int    `json:"total"`
	Perfect bool   `json:"perfect"`
	Message string `json:"message"`
}

// Letter labels option i as A, B, C...
func Letter(i int) string {
	return string(rune('A' + i))
}

func optionStatus(q assistant.Question, idx int, selected *int, answered bool) OptionStatus {
	if !answered {
		return OptionPending
	}
	if idx == q.CorrectIndex {
		return OptionCorrect
	}
	if selected != nil && *selected == idx {
		return OptionIncorrect
	}
	return OptionNeutral
}
