package assistant

type Level string

const (
	Beginner     Level = "Beginner"
	Intermediate Level = "Intermediate"
)

var AllLevels = []Level{Beginner, Intermediate}

func (l Level) IsValid() bool {
	for _, v := range AllLevels {
		if l == v {
			return true
		}
	}
	return false
}

type Mode string

const (
	Explain Mode = "Explain"
	Summary Mode = "Summary"
	Quiz    Mode = "Quiz"
)

var AllModes = []Mode{Explain, Summary, Quiz}

func (m Mode) IsValid() bool {
	for _, v := range AllModes {
		if m == v {
			return true
		}
	}
	return false
}

// Request describes one generation. SourceContent is only read in Quiz mode.
type Request struct {
	Topic         string
	Level         Level
	Mode          Mode
	Context       string
	SourceContent string
}

type Question struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// Generated is what a single call to the model produced. Quiz is nil for
// Explain and Summary.
type Generated struct {
	Text string     `json:"text"`
	Quiz []Question `json:"quiz,omitempty"`
}
