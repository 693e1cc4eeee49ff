package assistant

import "errors"

const (
	NoContentText    = "No content generated."
	QuizPlaceholder  = "Quiz Generated"
	fallbackFailure  = "the study assistant could not be reached"
	invalidQuizText  = "Failed to generate quiz format."
	missingKeyReason = "GEMINI_API_KEY is not configured"
)

var (
	ErrInvalidQuizFormat = errors.New(invalidQuizText)
	ErrMissingAPIKey     = errors.New(missingKeyReason)
)

// ServiceError is any failure of the upstream call: transport, auth, quota
// or model errors. Its message is shown to the user as is.
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string {
	if msg := e.Message(); msg != "" {
		return msg
	}
	return fallbackFailure
}

// Message is the upstream message, empty when upstream gave none.
func (e *ServiceError) Message() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
