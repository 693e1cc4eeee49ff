package session

import (
	"errors"

	"github.com/dawood1123/Lumina-study-app/internal/assistant"
)

const (
	submitFallback          = "Something went wrong while reaching the study assistant."
	quizFromContentFallback = "Failed to generate a quiz from this text."
)

var (
	ErrEmptyTopic     = errors.New("topic is required")
	ErrInvalidRequest = errors.New("unknown level or mode")
	ErrNoResult       = errors.New("no displayed content to build a quiz from")
	ErrBusy           = errors.New("a request is already in progress")
)

func userMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var se *assistant.ServiceError
	if errors.As(err, &se) {
		if msg := se.Message(); msg != "" {
			return msg
		}
		return fallback
	}
	if err.Error() == "" {
		return fallback
	}
	return err.Error()
}
