package assistant

import (
	"context"
	"errors"

	"github.com/dawood1123/Lumina-study-app/internal/config"
)

type Service interface {
	Generate(ctx context.Context, req Request) (*Generated, error)
}

type service struct {
	provider Provider
	builder  Builder
}

func NewService(provider Provider, model string) Service {
	return &service{provider: provider, builder: Builder{Model: model}}
}

// Generate makes exactly one provider call. Upstream failures come back as
// *ServiceError, unusable quiz payloads as ErrInvalidQuizFormat.
func (s *service) Generate(ctx context.Context, req Request) (*Generated, error) {
	log := config.WithContext(ctx).WithField("mode", req.Mode)
	prompt := s.builder.Build(req)

	raw, err := s.provider.GenerateContent(ctx, prompt)
	if err != nil {
		var se *ServiceError
		if errors.As(err, &se) {
			return nil, se
		}
		return nil, &ServiceError{Err: err}
	}

	if req.Mode != Quiz {
		if raw == "" {
			raw = NoContentText
		}
		log.Infof("[ASSISTANT] generated %d characters", len(raw))
		return &Generated{Text: raw}, nil
	}

	questions, err := ParseQuiz(raw)
	if err != nil {
		log.WithError(err).Error("[ASSISTANT] failed to parse quiz JSON")
		return nil, ErrInvalidQuizFormat
	}

	log.Infof("[ASSISTANT] generated %d questions", len(questions))
	return &Generated{Text: QuizPlaceholder, Quiz: questions}, nil
}
