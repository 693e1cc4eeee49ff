package container

import (
	"context"

	"github.com/dawood1123/Lumina-study-app/internal/assistant"
	"github.com/dawood1123/Lumina-study-app/internal/config"
	"github.com/dawood1123/Lumina-study-app/internal/quiz"
	"github.com/dawood1123/Lumina-study-app/internal/session"
)

type Container struct {
	Config             *config.Config
	AssistantContainer *assistant.AssistantContainer
	SessionContainer   *session.SessionContainer
	QuizContainer      *quiz.QuizContainer
}

func New(ctx context.Context, cfg *config.Config) *Container {
	assistantContainer := assistant.NewAssistantContainer(ctx, cfg)
	return build(cfg, assistantContainer)
}

// NewWithService wires everything around an existing generator.
func NewWithService(cfg *config.Config, svc assistant.Service) *Container {
	return build(cfg, &assistant.AssistantContainer{Service: svc})
}

func build(cfg *config.Config, assistantContainer *assistant.AssistantContainer) *Container {
	sessionContainer := session.NewSessionContainer(assistantContainer.Service)
	quizContainer := quiz.NewQuizContainer(sessionContainer.Session)

	return &Container{
		Config:             cfg,
		AssistantContainer: assistantContainer,
		SessionContainer:   sessionContainer,
		QuizContainer:      quizContainer,
	}
}
