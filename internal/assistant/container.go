package assistant

import (
	"context"

	"github.com/dawood1123/Lumina-study-app/internal/config"
)

type AssistantContainer struct {
	Service Service
}

func NewAssistantContainer(ctx context.Context, cfg *config.Config) *AssistantContainer {
	if cfg.GeminiAPIKey == "" {
		config.WithContext(ctx).Warn("GEMINI_API_KEY is empty, generation requests will fail")
	}
	provider := NewGeminiProvider(ctx, cfg.GeminiAPIKey)
	return &AssistantContainer{
		Service: NewService(provider, cfg.GeminiModel),
	}
}
