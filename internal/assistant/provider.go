package assistant

import (
	"context"
	"fmt"

	"github.com/dawood1123/Lumina-study-app/internal/config"
	"google.golang.org/genai"
)

type Provider interface {
	GenerateContent(ctx context.Context, p Prompt) (string, error)
}

type geminiProvider struct {
	client  *genai.Client
	initErr error
}

// NewGeminiProvider never fails. A missing key or a client that cannot be
// built is reported by every GenerateContent call instead.
func NewGeminiProvider(ctx context.Context, apiKey string) Provider {
	if apiKey == "" {
		return &geminiProvider{initErr: ErrMissingAPIKey}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return &geminiProvider{initErr: fmt.Errorf("failed to create Gemini client: %w", err)}
	}
	return &geminiProvider{client: client}
}

func (p *geminiProvider) GenerateContent(ctx context.Context, prompt Prompt) (string, error) {
	if p.initErr != nil {
		return "", p.initErr
	}
	log := config.WithContext(ctx)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(prompt.SystemInstruction, genai.RoleUser),
		ResponseMIMEType:  prompt.ResponseMIMEType,
		ResponseSchema:    prompt.Schema,
	}

	result, err := p.client.Models.GenerateContent(ctx, prompt.Model, genai.Text(prompt.UserPrompt), cfg)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return "", err
	}

	raw := result.Text()
	log.Debugf("[ASSISTANT] raw Gemini response:\n%s", raw)
	return raw, nil
}
