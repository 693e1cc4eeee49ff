package assistant

import (
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	DefaultModel = "gemini-3-flash-preview"
	QuizSize     = 5
	jsonMIMEType = "application/json"
)

const systemPromptTemplate = `You are a world-class study assistant. Your goal is to help students understand topics efficiently.
Tone: Educational, encouraging, and clear.
Current Level: %s.
Target Audience: Students and teachers.
Formatting rules: Use markdown for structure. Use '###' for section headings and '**' for bold terms.`

// Prompt is everything the provider needs for one call.
type Prompt struct {
	Model             string
	SystemInstruction string
	UserPrompt        string
	ResponseMIMEType  string
	Schema            *genai.Schema
}

type Builder struct {
	Model string
}

// BuildPrompt builds with the default model.
func BuildPrompt(req Request) Prompt {
	return Builder{}.Build(req)
}

func (b Builder) Build(req Request) Prompt {
	model := b.Model
	if model == "" {
		model = DefaultModel
	}

	p := Prompt{
		Model:             model,
		SystemInstruction: fmt.Sprintf(systemPromptTemplate, req.Level),
	}

	switch req.Mode {
	case Quiz:
		p.UserPrompt = buildQuizPrompt(req)
		p.ResponseMIMEType = jsonMIMEType
		p.Schema = QuizResponseSchema()
	case Summary:
		p.UserPrompt = fmt.Sprintf(
			"Provide a short summary of \"%s\" in bullet points.%s Focus on the %d most important concepts a %s learner should know.",
			req.Topic, contextPart(req.Context), QuizSize, req.Level,
		)
	default:
		p.UserPrompt = fmt.Sprintf(
			"Explain the topic \"%s\" in simple, clear language suitable for a %s learner.%s Use analogies if helpful. Avoid jargon unless you explain it.",
			req.Topic, req.Level, contextPart(req.Context),
		)
	}
	return p
}

func buildQuizPrompt(req Request) string {
	if req.SourceContent != "" {
		return fmt.Sprintf(
			"Generate a %d-question multiple choice quiz strictly based on the following text: \"%s\". "+
				"Ensure the questions test the key points mentioned in this specific text for a %s level student.",
			QuizSize, req.SourceContent, req.Level,
		)
	}
	return fmt.Sprintf(
		"Generate a %d-question multiple choice quiz about \"%s\" for a %s level student.%s Include explanations for the correct answers.",
		QuizSize, req.Topic, req.Level, contextPart(req.Context),
	)
}

func contextPart(context string) string {
	context = strings.TrimSpace(context)
	if context == "" {
		return ""
	}
	return "\nSpecial instructions: " + context
}
