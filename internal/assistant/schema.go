package assistant

import "google.golang.org/genai"

var quizFields = []string{"question", "options", "correctIndex", "explanation"}

// QuizResponseSchema is the structured output shape sent to Gemini with
// every quiz request.
func QuizResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": {Type: genai.TypeString},
				"options": {
					Type:        genai.TypeArray,
					Items:       &genai.Schema{Type: genai.TypeString},
					Description: "List of 4 possible answers",
				},
				"correctIndex": {
					Type:        genai.TypeInteger,
					Description: "Index (0-3) of the correct answer",
				},
				"explanation": {
					Type:        genai.TypeString,
					Description: "Brief explanation of why the answer is correct",
				},
			},
			Required: append([]string(nil), quizFields...),
		},
	}
}

// quizPayloadSchema is checked locally after parsing. It is stricter than
// what the model is asked for: exactly four options and an in-range index.
const quizPayloadSchema = `{
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"properties": {
			"question": {"type": "string", "minLength": 1},
			"options": {
				"type": "array",
				"items": {"type": "string"},
				"minItems": 4,
				"maxItems": 4
			},
			"correctIndex": {"type": "integer", "minimum": 0, "maximum": 3},
			"explanation": {"type": "string"}
		},
		"required": ["question", "options", "correctIndex", "explanation"]
	}
}`
