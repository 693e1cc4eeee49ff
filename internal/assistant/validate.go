package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/xeipuuv/gojsonschema"
)

var payloadSchemaLoader = gojsonschema.NewStringLoader(quizPayloadSchema)

// ParseQuiz decodes and checks a model response that should hold a JSON
// array of questions. Every failure wraps ErrInvalidQuizFormat.
func ParseQuiz(raw string) ([]Question, error) {
	clean := stripFences(raw)
	if clean == "" {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidQuizFormat)
	}

	var doc interface{}
	if err := json.Unmarshal([]byte(clean), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuizFormat, err)
	}

	result, err := gojsonschema.Validate(payloadSchemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuizFormat, err)
	}
	if !result.Valid() {
		msgs := lo.Map(result.Errors(), func(e gojsonschema.ResultError, _ int) string {
			return e.String()
		})
		return nil, fmt.Errorf("%w: %s", ErrInvalidQuizFormat, strings.Join(msgs, "; "))
	}

	var questions []Question
	if err := json.Unmarshal([]byte(clean), &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuizFormat, err)
	}
	return questions, nil
}

func stripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
