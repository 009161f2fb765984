package aiquiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/xeipuuv/gojsonschema"
)

var fencePattern = regexp.MustCompile("(?i)```(?:json)?")

// CleanResponse drops every ``` and ```json marker and surrounding whitespace.
func CleanResponse(raw string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(raw, ""))
}

var quizSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	r := &jsonschema.Reflector{
		Anonymous:                 true,
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}
	s := r.Reflect(&Quiz{})
	s.Version = ""

	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal quiz schema: %w", err)
	}
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(b))
})

// DecodeQuiz parses cleaned model output and rejects anything that does not
// match the quiz shape: missing questions, options count other than 4,
// or an answer that is not one of its options.
func DecodeQuiz(cleaned string) (*Quiz, error) {
	if !json.Valid([]byte(cleaned)) {
		return nil, &FormatError{Raw: cleaned, Err: errors.New("response is not valid JSON")}
	}

	schema, err := quizSchema()
	if err != nil {
		return nil, err
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(cleaned))
	if err != nil {
		return nil, &FormatError{Raw: cleaned, Err: err}
	}
	if !result.Valid() {
		msgs := lo.Map(result.Errors(), func(e gojsonschema.ResultError, _ int) string {
			return e.String()
		})
		return nil, &FormatError{Raw: cleaned, Err: errors.New(strings.Join(msgs, "; "))}
	}

	var quiz Quiz
	if err := json.Unmarshal([]byte(cleaned), &quiz); err != nil {
		return nil, &FormatError{Raw: cleaned, Err: err}
	}

	for i, q := range quiz.Questions {
		if !lo.Contains(q.Options, q.Answer) {
			return nil, &FormatError{
				Raw: cleaned,
				Err: fmt.Errorf("answer of question %d is not one of its options", i),
			}
		}
	}

	return &quiz, nil
}
