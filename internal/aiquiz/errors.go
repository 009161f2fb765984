package aiquiz

import (
	"errors"
	"fmt"
)

var ErrUpstreamEmpty = errors.New("no content returned from Gemini")

// ValidationError rejects a request before the model is called.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UpstreamCallError wraps a failed call to the generation API.
type UpstreamCallError struct {
	Err error
}

func (e *UpstreamCallError) Error() string {
	return fmt.Sprintf("gemini request failed: %v", e.Err)
}

func (e *UpstreamCallError) Unwrap() error {
	return e.Err
}

// FormatError means the model answered with text that is not a usable quiz.
// Raw holds the cleaned text for diagnostics.
type FormatError struct {
	Raw string
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid quiz format: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
