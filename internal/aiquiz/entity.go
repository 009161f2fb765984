package aiquiz

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Question struct {
	Question string   `json:"question" jsonschema:"minLength=1"`
	Options  []string `json:"options" jsonschema:"minItems=4,maxItems=4"`
	Answer   string   `json:"answer" jsonschema:"minLength=1"`
}

type Quiz struct {
	Title     string     `json:"title,omitempty"`
	Summary   string     `json:"summary,omitempty"`
	Questions []Question `json:"questions"`
}

type QuizRequest struct {
	Topic        string `json:"topic"`
	NumQuestions int    `json:"numQuestions,omitempty"`
	Difficulty   string `json:"difficulty,omitempty"`
}

type GenerateResponse struct {
	Quiz         *Quiz  `json:"quiz"`
	NumQuestions int    `json:"numQuestions"`
	Difficulty   string `json:"difficulty"`
}

type ErrorResponse struct {
	Error   string  `json:"error"`
	Details string  `json:"details,omitempty"`
	Raw     *string `json:"raw,omitempty"`
}

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

var lower = cases.Lower(language.Und)

// NormalizeDifficulty lower-cases the level. Values outside easy/medium/hard
// are kept so the model still sees what the caller asked for.
func NormalizeDifficulty(d string) string {
	return lower.String(strings.TrimSpace(d))
}

func IsKnownDifficulty(d string) bool {
	switch NormalizeDifficulty(d) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}
