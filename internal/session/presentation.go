package session

import (
	"errors"
	"maps"
	"slices"

	"github.com/saulo-duarte/quizifai/internal/aiquiz"
)

type Mode int

const (
	ModeInitial Mode = iota
	ModeView
	ModeTake
)

func (m Mode) String() string {
	switch m {
	case ModeView:
		return "view"
	case ModeTake:
		return "take"
	default:
		return "initial"
	}
}

const (
	defaultTitle   = "Your Quiz"
	defaultSummary = "No summary provided."
)

var (
	ErrNoQuiz             = errors.New("no quiz data found")
	ErrInvalidTransition  = errors.New("transition not allowed from the current mode")
	ErrNotTaking          = errors.New("answers can only be selected while taking the quiz")
	ErrQuestionOutOfRange = errors.New("question index out of range")
)

// Presentation walks a generated quiz through initial, view and take modes
// and records the option last picked for each question.
type Presentation struct {
	quiz    *aiquiz.Quiz
	mode    Mode
	answers map[int]string
}

func NewPresentation(quiz *aiquiz.Quiz) *Presentation {
	return &Presentation{quiz: quiz, answers: make(map[int]string)}
}

func (p *Presentation) Mode() Mode { return p.mode }

func (p *Presentation) HasQuiz() bool { return p.quiz != nil }

func (p *Presentation) Title() string {
	if p.quiz == nil || p.quiz.Title == "" {
		return defaultTitle
	}
	return p.quiz.Title
}

func (p *Presentation) Summary() string {
	if p.quiz == nil || p.quiz.Summary == "" {
		return defaultSummary
	}
	return p.quiz.Summary
}

// Questions returns the questions in the order the service produced them.
func (p *Presentation) Questions() []aiquiz.Question {
	if p.quiz == nil {
		return nil
	}
	return slices.Clone(p.quiz.Questions)
}

// View opens the read-only preview. Not allowed while taking.
func (p *Presentation) View() error {
	if p.quiz == nil {
		return ErrNoQuiz
	}
	if p.mode == ModeTake {
		return ErrInvalidTransition
	}
	p.mode = ModeView
	return nil
}

// Take starts answering, from initial or from the preview.
func (p *Presentation) Take() error {
	if p.quiz == nil {
		return ErrNoQuiz
	}
	p.mode = ModeTake
	return nil
}

// Back returns to initial. Recorded answers are kept.
func (p *Presentation) Back() {
	p.mode = ModeInitial
}

// SelectAnswer records option for the question, replacing any earlier pick.
// The option is not checked against the question's answer.
func (p *Presentation) SelectAnswer(index int, option string) error {
	if p.mode != ModeTake {
		return ErrNotTaking
	}
	if p.quiz == nil || index < 0 || index >= len(p.quiz.Questions) {
		return ErrQuestionOutOfRange
	}
	p.answers[index] = option
	return nil
}

func (p *Presentation) Answer(index int) (string, bool) {
	a, ok := p.answers[index]
	return a, ok
}

func (p *Presentation) Answers() map[int]string {
	return maps.Clone(p.answers)
}

// Submission is what the user handed in. Nothing grades it.
type Submission struct {
	Answers   map[int]string
	Answered  int
	Questions int
}

// SubmitQuiz collects the current answers. Mode and quiz stay unchanged.
func (p *Presentation) SubmitQuiz() Submission {
	total := 0
	if p.quiz != nil {
		total = len(p.quiz.Questions)
	}
	return Submission{
		Answers:   p.Answers(),
		Answered:  len(p.answers),
		Questions: total,
	}
}
