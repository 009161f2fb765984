// Package session holds the client-side state of one quiz run: the input
// form and the presentation of the generated quiz.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/saulo-duarte/quizifai/internal/aiquiz"
	"github.com/saulo-duarte/quizifai/internal/extract"
)

const (
	MinQuestions  = 10
	MaxQuestions  = 50
	QuestionsStep = 10
)

// Difficulties are the levels offered by the form, in menu order.
var Difficulties = []string{"Easy", "Medium", "Hard"}

var (
	ErrNothingToSubmit   = errors.New("please provide a topic")
	ErrUnsupportedFile   = errors.New("only .doc, .docx, and .txt files are allowed")
	ErrInvalidQuestions  = fmt.Errorf("number of questions must be a multiple of %d between %d and %d", QuestionsStep, MinQuestions, MaxQuestions)
	ErrInvalidDifficulty = errors.New("difficulty must be Easy, Medium or Hard")
)

// Generator is the quiz service as seen from the client.
type Generator interface {
	GenerateQuiz(ctx context.Context, req aiquiz.QuizRequest) (*aiquiz.Quiz, error)
	GenerateQuizFromFile(ctx context.Context, name string, data []byte, numQuestions int, difficulty string) (*aiquiz.Quiz, error)
}

type File struct {
	Name string
	Data []byte
}

// Form collects the input for one generation request.
type Form struct {
	Topic string

	file         *File
	numQuestions int
	difficulty   string
}

func NewForm() *Form {
	return &Form{
		numQuestions: MinQuestions,
		difficulty:   Difficulties[0],
	}
}

func (f *Form) NumQuestions() int { return f.numQuestions }

func (f *Form) CanIncrement() bool { return f.numQuestions < MaxQuestions }

func (f *Form) CanDecrement() bool { return f.numQuestions > MinQuestions }

func (f *Form) IncrementQuestions() {
	if f.CanIncrement() {
		f.numQuestions += QuestionsStep
	}
}

func (f *Form) DecrementQuestions() {
	if f.CanDecrement() {
		f.numQuestions -= QuestionsStep
	}
}

func (f *Form) SetNumQuestions(n int) error {
	if n < MinQuestions || n > MaxQuestions || n%QuestionsStep != 0 {
		return ErrInvalidQuestions
	}
	f.numQuestions = n
	return nil
}

func (f *Form) Difficulty() string { return f.difficulty }

// SetDifficulty accepts any casing of the offered levels.
func (f *Form) SetDifficulty(d string) error {
	level, ok := lo.Find(Difficulties, func(item string) bool {
		return strings.EqualFold(item, strings.TrimSpace(d))
	})
	if !ok {
		return ErrInvalidDifficulty
	}
	f.difficulty = level
	return nil
}

func (f *Form) File() *File { return f.file }

// AttachFile keeps the document and, when its text can be read locally,
// replaces the topic with that text. Documents that cannot be read here
// are sent to the server as an upload on submit.
func (f *Form) AttachFile(name, mimeType string, data []byte) error {
	if !extract.Allowed(name, mimeType) {
		return ErrUnsupportedFile
	}

	f.file = &File{Name: name, Data: data}
	if text, err := extract.Text(name, mimeType, data); err == nil {
		f.Topic = text
	}
	return nil
}

// RemoveFile drops the document together with the topic taken from it.
func (f *Form) RemoveFile() {
	f.file = nil
	f.Topic = ""
}

func (f *Form) CanSubmit() bool {
	return strings.TrimSpace(f.Topic) != "" || f.file != nil
}

// Submit sends the form and returns the presentation of the new quiz. On
// error the form is left as it was.
func (f *Form) Submit(ctx context.Context, g Generator) (*Presentation, error) {
	if !f.CanSubmit() {
		return nil, ErrNothingToSubmit
	}

	var (
		quiz *aiquiz.Quiz
		err  error
	)
	if strings.TrimSpace(f.Topic) == "" {
		quiz, err = g.GenerateQuizFromFile(ctx, f.file.Name, f.file.Data, f.numQuestions, f.difficulty)
	} else {
		quiz, err = g.GenerateQuiz(ctx, aiquiz.QuizRequest{
			Topic:        f.Topic,
			NumQuestions: f.numQuestions,
			Difficulty:   f.difficulty,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate quiz: %w", err)
	}

	return NewPresentation(quiz), nil
}
