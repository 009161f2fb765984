package session_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/saulo-duarte/quizifai/internal/aiquiz"
	"github.com/saulo-duarte/quizifai/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	quiz *aiquiz.Quiz
	err  error

	requests []aiquiz.QuizRequest
	uploads  []string
}

func (f *fakeGenerator) GenerateQuiz(_ context.Context, req aiquiz.QuizRequest) (*aiquiz.Quiz, error) {
	f.requests = append(f.requests, req)
	return f.quiz, f.err
}

func (f *fakeGenerator) GenerateQuizFromFile(_ context.Context, name string, _ []byte, _ int, _ string) (*aiquiz.Quiz, error) {
	f.uploads = append(f.uploads, name)
	return f.quiz, f.err
}

func sampleQuiz() *aiquiz.Quiz {
	return &aiquiz.Quiz{
		Title:   "Capitals",
		Summary: "A quiz about capitals.",
		Questions: []aiquiz.Question{
			{Question: "Capital of France?", Options: []string{"Paris", "Rome", "Madrid", "Berlin"}, Answer: "Paris"},
			{Question: "Capital of Italy?", Options: []string{"Paris", "Rome", "Madrid", "Berlin"}, Answer: "Rome"},
			{Question: "Capital of the UK?", Options: []string{"Paris", "London", "Madrid", "Berlin"}, Answer: "London"},
		},
	}
}

func TestForm_Defaults(t *testing.T) {
	f := session.NewForm()

	assert.Equal(t, 10, f.NumQuestions())
	assert.Equal(t, "Easy", f.Difficulty())
	assert.False(t, f.CanSubmit())
	assert.Nil(t, f.File())
}

func TestForm_QuestionStepper(t *testing.T) {
	f := session.NewForm()

	f.DecrementQuestions()
	assert.Equal(t, 10, f.NumQuestions(), "cannot go below 10")
	assert.False(t, f.CanDecrement())

	for range 10 {
		f.IncrementQuestions()
	}
	assert.Equal(t, 50, f.NumQuestions(), "cannot go above 50")
	assert.False(t, f.CanIncrement())

	f.DecrementQuestions()
	assert.Equal(t, 40, f.NumQuestions())

	assert.ErrorIs(t, f.SetNumQuestions(25), session.ErrInvalidQuestions)
	assert.ErrorIs(t, f.SetNumQuestions(60), session.ErrInvalidQuestions)
	require.NoError(t, f.SetNumQuestions(30))
	assert.Equal(t, 30, f.NumQuestions())
}

func TestForm_SetDifficulty(t *testing.T) {
	f := session.NewForm()

	require.NoError(t, f.SetDifficulty("hard"))
	assert.Equal(t, "Hard", f.Difficulty())

	assert.ErrorIs(t, f.SetDifficulty("expert"), session.ErrInvalidDifficulty)
	assert.Equal(t, "Hard", f.Difficulty())
}

func TestForm_CanSubmit(t *testing.T) {
	f := session.NewForm()

	f.Topic = "   \n"
	assert.False(t, f.CanSubmit())

	f.Topic = "volcanoes"
	assert.True(t, f.CanSubmit())
}

func TestForm_AttachFile(t *testing.T) {
	f := session.NewForm()

	err := f.AttachFile("slides.pdf", "application/pdf", []byte("%PDF"))
	assert.ErrorIs(t, err, session.ErrUnsupportedFile)
	assert.Nil(t, f.File())

	require.NoError(t, f.AttachFile("notes.txt", "text/plain", []byte("Plate tectonics\n")))
	assert.Equal(t, "Plate tectonics", f.Topic)
	require.NotNil(t, f.File())
	assert.Equal(t, "notes.txt", f.File().Name)

	f.RemoveFile()
	assert.Nil(t, f.File())
	assert.Empty(t, f.Topic)
	assert.False(t, f.CanSubmit())
}

func TestForm_AttachDocx(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>Mitochondria</w:t></w:r></w:p></w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	f := session.NewForm()
	require.NoError(t, f.AttachFile("cells.docx", "", buf.Bytes()))

	assert.Equal(t, "Mitochondria", f.Topic)
}

func TestForm_Submit_NothingToSubmit(t *testing.T) {
	gen := &fakeGenerator{quiz: sampleQuiz()}

	p, err := session.NewForm().Submit(context.Background(), gen)

	assert.Nil(t, p)
	assert.ErrorIs(t, err, session.ErrNothingToSubmit)
	assert.Empty(t, gen.requests)
	assert.Empty(t, gen.uploads)
}

func TestForm_Submit_Topic(t *testing.T) {
	gen := &fakeGenerator{quiz: sampleQuiz()}
	f := session.NewForm()
	f.Topic = "European capitals"
	f.IncrementQuestions()
	require.NoError(t, f.SetDifficulty("Medium"))

	p, err := f.Submit(context.Background(), gen)

	require.NoError(t, err)
	assert.Equal(t, session.ModeInitial, p.Mode())
	require.Len(t, gen.requests, 1)
	assert.Equal(t, aiquiz.QuizRequest{Topic: "European capitals", NumQuestions: 20, Difficulty: "Medium"}, gen.requests[0])
}

func TestForm_Submit_UploadWhenTextUnreadable(t *testing.T) {
	gen := &fakeGenerator{quiz: sampleQuiz()}
	f := session.NewForm()
	require.NoError(t, f.AttachFile("old.doc", "application/msword", []byte{0xD0, 0xCF, 0x11, 0xE0}))
	assert.Empty(t, f.Topic)
	assert.True(t, f.CanSubmit())

	_, err := f.Submit(context.Background(), gen)

	require.NoError(t, err)
	assert.Equal(t, []string{"old.doc"}, gen.uploads)
	assert.Empty(t, gen.requests)
}

func TestForm_Submit_FailureKeepsInput(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("boom")}
	f := session.NewForm()
	f.Topic = "volcanoes"

	p, err := f.Submit(context.Background(), gen)

	assert.Nil(t, p)
	assert.ErrorContains(t, err, "boom")
	assert.Equal(t, "volcanoes", f.Topic)
}

func TestPresentation_Transitions(t *testing.T) {
	p := session.NewPresentation(sampleQuiz())
	assert.Equal(t, session.ModeInitial, p.Mode())

	require.NoError(t, p.View())
	assert.Equal(t, session.ModeView, p.Mode())

	p.Back()
	assert.Equal(t, session.ModeInitial, p.Mode())

	require.NoError(t, p.Take())
	assert.Equal(t, session.ModeTake, p.Mode())
	assert.ErrorIs(t, p.View(), session.ErrInvalidTransition)
	assert.Equal(t, session.ModeTake, p.Mode())

	p.Back()
	require.NoError(t, p.View())
	require.NoError(t, p.Take(), "take is reachable from the preview")
	assert.Equal(t, "take", p.Mode().String())
}

func TestPresentation_SelectAnswerOverwrites(t *testing.T) {
	p := session.NewPresentation(sampleQuiz())
	require.NoError(t, p.Take())

	require.NoError(t, p.SelectAnswer(2, "Paris"))
	require.NoError(t, p.SelectAnswer(2, "London"))

	answers := p.Answers()
	assert.Equal(t, map[int]string{2: "London"}, answers)

	got, ok := p.Answer(2)
	assert.True(t, ok)
	assert.Equal(t, "London", got)

	_, ok = p.Answer(0)
	assert.False(t, ok)
}

func TestPresentation_SelectAnswerErrors(t *testing.T) {
	p := session.NewPresentation(sampleQuiz())

	assert.ErrorIs(t, p.SelectAnswer(0, "Paris"), session.ErrNotTaking)

	require.NoError(t, p.Take())
	assert.ErrorIs(t, p.SelectAnswer(3, "Paris"), session.ErrQuestionOutOfRange)
	assert.ErrorIs(t, p.SelectAnswer(-1, "Paris"), session.ErrQuestionOutOfRange)
	assert.Empty(t, p.Answers())
}

func TestPresentation_SubmitQuizKeepsModeAndQuiz(t *testing.T) {
	quiz := sampleQuiz()
	p := session.NewPresentation(quiz)
	require.NoError(t, p.Take())
	require.NoError(t, p.SelectAnswer(0, "Rome"))
	before := p.Questions()

	sub := p.SubmitQuiz()

	assert.Equal(t, session.ModeTake, p.Mode())
	assert.Equal(t, before, p.Questions())
	assert.Equal(t, map[int]string{0: "Rome"}, sub.Answers)
	assert.Equal(t, 1, sub.Answered)
	assert.Equal(t, 3, sub.Questions)

	sub.Answers[1] = "tampered"
	_, ok := p.Answer(1)
	assert.False(t, ok)
}

func TestPresentation_AnswersSurviveBack(t *testing.T) {
	p := session.NewPresentation(sampleQuiz())
	require.NoError(t, p.Take())
	require.NoError(t, p.SelectAnswer(1, "Rome"))

	p.Back()
	require.NoError(t, p.Take())

	got, _ := p.Answer(1)
	assert.Equal(t, "Rome", got)
}

func TestPresentation_QuestionsInOrder(t *testing.T) {
	quiz := sampleQuiz()
	p := session.NewPresentation(quiz)
	require.NoError(t, p.View())

	texts := make([]string, 0)
	for _, q := range p.Questions() {
		texts = append(texts, q.Question)
	}

	assert.Equal(t, []string{"Capital of France?", "Capital of Italy?", "Capital of the UK?"}, texts)
}

func TestPresentation_Fallbacks(t *testing.T) {
	p := session.NewPresentation(&aiquiz.Quiz{})
	assert.Equal(t, "Your Quiz", p.Title())
	assert.Equal(t, "No summary provided.", p.Summary())

	empty := session.NewPresentation(nil)
	assert.False(t, empty.HasQuiz())
	assert.ErrorIs(t, empty.View(), session.ErrNoQuiz)
	assert.ErrorIs(t, empty.Take(), session.ErrNoQuiz)
}
