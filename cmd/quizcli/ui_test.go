package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/saulo-duarte/quizifai/internal/aiquiz"
	"github.com/saulo-duarte/quizifai/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuiz() *aiquiz.Quiz {
	return &aiquiz.Quiz{
		Title:   "Capitals",
		Summary: "A quiz about capitals.",
		Questions: []aiquiz.Question{
			{Question: "Capital of France?", Options: []string{"Paris", "Rome", "Madrid", "Berlin"}, Answer: "Paris"},
			{Question: "Capital of Italy?", Options: []string{"Paris", "Rome", "Madrid", "Berlin"}, Answer: "Rome"},
			{Question: "Capital of Spain?", Options: []string{"Paris", "Rome", "Madrid", "Berlin"}, Answer: "Madrid"},
		},
	}
}

func TestRunPresentation_TakeAndSubmit(t *testing.T) {
	p := session.NewPresentation(sampleQuiz())
	var out bytes.Buffer

	err := runPresentation(p, strings.NewReader("t\n1a\n1b\ns\nq\n"), &out)

	require.NoError(t, err)
	text := out.String()
	assert.Contains(t, text, "Capitals\nA quiz about capitals.")
	assert.Contains(t, text, "Take Quiz")
	assert.Contains(t, text, "* b) Rome")
	assert.Contains(t, text, "Quiz submitted! Answered 1 of 3.\n  1: Rome\n")
	assert.Equal(t, session.ModeTake, p.Mode(), "submitting keeps the take mode")
	assert.Equal(t, map[int]string{0: "Rome"}, p.Answers())
}

func TestRunPresentation_ViewAndBack(t *testing.T) {
	p := session.NewPresentation(sampleQuiz())
	var out bytes.Buffer

	err := runPresentation(p, strings.NewReader("v\nb\n"), &out)

	require.NoError(t, err)
	text := out.String()
	assert.Contains(t, text, "Preview Quiz\n1. Capital of France?\n2. Capital of Italy?\n3. Capital of Spain?\n")
	assert.Equal(t, session.ModeInitial, p.Mode())
}

func TestRunPresentation_RejectsBadCommands(t *testing.T) {
	p := session.NewPresentation(sampleQuiz())
	var out bytes.Buffer

	err := runPresentation(p, strings.NewReader("s\n1a\nt\n9z\nhello\nq\n"), &out)

	require.NoError(t, err)
	text := out.String()
	assert.Contains(t, text, "Start the quiz before submitting.")
	assert.Contains(t, text, session.ErrNotTaking.Error())
	assert.Contains(t, text, `Unknown command "9z".`)
	assert.Contains(t, text, `Unknown command "hello".`)
	assert.Empty(t, p.Answers())
}

func TestRunPresentation_NoQuiz(t *testing.T) {
	var out bytes.Buffer

	err := runPresentation(session.NewPresentation(nil), strings.NewReader("q\n"), &out)

	require.NoError(t, err)
	assert.Equal(t, "No quiz data found.\n", out.String())
}

func TestRunPresentation_Fallbacks(t *testing.T) {
	quiz := sampleQuiz()
	quiz.Title, quiz.Summary = "", ""
	var out bytes.Buffer

	require.NoError(t, runPresentation(session.NewPresentation(quiz), strings.NewReader(""), &out))

	assert.Contains(t, out.String(), "Your Quiz\nNo summary provided.")
}
