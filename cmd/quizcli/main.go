package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/saulo-duarte/quizifai/internal/client"
	"github.com/saulo-duarte/quizifai/internal/config"
	"github.com/saulo-duarte/quizifai/internal/session"
)

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(in io.Reader, out io.Writer) *cli.App {
	return &cli.App{
		Name:      "quizcli",
		Usage:     "generate a multiple choice quiz and take it in the terminal",
		Reader:    in,
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			config.InitLogger(config.LogConfig{Level: c.String("log-level"), Format: "text"})
			config.Log.SetOutput(c.App.ErrWriter)
			return nil
		},
		Commands: []*cli.Command{generateCommand()},
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "request a quiz for a topic or document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Value:   "http://localhost:5000",
				EnvVars: []string{"QUIZIFAI_SERVER"},
				Usage:   "base URL of the quiz API",
			},
			&cli.StringFlag{Name: "topic", Aliases: []string{"t"}, Usage: "what the quiz is about"},
			&cli.PathFlag{Name: "file", Aliases: []string{"f"}, Usage: ".doc, .docx or .txt file to build the quiz from"},
			&cli.IntFlag{Name: "questions", Aliases: []string{"n"}, Value: session.MinQuestions, Usage: "10, 20, 30, 40 or 50"},
			&cli.StringFlag{Name: "difficulty", Aliases: []string{"d"}, Value: session.Difficulties[0], Usage: "Easy, Medium or Hard"},
		},
		Action: func(c *cli.Context) error {
			form, err := formFromFlags(c)
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			gen := client.New(c.String("server"))
			fmt.Fprintln(c.App.Writer, "Generating quiz...")

			p, err := form.Submit(c.Context, gen)
			if err != nil {
				config.WithContext(c.Context).WithError(err).Debug("Quiz request failed")
				return cli.Exit(err.Error(), 1)
			}

			return runPresentation(p, c.App.Reader, c.App.Writer)
		},
	}
}

func formFromFlags(c *cli.Context) (*session.Form, error) {
	form := session.NewForm()
	form.Topic = c.String("topic")

	if path := c.Path("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if err := form.AttachFile(filepath.Base(path), "", data); err != nil {
			return nil, err
		}
	}
	if err := form.SetNumQuestions(c.Int("questions")); err != nil {
		return nil, err
	}
	if err := form.SetDifficulty(c.String("difficulty")); err != nil {
		return nil, err
	}
	if !form.CanSubmit() {
		return nil, session.ErrNothingToSubmit
	}
	return form, nil
}
