package main

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/saulo-duarte/quizifai/internal/session"
)

const optionLetters = "abcd"

type ui struct {
	in  *bufio.Scanner
	out io.Writer
	p   *session.Presentation
}

// runPresentation drives the presentation modes from line commands until
// the user quits or input ends.
func runPresentation(p *session.Presentation, in io.Reader, out io.Writer) error {
	u := &ui{in: bufio.NewScanner(in), out: out, p: p}

	if !p.HasQuiz() {
		fmt.Fprintln(out, "No quiz data found.")
		return nil
	}

	fmt.Fprintf(out, "\n%s\n%s\n", p.Title(), p.Summary())
	u.render()

	for {
		fmt.Fprint(out, "> ")
		if !u.in.Scan() {
			fmt.Fprintln(out)
			return u.in.Err()
		}
		if quit := u.handle(strings.TrimSpace(strings.ToLower(u.in.Text()))); quit {
			return nil
		}
	}
}

func (u *ui) handle(cmd string) (quit bool) {
	switch cmd {
	case "":
		return false
	case "q", "quit":
		return true
	case "v", "view":
		u.report(u.p.View())
	case "t", "take":
		u.report(u.p.Take())
	case "b", "back":
		u.p.Back()
	case "s", "submit":
		if u.p.Mode() != session.ModeTake {
			fmt.Fprintln(u.out, "Start the quiz before submitting.")
			return false
		}
		u.printSubmission(u.p.SubmitQuiz())
		return false
	default:
		index, option, ok := u.parseAnswer(cmd)
		if !ok {
			fmt.Fprintf(u.out, "Unknown command %q.\n", cmd)
			return false
		}
		if err := u.p.SelectAnswer(index, option); err != nil {
			fmt.Fprintln(u.out, err)
			return false
		}
	}
	u.render()
	return false
}

// parseAnswer reads commands like "2c": question 2, third option.
func (u *ui) parseAnswer(cmd string) (int, string, bool) {
	if len(cmd) < 2 {
		return 0, "", false
	}
	n, err := strconv.Atoi(cmd[:len(cmd)-1])
	if err != nil {
		return 0, "", false
	}
	letter := strings.IndexByte(optionLetters, cmd[len(cmd)-1])
	questions := u.p.Questions()
	if letter < 0 || n < 1 || n > len(questions) || letter >= len(questions[n-1].Options) {
		return 0, "", false
	}
	return n - 1, questions[n-1].Options[letter], true
}

func (u *ui) report(err error) {
	if err != nil {
		fmt.Fprintln(u.out, err)
	}
}

func (u *ui) render() {
	switch u.p.Mode() {
	case session.ModeInitial:
		fmt.Fprintln(u.out, "\n[v] View  [t] Take  [q] Quit")
	case session.ModeView:
		fmt.Fprintln(u.out, "\nPreview Quiz")
		for i, q := range u.p.Questions() {
			fmt.Fprintf(u.out, "%d. %s\n", i+1, q.Question)
		}
		fmt.Fprintln(u.out, "\n[b] Back  [t] Take  [q] Quit")
	case session.ModeTake:
		fmt.Fprintln(u.out, "\nTake Quiz")
		for i, q := range u.p.Questions() {
			fmt.Fprintf(u.out, "%d. %s\n", i+1, q.Question)
			selected, _ := u.p.Answer(i)
			for j, opt := range q.Options {
				mark := " "
				if opt == selected {
					mark = "*"
				}
				fmt.Fprintf(u.out, "  %s %c) %s\n", mark, optionLetters[j%len(optionLetters)], opt)
			}
		}
		fmt.Fprintln(u.out, "\nAnswer with <question><letter> (e.g. 1b)  [b] Back  [s] Submit  [q] Quit")
	}
}

func (u *ui) printSubmission(s session.Submission) {
	fmt.Fprintf(u.out, "Quiz submitted! Answered %d of %d.\n", s.Answered, s.Questions)

	indexes := lo.Keys(s.Answers)
	slices.Sort(indexes)
	for _, i := range indexes {
		fmt.Fprintf(u.out, "  %d: %s\n", i+1, s.Answers[i])
	}
}
