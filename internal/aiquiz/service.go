package aiquiz

import (
	"context"
	"strings"

	"github.com/saulo-duarte/quizifai/internal/config"
	"github.com/sirupsen/logrus"
)

type Service interface {
	GenerateQuiz(ctx context.Context, req QuizRequest) (*GenerateResponse, error)
}

type Options struct {
	DefaultQuestions  int
	MaxQuestions      int
	DefaultDifficulty string
}

type service struct {
	provider Provider
	opts     Options
}

func NewService(provider Provider, opts Options) Service {
	if opts.DefaultQuestions <= 0 {
		opts.DefaultQuestions = 10
	}
	if opts.MaxQuestions < opts.DefaultQuestions {
		opts.MaxQuestions = opts.DefaultQuestions
	}
	if opts.DefaultDifficulty == "" {
		opts.DefaultDifficulty = DifficultyEasy
	}
	return &service{provider: provider, opts: opts}
}

// GenerateQuiz makes exactly one upstream call. Every failure is returned as is.
func (s *service) GenerateQuiz(ctx context.Context, req QuizRequest) (*GenerateResponse, error) {
	log := config.WithContext(ctx)

	req, err := s.resolve(req)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"num_questions": req.NumQuestions,
		"difficulty":    req.Difficulty,
		"topic_length":  len(req.Topic),
	}).Info("Generating quiz")

	raw, err := s.provider.GenerateText(ctx, BuildPrompt(req))
	if err != nil {
		return nil, err
	}

	cleaned := CleanResponse(raw)
	quiz, err := DecodeQuiz(cleaned)
	if err != nil {
		log.WithError(err).Errorf("[AIQUIZ] Failed to decode quiz. Cleaned content:\n%s", cleaned)
		return nil, err
	}

	if len(quiz.Questions) != req.NumQuestions {
		log.Warnf("[AIQUIZ] Requested %d questions, model returned %d", req.NumQuestions, len(quiz.Questions))
	}

	log.Infof("[AIQUIZ] Generated %d questions", len(quiz.Questions))
	return &GenerateResponse{
		Quiz:         quiz,
		NumQuestions: req.NumQuestions,
		Difficulty:   req.Difficulty,
	}, nil
}

func (s *service) resolve(req QuizRequest) (QuizRequest, error) {
	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		return req, &ValidationError{Field: "topic", Message: "Topic is required"}
	}

	switch {
	case req.NumQuestions <= 0:
		req.NumQuestions = s.opts.DefaultQuestions
	case req.NumQuestions > s.opts.MaxQuestions:
		req.NumQuestions = s.opts.MaxQuestions
	}

	req.Difficulty = NormalizeDifficulty(req.Difficulty)
	if req.Difficulty == "" {
		req.Difficulty = NormalizeDifficulty(s.opts.DefaultDifficulty)
	}
	return req, nil
}
