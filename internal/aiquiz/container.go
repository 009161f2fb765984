package aiquiz

import (
	"context"

	"github.com/saulo-duarte/quizifai/internal/config"
)

type AIQuizContainer struct {
	Handler *Handler
	Service Service
}

func NewAIQuizContainer(ctx context.Context, cfg *config.Config) (*AIQuizContainer, error) {
	provider, err := NewGeminiProvider(ctx, cfg.AI.GeminiAPIKey, cfg.AI.Model)
	if err != nil {
		return nil, err
	}
	return NewAIQuizContainerWithProvider(provider, cfg), nil
}

func NewAIQuizContainerWithProvider(provider Provider, cfg *config.Config) *AIQuizContainer {
	service := NewService(provider, Options{
		DefaultQuestions:  cfg.Quiz.DefaultQuestions,
		MaxQuestions:      cfg.Quiz.MaxQuestions,
		DefaultDifficulty: cfg.Quiz.DefaultDifficulty,
	})
	handler := NewHandler(service, cfg.Upload.MaxBytes)

	return &AIQuizContainer{
		Handler: handler,
		Service: service,
	}
}
