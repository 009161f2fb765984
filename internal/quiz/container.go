package quiz

import (
	"fmt"

	"gorm.io/gorm"
)

type QuizContainer struct {
	Handler *Handler
	Service QuizService
}

func NewQuizContainer(db *gorm.DB) (*QuizContainer, error) {
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrating saved quizzes: %w", err)
	}

	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
	}, nil
}
