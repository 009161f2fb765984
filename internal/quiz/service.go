package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizifai/internal/config"
	"github.com/samber/lo"
)

var (
	ErrNotFound    = errors.New("quiz not found")
	ErrInvalidQuiz = errors.New("invalid quiz")
)

type QuizService interface {
	SaveQuiz(ctx context.Context, userID string, req SaveQuizRequest) (*SavedQuizDTO, error)
	GetQuiz(ctx context.Context, userID, quizID string) (*SavedQuizDTO, error)
	ListQuizzesByUser(ctx context.Context, userID string) ([]SavedQuizSummary, error)
	DeleteQuiz(ctx context.Context, userID, quizID string) error
}

type quizService struct {
	repo QuizRepository
}

func NewService(repo QuizRepository) QuizService {
	return &quizService{repo: repo}
}

func (s *quizService) SaveQuiz(ctx context.Context, userID string, req SaveQuizRequest) (*SavedQuizDTO, error) {
	log := config.WithContext(ctx).WithField("user_id", userID)

	req.Topic = strings.TrimSpace(req.Topic)
	if err := validate(req); err != nil {
		log.WithError(err).Warn("Rejected quiz save")
		return nil, err
	}

	saved, err := newSavedQuiz(userID, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, saved); err != nil {
		log.WithError(err).Error("Failed to save quiz")
		return nil, err
	}

	log.WithField("quiz_id", saved.ID.String()).Info("Quiz saved")
	return toDTO(saved)
}

func validate(req SaveQuizRequest) error {
	if req.Topic == "" {
		return fmt.Errorf("%w: topic is required", ErrInvalidQuiz)
	}
	if len(req.Quiz.Questions) == 0 {
		return fmt.Errorf("%w: quiz must contain at least one question", ErrInvalidQuiz)
	}
	for i, q := range req.Quiz.Questions {
		if strings.TrimSpace(q.Question) == "" {
			return fmt.Errorf("%w: question %d has no text", ErrInvalidQuiz, i)
		}
		if len(q.Options) != 4 {
			return fmt.Errorf("%w: question %d must have 4 options", ErrInvalidQuiz, i)
		}
		if !lo.Contains(q.Options, q.Answer) {
			return fmt.Errorf("%w: answer of question %d is not one of its options", ErrInvalidQuiz, i)
		}
	}
	return nil
}

func (s *quizService) GetQuiz(ctx context.Context, userID, quizID string) (*SavedQuizDTO, error) {
	q, err := s.owned(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}
	return toDTO(q)
}

func (s *quizService) ListQuizzesByUser(ctx context.Context, userID string) ([]SavedQuizSummary, error) {
	quizzes, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list quizzes")
		return nil, err
	}
	return toSummaries(quizzes), nil
}

func (s *quizService) DeleteQuiz(ctx context.Context, userID, quizID string) error {
	log := config.WithContext(ctx).WithField("quiz_id", quizID)

	if _, err := s.owned(ctx, userID, quizID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, quizID); err != nil {
		log.WithError(err).Error("Failed to delete quiz")
		return err
	}

	log.Info("Quiz deleted")
	return nil
}

// owned loads a quiz and hides it from everyone but its owner.
func (s *quizService) owned(ctx context.Context, userID, quizID string) (*SavedQuiz, error) {
	if _, err := uuid.Parse(quizID); err != nil {
		return nil, ErrNotFound
	}

	q, err := s.repo.GetByID(ctx, quizID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load quiz")
		return nil, err
	}
	if q == nil || q.UserID != userID {
		return nil, ErrNotFound
	}
	return q, nil
}
