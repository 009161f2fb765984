package quiz

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizifai/internal/aiquiz"
	"github.com/samber/lo"
)

type SaveQuizRequest struct {
	Quiz       aiquiz.Quiz `json:"quiz"`
	Topic      string      `json:"topic"`
	Difficulty string      `json:"difficulty"`
}

type SavedQuizDTO struct {
	ID         uuid.UUID   `json:"id"`
	Topic      string      `json:"topic"`
	Difficulty string      `json:"difficulty"`
	CreatedAt  time.Time   `json:"createdAt"`
	Quiz       aiquiz.Quiz `json:"quiz"`
}

// SavedQuizSummary is one row of the caller's quiz list.
type SavedQuizSummary struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Topic          string    `json:"topic"`
	Difficulty     string    `json:"difficulty"`
	TotalQuestions int       `json:"totalQuestions"`
	CreatedAt      time.Time `json:"createdAt"`
}

func newSavedQuiz(userID string, req SaveQuizRequest) (*SavedQuiz, error) {
	questions := make([]SavedQuestion, 0, len(req.Quiz.Questions))
	for i, q := range req.Quiz.Questions {
		opts, err := json.Marshal(q.Options)
		if err != nil {
			return nil, fmt.Errorf("encoding options of question %d: %w", i, err)
		}
		questions = append(questions, SavedQuestion{
			Content:    q.Question,
			Options:    opts,
			Answer:     q.Answer,
			OrderIndex: i,
		})
	}

	return &SavedQuiz{
		UserID:         userID,
		Topic:          req.Topic,
		Difficulty:     aiquiz.NormalizeDifficulty(req.Difficulty),
		Title:          req.Quiz.Title,
		Summary:        req.Quiz.Summary,
		TotalQuestions: len(questions),
		Questions:      questions,
	}, nil
}

func toDTO(q *SavedQuiz) (*SavedQuizDTO, error) {
	questions := make([]aiquiz.Question, 0, len(q.Questions))
	for _, sq := range q.Questions {
		var opts []string
		if err := json.Unmarshal(sq.Options, &opts); err != nil {
			return nil, fmt.Errorf("decoding options of question %s: %w", sq.ID, err)
		}
		questions = append(questions, aiquiz.Question{
			Question: sq.Content,
			Options:  opts,
			Answer:   sq.Answer,
		})
	}

	return &SavedQuizDTO{
		ID:         q.ID,
		Topic:      q.Topic,
		Difficulty: q.Difficulty,
		CreatedAt:  q.CreatedAt,
		Quiz: aiquiz.Quiz{
			Title:     q.Title,
			Summary:   q.Summary,
			Questions: questions,
		},
	}, nil
}

func toSummaries(quizzes []*SavedQuiz) []SavedQuizSummary {
	return lo.Map(quizzes, func(q *SavedQuiz, _ int) SavedQuizSummary {
		return SavedQuizSummary{
			ID:             q.ID,
			Title:          q.Title,
			Topic:          q.Topic,
			Difficulty:     q.Difficulty,
			TotalQuestions: q.TotalQuestions,
			CreatedAt:      q.CreatedAt,
		}
	})
}
