package quiz

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(ctx context.Context, q *SavedQuiz) error
	GetByID(ctx context.Context, id string) (*SavedQuiz, error)
	ListByUser(ctx context.Context, userID string) ([]*SavedQuiz, error)
	Delete(ctx context.Context, id string) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&SavedQuiz{}, &SavedQuestion{})
}

// Create stores the quiz and its questions in one transaction.
func (r *quizRepository) Create(ctx context.Context, q *SavedQuiz) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(q).Error
	})
}

// GetByID returns nil, nil when no quiz has the id.
func (r *quizRepository) GetByID(ctx context.Context, id string) (*SavedQuiz, error) {
	var quiz SavedQuiz
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&quiz, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) ListByUser(ctx context.Context, userID string) ([]*SavedQuiz, error) {
	var quizzes []*SavedQuiz
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", id).Delete(&SavedQuestion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&SavedQuiz{}, "id = ?", id).Error
	})
}
