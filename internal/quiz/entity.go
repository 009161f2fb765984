package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SavedQuiz is a generated quiz a signed-in user chose to keep.
type SavedQuiz struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         string    `gorm:"type:text;not null;index" json:"userId"`
	Topic          string    `gorm:"type:text;not null" json:"topic"`
	Difficulty     string    `gorm:"type:text;not null" json:"difficulty"`
	Title          string    `gorm:"type:text" json:"title"`
	Summary        string    `gorm:"type:text" json:"summary"`
	TotalQuestions int       `gorm:"not null;default:0" json:"totalQuestions"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`

	Questions []SavedQuestion `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

type SavedQuestion struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"quizId"`
	Content    string         `gorm:"type:text;not null" json:"question"`
	Options    datatypes.JSON `gorm:"not null" json:"options"`
	Answer     string         `gorm:"type:text;not null" json:"answer"`
	OrderIndex int            `gorm:"not null" json:"orderIndex"`
}

func (q *SavedQuiz) BeforeCreate(*gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

func (q *SavedQuestion) BeforeCreate(*gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
