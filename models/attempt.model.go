package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizAttempt is a learner's completion record for a quiz.
type QuizAttempt struct {
	ID        string                   `json:"id" gorm:"type:varchar(36);primaryKey"`
	QuizID    string                   `json:"quizId" gorm:"type:varchar(36);index;not null"`
	UserID    string                   `json:"userId" gorm:"type:varchar(36);index;not null"`
	Answers   datatypes.JSONSlice[int] `json:"answers"` // selected option index per question
	Score     int                      `json:"score"`
	MaxScore  int                      `json:"maxScore"`
	CreatedAt time.Time                `json:"createdAt"`
}

func (a *QuizAttempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Progress returns the score as a percentage of MaxScore.
func (a QuizAttempt) Progress() float64 {
	if a.MaxScore <= 0 {
		return 0
	}
	return float64(a.Score) / float64(a.MaxScore) * 100
}
