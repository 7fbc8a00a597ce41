package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz is owned by the teacher who created it. UserID never changes after creation.
type Quiz struct {
	ID          string     `json:"id" gorm:"type:varchar(36);primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description *string    `json:"description"`
	UserID      string     `json:"userId" gorm:"type:varchar(36);index;not null"`
	IsActive    bool       `json:"isActive" gorm:"default:false"`
	ClosesAt    *time.Time `json:"closesAt"`
	Questions   []Question `json:"questions" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (q *Quiz) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

// Question is a single multiple choice entry of a quiz, ordered by Position.
type Question struct {
	ID            string                      `json:"id" gorm:"type:varchar(36);primaryKey"`
	QuizID        string                      `json:"quizId" gorm:"type:varchar(36);index;not null"`
	Prompt        string                      `json:"prompt" gorm:"not null"`
	Options       datatypes.JSONSlice[string] `json:"options"`
	CorrectOption int                         `json:"-"`
	Position      int                         `json:"position" gorm:"default:0"`
	CreatedAt     time.Time                   `json:"createdAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

// QuizWithProgress is the dashboard view of a quiz for one learner. It is never persisted.
type QuizWithProgress struct {
	Quiz
	Progress    *float64 `json:"progress"`
	TeacherName string   `json:"teacherName"`
	IsAttempted bool     `json:"isAttempted"`
}

// DashboardQuizzes carries two independently sourced lists that may overlap.
type DashboardQuizzes struct {
	ActiveQuizzes    []QuizWithProgress `json:"activeQuizzes"`
	AttemptedQuizzes []QuizWithProgress `json:"attemptedQuizzes"`
}
