package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"quizboard/logger"
	"quizboard/models"
)

var (
	ErrQuizNotFound = errors.New("quiz not found")
	ErrNotOwner     = errors.New("quiz is owned by another user")
)

// QuizUpdates maps column names to new values. Callers build it from an allow-list.
type QuizUpdates map[string]interface{}

type QuizRepo interface {
	Create(ctx context.Context, quiz *models.Quiz) error
	GetByID(ctx context.Context, quizID string) (*models.Quiz, error)
	GetOwned(ctx context.Context, quizID, ownerID string) (*models.Quiz, error)
	DeleteOwned(ctx context.Context, quizID, ownerID string) (*models.Quiz, error)
	UpdateOwned(ctx context.Context, quizID, ownerID string, updates QuizUpdates) (*models.Quiz, error)
	CloseExpired(ctx context.Context, at time.Time) (int64, error)
}

type quizRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizRepo(db *gorm.DB, baseLog *logger.Logger) QuizRepo {
	return &quizRepo{db: db, log: baseLog.With("repo", "QuizRepo")}
}

func (r *quizRepo) Create(ctx context.Context, quiz *models.Quiz) error {
	const op = "repository.quiz.Create"

	if err := r.db.WithContext(ctx).Create(quiz).Error; err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *quizRepo) GetByID(ctx context.Context, quizID string) (*models.Quiz, error) {
	const op = "repository.quiz.GetByID"

	quiz, err := findQuiz(r.db.WithContext(ctx), quizID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return quiz, nil
}

func (r *quizRepo) GetOwned(ctx context.Context, quizID, ownerID string) (*models.Quiz, error) {
	const op = "repository.quiz.GetOwned"

	quiz, err := findQuiz(r.db.WithContext(ctx), quizID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if quiz.UserID != ownerID {
		return nil, fmt.Errorf("%s: %w", op, ErrNotOwner)
	}
	return quiz, nil
}

// DeleteOwned hard-deletes the quiz with its questions and attempts and returns the
// pre-delete snapshot. The final delete carries the owner predicate, so a quiz that
// changed hands or disappeared after the snapshot was read is left untouched.
func (r *quizRepo) DeleteOwned(ctx context.Context, quizID, ownerID string) (*models.Quiz, error) {
	const op = "repository.quiz.DeleteOwned"

	var snapshot *models.Quiz
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		quiz, err := findQuiz(tx, quizID)
		if err != nil {
			return err
		}
		if quiz.UserID != ownerID {
			return ErrNotOwner
		}

		if err := tx.Where("quiz_id = ?", quizID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quizID).Delete(&models.QuizAttempt{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ? AND user_id = ?", quizID, ownerID).Delete(&models.Quiz{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrQuizNotFound
		}

		snapshot = quiz
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r.log.Debug("quiz deleted", "quiz_id", quizID)
	return snapshot, nil
}

// UpdateOwned applies updates with a conditional write scoped to the owner and
// returns the stored record afterwards.
func (r *quizRepo) UpdateOwned(ctx context.Context, quizID, ownerID string, updates QuizUpdates) (*models.Quiz, error) {
	const op = "repository.quiz.UpdateOwned"

	var updated *models.Quiz
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		quiz, err := findQuiz(tx, quizID)
		if err != nil {
			return err
		}
		if quiz.UserID != ownerID {
			return ErrNotOwner
		}
		if len(updates) == 0 {
			updated = quiz
			return nil
		}

		res := tx.Model(&models.Quiz{}).
			Where("id = ? AND user_id = ?", quizID, ownerID).
			Updates(map[string]interface{}(updates))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrQuizNotFound
		}

		updated, err = findQuiz(tx, quizID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// CloseExpired deactivates every active quiz whose closesAt is at or before at.
func (r *quizRepo) CloseExpired(ctx context.Context, at time.Time) (int64, error) {
	const op = "repository.quiz.CloseExpired"

	res := r.db.WithContext(ctx).
		Model(&models.Quiz{}).
		Where("is_active = ? AND closes_at IS NOT NULL AND closes_at <= ?", true, at).
		Update("is_active", false)
	if res.Error != nil {
		return 0, fmt.Errorf("%s: %w", op, res.Error)
	}
	return res.RowsAffected, nil
}

func findQuiz(db *gorm.DB, quizID string) (*models.Quiz, error) {
	var quiz models.Quiz
	err := db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc")
	}).Where("id = ?", quizID).First(&quiz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	return &quiz, nil
}
