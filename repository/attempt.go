package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"quizboard/logger"
	"quizboard/models"
)

type AttemptRepo interface {
	Create(ctx context.Context, attempt *models.QuizAttempt) error
}

type attemptRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAttemptRepo(db *gorm.DB, baseLog *logger.Logger) AttemptRepo {
	return &attemptRepo{db: db, log: baseLog.With("repo", "AttemptRepo")}
}

func (r *attemptRepo) Create(ctx context.Context, attempt *models.QuizAttempt) error {
	const op = "repository.attempt.Create"

	if err := r.db.WithContext(ctx).Create(attempt).Error; err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
