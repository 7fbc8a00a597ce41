package utils

import (
	"context"
	"quizboard/database"
	"quizboard/logger"
	"quizboard/repository"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeQuizCloseScheduler starts a cron that deactivates quizzes whose
// closesAt has passed. The caller owns the returned cron and stops it on shutdown.
func InitializeQuizCloseScheduler(spec string) (*cron.Cron, error) {
	log := logger.Log.With("component", "quiz-close-scheduler")

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		closed, err := CloseExpiredQuizzes(context.Background(), time.Now())
		if err != nil {
			log.Error("closing expired quizzes", "error", err)
			return
		}
		if closed > 0 {
			log.Info("closed expired quizzes", "count", closed)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Info("scheduler started", "spec", spec)
	return c, nil
}

// CloseExpiredQuizzes deactivates active quizzes with closesAt at or before at.
func CloseExpiredQuizzes(ctx context.Context, at time.Time) (int64, error) {
	repo := repository.NewQuizRepo(database.Database.Db, logger.Log)
	return repo.CloseExpired(ctx, at)
}
