package repository

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"quizboard/logger"
	"quizboard/models"
)

// DashboardRepo sources the two dashboard lists independently. They are not
// reconciled against each other here.
type DashboardRepo interface {
	ActiveForLearner(ctx context.Context, userID string) ([]models.QuizWithProgress, error)
	AttemptedByLearner(ctx context.Context, userID string) ([]models.QuizWithProgress, error)
}

type dashboardRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDashboardRepo(db *gorm.DB, baseLog *logger.Logger) DashboardRepo {
	return &dashboardRepo{db: db, log: baseLog.With("repo", "DashboardRepo")}
}

// ActiveForLearner returns active quizzes of the teachers userID follows, newest first.
func (r *dashboardRepo) ActiveForLearner(ctx context.Context, userID string) ([]models.QuizWithProgress, error) {
	const op = "repository.dashboard.ActiveForLearner"

	db := r.db.WithContext(ctx)

	var quizzes []models.Quiz
	err := db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc")
	}).
		Joins("JOIN follows ON follows.teacher_id = quizzes.user_id").
		Where("follows.follower_id = ? AND quizzes.is_active = ?", userID, true).
		Order("quizzes.created_at desc").
		Find(&quizzes).Error
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	latest, err := latestAttempts(db, userID, quizIDs(quizzes))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	names, err := teacherNames(db, quizzes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return withProgress(quizzes, latest, names), nil
}

// AttemptedByLearner returns every quiz userID has a completion record for,
// most recently attempted first.
func (r *dashboardRepo) AttemptedByLearner(ctx context.Context, userID string) ([]models.QuizWithProgress, error) {
	const op = "repository.dashboard.AttemptedByLearner"

	db := r.db.WithContext(ctx)

	latest, err := latestAttempts(db, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(latest) == 0 {
		return []models.QuizWithProgress{}, nil
	}

	ids := make([]string, 0, len(latest))
	for id := range latest {
		ids = append(ids, id)
	}

	var quizzes []models.Quiz
	err = db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc")
	}).Where("id IN ?", ids).Find(&quizzes).Error
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sort.SliceStable(quizzes, func(i, j int) bool {
		return latest[quizzes[i].ID].CreatedAt.After(latest[quizzes[j].ID].CreatedAt)
	})

	names, err := teacherNames(db, quizzes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return withProgress(quizzes, latest, names), nil
}

// latestAttempts maps quiz id to the user's most recent attempt. A nil quizIDs
// means every quiz.
func latestAttempts(db *gorm.DB, userID string, quizIDs []string) (map[string]models.QuizAttempt, error) {
	out := make(map[string]models.QuizAttempt)
	if quizIDs != nil && len(quizIDs) == 0 {
		return out, nil
	}

	q := db.Where("user_id = ?", userID)
	if quizIDs != nil {
		q = q.Where("quiz_id IN ?", quizIDs)
	}

	var attempts []models.QuizAttempt
	if err := q.Order("created_at asc").Find(&attempts).Error; err != nil {
		return nil, err
	}
	for _, a := range attempts {
		out[a.QuizID] = a
	}
	return out, nil
}

func teacherNames(db *gorm.DB, quizzes []models.Quiz) (map[string]string, error) {
	names := make(map[string]string)
	if len(quizzes) == 0 {
		return names, nil
	}

	ownerIDs := make([]string, 0, len(quizzes))
	seen := make(map[string]bool)
	for _, q := range quizzes {
		if !seen[q.UserID] {
			seen[q.UserID] = true
			ownerIDs = append(ownerIDs, q.UserID)
		}
	}

	var users []models.User
	if err := db.Select("id", "name").Where("id IN ?", ownerIDs).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names, nil
}

func withProgress(quizzes []models.Quiz, latest map[string]models.QuizAttempt, names map[string]string) []models.QuizWithProgress {
	out := make([]models.QuizWithProgress, 0, len(quizzes))
	for _, q := range quizzes {
		item := models.QuizWithProgress{
			Quiz:        q,
			TeacherName: names[q.UserID],
		}
		if a, ok := latest[q.ID]; ok {
			p := a.Progress()
			item.Progress = &p
			item.IsAttempted = true
		}
		out = append(out, item)
	}
	return out
}

func quizIDs(quizzes []models.Quiz) []string {
	ids := make([]string, 0, len(quizzes))
	for _, q := range quizzes {
		ids = append(ids, q.ID)
	}
	return ids
}
