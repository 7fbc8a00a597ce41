package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"quizboard/logger"
	"quizboard/models"
	"quizboard/repository"
	"quizboard/testutil"
)

func TestQuizRepo_DeleteOwned(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := repository.NewQuizRepo(db, logger.Nop())

	owner := testutil.User(t, db, models.RoleTeacher)
	other := testutil.User(t, db, models.RoleTeacher)
	learner := testutil.User(t, db, models.RoleStudent)
	quiz := testutil.Quiz(t, db, owner.ID, true)
	testutil.Attempt(t, db, quiz.ID, learner.ID, 1, 2)

	_, err := repo.DeleteOwned(ctx, quiz.ID, other.ID)
	require.ErrorIs(t, err, repository.ErrNotOwner)

	stillThere, err := repo.GetByID(ctx, quiz.ID)
	require.NoError(t, err)
	assert.Len(t, stillThere.Questions, 2)

	deleted, err := repo.DeleteOwned(ctx, quiz.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, quiz.ID, deleted.ID)
	assert.Equal(t, quiz.Title, deleted.Title)
	assert.Len(t, deleted.Questions, 2)

	_, err = repo.GetByID(ctx, quiz.ID)
	assert.ErrorIs(t, err, repository.ErrQuizNotFound)

	var questions, attempts int64
	require.NoError(t, db.Model(&models.Question{}).Where("quiz_id = ?", quiz.ID).Count(&questions).Error)
	require.NoError(t, db.Model(&models.QuizAttempt{}).Where("quiz_id = ?", quiz.ID).Count(&attempts).Error)
	assert.Zero(t, questions)
	assert.Zero(t, attempts)

	_, err = repo.DeleteOwned(ctx, quiz.ID, owner.ID)
	assert.ErrorIs(t, err, repository.ErrQuizNotFound)
}

func TestQuizRepo_UpdateOwned(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := repository.NewQuizRepo(db, logger.Nop())

	owner := testutil.User(t, db, models.RoleTeacher)
	other := testutil.User(t, db, models.RoleTeacher)
	quiz := testutil.Quiz(t, db, owner.ID, true)

	_, err := repo.UpdateOwned(ctx, quiz.ID, other.ID, repository.QuizUpdates{"title": "Hijacked"})
	require.ErrorIs(t, err, repository.ErrNotOwner)

	updated, err := repo.UpdateOwned(ctx, quiz.ID, owner.ID, repository.QuizUpdates{
		"title":       "New",
		"description": nil,
		"is_active":   false,
	})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Nil(t, updated.Description)
	assert.False(t, updated.IsActive)
	assert.Equal(t, owner.ID, updated.UserID)
	assert.Len(t, updated.Questions, 2)

	unchanged, err := repo.UpdateOwned(ctx, quiz.ID, owner.ID, repository.QuizUpdates{})
	require.NoError(t, err)
	assert.Equal(t, "New", unchanged.Title)

	_, err = repo.UpdateOwned(ctx, "missing", owner.ID, repository.QuizUpdates{"title": "x"})
	assert.ErrorIs(t, err, repository.ErrQuizNotFound)
}

func TestQuizRepo_GetOwned(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := repository.NewQuizRepo(db, logger.Nop())

	owner := testutil.User(t, db, models.RoleTeacher)
	quiz := testutil.Quiz(t, db, owner.ID, true)

	got, err := repo.GetOwned(ctx, quiz.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, got.Questions, 2)
	assert.Equal(t, 0, got.Questions[0].Position)
	assert.Equal(t, 1, got.Questions[1].Position)

	_, err = repo.GetOwned(ctx, quiz.ID, "someone-else")
	assert.ErrorIs(t, err, repository.ErrNotOwner)
}

func TestQuizRepo_CloseExpired(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := repository.NewQuizRepo(db, logger.Nop())

	owner := testutil.User(t, db, models.RoleTeacher)
	nowUTC := time.Now().UTC()

	expired := testutil.Quiz(t, db, owner.ID, true)
	future := testutil.Quiz(t, db, owner.ID, true)
	open := testutil.Quiz(t, db, owner.ID, true)
	require.NoError(t, db.Model(&models.Quiz{}).Where("id = ?", expired.ID).Update("closes_at", nowUTC.Add(-time.Hour)).Error)
	require.NoError(t, db.Model(&models.Quiz{}).Where("id = ?", future.ID).Update("closes_at", nowUTC.Add(time.Hour)).Error)

	closed, err := repo.CloseExpired(ctx, nowUTC)
	require.NoError(t, err)
	assert.EqualValues(t, 1, closed)

	for id, wantActive := range map[string]bool{expired.ID: false, future.ID: true, open.ID: true} {
		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, wantActive, got.IsActive, id)
	}
}

// interfere registers a callback that runs change once, inside the transaction,
// right before the conditional write on quizzes.
func interfere(t *testing.T, register func(name string, fn func(*gorm.DB)) error, change func(tx *gorm.DB) error) *bool {
	t.Helper()

	fired := false
	err := register("test:interfere", func(tx *gorm.DB) {
		if fired || tx.Statement.Table != "quizzes" {
			return
		}
		fired = true
		if err := change(tx.Session(&gorm.Session{NewDB: true})); err != nil {
			_ = tx.AddError(err)
		}
	})
	require.NoError(t, err)
	return &fired
}

func TestQuizRepo_DeleteOwned_OwnerChangesBeforeWrite(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := repository.NewQuizRepo(db, logger.Nop())

	owner := testutil.User(t, db, models.RoleTeacher)
	thief := testutil.User(t, db, models.RoleTeacher)
	quiz := testutil.Quiz(t, db, owner.ID, true)

	fired := interfere(t,
		func(name string, fn func(*gorm.DB)) error {
			return db.Callback().Delete().Before("gorm:delete").Register(name, fn)
		},
		func(tx *gorm.DB) error {
			return tx.Exec("UPDATE quizzes SET user_id = ? WHERE id = ?", thief.ID, quiz.ID).Error
		})

	_, err := repo.DeleteOwned(ctx, quiz.ID, owner.ID)
	require.True(t, *fired)
	require.ErrorIs(t, err, repository.ErrQuizNotFound)

	// The whole transaction rolls back: quiz, owner and questions are as before.
	after, err := repo.GetByID(ctx, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, after.UserID)
	assert.Len(t, after.Questions, 2)
}

func TestQuizRepo_UpdateOwned_RowVanishesBeforeWrite(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := repository.NewQuizRepo(db, logger.Nop())

	owner := testutil.User(t, db, models.RoleTeacher)
	quiz := testutil.Quiz(t, db, owner.ID, true)

	fired := interfere(t,
		func(name string, fn func(*gorm.DB)) error {
			return db.Callback().Update().Before("gorm:update").Register(name, fn)
		},
		func(tx *gorm.DB) error {
			return tx.Exec("DELETE FROM quizzes WHERE id = ?", quiz.ID).Error
		})

	_, err := repo.UpdateOwned(ctx, quiz.ID, owner.ID, repository.QuizUpdates{"title": "Hijacked"})
	require.True(t, *fired)
	require.ErrorIs(t, err, repository.ErrQuizNotFound)

	after, err := repo.GetByID(ctx, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, quiz.Title, after.Title)
	assert.Equal(t, owner.ID, after.UserID)
}
