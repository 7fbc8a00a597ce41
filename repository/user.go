package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quizboard/logger"
	"quizboard/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepo interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Follow(ctx context.Context, followerID, teacherID string) error
	Unfollow(ctx context.Context, followerID, teacherID string) error
	UpdateName(ctx context.Context, userID, name string) (*models.User, error)
	Following(ctx context.Context, followerID string) ([]models.User, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	const op = "repository.user.Create"

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, userID string) (*models.User, error) {
	const op = "repository.user.GetByID"

	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "repository.user.GetByEmail"

	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

// Follow is idempotent.
func (r *userRepo) Follow(ctx context.Context, followerID, teacherID string) error {
	const op = "repository.user.Follow"

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Follow{FollowerID: followerID, TeacherID: teacherID}).Error
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *userRepo) Unfollow(ctx context.Context, followerID, teacherID string) error {
	const op = "repository.user.Unfollow"

	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND teacher_id = ?", followerID, teacherID).
		Delete(&models.Follow{}).Error
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *userRepo) UpdateName(ctx context.Context, userID, name string) (*models.User, error) {
	const op = "repository.user.UpdateName"

	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("name", name)
	if res.Error != nil {
		return nil, fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return r.GetByID(ctx, userID)
}

// Following lists the teachers a learner follows, by name.
func (r *userRepo) Following(ctx context.Context, followerID string) ([]models.User, error) {
	const op = "repository.user.Following"

	teachers := []models.User{}
	err := r.db.WithContext(ctx).
		Joins("JOIN follows ON follows.teacher_id = users.id").
		Where("follows.follower_id = ?", followerID).
		Order("users.name asc").
		Find(&teachers).Error
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return teachers, nil
}
