// Package testutil builds in-memory databases, fixtures and tokens for tests.
// It reaches every layer through routers, so importers test from external
// _test packages.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"quizboard/config"
	"quizboard/database"
	"quizboard/middleware"
	"quizboard/models"
	"quizboard/routers"
)

const JWTKey = "test-secret"

// DB opens a private in-memory SQLite database, migrates it and installs it as database.Database.
func DB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := Config()
	cfg.DBName = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	database.Database = database.DbInstance{Db: db}
	return db
}

// App returns a fiber app with every API route registered.
func App() *fiber.App {
	app := fiber.New()
	routers.Setup(app)
	return app
}

// Token signs a bearer token for u with the test configuration.
func Token(t *testing.T, u models.User) string {
	t.Helper()

	token, err := middleware.GenerateJWT(u.ID, u.Name, u.Role)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

// Config installs a test configuration as config.AppConfig.
func Config() *config.Config {
	cfg := &config.Config{
		Env:       "test",
		DBDriver:  "sqlite",
		JWTKey:    JWTKey,
		TokenTTL:  time.Hour,
		SaltRound: bcrypt.MinCost,
	}
	config.AppConfig = cfg
	return cfg
}

func User(t *testing.T, db *gorm.DB, role string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := models.User{
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Password: string(hash),
		Role:     role,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func Quiz(t *testing.T, db *gorm.DB, ownerID string, active bool) models.Quiz {
	t.Helper()

	desc := gofakeit.Sentence(8)
	q := models.Quiz{
		Title:       gofakeit.Sentence(3),
		Description: &desc,
		UserID:      ownerID,
		IsActive:    active,
		Questions: []models.Question{
			{Prompt: "2 + 2?", Options: []string{"3", "4", "5"}, CorrectOption: 1, Position: 0},
			{Prompt: "Capital of France?", Options: []string{"Paris", "Rome"}, CorrectOption: 0, Position: 1},
		},
	}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	return q
}

func Attempt(t *testing.T, db *gorm.DB, quizID, userID string, score, maxScore int) models.QuizAttempt {
	t.Helper()

	a := models.QuizAttempt{QuizID: quizID, UserID: userID, Answers: datatypes.JSONSlice[int]{}, Score: score, MaxScore: maxScore}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("create attempt: %v", err)
	}
	return a
}

func Follow(t *testing.T, db *gorm.DB, followerID, teacherID string) {
	t.Helper()

	if err := db.Create(&models.Follow{FollowerID: followerID, TeacherID: teacherID}).Error; err != nil {
		t.Fatalf("create follow: %v", err)
	}
}
