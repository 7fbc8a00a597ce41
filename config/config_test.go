package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { _ = os.Setenv(key, prev) })
		}
		_ = os.Unsetenv(key)
	}
}

func TestRead_Defaults(t *testing.T) {
	unsetenv(t, "DB_DRIVER", "TOKEN_TTL", "QUIZ_CLOSE_SCHEDULE", "REQUEST_TIMEOUT")

	cfg, err := Read()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "* * * * *", cfg.QuizCloseSchedule)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestRead_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_NAME", "quiz.db")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("SALT_ROUND", "12")
	t.Setenv("QUIZ_CLOSE_SCHEDULE", "*/5 * * * *")

	cfg, err := Read()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "quiz.db", cfg.DBName)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.SaltRound)
	assert.Equal(t, "*/5 * * * *", cfg.QuizCloseSchedule)
}

func TestRead_BadDuration(t *testing.T) {
	t.Setenv("TOKEN_TTL", "forever")

	_, err := Read()
	assert.Error(t, err)
}
