package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizboard/logger"
	"quizboard/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "token-abc", 2*time.Second, logger.Nop())
}

func jsonHandler(t *testing.T, body models.DashboardQuizzes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dashboardquizzes", r.URL.Path)
		assert.Equal(t, "user-1", r.URL.Query().Get("userId"))
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(body))
	}
}

func TestClient_LoadReconciles(t *testing.T) {
	client := newTestClient(t, jsonHandler(t, models.DashboardQuizzes{
		ActiveQuizzes:    quizzes("1", "2"),
		AttemptedQuizzes: quizzes("2"),
	}))

	view, res := client.Load(context.Background(), "user-1")

	require.NoError(t, res.Err)
	assert.Equal(t, OutcomeLoaded, res.Outcome)
	assert.Len(t, res.Quizzes.ActiveQuizzes, 2, "raw lists are kept as served")
	assert.Equal(t, 1, view.ActiveCount)
	assert.Equal(t, 1, view.AttemptedCount)
	assert.Equal(t, []string{"1"}, ids(view.Sections[0].Items))
}

func TestClient_Empty(t *testing.T) {
	client := newTestClient(t, jsonHandler(t, models.DashboardQuizzes{
		ActiveQuizzes:    []models.QuizWithProgress{},
		AttemptedQuizzes: []models.QuizWithProgress{},
	}))

	view, res := client.Load(context.Background(), "user-1")

	assert.Equal(t, OutcomeEmpty, res.Outcome)
	assert.False(t, res.Failed())
	assert.True(t, view.Empty)
}

func TestClient_ServerErrorLooksEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Internal Error", http.StatusInternalServerError)
	})

	view, res := client.Load(context.Background(), "user-1")

	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.True(t, res.Failed())
	assert.Error(t, res.Err)
	assert.True(t, view.Empty)
	assert.Equal(t, BuildView(models.DashboardQuizzes{}), view)
}

func TestClient_MalformedBodyFails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"activeQuizzes": [`))
	})

	res := client.Fetch(context.Background(), "user-1")

	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.Error(t, res.Err)
}

func TestClient_UnreachableServerFails(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, "", time.Second, logger.Nop())
	view, res := client.Load(context.Background(), "user-1")

	assert.True(t, res.Failed())
	assert.True(t, view.Empty)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "loaded", OutcomeLoaded.String())
	assert.Equal(t, "empty", OutcomeEmpty.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
}
