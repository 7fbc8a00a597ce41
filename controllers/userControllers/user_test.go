package userControllers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizboard/models"
	"quizboard/testutil"
)

func call(t *testing.T, method, path, token, body string) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := testutil.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := map[string]interface{}{}
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestFollowTeacher(t *testing.T) {
	db := testutil.DB(t)
	teacher := testutil.User(t, db, models.RoleTeacher)
	learner := testutil.User(t, db, models.RoleStudent)
	token := testutil.Token(t, learner)

	status, _ := call(t, http.MethodPost, "/api/teachers/"+teacher.ID+"/follow", token, "")
	require.Equal(t, http.StatusOK, status)

	status, _ = call(t, http.MethodPost, "/api/teachers/"+teacher.ID+"/follow", token, "")
	require.Equal(t, http.StatusOK, status, "following twice is a no-op")

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Where("follower_id = ?", learner.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	status, _ = call(t, http.MethodDelete, "/api/teachers/"+teacher.ID+"/follow", token, "")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, db.Model(&models.Follow{}).Where("follower_id = ?", learner.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestFollowTeacher_Rejections(t *testing.T) {
	db := testutil.DB(t)
	teacher := testutil.User(t, db, models.RoleTeacher)
	student := testutil.User(t, db, models.RoleStudent)

	status, _ := call(t, http.MethodPost, "/api/teachers/"+student.ID+"/follow", testutil.Token(t, teacher), "")
	assert.Equal(t, http.StatusNotFound, status, "students cannot be followed")

	status, _ = call(t, http.MethodPost, "/api/teachers/missing/follow", testutil.Token(t, student), "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = call(t, http.MethodPost, "/api/teachers/"+teacher.ID+"/follow", testutil.Token(t, teacher), "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, http.MethodPost, "/api/teachers/"+teacher.ID+"/follow", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestProfile(t *testing.T) {
	db := testutil.DB(t)
	teacher := testutil.User(t, db, models.RoleTeacher)
	learner := testutil.User(t, db, models.RoleStudent)
	testutil.Follow(t, db, learner.ID, teacher.ID)
	token := testutil.Token(t, learner)

	status, body := call(t, http.MethodGet, "/api/users/me", token, "")
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	following := data["following"].([]interface{})
	require.Len(t, following, 1)
	assert.Equal(t, teacher.ID, following[0].(map[string]interface{})["id"])

	status, body = call(t, http.MethodPatch, "/api/users/me", token, `{"name": "  Grace  "}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Grace", body["data"].(map[string]interface{})["name"])

	status, _ = call(t, http.MethodPatch, "/api/users/me", token, `{"name": ""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}
