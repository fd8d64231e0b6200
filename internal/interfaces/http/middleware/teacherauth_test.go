package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/internal/domain/teacher"
	"schoolhub/internal/interfaces/http/handlers/testutil"
	"schoolhub/internal/shared/auth"
)

type fakeTeacherRepo struct {
	teachers map[string]*teacher.Teacher
	err      error
}

func newFakeTeacherRepo(t *testing.T, entries map[string]string) *fakeTeacherRepo {
	t.Helper()
	repo := &fakeTeacherRepo{teachers: make(map[string]*teacher.Teacher)}
	for username, displayName := range entries {
		entity, err := teacher.NewTeacher(username, displayName)
		require.NoError(t, err)
		repo.teachers[username] = entity
	}
	return repo
}

func (f *fakeTeacherRepo) Exists(ctx context.Context, username string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.teachers[username] != nil, nil
}

func (f *fakeTeacherRepo) GetByUsername(ctx context.Context, username string) (*teacher.Teacher, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.teachers[username], nil
}

func performAuthRequest(t *testing.T, repo teacher.Repository, query string) (*httptest.ResponseRecorder, *auth.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var captured *auth.Context

	engine := gin.New()
	engine.GET("/announcements", TeacherAuth(repo, testutil.NewMockLogger()), func(c *gin.Context) {
		if ctx, ok := auth.FromGin(c); ok {
			captured = &ctx
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/announcements"+query, nil)
	engine.ServeHTTP(w, req)

	return w, captured
}

func TestTeacherAuth_KnownTeacher(t *testing.T) {
	repo := newFakeTeacherRepo(t, map[string]string{"mrodriguez": "Ms. Rodriguez"})

	w, captured := performAuthRequest(t, repo, "?username=mrodriguez")

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "mrodriguez", captured.Username)
	assert.Equal(t, "Ms. Rodriguez", captured.DisplayName)
}

func TestTeacherAuth_UnknownTeacher(t *testing.T) {
	repo := newFakeTeacherRepo(t, map[string]string{"mrodriguez": "Ms. Rodriguez"})

	w, captured := performAuthRequest(t, repo, "?username=ghost")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, captured)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "unauthorized", resp.Error.Type)
	assert.Equal(t, "Unauthorized", resp.Error.Message)
}

func TestTeacherAuth_MissingUsername(t *testing.T) {
	repo := newFakeTeacherRepo(t, map[string]string{"mrodriguez": "Ms. Rodriguez"})

	w, captured := performAuthRequest(t, repo, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, captured)
}
