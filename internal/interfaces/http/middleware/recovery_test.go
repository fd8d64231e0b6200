package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/internal/interfaces/http/handlers/testutil"
	"schoolhub/internal/shared/errors"
)

func performRequest(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestErrorHandler_MapsDeferredErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(ErrorHandler())
	engine.GET("/missing", func(c *gin.Context) {
		_ = c.Error(errors.NewNotFoundError("Announcement not found"))
	})

	w := performRequest(engine, http.MethodGet, "/missing")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "not_found", resp.Error.Type)
	assert.Equal(t, "Announcement not found", resp.Error.Message)
}

func TestErrorHandler_LeavesWrittenResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(ErrorHandler())
	engine.GET("/written", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		_ = c.Error(errors.NewInternalError("already handled"))
	})

	w := performRequest(engine, http.MethodGet, "/written")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}

func TestRecovery_PanicReturns500(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(Recovery())
	engine.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := performRequest(engine, http.MethodGet, "/panic")

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}
