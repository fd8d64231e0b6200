package dto

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/internal/shared/errors"
)

func newContextWithID(id string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: id}}
	return c
}

func strPtr(s string) *string {
	return &s
}

func TestParseAnnouncementID(t *testing.T) {
	t.Run("numeric id", func(t *testing.T) {
		id, err := ParseAnnouncementID(newContextWithID("42"))
		require.NoError(t, err)
		assert.Equal(t, uint(42), id)
	})

	t.Run("malformed id is a validation error", func(t *testing.T) {
		_, err := ParseAnnouncementID(newContextWithID("not-a-number"))
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("zero id is rejected", func(t *testing.T) {
		_, err := ParseAnnouncementID(newContextWithID("0"))
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestCreateAnnouncementRequest_ToApplicationRequest(t *testing.T) {
	t.Run("parses dates into UTC", func(t *testing.T) {
		req := CreateAnnouncementRequest{
			Message:   "Sports day moved to the gym",
			StartDate: strPtr("2026-09-01"),
			EndDate:   "2026-09-15T12:00:00+02:00",
			CreatedBy: "mchen",
		}

		appReq, err := req.ToApplicationRequest()
		require.NoError(t, err)

		require.NotNil(t, appReq.StartDate)
		assert.Equal(t, time.UTC, appReq.StartDate.Location())
		assert.Equal(t, time.UTC, appReq.EndDate.Location())
		assert.Equal(t, 10, appReq.EndDate.Hour(), "offset is normalized to UTC")
	})

	t.Run("invalid end_date", func(t *testing.T) {
		req := CreateAnnouncementRequest{
			Message:   "hello",
			EndDate:   "soon",
			CreatedBy: "mchen",
		}

		_, err := req.ToApplicationRequest()
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("message over limit", func(t *testing.T) {
		long := make([]byte, 10001)
		for i := range long {
			long[i] = 'a'
		}
		req := CreateAnnouncementRequest{
			Message:   string(long),
			EndDate:   "2026-09-15T00:00:00Z",
			CreatedBy: "mchen",
		}

		_, err := req.ToApplicationRequest()
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestUpdateAnnouncementRequest_ToApplicationRequest(t *testing.T) {
	t.Run("nil fields stay nil", func(t *testing.T) {
		req := UpdateAnnouncementRequest{Message: strPtr("updated")}

		appReq, err := req.ToApplicationRequest()
		require.NoError(t, err)

		require.NotNil(t, appReq.Message)
		assert.Equal(t, "updated", *appReq.Message)
		assert.Nil(t, appReq.StartDate)
		assert.Nil(t, appReq.EndDate)
	})

	t.Run("invalid start_date", func(t *testing.T) {
		req := UpdateAnnouncementRequest{StartDate: strPtr("yesterday")}

		_, err := req.ToApplicationRequest()
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
