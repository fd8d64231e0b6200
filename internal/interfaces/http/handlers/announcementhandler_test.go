package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appDto "schoolhub/internal/application/announcement/dto"
	"schoolhub/internal/interfaces/http/handlers/testutil"
	"schoolhub/internal/shared/auth"
	"schoolhub/internal/shared/errors"
)

// =====================================================================
// Mock announcement service
// =====================================================================

type mockAnnouncementService struct {
	createFn     func(ctx context.Context, req appDto.CreateAnnouncementRequest) (*appDto.AnnouncementResponse, error)
	listFn       func(ctx context.Context, authCtx auth.Context) (*appDto.ListResponse, error)
	listActiveFn func(ctx context.Context) (*appDto.ListResponse, error)
	updateFn     func(ctx context.Context, authCtx auth.Context, id uint, req appDto.UpdateAnnouncementRequest) (*appDto.AnnouncementResponse, error)
	deleteFn     func(ctx context.Context, authCtx auth.Context, id uint) error
}

func (m *mockAnnouncementService) CreateAnnouncement(ctx context.Context, req appDto.CreateAnnouncementRequest) (*appDto.AnnouncementResponse, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return nil, nil
}

func (m *mockAnnouncementService) ListAnnouncements(ctx context.Context, authCtx auth.Context) (*appDto.ListResponse, error) {
	if m.listFn != nil {
		return m.listFn(ctx, authCtx)
	}
	return nil, nil
}

func (m *mockAnnouncementService) ListActiveAnnouncements(ctx context.Context) (*appDto.ListResponse, error) {
	if m.listActiveFn != nil {
		return m.listActiveFn(ctx)
	}
	return nil, nil
}

func (m *mockAnnouncementService) UpdateAnnouncement(ctx context.Context, authCtx auth.Context, id uint, req appDto.UpdateAnnouncementRequest) (*appDto.AnnouncementResponse, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, authCtx, id, req)
	}
	return nil, nil
}

func (m *mockAnnouncementService) DeleteAnnouncement(ctx context.Context, authCtx auth.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, authCtx, id)
	}
	return nil
}

func newTestAnnouncementHandler(svc announcementService) *AnnouncementHandler {
	return NewAnnouncementHandler(svc, testutil.NewMockLogger())
}

func sampleResponse(id string) *appDto.AnnouncementResponse {
	return &appDto.AnnouncementResponse{
		ID:        id,
		Message:   "School closed on Friday",
		EndDate:   "2026-09-30T00:00:00Z",
		CreatedBy: "mrodriguez",
		CreatedAt: "2026-09-01T08:00:00Z",
		UpdatedAt: "2026-09-01T08:00:00Z",
	}
}

// =====================================================================
// ListActive
// =====================================================================

func TestAnnouncementHandler_ListActive_Success(t *testing.T) {
	mockSvc := &mockAnnouncementService{
		listActiveFn: func(ctx context.Context) (*appDto.ListResponse, error) {
			return &appDto.ListResponse{
				Items: []*appDto.AnnouncementResponse{sampleResponse("1")},
				Total: 1,
			}, nil
		},
	}
	handler := newTestAnnouncementHandler(mockSvc)

	c, w := testutil.NewTestContext(http.MethodGet, "/announcements/active", nil)
	handler.ListActive(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var list appDto.ListResponse
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "1", list.Items[0].ID)
}

func TestAnnouncementHandler_ListActive_NoAuthRequired(t *testing.T) {
	called := false
	mockSvc := &mockAnnouncementService{
		listActiveFn: func(ctx context.Context) (*appDto.ListResponse, error) {
			called = true
			return &appDto.ListResponse{Items: []*appDto.AnnouncementResponse{}}, nil
		},
	}
	handler := newTestAnnouncementHandler(mockSvc)

	// No auth context set on purpose
	c, w := testutil.NewTestContext(http.MethodGet, "/announcements/active", nil)
	handler.ListActive(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

// =====================================================================
// ListAll
// =====================================================================

func TestAnnouncementHandler_ListAll_Success(t *testing.T) {
	var gotUsername string
	mockSvc := &mockAnnouncementService{
		listFn: func(ctx context.Context, authCtx auth.Context) (*appDto.ListResponse, error) {
			gotUsername = authCtx.Username
			return &appDto.ListResponse{
				Items: []*appDto.AnnouncementResponse{sampleResponse("1"), sampleResponse("2")},
				Total: 2,
			}, nil
		},
	}
	handler := newTestAnnouncementHandler(mockSvc)

	c, w := testutil.NewTestContext(http.MethodGet, "/announcements", nil)
	testutil.SetAuthContext(c, "mrodriguez")
	handler.ListAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mrodriguez", gotUsername)
}

func TestAnnouncementHandler_ListAll_MissingAuthContext(t *testing.T) {
	handler := newTestAnnouncementHandler(&mockAnnouncementService{})

	c, w := testutil.NewTestContext(http.MethodGet, "/announcements", nil)
	handler.ListAll(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "unauthorized", resp.Error.Type)
}

// =====================================================================
// Create
// =====================================================================

func TestAnnouncementHandler_Create_Success(t *testing.T) {
	mockSvc := &mockAnnouncementService{
		createFn: func(ctx context.Context, req appDto.CreateAnnouncementRequest) (*appDto.AnnouncementResponse, error) {
			assert.Equal(t, "School closed on Friday", req.Message)
			assert.Equal(t, "mrodriguez", req.CreatedBy)
			return sampleResponse("1"), nil
		},
	}
	handler := newTestAnnouncementHandler(mockSvc)

	body := map[string]interface{}{
		"message":    "School closed on Friday",
		"end_date":   "2026-09-30T00:00:00Z",
		"created_by": "mrodriguez",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/announcements", body)
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestAnnouncementHandler_Create_UnknownTeacher(t *testing.T) {
	mockSvc := &mockAnnouncementService{
		createFn: func(ctx context.Context, req appDto.CreateAnnouncementRequest) (*appDto.AnnouncementResponse, error) {
			return nil, errors.NewUnauthorizedError("Unauthorized")
		},
	}
	handler := newTestAnnouncementHandler(mockSvc)

	body := map[string]interface{}{
		"message":    "hello",
		"end_date":   "2026-09-30T00:00:00Z",
		"created_by": "ghost",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/announcements", body)
	handler.Create(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAnnouncementHandler_Create_MissingFields(t *testing.T) {
	handler := newTestAnnouncementHandler(&mockAnnouncementService{})

	body := map[string]interface{}{
		"message": "missing end_date and created_by",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/announcements", body)
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnnouncementHandler_Create_InvalidEndDate(t *testing.T) {
	handler := newTestAnnouncementHandler(&mockAnnouncementService{})

	body := map[string]interface{}{
		"message":    "hello",
		"end_date":   "not-a-date",
		"created_by": "mrodriguez",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/announcements", body)
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "validation_error", resp.Error.Type)
}

// =====================================================================
// Update
// =====================================================================

func TestAnnouncementHandler_Update_Success(t *testing.T) {
	var gotID uint
	mockSvc := &mockAnnouncementService{
		updateFn: func(ctx context.Context, authCtx auth.Context, id uint, req appDto.UpdateAnnouncementRequest) (*appDto.AnnouncementResponse, error) {
			gotID = id
			require.NotNil(t, req.Message)
			assert.Equal(t, "updated message", *req.Message)
			return sampleResponse("42"), nil
		},
	}
	handler := newTestAnnouncementHandler(mockSvc)

	body := map[string]interface{}{"message": "updated message"}
	c, w := testutil.NewTestContext(http.MethodPut, "/announcements/42", body)
	testutil.SetAuthContext(c, "mrodriguez")
	testutil.SetURLParam(c, "id", "42")
	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), gotID)
}

func TestAnnouncementHandler_Update_EmptyPatch(t *testing.T) {
	mockSvc := &mockAnnouncementService{
		updateFn: func(ctx context.Context, authCtx auth.Context, id uint, req appDto.UpdateAnnouncementRequest) (*appDto.AnnouncementResponse, error) {
			return nil, errors.NewBadRequestError("No fields to update")
		},
	}
	handler := newTestAnnouncementHandler(mockSvc)

	c, w := testutil.NewTestContext(http.MethodPut, "/announcements/42", map[string]interface{}{})
	testutil.SetAuthContext(c, "mrodriguez")
	testutil.SetURLParam(c, "id", "42")
	handler.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "bad_request", resp.Error.Type)
}

func TestAnnouncementHandler_Update_NotFound(t *testing.T) {
	mockSvc := &mockAnnouncementService{
		updateFn: func(ctx context.Context, authCtx auth.Context, id uint, req appDto.UpdateAnnouncementRequest) (*appDto.AnnouncementResponse, error) {
			return nil, errors.NewNotFoundError("Announcement not found")
		},
	}
	handler := newTestAnnouncementHandler(mockSvc)

	body := map[string]interface{}{"message": "updated"}
	c, w := testutil.NewTestContext(http.MethodPut, "/announcements/999", body)
	testutil.SetAuthContext(c, "mrodriguez")
	testutil.SetURLParam(c, "id", "999")
	handler.Update(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnnouncementHandler_Update_MalformedID(t *testing.T) {
	handler := newTestAnnouncementHandler(&mockAnnouncementService{})

	body := map[string]interface{}{"message": "updated"}
	c, w := testutil.NewTestContext(http.MethodPut, "/announcements/abc", body)
	testutil.SetAuthContext(c, "mrodriguez")
	testutil.SetURLParam(c, "id", "abc")
	handler.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnnouncementHandler_Update_MissingAuthContext(t *testing.T) {
	handler := newTestAnnouncementHandler(&mockAnnouncementService{})

	body := map[string]interface{}{"message": "updated"}
	c, w := testutil.NewTestContext(http.MethodPut, "/announcements/42", body)
	testutil.SetURLParam(c, "id", "42")
	handler.Update(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// =====================================================================
// Delete
// =====================================================================

func TestAnnouncementHandler_Delete_Success(t *testing.T) {
	var gotID uint
	mockSvc := &mockAnnouncementService{
		deleteFn: func(ctx context.Context, authCtx auth.Context, id uint) error {
			gotID = id
			return nil
		},
	}
	handler := newTestAnnouncementHandler(mockSvc)

	c, w := testutil.NewTestContext(http.MethodDelete, "/announcements/7", nil)
	testutil.SetAuthContext(c, "mchen")
	testutil.SetURLParam(c, "id", "7")
	handler.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), gotID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var del appDto.DeleteResponse
	require.NoError(t, json.Unmarshal(resp.Data, &del))
	assert.Equal(t, "Announcement deleted successfully", del.Message)
}

func TestAnnouncementHandler_Delete_NotFound(t *testing.T) {
	mockSvc := &mockAnnouncementService{
		deleteFn: func(ctx context.Context, authCtx auth.Context, id uint) error {
			return errors.NewNotFoundError("Announcement not found")
		},
	}
	handler := newTestAnnouncementHandler(mockSvc)

	c, w := testutil.NewTestContext(http.MethodDelete, "/announcements/999", nil)
	testutil.SetAuthContext(c, "mchen")
	testutil.SetURLParam(c, "id", "999")
	handler.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnnouncementHandler_Delete_MissingAuthContext(t *testing.T) {
	handler := newTestAnnouncementHandler(&mockAnnouncementService{})

	c, w := testutil.NewTestContext(http.MethodDelete, "/announcements/7", nil)
	testutil.SetURLParam(c, "id", "7")
	handler.Delete(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
