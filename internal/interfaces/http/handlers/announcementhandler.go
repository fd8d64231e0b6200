package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appDto "schoolhub/internal/application/announcement/dto"
	"schoolhub/internal/interfaces/dto"
	"schoolhub/internal/shared/auth"
	"schoolhub/internal/shared/errors"
	"schoolhub/internal/shared/logger"
	"schoolhub/internal/shared/utils"
)

// AnnouncementHandler handles HTTP requests for announcement operations
type AnnouncementHandler struct {
	service announcementService
	logger  logger.Interface
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(service announcementService, log logger.Interface) *AnnouncementHandler {
	return &AnnouncementHandler{
		service: service,
		logger:  log,
	}
}

// ListActive handles GET /announcements/active
// @Summary List active announcements
// @Description List announcements whose validity window contains the current time. No authentication required.
// @Tags Announcements
// @Produce json
// @Success 200 {object} utils.APIResponse{data=appDto.ListResponse}
// @Router /announcements/active [get]
func (h *AnnouncementHandler) ListActive(c *gin.Context) {
	resp, err := h.service.ListActiveAnnouncements(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// ListAll handles GET /announcements
// @Summary List all announcements
// @Description List every announcement, including expired and upcoming ones. Requires a registered teacher username.
// @Tags Announcements
// @Produce json
// @Param username query string true "Teacher username"
// @Success 200 {object} utils.APIResponse{data=appDto.ListResponse}
// @Failure 401 {object} utils.APIResponse
// @Router /announcements [get]
func (h *AnnouncementHandler) ListAll(c *gin.Context) {
	authCtx, ok := auth.FromGin(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("Unauthorized"))
		return
	}

	resp, err := h.service.ListAnnouncements(c.Request.Context(), authCtx)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// Create handles POST /announcements
// @Summary Create an announcement
// @Description Create a new announcement. The created_by username must belong to a registered teacher.
// @Tags Announcements
// @Accept json
// @Produce json
// @Param request body dto.CreateAnnouncementRequest true "Announcement to create"
// @Success 201 {object} utils.APIResponse{data=appDto.AnnouncementResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create announcement", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body", err.Error()))
		return
	}

	appReq, err := req.ToApplicationRequest()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.service.CreateAnnouncement(c.Request.Context(), *appReq)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "Announcement created successfully")
}

// Update handles PUT /announcements/:id
// @Summary Update an announcement
// @Description Partially update an announcement. At least one field must be provided.
// @Tags Announcements
// @Accept json
// @Produce json
// @Param id path int true "Announcement ID"
// @Param username query string true "Teacher username"
// @Param request body dto.UpdateAnnouncementRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse{data=appDto.AnnouncementResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /announcements/{id} [put]
func (h *AnnouncementHandler) Update(c *gin.Context) {
	authCtx, ok := auth.FromGin(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("Unauthorized"))
		return
	}

	id, err := dto.ParseAnnouncementID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update announcement",
			"announcement_id", id,
			"error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body", err.Error()))
		return
	}

	appReq, err := req.ToApplicationRequest()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.service.UpdateAnnouncement(c.Request.Context(), authCtx, id, *appReq)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Announcement updated successfully", resp)
}

// Delete handles DELETE /announcements/:id
// @Summary Delete an announcement
// @Description Delete an announcement by ID.
// @Tags Announcements
// @Produce json
// @Param id path int true "Announcement ID"
// @Param username query string true "Teacher username"
// @Success 200 {object} utils.APIResponse{data=appDto.DeleteResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	authCtx, ok := auth.FromGin(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("Unauthorized"))
		return
	}

	id, err := dto.ParseAnnouncementID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.DeleteAnnouncement(c.Request.Context(), authCtx, id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", appDto.DeleteResponse{Message: "Announcement deleted successfully"})
}
