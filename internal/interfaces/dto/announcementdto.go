package dto

import (
	"github.com/gin-gonic/gin"

	"schoolhub/internal/application/announcement/dto"
	"schoolhub/internal/domain/announcement"
	"schoolhub/internal/shared/errors"
	"schoolhub/internal/shared/isotime"
	"schoolhub/internal/shared/utils"
)

// CreateAnnouncementRequest represents HTTP request to create an announcement.
// Dates are ISO 8601 strings; start_date is optional and defaults to
// immediately active.
type CreateAnnouncementRequest struct {
	Message   string  `json:"message" binding:"required" validate:"required,max=10000"`
	StartDate *string `json:"start_date"`
	EndDate   string  `json:"end_date" binding:"required" validate:"required"`
	CreatedBy string  `json:"created_by" binding:"required" validate:"required,max=64"`
}

// UpdateAnnouncementRequest represents HTTP request to update an announcement.
// All fields are optional, at least one field must be provided.
type UpdateAnnouncementRequest struct {
	Message   *string `json:"message"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// ToApplicationRequest converts the HTTP DTO to the application layer DTO,
// parsing the date strings into UTC timestamps.
func (r *CreateAnnouncementRequest) ToApplicationRequest() (*dto.CreateAnnouncementRequest, error) {
	if err := utils.ValidateStruct(r); err != nil {
		return nil, err
	}

	endDate, err := isotime.Parse(r.EndDate)
	if err != nil {
		return nil, errors.NewValidationError("Invalid end_date", err.Error())
	}

	startDate, err := isotime.ParseOptional(r.StartDate)
	if err != nil {
		return nil, errors.NewValidationError("Invalid start_date", err.Error())
	}

	return &dto.CreateAnnouncementRequest{
		Message:   r.Message,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedBy: r.CreatedBy,
	}, nil
}

// ToApplicationRequest converts the HTTP DTO to the application layer DTO,
// parsing any provided date strings into UTC timestamps.
func (r *UpdateAnnouncementRequest) ToApplicationRequest() (*dto.UpdateAnnouncementRequest, error) {
	startDate, err := isotime.ParseOptional(r.StartDate)
	if err != nil {
		return nil, errors.NewValidationError("Invalid start_date", err.Error())
	}

	endDate, err := isotime.ParseOptional(r.EndDate)
	if err != nil {
		return nil, errors.NewValidationError("Invalid end_date", err.Error())
	}

	return &dto.UpdateAnnouncementRequest{
		Message:   r.Message,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

// ParseAnnouncementID parses the id path parameter. A malformed id is a
// validation error rather than a lookup miss.
func ParseAnnouncementID(c *gin.Context) (uint, error) {
	idParam := c.Param("id")

	id, err := announcement.ParseID(idParam)
	if err != nil {
		return 0, errors.NewValidationError("Invalid announcement ID format", err.Error())
	}

	return id, nil
}
