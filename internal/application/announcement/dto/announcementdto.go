package dto

import (
	"time"

	"schoolhub/internal/domain/announcement"
	"schoolhub/internal/shared/isotime"
	"schoolhub/internal/shared/mapper"
)

// MarkdownService renders an announcement message into sanitized HTML for the
// response payload.
type MarkdownService interface {
	ToHTMLSanitized(markdown string) (string, error)
}

type CreateAnnouncementRequest struct {
	Message   string
	StartDate *time.Time
	EndDate   time.Time
	CreatedBy string
}

type UpdateAnnouncementRequest struct {
	Message   *string
	StartDate *time.Time
	EndDate   *time.Time
}

// ToPatch converts the request into a domain patch. Nil fields stay untouched.
func (r UpdateAnnouncementRequest) ToPatch() announcement.Patch {
	return announcement.Patch{
		Message:   r.Message,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

// IsEmpty reports whether the request patches nothing.
func (r UpdateAnnouncementRequest) IsEmpty() bool {
	return r.Message == nil && r.StartDate == nil && r.EndDate == nil
}

type AnnouncementResponse struct {
	ID          string  `json:"id"`
	Message     string  `json:"message"`
	MessageHTML string  `json:"message_html,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     string  `json:"end_date"`
	CreatedBy   string  `json:"created_by"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type ListResponse struct {
	Items []*AnnouncementResponse `json:"items"`
	Total int64                   `json:"total"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}

func ToAnnouncementResponse(entity *announcement.Announcement, markdownService MarkdownService) (*AnnouncementResponse, error) {
	messageHTML, err := markdownService.ToHTMLSanitized(entity.Message())
	if err != nil {
		return nil, err
	}

	return &AnnouncementResponse{
		ID:          announcement.FormatID(entity.ID()),
		Message:     entity.Message(),
		MessageHTML: messageHTML,
		StartDate:   isotime.FormatOptional(entity.StartDate()),
		EndDate:     isotime.Format(entity.EndDate()),
		CreatedBy:   entity.CreatedBy(),
		CreatedAt:   isotime.Format(entity.CreatedAt()),
		UpdatedAt:   isotime.Format(entity.UpdatedAt()),
	}, nil
}

func ToAnnouncementResponseList(entities []*announcement.Announcement, markdownService MarkdownService) ([]*AnnouncementResponse, error) {
	responses, err := mapper.MapSliceWithError(entities, func(entity *announcement.Announcement) (*AnnouncementResponse, error) {
		return ToAnnouncementResponse(entity, markdownService)
	})
	if err != nil {
		return nil, err
	}
	if responses == nil {
		responses = []*AnnouncementResponse{}
	}
	return responses, nil
}
