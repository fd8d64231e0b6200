package handlers

import (
	"context"

	appDto "schoolhub/internal/application/announcement/dto"
	"schoolhub/internal/shared/auth"
)

// announcementService is the application surface the handler depends on.
type announcementService interface {
	CreateAnnouncement(ctx context.Context, req appDto.CreateAnnouncementRequest) (*appDto.AnnouncementResponse, error)
	ListAnnouncements(ctx context.Context, authCtx auth.Context) (*appDto.ListResponse, error)
	ListActiveAnnouncements(ctx context.Context) (*appDto.ListResponse, error)
	UpdateAnnouncement(ctx context.Context, authCtx auth.Context, id uint, req appDto.UpdateAnnouncementRequest) (*appDto.AnnouncementResponse, error)
	DeleteAnnouncement(ctx context.Context, authCtx auth.Context, id uint) error
}
