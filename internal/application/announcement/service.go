// Package announcement wires the announcement use cases behind a single
// application service consumed by the HTTP layer.
package announcement

import (
	"context"

	"schoolhub/internal/application/announcement/dto"
	"schoolhub/internal/application/announcement/usecases"
	domain "schoolhub/internal/domain/announcement"
	"schoolhub/internal/domain/teacher"
	"schoolhub/internal/shared/auth"
	"schoolhub/internal/shared/logger"
)

type Service struct {
	createUC *usecases.CreateAnnouncementUseCase
	listUC   *usecases.ListAnnouncementsUseCase
	updateUC *usecases.UpdateAnnouncementUseCase
	deleteUC *usecases.DeleteAnnouncementUseCase
}

func NewService(
	repo domain.Repository,
	teachers teacher.Repository,
	markdownService dto.MarkdownService,
	log logger.Interface,
) *Service {
	return &Service{
		createUC: usecases.NewCreateAnnouncementUseCase(repo, teachers, markdownService, log),
		listUC:   usecases.NewListAnnouncementsUseCase(repo, markdownService, log),
		updateUC: usecases.NewUpdateAnnouncementUseCase(repo, markdownService, log),
		deleteUC: usecases.NewDeleteAnnouncementUseCase(repo, log),
	}
}

func (s *Service) CreateAnnouncement(ctx context.Context, req dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	return s.createUC.Execute(ctx, req)
}

func (s *Service) ListAnnouncements(ctx context.Context, authCtx auth.Context) (*dto.ListResponse, error) {
	return s.listUC.Execute(ctx, authCtx)
}

func (s *Service) ListActiveAnnouncements(ctx context.Context) (*dto.ListResponse, error) {
	return s.listUC.ExecuteActive(ctx)
}

func (s *Service) UpdateAnnouncement(ctx context.Context, authCtx auth.Context, id uint, req dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	return s.updateUC.Execute(ctx, authCtx, id, req)
}

func (s *Service) DeleteAnnouncement(ctx context.Context, authCtx auth.Context, id uint) error {
	return s.deleteUC.Execute(ctx, authCtx, id)
}
