package usecases

import (
	"context"

	"schoolhub/internal/application/announcement/dto"
	"schoolhub/internal/domain/announcement"
	"schoolhub/internal/shared/auth"
	"schoolhub/internal/shared/isotime"
	"schoolhub/internal/shared/logger"
)

type ListAnnouncementsUseCase struct {
	repo            announcement.Repository
	markdownService dto.MarkdownService
	logger          logger.Interface
}

func NewListAnnouncementsUseCase(
	repo announcement.Repository,
	markdownService dto.MarkdownService,
	logger logger.Interface,
) *ListAnnouncementsUseCase {
	return &ListAnnouncementsUseCase{
		repo:            repo,
		markdownService: markdownService,
		logger:          logger,
	}
}

// Execute returns every announcement, unfiltered. The caller must already be
// authenticated; authCtx records who asked.
func (uc *ListAnnouncementsUseCase) Execute(ctx context.Context, authCtx auth.Context) (*dto.ListResponse, error) {
	uc.logger.Debugw("executing list announcements use case", "username", authCtx.Username)

	announcements, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list announcements", "error", err)
		return nil, err
	}

	responses, err := dto.ToAnnouncementResponseList(announcements, uc.markdownService)
	if err != nil {
		uc.logger.Errorw("failed to convert announcements to responses", "error", err)
		return nil, err
	}

	return &dto.ListResponse{
		Items: responses,
		Total: int64(len(responses)),
	}, nil
}

// ExecuteActive returns announcements whose validity window contains now.
// No authentication is required for this view.
func (uc *ListAnnouncementsUseCase) ExecuteActive(ctx context.Context) (*dto.ListResponse, error) {
	now := isotime.NowUTC()
	uc.logger.Debugw("executing list active announcements use case", "now", now)

	announcements, err := uc.repo.ListActive(ctx, now)
	if err != nil {
		uc.logger.Errorw("failed to list active announcements", "error", err)
		return nil, err
	}

	responses, err := dto.ToAnnouncementResponseList(announcements, uc.markdownService)
	if err != nil {
		uc.logger.Errorw("failed to convert announcements to responses", "error", err)
		return nil, err
	}

	return &dto.ListResponse{
		Items: responses,
		Total: int64(len(responses)),
	}, nil
}
