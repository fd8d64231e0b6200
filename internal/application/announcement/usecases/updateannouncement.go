package usecases

import (
	"context"
	"fmt"

	"schoolhub/internal/application/announcement/dto"
	"schoolhub/internal/domain/announcement"
	"schoolhub/internal/shared/auth"
	"schoolhub/internal/shared/errors"
	"schoolhub/internal/shared/logger"
)

type UpdateAnnouncementUseCase struct {
	repo            announcement.Repository
	markdownService dto.MarkdownService
	logger          logger.Interface
}

func NewUpdateAnnouncementUseCase(
	repo announcement.Repository,
	markdownService dto.MarkdownService,
	logger logger.Interface,
) *UpdateAnnouncementUseCase {
	return &UpdateAnnouncementUseCase{
		repo:            repo,
		markdownService: markdownService,
		logger:          logger,
	}
}

func (uc *UpdateAnnouncementUseCase) Execute(ctx context.Context, authCtx auth.Context, id uint, req dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	uc.logger.Infow("executing update announcement use case", "id", id, "username", authCtx.Username)

	if req.IsEmpty() {
		uc.logger.Warnw("update announcement rejected: empty patch", "id", id)
		return nil, errors.NewBadRequestError("No fields to update")
	}

	entity, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to find announcement", "id", id, "error", err)
		return nil, fmt.Errorf("failed to find announcement: %w", err)
	}
	if entity == nil {
		uc.logger.Warnw("announcement not found", "id", id)
		return nil, errors.NewNotFoundError("Announcement not found")
	}

	if err := entity.Apply(req.ToPatch()); err != nil {
		uc.logger.Warnw("failed to apply patch to announcement", "id", id, "error", err)
		return nil, errors.NewValidationError(fmt.Sprintf("failed to update announcement: %v", err))
	}

	if err := uc.repo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to update announcement", "id", id, "error", err)
		return nil, fmt.Errorf("failed to update announcement: %w", err)
	}

	response, err := dto.ToAnnouncementResponse(entity, uc.markdownService)
	if err != nil {
		uc.logger.Errorw("failed to convert announcement to response", "error", err)
		return nil, err
	}

	uc.logger.Infow("announcement updated successfully", "id", id)
	return response, nil
}
