package usecases

import (
	"context"
	"fmt"

	"schoolhub/internal/application/announcement/dto"
	"schoolhub/internal/domain/announcement"
	"schoolhub/internal/shared/errors"
	"schoolhub/internal/shared/logger"
)

type CreateAnnouncementUseCase struct {
	repo            announcement.Repository
	teachers        TeacherRegistry
	markdownService dto.MarkdownService
	logger          logger.Interface
}

func NewCreateAnnouncementUseCase(
	repo announcement.Repository,
	teachers TeacherRegistry,
	markdownService dto.MarkdownService,
	logger logger.Interface,
) *CreateAnnouncementUseCase {
	return &CreateAnnouncementUseCase{
		repo:            repo,
		teachers:        teachers,
		markdownService: markdownService,
		logger:          logger,
	}
}

func (uc *CreateAnnouncementUseCase) Execute(ctx context.Context, req dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	uc.logger.Infow("executing create announcement use case", "created_by", req.CreatedBy)

	// created_by is the auth input for creation: it must resolve to a teacher
	exists, err := uc.teachers.Exists(ctx, req.CreatedBy)
	if err != nil {
		uc.logger.Errorw("failed to look up teacher", "username", req.CreatedBy, "error", err)
		return nil, fmt.Errorf("failed to look up teacher: %w", err)
	}
	if !exists {
		uc.logger.Warnw("create announcement rejected for unknown teacher", "username", req.CreatedBy)
		return nil, errors.NewUnauthorizedError("Unauthorized")
	}

	entity, err := announcement.NewAnnouncement(req.Message, req.EndDate, req.CreatedBy, req.StartDate)
	if err != nil {
		uc.logger.Warnw("failed to create announcement entity", "error", err)
		return nil, errors.NewValidationError(fmt.Sprintf("failed to create announcement: %v", err))
	}

	if err := uc.repo.Create(ctx, entity); err != nil {
		uc.logger.Errorw("failed to persist announcement", "error", err)
		return nil, fmt.Errorf("failed to save announcement: %w", err)
	}

	response, err := dto.ToAnnouncementResponse(entity, uc.markdownService)
	if err != nil {
		uc.logger.Errorw("failed to convert announcement to response", "error", err)
		return nil, err
	}

	uc.logger.Infow("announcement created successfully", "id", entity.ID())
	return response, nil
}
