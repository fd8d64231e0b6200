package usecases

import (
	"context"

	"schoolhub/internal/domain/announcement"
	"schoolhub/internal/shared/auth"
	"schoolhub/internal/shared/logger"
)

type DeleteAnnouncementUseCase struct {
	repo   announcement.Repository
	logger logger.Interface
}

func NewDeleteAnnouncementUseCase(
	repo announcement.Repository,
	logger logger.Interface,
) *DeleteAnnouncementUseCase {
	return &DeleteAnnouncementUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute removes the announcement. The repository reports a not found error
// when no record matches, which is surfaced unchanged.
func (uc *DeleteAnnouncementUseCase) Execute(ctx context.Context, authCtx auth.Context, id uint) error {
	uc.logger.Infow("executing delete announcement use case", "id", id, "username", authCtx.Username)

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Warnw("failed to delete announcement", "id", id, "error", err)
		return err
	}

	uc.logger.Infow("announcement deleted successfully", "id", id)
	return nil
}
