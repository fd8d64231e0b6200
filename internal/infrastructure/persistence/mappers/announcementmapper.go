package mappers

import (
	"fmt"

	"schoolhub/internal/domain/announcement"
	"schoolhub/internal/infrastructure/persistence/models"
	"schoolhub/internal/shared/mapper"
)

type AnnouncementMapper interface {
	ToEntity(model *models.AnnouncementModel) (*announcement.Announcement, error)
	ToModel(entity *announcement.Announcement) (*models.AnnouncementModel, error)
	ToEntities(models []*models.AnnouncementModel) ([]*announcement.Announcement, error)
}

type AnnouncementMapperImpl struct{}

func NewAnnouncementMapper() AnnouncementMapper {
	return &AnnouncementMapperImpl{}
}

func (m *AnnouncementMapperImpl) ToEntity(model *models.AnnouncementModel) (*announcement.Announcement, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := announcement.ReconstructAnnouncement(
		model.ID,
		model.Message,
		model.StartDate,
		model.EndDate,
		model.CreatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct announcement entity: %w", err)
	}

	return entity, nil
}

func (m *AnnouncementMapperImpl) ToModel(entity *announcement.Announcement) (*models.AnnouncementModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.AnnouncementModel{
		ID:        entity.ID(),
		Message:   entity.Message(),
		StartDate: entity.StartDate(),
		EndDate:   entity.EndDate(),
		CreatedBy: entity.CreatedBy(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *AnnouncementMapperImpl) ToEntities(modelList []*models.AnnouncementModel) ([]*announcement.Announcement, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.AnnouncementModel) uint { return model.ID })
}
