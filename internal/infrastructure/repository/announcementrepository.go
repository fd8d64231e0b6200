package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"schoolhub/internal/domain/announcement"
	"schoolhub/internal/infrastructure/persistence/mappers"
	"schoolhub/internal/infrastructure/persistence/models"
	"schoolhub/internal/shared/errors"
)

type AnnouncementRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AnnouncementMapper
}

func NewAnnouncementRepository(db *gorm.DB) announcement.Repository {
	return &AnnouncementRepositoryImpl{
		db:     db,
		mapper: mappers.NewAnnouncementMapper(),
	}
}

func (r *AnnouncementRepositoryImpl) Create(ctx context.Context, entity *announcement.Announcement) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map announcement entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set announcement ID: %w", err)
	}

	return nil
}

func (r *AnnouncementRepositoryImpl) GetByID(ctx context.Context, id uint) (*announcement.Announcement, error) {
	var model models.AnnouncementModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get announcement by ID: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map announcement model to entity: %w", err)
	}

	return entity, nil
}

func (r *AnnouncementRepositoryImpl) Update(ctx context.Context, entity *announcement.Announcement) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map announcement entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update announcement: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Announcement not found")
	}

	return nil
}

func (r *AnnouncementRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.AnnouncementModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete announcement: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Announcement not found")
	}

	return nil
}

// List returns all announcements in insertion (primary key) order. No date
// ordering is promised to callers.
func (r *AnnouncementRepositoryImpl) List(ctx context.Context) ([]*announcement.Announcement, error) {
	var modelList []*models.AnnouncementModel

	if err := r.db.WithContext(ctx).Order("id ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map announcement models to entities: %w", err)
	}

	return entities, nil
}

// ListActive returns announcements whose validity window contains now, in
// insertion order. Both bounds are inclusive; a NULL start_date means active
// immediately.
func (r *AnnouncementRepositoryImpl) ListActive(ctx context.Context, now time.Time) ([]*announcement.Announcement, error) {
	var modelList []*models.AnnouncementModel

	err := r.db.WithContext(ctx).
		Where("end_date >= ?", now).
		Where("start_date IS NULL OR start_date <= ?", now).
		Order("id ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active announcements: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map announcement models to entities: %w", err)
	}

	return entities, nil
}
