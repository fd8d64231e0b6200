package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"schoolhub/internal/domain/teacher"
	"schoolhub/internal/infrastructure/persistence/models"
)

type TeacherRepositoryImpl struct {
	db *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) teacher.Repository {
	return &TeacherRepositoryImpl{db: db}
}

func (r *TeacherRepositoryImpl) Exists(ctx context.Context, username string) (bool, error) {
	if username == "" {
		return false, nil
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.TeacherModel{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check teacher existence: %w", err)
	}

	return count > 0, nil
}

func (r *TeacherRepositoryImpl) GetByUsername(ctx context.Context, username string) (*teacher.Teacher, error) {
	var model models.TeacherModel

	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get teacher by username: %w", err)
	}

	entity, err := teacher.NewTeacher(model.Username, model.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("failed to map teacher model to entity: %w", err)
	}

	return entity, nil
}
