package migration

import (
	"schoolhub/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TeacherModel{},
		&models.AnnouncementModel{},
	}
}
