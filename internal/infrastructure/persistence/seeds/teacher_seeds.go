package seeds

import (
	"gorm.io/gorm"

	"schoolhub/internal/infrastructure/persistence/models"
)

// SeedTeachers seeds the teacher registry with the initial staff accounts the
// API authorizes against. Existing usernames are left untouched.
func SeedTeachers(db *gorm.DB) error {
	teachers := []models.TeacherModel{
		{Username: "mrodriguez", DisplayName: "Ms. Rodriguez"},
		{Username: "mchen", DisplayName: "Mr. Chen"},
		{Username: "principal.martin", DisplayName: "Principal Martin"},
	}

	for _, t := range teachers {
		var count int64
		if err := db.Model(&models.TeacherModel{}).Where("username = ?", t.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&t).Error; err != nil {
			return err
		}
	}

	return nil
}
