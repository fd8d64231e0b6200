package models

import "time"

type TeacherModel struct {
	ID          uint   `gorm:"primaryKey"`
	Username    string `gorm:"size:64;not null;uniqueIndex"`
	DisplayName string `gorm:"size:128;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TeacherModel) TableName() string {
	return "teachers"
}
