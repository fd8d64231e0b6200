package models

import (
	"time"
)

type AnnouncementModel struct {
	ID        uint   `gorm:"primaryKey"`
	Message   string `gorm:"type:text;not null"`
	StartDate *time.Time
	EndDate   time.Time `gorm:"not null;index"`
	CreatedBy string    `gorm:"size:64;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}
