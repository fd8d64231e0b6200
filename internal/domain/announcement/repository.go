package announcement

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, announcement *Announcement) error
	GetByID(ctx context.Context, id uint) (*Announcement, error)
	Update(ctx context.Context, announcement *Announcement) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*Announcement, error)
	ListActive(ctx context.Context, now time.Time) ([]*Announcement, error)
}
