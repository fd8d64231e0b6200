package teacher

import "context"

type Repository interface {
	Exists(ctx context.Context, username string) (bool, error)
	GetByUsername(ctx context.Context, username string) (*Teacher, error)
}
