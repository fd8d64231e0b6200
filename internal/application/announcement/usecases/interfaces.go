package usecases

import "context"

// TeacherRegistry is the slice of the teacher repository the use cases need:
// identifier-existence lookups only.
type TeacherRegistry interface {
	Exists(ctx context.Context, username string) (bool, error)
}
