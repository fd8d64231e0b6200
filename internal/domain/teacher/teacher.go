// Package teacher models the teacher registry. The announcement service only
// consumes identifier-existence lookups from it; the registry stands in for
// authentication.
package teacher

import "fmt"

type Teacher struct {
	username    string
	displayName string
}

func NewTeacher(username, displayName string) (*Teacher, error) {
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	return &Teacher{
		username:    username,
		displayName: displayName,
	}, nil
}

func (t *Teacher) Username() string {
	return t.username
}

func (t *Teacher) DisplayName() string {
	return t.displayName
}
