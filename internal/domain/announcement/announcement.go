package announcement

import (
	"fmt"
	"time"
)

// Announcement is a time-bounded message published to the school. Its validity
// window is [startDate, endDate], both bounds inclusive; a nil startDate means
// the announcement is active as soon as it exists.
type Announcement struct {
	id        uint
	message   string
	startDate *time.Time
	endDate   time.Time
	createdBy string
	createdAt time.Time
	updatedAt time.Time
}

func NewAnnouncement(
	message string,
	endDate time.Time,
	createdBy string,
	startDate *time.Time,
) (*Announcement, error) {
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > 10000 {
		return nil, fmt.Errorf("message exceeds maximum length of 10000 characters")
	}
	if endDate.IsZero() {
		return nil, fmt.Errorf("end date is required")
	}
	if len(createdBy) == 0 {
		return nil, fmt.Errorf("creator username is required")
	}

	now := time.Now().UTC()
	return &Announcement{
		message:   message,
		startDate: startDate,
		endDate:   endDate,
		createdBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAnnouncement(
	id uint,
	message string,
	startDate *time.Time,
	endDate time.Time,
	createdBy string,
	createdAt, updatedAt time.Time,
) (*Announcement, error) {
	if id == 0 {
		return nil, fmt.Errorf("announcement ID cannot be zero")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if endDate.IsZero() {
		return nil, fmt.Errorf("end date is required")
	}

	return &Announcement{
		id:        id,
		message:   message,
		startDate: startDate,
		endDate:   endDate,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (a *Announcement) ID() uint {
	return a.id
}

func (a *Announcement) Message() string {
	return a.message
}

func (a *Announcement) StartDate() *time.Time {
	return a.startDate
}

func (a *Announcement) EndDate() time.Time {
	return a.endDate
}

func (a *Announcement) CreatedBy() string {
	return a.createdBy
}

func (a *Announcement) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Announcement) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Announcement) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("announcement ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("announcement ID cannot be zero")
	}
	a.id = id
	return nil
}

// Patch describes a partial update. Nil fields are left untouched. The creator
// and creation timestamp are immutable and therefore not patchable.
type Patch struct {
	Message   *string
	StartDate *time.Time
	EndDate   *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Message == nil && p.StartDate == nil && p.EndDate == nil
}

// Apply applies the provided fields of the patch, leaving the rest untouched.
func (a *Announcement) Apply(patch Patch) error {
	if patch.IsEmpty() {
		return fmt.Errorf("patch contains no fields to update")
	}

	if patch.Message != nil {
		if len(*patch.Message) == 0 {
			return fmt.Errorf("message cannot be empty")
		}
		if len(*patch.Message) > 10000 {
			return fmt.Errorf("message exceeds maximum length of 10000 characters")
		}
		a.message = *patch.Message
	}
	if patch.StartDate != nil {
		startDate := *patch.StartDate
		a.startDate = &startDate
	}
	if patch.EndDate != nil {
		a.endDate = *patch.EndDate
	}

	a.updatedAt = time.Now().UTC()
	return nil
}

// IsActiveAt reports whether the validity window contains the given instant.
// Both window bounds are inclusive. Whether startDate <= endDate is the
// caller's responsibility; an inverted window is simply never active.
func (a *Announcement) IsActiveAt(now time.Time) bool {
	if a.endDate.Before(now) {
		return false
	}
	if a.startDate != nil && a.startDate.After(now) {
		return false
	}
	return true
}
