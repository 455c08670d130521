// Package domain defines the core calendar domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
)

// Calendar represents a named container for events and notes, owned by a
// single user.
type Calendar struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateCalendarInput contains the parameters for creating a calendar.
type CreateCalendarInput struct {
	Name        string
	Description string
	Color       string
}

// UpdateCalendarInput contains the parameters for updating a calendar.
// Nil fields are left unchanged.
type UpdateCalendarInput struct {
	Name        *string
	Description *string
	Color       *string
}

// ErrCalendarNotFound indicates the requested calendar does not exist or
// belongs to another user.
var ErrCalendarNotFound = errors.Wrap(errors.ErrNotFound, "calendar not found")
