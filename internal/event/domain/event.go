// Package domain defines the core event domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
)

// Event represents a scheduled entry in one of the user's calendars. The
// category is optional.
type Event struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CalendarID  uuid.UUID
	CategoryID  *uuid.UUID
	Name        string
	Description string
	StartsAt    time.Time
	EndsAt      time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateEventInput contains the parameters for creating an event.
type CreateEventInput struct {
	CalendarID  uuid.UUID
	CategoryID  *uuid.UUID
	Name        string
	Description string
	StartsAt    time.Time
	EndsAt      time.Time
}

// UpdateEventInput contains the parameters for updating an event.
// Nil fields are left unchanged.
type UpdateEventInput struct {
	CalendarID  *uuid.UUID
	CategoryID  *uuid.UUID
	Name        *string
	Description *string
	StartsAt    *time.Time
	EndsAt      *time.Time
}

// EventFilter narrows event listings. Nil fields are ignored. From and To
// bound the event start time.
type EventFilter struct {
	CalendarID *uuid.UUID
	CategoryID *uuid.UUID
	From       *time.Time
	To         *time.Time
}

// ErrEventNotFound indicates the requested event does not exist or belongs
// to another user.
var ErrEventNotFound = errors.Wrap(errors.ErrNotFound, "event not found")

// ErrInvalidTimeRange indicates the event ends before it starts.
var ErrInvalidTimeRange = errors.Wrap(errors.ErrInvalidInput, "event end time must not be before start time")
