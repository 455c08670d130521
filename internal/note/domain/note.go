// Package domain defines the core note domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
)

// NoteStatus represents the lifecycle state of a note.
type NoteStatus string

const (
	NoteStatusActive    NoteStatus = "active"
	NoteStatusCompleted NoteStatus = "completed"
)

// Valid reports whether the status is one of the known states.
func (s NoteStatus) Valid() bool {
	return s == NoteStatusActive || s == NoteStatusCompleted
}

// Note represents a free-form note or task. Calendar and category are both
// optional.
type Note struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CalendarID *uuid.UUID
	CategoryID *uuid.UUID
	Name       string
	Content    string
	Status     NoteStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreateNoteInput contains the parameters for creating a note.
type CreateNoteInput struct {
	CalendarID *uuid.UUID
	CategoryID *uuid.UUID
	Name       string
	Content    string
}

// UpdateNoteInput contains the parameters for updating a note.
// Nil fields are left unchanged.
type UpdateNoteInput struct {
	CalendarID *uuid.UUID
	CategoryID *uuid.UUID
	Name       *string
	Content    *string
	Status     *NoteStatus
}

// NoteFilter narrows note listings. Nil fields are ignored.
type NoteFilter struct {
	CalendarID *uuid.UUID
	CategoryID *uuid.UUID
	Status     *NoteStatus
}

// ErrNoteNotFound indicates the requested note does not exist or belongs to
// another user.
var ErrNoteNotFound = errors.Wrap(errors.ErrNotFound, "note not found")

// ErrInvalidStatus indicates an unknown note status value.
var ErrInvalidStatus = errors.Wrap(errors.ErrInvalidInput, "note status must be active or completed")
