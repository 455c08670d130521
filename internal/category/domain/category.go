// Package domain defines the core category domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
)

// Category represents a user-defined label applied to events and notes.
// Category names are unique per user.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateCategoryInput contains the parameters for creating a category.
type CreateCategoryInput struct {
	Name  string
	Color string
}

// UpdateCategoryInput contains the parameters for updating a category.
// Nil fields are left unchanged.
type UpdateCategoryInput struct {
	Name  *string
	Color *string
}

// ErrCategoryNotFound indicates the requested category does not exist or
// belongs to another user.
var ErrCategoryNotFound = errors.Wrap(errors.ErrNotFound, "category not found")

// ErrCategoryAlreadyExists indicates the user already has a category with
// the same name.
var ErrCategoryAlreadyExists = errors.Wrap(errors.ErrConflict, "category already exists")
