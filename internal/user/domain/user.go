// Package domain defines the user entity shared by the auth and user
// modules.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
)

// User represents a registered account. The Password field always holds
// the hashed form, never plaintext.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

var (
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists covers username and email uniqueness violations.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")
)
