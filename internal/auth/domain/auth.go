// Package domain defines authentication domain models and errors.
package domain

import (
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
)

// RegisterInput contains the parameters for registering a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput contains the parameters for authenticating an account.
type LoginInput struct {
	Username string
	Password string
}

// Authentication errors.
var (
	// ErrInvalidCredentials indicates a failed login. Unknown username and
	// wrong password deliberately collapse into this single error so the
	// API does not reveal whether an account exists.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrInvalidToken indicates a malformed, tampered, or expired token.
	// All token validation failure modes collapse into this single error.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrMalformedAuthorizationHeader indicates a missing Authorization
	// header or one without the Bearer scheme.
	ErrMalformedAuthorizationHeader = errors.Wrap(
		errors.ErrInvalidInput,
		"malformed authorization header",
	)
)
