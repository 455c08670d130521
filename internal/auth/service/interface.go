// Package service provides technical services for authentication operations.
//
// This package implements token issuance and validation, password hashing,
// and the revocation list consulted by the authentication middleware.
package service

import (
	"github.com/google/uuid"
)

// TokenService defines operations for issuing and validating bearer tokens.
// Issuance is stateless; tokens are self-contained signed values.
type TokenService interface {
	// Issue produces a signed token carrying the user id as subject,
	// valid from now until now plus the configured expiration.
	Issue(userID uuid.UUID) (string, error)

	// Validate verifies the token signature, algorithm, and expiry and
	// returns the subject user id. Every failure mode (malformed token,
	// signature mismatch, expired) returns ErrInvalidToken so callers
	// cannot distinguish why a token failed.
	//
	// Validate does NOT consult the blacklist; revocation is a separate
	// gate composed by the authentication middleware.
	Validate(tokenString string) (uuid.UUID, error)
}

// TokenBlacklist records tokens revoked before their natural expiry (logout).
// Implementations must support safe concurrent inserts and lookups.
type TokenBlacklist interface {
	// Invalidate adds a token to the revoked set. Idempotent.
	Invalidate(tokenString string)

	// IsInvalid reports whether a token has been revoked.
	IsInvalid(tokenString string) bool
}

// PasswordService defines operations for password hashing and verification.
type PasswordService interface {
	// Hash hashes a plain text password using a secure hashing algorithm.
	Hash(plainPassword string) (hashedPassword string, err error)

	// Compare compares a plain text password against its stored hash.
	// Returns true on match, false otherwise. Constant-time.
	Compare(plainPassword string, hashedPassword string) bool
}
