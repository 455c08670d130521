// Package dto provides data transfer objects for user HTTP responses.
package dto

import (
	"time"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/user/domain"
)

// UserResponse represents a user account in API responses. The password
// hash is never serialized.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapUserToResponse converts a domain user to a response DTO.
func MapUserToResponse(user *domain.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
