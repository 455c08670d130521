// Package usecase implements business logic for user account operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/user/domain"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UseCase defines the interface for user account business logic.
type UseCase interface {
	// Get retrieves a user by id. The password hash stays on the domain
	// object; handlers must not expose it.
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// userUseCase implements the UseCase interface.
type userUseCase struct {
	userRepo UserRepository
}

// Get retrieves a user by id.
func (u *userUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// NewUserUseCase creates a new user use case instance.
func NewUserUseCase(userRepo UserRepository) UseCase {
	return &userUseCase{
		userRepo: userRepo,
	}
}
