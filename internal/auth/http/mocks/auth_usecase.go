// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/domain"
	userDomain "github.com/0zzz7y/open-calendar-backend-sub001/internal/user/domain"
)

// MockAuthUseCase is a mock implementation of the authentication UseCase for testing.
type MockAuthUseCase struct {
	mock.Mock
}

// Register mocks the Register method of the authentication UseCase.
func (m *MockAuthUseCase) Register(
	ctx context.Context,
	input *authDomain.RegisterInput,
) (*userDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

// Login mocks the Login method of the authentication UseCase.
func (m *MockAuthUseCase) Login(ctx context.Context, input *authDomain.LoginInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

// Logout mocks the Logout method of the authentication UseCase.
func (m *MockAuthUseCase) Logout(authorizationHeader string) error {
	args := m.Called(authorizationHeader)
	return args.Error(0)
}
