// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/category/domain"
)

// MockCategoryUseCase is a mock implementation of CategoryUseCase for testing.
type MockCategoryUseCase struct {
	mock.Mock
}

// Create mocks the Create method of CategoryUseCase.
func (m *MockCategoryUseCase) Create(
	ctx context.Context,
	userID uuid.UUID,
	input *domain.CreateCategoryInput,
) (*domain.Category, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

// Get mocks the Get method of CategoryUseCase.
func (m *MockCategoryUseCase) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

// List mocks the List method of CategoryUseCase.
func (m *MockCategoryUseCase) List(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*domain.Category, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

// Update mocks the Update method of CategoryUseCase.
func (m *MockCategoryUseCase) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	input *domain.UpdateCategoryInput,
) (*domain.Category, error) {
	args := m.Called(ctx, userID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

// Delete mocks the Delete method of CategoryUseCase.
func (m *MockCategoryUseCase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
