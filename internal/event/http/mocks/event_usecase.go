// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/event/domain"
)

// MockEventUseCase is a mock implementation of EventUseCase for testing.
type MockEventUseCase struct {
	mock.Mock
}

// Create mocks the Create method of EventUseCase.
func (m *MockEventUseCase) Create(
	ctx context.Context,
	userID uuid.UUID,
	input *domain.CreateEventInput,
) (*domain.Event, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

// Get mocks the Get method of EventUseCase.
func (m *MockEventUseCase) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Event, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

// List mocks the List method of EventUseCase.
func (m *MockEventUseCase) List(
	ctx context.Context,
	userID uuid.UUID,
	filter *domain.EventFilter,
	offset, limit int,
) ([]*domain.Event, error) {
	args := m.Called(ctx, userID, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Event), args.Error(1)
}

// Update mocks the Update method of EventUseCase.
func (m *MockEventUseCase) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	input *domain.UpdateEventInput,
) (*domain.Event, error) {
	args := m.Called(ctx, userID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

// Delete mocks the Delete method of EventUseCase.
func (m *MockEventUseCase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
