// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/calendar/domain"
)

// MockCalendarUseCase is a mock implementation of CalendarUseCase for testing.
type MockCalendarUseCase struct {
	mock.Mock
}

// Create mocks the Create method of CalendarUseCase.
func (m *MockCalendarUseCase) Create(
	ctx context.Context,
	userID uuid.UUID,
	input *domain.CreateCalendarInput,
) (*domain.Calendar, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Calendar), args.Error(1)
}

// Get mocks the Get method of CalendarUseCase.
func (m *MockCalendarUseCase) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Calendar, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Calendar), args.Error(1)
}

// List mocks the List method of CalendarUseCase.
func (m *MockCalendarUseCase) List(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*domain.Calendar, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Calendar), args.Error(1)
}

// Update mocks the Update method of CalendarUseCase.
func (m *MockCalendarUseCase) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	input *domain.UpdateCalendarInput,
) (*domain.Calendar, error) {
	args := m.Called(ctx, userID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Calendar), args.Error(1)
}

// Delete mocks the Delete method of CalendarUseCase.
func (m *MockCalendarUseCase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
