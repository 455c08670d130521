// Package mocks provides mock implementations for testing note HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/note/domain"
)

// MockNoteUseCase is a mock implementation of usecase.NoteUseCase.
type MockNoteUseCase struct {
	mock.Mock
}

func (m *MockNoteUseCase) Create(ctx context.Context, userID uuid.UUID, input *domain.CreateNoteInput) (*domain.Note, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}

func (m *MockNoteUseCase) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Note, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}

func (m *MockNoteUseCase) List(ctx context.Context, userID uuid.UUID, filter *domain.NoteFilter, offset, limit int) ([]*domain.Note, error) {
	args := m.Called(ctx, userID, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Note), args.Error(1)
}

func (m *MockNoteUseCase) Update(ctx context.Context, userID, id uuid.UUID, input *domain.UpdateNoteInput) (*domain.Note, error) {
	args := m.Called(ctx, userID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}

func (m *MockNoteUseCase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
