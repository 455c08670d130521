// Package usecase implements the note business logic.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	calendarDomain "github.com/0zzz7y/open-calendar-backend-sub001/internal/calendar/domain"
	categoryDomain "github.com/0zzz7y/open-calendar-backend-sub001/internal/category/domain"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/note/domain"
)

// NoteRepository defines the note persistence operations.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Note, error)
	List(ctx context.Context, userID uuid.UUID, filter *domain.NoteFilter, offset, limit int) ([]*domain.Note, error)
	Update(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// CalendarRepository defines the calendar lookup needed to verify that a
// note's calendar belongs to the calling user.
type CalendarRepository interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*calendarDomain.Calendar, error)
}

// CategoryRepository defines the category lookup needed to verify that a
// note's category belongs to the calling user.
type CategoryRepository interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*categoryDomain.Category, error)
}

// NoteUseCase defines the interface for note business logic. Every
// operation is scoped to the calling user.
type NoteUseCase interface {
	Create(ctx context.Context, userID uuid.UUID, input *domain.CreateNoteInput) (*domain.Note, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Note, error)
	List(ctx context.Context, userID uuid.UUID, filter *domain.NoteFilter, offset, limit int) ([]*domain.Note, error)
	Update(ctx context.Context, userID, id uuid.UUID, input *domain.UpdateNoteInput) (*domain.Note, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// noteUseCase implements the NoteUseCase interface.
type noteUseCase struct {
	noteRepo     NoteRepository
	calendarRepo CalendarRepository
	categoryRepo CategoryRepository
}

// Create persists a new note for the user. New notes start active. The
// calendar and category references are optional and verified against the
// user's own entities when set.
func (u *noteUseCase) Create(
	ctx context.Context,
	userID uuid.UUID,
	input *domain.CreateNoteInput,
) (*domain.Note, error) {
	if input.CalendarID != nil {
		if _, err := u.calendarRepo.GetByID(ctx, userID, *input.CalendarID); err != nil {
			return nil, err
		}
	}
	if input.CategoryID != nil {
		if _, err := u.categoryRepo.GetByID(ctx, userID, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	note := &domain.Note{
		ID:         uuid.Must(uuid.NewV7()),
		UserID:     userID,
		CalendarID: input.CalendarID,
		CategoryID: input.CategoryID,
		Name:       input.Name,
		Content:    input.Content,
		Status:     domain.NoteStatusActive,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	if err := u.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

// Get retrieves one of the user's notes.
func (u *noteUseCase) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Note, error) {
	return u.noteRepo.GetByID(ctx, userID, id)
}

// List retrieves the user's notes matching the filter with pagination.
func (u *noteUseCase) List(
	ctx context.Context,
	userID uuid.UUID,
	filter *domain.NoteFilter,
	offset, limit int,
) ([]*domain.Note, error) {
	if filter != nil && filter.Status != nil && !filter.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	return u.noteRepo.List(ctx, userID, filter, offset, limit)
}

// Update applies the non-nil input fields to one of the user's notes,
// verifying any changed references and the status value.
func (u *noteUseCase) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	input *domain.UpdateNoteInput,
) (*domain.Note, error) {
	if input.Status != nil && !input.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	note, err := u.noteRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.CalendarID != nil {
		if _, err := u.calendarRepo.GetByID(ctx, userID, *input.CalendarID); err != nil {
			return nil, err
		}
		note.CalendarID = input.CalendarID
	}
	if input.CategoryID != nil {
		if _, err := u.categoryRepo.GetByID(ctx, userID, *input.CategoryID); err != nil {
			return nil, err
		}
		note.CategoryID = input.CategoryID
	}
	if input.Name != nil {
		note.Name = *input.Name
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	if input.Status != nil {
		note.Status = *input.Status
	}
	note.UpdatedAt = time.Now().UTC()

	if err := u.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

// Delete removes one of the user's notes.
func (u *noteUseCase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return u.noteRepo.Delete(ctx, userID, id)
}

// NewNoteUseCase creates a new note use case instance.
func NewNoteUseCase(
	noteRepo NoteRepository,
	calendarRepo CalendarRepository,
	categoryRepo CategoryRepository,
) NoteUseCase {
	return &noteUseCase{
		noteRepo:     noteRepo,
		calendarRepo: calendarRepo,
		categoryRepo: categoryRepo,
	}
}
