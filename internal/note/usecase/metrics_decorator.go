package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/metrics"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/note/domain"
)

// noteUseCaseWithMetrics decorates NoteUseCase with metrics instrumentation.
type noteUseCaseWithMetrics struct {
	next    NoteUseCase
	metrics metrics.BusinessMetrics
}

// NewNoteUseCaseWithMetrics wraps a NoteUseCase with metrics recording.
func NewNoteUseCaseWithMetrics(useCase NoteUseCase, m metrics.BusinessMetrics) NoteUseCase {
	return &noteUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (n *noteUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	n.metrics.RecordOperation(ctx, "note", operation, status)
	n.metrics.RecordDuration(ctx, "note", operation, time.Since(start), status)
}

// Create records metrics for note creation operations.
func (n *noteUseCaseWithMetrics) Create(
	ctx context.Context,
	userID uuid.UUID,
	input *domain.CreateNoteInput,
) (*domain.Note, error) {
	start := time.Now()
	note, err := n.next.Create(ctx, userID, input)
	n.record(ctx, "note_create", start, err)
	return note, err
}

// Get records metrics for note retrieval operations.
func (n *noteUseCaseWithMetrics) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Note, error) {
	start := time.Now()
	note, err := n.next.Get(ctx, userID, id)
	n.record(ctx, "note_get", start, err)
	return note, err
}

// List records metrics for note listing operations.
func (n *noteUseCaseWithMetrics) List(
	ctx context.Context,
	userID uuid.UUID,
	filter *domain.NoteFilter,
	offset, limit int,
) ([]*domain.Note, error) {
	start := time.Now()
	notes, err := n.next.List(ctx, userID, filter, offset, limit)
	n.record(ctx, "note_list", start, err)
	return notes, err
}

// Update records metrics for note update operations.
func (n *noteUseCaseWithMetrics) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	input *domain.UpdateNoteInput,
) (*domain.Note, error) {
	start := time.Now()
	note, err := n.next.Update(ctx, userID, id, input)
	n.record(ctx, "note_update", start, err)
	return note, err
}

// Delete records metrics for note deletion operations.
func (n *noteUseCaseWithMetrics) Delete(ctx context.Context, userID, id uuid.UUID) error {
	start := time.Now()
	err := n.next.Delete(ctx, userID, id)
	n.record(ctx, "note_delete", start, err)
	return err
}
