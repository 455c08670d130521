package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/event/domain"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/metrics"
)

// eventUseCaseWithMetrics decorates EventUseCase with metrics instrumentation.
type eventUseCaseWithMetrics struct {
	next    EventUseCase
	metrics metrics.BusinessMetrics
}

// NewEventUseCaseWithMetrics wraps an EventUseCase with metrics recording.
func NewEventUseCaseWithMetrics(useCase EventUseCase, m metrics.BusinessMetrics) EventUseCase {
	return &eventUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (e *eventUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "event", operation, status)
	e.metrics.RecordDuration(ctx, "event", operation, time.Since(start), status)
}

// Create records metrics for event creation operations.
func (e *eventUseCaseWithMetrics) Create(
	ctx context.Context,
	userID uuid.UUID,
	input *domain.CreateEventInput,
) (*domain.Event, error) {
	start := time.Now()
	event, err := e.next.Create(ctx, userID, input)
	e.record(ctx, "event_create", start, err)
	return event, err
}

// Get records metrics for event retrieval operations.
func (e *eventUseCaseWithMetrics) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Event, error) {
	start := time.Now()
	event, err := e.next.Get(ctx, userID, id)
	e.record(ctx, "event_get", start, err)
	return event, err
}

// List records metrics for event listing operations.
func (e *eventUseCaseWithMetrics) List(
	ctx context.Context,
	userID uuid.UUID,
	filter *domain.EventFilter,
	offset, limit int,
) ([]*domain.Event, error) {
	start := time.Now()
	events, err := e.next.List(ctx, userID, filter, offset, limit)
	e.record(ctx, "event_list", start, err)
	return events, err
}

// Update records metrics for event update operations.
func (e *eventUseCaseWithMetrics) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	input *domain.UpdateEventInput,
) (*domain.Event, error) {
	start := time.Now()
	event, err := e.next.Update(ctx, userID, id, input)
	e.record(ctx, "event_update", start, err)
	return event, err
}

// Delete records metrics for event deletion operations.
func (e *eventUseCaseWithMetrics) Delete(ctx context.Context, userID, id uuid.UUID) error {
	start := time.Now()
	err := e.next.Delete(ctx, userID, id)
	e.record(ctx, "event_delete", start, err)
	return err
}
