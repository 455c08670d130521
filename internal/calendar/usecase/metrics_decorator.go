package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/calendar/domain"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/metrics"
)

// calendarUseCaseWithMetrics decorates CalendarUseCase with metrics instrumentation.
type calendarUseCaseWithMetrics struct {
	next    CalendarUseCase
	metrics metrics.BusinessMetrics
}

// NewCalendarUseCaseWithMetrics wraps a CalendarUseCase with metrics recording.
func NewCalendarUseCaseWithMetrics(useCase CalendarUseCase, m metrics.BusinessMetrics) CalendarUseCase {
	return &calendarUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *calendarUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "calendar", operation, status)
	c.metrics.RecordDuration(ctx, "calendar", operation, time.Since(start), status)
}

// Create records metrics for calendar creation operations.
func (c *calendarUseCaseWithMetrics) Create(
	ctx context.Context,
	userID uuid.UUID,
	input *domain.CreateCalendarInput,
) (*domain.Calendar, error) {
	start := time.Now()
	calendar, err := c.next.Create(ctx, userID, input)
	c.record(ctx, "calendar_create", start, err)
	return calendar, err
}

// Get records metrics for calendar retrieval operations.
func (c *calendarUseCaseWithMetrics) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Calendar, error) {
	start := time.Now()
	calendar, err := c.next.Get(ctx, userID, id)
	c.record(ctx, "calendar_get", start, err)
	return calendar, err
}

// List records metrics for calendar listing operations.
func (c *calendarUseCaseWithMetrics) List(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*domain.Calendar, error) {
	start := time.Now()
	calendars, err := c.next.List(ctx, userID, offset, limit)
	c.record(ctx, "calendar_list", start, err)
	return calendars, err
}

// Update records metrics for calendar update operations.
func (c *calendarUseCaseWithMetrics) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	input *domain.UpdateCalendarInput,
) (*domain.Calendar, error) {
	start := time.Now()
	calendar, err := c.next.Update(ctx, userID, id, input)
	c.record(ctx, "calendar_update", start, err)
	return calendar, err
}

// Delete records metrics for calendar deletion operations.
func (c *calendarUseCaseWithMetrics) Delete(ctx context.Context, userID, id uuid.UUID) error {
	start := time.Now()
	err := c.next.Delete(ctx, userID, id)
	c.record(ctx, "calendar_delete", start, err)
	return err
}
