// Package usecase implements the calendar business logic.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/calendar/domain"
	outboxDomain "github.com/0zzz7y/open-calendar-backend-sub001/internal/outbox/domain"
)

// CalendarRepository defines the calendar persistence operations.
type CalendarRepository interface {
	Create(ctx context.Context, calendar *domain.Calendar) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Calendar, error)
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.Calendar, error)
	Update(ctx context.Context, calendar *domain.Calendar) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// OutboxEventRepository defines the outbox operations needed by calendars.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *outboxDomain.OutboxEvent) error
}

// CalendarUseCase defines the interface for calendar business logic. Every
// operation is scoped to the calling user: a calendar owned by another user
// behaves as if it does not exist.
type CalendarUseCase interface {
	Create(ctx context.Context, userID uuid.UUID, input *domain.CreateCalendarInput) (*domain.Calendar, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Calendar, error)
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.Calendar, error)
	Update(ctx context.Context, userID, id uuid.UUID, input *domain.UpdateCalendarInput) (*domain.Calendar, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
