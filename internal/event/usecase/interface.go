// Package usecase implements the event business logic.
package usecase

import (
	"context"

	"github.com/google/uuid"

	calendarDomain "github.com/0zzz7y/open-calendar-backend-sub001/internal/calendar/domain"
	categoryDomain "github.com/0zzz7y/open-calendar-backend-sub001/internal/category/domain"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/event/domain"
	outboxDomain "github.com/0zzz7y/open-calendar-backend-sub001/internal/outbox/domain"
)

// EventRepository defines the event persistence operations.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Event, error)
	List(ctx context.Context, userID uuid.UUID, filter *domain.EventFilter, offset, limit int) ([]*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// CalendarRepository defines the calendar lookup needed to verify that an
// event's calendar belongs to the calling user.
type CalendarRepository interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*calendarDomain.Calendar, error)
}

// CategoryRepository defines the category lookup needed to verify that an
// event's category belongs to the calling user.
type CategoryRepository interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*categoryDomain.Category, error)
}

// OutboxEventRepository defines the outbox operations needed by events.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *outboxDomain.OutboxEvent) error
}

// EventUseCase defines the interface for event business logic. Every
// operation is scoped to the calling user; referencing another user's
// calendar or category behaves as if it does not exist.
type EventUseCase interface {
	Create(ctx context.Context, userID uuid.UUID, input *domain.CreateEventInput) (*domain.Event, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Event, error)
	List(ctx context.Context, userID uuid.UUID, filter *domain.EventFilter, offset, limit int) ([]*domain.Event, error)
	Update(ctx context.Context, userID, id uuid.UUID, input *domain.UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
