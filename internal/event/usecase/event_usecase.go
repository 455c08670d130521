package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/database"
	apperrors "github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/event/domain"
	outboxDomain "github.com/0zzz7y/open-calendar-backend-sub001/internal/outbox/domain"
)

// eventUseCase implements the EventUseCase interface.
type eventUseCase struct {
	txManager    database.TxManager
	eventRepo    EventRepository
	calendarRepo CalendarRepository
	categoryRepo CategoryRepository
	outboxRepo   OutboxEventRepository
}

// Create persists a new event after verifying the time range and that the
// referenced calendar (and category, when set) belong to the user. The
// event row and its event.created outbox event commit in one transaction.
func (u *eventUseCase) Create(
	ctx context.Context,
	userID uuid.UUID,
	input *domain.CreateEventInput,
) (*domain.Event, error) {
	if input.EndsAt.Before(input.StartsAt) {
		return nil, domain.ErrInvalidTimeRange
	}

	if _, err := u.calendarRepo.GetByID(ctx, userID, input.CalendarID); err != nil {
		return nil, err
	}
	if input.CategoryID != nil {
		if _, err := u.categoryRepo.GetByID(ctx, userID, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	event := &domain.Event{
		ID:          uuid.Must(uuid.NewV7()),
		UserID:      userID,
		CalendarID:  input.CalendarID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	err := u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := u.eventRepo.Create(txCtx, event); err != nil {
			return err
		}

		outboxEvent, err := newEventLifecycleEvent("event.created", event)
		if err != nil {
			return err
		}

		return u.outboxRepo.Create(txCtx, outboxEvent)
	})
	if err != nil {
		return nil, err
	}

	return event, nil
}

// Get retrieves one of the user's events.
func (u *eventUseCase) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Event, error) {
	return u.eventRepo.GetByID(ctx, userID, id)
}

// List retrieves the user's events matching the filter with pagination.
func (u *eventUseCase) List(
	ctx context.Context,
	userID uuid.UUID,
	filter *domain.EventFilter,
	offset, limit int,
) ([]*domain.Event, error) {
	return u.eventRepo.List(ctx, userID, filter, offset, limit)
}

// Update applies the non-nil input fields to one of the user's events,
// re-validating the time range and any changed references.
func (u *eventUseCase) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	input *domain.UpdateEventInput,
) (*domain.Event, error) {
	event, err := u.eventRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.CalendarID != nil {
		if _, err := u.calendarRepo.GetByID(ctx, userID, *input.CalendarID); err != nil {
			return nil, err
		}
		event.CalendarID = *input.CalendarID
	}
	if input.CategoryID != nil {
		if _, err := u.categoryRepo.GetByID(ctx, userID, *input.CategoryID); err != nil {
			return nil, err
		}
		event.CategoryID = input.CategoryID
	}
	if input.Name != nil {
		event.Name = *input.Name
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.StartsAt != nil {
		event.StartsAt = *input.StartsAt
	}
	if input.EndsAt != nil {
		event.EndsAt = *input.EndsAt
	}

	if event.EndsAt.Before(event.StartsAt) {
		return nil, domain.ErrInvalidTimeRange
	}
	event.UpdatedAt = time.Now().UTC()

	if err := u.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// Delete removes one of the user's events. The deletion and its
// event.deleted outbox event commit in one transaction.
func (u *eventUseCase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	event, err := u.eventRepo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}

	return u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := u.eventRepo.Delete(txCtx, userID, id); err != nil {
			return err
		}

		outboxEvent, err := newEventLifecycleEvent("event.deleted", event)
		if err != nil {
			return err
		}

		return u.outboxRepo.Create(txCtx, outboxEvent)
	})
}

// newEventLifecycleEvent builds the outbox event recorded alongside an
// event lifecycle change.
func newEventLifecycleEvent(eventType string, event *domain.Event) (*outboxDomain.OutboxEvent, error) {
	payload, err := json.Marshal(map[string]string{
		"event_id":    event.ID.String(),
		"user_id":     event.UserID.String(),
		"calendar_id": event.CalendarID.String(),
		"name":        event.Name,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal "+eventType+" payload")
	}

	return outboxDomain.NewPendingEvent(eventType, string(payload)), nil
}

// NewEventUseCase creates a new event use case instance.
func NewEventUseCase(
	txManager database.TxManager,
	eventRepo EventRepository,
	calendarRepo CalendarRepository,
	categoryRepo CategoryRepository,
	outboxRepo OutboxEventRepository,
) EventUseCase {
	return &eventUseCase{
		txManager:    txManager,
		eventRepo:    eventRepo,
		calendarRepo: calendarRepo,
		categoryRepo: categoryRepo,
		outboxRepo:   outboxRepo,
	}
}
