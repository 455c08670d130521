package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/calendar/domain"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/database"
	apperrors "github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
	outboxDomain "github.com/0zzz7y/open-calendar-backend-sub001/internal/outbox/domain"
)

// defaultCalendarColor is applied when a calendar is created without an
// explicit color.
const defaultCalendarColor = "#2196F3"

// calendarUseCase implements the CalendarUseCase interface.
type calendarUseCase struct {
	txManager    database.TxManager
	calendarRepo CalendarRepository
	outboxRepo   OutboxEventRepository
}

// Create persists a new calendar for the user. The calendar row and its
// calendar.created outbox event commit in one transaction.
func (u *calendarUseCase) Create(
	ctx context.Context,
	userID uuid.UUID,
	input *domain.CreateCalendarInput,
) (*domain.Calendar, error) {
	color := input.Color
	if color == "" {
		color = defaultCalendarColor
	}

	calendar := &domain.Calendar{
		ID:          uuid.Must(uuid.NewV7()),
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		Color:       color,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	err := u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := u.calendarRepo.Create(txCtx, calendar); err != nil {
			return err
		}

		event, err := newCalendarEvent("calendar.created", calendar)
		if err != nil {
			return err
		}

		return u.outboxRepo.Create(txCtx, event)
	})
	if err != nil {
		return nil, err
	}

	return calendar, nil
}

// Get retrieves one of the user's calendars.
func (u *calendarUseCase) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Calendar, error) {
	return u.calendarRepo.GetByID(ctx, userID, id)
}

// List retrieves the user's calendars with pagination.
func (u *calendarUseCase) List(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*domain.Calendar, error) {
	return u.calendarRepo.List(ctx, userID, offset, limit)
}

// Update applies the non-nil input fields to one of the user's calendars.
func (u *calendarUseCase) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	input *domain.UpdateCalendarInput,
) (*domain.Calendar, error) {
	calendar, err := u.calendarRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		calendar.Name = *input.Name
	}
	if input.Description != nil {
		calendar.Description = *input.Description
	}
	if input.Color != nil {
		calendar.Color = *input.Color
	}
	calendar.UpdatedAt = time.Now().UTC()

	if err := u.calendarRepo.Update(ctx, calendar); err != nil {
		return nil, err
	}

	return calendar, nil
}

// Delete removes one of the user's calendars. Events and notes attached to
// it are removed by the database cascade. The deletion and its
// calendar.deleted outbox event commit in one transaction.
func (u *calendarUseCase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	calendar, err := u.calendarRepo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}

	return u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := u.calendarRepo.Delete(txCtx, userID, id); err != nil {
			return err
		}

		event, err := newCalendarEvent("calendar.deleted", calendar)
		if err != nil {
			return err
		}

		return u.outboxRepo.Create(txCtx, event)
	})
}

// newCalendarEvent builds the outbox event recorded alongside a calendar
// lifecycle change.
func newCalendarEvent(eventType string, calendar *domain.Calendar) (*outboxDomain.OutboxEvent, error) {
	payload, err := json.Marshal(map[string]string{
		"calendar_id": calendar.ID.String(),
		"user_id":     calendar.UserID.String(),
		"name":        calendar.Name,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal "+eventType+" payload")
	}

	return outboxDomain.NewPendingEvent(eventType, string(payload)), nil
}

// NewCalendarUseCase creates a new calendar use case instance.
func NewCalendarUseCase(
	txManager database.TxManager,
	calendarRepo CalendarRepository,
	outboxRepo OutboxEventRepository,
) CalendarUseCase {
	return &calendarUseCase{
		txManager:    txManager,
		calendarRepo: calendarRepo,
		outboxRepo:   outboxRepo,
	}
}
