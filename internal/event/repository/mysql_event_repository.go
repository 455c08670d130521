package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/database"
	apperrors "github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/event/domain"
)

// MySQLEventRepository handles event persistence for MySQL.
type MySQLEventRepository struct {
	db *sql.DB
}

// NewMySQLEventRepository creates a new MySQLEventRepository.
func NewMySQLEventRepository(db *sql.DB) *MySQLEventRepository {
	return &MySQLEventRepository{
		db: db,
	}
}

// Create inserts a new event.
func (r *MySQLEventRepository) Create(ctx context.Context, event *domain.Event) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO events
			  (id, user_id, calendar_id, category_id, name, description, starts_at, ends_at, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		event.ID, event.UserID, event.CalendarID, event.CategoryID,
		event.Name, event.Description, event.StartsAt, event.EndsAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create event")
	}
	return nil
}

// GetByID retrieves an event by id, scoped to its owner.
func (r *MySQLEventRepository) GetByID(
	ctx context.Context,
	userID, id uuid.UUID,
) (*domain.Event, error) {
	var event domain.Event
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, calendar_id, category_id, name, description,
			  starts_at, ends_at, created_at, updated_at
			  FROM events WHERE id = ? AND user_id = ?`

	err := querier.QueryRowContext(ctx, query, id, userID).Scan(
		&event.ID, &event.UserID, &event.CalendarID, &event.CategoryID,
		&event.Name, &event.Description, &event.StartsAt, &event.EndsAt,
		&event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get event by id")
	}

	return &event, nil
}

// List retrieves the user's events matching the filter, ordered by start
// time, with pagination.
func (r *MySQLEventRepository) List(
	ctx context.Context,
	userID uuid.UUID,
	filter *domain.EventFilter,
	offset, limit int,
) ([]*domain.Event, error) {
	querier := database.GetTx(ctx, r.db)

	conditions := []string{"user_id = ?"}
	args := []interface{}{userID}

	if filter != nil {
		if filter.CalendarID != nil {
			conditions = append(conditions, "calendar_id = ?")
			args = append(args, *filter.CalendarID)
		}
		if filter.CategoryID != nil {
			conditions = append(conditions, "category_id = ?")
			args = append(args, *filter.CategoryID)
		}
		if filter.From != nil {
			conditions = append(conditions, "starts_at >= ?")
			args = append(args, *filter.From)
		}
		if filter.To != nil {
			conditions = append(conditions, "starts_at <= ?")
			args = append(args, *filter.To)
		}
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT id, user_id, calendar_id, category_id, name, description,
			  starts_at, ends_at, created_at, updated_at
			  FROM events WHERE %s
			  ORDER BY starts_at ASC
			  LIMIT ? OFFSET ?`,
		strings.Join(conditions, " AND "))

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list events")
	}
	defer rows.Close() //nolint:errcheck

	var events []*domain.Event
	for rows.Next() {
		var event domain.Event

		err := rows.Scan(
			&event.ID, &event.UserID, &event.CalendarID, &event.CategoryID,
			&event.Name, &event.Description, &event.StartsAt, &event.EndsAt,
			&event.CreatedAt, &event.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan event")
		}

		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate events")
	}

	return events, nil
}

// Update persists changes to an event, scoped to its owner.
func (r *MySQLEventRepository) Update(ctx context.Context, event *domain.Event) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE events
			  SET calendar_id = ?, category_id = ?, name = ?, description = ?,
			      starts_at = ?, ends_at = ?, updated_at = NOW()
			  WHERE id = ? AND user_id = ?`

	result, err := querier.ExecContext(ctx, query,
		event.CalendarID, event.CategoryID, event.Name, event.Description,
		event.StartsAt, event.EndsAt, event.ID, event.UserID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update event")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check updated rows")
	}
	if affected == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// Delete removes an event, scoped to its owner.
func (r *MySQLEventRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM events WHERE id = ? AND user_id = ?`

	result, err := querier.ExecContext(ctx, query, id, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete event")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check deleted rows")
	}
	if affected == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}
