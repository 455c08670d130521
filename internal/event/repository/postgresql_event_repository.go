// Package repository provides data persistence implementations for event entities.
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

// PostgreSQLEventRepository handles event persistence for PostgreSQL.
type PostgreSQLEventRepository struct {
	db *sql.DB
}

// NewPostgreSQLEventRepository creates a new PostgreSQLEventRepository.
func NewPostgreSQLEventRepository(db *sql.DB) *PostgreSQLEventRepository {
	return &PostgreSQLEventRepository{
		db: db,
	}
}

// Create inserts a new event.
func (r *PostgreSQLEventRepository) Create(ctx context.Context, event *domain.Event) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO events
			  (id, user_id, calendar_id, category_id, name, description, starts_at, ends_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		event.ID, event.UserID, event.CalendarID, event.CategoryID,
		event.Name, event.Description, event.StartsAt, event.EndsAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create event")
	}
	return nil
}

// GetByID retrieves an event by id, scoped to its owner.
func (r *PostgreSQLEventRepository) GetByID(
	ctx context.Context,
	userID, id uuid.UUID,
) (*domain.Event, error) {
	var event domain.Event
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, calendar_id, category_id, name, description,
			  starts_at, ends_at, created_at, updated_at
			  FROM events WHERE id = $1 AND user_id = $2`

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
func (r *PostgreSQLEventRepository) List(
	ctx context.Context,
	userID uuid.UUID,
	filter *domain.EventFilter,
	offset, limit int,
) ([]*domain.Event, error) {
	querier := database.GetTx(ctx, r.db)

	conditions := []string{"user_id = $1"}
	args := []interface{}{userID}

	if filter != nil {
		if filter.CalendarID != nil {
			args = append(args, *filter.CalendarID)
			conditions = append(conditions, fmt.Sprintf("calendar_id = $%d", len(args)))
		}
		if filter.CategoryID != nil {
			args = append(args, *filter.CategoryID)
			conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)))
		}
		if filter.From != nil {
			args = append(args, *filter.From)
			conditions = append(conditions, fmt.Sprintf("starts_at >= $%d", len(args)))
		}
		if filter.To != nil {
			args = append(args, *filter.To)
			conditions = append(conditions, fmt.Sprintf("starts_at <= $%d", len(args)))
		}
	}

	args = append(args, offset, limit)
	query := fmt.Sprintf(`SELECT id, user_id, calendar_id, category_id, name, description,
			  starts_at, ends_at, created_at, updated_at
			  FROM events WHERE %s
			  ORDER BY starts_at ASC
			  OFFSET $%d LIMIT $%d`,
		strings.Join(conditions, " AND "), len(args)-1, len(args))

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
func (r *PostgreSQLEventRepository) Update(ctx context.Context, event *domain.Event) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE events
			  SET calendar_id = $1, category_id = $2, name = $3, description = $4,
			      starts_at = $5, ends_at = $6, updated_at = NOW()
			  WHERE id = $7 AND user_id = $8`

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
func (r *PostgreSQLEventRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM events WHERE id = $1 AND user_id = $2`

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
