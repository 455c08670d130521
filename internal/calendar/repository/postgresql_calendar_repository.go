// Package repository provides data persistence implementations for calendar entities.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/calendar/domain"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/database"
	apperrors "github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
)

// PostgreSQLCalendarRepository handles calendar persistence for PostgreSQL.
type PostgreSQLCalendarRepository struct {
	db *sql.DB
}

// NewPostgreSQLCalendarRepository creates a new PostgreSQLCalendarRepository.
func NewPostgreSQLCalendarRepository(db *sql.DB) *PostgreSQLCalendarRepository {
	return &PostgreSQLCalendarRepository{
		db: db,
	}
}

// Create inserts a new calendar.
func (r *PostgreSQLCalendarRepository) Create(ctx context.Context, calendar *domain.Calendar) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO calendars (id, user_id, name, description, color, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		calendar.ID, calendar.UserID, calendar.Name, calendar.Description, calendar.Color)
	if err != nil {
		return apperrors.Wrap(err, "failed to create calendar")
	}
	return nil
}

// GetByID retrieves a calendar by id, scoped to its owner. A calendar
// belonging to another user is reported as not found.
func (r *PostgreSQLCalendarRepository) GetByID(
	ctx context.Context,
	userID, id uuid.UUID,
) (*domain.Calendar, error) {
	var calendar domain.Calendar
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, name, description, color, created_at, updated_at
			  FROM calendars WHERE id = $1 AND user_id = $2`

	err := querier.QueryRowContext(ctx, query, id, userID).Scan(
		&calendar.ID, &calendar.UserID, &calendar.Name, &calendar.Description,
		&calendar.Color, &calendar.CreatedAt, &calendar.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCalendarNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get calendar by id")
	}

	return &calendar, nil
}

// List retrieves the user's calendars ordered by creation time with pagination.
func (r *PostgreSQLCalendarRepository) List(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*domain.Calendar, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, name, description, color, created_at, updated_at
			  FROM calendars WHERE user_id = $1
			  ORDER BY created_at ASC
			  OFFSET $2 LIMIT $3`

	rows, err := querier.QueryContext(ctx, query, userID, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list calendars")
	}
	defer rows.Close() //nolint:errcheck

	var calendars []*domain.Calendar
	for rows.Next() {
		var calendar domain.Calendar

		err := rows.Scan(
			&calendar.ID, &calendar.UserID, &calendar.Name, &calendar.Description,
			&calendar.Color, &calendar.CreatedAt, &calendar.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan calendar")
		}

		calendars = append(calendars, &calendar)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate calendars")
	}

	return calendars, nil
}

// Update persists changes to a calendar, scoped to its owner.
func (r *PostgreSQLCalendarRepository) Update(ctx context.Context, calendar *domain.Calendar) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE calendars
			  SET name = $1, description = $2, color = $3, updated_at = NOW()
			  WHERE id = $4 AND user_id = $5`

	result, err := querier.ExecContext(ctx, query,
		calendar.Name, calendar.Description, calendar.Color, calendar.ID, calendar.UserID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update calendar")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check updated rows")
	}
	if affected == 0 {
		return domain.ErrCalendarNotFound
	}

	return nil
}

// Delete removes a calendar, scoped to its owner.
func (r *PostgreSQLCalendarRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM calendars WHERE id = $1 AND user_id = $2`

	result, err := querier.ExecContext(ctx, query, id, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete calendar")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check deleted rows")
	}
	if affected == 0 {
		return domain.ErrCalendarNotFound
	}

	return nil
}
