// Package repository provides data persistence implementations for note entities.
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
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/note/domain"
)

// PostgreSQLNoteRepository handles note persistence for PostgreSQL.
type PostgreSQLNoteRepository struct {
	db *sql.DB
}

// NewPostgreSQLNoteRepository creates a new PostgreSQLNoteRepository.
func NewPostgreSQLNoteRepository(db *sql.DB) *PostgreSQLNoteRepository {
	return &PostgreSQLNoteRepository{
		db: db,
	}
}

// Create inserts a new note.
func (r *PostgreSQLNoteRepository) Create(ctx context.Context, note *domain.Note) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO notes
			  (id, user_id, calendar_id, category_id, name, content, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		note.ID, note.UserID, note.CalendarID, note.CategoryID,
		note.Name, note.Content, note.Status)
	if err != nil {
		return apperrors.Wrap(err, "failed to create note")
	}
	return nil
}

// GetByID retrieves a note by id, scoped to its owner.
func (r *PostgreSQLNoteRepository) GetByID(
	ctx context.Context,
	userID, id uuid.UUID,
) (*domain.Note, error) {
	var note domain.Note
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, calendar_id, category_id, name, content, status, created_at, updated_at
			  FROM notes WHERE id = $1 AND user_id = $2`

	err := querier.QueryRowContext(ctx, query, id, userID).Scan(
		&note.ID, &note.UserID, &note.CalendarID, &note.CategoryID,
		&note.Name, &note.Content, &note.Status, &note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get note by id")
	}

	return &note, nil
}

// List retrieves the user's notes matching the filter, newest first, with
// pagination.
func (r *PostgreSQLNoteRepository) List(
	ctx context.Context,
	userID uuid.UUID,
	filter *domain.NoteFilter,
	offset, limit int,
) ([]*domain.Note, error) {
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
		if filter.Status != nil {
			args = append(args, *filter.Status)
			conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
		}
	}

	args = append(args, offset, limit)
	query := fmt.Sprintf(`SELECT id, user_id, calendar_id, category_id, name, content, status,
			  created_at, updated_at
			  FROM notes WHERE %s
			  ORDER BY created_at DESC
			  OFFSET $%d LIMIT $%d`,
		strings.Join(conditions, " AND "), len(args)-1, len(args))

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list notes")
	}
	defer rows.Close() //nolint:errcheck

	var notes []*domain.Note
	for rows.Next() {
		var note domain.Note

		err := rows.Scan(
			&note.ID, &note.UserID, &note.CalendarID, &note.CategoryID,
			&note.Name, &note.Content, &note.Status, &note.CreatedAt, &note.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan note")
		}

		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate notes")
	}

	return notes, nil
}

// Update persists changes to a note, scoped to its owner.
func (r *PostgreSQLNoteRepository) Update(ctx context.Context, note *domain.Note) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE notes
			  SET calendar_id = $1, category_id = $2, name = $3, content = $4,
			      status = $5, updated_at = NOW()
			  WHERE id = $6 AND user_id = $7`

	result, err := querier.ExecContext(ctx, query,
		note.CalendarID, note.CategoryID, note.Name, note.Content,
		note.Status, note.ID, note.UserID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update note")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check updated rows")
	}
	if affected == 0 {
		return domain.ErrNoteNotFound
	}

	return nil
}

// Delete removes a note, scoped to its owner.
func (r *PostgreSQLNoteRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM notes WHERE id = $1 AND user_id = $2`

	result, err := querier.ExecContext(ctx, query, id, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete note")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check deleted rows")
	}
	if affected == 0 {
		return domain.ErrNoteNotFound
	}

	return nil
}
