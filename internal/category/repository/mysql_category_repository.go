package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/category/domain"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/database"
	apperrors "github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
)

// MySQLCategoryRepository handles category persistence for MySQL.
type MySQLCategoryRepository struct {
	db *sql.DB
}

// NewMySQLCategoryRepository creates a new MySQLCategoryRepository.
func NewMySQLCategoryRepository(db *sql.DB) *MySQLCategoryRepository {
	return &MySQLCategoryRepository{
		db: db,
	}
}

// Create inserts a new category.
func (r *MySQLCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO categories (id, user_id, name, color, created_at, updated_at)
			  VALUES (?, ?, ?, ?, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		category.ID, category.UserID, category.Name, category.Color)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrCategoryAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create category")
	}
	return nil
}

// GetByID retrieves a category by id, scoped to its owner.
func (r *MySQLCategoryRepository) GetByID(
	ctx context.Context,
	userID, id uuid.UUID,
) (*domain.Category, error) {
	var category domain.Category
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, name, color, created_at, updated_at
			  FROM categories WHERE id = ? AND user_id = ?`

	err := querier.QueryRowContext(ctx, query, id, userID).Scan(
		&category.ID, &category.UserID, &category.Name,
		&category.Color, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get category by id")
	}

	return &category, nil
}

// List retrieves the user's categories ordered by name with pagination.
func (r *MySQLCategoryRepository) List(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*domain.Category, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, name, color, created_at, updated_at
			  FROM categories WHERE user_id = ?
			  ORDER BY name ASC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list categories")
	}
	defer rows.Close() //nolint:errcheck

	var categories []*domain.Category
	for rows.Next() {
		var category domain.Category

		err := rows.Scan(
			&category.ID, &category.UserID, &category.Name,
			&category.Color, &category.CreatedAt, &category.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan category")
		}

		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate categories")
	}

	return categories, nil
}

// Update persists changes to a category, scoped to its owner.
func (r *MySQLCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE categories
			  SET name = ?, color = ?, updated_at = NOW()
			  WHERE id = ? AND user_id = ?`

	result, err := querier.ExecContext(ctx, query,
		category.Name, category.Color, category.ID, category.UserID)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrCategoryAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update category")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check updated rows")
	}
	if affected == 0 {
		return domain.ErrCategoryNotFound
	}

	return nil
}

// Delete removes a category, scoped to its owner.
func (r *MySQLCategoryRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM categories WHERE id = ? AND user_id = ?`

	result, err := querier.ExecContext(ctx, query, id, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete category")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check deleted rows")
	}
	if affected == 0 {
		return domain.ErrCategoryNotFound
	}

	return nil
}

// isMySQLDuplicateEntry checks if the error is a MySQL duplicate entry violation.
func isMySQLDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry ... for key ..."
	return strings.Contains(errMsg, "duplicate entry")
}
