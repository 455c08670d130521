package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/category/domain"
	apperrors "github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/testutil"
)

func TestPostgreSQLCategoryRepository_Create(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLCategoryRepository(db)
	ctx := context.Background()
	userID := testutil.CreateTestUser(t, db, "postgres", "category-create-user")
	otherUserID := testutil.CreateTestUser(t, db, "postgres", "category-create-other")

	t.Run("Success", func(t *testing.T) {
		category := &domain.Category{
			ID:     uuid.Must(uuid.NewV7()),
			UserID: userID,
			Name:   "Urgent",
			Color:  "#F44336",
		}

		err := repo.Create(ctx, category)
		require.NoError(t, err)

		retrieved, err := repo.GetByID(ctx, userID, category.ID)
		require.NoError(t, err)
		assert.Equal(t, "Urgent", retrieved.Name)
		assert.Equal(t, "#F44336", retrieved.Color)
	})

	t.Run("Error_DuplicateNameSameUser", func(t *testing.T) {
		duplicate := &domain.Category{
			ID:     uuid.Must(uuid.NewV7()),
			UserID: userID,
			Name:   "Urgent",
			Color:  "#9E9E9E",
		}

		err := repo.Create(ctx, duplicate)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCategoryAlreadyExists)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("Success_SameNameDifferentUser", func(t *testing.T) {
		category := &domain.Category{
			ID:     uuid.Must(uuid.NewV7()),
			UserID: otherUserID,
			Name:   "Urgent",
			Color:  "#9E9E9E",
		}

		err := repo.Create(ctx, category)
		assert.NoError(t, err)
	})
}

func TestPostgreSQLCategoryRepository_GetByID(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLCategoryRepository(db)
	ctx := context.Background()
	userID := testutil.CreateTestUser(t, db, "postgres", "category-get-user")
	otherUserID := testutil.CreateTestUser(t, db, "postgres", "category-get-other")
	categoryID := testutil.CreateTestCategory(t, db, "postgres", userID, "Home")

	t.Run("Success", func(t *testing.T) {
		retrieved, err := repo.GetByID(ctx, userID, categoryID)
		require.NoError(t, err)
		assert.Equal(t, "Home", retrieved.Name)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		_, err := repo.GetByID(ctx, userID, uuid.Must(uuid.NewV7()))
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})

	t.Run("Error_OtherUsersCategory", func(t *testing.T) {
		_, err := repo.GetByID(ctx, otherUserID, categoryID)
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})
}

func TestPostgreSQLCategoryRepository_List(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLCategoryRepository(db)
	ctx := context.Background()
	userID := testutil.CreateTestUser(t, db, "postgres", "category-list-user")

	testutil.CreateTestCategory(t, db, "postgres", userID, "Work")
	testutil.CreateTestCategory(t, db, "postgres", userID, "Errands")
	testutil.CreateTestCategory(t, db, "postgres", userID, "Personal")

	categories, err := repo.List(ctx, userID, 0, 50)
	require.NoError(t, err)
	require.Len(t, categories, 3)

	// Ordered by name
	names := []string{categories[0].Name, categories[1].Name, categories[2].Name}
	assert.Equal(t, []string{"Errands", "Personal", "Work"}, names)
}

func TestPostgreSQLCategoryRepository_Update(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLCategoryRepository(db)
	ctx := context.Background()
	userID := testutil.CreateTestUser(t, db, "postgres", "category-update-user")
	categoryID := testutil.CreateTestCategory(t, db, "postgres", userID, "Before")
	testutil.CreateTestCategory(t, db, "postgres", userID, "Taken")

	t.Run("Success", func(t *testing.T) {
		category, err := repo.GetByID(ctx, userID, categoryID)
		require.NoError(t, err)

		category.Name = "After"
		category.Color = "#4CAF50"

		require.NoError(t, repo.Update(ctx, category))

		updated, err := repo.GetByID(ctx, userID, categoryID)
		require.NoError(t, err)
		assert.Equal(t, "After", updated.Name)
		assert.Equal(t, "#4CAF50", updated.Color)
	})

	t.Run("Error_RenameToTakenName", func(t *testing.T) {
		category, err := repo.GetByID(ctx, userID, categoryID)
		require.NoError(t, err)

		category.Name = "Taken"

		err = repo.Update(ctx, category)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCategoryAlreadyExists)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		missing := &domain.Category{
			ID:     uuid.Must(uuid.NewV7()),
			UserID: userID,
			Name:   "Ghost",
		}
		err := repo.Update(ctx, missing)
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})
}

func TestPostgreSQLCategoryRepository_Delete(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLCategoryRepository(db)
	ctx := context.Background()
	userID := testutil.CreateTestUser(t, db, "postgres", "category-delete-user")
	categoryID := testutil.CreateTestCategory(t, db, "postgres", userID, "Disposable")

	require.NoError(t, repo.Delete(ctx, userID, categoryID))

	_, err := repo.GetByID(ctx, userID, categoryID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	err = repo.Delete(ctx, userID, categoryID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestIsPostgreSQLUniqueViolation(t *testing.T) {
	assert.False(t, isPostgreSQLUniqueViolation(nil))
	assert.True(t, isPostgreSQLUniqueViolation(
		errors.New(`pq: duplicate key value violates unique constraint "categories_user_id_name_key"`)))
	assert.False(t, isPostgreSQLUniqueViolation(errors.New("connection refused")))
}
