package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/calendar/domain"
	apperrors "github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/testutil"
)

func TestNewPostgreSQLCalendarRepository(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)

	repo := NewPostgreSQLCalendarRepository(db)
	assert.NotNil(t, repo)
	assert.IsType(t, &PostgreSQLCalendarRepository{}, repo)
}

func TestPostgreSQLCalendarRepository_Create(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLCalendarRepository(db)
	ctx := context.Background()
	userID := testutil.CreateTestUser(t, db, "postgres", "calendar-create-user")

	calendar := &domain.Calendar{
		ID:          uuid.Must(uuid.NewV7()),
		UserID:      userID,
		Name:        "Work",
		Description: "Meetings and deadlines",
		Color:       "#FF5722",
	}

	err := repo.Create(ctx, calendar)
	require.NoError(t, err)

	retrieved, err := repo.GetByID(ctx, userID, calendar.ID)
	require.NoError(t, err)

	assert.Equal(t, calendar.ID, retrieved.ID)
	assert.Equal(t, userID, retrieved.UserID)
	assert.Equal(t, calendar.Name, retrieved.Name)
	assert.Equal(t, calendar.Description, retrieved.Description)
	assert.Equal(t, calendar.Color, retrieved.Color)
	assert.WithinDuration(t, time.Now().UTC(), retrieved.CreatedAt, 5*time.Second)
	assert.WithinDuration(t, time.Now().UTC(), retrieved.UpdatedAt, 5*time.Second)
}

func TestPostgreSQLCalendarRepository_GetByID(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLCalendarRepository(db)
	ctx := context.Background()
	userID := testutil.CreateTestUser(t, db, "postgres", "calendar-get-user")
	otherUserID := testutil.CreateTestUser(t, db, "postgres", "calendar-get-other")
	calendarID := testutil.CreateTestCalendar(t, db, "postgres", userID, "Personal")

	t.Run("Success", func(t *testing.T) {
		retrieved, err := repo.GetByID(ctx, userID, calendarID)
		require.NoError(t, err)
		assert.Equal(t, calendarID, retrieved.ID)
		assert.Equal(t, "Personal", retrieved.Name)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		_, err := repo.GetByID(ctx, userID, uuid.Must(uuid.NewV7()))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCalendarNotFound)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Error_OtherUsersCalendar", func(t *testing.T) {
		_, err := repo.GetByID(ctx, otherUserID, calendarID)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCalendarNotFound)
	})
}

func TestPostgreSQLCalendarRepository_List(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLCalendarRepository(db)
	ctx := context.Background()
	userID := testutil.CreateTestUser(t, db, "postgres", "calendar-list-user")
	otherUserID := testutil.CreateTestUser(t, db, "postgres", "calendar-list-other")

	testutil.CreateTestCalendar(t, db, "postgres", userID, "First")
	testutil.CreateTestCalendar(t, db, "postgres", userID, "Second")
	testutil.CreateTestCalendar(t, db, "postgres", userID, "Third")
	testutil.CreateTestCalendar(t, db, "postgres", otherUserID, "Unrelated")

	t.Run("Success_OnlyOwnCalendars", func(t *testing.T) {
		calendars, err := repo.List(ctx, userID, 0, 50)
		require.NoError(t, err)
		require.Len(t, calendars, 3)

		names := make([]string, 0, len(calendars))
		for _, calendar := range calendars {
			assert.Equal(t, userID, calendar.UserID)
			names = append(names, calendar.Name)
		}
		assert.Equal(t, []string{"First", "Second", "Third"}, names)
	})

	t.Run("Success_Pagination", func(t *testing.T) {
		calendars, err := repo.List(ctx, userID, 1, 1)
		require.NoError(t, err)
		require.Len(t, calendars, 1)
		assert.Equal(t, "Second", calendars[0].Name)
	})

	t.Run("Success_Empty", func(t *testing.T) {
		emptyUserID := testutil.CreateTestUser(t, db, "postgres", "calendar-list-empty")
		calendars, err := repo.List(ctx, emptyUserID, 0, 50)
		require.NoError(t, err)
		assert.Empty(t, calendars)
	})
}

func TestPostgreSQLCalendarRepository_Update(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLCalendarRepository(db)
	ctx := context.Background()
	userID := testutil.CreateTestUser(t, db, "postgres", "calendar-update-user")
	otherUserID := testutil.CreateTestUser(t, db, "postgres", "calendar-update-other")
	calendarID := testutil.CreateTestCalendar(t, db, "postgres", userID, "Before")

	t.Run("Success", func(t *testing.T) {
		calendar, err := repo.GetByID(ctx, userID, calendarID)
		require.NoError(t, err)

		calendar.Name = "After"
		calendar.Description = "Renamed"
		calendar.Color = "#4CAF50"

		err = repo.Update(ctx, calendar)
		require.NoError(t, err)

		updated, err := repo.GetByID(ctx, userID, calendarID)
		require.NoError(t, err)
		assert.Equal(t, "After", updated.Name)
		assert.Equal(t, "Renamed", updated.Description)
		assert.Equal(t, "#4CAF50", updated.Color)
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		missing := &domain.Calendar{
			ID:     uuid.Must(uuid.NewV7()),
			UserID: userID,
			Name:   "Ghost",
		}
		err := repo.Update(ctx, missing)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCalendarNotFound)
	})

	t.Run("Error_OtherUsersCalendar", func(t *testing.T) {
		foreign := &domain.Calendar{
			ID:     calendarID,
			UserID: otherUserID,
			Name:   "Hijacked",
		}
		err := repo.Update(ctx, foreign)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCalendarNotFound)
	})
}

func TestPostgreSQLCalendarRepository_Delete(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLCalendarRepository(db)
	ctx := context.Background()
	userID := testutil.CreateTestUser(t, db, "postgres", "calendar-delete-user")
	otherUserID := testutil.CreateTestUser(t, db, "postgres", "calendar-delete-other")
	calendarID := testutil.CreateTestCalendar(t, db, "postgres", userID, "Disposable")

	t.Run("Error_OtherUsersCalendar", func(t *testing.T) {
		err := repo.Delete(ctx, otherUserID, calendarID)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCalendarNotFound)
	})

	t.Run("Success", func(t *testing.T) {
		err := repo.Delete(ctx, userID, calendarID)
		require.NoError(t, err)

		_, err = repo.GetByID(ctx, userID, calendarID)
		assert.ErrorIs(t, err, domain.ErrCalendarNotFound)
	})

	t.Run("Error_AlreadyDeleted", func(t *testing.T) {
		err := repo.Delete(ctx, userID, calendarID)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCalendarNotFound)
	})
}
