package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/testutil"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/user/domain"
)

func TestNewMySQLUserRepository(t *testing.T) {
	testutil.SkipIfNoMySQL(t)

	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)

	repo := NewMySQLUserRepository(db)
	assert.NotNil(t, repo)
	assert.IsType(t, &MySQLUserRepository{}, repo)
}

func TestMySQLUserRepository_CreateAndGet(t *testing.T) {
	testutil.SkipIfNoMySQL(t)

	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		ID:       uuid.Must(uuid.NewV7()),
		Username: "alice",
		Email:    "alice@example.com",
		Password: "argon2id-hash",
	}
	require.NoError(t, repo.Create(ctx, user))

	retrieved, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, retrieved.Username)
	assert.Equal(t, user.Email, retrieved.Email)

	byUsername, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestMySQLUserRepository_Create_Duplicate(t *testing.T) {
	testutil.SkipIfNoMySQL(t)

	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		ID:       uuid.Must(uuid.NewV7()),
		Username: "bob",
		Email:    "bob@example.com",
		Password: "argon2id-hash",
	}
	require.NoError(t, repo.Create(ctx, user))

	duplicate := &domain.User{
		ID:       uuid.Must(uuid.NewV7()),
		Username: "bob",
		Email:    "other@example.com",
		Password: "argon2id-hash",
	}
	err := repo.Create(ctx, duplicate)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestMySQLUserRepository_GetByID_NotFound(t *testing.T) {
	testutil.SkipIfNoMySQL(t)

	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLUserRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.Must(uuid.NewV7()))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestIsMySQLDuplicateEntry(t *testing.T) {
	assert.False(t, isMySQLDuplicateEntry(nil))
	assert.False(t, isMySQLDuplicateEntry(context.Canceled))
	assert.True(t, isMySQLDuplicateEntry(
		errors.New("Error 1062 (23000): Duplicate entry 'bob' for key 'users.users_username_key'")))
}
