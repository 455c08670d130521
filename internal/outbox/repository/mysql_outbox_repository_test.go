package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/outbox/domain"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/testutil"
)

func TestMySQLOutboxEventRepository_Lifecycle(t *testing.T) {
	testutil.SkipIfNoMySQL(t)

	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLOutboxEventRepository(db)
	ctx := context.Background()

	// BINARY(16) ids must round-trip through create and fetch.
	event := domain.NewPendingEvent("calendar.created", `{"calendar_id": "c1", "name": "Work"}`)
	require.NoError(t, repo.Create(ctx, event))

	events, err := repo.GetPendingEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, event.ID, events[0].ID)
	assert.Equal(t, "calendar.created", events[0].EventType)

	now := time.Now()
	event.Status = domain.OutboxEventStatusProcessed
	event.ProcessedAt = &now
	require.NoError(t, repo.Update(ctx, event))

	events, err = repo.GetPendingEvents(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}
