package notification

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Inakat-Human-Resources/inakat-sub004/internal/database"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/model"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	var err error
	var teardown func(context.Context) error
	teardown, testDB, err = database.GetTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if teardown != nil {
		_ = teardown(ctx)
	}
	os.Exit(code)
}

func TestEmitListAndUnreadCount(t *testing.T) {
	store := NewStore(testDB)
	ctx := context.Background()
	recipient := database.TestCandidateUser2.ID

	for _, payload := range []string{"first", "second"} {
		require.NoError(t, store.Emit(ctx, model.Notification{
			UserID:  recipient,
			Kind:    model.NotificationApplicationAdvanced,
			Payload: payload,
		}))
	}

	list, err := store.List(ctx, recipient)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Newest first.
	assert.Equal(t, "second", list[0].Payload)

	count, err := store.UnreadCount(ctx, recipient)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestMarkRead_ScopedToOwner(t *testing.T) {
	store := NewStore(testDB)
	ctx := context.Background()
	owner := database.TestRecruiterUser.ID
	other := database.TestSpecialistUser.ID

	require.NoError(t, store.Emit(ctx, model.Notification{
		UserID: owner, Kind: model.NotificationAssignmentProgress, Payload: "mine",
	}))
	list, err := store.List(ctx, owner)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	target := list[0].ID

	// Another user naming the same ID must not flip it.
	require.NoError(t, store.MarkRead(ctx, other, []uint{target}, false))
	count, err := store.UnreadCount(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, store.MarkRead(ctx, owner, []uint{target}, false))
	count, err = store.UnreadCount(ctx, owner)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMarkRead_AllAndEmptyIDs(t *testing.T) {
	store := NewStore(testDB)
	ctx := context.Background()
	recipient := database.TestCompanyUser2.ID

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Emit(ctx, model.Notification{
			UserID: recipient, Kind: model.NotificationApplicationReceived, Payload: "batch",
		}))
	}

	// No IDs and all=false is a no-op.
	require.NoError(t, store.MarkRead(ctx, recipient, nil, false))
	count, err := store.UnreadCount(ctx, recipient)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	require.NoError(t, store.MarkRead(ctx, recipient, nil, true))
	count, err = store.UnreadCount(ctx, recipient)
	require.NoError(t, err)
	assert.Zero(t, count)
}
