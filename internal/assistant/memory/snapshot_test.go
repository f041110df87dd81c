// internal/assistant/memory/snapshot_test.go
package memory

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"police-assistant/internal/common/database"
	"police-assistant/internal/models"
)

func newTestSnapshotStore(t *testing.T) *SnapshotStore {
	t.Helper()

	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { _ = client.Close() })

	return NewSnapshotStore(client, time.Hour)
}

func TestSnapshotSaveAndLoad(t *testing.T) {
	store := newTestSnapshotStore(t)
	ctx := context.Background()

	sess := newSession(DefaultLimits(), models.LangTelugu)
	sess.AddMessage(userMsg("FIR/001/2024 status"))

	require.NoError(t, store.Save(ctx, "s1", sess.Context()))

	loaded, ok, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, loaded.Messages, 1)
	assert.Equal(t, []string{"001/2024"}, loaded.UserProfile.PreviousCaseNumbers)
	assert.Equal(t, 1, loaded.SessionData.TotalUserQueries)
}

func TestSnapshotLoadMissing(t *testing.T) {
	store := newTestSnapshotStore(t)

	_, ok, err := store.Load(context.Background(), "unknown")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSnapshotDelete(t *testing.T) {
	store := newTestSnapshotStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s1", models.ConversationContext{}))
	require.NoError(t, store.Delete(ctx, "s1"))

	_, ok, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSnapshotSaveUsesTTL(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewSnapshotStore(&database.RedisClient{Client: db}, 30*time.Minute)

	cctx := models.ConversationContext{
		UserProfile: models.UserProfile{PreferredLanguage: models.LangEnglish},
	}
	payload, err := json.Marshal(cctx)
	require.NoError(t, err)

	mock.ExpectSet("assistant:session:s1", payload, 30*time.Minute).SetVal("OK")

	require.NoError(t, store.Save(context.Background(), "s1", cctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}
