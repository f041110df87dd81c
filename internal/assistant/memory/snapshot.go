// internal/assistant/memory/snapshot.go
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"police-assistant/internal/common/database"
	"police-assistant/internal/models"
)

const snapshotKeyPrefix = "assistant:session:"

// SnapshotStore persists conversation contexts to Redis so sessions
// survive a process restart. Saves are best-effort; the in-process Store
// stays authoritative.
type SnapshotStore struct {
	client *database.RedisClient
	ttl    time.Duration
}

func NewSnapshotStore(client *database.RedisClient, ttl time.Duration) *SnapshotStore {
	return &SnapshotStore{client: client, ttl: ttl}
}

// Save writes the session's context as a JSON value with the configured TTL.
func (s *SnapshotStore) Save(ctx context.Context, sessionID string, cctx models.ConversationContext) error {
	payload, err := json.Marshal(cctx)
	if err != nil {
		return fmt.Errorf("marshal session snapshot: %w", err)
	}
	return s.client.Set(ctx, snapshotKey(sessionID), payload, s.ttl)
}

// Load reads a persisted context. The second return is false when no
// snapshot exists for the id.
func (s *SnapshotStore) Load(ctx context.Context, sessionID string) (models.ConversationContext, bool, error) {
	raw, err := s.client.Get(ctx, snapshotKey(sessionID))
	if errors.Is(err, redis.Nil) {
		return models.ConversationContext{}, false, nil
	}
	if err != nil {
		return models.ConversationContext{}, false, err
	}
	var cctx models.ConversationContext
	if err := json.Unmarshal([]byte(raw), &cctx); err != nil {
		return models.ConversationContext{}, false, fmt.Errorf("unmarshal session snapshot: %w", err)
	}
	return cctx, true, nil
}

// Delete removes a persisted snapshot, typically after a session clear.
func (s *SnapshotStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, snapshotKey(sessionID))
}

func snapshotKey(sessionID string) string {
	return snapshotKeyPrefix + sessionID
}
