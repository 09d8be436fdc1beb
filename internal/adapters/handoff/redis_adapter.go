package handoff

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/swiftmedhelp/backend/internal/domain/entities"
	"github.com/swiftmedhelp/backend/internal/domain/providers"
	redisclient "github.com/swiftmedhelp/backend/internal/infrastructure/clients/redis"
)

// RedisAdapter implements the HandoffStore interface using Redis. Each
// browsing session owns exactly one slot; Put overwrites it, and the TTL
// bounds the slot to the session lifetime.
type RedisAdapter struct {
	client *redisclient.Client
	ttl    time.Duration
}

// NewRedisAdapter creates a new Redis handoff adapter
func NewRedisAdapter(client *redisclient.Client, ttl time.Duration) providers.HandoffStore {
	return &RedisAdapter{
		client: client,
		ttl:    ttl,
	}
}

// Put stores the draft in the session's slot, replacing any previous draft
func (a *RedisAdapter) Put(ctx context.Context, sessionID string, draft *entities.AppointmentDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode appointment draft: %w", err)
	}
	if err := a.client.Client().Set(ctx, handoffKey(sessionID), payload, a.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store appointment draft: %w", err)
	}
	return nil
}

// Read returns the session's current draft, or ok=false for an empty slot
func (a *RedisAdapter) Read(ctx context.Context, sessionID string) (*entities.AppointmentDraft, bool, error) {
	payload, err := a.client.Client().Get(ctx, handoffKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read appointment draft: %w", err)
	}

	var draft entities.AppointmentDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, false, fmt.Errorf("failed to decode appointment draft: %w", err)
	}
	return &draft, true, nil
}

func handoffKey(sessionID string) string {
	return "handoff:" + sessionID
}
