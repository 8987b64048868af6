package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"home-maintenance-server/types"
)

// SessionStore keeps session payloads in Redis under session:<id>
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// Save stores identity under sessionID and (re)starts its expiry
func (s *SessionStore) Save(ctx context.Context, sessionID string, identity *types.Identity) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return types.NewInternalError("failed to encode session", err)
	}
	if err := s.client.Set(ctx, sessionKey(sessionID), payload, s.ttl).Err(); err != nil {
		return types.NewInternalError("failed to store session", err)
	}
	return nil
}

// Load returns the identity of a live session. An expired or unknown session
// is an unauthenticated error.
func (s *SessionStore) Load(ctx context.Context, sessionID string) (*types.Identity, error) {
	payload, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, types.NewUnauthenticatedError("Session expired")
	}
	if err != nil {
		return nil, types.NewInternalError("failed to load session", err)
	}

	var identity types.Identity
	if err := json.Unmarshal(payload, &identity); err != nil {
		return nil, types.NewInternalError("failed to decode session", err)
	}
	return &identity, nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return types.NewInternalError("failed to delete session", err)
	}
	return nil
}
