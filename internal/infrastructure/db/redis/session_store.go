package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/oficina/workshop/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// SessionStore keeps HTML sessions as JSON values with a sliding TTL.
// Key format: session:<token>
type SessionStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client redis.Cmdable, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Create stores s under a fresh random token.
func (s *SessionStore) Create(ctx context.Context, sess *ports.Session) (string, error) {
	token := uuid.NewString()
	if err := s.Save(ctx, token, sess); err != nil {
		return "", err
	}
	return token, nil
}

// Get loads a session and extends its TTL.
func (s *SessionStore) Get(ctx context.Context, token string) (*ports.Session, error) {
	if _, err := uuid.Parse(token); err != nil {
		return nil, ports.ErrSessionNotFound
	}

	raw, err := s.client.GetEx(ctx, s.key(token), s.ttl).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}

	var sess ports.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("session decode: %w", err)
	}
	return &sess, nil
}

// Save overwrites the session and resets its TTL.
func (s *SessionStore) Save(ctx context.Context, token string, sess *ports.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	if err := s.client.Set(ctx, s.key(token), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionStore) key(token string) string {
	return "session:" + token
}
