package redis

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrStateNotFound is returned when an OAuth state is unknown, expired or
// already consumed.
var ErrStateNotFound = errors.New("oauth state not found or expired")

// StateStore keeps OAuth state values between the authorization redirect and
// the callback. Each state is single use.
// Key format: oauth_state:<state>
type StateStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStateStore creates a StateStore whose states expire after ttl.
func NewStateStore(client *redis.Client, ttl time.Duration) *StateStore {
	return &StateStore{client: client, ttl: ttl}
}

// Issue generates a random state and stores it.
func (s *StateStore) Issue(ctx context.Context) (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	state := base64.RawURLEncoding.EncodeToString(b)

	ok, err := s.client.SetNX(ctx, s.key(state), "1", s.ttl).Result()
	if err != nil {
		return "", fmt.Errorf("store state: %w", err)
	}
	if !ok {
		return "", fmt.Errorf("store state: collision")
	}

	return state, nil
}

// Consume deletes the state and reports ErrStateNotFound if it was not present.
func (s *StateStore) Consume(ctx context.Context, state string) error {
	if state == "" {
		return ErrStateNotFound
	}

	_, err := s.client.GetDel(ctx, s.key(state)).Result()
	if errors.Is(err, redis.Nil) {
		return ErrStateNotFound
	}
	if err != nil {
		return fmt.Errorf("consume state: %w", err)
	}

	return nil
}

func (s *StateStore) key(state string) string {
	return "oauth_state:" + state
}

// Ping reports whether Redis answers.
func (s *StateStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
