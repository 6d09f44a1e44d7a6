// File: services/session/session.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"harithakarmabhoomi/models"

	"github.com/go-redis/redis/v8"
)

// SessionPrefix namespaces the session pointers. Each pointer holds the
// logged-in user's full record, keyed by the hash of the bearer token.
const SessionPrefix = "current_session:"

// Manager owns the persisted session pointers. Restoring a session does
// not re-validate credentials; the pointer expires with its TTL.
type Manager struct {
	client *redis.Client
	ttl    time.Duration
}

// NewManager creates a session manager over the given Redis client.
func NewManager(client *redis.Client, ttl time.Duration) *Manager {
	return &Manager{client: client, ttl: ttl}
}

// Save persists the session pointer for the given token hash.
func (m *Manager) Save(ctx context.Context, tokenHash string, u models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := m.client.Set(ctx, SessionPrefix+tokenHash, data, m.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Get restores the session pointer for the given token hash. A missing
// pointer returns (nil, nil).
func (m *Manager) Get(ctx context.Context, tokenHash string) (*models.User, error) {
	data, err := m.client.Get(ctx, SessionPrefix+tokenHash).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve session: %w", err)
	}
	var u models.User
	if err := json.Unmarshal([]byte(data), &u); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &u, nil
}

// Delete clears the session pointer for the given token hash.
func (m *Manager) Delete(ctx context.Context, tokenHash string) error {
	return m.client.Del(ctx, SessionPrefix+tokenHash).Err()
}
