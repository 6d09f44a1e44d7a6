// File: database/repository/store.go
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"harithakarmabhoomi/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Collection names. Per-user collections are keyed "{collection}_{userId}";
// global collections use the bare name.
const (
	CollectionUsers      = "users"
	CollectionBookings   = "bookings"
	CollectionComplaints = "complaints"
	CollectionExchanges  = "exchanges"
	CollectionReports    = "reports"
	CollectionRates      = "rate_table"
)

// Key builds the storage key for a collection, optionally scoped to a user.
func Key(collection, scopeID string) string {
	if scopeID == "" {
		return collection
	}
	return fmt.Sprintf("%s_%s", collection, scopeID)
}

// RecordStore is a key→JSON-document store over Redis. Every value is a
// whole document written and replaced atomically; callers read-modify-write.
// Concurrent writers race with last-writer-wins, which is accepted.
type RecordStore struct {
	client *redis.Client
}

// NewRecordStore creates a RecordStore over the given Redis client.
func NewRecordStore(client *redis.Client) *RecordStore {
	return &RecordStore{client: client}
}

// ReadInto reads the document at the collection key into dest. A missing
// key leaves dest untouched. A malformed document is logged and treated as
// absent, never surfaced to the caller.
func (s *RecordStore) ReadInto(ctx context.Context, collection, scopeID string, dest interface{}) error {
	key := Key(collection, scopeID)
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		utils.GetLogger().Warn("Discarding malformed record document",
			zap.String("key", key), zap.Error(err))
		return nil
	}
	return nil
}

// Write replaces the document at the collection key.
func (s *RecordStore) Write(ctx context.Context, collection, scopeID string, value interface{}) error {
	key := Key(collection, scopeID)
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal document for %q: %w", key, err)
	}
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

// Delete removes the document at the collection key.
func (s *RecordStore) Delete(ctx context.Context, collection, scopeID string) error {
	return s.client.Del(ctx, Key(collection, scopeID)).Err()
}
