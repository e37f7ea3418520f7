package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Store errors
var (
	ErrNotFound     = errors.New("key not found")
	ErrNotAvailable = errors.New("store not available")
)

// KV is the client for the external key-value store. Records are JSON blobs
// addressed by string keys; per-key consistency is last-write-wins. Records
// are durable (no TTL).
type KV struct {
	client *redis.Client
}

// NewKV creates a KV client over an established Redis connection.
func NewKV(client *redis.Client) *KV {
	return &KV{client: client}
}

// Get retrieves and unmarshals the record at key into dest.
func (s *KV) Get(ctx context.Context, key string, dest interface{}) error {
	if s.client == nil {
		return ErrNotAvailable
	}

	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return fmt.Errorf("store get error: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("store unmarshal error: %w", err)
	}

	return nil
}

// Set marshals and stores value at key, overwriting any prior record.
func (s *KV) Set(ctx context.Context, key string, value interface{}) error {
	if s.client == nil {
		return ErrNotAvailable
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store marshal error: %w", err)
	}

	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("store set error: %w", err)
	}

	return nil
}

// Exists reports whether a record is stored at key.
func (s *KV) Exists(ctx context.Context, key string) (bool, error) {
	if s.client == nil {
		return false, ErrNotAvailable
	}

	count, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("store exists error: %w", err)
	}

	return count > 0, nil
}

// GetByPrefix returns the raw JSON records whose keys start with prefix,
// keyed by their full store key. Uses SCAN rather than KEYS so large
// keyspaces do not block the store.
func (s *KV) GetByPrefix(ctx context.Context, prefix string) (map[string]json.RawMessage, error) {
	if s.client == nil {
		return nil, ErrNotAvailable
	}

	var cursor uint64
	var keys []string
	pattern := prefix + "*"

	for {
		scanKeys, next, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("store scan error: %w", err)
		}
		keys = append(keys, scanKeys...)
		cursor = next
		if cursor == 0 {
			break
		}
	}

	result := make(map[string]json.RawMessage, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("store mget error: %w", err)
	}

	for i, value := range values {
		if value == nil {
			continue
		}
		if str, ok := value.(string); ok {
			result[keys[i]] = json.RawMessage(str)
		}
	}

	return result, nil
}

// Ping verifies store connectivity.
func (s *KV) Ping(ctx context.Context) error {
	if s.client == nil {
		return ErrNotAvailable
	}
	if _, err := s.client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("store ping error: %w", err)
	}
	return nil
}

// Available reports whether a store connection was configured.
func (s *KV) Available() bool {
	return s.client != nil
}
