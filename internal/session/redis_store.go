package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed session store. Keys keep the
// original "refresh:" keyspace so deployed instances stay compatible.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "refresh:",
	}
}

func (r *RedisStore) key(sessionID string) string {
	return r.prefix + sessionID
}

func (r *RedisStore) Create(ctx context.Context, sessionID string, s Session, ttl time.Duration) error {
	if sessionID == "" || s.UserID == "" {
		return fmt.Errorf("session: missing session_id or user_id")
	}

	if ttl <= 0 {
		return fmt.Errorf("session: ttl must be positive")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: failed to marshal: %w", err)
	}

	return r.client.Set(ctx, r.key(sessionID), data, ttl).Err()
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	val, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil // not found
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("session: failed to unmarshal: %w", err)
	}

	return &s, nil
}

// Delete removes the record and reports whether it still existed.
// DEL on a single key is atomic in Redis, so exactly one concurrent
// caller observes true for a given sessionID.
func (r *RedisStore) Delete(ctx context.Context, sessionID string) (bool, error) {
	n, err := r.client.Del(ctx, r.key(sessionID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
