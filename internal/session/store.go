// Package session keeps server-side admin sessions and binds them to a
// signed browser cookie.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/erazemk/lostfound/internal/store"
)

// Store persists session IDs. A session that exists is an authenticated admin.
type Store interface {
	Create(ctx context.Context, id string, ttl time.Duration) error
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

// SQLStore keeps sessions in the application database.
type SQLStore struct {
	DB *sql.DB
}

func (s *SQLStore) Create(ctx context.Context, id string, ttl time.Duration) error {
	return store.CreateSession(ctx, s.DB, id, time.Now().Add(ttl))
}

func (s *SQLStore) Exists(ctx context.Context, id string) (bool, error) {
	return store.SessionExists(ctx, s.DB, id)
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	return store.DeleteSession(ctx, s.DB, id)
}

// RedisStore keeps sessions in Redis and lets key expiry handle cleanup.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "session:"}
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

func (s *RedisStore) Create(ctx context.Context, id string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(id), "admin", ttl).Err(); err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	return nil
}

func (s *RedisStore) Exists(ctx context.Context, id string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(id)).Result()
	if err != nil {
		return false, fmt.Errorf("checking session: %w", err)
	}
	return n > 0, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
