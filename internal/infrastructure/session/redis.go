// Package session provides the durable session slot behind ports.SessionStore:
// Redis in production, an in-memory map in tests.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/medisync/healthcare-portal/internal/core/domain"
)

const keyPrefix = "healthcare:session:"

const connectTimeout = 5 * time.Second

// Connect initialises a Redis client and validates connectivity with a ping.
func Connect(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// RedisStore persists identities in Redis with a TTL per slot.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, sid string) (*domain.Identity, error) {
	raw, err := s.client.Get(ctx, sessionKey(sid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionUnavailable, err)
	}

	var identity domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		// A corrupt slot reads as "not logged in", never as a crash.
		return nil, domain.ErrNoSession
	}
	return &identity, nil
}

func (s *RedisStore) Save(ctx context.Context, sid string, identity *domain.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(sid), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSessionUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, sessionKey(sid)).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSessionUnavailable, err)
	}
	return nil
}

func sessionKey(sid string) string {
	return keyPrefix + sid
}
