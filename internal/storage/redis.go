package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists session state in Redis, for environments where the
// client runs on ephemeral hosts.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a RedisStore for addr, which may be a redis:// URL
// or a plain host:port.
func NewRedisStore(addr string) (*RedisStore, error) {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, err
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}
	return &RedisStore{client: redis.NewClient(opts)}, nil
}

// NewRedisStoreFromClient wraps an existing Redis client.
func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	// Sessions have no server-side expiry; logout is the only removal path.
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
