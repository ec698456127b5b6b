/**
 * @description
 * Small string-by-key preference store. The client only persists the
 * selected display language through it. Backed by Redis when a URL is
 * configured; otherwise an in-memory store keeps the preference for the
 * lifetime of the process.
 *
 * @dependencies
 * - github.com/redis/go-redis/v9: Redis client for the persistent backend.
 */

package prefstore

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when no value is stored under the key.
var ErrNotFound = errors.New("prefstore: key not found")

// Store is the opaque get/set-a-small-string-by-key capability.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// RedisStore persists preferences in Redis under a fixed key prefix.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore parses the URL and pings the server.
func NewRedisStore(ctx context.Context, redisURL, prefix string) (*RedisStore, error) {
	options, err := redis.ParseURL(strings.TrimSpace(redisURL))
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(options)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	if prefix == "" {
		prefix = "ziganya:prefs"
	}
	return &RedisStore{client: client, prefix: prefix}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.prefix+":"+key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.prefix+":"+key, value, 0).Err()
}

// Close releases the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// MemoryStore keeps preferences in the process. Used when no Redis URL is
// configured and by tests.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
