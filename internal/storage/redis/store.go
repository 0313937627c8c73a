package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/feastline/orderd/internal/storage/kv"
)

// Store implements kv.Store and kv.IndexStore on top of a Redis server.
// Index keys are kept as native Redis lists so prepends are atomic across
// any number of service instances.
type Store struct {
	client *redis.Client
	logger *slog.Logger
}

// New connects to Redis at addr and verifies connectivity.
func New(ctx context.Context, addr string, logger *slog.Logger) (*Store, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	return &Store{client: client, logger: logger}, nil
}

// NewWithClient wraps an existing client. Used by tests.
func NewWithClient(client *redis.Client, logger *slog.Logger) *Store {
	return &Store{client: client, logger: logger}
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, kv.ErrKeyNotFound
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// PrependIndex pushes id to the head of the list stored under key.
func (s *Store) PrependIndex(ctx context.Context, key, id string) error {
	if err := s.client.LPush(ctx, key, id).Err(); err != nil {
		return fmt.Errorf("redis lpush %s: %w", key, err)
	}
	return nil
}

// ReadIndex returns the full list stored under key, head first. A missing
// key reads as an empty list, matching Redis semantics.
func (s *Store) ReadIndex(ctx context.Context, key string) ([]string, error) {
	ids, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange %s: %w", key, err)
	}
	return ids, nil
}

// HealthCheck verifies Redis connectivity.
func (s *Store) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.client.Ping(ctx).Err()
}
