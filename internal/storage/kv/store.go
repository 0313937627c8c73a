package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has no value. A store failure
// is never reported as an absent key.
var ErrKeyNotFound = errors.New("key not found")

// Store is the minimal persistence contract: single-key get and set of opaque
// byte values. No atomicity is guaranteed across a read-then-write sequence.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// IndexStore is an optional extension for backends that can maintain an
// ordered id list under a key atomically. Callers fall back to a JSON array
// over Get/Set when the store does not implement it.
type IndexStore interface {
	PrependIndex(ctx context.Context, key, id string) error
	ReadIndex(ctx context.Context, key string) ([]string, error)
}
