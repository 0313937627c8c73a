package kv

import (
	"context"
	"sync"
)

// Memory is an in-process Store used by tests and the memory storage mode.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte

	failGet error
	failSet error
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failGet != nil {
		return nil, m.failGet
	}
	value, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet != nil {
		return m.failSet
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

// FailGets makes subsequent Get calls return err. Pass nil to restore.
func (m *Memory) FailGets(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failGet = err
}

// FailSets makes subsequent Set calls return err. Pass nil to restore.
func (m *Memory) FailSets(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failSet = err
}

// Delete removes a key. Test helper for simulating stale index entries.
func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

// Len returns the number of stored keys.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
