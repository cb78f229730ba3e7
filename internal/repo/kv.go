// Package repo contains all persistence logic for the prompt library.
// Durable state is a handful of serialized values under string keys, so
// every backend implements the small KVStore interface and the typed repos
// (SnapshotRepo, SessionRepo) are built on top of it.
// No business logic lives here, only storage access and encoding.
package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pkordes/promptlib/backend/internal/domain"
)

// KVStore is a durable map from string keys to opaque values.
// The service layer never sees it directly; it goes through SnapshotRepo
// and SessionRepo.
type KVStore interface {
	// Get returns the value stored under key.
	// Returns domain.ErrNotFound if nothing is stored under key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// memoryKV is an in-process KVStore. Values are copied on the way in and
// out so callers cannot mutate stored bytes.
type memoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryKV constructs an empty in-memory KVStore.
// Nothing survives a restart; it is meant for tests and demos.
func NewMemoryKV() KVStore {
	return &memoryKV{data: map[string][]byte{}}
}

func (m *memoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *memoryKV) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// healthKey is read by Ping and never written.
const healthKey = "healthz"

// Ping reports whether kv answers reads. A missing key is a healthy answer.
func Ping(ctx context.Context, kv KVStore) error {
	if _, err := kv.Get(ctx, healthKey); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("repo.Ping: %w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
