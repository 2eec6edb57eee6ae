package out

import (
	"context"
	"sync"

	scoreout "wirematch/internal/modules/score/port/out"
)

// MemoryKVStore keeps values for the life of the process.
type MemoryKVStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{values: map[string]string{}}
}

var _ scoreout.KVStore = (*MemoryKVStore)(nil)

func (m *MemoryKVStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryKVStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryKVStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
