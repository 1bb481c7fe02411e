package storage

import (
	"context"
	"sync"
)

// MemStore keeps the state blob in memory. Used by tests and for ephemeral
// demo runs where nothing should touch disk.
type MemStore struct {
	mu   sync.Mutex
	data []byte
}

// NewMemStore returns an empty in-memory slot.
func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) Load(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, ErrEmpty
	}
	return append([]byte(nil), m.data...), nil
}

func (m *MemStore) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	return nil
}

func (m *MemStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}
