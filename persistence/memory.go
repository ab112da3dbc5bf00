package persistence

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Port for tests and ephemeral runs.
// Failures can be injected to exercise the store's recovery paths.
type MemoryStore struct {
	mu       sync.Mutex
	data     []byte
	saves    int
	loadErr  error
	saveErr  error
	watchers []func([]byte)
}

// NewMemoryStore returns an empty in-memory port.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SetData pre-loads a payload, as if a previous run had persisted it.
func (m *MemoryStore) SetData(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
}

// FailLoads makes every Load return err.
func (m *MemoryStore) FailLoads(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

// FailSaves makes every Save return err.
func (m *MemoryStore) FailSaves(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// Saves reports how many Save calls succeeded.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *MemoryStore) Load() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.data == nil {
		return nil, ErrNotFound
	}
	return append([]byte(nil), m.data...), nil
}

func (m *MemoryStore) Save(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data = append([]byte(nil), data...)
	m.saves++
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

// Watch registers fn for payloads delivered via Notify.
func (m *MemoryStore) Watch(ctx context.Context, fn func(data []byte)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.watchers = append(m.watchers, fn)
	return nil
}

// Notify simulates an external write landing in the store.
func (m *MemoryStore) Notify(data []byte) {
	m.mu.Lock()
	watchers := make([]func([]byte), len(m.watchers))
	copy(watchers, m.watchers)
	m.mu.Unlock()
	for _, fn := range watchers {
		fn(append([]byte(nil), data...))
	}
}
