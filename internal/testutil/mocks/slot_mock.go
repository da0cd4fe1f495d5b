package mocks

import (
	"context"
	"sync"

	"github.com/clynicx/portal-service/internal/core/ports"
)

// MockSlotStore is an in-memory ports.SlotStore with error injection and
// call counting.
type MockSlotStore struct {
	mu   sync.RWMutex
	data map[string]string

	GetError    error
	SetError    error
	DeleteError error
	PingError   error

	DeleteCalls int
}

var _ ports.SlotStore = (*MockSlotStore)(nil)

func NewMockSlotStore() *MockSlotStore {
	return &MockSlotStore{data: make(map[string]string)}
}

func (m *MockSlotStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return "", false, m.GetError
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MockSlotStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetError != nil {
		return m.SetError
	}
	m.data[key] = value
	return nil
}

func (m *MockSlotStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls++
	if m.DeleteError != nil {
		return m.DeleteError
	}
	delete(m.data, key)
	return nil
}

func (m *MockSlotStore) Ping(context.Context) error {
	return m.PingError
}

// Raw returns the stored value for assertions.
func (m *MockSlotStore) Raw(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

// Put writes a raw value for test setup.
func (m *MockSlotStore) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}
