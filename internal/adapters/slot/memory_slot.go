package slot

import (
	"context"
	"sync"

	"github.com/clynicx/portal-service/internal/core/ports"
)

// MemorySlot is a process-local slot store for development and tests.
type MemorySlot struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ ports.SlotStore = (*MemorySlot)(nil)

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{data: make(map[string]string)}
}

func (m *MemorySlot) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemorySlot) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemorySlot) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemorySlot) Ping(context.Context) error { return nil }
