package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/clynicx/portal-service/internal/core/domain"
	"github.com/clynicx/portal-service/internal/core/ports"
)

// MemoryDirectory keeps profiles in process memory. It is used when no
// database is configured; outbox payloads are dropped.
type MemoryDirectory struct {
	mu       sync.RWMutex
	profiles map[string]domain.User
}

var _ ports.ProfileDirectory = (*MemoryDirectory)(nil)

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{profiles: make(map[string]domain.User)}
}

func (m *MemoryDirectory) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.profiles[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &user, nil
}

func (m *MemoryDirectory) CreateProfile(_ context.Context, user domain.User, _ []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, exists := m.profiles[key]; exists {
		return domain.ErrEmailTaken
	}
	m.profiles[key] = user
	return nil
}

func (m *MemoryDirectory) Ping(context.Context) error { return nil }
