// Package mocks provides hand-written implementations of the port
// interfaces for tests.
package mocks

import (
	"context"
	"strings"
	"sync"

	"github.com/clynicx/portal-service/internal/core/domain"
	"github.com/clynicx/portal-service/internal/core/ports"
)

// MockProfileDirectory implements ports.ProfileDirectory in memory and
// records the outbox payload of every created profile.
type MockProfileDirectory struct {
	mu sync.RWMutex

	users map[string]domain.User

	// Call tracking
	FindByEmailCalls   []string
	CreateProfileCalls []domain.User
	OutboxPayloads     [][]byte

	// Error injection
	FindByEmailError   error
	CreateProfileError error
	PingError          error
}

var _ ports.ProfileDirectory = (*MockProfileDirectory)(nil)

func NewMockProfileDirectory() *MockProfileDirectory {
	return &MockProfileDirectory{users: make(map[string]domain.User)}
}

// SeedUser adds a profile for test setup.
func (m *MockProfileDirectory) SeedUser(user domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[strings.ToLower(user.Email)] = user
}

func (m *MockProfileDirectory) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.FindByEmailCalls = append(m.FindByEmailCalls, email)
	if m.FindByEmailError != nil {
		return nil, m.FindByEmailError
	}

	user, ok := m.users[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &user, nil
}

func (m *MockProfileDirectory) CreateProfile(_ context.Context, user domain.User, outboxPayload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateProfileCalls = append(m.CreateProfileCalls, user)
	if m.CreateProfileError != nil {
		return m.CreateProfileError
	}

	key := strings.ToLower(user.Email)
	if _, exists := m.users[key]; exists {
		return domain.ErrEmailTaken
	}
	m.users[key] = user
	m.OutboxPayloads = append(m.OutboxPayloads, outboxPayload)
	return nil
}

func (m *MockProfileDirectory) Ping(context.Context) error {
	return m.PingError
}
