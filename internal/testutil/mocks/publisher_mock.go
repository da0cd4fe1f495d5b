package mocks

import (
	"context"
	"sync"

	"github.com/clynicx/portal-service/internal/core/ports"
)

// MockProfilePublisher captures events instead of sending them to a
// broker.
type MockProfilePublisher struct {
	mu sync.RWMutex

	PublishedEvents  []ports.ProfileCreatedEvent
	PublishError     error
	PublishCallCount int
}

var _ ports.ProfileEventPublisher = (*MockProfilePublisher)(nil)

func NewMockProfilePublisher() *MockProfilePublisher {
	return &MockProfilePublisher{}
}

func (m *MockProfilePublisher) PublishProfileCreated(_ context.Context, evt ports.ProfileCreatedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PublishCallCount++
	if m.PublishError != nil {
		return m.PublishError
	}
	m.PublishedEvents = append(m.PublishedEvents, evt)
	return nil
}

// GetPublishedEvents returns a copy of the captured events.
func (m *MockProfilePublisher) GetPublishedEvents() []ports.ProfileCreatedEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events := make([]ports.ProfileCreatedEvent, len(m.PublishedEvents))
	copy(events, m.PublishedEvents)
	return events
}
