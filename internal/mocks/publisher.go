package mocks

import (
	"context"
	"sync"

	"github.com/news-portal-api/internal/events"
)

// Verify interface compliance
var _ events.Publisher = (*MockPublisher)(nil)

// MockPublisher records published events
type MockPublisher struct {
	mu     sync.Mutex
	Events []events.Event
	Err    error
	Closed bool
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{
		Events: make([]events.Event, 0),
	}
}

func (m *MockPublisher) Publish(ctx context.Context, event events.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Events = append(m.Events, event)
	return nil
}

func (m *MockPublisher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

// Types returns the types of the recorded events in publish order
func (m *MockPublisher) Types() []events.Type {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]events.Type, 0, len(m.Events))
	for _, e := range m.Events {
		types = append(types, e.Type)
	}
	return types
}
