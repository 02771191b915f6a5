package tick

import (
	"sync"
	"time"
)

// Clock provides the current time. The scheduler reads time only through
// this interface so tests can substitute a controllable source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real system time with its monotonic component.
type SystemClock struct{}

// Now returns the current time with monotonic clock reading.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock is a controllable time source for testing.
type MockClock struct {
	mu      sync.RWMutex
	current time.Time
}

// NewMockClock creates a mock clock starting at the given time.
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{current: start}
}

// Now returns the current mocked time.
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// SetTime sets the current time for the mock.
func (m *MockClock) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance advances the current time by the given duration.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}
