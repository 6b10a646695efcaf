// internal/state/mock.go
package state

import "github.com/llehouerou/sheets/internal/position"

// Mock is a test double for Manager.
type Mock struct {
	positions map[string]position.Position
	saves     int
	closed    bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{positions: make(map[string]position.Position)}
}

func (m *Mock) Position(name string) (position.Position, bool, error) {
	p, ok := m.positions[name]
	return p, ok, nil
}

func (m *Mock) SavePosition(name string, p position.Position) {
	m.positions[name] = p
	m.saves++
}

func (m *Mock) Forget(name string) error {
	delete(m.positions, name)
	return nil
}

func (m *Mock) Flush() error { return nil }

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) Saves() int { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
