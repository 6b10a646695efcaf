// internal/state/interface.go
package state

import "github.com/llehouerou/sheets/internal/position"

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	Position(name string) (position.Position, bool, error)
	SavePosition(name string, p position.Position)
	Forget(name string) error
	Flush() error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
