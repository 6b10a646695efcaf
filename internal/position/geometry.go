package position

import (
	"errors"
	"fmt"
)

// ErrInvalidContainer is returned for degenerate container geometry.
var ErrInvalidContainer = errors.New("invalid container geometry")

// Geometry holds the measurements the position heights derive from.
// All values are in points.
type Geometry struct {
	ContainerHeight float64
	SafeAreaTop     float64
	TopInset        float64
	KeyboardBottom  float64

	// FittingHeight is the measured intrinsic height of the sheet content.
	// Zero means unmeasured, in which case FittingSize contributes no
	// height to distance computations.
	FittingHeight float64
}

// Validate checks the geometry for values no layout can satisfy.
func (g Geometry) Validate() error {
	if g.ContainerHeight < 0 {
		return fmt.Errorf("%w: container height %v", ErrInvalidContainer, g.ContainerHeight)
	}
	return nil
}

// OpenHeight is the height of the sheet in the Open position: the
// container minus the safe area, the top inset and the keyboard.
func (g Geometry) OpenHeight() float64 {
	return max(0, g.ContainerHeight-(g.SafeAreaTop+g.TopInset+g.KeyboardBottom))
}

// HeightFor returns the sheet height at position p.
//
// Closed is always 0. Callers that render a handle above the sheet must
// additionally push the sheet down by the closed offset so the handle is
// hidden too (see layout.Manager.ClosedOffset).
func HeightFor(p Position, g Geometry) (float64, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}
	if !p.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownPosition, int(p))
	}
	return heightFor(p, g), nil
}

func heightFor(p Position, g Geometry) float64 {
	open := g.OpenHeight()
	switch p {
	case Half:
		return open / 2
	case FittingSize:
		return clamp(g.FittingHeight, 0, open)
	case Open:
		return open
	default:
		return 0
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
