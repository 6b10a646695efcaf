package position

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
)

// FlickVelocity is the vertical release velocity (points/second) above which
// a drag keeps going in its direction instead of snapping to the nearest
// position. The comparison is strict.
const FlickVelocity = 150

var (
	ErrNoPositions       = errors.New("no supported positions")
	ErrDuplicatePosition = errors.New("duplicate supported position")
)

// Anchor selects the end of the height range the dimming pair is taken from.
type Anchor int

const (
	// AnchorClosed dims between the position right above the bottom-most
	// position and that bottom-most position.
	AnchorClosed Anchor = iota
	// AnchorOpen dims between the top-most position and the one below it.
	AnchorOpen
)

func (a Anchor) String() string {
	if a == AnchorOpen {
		return "open"
	}
	return "closed"
}

// ParseAnchor parses "closed" or "open". The empty string is AnchorClosed.
func ParseAnchor(s string) (Anchor, error) {
	switch s {
	case "", "closed":
		return AnchorClosed, nil
	case "open":
		return AnchorOpen, nil
	}
	return AnchorClosed, fmt.Errorf("unknown dimming anchor %q", s)
}

// Ranked pairs a position with its signed distance from a height.
type Ranked struct {
	Position Position
	Distance float64
}

// Model answers position questions for a fixed set of supported positions
// and a fixed geometry. Build a new Model when either changes.
type Model struct {
	supported []Position
	geometry  Geometry
	anchor    Anchor
	heights   [4]float64
}

// NewModel validates the supported positions and geometry and precomputes
// every position height.
func NewModel(supported []Position, g Geometry, anchor Anchor) (Model, error) {
	if len(supported) == 0 {
		return Model{}, ErrNoPositions
	}
	if err := g.Validate(); err != nil {
		return Model{}, err
	}
	seen := make(map[Position]bool, len(supported))
	for _, p := range supported {
		if !p.Valid() {
			return Model{}, fmt.Errorf("%w: %d", ErrUnknownPosition, int(p))
		}
		if seen[p] {
			return Model{}, fmt.Errorf("%w: %s", ErrDuplicatePosition, p)
		}
		seen[p] = true
	}

	m := Model{
		supported: slices.Clone(supported),
		geometry:  g,
		anchor:    anchor,
	}
	for _, p := range All {
		m.heights[p] = heightFor(p, g)
	}
	return m, nil
}

// Supported returns a copy of the supported positions in configuration order.
func (m Model) Supported() []Position {
	return slices.Clone(m.supported)
}

// Supports reports whether p is one of the supported positions.
func (m Model) Supports(p Position) bool {
	return slices.Contains(m.supported, p)
}

// Geometry returns the geometry the model was built from.
func (m Model) Geometry() Geometry {
	return m.geometry
}

// Anchor returns the dimming anchor.
func (m Model) Anchor() Anchor {
	return m.anchor
}

// Height returns the height at position p.
func (m Model) Height(p Position) float64 {
	if !p.Valid() {
		return 0
	}
	return m.heights[p]
}

// OpenHeight is the maximum height the sheet can take.
func (m Model) OpenHeight() float64 {
	return m.heights[Open]
}

// Distance returns height - Height(p). Positive means the sheet is taller
// than it would be at p.
func (m Model) Distance(height float64, p Position) float64 {
	return height - m.Height(p)
}

// Ranked returns the supported positions ordered by absolute distance from
// height. Ties keep configuration order.
func (m Model) Ranked(height float64) []Ranked {
	ranked := make([]Ranked, 0, len(m.supported))
	for _, p := range m.supported {
		ranked = append(ranked, Ranked{Position: p, Distance: m.Distance(height, p)})
	}
	slices.SortStableFunc(ranked, func(a, b Ranked) int {
		return cmp.Compare(math.Abs(a.Distance), math.Abs(b.Distance))
	})
	return ranked
}

// InDirection returns the supported positions a drag with the given
// translation could still reach from height. A zero vertical translation
// returns every supported position. Otherwise the current position is
// excluded, and only positions on the side the drag is heading to are kept:
// below the sheet for a downward drag, above it for an upward drag.
func (m Model) InDirection(translation Vector, current Position, height float64) []Position {
	if translation.Y == 0 {
		return m.Supported()
	}
	var result []Position
	for _, p := range m.supported {
		if p == current {
			continue
		}
		d := m.Distance(height, p)
		if (translation.Y > 0 && d >= 0) || (translation.Y < 0 && d <= 0) {
			result = append(result, p)
		}
	}
	return result
}

// Target picks the position a released drag settles at.
//
// A fast downward release goes to the closest position at or below the
// sheet, a fast upward one to the closest at or above it; a slow release
// goes to the closest position. When the filtered set is empty the current
// position is kept.
func (m Model) Target(velocity Vector, height float64, current Position) Position {
	ranked := m.Ranked(height)

	var keep func(Ranked) bool
	switch {
	case velocity.Y > FlickVelocity:
		keep = func(r Ranked) bool { return r.Distance >= 0 }
	case velocity.Y < -FlickVelocity:
		keep = func(r Ranked) bool { return r.Distance <= 0 }
	default:
		keep = func(Ranked) bool { return true }
	}

	for _, r := range ranked {
		if keep(r) {
			return r.Position
		}
	}
	return current
}

// DimmingPair returns the two positions the background dimming runs
// between: top is fully dimmed, second fully clear. ok is false when fewer
// than two positions are supported.
func (m Model) DimmingPair() (top, second Position, ok bool) {
	if len(m.supported) < 2 {
		return 0, 0, false
	}
	from := 0.0
	if m.anchor == AnchorOpen {
		from = m.OpenHeight()
	}
	ranked := m.Ranked(from)
	top, second = ranked[0].Position, ranked[1].Position
	if m.Height(second) > m.Height(top) {
		top, second = second, top
	}
	return top, second, true
}

// TopPosition is the dimmed end of the dimming pair. With a single
// supported position it is that position.
func (m Model) TopPosition() Position {
	if top, _, ok := m.DimmingPair(); ok {
		return top
	}
	return m.supported[0]
}

// SecondPosition is the clear end of the dimming pair.
func (m Model) SecondPosition() (Position, bool) {
	_, second, ok := m.DimmingPair()
	return second, ok
}

// DimmingFraction maps height onto the dimming pair: 0 at the top position
// (dimmed), 1 at the second position (clear), clamped to [0, 1]. ok is false
// when there is no pair or both ends have the same height.
func (m Model) DimmingFraction(height float64) (float64, bool) {
	top, second, ok := m.DimmingPair()
	if !ok {
		return 0, false
	}
	topHeight, secondHeight := m.Height(top), m.Height(second)
	if topHeight == secondHeight {
		return 0, false
	}
	fraction := 1 - (height-secondHeight)/(topHeight-secondHeight)
	return clamp(fraction, 0, 1), true
}
