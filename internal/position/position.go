// Package position implements the geometry behind a sheet's resting
// positions: heights, distances, ranking and drag target selection.
//
// Everything in this package is pure. A Model is built once from the
// supported positions and the current geometry and answers questions about
// a live sheet height; it never mutates.
package position

import (
	"errors"
	"fmt"
	"strings"
)

// Position is a named, discrete resting state of a sheet.
type Position int

const (
	Closed Position = iota
	Half
	FittingSize
	Open
)

// ErrUnknownPosition is returned when a position name or value is not one
// of the known positions.
var ErrUnknownPosition = errors.New("unknown sheet position")

// All lists every known position in declaration order.
var All = []Position{Closed, Half, FittingSize, Open}

var names = map[Position]string{
	Closed:      "closed",
	Half:        "half",
	FittingSize: "fitting_size",
	Open:        "open",
}

func (p Position) String() string {
	if name, ok := names[p]; ok {
		return name
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// Valid reports whether p is one of the known positions.
func (p Position) Valid() bool {
	_, ok := names[p]
	return ok
}

// ParsePosition parses the text form of a position. Matching is case
// insensitive and accepts "fittingsize" and "fitting-size" as aliases.
func ParsePosition(s string) (Position, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	if normalized == "fittingsize" {
		normalized = "fitting_size"
	}
	for p, name := range names {
		if name == normalized {
			return p, nil
		}
	}
	return Closed, fmt.Errorf("%w: %q", ErrUnknownPosition, s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPosition, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(text []byte) error {
	parsed, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Vector is a 2D quantity in points: a translation, a velocity
// (points/second) or a location.
type Vector struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}
