package stack

import (
	"errors"
	"fmt"
	"time"
)

// DefaultDuration is the length of push, pop, present and dismiss slides.
const DefaultDuration = 300 * time.Millisecond

// ErrUnknownTransition is returned by ParseTransition.
var ErrUnknownTransition = errors.New("unknown transition")

// Transition decides how two sheets swap: both slide along the container
// height, the incoming one up into place and the outgoing one down out of
// view.
type Transition interface {
	// Duration returns the slide duration. Zero swaps without animating.
	Duration() time.Duration
	// OutgoingOnTop reports whether the outgoing sheet is drawn over the
	// incoming one.
	OutgoingOnTop(forward bool) bool
}

// ForwardStack slides a pushed sheet up in front of the current one. On
// pop the outgoing sheet stays in front.
type ForwardStack struct {
	D time.Duration
}

// Duration implements Transition.
func (f ForwardStack) Duration() time.Duration { return f.D }

// OutgoingOnTop implements Transition.
func (ForwardStack) OutgoingOnTop(forward bool) bool { return !forward }

// BackwardStack slides a pushed sheet up from behind the current one.
type BackwardStack struct {
	D time.Duration
}

// Duration implements Transition.
func (b BackwardStack) Duration() time.Duration { return b.D }

// OutgoingOnTop implements Transition.
func (BackwardStack) OutgoingOnTop(forward bool) bool { return forward }

// ParseTransition returns the transition called name ("forward" or
// "backward") lasting d.
func ParseTransition(name string, d time.Duration) (Transition, error) {
	switch name {
	case "", "forward":
		return ForwardStack{D: d}, nil
	case "backward":
		return BackwardStack{D: d}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTransition, name)
}
