// Package gesture turns terminal mouse events into pan gesture samples.
package gesture

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheets/internal/anim"
	"github.com/llehouerou/sheets/internal/layout"
	"github.com/llehouerou/sheets/internal/position"
)

// RestThreshold is how long the pointer may rest before release and still
// count as a flick.
const RestThreshold = 100 * time.Millisecond

// Phase is the stage of a pan gesture.
type Phase int

const (
	Began Phase = iota
	Changed
	Ended
	Cancelled
	Failed
)

func (p Phase) String() string {
	switch p {
	case Began:
		return "began"
	case Changed:
		return "changed"
	case Ended:
		return "ended"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Finished reports whether the phase ends the gesture.
func (p Phase) Finished() bool {
	return p == Ended || p == Cancelled || p == Failed
}

// Sample is one observation of a pan gesture. Translation is relative to
// where the gesture began; Location is absolute. Both are in points, as is
// Velocity (points/second).
type Sample struct {
	Phase       Phase
	Translation position.Vector
	Velocity    position.Vector
	Location    position.Vector
}

// Recognizer tracks a single left-button drag.
type Recognizer struct {
	scale float64

	active   bool
	moved    bool
	start    position.Vector
	last     position.Vector
	lastTime time.Time
	velocity position.Vector
}

// NewRecognizer returns a recognizer converting cells with the given
// points-per-row scale.
func NewRecognizer(scale float64) *Recognizer {
	return &Recognizer{scale: scale}
}

// Active reports whether a gesture is in progress.
func (r *Recognizer) Active() bool { return r.active }

// Moved reports whether the current or last gesture moved the pointer.
func (r *Recognizer) Moved() bool { return r.moved }

// Point converts a cell to a location in points.
func (r *Recognizer) Point(x, y int) position.Vector {
	return position.Vector{
		X: layout.ColumnPoints(x, r.scale),
		Y: layout.Points(y, r.scale),
	}
}

// Handle feeds a mouse event. It returns false when the event is not part
// of a pan gesture.
func (r *Recognizer) Handle(msg tea.MouseMsg) (Sample, bool) {
	loc := r.Point(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return Sample{}, false
		}
		r.active = true
		r.moved = false
		r.start, r.last = loc, loc
		r.lastTime = anim.Now()
		r.velocity = position.Vector{}
		return r.sample(Began, loc), true

	case tea.MouseActionMotion:
		if !r.active {
			return Sample{}, false
		}
		now := anim.Now()
		if dt := now.Sub(r.lastTime).Seconds(); dt > 0 {
			delta := loc.Sub(r.last)
			r.velocity = position.Vector{
				X: r.velocity.X*0.8 + delta.X/dt*0.2,
				Y: r.velocity.Y*0.8 + delta.Y/dt*0.2,
			}
		}
		if loc != r.last {
			r.moved = true
		}
		r.last, r.lastTime = loc, now
		return r.sample(Changed, loc), true

	case tea.MouseActionRelease:
		if !r.active {
			return Sample{}, false
		}
		r.active = false
		if anim.Now().Sub(r.lastTime) > RestThreshold {
			r.velocity = position.Vector{}
		}
		if loc != r.last {
			r.moved = true
		}
		return r.sample(Ended, loc), true
	}
	return Sample{}, false
}

// Cancel aborts the gesture in progress, if any. The cancelled sample
// carries no velocity.
func (r *Recognizer) Cancel() (Sample, bool) {
	if !r.active {
		return Sample{}, false
	}
	r.active = false
	r.velocity = position.Vector{}
	return r.sample(Cancelled, r.last), true
}

func (r *Recognizer) sample(phase Phase, loc position.Vector) Sample {
	return Sample{
		Phase:       phase,
		Translation: loc.Sub(r.start),
		Velocity:    r.velocity,
		Location:    loc,
	}
}
