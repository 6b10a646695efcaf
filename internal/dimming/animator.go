package dimming

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheets/internal/anim"
)

// Duration is the nominal length of the dimming animation.
const Duration = time.Second

// Damping is the damping ratio of continued dimming animations.
const Damping = 0.9

// Animator drives a Background's intensity from a fraction: 0 is fully
// dimmed, 1 is clear. It is scrubbed directly while a sheet is dragged and
// continued with a spring when the drag ends. A finished animation pauses
// rather than completing, so it can be scrubbed again.
type Animator struct {
	bg       Background
	fraction float64
	reversed bool
	stopped  bool

	id     int64
	spring *anim.Spring
	from   float64
	to     float64
}

// NewAnimator returns an animator at fraction 0 driving bg.
func NewAnimator(bg Background) *Animator {
	a := &Animator{bg: bg}
	a.apply()
	return a
}

// Background returns the driven background.
func (a *Animator) Background() Background { return a.bg }

// Fraction returns the current fraction.
func (a *Animator) Fraction() float64 { return a.fraction }

// Reversed reports whether continuing runs towards 0.
func (a *Animator) Reversed() bool { return a.reversed }

// Running reports whether a continued animation is in progress.
func (a *Animator) Running() bool { return a.spring != nil }

// Stopped reports whether Stop was called.
func (a *Animator) Stopped() bool { return a.stopped }

// Duration returns the nominal duration.
func (a *Animator) Duration() time.Duration { return Duration }

// SetReversed sets the direction of the next Continue.
func (a *Animator) SetReversed(r bool) {
	if a.stopped {
		return
	}
	a.reversed = r
}

// SetFraction scrubs the animator, pausing any running animation.
func (a *Animator) SetFraction(f float64) {
	if a.stopped {
		return
	}
	a.spring = nil
	a.fraction = max(0, min(f, 1))
	a.apply()
}

// Continue runs the animator to its end value (1, or 0 when reversed) with
// a damped spring. The duration is durationFactor times Duration. Nothing
// happens when the fraction is already at the end value.
func (a *Animator) Continue(springVelocity, durationFactor float64) tea.Cmd {
	if a.stopped {
		return nil
	}
	to := 1.0
	if a.reversed {
		to = 0
	}
	if a.fraction == to {
		a.spring = nil
		return nil
	}
	d := time.Duration(durationFactor * float64(Duration))
	a.from, a.to = a.fraction, to
	a.spring = anim.NewSpring(d, Damping, springVelocity)
	a.id = anim.NextID()
	slog.Debug("dimming: continue", "from", a.from, "to", a.to, "duration", d)
	if a.spring.Done() {
		a.finish()
		return nil
	}
	return anim.Tick(a.id)
}

// Update advances a running animation on its own frames.
func (a *Animator) Update(msg anim.FrameMsg) tea.Cmd {
	if a.spring == nil || msg.ID != a.id {
		return nil
	}
	v, done := a.spring.Step()
	if done {
		a.finish()
		return nil
	}
	a.fraction = max(0, min(anim.Lerp(a.from, a.to, v), 1))
	a.apply()
	return anim.Tick(a.id)
}

// Owns reports whether msg is a frame of this animator.
func (a *Animator) Owns(msg anim.FrameMsg) bool {
	return a.spring != nil && msg.ID == a.id
}

// Pending returns the frame a running animation waits for.
func (a *Animator) Pending() (anim.FrameMsg, bool) {
	return anim.FrameMsg{ID: a.id}, a.spring != nil
}

// Stop ends the animator for good. Later calls are ignored.
func (a *Animator) Stop() {
	a.spring = nil
	a.stopped = true
}

func (a *Animator) finish() {
	a.spring = nil
	a.fraction = a.to
	a.apply()
}

func (a *Animator) apply() {
	a.bg.SetIntensity(1 - a.fraction)
}
