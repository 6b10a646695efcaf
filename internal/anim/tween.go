package anim

import "time"

// Tween animates a progress value from 0 to 1 along an easing curve.
type Tween struct {
	curve  Curve
	frames int
	frame  int
}

// NewTween returns a tween lasting duration. A nil curve is Linear.
func NewTween(duration time.Duration, curve Curve) *Tween {
	if curve == nil {
		curve = Linear
	}
	return &Tween{curve: curve, frames: Frames(duration)}
}

// Step advances one frame and returns the eased progress and whether the
// tween has finished.
func (t *Tween) Step() (float64, bool) {
	if t.Done() {
		return 1, true
	}
	t.frame++
	return t.Value(), t.Done()
}

// Value returns the eased progress.
func (t *Tween) Value() float64 {
	if t.frames == 0 {
		return 1
	}
	return t.curve(float64(t.frame) / float64(t.frames))
}

// Done reports whether the tween has reached its last frame.
func (t *Tween) Done() bool { return t.frame >= t.frames }
