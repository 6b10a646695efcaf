package anim

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

// Spring animates a progress value from 0 to 1 with a damped spring.
// The initial velocity is expressed in total distances per second, so a
// velocity of 2 covers the whole distance in half a second at that speed.
// The spring always lands exactly on 1 at its last frame.
type Spring struct {
	spring harmonica.Spring
	frames int
	frame  int
	pos    float64
	vel    float64
}

// NewSpring returns a spring lasting duration with the given damping ratio.
func NewSpring(duration time.Duration, damping, initialVelocity float64) *Spring {
	frames := Frames(duration)
	s := &Spring{frames: frames, vel: initialVelocity}
	if frames == 0 {
		s.pos = 1
		return s
	}
	// Settles within the duration: about 4 time constants of the envelope.
	angular := 4 / (damping * duration.Seconds())
	s.spring = harmonica.NewSpring(harmonica.FPS(FPS), angular, damping)
	return s
}

// Step advances one frame and returns the new progress and whether the
// spring has finished.
func (s *Spring) Step() (float64, bool) {
	if s.Done() {
		return s.pos, true
	}
	s.frame++
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, 1)
	if s.frame >= s.frames {
		s.pos, s.vel = 1, 0
		return s.pos, true
	}
	return s.pos, false
}

// Value returns the current progress. Underdamped springs may briefly
// overshoot 1.
func (s *Spring) Value() float64 { return s.pos }

// Done reports whether the spring has reached its last frame.
func (s *Spring) Done() bool { return s.frame >= s.frames }

// Frames returns the total number of frames.
func (s *Spring) Frames() int { return s.frames }
