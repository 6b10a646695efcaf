// Package anim drives frame based animations on the bubbletea update loop.
//
// Animations advance one frame per FrameMsg rather than by wall clock time,
// which keeps them deterministic under test. Each running animation owns an
// ID; a component ignores frames whose ID is not the one it is waiting for,
// so starting a new animation silently supersedes the old one.
package anim

import (
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FPS is the frame rate of every animation.
const FPS = 60

// FrameInterval is the delay between two frames.
const FrameInterval = time.Second / FPS

// FrameMsg advances the animation with the matching ID by one frame.
type FrameMsg struct {
	ID int64
}

var lastID atomic.Int64

// NextID returns a fresh animation ID. IDs are never zero.
func NextID() int64 {
	return lastID.Add(1)
}

// Tick schedules the next frame of animation id.
func Tick(id int64) tea.Cmd {
	return tick(id)
}

var tick = TimedTick

// TimedTick delivers the frame after FrameInterval.
func TimedTick(id int64) tea.Cmd {
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return FrameMsg{ID: id}
	})
}

// ImmediateTick delivers the frame as soon as the command runs.
func ImmediateTick(id int64) tea.Cmd {
	return func() tea.Msg { return FrameMsg{ID: id} }
}

// SetTick replaces the frame scheduler and returns the previous one. Tests
// install ImmediateTick to run animations without timers.
func SetTick(fn func(id int64) tea.Cmd) func(id int64) tea.Cmd {
	prev := tick
	tick = fn
	return prev
}

// Frames returns the number of frames an animation of duration d lasts.
// Any positive duration lasts at least one frame.
func Frames(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return max(1, int(math.Round(d.Seconds()*FPS)))
}

// Lerp interpolates between from and to.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
