package testutil

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheets/internal/anim"
	"github.com/llehouerou/sheets/internal/ui/action"
)

// MaxSteps bounds the commands Run executes, so a runaway animation fails
// the test instead of hanging it.
const MaxSteps = 10_000

// MotionStep is how far the clock moves between two drag motions.
const MotionStep = 16 * time.Millisecond

// Model is a component driven by the harness.
type Model interface {
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// Harness drives a sheet-like component the way a bubbletea program would,
// without timers: animation frames are delivered immediately and the clock
// used for gesture velocities only moves when told to.
type Harness struct {
	t     testing.TB
	model Model
	clock *anim.ManualClock
	msgs  []tea.Msg
}

// NewHarness installs a manual clock and immediate frames for the duration
// of the test.
func NewHarness(t testing.TB, m Model) *Harness {
	t.Helper()
	clock := anim.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	prevClock := anim.SetClock(clock)
	prevTick := anim.SetTick(anim.ImmediateTick)
	t.Cleanup(func() {
		anim.SetClock(prevClock)
		anim.SetTick(prevTick)
	})
	return &Harness{t: t, model: m, clock: clock}
}

// Model returns the driven component.
func (h *Harness) Model() Model { return h.model }

// Clock returns the manual clock.
func (h *Harness) Clock() *anim.ManualClock { return h.clock }

// Send delivers msg and returns the resulting command without running it.
func (h *Harness) Send(msg tea.Msg) tea.Cmd {
	h.msgs = append(h.msgs, msg)
	return h.model.Update(msg)
}

// Do delivers msg and runs everything it leads to.
func (h *Harness) Do(msg tea.Msg) {
	h.Run(h.Send(msg))
}

// Run executes cmd and every command it leads to, feeding the resulting
// messages back to the model.
func (h *Harness) Run(cmd tea.Cmd) {
	h.t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > MaxSteps {
			h.t.Fatalf("harness: more than %d commands, animation never settled", MaxSteps)
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			if next := h.Send(msg); next != nil {
				queue = append(queue, next)
			}
		}
	}
}

// Press presses the left button at cell (x, y).
func (h *Harness) Press(x, y int) {
	h.Do(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

// Move moves the pressed pointer to (x, y), advancing the clock by
// MotionStep first.
func (h *Harness) Move(x, y int) {
	h.clock.Advance(MotionStep)
	h.Do(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
}

// Release releases the button at (x, y).
func (h *Harness) Release(x, y int) {
	h.Do(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease})
}

// Drag presses at (x, fromY), moves one row at a time to toY and releases
// right away, like a flick.
func (h *Harness) Drag(x, fromY, toY int) {
	h.Press(x, fromY)
	step := 1
	if toY < fromY {
		step = -1
	}
	for y := fromY; y != toY; {
		y += step
		h.Move(x, y)
	}
	h.Release(x, toY)
}

// SlowDrag is Drag with a pause before the release, so the release carries
// no velocity.
func (h *Harness) SlowDrag(x, fromY, toY int) {
	h.Press(x, fromY)
	step := 1
	if toY < fromY {
		step = -1
	}
	for y := fromY; y != toY; {
		y += step
		h.Move(x, y)
	}
	h.clock.Advance(time.Second)
	h.Release(x, toY)
}

// Click presses and releases at (x, y).
func (h *Harness) Click(x, y int) {
	h.Press(x, y)
	h.Release(x, y)
}

// SendKey simulates a key press by creating a tea.KeyMsg.
func (h *Harness) SendKey(key string) {
	h.Do(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (enter, escape, tab, etc.).
func (h *Harness) SendSpecialKey(keyType tea.KeyType) {
	h.Do(tea.KeyMsg{Type: keyType})
}

// Messages returns every message delivered so far.
func (h *Harness) Messages() []tea.Msg { return h.msgs }

// Actions returns the actions among the delivered messages.
func (h *Harness) Actions() []action.Action {
	var out []action.Action
	for _, m := range h.msgs {
		if am, ok := m.(action.Msg); ok {
			out = append(out, am.Action)
		}
	}
	return out
}

// ClearMessages forgets the delivered messages.
func (h *Harness) ClearMessages() { h.msgs = nil }

// View returns the component's rendered content.
func (h *Harness) View() string { return h.model.View() }

// ViewContains checks if the view contains the given substring.
func (h *Harness) ViewContains(substr string) bool {
	return ContainsLine(StripANSI(h.View()), substr)
}

// ViewLines returns the stripped view split into lines.
func (h *Harness) ViewLines() []string {
	return strings.Split(StripANSI(h.View()), "\n")
}
