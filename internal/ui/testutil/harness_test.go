package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheets/internal/anim"
	"github.com/llehouerou/sheets/internal/ui/action"
)

type pinged struct{}

func (pinged) ActionType() string { return "test.pinged" }

// countdown animates for a fixed number of frames and then emits an action.
type countdown struct {
	id     int64
	left   int
	keys   []string
	clicks int
}

func (c *countdown) start(frames int) tea.Cmd {
	c.id = anim.NextID()
	c.left = frames
	return anim.Tick(c.id)
}

func (c *countdown) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case anim.FrameMsg:
		if msg.ID != c.id {
			return nil
		}
		c.left--
		if c.left > 0 {
			return anim.Tick(c.id)
		}
		return func() tea.Msg { return action.Msg{Source: "test", Action: pinged{}} }
	case tea.KeyMsg:
		c.keys = append(c.keys, msg.String())
		if msg.Type == tea.KeyEnter {
			return tea.Batch(c.start(3), nil)
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease {
			c.clicks++
		}
	}
	return nil
}

func (c *countdown) View() string { return "countdown" }

func TestHarness_RunsAnimationsWithoutTimers(t *testing.T) {
	c := &countdown{}
	h := NewHarness(t, c)

	h.SendSpecialKey(tea.KeyEnter)

	if c.left != 0 {
		t.Errorf("frames left = %d, want 0", c.left)
	}
	actions := h.Actions()
	if len(actions) != 1 || actions[0].ActionType() != "test.pinged" {
		t.Errorf("Actions() = %v, want one pinged", actions)
	}
}

func TestHarness_SendDoesNotRun(t *testing.T) {
	c := &countdown{}
	h := NewHarness(t, c)

	cmd := h.Send(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("Send() returned nil command")
	}
	if c.left != 3 {
		t.Errorf("frames left = %d, want 3", c.left)
	}
	h.Run(cmd)
	if c.left != 0 {
		t.Errorf("frames left after Run = %d, want 0", c.left)
	}
}

func TestHarness_Keys(t *testing.T) {
	c := &countdown{}
	h := NewHarness(t, c)

	h.SendKey("a")
	h.SendSpecialKey(tea.KeyEscape)

	if len(c.keys) != 2 || c.keys[0] != "a" || c.keys[1] != "esc" {
		t.Errorf("keys = %v", c.keys)
	}
	h.ClearMessages()
	if len(h.Messages()) != 0 {
		t.Error("ClearMessages() kept messages")
	}
}

func TestHarness_ClickAndClock(t *testing.T) {
	c := &countdown{}
	h := NewHarness(t, c)
	before := anim.Now()

	h.Click(1, 1)
	h.Drag(1, 1, 4)

	if c.clicks != 2 {
		t.Errorf("clicks = %d, want 2", c.clicks)
	}
	if got := anim.Now().Sub(before); got != 3*MotionStep {
		t.Errorf("clock advanced %v, want %v", got, 3*MotionStep)
	}
	if !h.ViewContains("countdown") {
		t.Error("ViewContains() = false")
	}
}
