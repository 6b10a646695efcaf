package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var key = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}

func TestHandled(t *testing.T) {
	if r := Handled(nil); !r.Handled || r.Cmd != nil {
		t.Errorf("Handled(nil) = %+v, want handled without a command", r)
	}
	cmd := func() tea.Msg { return "test" }
	if r := Handled(cmd); !r.Handled || r.Cmd == nil {
		t.Errorf("Handled(cmd) = %+v, want handled with the command", r)
	}
}

func TestChain_NoHandlers(t *testing.T) {
	if r := Chain(key); r.Handled || r.Cmd != nil {
		t.Errorf("Chain() = %+v, want NotHandled", r)
	}
}

func TestChain_StopsAtFirstHandled(t *testing.T) {
	var calls []string
	skip := func(tea.KeyMsg) Result {
		calls = append(calls, "skip")
		return NotHandled
	}
	take := func(k tea.KeyMsg) Result {
		calls = append(calls, "take:"+k.String())
		return Handled(func() tea.Msg { return "taken" })
	}
	never := func(tea.KeyMsg) Result {
		calls = append(calls, "never")
		return Handled(nil)
	}

	r := Chain(key, skip, take, never)

	if !r.Handled || r.Cmd == nil {
		t.Fatalf("Chain() = %+v, want the second handler's result", r)
	}
	if msg := r.Cmd(); msg != "taken" {
		t.Errorf("Cmd() = %v, want taken", msg)
	}
	if len(calls) != 2 || calls[0] != "skip" || calls[1] != "take:x" {
		t.Errorf("calls = %v, want [skip take:x]", calls)
	}
}

func TestChain_NoneHandled(t *testing.T) {
	skip := func(tea.KeyMsg) Result { return NotHandled }

	if r := Chain(key, skip, skip); r.Handled {
		t.Error("Chain() should not report handled")
	}
}
