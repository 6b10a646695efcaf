package demo

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheets/internal/ui/action"
)

// Source is the action source of the example contents.
const Source = "demo"

// Submitted is emitted when the form saves a query.
type Submitted struct {
	Text string
}

// ActionType implements action.Action.
func (Submitted) ActionType() string { return "demo.submitted" }

// PushRequested asks for an example to be pushed onto the stack.
type PushRequested struct {
	Example string
}

// ActionType implements action.Action.
func (PushRequested) ActionType() string { return "demo.push" }

// PopRequested asks for the current sheet to be popped.
type PopRequested struct{}

// ActionType implements action.Action.
func (PopRequested) ActionType() string { return "demo.pop" }

func actionCmd(a action.Action) tea.Cmd {
	return action.Cmd(Source, a)
}
