package stack

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheets/internal/ui/action"
)

// Source is the action source of the stack.
const Source = "stack"

// DismissRequested asks the host to dismiss the stack: the last sheet was
// popped, a sheet closed, or the background was tapped.
type DismissRequested struct{}

// ActionType implements action.Action.
func (DismissRequested) ActionType() string { return "stack.dismiss_requested" }

// Dismissed is emitted once the dismiss animation has finished.
type Dismissed struct{}

// ActionType implements action.Action.
func (Dismissed) ActionType() string { return "stack.dismissed" }

// Changed is emitted once a push, pop or replacement has finished.
type Changed struct {
	// Current is the name of the sheet now on top.
	Current string
	// Depth is the number of sheets in the stack.
	Depth int
}

// ActionType implements action.Action.
func (Changed) ActionType() string { return "stack.changed" }

func actionCmd(a action.Action) tea.Cmd {
	return func() tea.Msg {
		return action.Msg{Source: Source, Action: a}
	}
}
