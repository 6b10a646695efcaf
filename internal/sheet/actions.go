package sheet

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheets/internal/position"
	"github.com/llehouerou/sheets/internal/ui/action"
)

// Source is the action source of every sheet.
const Source = "sheet"

// Closed is emitted when a sheet settled at the Closed position.
type Closed struct {
	Name string
}

// ActionType implements action.Action.
func (Closed) ActionType() string { return "sheet.closed" }

// Settled is emitted when a sheet settled at any other position.
type Settled struct {
	Name     string
	Position position.Position
}

// ActionType implements action.Action.
func (Settled) ActionType() string { return "sheet.settled" }

// ActionCmd wraps an action in a command.
func ActionCmd(a action.Action) tea.Cmd {
	return func() tea.Msg {
		return action.Msg{Source: Source, Action: a}
	}
}
