package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheets/internal/ui/action"
)

// Source identifies confirm actions.
const Source = "confirm"

// Result contains the confirmation dialog result.
type Result struct {
	Confirmed bool
	Context   any // passed through from New
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "confirm.result" }

func resultCmd(r Result) tea.Cmd {
	return action.Cmd(Source, r)
}
