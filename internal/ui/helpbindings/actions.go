package helpbindings

import "github.com/llehouerou/sheets/internal/ui/action"

// Source identifies help popup actions.
const Source = "helpbindings"

// Close signals the help popup should close.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "helpbindings.close" }

var closeCmd = action.Cmd(Source, Close{})
