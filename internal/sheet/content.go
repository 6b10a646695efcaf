package sheet

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheets/internal/scroll"
)

// Content is the component a sheet hosts.
type Content interface {
	// Init returns any initial command (e.g., focus text input).
	Init() tea.Cmd

	// Update handles messages and returns updated content + command.
	Update(msg tea.Msg) (Content, tea.Cmd)

	// View renders the content (without the sheet border and handle).
	View() string

	// SetSize sets the available dimensions for the content.
	SetSize(width, height int)
}

// Fitter is implemented by content with an intrinsic height, used by the
// FittingSize position.
type Fitter interface {
	// FittingRows returns the rows the content needs at the given width.
	FittingRows(width int) int
}

// Scroller is implemented by content that scrolls. The sheet coordinates
// drags with the returned surface.
type Scroller interface {
	Surface() *scroll.Surface
}

// Editor is implemented by content holding a text input.
type Editor interface {
	Editing() bool
	EndEditing()
}

// Item is a sheet to present: a name for actions and persistence, the
// content and its configuration.
type Item struct {
	Name          string
	Content       Content
	Configuration Configuration
}
