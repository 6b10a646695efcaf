package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup defines the contract for modal dialogs shown over the map and the
// sheets.
type Popup interface {
	// Update handles a key and returns the updated popup.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the popup content without the border.
	View() string

	// SetSize sets the screen the popup is centered in.
	SetSize(width, height int)
}
