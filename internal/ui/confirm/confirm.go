// Package confirm provides a yes/no confirmation popup.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheets/internal/ui"
	"github.com/llehouerou/sheets/internal/ui/popup"
	"github.com/llehouerou/sheets/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Model is a yes/no confirmation popup.
type Model struct {
	ui.Base
	title   string
	message string
	context any
	active  bool
}

// New creates a confirmation showing title and message. context is handed
// back in the Result.
func New(title, message string, context any) *Model {
	return &Model{title: title, message: message, context: context, active: true}
}

// Active reports whether the popup still waits for an answer.
func (m *Model) Active() bool {
	return m.active
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.active {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter", "y", "Y":
		m.active = false
		return m, resultCmd(Result{Confirmed: true, Context: m.context})
	case "esc", "n", "N":
		m.active = false
		return m, resultCmd(Result{Confirmed: false, Context: m.context})
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active {
		return ""
	}
	t := styles.T()
	s := t.S()

	message := s.Base
	if w := m.Width(); w > 12 {
		message = message.MaxWidth(w - 12)
	}
	return s.Title.Foreground(t.Primary).Render(m.title) + "\n\n" +
		message.Render(m.message) + "\n\n" +
		s.Subtle.Render("enter/y confirm · esc/n cancel")
}
