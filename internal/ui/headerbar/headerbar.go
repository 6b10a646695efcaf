// Package headerbar renders the demo's title and example tabs.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sheets/internal/ui"
	"github.com/llehouerou/sheets/internal/ui/render"
	"github.com/llehouerou/sheets/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = ui.HeaderHeight

const title = "sheets"

// Tab is an example the header lists.
type Tab struct {
	Key  string
	Name string
}

// Styles
var (
	activeKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	activeNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	inactiveKeyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	inactiveNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Render returns the header bar for the given width. active is the name of
// the presented example, empty when none is.
func Render(tabs []Tab, active string, width int) string {
	if width < ui.MinWidth {
		return ""
	}

	parts := make([]string, 0, len(tabs))
	separator := separatorStyle.Render(" │ ")
	for _, t := range tabs {
		keyStyle, nameStyle := inactiveKeyStyle, inactiveNameStyle
		if t.Name == active {
			keyStyle, nameStyle = activeKeyStyle, activeNameStyle
		}
		parts = append(parts, keyStyle.Render(t.Key)+" "+nameStyle.Render(t.Name))
	}

	t := styles.T()
	left := styles.ApplyBoldGradient(title, t.Primary, t.Secondary)
	tabsView := strings.Join(parts, separator)
	if lipgloss.Width(left)+1+lipgloss.Width(tabsView) > width {
		return render.TruncateStyled(render.Center(tabsView, width), width)
	}
	return render.Row(left, tabsView, width)
}
