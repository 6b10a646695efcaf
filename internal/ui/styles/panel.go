package styles

import "github.com/charmbracelet/lipgloss"

// SheetStyle returns the style of a sheet body: a rounded border open at the
// bottom. Sheets with a zero corner radius get square corners.
func SheetStyle(rounded, dragging bool) lipgloss.Style {
	border := lipgloss.NormalBorder()
	if rounded {
		border = lipgloss.RoundedBorder()
	}
	color := T().Border
	if dragging {
		color = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(border).
		BorderForeground(color).
		BorderTop(true).
		BorderLeft(true).
		BorderRight(true).
		BorderBottom(false)
}
