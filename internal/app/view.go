package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sheets/internal/demo"
	"github.com/llehouerou/sheets/internal/keymap"
	"github.com/llehouerou/sheets/internal/ui"
	"github.com/llehouerou/sheets/internal/ui/headerbar"
	"github.com/llehouerou/sheets/internal/ui/overlay"
	"github.com/llehouerou/sheets/internal/ui/popup"
	"github.com/llehouerou/sheets/internal/ui/render"
	"github.com/llehouerou/sheets/internal/ui/styles"
)

// Map grid spacing in cells.
const (
	avenueEvery = 12
	streetEvery = 6
)

var headerTabs = func() []headerbar.Tab {
	tabs := make([]headerbar.Tab, len(demo.Examples))
	for i, ex := range demo.Examples {
		tabs[i] = headerbar.Tab{Key: ex.Key, Name: ex.Name}
	}
	return tabs
}()

// View renders the application UI.
func (m Model) View() string {
	if m.width < ui.MinWidth || m.height <= ui.HeaderHeight+ui.FooterHeight {
		return ""
	}
	w, h := m.containerSize()

	body := renderMap(w, h)
	if m.stack != nil {
		body = m.stack.ViewOver(body)
	}
	if m.keyboardRows > 0 {
		body = overlay.Compose(body, renderKeyboard(w, m.keyboardRows), w, h-m.keyboardRows)
	}

	view := strings.Join([]string{
		headerbar.Render(headerTabs, m.active, m.width),
		body,
		m.renderStatus(),
	}, "\n")
	if m.popup != nil {
		view = popup.Show(view, m.popup, m.width, m.height, popup.SizeAuto)
	}
	return view
}

// renderMap draws the background: a street grid with a few landmarks.
func renderMap(width, height int) string {
	labels := make(map[int]string)
	for i, p := range demo.NearbyPlaces(height / streetEvery) {
		labels[i*streetEvery+1] = "● " + p.Name
	}

	t := styles.T()
	grid := lipgloss.NewStyle().Foreground(t.FgSubtle)
	label := lipgloss.NewStyle().Foreground(t.Secondary)

	lines := make([]string, height)
	for y := range lines {
		row := make([]rune, width)
		for x := range row {
			avenue := x%avenueEvery == avenueEvery/2
			street := y%streetEvery == streetEvery/2
			switch {
			case avenue && street:
				row[x] = '┼'
			case avenue:
				row[x] = '│'
			case street:
				row[x] = '─'
			case (x*7+y*3)%11 == 0:
				row[x] = '·'
			default:
				row[x] = ' '
			}
		}
		text, ok := labels[y]
		col := avenueEvery/2 + 2 + (y/streetEvery%3)*avenueEvery
		if !ok || col+len([]rune(text)) > width {
			lines[y] = grid.Render(string(row))
			continue
		}
		end := col + len([]rune(text))
		lines[y] = grid.Render(string(row[:col])) + label.Render(text) + grid.Render(string(row[end:]))
	}
	return strings.Join(lines, "\n")
}

var keyboardRows = []string{
	"q w e r t y u i o p",
	"a s d f g h j k l",
	"z x c v b n m",
	"[     space     ]",
}

// renderKeyboard draws the simulated on-screen keyboard, rows tall.
func renderKeyboard(width, rows int) string {
	if width < 2 || rows < 2 {
		return ""
	}
	t := styles.T()
	frame := lipgloss.NewStyle().Foreground(t.Border).Background(t.BgBase)
	keys := lipgloss.NewStyle().Foreground(t.FgBase).Background(t.BgBase)
	inner := width - 2

	lines := make([]string, 0, rows)
	lines = append(lines, frame.Render("╭"+strings.Repeat("─", inner)+"╮"))
	for i := range rows - 2 {
		text := ""
		if i%2 == 1 && i/2 < len(keyboardRows) {
			text = keyboardRows[i/2]
		}
		cell := render.Pad(render.Center(render.Truncate(text, inner), inner), inner)
		lines = append(lines, frame.Render("│")+keys.Render(cell)+frame.Render("│"))
	}
	lines = append(lines, frame.Render("╰"+strings.Repeat("─", inner)+"╯"))
	return strings.Join(lines, "\n")
}

// renderStatus draws the status message and the key help of the current
// context.
func (m Model) renderStatus() string {
	s := styles.T().S()
	status := s.Muted.Render(m.status)
	if m.statusErr {
		status = s.Error.Render(m.status)
	}

	context := keymap.ContextGlobal
	if m.stack != nil {
		context = keymap.ContextSheet
	}
	var help []string
	for _, b := range keymap.ByContext(context) {
		help = append(help, b.Keys[0]+" "+b.Description)
	}
	helpText := s.Subtle.Render(strings.Join(help, " · "))

	room := m.width - lipgloss.Width(status) - 1
	if room < 10 {
		return render.TruncateStyled(status, m.width)
	}
	return render.Row(status, render.TruncateStyled(helpText, room), m.width)
}
