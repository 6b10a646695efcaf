// Package helpbindings provides a scrollable popup listing the key bindings.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sheets/internal/keymap"
	"github.com/llehouerou/sheets/internal/ui"
	"github.com/llehouerou/sheets/internal/ui/popup"
	"github.com/llehouerou/sheets/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// categoryOrder defines the display order of binding contexts.
var categoryOrder = []string{
	keymap.ContextGlobal,
	keymap.ContextSheet,
}

var categoryLabels = map[string]string{
	keymap.ContextGlobal: "Map",
	keymap.ContextSheet:  "Presented sheets",
}

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	scrollOffset int
}

// New creates a help popup listing the bindings of contexts.
func New(contexts ...string) *Model {
	m := &Model{}
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	return m
}

// ScrollOffset returns the first visible line.
func (m *Model) ScrollOffset() int { return m.scrollOffset }

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, closeCmd
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := m.lines()
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := slices.Clone(lines[start:end])
	for i, line := range visible {
		if w := lipgloss.Width(line); w < maxWidth {
			visible[i] = line + strings.Repeat(" ", maxWidth-w)
		}
	}

	s := styles.T().S()
	return s.Title.Render("Help") + "\n\n" +
		strings.Join(visible, "\n") + "\n\n" +
		s.Subtle.Render(m.footer())
}

func (m *Model) lines() []string {
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	descStyle := t.S().Base
	headerStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	separatorStyle := t.S().Subtle

	keyWidth := 0
	for _, b := range m.bindings {
		keyWidth = max(keyWidth, len(strings.Join(b.Keys, ", ")))
	}

	var lines []string
	context := ""
	for _, b := range m.bindings {
		if b.Context != context {
			if context != "" {
				lines = append(lines, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines,
				headerStyle.Render(label),
				separatorStyle.Render(strings.Repeat("─", keyWidth+15)))
			context = b.Context
		}
		keys := strings.Join(b.Keys, ", ")
		keys += strings.Repeat(" ", keyWidth-len(keys))
		lines = append(lines, keyStyle.Render(keys)+"  "+descStyle.Render(b.Description))
	}
	return lines
}

func (m *Model) footer() string {
	if m.maxScroll() == 0 {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

// visibleHeight leaves room for the title, the footer and the frame.
func (m *Model) visibleHeight() int {
	return max(m.Height()-10, 5)
}

func (m *Model) maxScroll() int {
	return max(0, len(m.lines())-m.visibleHeight())
}
