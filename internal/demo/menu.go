package demo

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheets/internal/sheet"
	"github.com/llehouerou/sheets/internal/ui"
	"github.com/llehouerou/sheets/internal/ui/render"
	"github.com/llehouerou/sheets/internal/ui/styles"
)

// menuTop is the row of the first entry, below the title and a blank row.
const menuTop = 2

// MenuEntry pushes Example, or pops the stack when Example is empty.
type MenuEntry struct {
	Label   string
	Example string
}

var menuEntries = []MenuEntry{
	{"Half sheet", ExampleHalf},
	{"Fitting note", ExampleFitting},
	{"Places list", ExampleList},
	{"Search form", ExampleForm},
	{"Another menu", ExampleMenu},
	{"Back", ""},
}

// Menu pushes the other examples onto the stack it is presented in.
type Menu struct {
	ui.Base
	level    int
	entries  []MenuEntry
	selected int
}

var _ sheet.Fitter = (*Menu)(nil)

// NewMenu creates a menu at the given stack level, starting at 1.
func NewMenu(level int) *Menu {
	return &Menu{level: level, entries: menuEntries}
}

func (m *Menu) Init() tea.Cmd { return nil }

// Selected returns the index of the highlighted entry.
func (m *Menu) Selected() int { return m.selected }

func (m *Menu) Update(msg tea.Msg) (sheet.Content, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease {
			return m, nil
		}
		i := msg.Y - menuTop
		if i < 0 || i >= len(m.entries) {
			return m, nil
		}
		m.selected = i
		return m, m.activate()
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down", "tab":
			m.selected = (m.selected + 1) % len(m.entries)
		case "k", "up", "shift+tab":
			m.selected = (m.selected + len(m.entries) - 1) % len(m.entries)
		case "enter", " ":
			return m, m.activate()
		}
	}
	return m, nil
}

func (m *Menu) activate() tea.Cmd {
	e := m.entries[m.selected]
	if e.Example == "" {
		return actionCmd(PopRequested{})
	}
	return actionCmd(PushRequested{Example: e.Example})
}

// FittingRows implements sheet.Fitter.
func (m *Menu) FittingRows(int) int {
	return menuTop + len(m.entries)
}

func (m *Menu) View() string {
	if m.Width() <= 0 {
		return ""
	}
	s := styles.T().S()
	lines := make([]string, 0, menuTop+len(m.entries))
	lines = append(lines, s.Title.Render(fmt.Sprintf("Menu · level %d", m.level)), "")
	for i, e := range m.entries {
		label := render.Truncate(e.Label, max(0, m.Width()-2))
		if i == m.selected {
			lines = append(lines, s.Cursor.Render(render.Pad("> "+label, m.Width())))
			continue
		}
		lines = append(lines, "  "+label)
	}
	return strings.Join(lines, "\n")
}
