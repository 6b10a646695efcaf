package demo

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheets/internal/sheet"
	"github.com/llehouerou/sheets/internal/ui"
	"github.com/llehouerou/sheets/internal/ui/render"
	"github.com/llehouerou/sheets/internal/ui/styles"
)

// inputRow is the row of the text field, below the title and a blank row.
const inputRow = 2

// Form is a search field with the queries saved so far. Tapping the field
// or pressing i starts editing.
type Form struct {
	ui.Base
	input  textinput.Model
	recent []string
}

var _ sheet.Editor = (*Form)(nil)

func NewForm() *Form {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Search places"
	ti.CharLimit = 64
	ti.Cursor.SetMode(cursor.CursorStatic)
	return &Form{input: ti}
}

func (f *Form) Init() tea.Cmd { return nil }

// Editing implements sheet.Editor.
func (f *Form) Editing() bool { return f.input.Focused() }

// EndEditing implements sheet.Editor.
func (f *Form) EndEditing() { f.input.Blur() }

// Recent returns the saved queries, most recent first.
func (f *Form) Recent() []string { return f.recent }

// Value returns the text being edited.
func (f *Form) Value() string { return f.input.Value() }

func (f *Form) Update(msg tea.Msg) (sheet.Content, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease {
			return f, nil
		}
		if msg.Y == inputRow {
			return f, f.input.Focus()
		}
		f.EndEditing()
		return f, nil
	case tea.KeyMsg:
		if !f.Editing() {
			if msg.String() == "i" || msg.String() == "enter" {
				return f, f.input.Focus()
			}
			return f, nil
		}
		switch msg.String() {
		case "esc":
			f.EndEditing()
			return f, nil
		case "enter":
			return f, f.submit()
		}
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *Form) submit() tea.Cmd {
	text := strings.TrimSpace(render.Sanitize(f.input.Value()))
	if text == "" {
		return nil
	}
	f.recent = append([]string{text}, f.recent...)
	f.input.Reset()
	return actionCmd(Submitted{Text: text})
}

// SetSize sizes the text field to the content width.
func (f *Form) SetSize(width, height int) {
	f.Base.SetSize(width, height)
	f.input.Width = max(1, width-len(f.input.Prompt)-1)
}

func (f *Form) View() string {
	if f.Width() <= 0 {
		return ""
	}
	s := styles.T().S()
	lines := []string{s.Title.Render("Find a place"), "", f.input.View(), ""}

	hint := "i edit · esc done"
	if f.Editing() {
		hint = "enter save · esc done"
	}
	lines = append(lines, s.Subtle.Render(render.Truncate(hint, f.Width())))

	if len(f.recent) > 0 {
		lines = append(lines, "", s.Muted.Render("Recent"))
		for _, q := range f.recent {
			lines = append(lines, render.Truncate(q, f.Width()))
		}
	}
	return strings.Join(lines, "\n")
}
