package demo

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sheets/internal/sheet"
	"github.com/llehouerou/sheets/internal/ui"
	"github.com/llehouerou/sheets/internal/ui/styles"
)

// Text is a title over a wrapped paragraph. Its fitting height is the
// wrapped text's.
type Text struct {
	ui.Base
	title string
	body  string
}

var _ sheet.Fitter = (*Text)(nil)

func NewText(title, body string) *Text {
	return &Text{title: title, body: body}
}

func (t *Text) Init() tea.Cmd { return nil }

func (t *Text) Update(tea.Msg) (sheet.Content, tea.Cmd) { return t, nil }

func (t *Text) View() string {
	if t.Width() <= 0 {
		return ""
	}
	return t.render(t.Width())
}

// FittingRows implements sheet.Fitter.
func (t *Text) FittingRows(width int) int {
	if width <= 0 {
		return 0
	}
	return lipgloss.Height(t.render(width))
}

func (t *Text) render(width int) string {
	s := styles.T().S()
	title := s.Title.Width(width).Render(t.title)
	body := s.Base.Width(width).Render(t.body)
	return lipgloss.JoinVertical(lipgloss.Left, title, "", body)
}
