package confirm

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/sheets/internal/ui/action"
)

const testContext = "ctx"

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func result(t *testing.T, cmd tea.Cmd) Result {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(action.Msg)
	require.True(t, ok)
	assert.Equal(t, Source, msg.Source)
	r, ok := msg.Action.(Result)
	require.True(t, ok, "expected Result, got %T", msg.Action)
	return r
}

func TestConfirm_Answers(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"enter", true},
		{"y", true},
		{"Y", true},
		{"esc", false},
		{"n", false},
		{"N", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := New("Forget?", "Are you sure?", testContext)

			_, cmd := m.Update(key(tt.key))

			r := result(t, cmd)
			assert.Equal(t, tt.want, r.Confirmed)
			assert.Equal(t, testContext, r.Context)
			assert.False(t, m.Active())
		})
	}
}

func TestConfirm_IgnoresOtherKeys(t *testing.T) {
	m := New("Forget?", "Are you sure?", nil)

	_, cmd := m.Update(key("x"))

	assert.Nil(t, cmd)
	assert.True(t, m.Active())
}

func TestConfirm_AnswersOnce(t *testing.T) {
	m := New("Forget?", "Are you sure?", nil)
	m.Update(key("y"))

	_, cmd := m.Update(key("y"))

	assert.Nil(t, cmd)
}

func TestConfirm_View(t *testing.T) {
	m := New("Forget positions?", "Every sheet opens at its default.", nil)
	m.SetSize(80, 24)

	view := m.View()

	assert.Contains(t, view, "Forget positions?")
	assert.Contains(t, view, "Every sheet opens at its default.")
	assert.Contains(t, view, "esc/n cancel")

	m.Update(key("n"))
	assert.Empty(t, m.View())
}
