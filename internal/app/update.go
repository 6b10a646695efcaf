package app

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/sheets/internal/demo"
	"github.com/llehouerou/sheets/internal/errmsg"
	"github.com/llehouerou/sheets/internal/sheet"
	"github.com/llehouerou/sheets/internal/stack"
	"github.com/llehouerou/sheets/internal/ui"
	"github.com/llehouerou/sheets/internal/ui/action"
	"github.com/llehouerou/sheets/internal/ui/confirm"
	"github.com/llehouerou/sheets/internal/ui/helpbindings"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.stack == nil || m.popup != nil {
			return m, nil
		}
		msg.Y -= ui.HeaderHeight
		return m, m.forward(msg)

	case action.Msg:
		return m.handleAction(msg)
	}

	if m.stack == nil {
		return m, nil
	}
	return m, m.forward(msg)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.popup != nil {
		m.popup.SetSize(m.width, m.height)
	}
	if m.stack == nil {
		return m, nil
	}
	w, h := m.containerSize()
	if err := m.stack.SetSize(w, h); err != nil {
		m.setError(errmsg.OpSheetResize, err)
	}
	return m, nil
}

// forward hands msg to the stack, then follows the editing state of the
// current sheet with the keyboard.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	cmd := m.stack.Update(msg)
	return tea.Batch(cmd, m.syncKeyboard())
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch msg.Source {
	case stack.Source:
		return m.handleStackAction(msg.Action)
	case sheet.Source:
		m.handleSheetAction(msg.Action)
	case demo.Source:
		return m.handleDemoAction(msg.Action)
	case confirm.Source:
		m.popup = nil
		if r, ok := msg.Action.(confirm.Result); ok && r.Confirmed && r.Context == forgetPositionsPrompt {
			m.forgetPositions()
		}
		return m, nil
	case helpbindings.Source:
		m.popup = nil
		return m, nil
	}
	if m.stack == nil {
		return m, nil
	}
	return m, m.forward(msg)
}

func (m Model) handleStackAction(a action.Action) (tea.Model, tea.Cmd) {
	switch a := a.(type) {
	case stack.DismissRequested:
		if m.stack != nil {
			return m, m.stack.Dismiss()
		}
	case stack.Dismissed:
		slog.Debug("app: dismissed", "example", m.active)
		m.stack = nil
		m.active = ""
		m.keyboardRows = m.manualRows()
		m.setStatus("dismissed")
	case stack.Changed:
		m.setStatus(fmt.Sprintf("%s · %s in the stack", a.Current, pluralSheets(a.Depth)))
	}
	return m, nil
}

func (m *Model) handleSheetAction(a action.Action) {
	switch a := a.(type) {
	case sheet.Settled:
		height := 0.0
		if m.stack != nil && m.stack.Current() != nil {
			height = m.stack.Current().Height()
		}
		m.setStatus(fmt.Sprintf("%s settled at %s · %s pt", a.Name, a.Position, humanize.Ftoa(height)))
		m.savePosition(a.Name, a.Position)
	case sheet.Closed:
		m.setStatus(a.Name + " closed")
	}
}

func (m Model) handleDemoAction(a action.Action) (tea.Model, tea.Cmd) {
	if m.stack == nil {
		return m, nil
	}
	switch a := a.(type) {
	case demo.PushRequested:
		item, err := m.build(a.Example, m.stack.Depth()+1)
		if err != nil {
			m.setError(errmsg.OpSheetCreate, err)
			return m, nil
		}
		cmd, err := m.stack.Push(item, true)
		if err != nil {
			m.setError(errmsg.OpSheetPush, err)
			return m, nil
		}
		return m, tea.Batch(cmd, m.syncKeyboard())
	case demo.PopRequested:
		return m, tea.Batch(m.stack.Pop(true), m.syncKeyboard())
	case demo.Submitted:
		m.searches++
		m.setStatus(fmt.Sprintf("saved %q · %s search", a.Text, humanize.Ordinal(m.searches)))
	}
	return m, nil
}

// present builds a new stack holding the named example and slides it in.
func (m *Model) present(name string) tea.Cmd {
	item, err := m.build(name, 1)
	if err != nil {
		m.setError(errmsg.OpSheetCreate, err)
		return nil
	}
	st, err := stack.New(m.stackOpts, item)
	if err != nil {
		m.setError(errmsg.OpSheetCreate, err)
		return nil
	}
	w, h := m.containerSize()
	if err := st.SetSize(w, h); err != nil {
		m.setError(errmsg.OpSheetResize, err)
		return nil
	}
	slog.Debug("app: present", "example", name)
	m.stack = st
	m.active = name
	m.keyboardRows = 0
	m.setStatus(name + " presented")
	return tea.Batch(st.Init(), st.Present(), m.syncKeyboard())
}

// replace swaps the presented stack for the named example.
func (m *Model) replace(name string) tea.Cmd {
	item, err := m.build(name, 1)
	if err != nil {
		m.setError(errmsg.OpSheetCreate, err)
		return nil
	}
	cmd, err := m.stack.SetItems([]sheet.Item{item}, true)
	if err != nil {
		m.setError(errmsg.OpSheetReplace, err)
		return nil
	}
	m.active = name
	return tea.Batch(cmd, m.syncKeyboard())
}

func (m *Model) build(name string, level int) (sheet.Item, error) {
	item, err := m.builder.Build(name, level)
	if err != nil {
		return sheet.Item{}, err
	}
	m.restorePosition(&item)
	return item, nil
}

// syncKeyboard shows the keyboard while the current sheet edits text or
// while it was toggled on by hand.
func (m *Model) syncKeyboard() tea.Cmd {
	rows := m.manualRows()
	if m.stack != nil && m.stack.Current() != nil && m.stack.Current().Editing() {
		rows = ui.KeyboardRows
	}
	if rows == m.keyboardRows {
		return nil
	}
	m.keyboardRows = rows
	if m.stack == nil {
		return nil
	}
	return m.stack.SetKeyboard(rows)
}

func (m Model) manualRows() int {
	if m.manualKeyboard {
		return ui.KeyboardRows
	}
	return 0
}

func pluralSheets(n int) string {
	if n == 1 {
		return "1 sheet"
	}
	return humanize.Comma(int64(n)) + " sheets"
}
