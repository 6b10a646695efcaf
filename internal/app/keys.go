package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheets/internal/app/handler"
	"github.com/llehouerou/sheets/internal/demo"
	"github.com/llehouerou/sheets/internal/keymap"
	"github.com/llehouerou/sheets/internal/position"
	"github.com/llehouerou/sheets/internal/stack"
	"github.com/llehouerou/sheets/internal/ui/confirm"
	"github.com/llehouerou/sheets/internal/ui/helpbindings"
)

// forgetPositionsPrompt tags the confirmation of ActionClearPositions.
const forgetPositionsPrompt = "forget-positions"

var presentActions = map[keymap.Action]string{
	keymap.ActionPresentHalf:    demo.ExampleHalf,
	keymap.ActionPresentFitting: demo.ExampleFitting,
	keymap.ActionPresentList:    demo.ExampleList,
	keymap.ActionPresentForm:    demo.ExampleForm,
	keymap.ActionPresentMenu:    demo.ExampleMenu,
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := handler.Chain(key,
		m.handlePopupKey,
		m.handleEditingKey,
		m.handleSheetKey,
		m.handleGlobalKey,
		m.handleContentKey,
	)
	return m, r.Cmd
}

// handlePopupKey gives every key but ctrl+c to the open dialog.
func (m *Model) handlePopupKey(key tea.KeyMsg) handler.Result {
	if m.popup == nil {
		return handler.NotHandled
	}
	if key.String() == "ctrl+c" {
		return handler.Handled(tea.Quit)
	}
	var cmd tea.Cmd
	m.popup, cmd = m.popup.Update(key)
	return handler.Handled(cmd)
}

// handleEditingKey sends every key but ctrl+c to a sheet editing text.
func (m *Model) handleEditingKey(key tea.KeyMsg) handler.Result {
	if m.stack == nil || m.stack.Current() == nil || !m.stack.Current().Editing() {
		return handler.NotHandled
	}
	if key.String() == "ctrl+c" {
		return handler.Handled(tea.Quit)
	}
	return handler.Handled(m.forward(key))
}

func (m *Model) handleSheetKey(key tea.KeyMsg) handler.Result {
	if m.stack == nil {
		return handler.NotHandled
	}
	action := m.sheetKeys.Resolve(key.String())
	switch action {
	case keymap.ActionQuit:
		return handler.Handled(tea.Quit)
	case keymap.ActionDismiss:
		return handler.Handled(m.stack.Dismiss())
	case keymap.ActionPop:
		return handler.Handled(tea.Batch(m.stack.Pop(true), m.syncKeyboard()))
	case keymap.ActionGrow:
		return handler.Handled(m.step(true))
	case keymap.ActionShrink:
		return handler.Handled(m.step(false))
	case keymap.ActionToggleKeyboard:
		return handler.Handled(m.toggleKeyboard())
	case keymap.ActionHelp:
		m.openPopup(helpbindings.New(keymap.ContextSheet))
		return handler.Handled(nil)
	}
	if name, ok := presentActions[action]; ok {
		return handler.Handled(m.replace(name))
	}
	return handler.NotHandled
}

func (m *Model) handleGlobalKey(key tea.KeyMsg) handler.Result {
	if m.stack != nil {
		return handler.NotHandled
	}
	action := m.globalKeys.Resolve(key.String())
	switch action {
	case keymap.ActionQuit:
		return handler.Handled(tea.Quit)
	case keymap.ActionToggleKeyboard:
		return handler.Handled(m.toggleKeyboard())
	case keymap.ActionClearPositions:
		if m.stateMgr == nil {
			m.setStatus("positions are not remembered")
			return handler.Handled(nil)
		}
		m.openPopup(confirm.New("Forget positions?",
			"Every example sheet opens at its default position again.",
			forgetPositionsPrompt))
		return handler.Handled(nil)
	case keymap.ActionHelp:
		m.openPopup(helpbindings.New(keymap.ContextGlobal, keymap.ContextSheet))
		return handler.Handled(nil)
	}
	if name, ok := presentActions[action]; ok {
		return handler.Handled(m.present(name))
	}
	return handler.NotHandled
}

// handleContentKey gives the remaining keys to the current sheet's content.
func (m *Model) handleContentKey(key tea.KeyMsg) handler.Result {
	if m.stack == nil || m.stack.Phase() != stack.Presented {
		return handler.NotHandled
	}
	return handler.Handled(m.forward(key))
}

func (m *Model) toggleKeyboard() tea.Cmd {
	m.manualKeyboard = !m.manualKeyboard
	if m.manualKeyboard {
		m.setStatus("keyboard shown")
	} else {
		m.setStatus("keyboard hidden")
	}
	if m.stack == nil {
		m.keyboardRows = m.manualRows()
		return nil
	}
	return m.syncKeyboard()
}

// step moves the current sheet to the next taller or shorter supported
// position. Stepping below the lowest position closes the sheet.
func (m *Model) step(up bool) tea.Cmd {
	cur := m.stack.Current()
	if cur == nil || m.stack.Phase() != stack.Presented {
		return nil
	}
	model := cur.Layout().Model()
	height := cur.Height()
	best, found := position.Closed, false
	for _, p := range model.Supported() {
		h := model.Height(p)
		switch {
		case up && h > height && (!found || h < model.Height(best)):
			best, found = p, true
		case !up && h < height && (!found || h > model.Height(best)):
			best, found = p, true
		}
	}
	if !found {
		return nil
	}
	return cur.MoveTo(best, true)
}
