// Package app is the demo's root bubbletea model: a map screen that
// presents the example sheets.
package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheets/internal/config"
	"github.com/llehouerou/sheets/internal/demo"
	"github.com/llehouerou/sheets/internal/errmsg"
	"github.com/llehouerou/sheets/internal/keymap"
	"github.com/llehouerou/sheets/internal/stack"
	"github.com/llehouerou/sheets/internal/state"
	"github.com/llehouerou/sheets/internal/ui"
	"github.com/llehouerou/sheets/internal/ui/popup"
)

// Model is the root application model.
type Model struct {
	stackOpts stack.Options
	builder   demo.Builder
	remember  bool
	stateMgr  state.Interface // nil without persistence

	globalKeys *keymap.Resolver
	sheetKeys  *keymap.Resolver

	stack  *stack.Stack // nil while nothing is presented
	active string       // example at the bottom of the stack
	popup  popup.Popup  // modal dialog over everything, nil when none

	manualKeyboard bool
	keyboardRows   int

	status    string
	statusErr bool
	searches  int

	width  int
	height int
}

// New creates the model from configuration. stateMgr may be nil, in which
// case positions are not remembered.
func New(cfg *config.Config, stateMgr state.Interface) (Model, error) {
	opts, err := cfg.StackOptions()
	if err != nil {
		return Model{}, err
	}
	overrides, err := cfg.Sheet.Options()
	if err != nil {
		return Model{}, err
	}
	return Model{
		stackOpts:  opts,
		builder:    demo.Builder{Scale: cfg.PointsPerRow, Overrides: overrides},
		remember:   cfg.RememberPositions && stateMgr != nil,
		stateMgr:   stateMgr,
		globalKeys: keymap.ForContext(keymap.ContextGlobal),
		sheetKeys:  keymap.ForContext(keymap.ContextSheet),
		status:     "press 1-5 to present a sheet",
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Stack returns the presented stack, nil when none is.
func (m Model) Stack() *stack.Stack { return m.stack }

// Active returns the example presented at the bottom of the stack.
func (m Model) Active() string { return m.active }

// Popup returns the open dialog, nil when none is.
func (m Model) Popup() popup.Popup { return m.popup }

// KeyboardRows returns the height of the simulated keyboard, zero when it
// is hidden.
func (m Model) KeyboardRows() int { return m.keyboardRows }

// Status returns the status line message.
func (m Model) Status() string { return m.status }

// containerSize is the area sheets are presented in: the screen minus the
// header and the status line.
func (m Model) containerSize() (int, int) {
	return m.width, max(0, m.height-ui.HeaderHeight-ui.FooterHeight)
}

func (m *Model) openPopup(p popup.Popup) {
	p.SetSize(m.width, m.height)
	m.popup = p
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(op errmsg.Op, err error) {
	slog.Error("app: "+string(op), "error", err)
	m.status = errmsg.Format(op, err)
	m.statusErr = true
}
