package app_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/sheets/internal/app"
	"github.com/llehouerou/sheets/internal/config"
	"github.com/llehouerou/sheets/internal/position"
	"github.com/llehouerou/sheets/internal/stack"
	"github.com/llehouerou/sheets/internal/state"
	"github.com/llehouerou/sheets/internal/ui"
	"github.com/llehouerou/sheets/internal/ui/testutil"
)

// driver adapts the root model to the harness.
type driver struct {
	m app.Model
}

func (d *driver) Update(msg tea.Msg) tea.Cmd {
	next, cmd := d.m.Update(msg)
	d.m = next.(app.Model)
	return cmd
}

func (d *driver) View() string { return d.m.View() }

// The 40x42 screen leaves a 40x40 container below the header: a Half
// sheet is 298 points tall and its handle sits on screen row 21.
const (
	screenW   = 40
	screenH   = 42
	handleRow = 21
)

func newApp(t *testing.T, cfg *config.Config, st state.Interface) (*testutil.Harness, *driver) {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	m, err := app.New(cfg, st)
	require.NoError(t, err)
	d := &driver{m: m}
	h := testutil.NewHarness(t, d)
	h.Do(tea.WindowSizeMsg{Width: screenW, Height: screenH})
	return h, d
}

func current(t *testing.T, d *driver) *stack.Stack {
	t.Helper()
	st := d.m.Stack()
	require.NotNil(t, st, "a stack should be presented")
	require.NotNil(t, st.Current())
	return st
}

func TestApp_New_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Transition = "sideways"

	_, err := app.New(cfg, nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestApp_PresentHalf(t *testing.T) {
	h, d := newApp(t, nil, nil)

	h.SendKey("1")

	st := current(t, d)
	assert.Equal(t, stack.Presented, st.Phase())
	assert.Equal(t, position.Half, st.Current().Position())
	assert.InDelta(t, 298, st.Current().Height(), 1e-6)
	assert.Equal(t, "half", d.m.Active())
	assert.True(t, h.ViewContains("Half sheet"))
	assert.Len(t, h.ViewLines(), screenH)
}

func TestApp_TapOutsideDismisses(t *testing.T) {
	h, d := newApp(t, nil, nil)
	h.SendKey("1")

	h.Click(5, 3)

	assert.Nil(t, d.m.Stack())
	assert.Empty(t, d.m.Active())
	assert.Equal(t, "dismissed", d.m.Status())
}

func TestApp_EscDismisses(t *testing.T) {
	h, d := newApp(t, nil, nil)
	h.SendKey("2")

	h.SendSpecialKey(tea.KeyEsc)

	assert.Nil(t, d.m.Stack())
}

func TestApp_FlickDownDismisses(t *testing.T) {
	h, d := newApp(t, nil, nil)
	h.SendKey("1")

	h.Drag(20, handleRow, handleRow+10)

	assert.Nil(t, d.m.Stack())
}

func TestApp_GrowAndShrink(t *testing.T) {
	h, d := newApp(t, nil, nil)
	h.SendKey("1")

	h.SendKey("+")
	assert.Equal(t, position.Open, current(t, d).Current().Position())
	assert.InDelta(t, 596, current(t, d).Current().Height(), 1e-6)
	assert.Contains(t, d.m.Status(), "half settled at open")

	h.SendKey("+")
	assert.Equal(t, position.Open, current(t, d).Current().Position(), "nothing above open")

	h.SendKey("-")
	assert.Equal(t, position.Half, current(t, d).Current().Position())

	h.SendKey("-")
	assert.Nil(t, d.m.Stack(), "shrinking below half closes the sheet")
}

func TestApp_RemembersPositions(t *testing.T) {
	cfg := config.Default()
	cfg.RememberPositions = true
	mock := state.NewMock()
	h, d := newApp(t, cfg, mock)
	h.SendKey("1")

	h.Drag(20, handleRow, handleRow-10)
	require.Equal(t, position.Open, current(t, d).Current().Position())
	p, ok, _ := mock.Position("half")
	assert.True(t, ok)
	assert.Equal(t, position.Open, p)

	h.SendSpecialKey(tea.KeyEsc)
	require.Nil(t, d.m.Stack())
	h.SendKey("1")

	assert.Equal(t, position.Open, current(t, d).Current().Position())
}

func TestApp_ClosedIsNotRemembered(t *testing.T) {
	cfg := config.Default()
	cfg.RememberPositions = true
	mock := state.NewMock()
	h, _ := newApp(t, cfg, mock)
	h.SendKey("1")

	h.Drag(20, handleRow, handleRow+10)

	_, ok, _ := mock.Position("half")
	assert.False(t, ok)
}

func TestApp_RestoresOnlySupportedPositions(t *testing.T) {
	cfg := config.Default()
	cfg.RememberPositions = true
	mock := state.NewMock()
	mock.SavePosition("list", position.Open)
	mock.SavePosition("fitting", position.Open)
	h, d := newApp(t, cfg, mock)

	h.SendKey("3")
	assert.Equal(t, position.Open, current(t, d).Current().Position())

	h.SendSpecialKey(tea.KeyEsc)
	h.SendKey("2")
	assert.Equal(t, position.FittingSize, current(t, d).Current().Position())
}

func TestApp_PositionsIgnoredWhenDisabled(t *testing.T) {
	mock := state.NewMock()
	mock.SavePosition("list", position.Open)
	h, d := newApp(t, nil, mock)

	h.SendKey("3")
	assert.Equal(t, position.Half, current(t, d).Current().Position())

	h.SendKey("+")
	assert.Equal(t, position.Open, current(t, d).Current().Position())
	assert.Equal(t, 1, mock.Saves(), "only the seeded save")
}

func TestApp_ForgetPositions(t *testing.T) {
	mock := state.NewMock()
	mock.SavePosition("half", position.Open)
	h, d := newApp(t, nil, mock)

	h.SendSpecialKey(tea.KeyCtrlR)
	require.NotNil(t, d.m.Popup())
	assert.True(t, h.ViewContains("Forget positions?"))

	h.SendKey("y")

	assert.Nil(t, d.m.Popup())
	_, ok, _ := mock.Position("half")
	assert.False(t, ok)
	assert.Equal(t, "positions forgotten", d.m.Status())
}

func TestApp_ForgetPositionsCancelled(t *testing.T) {
	mock := state.NewMock()
	mock.SavePosition("half", position.Open)
	h, d := newApp(t, nil, mock)

	h.SendSpecialKey(tea.KeyCtrlR)
	h.SendKey("1")
	assert.Nil(t, d.m.Stack(), "keys go to the dialog")
	h.SendSpecialKey(tea.KeyEsc)

	assert.Nil(t, d.m.Popup())
	_, ok, _ := mock.Position("half")
	assert.True(t, ok)
}

func TestApp_ForgetPositionsWithoutState(t *testing.T) {
	h, d := newApp(t, nil, nil)

	h.SendSpecialKey(tea.KeyCtrlR)

	assert.Nil(t, d.m.Popup())
	assert.Equal(t, "positions are not remembered", d.m.Status())
}

func TestApp_Help(t *testing.T) {
	h, d := newApp(t, nil, nil)
	h.SendKey("1")

	h.SendKey("?")
	require.NotNil(t, d.m.Popup())
	assert.True(t, h.ViewContains("Presented sheets"))

	h.Click(5, 3)
	assert.NotNil(t, d.m.Stack(), "the dialog takes the mouse")

	h.SendKey("?")
	assert.Nil(t, d.m.Popup())
	assert.False(t, h.ViewContains("Presented sheets"))
	assert.NotNil(t, d.m.Stack())
}

func TestApp_FormRaisesKeyboard(t *testing.T) {
	h, d := newApp(t, nil, nil)
	h.SendKey("4")
	require.Equal(t, position.Half, current(t, d).Current().Position())

	// content starts two rows below the handle; the field is its third row
	h.Click(5, handleRow+2+2)

	sh := current(t, d).Current()
	assert.True(t, sh.Editing())
	assert.Equal(t, ui.KeyboardRows, d.m.KeyboardRows())
	assert.Equal(t, position.Open, sh.Position())
	assert.InDelta(t, 436, sh.Height(), 1e-6)
	assert.True(t, h.ViewContains("q w e r t y u i o p"))

	h.SendKey("pier")
	h.SendSpecialKey(tea.KeyEnter)
	assert.Contains(t, d.m.Status(), `saved "pier"`)
	assert.Contains(t, d.m.Status(), "1st search")

	h.SendSpecialKey(tea.KeyEsc)
	assert.False(t, sh.Editing())
	assert.Zero(t, d.m.KeyboardRows())
	assert.NotNil(t, d.m.Stack(), "esc while editing only ends editing")

	h.SendSpecialKey(tea.KeyEsc)
	assert.Nil(t, d.m.Stack())
}

func TestApp_ManualKeyboard(t *testing.T) {
	h, d := newApp(t, nil, nil)

	h.SendSpecialKey(tea.KeyCtrlK)
	assert.Equal(t, ui.KeyboardRows, d.m.KeyboardRows())
	assert.True(t, h.ViewContains("z x c v b n m"))

	h.SendKey("1")
	sh := current(t, d).Current()
	assert.Equal(t, position.Open, sh.Position(), "a keyboard opens the sheet")
	assert.InDelta(t, 436, sh.Height(), 1e-6)

	h.SendSpecialKey(tea.KeyCtrlK)
	assert.Zero(t, d.m.KeyboardRows())
	assert.InDelta(t, 596, sh.Height(), 1e-6)
	assert.False(t, h.ViewContains("z x c v b n m"))
}

func TestApp_MenuPushAndPop(t *testing.T) {
	h, d := newApp(t, nil, nil)
	h.SendKey("5")
	require.Equal(t, 1, current(t, d).Depth())

	// "Another menu" is the fifth entry
	for range 4 {
		h.SendKey("j")
	}
	h.SendSpecialKey(tea.KeyEnter)

	st := current(t, d)
	assert.Equal(t, 2, st.Depth())
	assert.False(t, st.Transitioning())
	assert.Equal(t, "menu · 2 sheets in the stack", d.m.Status())
	assert.True(t, h.ViewContains("level 2"))

	h.SendSpecialKey(tea.KeyBackspace)
	assert.Equal(t, 1, current(t, d).Depth())
	assert.True(t, h.ViewContains("level 1"))

	// the first menu still highlights "Another menu"; "Back" is next and
	// popping the last sheet dismisses
	h.SendKey("j")
	h.SendSpecialKey(tea.KeyEnter)
	assert.Nil(t, d.m.Stack())
}

func TestApp_ReplaceStack(t *testing.T) {
	h, d := newApp(t, nil, nil)
	h.SendKey("1")

	h.SendKey("3")

	st := current(t, d)
	assert.Equal(t, "list", st.Current().Name())
	assert.Equal(t, 1, st.Depth())
	assert.Equal(t, "list", d.m.Active())
}

func TestApp_Resize(t *testing.T) {
	h, d := newApp(t, nil, nil)
	h.SendKey("1")

	h.Do(tea.WindowSizeMsg{Width: 60, Height: 22})

	assert.InDelta(t, 138, current(t, d).Current().Height(), 1e-6)
	assert.Len(t, h.ViewLines(), 22)
}

func TestApp_MouseWithoutStack(t *testing.T) {
	h, d := newApp(t, nil, nil)

	h.Click(5, 5)

	assert.Nil(t, d.m.Stack())
}

func TestApp_View(t *testing.T) {
	m, err := app.New(config.Default(), nil)
	require.NoError(t, err)
	assert.Empty(t, m.View(), "nothing to draw before the first size")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	lines := strings.Split(testutil.StripANSI(next.View()), "\n")

	require.Len(t, lines, 20)
	assert.Contains(t, lines[0], "sheets")
	assert.Contains(t, lines[0], "1 half")
	assert.Contains(t, lines[19], "press 1-5 to present a sheet")
	assert.Contains(t, strings.Join(lines[1:19], "\n"), "● Café 1")
}
