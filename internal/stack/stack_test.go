package stack_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/sheets/internal/dimming"
	"github.com/llehouerou/sheets/internal/position"
	"github.com/llehouerou/sheets/internal/sheet"
	"github.com/llehouerou/sheets/internal/stack"
	"github.com/llehouerou/sheets/internal/ui/action"
	"github.com/llehouerou/sheets/internal/ui/testutil"
)

type note struct {
	text    string
	editing bool
}

func (n *note) Init() tea.Cmd { return nil }
func (n *note) Update(tea.Msg) (sheet.Content, tea.Cmd) { return n, nil }
func (n *note) View() string { return n.text }
func (n *note) SetSize(int, int) {}
func (n *note) Editing() bool { return n.editing }
func (n *note) EndEditing() { n.editing = false }

func item(t *testing.T, name string) (sheet.Item, *note) {
	t.Helper()
	cfg, err := sheet.NewConfiguration(
		sheet.WithPositions(position.Half, position.Open, position.Half, position.Closed))
	require.NoError(t, err)
	n := &note{text: name}
	return sheet.Item{Name: name, Content: n, Configuration: cfg}, n
}

func newStack(t *testing.T, transition stack.Transition, names ...string) *stack.Stack {
	t.Helper()
	items := make([]sheet.Item, 0, len(names))
	for _, name := range names {
		it, _ := item(t, name)
		items = append(items, it)
	}
	opts := stack.DefaultOptions()
	if transition != nil {
		opts.Transition = transition
	}
	st, err := stack.New(opts, items...)
	require.NoError(t, err)
	require.NoError(t, st.SetSize(40, 40))
	return st
}

func presented(t *testing.T, names ...string) (*stack.Stack, *testutil.Harness) {
	t.Helper()
	st := newStack(t, nil, names...)
	h := testutil.NewHarness(t, st)
	h.Run(st.Present())
	require.Equal(t, stack.Presented, st.Phase())
	h.ClearMessages()
	return st, h
}

func stackActions(h *testutil.Harness) []action.Action {
	var out []action.Action
	for _, msg := range h.Messages() {
		if m, ok := msg.(action.Msg); ok && m.Source == stack.Source {
			out = append(out, m.Action)
		}
	}
	return out
}

func TestStack_StartsHidden(t *testing.T) {
	st := newStack(t, nil, "first")

	assert.Equal(t, stack.Hidden, st.Phase())
	assert.False(t, st.Visible())
	assert.Equal(t, "base", st.ViewOver("base"))
	assert.Nil(t, st.Update(tea.MouseMsg{X: 5, Y: 30, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
}

func TestStack_Present(t *testing.T) {
	st := newStack(t, nil, "first")
	h := testutil.NewHarness(t, st)

	cmd := st.Present()
	require.NotNil(t, cmd)
	assert.Equal(t, stack.Presenting, st.Phase())
	assert.InDelta(t, 640, st.Current().Slide(), 1e-9)
	assert.Zero(t, st.Background().Intensity())

	h.Run(cmd)

	assert.Equal(t, stack.Presented, st.Phase())
	assert.Zero(t, st.Current().Slide())
	require.NotNil(t, st.Animator())
	assert.Same(t, st.Animator(), st.Current().Dimmer())
	assert.InDelta(t, 1, st.Background().Intensity(), 1e-9)
	assert.Contains(t, testutil.FindLine(h.View(), sheet.HandleGlyph), sheet.HandleGlyph)
	assert.Equal(t, 20, st.Current().Top())
}

func TestStack_PresentWithoutSheetsRequestsDismissal(t *testing.T) {
	st := newStack(t, nil)
	h := testutil.NewHarness(t, st)

	h.Run(st.Present())

	assert.Equal(t, []action.Action{stack.DismissRequested{}}, stackActions(h))
	assert.Equal(t, stack.Hidden, st.Phase())
}

func TestStack_PushMovesAnimator(t *testing.T) {
	st, h := presented(t, "first")
	first := st.Current()
	animator := st.Animator()
	it, _ := item(t, "second")

	cmd, err := st.Push(it, true)
	require.NoError(t, err)

	second := st.Current()
	assert.Equal(t, "second", second.Name())
	assert.True(t, st.Transitioning())
	assert.InDelta(t, 640, second.Slide(), 1e-9)
	assert.Nil(t, first.Dimmer())
	assert.Same(t, animator, second.Dimmer())

	h.Run(cmd)

	assert.False(t, st.Transitioning())
	assert.Zero(t, second.Slide())
	assert.InDelta(t, 640, first.Slide(), 1e-9)
	assert.Equal(t, 2, st.Depth())
	assert.Equal(t, []action.Action{stack.Changed{Current: "second", Depth: 2}}, stackActions(h))
}

func TestStack_PopReturnsToPrevious(t *testing.T) {
	st, h := presented(t, "first")
	first := st.Current()
	it, _ := item(t, "second")
	cmd, err := st.Push(it, true)
	require.NoError(t, err)
	h.Run(cmd)
	h.ClearMessages()

	h.Run(st.Pop(true))

	assert.Same(t, first, st.Current())
	assert.Zero(t, first.Slide())
	assert.Same(t, st.Animator(), first.Dimmer())
	assert.Equal(t, []action.Action{stack.Changed{Current: "first", Depth: 1}}, stackActions(h))
}

func TestStack_PopLastRequestsDismissal(t *testing.T) {
	st, h := presented(t, "first")
	first := st.Current()

	h.Run(st.Pop(true))

	assert.Zero(t, st.Depth())
	assert.Same(t, first, st.Current(), "popped sheet stays visible until dismissed")
	assert.Equal(t, []action.Action{stack.DismissRequested{}}, stackActions(h))

	h.Run(st.Dismiss())
	assert.Nil(t, st.Current())
}

func TestStack_SetItems(t *testing.T) {
	st, h := presented(t, "first")
	a, _ := item(t, "a")
	b, _ := item(t, "b")

	cmd, err := st.SetItems([]sheet.Item{a, b}, false)
	require.NoError(t, err)
	h.Run(cmd)

	assert.Equal(t, 2, st.Depth())
	assert.Equal(t, "b", st.Current().Name())
	assert.Equal(t, []action.Action{stack.Changed{Current: "b", Depth: 2}}, stackActions(h))

	h.ClearMessages()
	cmd, err = st.SetItems(nil, true)
	require.NoError(t, err)
	h.Run(cmd)
	assert.Equal(t, []action.Action{stack.DismissRequested{}}, stackActions(h))
}

func TestStack_ZeroDurationTransition(t *testing.T) {
	st := newStack(t, stack.ForwardStack{}, "first")
	h := testutil.NewHarness(t, st)
	h.Run(st.Present())
	it, _ := item(t, "second")

	_, err := st.Push(it, true)
	require.NoError(t, err)

	assert.False(t, st.Transitioning())
	assert.Zero(t, st.Current().Slide())
}

func TestStack_Dismiss(t *testing.T) {
	st, h := presented(t, "first")
	animator := st.Animator()

	h.Run(st.Dismiss())

	assert.Equal(t, stack.Hidden, st.Phase())
	assert.True(t, animator.Stopped())
	assert.Zero(t, st.Background().Intensity())
	assert.Nil(t, st.Current().Dimmer())
	assert.Equal(t, []action.Action{stack.Dismissed{}}, stackActions(h))
	assert.Nil(t, st.Dismiss(), "already hidden")
}

func TestStack_RepresentReplacesAnimator(t *testing.T) {
	st, h := presented(t, "first")
	old := st.Animator()
	h.Run(st.Dismiss())

	h.Run(st.Present())

	require.NotNil(t, st.Animator())
	assert.NotSame(t, old, st.Animator())
	assert.True(t, old.Stopped())
	assert.False(t, st.Animator().Stopped())
	assert.Same(t, st.Animator(), st.Current().Dimmer())
}

func TestStack_TapOutsideRequestsDismissal(t *testing.T) {
	it, n := item(t, "form")
	n.editing = true
	st, err := stack.New(stack.DefaultOptions(), it)
	require.NoError(t, err)
	require.NoError(t, st.SetSize(40, 40))
	h := testutil.NewHarness(t, st)
	h.Run(st.Present())

	h.Click(5, 5)

	assert.False(t, n.editing)
	assert.Equal(t, []action.Action{stack.DismissRequested{}}, stackActions(h))
}

func TestStack_DragOutsideIsNotATap(t *testing.T) {
	_, h := presented(t, "first")

	h.Press(5, 5)
	h.Move(5, 6)
	h.Release(5, 6)

	assert.Empty(t, stackActions(h))
}

func TestStack_TapOnSheetDoesNotDismiss(t *testing.T) {
	st, h := presented(t, "first")

	h.Click(5, 25)

	assert.Empty(t, stackActions(h))
	assert.Equal(t, stack.Presented, st.Phase())
}

func TestStack_ClosedSheetRequestsDismissal(t *testing.T) {
	st, h := presented(t, "first")

	h.Drag(10, 20, 30)

	assert.Equal(t, position.Closed, st.Current().Position())
	assert.Contains(t, h.Actions(), action.Action(sheet.Closed{Name: "first"}))
	assert.Equal(t, []action.Action{stack.DismissRequested{}}, stackActions(h))
}

func TestStack_DragDimsThroughAnimator(t *testing.T) {
	st, h := presented(t, "first")

	h.Press(10, 20)
	h.Move(10, 22)
	h.Move(10, 24)

	assert.InDelta(t, 64.0/298.0, st.Animator().Fraction(), 1e-9)
	assert.InDelta(t, 1-64.0/298.0, st.Background().Intensity(), 1e-9)
}

func TestStack_Keyboard(t *testing.T) {
	st, h := presented(t, "first")

	h.Do(stack.KeyboardMsg{Rows: 10})

	assert.Equal(t, position.Open, st.Current().Position())
	assert.InDelta(t, 436, st.Current().Height(), 1e-9)

	h.Do(stack.KeyboardMsg{Rows: 0})
	assert.InDelta(t, 596, st.Current().Height(), 1e-9)
}

func TestStack_Resize(t *testing.T) {
	st, h := presented(t, "first")

	h.Do(tea.WindowSizeMsg{Width: 60, Height: 20})

	// 320 points: open is 276, half 138.
	assert.InDelta(t, 138, st.Current().Height(), 1e-9)
	assert.Len(t, h.ViewLines(), 20)
}

func TestStack_BlurredBackground(t *testing.T) {
	opts := stack.DefaultOptions()
	opts.Background = dimming.New(dimming.KindBlurred)
	opts.PresentDuration = 0
	it, _ := item(t, "first")
	st, err := stack.New(opts, it)
	require.NoError(t, err)
	require.NoError(t, st.SetSize(10, 4))

	assert.Nil(t, st.Present())

	assert.Equal(t, stack.Presented, st.Phase())
	view := testutil.StripANSI(st.ViewOver("aaaaaaaaaa\nbbbbbbbbbb\ncccccccccc\ndddddddddd"))
	assert.NotContains(t, view, "aaaaaaaaaa")
}

func TestParseTransition(t *testing.T) {
	tests := []struct {
		name        string
		want        stack.Transition
		onTopOnPush bool
		onTopOnPop  bool
		wantErr     bool
	}{
		{name: "", want: stack.ForwardStack{D: time.Second}, onTopOnPop: true},
		{name: "forward", want: stack.ForwardStack{D: time.Second}, onTopOnPop: true},
		{name: "backward", want: stack.BackwardStack{D: time.Second}, onTopOnPush: true},
		{name: "sideways", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := stack.ParseTransition(tt.name, time.Second)
			if tt.wantErr {
				require.ErrorIs(t, err, stack.ErrUnknownTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, time.Second, got.Duration())
			assert.Equal(t, tt.onTopOnPush, got.OutgoingOnTop(true))
			assert.Equal(t, tt.onTopOnPop, got.OutgoingOnTop(false))
		})
	}
}
