// Package stack presents a stack of sheets over a dimmed background.
//
// The stack owns the sheets, the background and its dimming animator. It
// slides sheets in and out when they are pushed or popped, slides the whole
// stack up on Present and down on Dismiss, and asks the host to dismiss it
// when the background is tapped or the current sheet closes.
package stack

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheets/internal/anim"
	"github.com/llehouerou/sheets/internal/dimming"
	"github.com/llehouerou/sheets/internal/layout"
	"github.com/llehouerou/sheets/internal/sheet"
	"github.com/llehouerou/sheets/internal/ui/action"
	"github.com/llehouerou/sheets/internal/ui/overlay"
)

// Phase is the presentation state of the stack.
type Phase int

const (
	// Hidden: nothing is drawn over the base view.
	Hidden Phase = iota
	// Presenting: the stack slides up.
	Presenting
	// Presented: the stack is interactive.
	Presented
	// Dismissing: the stack slides down.
	Dismissing
)

func (p Phase) String() string {
	switch p {
	case Presenting:
		return "presenting"
	case Presented:
		return "presented"
	case Dismissing:
		return "dismissing"
	}
	return "hidden"
}

// KeyboardMsg reports the on-screen keyboard height in rows. Zero hides it.
type KeyboardMsg struct {
	Rows int
}

// Options configures a Stack.
type Options struct {
	// Sheet holds the host settings shared by every sheet.
	Sheet sheet.Options
	// Background is drawn behind the sheets. Nil draws nothing.
	Background dimming.Background
	// Transition animates pushes and pops. Nil uses ForwardStack with
	// DefaultDuration.
	Transition Transition
	// PresentDuration is the length of the Present and Dismiss slides.
	// Zero presents and dismisses without animating.
	PresentDuration time.Duration
}

// DefaultOptions returns dimming, forward transitions and 300ms slides.
func DefaultOptions() Options {
	return Options{
		Sheet:           sheet.Options{Scale: layout.DefaultPointsPerRow},
		Background:      &dimming.DimmingBackground{},
		Transition:      ForwardStack{D: DefaultDuration},
		PresentDuration: DefaultDuration,
	}
}

// Stack is a presented stack of sheets.
type Stack struct {
	opts     Options
	bg       dimming.Background
	sheets   []*sheet.Sheet
	current  *sheet.Sheet
	animator *dimming.Animator

	width, height int
	keyboard      int
	phase         Phase

	swapID        int64
	swap          *anim.Tween
	outgoing      *sheet.Sheet
	outgoingOnTop bool

	presentID int64
	present   *anim.Tween
	intensity float64

	pressedOutside bool
}

// New returns a hidden stack holding items, the last one on top.
func New(opts Options, items ...sheet.Item) (*Stack, error) {
	if opts.Sheet.Scale <= 0 {
		opts.Sheet.Scale = layout.DefaultPointsPerRow
	}
	if opts.Transition == nil {
		opts.Transition = ForwardStack{D: DefaultDuration}
	}
	bg := opts.Background
	if bg == nil {
		bg = &dimming.NoBackground{}
	}
	s := &Stack{opts: opts, bg: bg}
	sheets, err := s.build(items)
	if err != nil {
		return nil, err
	}
	s.sheets = sheets
	if len(sheets) > 0 {
		s.current = sheets[len(sheets)-1]
	}
	return s, nil
}

// Init returns the initial commands of the sheets' content.
func (s *Stack) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(s.sheets))
	for _, sh := range s.sheets {
		cmds = append(cmds, sh.Init())
	}
	return tea.Batch(cmds...)
}

// Phase returns the presentation state.
func (s *Stack) Phase() Phase { return s.phase }

// Visible reports whether the stack is drawn.
func (s *Stack) Visible() bool { return s.phase != Hidden }

// Depth returns the number of sheets in the stack.
func (s *Stack) Depth() int { return len(s.sheets) }

// Current returns the displayed sheet. After the last sheet was popped it
// stays displayed until the stack is dismissed.
func (s *Stack) Current() *sheet.Sheet { return s.current }

// Sheets returns the sheets, bottom first.
func (s *Stack) Sheets() []*sheet.Sheet { return s.sheets }

// Background returns the background.
func (s *Stack) Background() dimming.Background { return s.bg }

// Animator returns the dimming animator of the last presentation.
func (s *Stack) Animator() *dimming.Animator { return s.animator }

// Transitioning reports whether a push or pop is animating.
func (s *Stack) Transitioning() bool { return s.swap != nil }

// Animating reports whether anything in the stack is moving.
func (s *Stack) Animating() bool {
	if s.swap != nil || s.present != nil {
		return true
	}
	if s.animator != nil && s.animator.Running() {
		return true
	}
	return s.current != nil && s.current.Animating()
}

// SetSize sets the container size in cells.
func (s *Stack) SetSize(width, height int) error {
	s.width, s.height = width, height
	for _, sh := range s.sheets {
		if err := sh.SetContainer(width, height); err != nil {
			return err
		}
	}
	if s.current != nil && !slices.Contains(s.sheets, s.current) {
		return s.current.SetContainer(width, height)
	}
	return nil
}

// SetKeyboard applies a keyboard of the given rows to the current sheet.
func (s *Stack) SetKeyboard(rows int) tea.Cmd {
	s.keyboard = max(0, rows)
	if s.current == nil {
		return nil
	}
	return s.current.UpdateForKeyboard(s.keyboard)
}

// Push adds item on top and transitions to it.
func (s *Stack) Push(item sheet.Item, animated bool) (tea.Cmd, error) {
	sh, err := s.newSheet(item)
	if err != nil {
		return nil, err
	}
	from := s.current
	s.sheets = append(s.sheets, sh)
	slog.Debug("stack: push", "sheet", item.Name, "depth", len(s.sheets))
	return tea.Batch(sh.Init(), s.transition(from, sh, true, animated)), nil
}

// Pop removes the top sheet and transitions to the one below. Popping the
// last sheet requests dismissal instead.
func (s *Stack) Pop(animated bool) tea.Cmd {
	if len(s.sheets) == 0 {
		return actionCmd(DismissRequested{})
	}
	from := s.sheets[len(s.sheets)-1]
	s.sheets = s.sheets[:len(s.sheets)-1]
	var to *sheet.Sheet
	if len(s.sheets) > 0 {
		to = s.sheets[len(s.sheets)-1]
	}
	slog.Debug("stack: pop", "sheet", from.Name(), "depth", len(s.sheets))
	return s.transition(from, to, false, animated)
}

// SetItems replaces the whole stack and transitions to its last item. An
// empty list requests dismissal.
func (s *Stack) SetItems(items []sheet.Item, animated bool) (tea.Cmd, error) {
	sheets, err := s.build(items)
	if err != nil {
		return nil, err
	}
	from := s.current
	s.sheets = sheets
	var to *sheet.Sheet
	if len(sheets) > 0 {
		to = sheets[len(sheets)-1]
	}
	slog.Debug("stack: set items", "depth", len(sheets))
	cmds := make([]tea.Cmd, 0, len(sheets)+1)
	for _, sh := range sheets {
		cmds = append(cmds, sh.Init())
	}
	return tea.Batch(append(cmds, s.transition(from, to, true, animated))...), nil
}

// Present slides the stack up and applies the background. Once the slide
// ends, a fresh dimming animator takes over the background.
func (s *Stack) Present() tea.Cmd {
	if s.current == nil {
		return actionCmd(DismissRequested{})
	}
	if s.phase == Presenting || s.phase == Presented {
		return nil
	}
	s.phase = Presenting
	s.bg.ApplyBackground()
	s.intensity = s.restingIntensity()
	slog.Debug("stack: present", "sheet", s.current.Name(), "intensity", s.intensity)

	d := s.opts.PresentDuration
	if d <= 0 {
		s.presented()
		return nil
	}
	s.current.SetSlide(s.containerPoints())
	s.bg.SetIntensity(0)
	s.present = anim.NewTween(d, anim.EaseOut)
	s.presentID = anim.NextID()
	return anim.Tick(s.presentID)
}

// Dismiss slides the stack down, stops the dimming animator and clears the
// background. Dismissed is emitted at the end.
func (s *Stack) Dismiss() tea.Cmd {
	if s.phase == Hidden || s.phase == Dismissing {
		return nil
	}
	cmds := []tea.Cmd{s.finishSwap()}
	if s.current != nil {
		cmds = append(cmds, s.current.Cancel())
		s.current.EndEditing()
		s.current.SetDimmer(nil)
	}
	if s.animator != nil {
		s.animator.Stop()
	}
	s.phase = Dismissing
	s.present = nil
	s.intensity = s.bg.Intensity()
	slog.Debug("stack: dismiss", "intensity", s.intensity)

	d := s.opts.PresentDuration
	if d <= 0 || s.current == nil {
		return tea.Batch(append(cmds, s.dismissed())...)
	}
	s.present = anim.NewTween(d, anim.EaseOut)
	s.presentID = anim.NextID()
	return tea.Batch(append(cmds, anim.Tick(s.presentID))...)
}

// Update routes frames, mouse events, keyboard changes and sheet actions.
// Anything else goes to the current sheet.
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case anim.FrameMsg:
		return s.frame(msg)
	case tea.WindowSizeMsg:
		if err := s.SetSize(msg.Width, msg.Height); err != nil {
			slog.Error("stack: resize", "error", err)
		}
		return nil
	case KeyboardMsg:
		return s.SetKeyboard(msg.Rows)
	case tea.MouseMsg:
		return s.mouse(msg)
	case action.Msg:
		if msg.Source == sheet.Source {
			return s.sheetAction(msg.Action)
		}
	}
	if s.current == nil || s.phase == Hidden {
		return nil
	}
	return s.current.Update(msg)
}

// View renders the stack over a blank container.
func (s *Stack) View() string {
	lines := make([]string, s.height)
	blank := strings.Repeat(" ", s.width)
	for i := range lines {
		lines[i] = blank
	}
	return s.ViewOver(strings.Join(lines, "\n"))
}

// ViewOver renders the background effect over base and composes the
// sheets on top.
func (s *Stack) ViewOver(base string) string {
	if s.phase == Hidden || s.width <= 0 || s.height <= 0 {
		return base
	}
	out := s.bg.Render(base, s.width, s.height)
	for _, sh := range s.drawOrder() {
		out = overlay.Compose(out, sh.View(), s.width, sh.Top())
	}
	return out
}

func (s *Stack) drawOrder() []*sheet.Sheet {
	switch {
	case s.current == nil:
		return nil
	case s.outgoing == nil:
		return []*sheet.Sheet{s.current}
	case s.outgoingOnTop:
		return []*sheet.Sheet{s.current, s.outgoing}
	default:
		return []*sheet.Sheet{s.outgoing, s.current}
	}
}

// transition swaps the displayed sheet. The dimming animator moves to the
// incoming sheet right away; the outgoing one is detached.
func (s *Stack) transition(from, to *sheet.Sheet, forward, animated bool) tea.Cmd {
	cmds := []tea.Cmd{s.finishSwap()}
	if to == nil {
		return tea.Batch(append(cmds, actionCmd(DismissRequested{}))...)
	}
	if from != nil {
		cmds = append(cmds, from.Cancel())
		from.SetDimmer(nil)
	}
	s.current = to
	to.SetSlide(0)
	if s.phase == Presented {
		to.SetDimmer(s.animator)
	}
	cmds = append(cmds, to.UpdateForKeyboard(s.keyboard))

	d := s.opts.Transition.Duration()
	if !animated || d <= 0 || from == nil || s.phase != Presented {
		if from != nil && from != to {
			from.SetSlide(s.containerPoints())
		}
		return tea.Batch(append(cmds, s.changed())...)
	}

	s.outgoing = from
	s.outgoingOnTop = s.opts.Transition.OutgoingOnTop(forward)
	to.SetSlide(s.containerPoints())
	s.swap = anim.NewTween(d, anim.EaseOut)
	s.swapID = anim.NextID()
	return tea.Batch(append(cmds, anim.Tick(s.swapID))...)
}

// finishSwap jumps a running transition to its end.
func (s *Stack) finishSwap() tea.Cmd {
	if s.swap == nil {
		return nil
	}
	s.current.SetSlide(0)
	s.outgoing.SetSlide(s.containerPoints())
	return s.changed()
}

func (s *Stack) changed() tea.Cmd {
	s.swap = nil
	s.outgoing = nil
	if s.current == nil {
		return nil
	}
	return actionCmd(Changed{Current: s.current.Name(), Depth: len(s.sheets)})
}

func (s *Stack) frame(msg anim.FrameMsg) tea.Cmd {
	switch {
	case s.swap != nil && msg.ID == s.swapID:
		p, done := s.swap.Step()
		h := s.containerPoints()
		s.current.SetSlide((1 - p) * h)
		s.outgoing.SetSlide(p * h)
		if done {
			return s.changed()
		}
		return anim.Tick(s.swapID)

	case s.present != nil && msg.ID == s.presentID:
		return s.stepPresent()

	case s.animator != nil && s.animator.Owns(msg):
		return s.animator.Update(msg)
	}

	var cmds []tea.Cmd
	if s.current != nil {
		cmds = append(cmds, s.current.Update(msg))
	}
	if s.outgoing != nil {
		cmds = append(cmds, s.outgoing.Update(msg))
	}
	return tea.Batch(cmds...)
}

func (s *Stack) stepPresent() tea.Cmd {
	p, done := s.present.Step()
	h := s.containerPoints()
	if s.phase == Presenting {
		s.current.SetSlide((1 - p) * h)
		s.bg.SetIntensity(p * s.intensity)
		if done {
			s.presented()
			return nil
		}
	} else {
		s.current.SetSlide(p * h)
		s.bg.SetIntensity((1 - p) * s.intensity)
		if done {
			return s.dismissed()
		}
	}
	return anim.Tick(s.presentID)
}

// presented hands a fresh dimming animator to the current sheet. The
// previous animator is stopped.
func (s *Stack) presented() {
	s.present = nil
	s.phase = Presented
	s.current.SetSlide(0)
	if s.animator != nil {
		s.animator.Stop()
	}
	s.animator = dimming.NewAnimator(s.bg)
	s.current.SetDimmer(s.animator)
	slog.Debug("stack: presented", "sheet", s.current.Name())
}

func (s *Stack) dismissed() tea.Cmd {
	s.present = nil
	s.phase = Hidden
	s.bg.ClearBackground()
	if s.current != nil {
		s.current.SetSlide(0)
	}
	if len(s.sheets) == 0 {
		s.current = nil
	}
	slog.Debug("stack: dismissed")
	return actionCmd(Dismissed{})
}

// restingIntensity is the background intensity the current sheet asks for
// at its height.
func (s *Stack) restingIntensity() float64 {
	l := s.current.Layout()
	if f, ok := l.Model().DimmingFraction(l.Height()); ok {
		return 1 - f
	}
	return 1
}

func (s *Stack) mouse(msg tea.MouseMsg) tea.Cmd {
	if s.phase != Presented || s.swap != nil || s.current == nil {
		return nil
	}
	cmd, handled := s.current.HandleMouse(msg)
	if handled {
		s.pressedOutside = false
		return cmd
	}
	switch msg.Action {
	case tea.MouseActionPress:
		s.pressedOutside = msg.Button == tea.MouseButtonLeft
	case tea.MouseActionMotion:
		s.pressedOutside = false
	case tea.MouseActionRelease:
		if s.pressedOutside {
			s.pressedOutside = false
			s.current.EndEditing()
			slog.Debug("stack: background tapped")
			return actionCmd(DismissRequested{})
		}
	}
	return nil
}

func (s *Stack) sheetAction(a action.Action) tea.Cmd {
	closed, ok := a.(sheet.Closed)
	if !ok || s.current == nil || closed.Name != s.current.Name() || s.phase != Presented {
		return nil
	}
	return actionCmd(DismissRequested{})
}

func (s *Stack) newSheet(item sheet.Item) (*sheet.Sheet, error) {
	sh, err := sheet.New(item, s.opts.Sheet)
	if err != nil {
		return nil, err
	}
	if err := sh.SetContainer(s.width, s.height); err != nil {
		return nil, err
	}
	return sh, nil
}

func (s *Stack) build(items []sheet.Item) ([]*sheet.Sheet, error) {
	sheets := make([]*sheet.Sheet, 0, len(items))
	for _, item := range items {
		sh, err := s.newSheet(item)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sh)
	}
	return sheets, nil
}

func (s *Stack) containerPoints() float64 {
	return layout.Points(s.height, s.opts.Sheet.Scale)
}
