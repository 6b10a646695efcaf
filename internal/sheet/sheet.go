// Package sheet implements a draggable bottom sheet component.
//
// A Sheet hosts a Content and sits at the bottom of its container. Mouse
// drags on the sheet move it between its supported positions; drags on
// scrollable content scroll the content until the sheet has to move.
package sheet

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/sheets/internal/anim"
	"github.com/llehouerou/sheets/internal/dimming"
	"github.com/llehouerou/sheets/internal/drag"
	"github.com/llehouerou/sheets/internal/gesture"
	"github.com/llehouerou/sheets/internal/layout"
	"github.com/llehouerou/sheets/internal/position"
	"github.com/llehouerou/sheets/internal/scroll"
	"github.com/llehouerou/sheets/internal/ui/styles"
)

// HandleGlyph is drawn centered in the handle row.
const HandleGlyph = "━━━━━━"

// Options are the host settings shared by every sheet.
type Options struct {
	// Scale is the number of points per terminal row.
	Scale float64
	// SafeAreaTop is the unusable area at the top of the container, in points.
	SafeAreaTop float64
}

// Sheet is a bottom sheet hosting one Content.
type Sheet struct {
	item    Item
	opts    Options
	layout  *layout.Manager
	ctrl    *drag.Controller
	rec     *gesture.Recognizer
	surface *scroll.Surface

	width, height int
	slide         float64
	onSurface     bool
	contentW      int
	contentH      int
}

// New builds a sheet for item at its initial position. The container size
// is zero until SetContainer is called.
func New(item Item, opts Options) (*Sheet, error) {
	cfg := item.Configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Scale <= 0 {
		opts.Scale = layout.DefaultPointsPerRow
	}

	params := layout.Params{
		Supported: cfg.SupportedPositions,
		Initial:   cfg.InitialPosition,
		Anchor:    cfg.DimmingAnchor,
		TopInset:  cfg.TopInset,
	}
	if cfg.Handle != nil {
		inset := cfg.Handle.TopInset
		params.HandleTopInset = &inset
	}
	l, err := layout.NewManager(params, layout.Metrics{SafeAreaTop: opts.SafeAreaTop})
	if err != nil {
		return nil, err
	}

	s := &Sheet{
		item:     item,
		opts:     opts,
		layout:   l,
		rec:      gesture.NewRecognizer(opts.Scale),
		contentW: -1,
		contentH: -1,
	}
	s.ctrl = drag.NewController(l, sheetDelegate{s}, drag.Options{
		DismissKeyboardOnScroll: cfg.DismissKeyboardOnScroll,
	})
	if sc, ok := item.Content.(Scroller); ok && sc.Surface() != nil {
		s.surface = sc.Surface()
		s.ctrl.Attach(s.surface)
	}
	return s, nil
}

// Init returns the content's initial command.
func (s *Sheet) Init() tea.Cmd {
	return s.item.Content.Init()
}

// Name returns the item name.
func (s *Sheet) Name() string { return s.item.Name }

// Item returns the presented item.
func (s *Sheet) Item() Item { return s.item }

// Content returns the hosted content.
func (s *Sheet) Content() Content { return s.item.Content }

// Configuration returns the sheet configuration.
func (s *Sheet) Configuration() Configuration { return s.item.Configuration }

// Layout returns the layout state.
func (s *Sheet) Layout() *layout.Manager { return s.layout }

// Controller returns the drag controller.
func (s *Sheet) Controller() *drag.Controller { return s.ctrl }

// Position returns the logical position.
func (s *Sheet) Position() position.Position { return s.layout.Position() }

// Height returns the live height in points.
func (s *Sheet) Height() float64 { return s.layout.Height() }

// Animating reports whether the sheet is settling.
func (s *Sheet) Animating() bool { return s.ctrl.Animating() }

// Dragging reports whether the sheet follows the pointer.
func (s *Sheet) Dragging() bool { return s.ctrl.Dragging() }

// SetContainer sets the container size in cells.
func (s *Sheet) SetContainer(width, height int) error {
	s.width, s.height = max(0, width), max(0, height)
	err := s.layout.SetMetrics(layout.Metrics{
		ContainerHeight: layout.Points(s.height, s.opts.Scale),
		SafeAreaTop:     s.opts.SafeAreaTop,
	})
	if err != nil {
		return err
	}
	s.refit()
	s.sync()
	return nil
}

// UpdateForKeyboard applies a keyboard of the given rows when keyboard
// avoidance is enabled.
func (s *Sheet) UpdateForKeyboard(rows int) tea.Cmd {
	if !s.item.Configuration.KeyboardAvoidance {
		return nil
	}
	moved := s.layout.UpdateForKeyboard(layout.Points(rows, s.opts.Scale))
	s.ctrl.SyncDimming()
	s.sync()
	if moved {
		return sheetDelegate{s}.SheetDidSettle(s.layout.Position())
	}
	return nil
}

// MoveTo moves the sheet to p. Unsupported positions are ignored.
func (s *Sheet) MoveTo(p position.Position, animated bool) tea.Cmd {
	cmd := s.ctrl.MoveTo(p, animated)
	s.sync()
	return cmd
}

// SetDimmer hands the dimming animator to the sheet. Nil detaches it.
func (s *Sheet) SetDimmer(a *dimming.Animator) { s.ctrl.SetDimmer(a) }

// Dimmer returns the dimming animator driven by the sheet, if any.
func (s *Sheet) Dimmer() *dimming.Animator { return s.ctrl.Dimmer() }

// SetSlide pushes the sheet down by offset points. Transitions use it.
func (s *Sheet) SetSlide(offset float64) {
	s.slide = max(0, offset)
	s.sync()
}

// Slide returns the transition offset in points.
func (s *Sheet) Slide() float64 { return s.slide }

// Editing reports whether the content holds an active text input.
func (s *Sheet) Editing() bool {
	e, ok := s.item.Content.(Editor)
	return ok && e.Editing()
}

// EndEditing ends text input in the content.
func (s *Sheet) EndEditing() {
	if e, ok := s.item.Content.(Editor); ok {
		e.EndEditing()
	}
}

// Update handles frames, mouse events and content messages.
func (s *Sheet) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case anim.FrameMsg:
		if !s.ctrl.Owns(msg) {
			return nil
		}
		cmd := s.ctrl.Update(msg)
		s.sync()
		return cmd
	case tea.MouseMsg:
		cmd, _ := s.HandleMouse(msg)
		return cmd
	}

	var cmd tea.Cmd
	s.item.Content, cmd = s.item.Content.Update(msg)
	s.refit()
	s.sync()
	return cmd
}

// HandleMouse routes a mouse event. It reports whether the sheet consumed
// it; presses outside the sheet are left to the caller.
func (s *Sheet) HandleMouse(msg tea.MouseMsg) (tea.Cmd, bool) {
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		if s.surface != nil && s.surface.Contains(s.rec.Point(msg.X, msg.Y)) {
			s.surface.Wheel(msg)
			return nil, true
		}
		return nil, s.HitTest(msg.X, msg.Y)
	}
	if msg.Action == tea.MouseActionPress && !s.rec.Active() && !s.HitTest(msg.X, msg.Y) {
		return nil, false
	}

	sample, ok := s.rec.Handle(msg)
	if !ok {
		return nil, false
	}
	if sample.Phase == gesture.Began {
		s.onSurface = s.surface != nil && s.surface.Contains(sample.Location)
	}

	cmds := []tea.Cmd{s.ctrl.Handle(sample)}
	if s.onSurface {
		s.surface.Pan(sample)
		s.ctrl.HandleScrollPan(sample)
	}
	if sample.Phase == gesture.Ended && !s.rec.Moved() {
		cmds = append(cmds, s.tap(msg))
	}
	s.sync()
	return tea.Batch(cmds...), true
}

// Cancel aborts a gesture in progress.
func (s *Sheet) Cancel() tea.Cmd {
	sample, ok := s.rec.Cancel()
	if !ok {
		return nil
	}
	cmd := s.ctrl.Handle(sample)
	if s.onSurface {
		s.surface.Pan(sample)
		s.ctrl.HandleScrollPan(sample)
	}
	s.sync()
	return cmd
}

// tap forwards a click inside the content area, in content coordinates.
func (s *Sheet) tap(msg tea.MouseMsg) tea.Cmd {
	top := s.contentTop()
	x, y := msg.X-1, msg.Y-top
	if x < 0 || x >= s.contentW || y < 0 || y >= s.contentH {
		return nil
	}
	var cmd tea.Cmd
	s.item.Content, cmd = s.item.Content.Update(tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionRelease,
		Button: tea.MouseButtonLeft,
	})
	return cmd
}

// HitTest reports whether the cell (x, y) is on the sheet or its handle.
func (s *Sheet) HitTest(x, y int) bool {
	if x < 0 || x >= s.width {
		return false
	}
	top := s.Top()
	return y >= top && y < top+s.Rows()
}

// HandleHit reports whether the cell (x, y) is on the handle row.
func (s *Sheet) HandleHit(x, y int) bool {
	hr := s.handleRows()
	if hr == 0 || x < 0 || x >= s.width {
		return false
	}
	return y == s.Top()+hr-1
}

// Rows returns the rendered height in rows, handle included.
func (s *Sheet) Rows() int {
	return s.handleRows() + s.bodyRows()
}

// Top returns the row the sheet starts at.
func (s *Sheet) Top() int {
	keyboard := layout.Rows(s.layout.KeyboardInset(), s.opts.Scale)
	return layout.SheetTop(s.height, s.Rows(), keyboard) + layout.Rows(s.slide, s.opts.Scale)
}

func (s *Sheet) bodyRows() int {
	return min(layout.Rows(s.layout.Height(), s.opts.Scale), s.height)
}

// handleRows is zero when the sheet has no handle, and when it rests at
// Closed: the closed offset pushes the handle out of view.
func (s *Sheet) handleRows() int {
	if !s.layout.HasHandle() {
		return 0
	}
	if s.layout.Position() == position.Closed && s.bodyRows() == 0 && !s.ctrl.Animating() {
		return 0
	}
	return max(1, layout.Rows(s.layout.ClosedOffset(), s.opts.Scale))
}

func (s *Sheet) contentTop() int {
	return s.Top() + s.handleRows() + 1
}

// refit measures FittingSize content.
func (s *Sheet) refit() {
	f, ok := s.item.Content.(Fitter)
	if !ok || !s.item.Configuration.Supports(position.FittingSize) {
		return
	}
	rows := f.FittingRows(max(0, s.width-2))
	s.layout.SetFittingHeight(layout.Points(rows+1, s.opts.Scale))
}

// sync propagates the live geometry to the content and its surface.
func (s *Sheet) sync() {
	w := max(0, s.width-2)
	h := max(0, s.bodyRows()-1)
	if w != s.contentW || h != s.contentH {
		s.contentW, s.contentH = w, h
		s.item.Content.SetSize(w, h)
	}
	if s.surface != nil {
		s.surface.SetFrame(scroll.Rect{
			X:      layout.ColumnPoints(1, s.opts.Scale),
			Y:      layout.Points(s.contentTop(), s.opts.Scale),
			Width:  layout.ColumnPoints(w, s.opts.Scale),
			Height: layout.Points(h, s.opts.Scale),
		})
	}
}

// View renders the sheet block: the handle rows followed by the body. It
// is meant to be composed over the container at Top.
func (s *Sheet) View() string {
	body, handle := s.bodyRows(), s.handleRows()
	if s.width <= 0 || body+handle == 0 {
		return ""
	}
	lines := make([]string, 0, body+handle)
	for range handle - 1 {
		lines = append(lines, "")
	}
	if handle > 0 {
		lines = append(lines, s.renderHandle())
	}
	if body > 0 {
		lines = append(lines, s.renderBody(body)...)
	}
	return strings.Join(lines, "\n")
}

func (s *Sheet) renderHandle() string {
	style := styles.T().S().Handle
	if s.ctrl.Dragging() {
		style = styles.T().S().Active
	}
	w := runewidth.StringWidth(HandleGlyph)
	pad := max(0, (s.width-w)/2)
	return strings.Repeat(" ", pad) + style.Render(HandleGlyph)
}

func (s *Sheet) renderBody(rows int) []string {
	inner := max(0, s.width-2)
	content := []string{""}
	if rows > 1 {
		content = fitLines(s.item.Content.View(), inner, rows-1)
	}
	style := styles.SheetStyle(s.item.Configuration.CornerRadius > 0, s.ctrl.Dragging()).
		Width(inner)
	lines := strings.Split(style.Render(strings.Join(content, "\n")), "\n")
	if len(lines) > rows {
		lines = lines[:rows]
	}
	return lines
}

// fitLines truncates view to width columns and exactly n lines.
func fitLines(view string, width, n int) []string {
	src := strings.Split(view, "\n")
	lines := make([]string, n)
	for i := range lines {
		if i < len(src) {
			lines[i] = ansi.Truncate(src[i], width, "")
		}
	}
	return lines
}

// sheetDelegate receives the drag controller callbacks.
type sheetDelegate struct {
	s *Sheet
}

func (d sheetDelegate) SheetMovedToClosed() tea.Cmd {
	return ActionCmd(Closed{Name: d.s.item.Name})
}

func (d sheetDelegate) SheetDidSettle(p position.Position) tea.Cmd {
	return ActionCmd(Settled{Name: d.s.item.Name, Position: p})
}

func (d sheetDelegate) EndEditing() {
	d.s.EndEditing()
}
