// Package drag decides, sample by sample, whether a pan gesture moves the
// sheet or the scrollable content inside it, and settles the sheet when the
// gesture ends.
package drag

import (
	"log/slog"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheets/internal/anim"
	"github.com/llehouerou/sheets/internal/dimming"
	"github.com/llehouerou/sheets/internal/gesture"
	"github.com/llehouerou/sheets/internal/layout"
	"github.com/llehouerou/sheets/internal/position"
	"github.com/llehouerou/sheets/internal/scroll"
)

// SettleDuration is the length of the spring that settles the sheet.
const SettleDuration = 500 * time.Millisecond

// Damping is the damping ratio of the settle spring.
const Damping = 0.9

// State is the drag session state.
type State int

const (
	// Idle: no gesture in progress.
	Idle State = iota
	// Armed: a gesture is in progress but does not move the sheet.
	Armed
	// Dragging: the gesture moves the sheet.
	Dragging
)

func (s State) String() string {
	switch s {
	case Armed:
		return "armed"
	case Dragging:
		return "dragging"
	}
	return "idle"
}

// Surface is the scrollable content the controller coordinates with.
type Surface interface {
	Contains(p position.Vector) bool
	Offset() float64
	SetOffset(o float64)
	ShowsIndicator() bool
	SetShowsIndicator(v bool)
	Bounces() bool
	SetBounces(v bool)
	Delegate() scroll.Delegate
	SetDelegate(d scroll.Delegate)
}

// Delegate receives the outcome of drags.
type Delegate interface {
	// SheetMovedToClosed is called once a sheet settled at Closed.
	SheetMovedToClosed() tea.Cmd
	// SheetDidSettle is called once a sheet settled at any other position.
	SheetDidSettle(p position.Position) tea.Cmd
	// EndEditing dismisses the keyboard.
	EndEditing()
}

// Options configures a Controller.
type Options struct {
	DismissKeyboardOnScroll bool
}

// Controller owns a drag session over a layout.Manager.
type Controller struct {
	layout   *layout.Manager
	delegate Delegate
	opts     Options

	surface Surface
	forward scroll.Delegate
	dimmer  *dimming.Animator

	state               State
	lastTranslation     position.Vector
	translationAtStart  position.Vector
	initialScrollOffset float64
	stopScrolling       bool
	savedIndicator      bool
	savedBounces        bool
	surfaceAltered      bool

	animID int64
	spring *anim.Spring
	from   float64
	to     float64
	target position.Position
}

// NewController returns an idle controller moving l.
func NewController(l *layout.Manager, d Delegate, opts Options) *Controller {
	return &Controller{layout: l, delegate: d, opts: opts}
}

// State returns the session state.
func (c *Controller) State() State { return c.state }

// Dragging reports whether the sheet follows the pointer.
func (c *Controller) Dragging() bool { return c.state == Dragging }

// Animating reports whether a settle animation is running.
func (c *Controller) Animating() bool { return c.spring != nil }

// Layout returns the driven layout.
func (c *Controller) Layout() *layout.Manager { return c.layout }

// Attach registers the scrollable surface. The controller becomes its
// delegate and forwards to the previous one.
func (c *Controller) Attach(s Surface) {
	c.Detach()
	if s == nil {
		return
	}
	c.surface = s
	c.forward = s.Delegate()
	s.SetDelegate(c)
}

// Detach unregisters the surface and restores its delegate.
func (c *Controller) Detach() {
	if c.surface == nil {
		return
	}
	c.surface.SetDelegate(c.forward)
	c.surface, c.forward = nil, nil
}

// SetDimmer hands the dimming animator to the controller. Nil detaches it.
func (c *Controller) SetDimmer(a *dimming.Animator) {
	c.dimmer = a
	c.SyncDimming()
}

// Dimmer returns the dimming animator, if any.
func (c *Controller) Dimmer() *dimming.Animator { return c.dimmer }

// ShouldScrollHandle reports whether a gesture at location belongs to the
// content: it is over the surface, the sheet is not being dragged and the
// content is scrolled away from its top.
func (c *Controller) ShouldScrollHandle(location position.Vector) bool {
	if c.surface == nil || c.state == Dragging {
		return false
	}
	return c.surface.Contains(location) && c.surface.Offset() > 0
}

// Handle feeds one sample of the sheet's pan gesture.
func (c *Controller) Handle(s gesture.Sample) tea.Cmd {
	var cmds []tea.Cmd
	if s.Phase == gesture.Began {
		cmds = append(cmds, c.interrupt())
		c.state = Armed
		c.stopScrolling = false
		c.lastTranslation = s.Translation
	}
	defer func() { c.lastTranslation = s.Translation }()

	if c.ShouldScrollHandle(s.Location) {
		if s.Phase.Finished() {
			c.state = Idle
		}
		return tea.Batch(cmds...)
	}

	model := c.layout.Model()
	height := c.layout.Height()
	current := c.layout.Position()

	// Moving up past the top of the range hands the gesture to the content.
	if c.state == Dragging && s.Translation.Y < c.translationAtStart.Y &&
		(height >= c.layout.OpenHeight() ||
			len(model.InDirection(s.Translation.Sub(c.translationAtStart), current, height)) == 0) {
		slog.Debug("drag: stop", "position", current, "height", height)
		c.state = Armed
		c.stopScrolling = false
		cmds = append(cmds, c.settle(position.Vector{}))
		if s.Phase.Finished() {
			c.state = Idle
		}
		return tea.Batch(cmds...)
	}

	if c.state != Dragging && s.Translation.Y != 0 &&
		len(model.InDirection(s.Translation, current, height)) > 0 {
		c.begin(s)
	}

	if c.state != Dragging {
		if s.Phase.Finished() {
			c.state = Idle
		}
		return tea.Batch(cmds...)
	}

	switch s.Phase {
	case gesture.Began, gesture.Changed:
		c.layout.AdjustHeight(s.Translation.Y - c.translationAtStart.Y)
		if c.surface != nil {
			c.surface.SetOffset(c.initialScrollOffset)
		}
		if c.dimmer != nil {
			c.dimmer.SetReversed(false)
			if f, ok := c.layout.Model().DimmingFraction(c.layout.Height()); ok {
				c.dimmer.SetFraction(f)
			}
		}
	default:
		c.state = Idle
		cmds = append(cmds, c.settle(s.Velocity))
	}
	return tea.Batch(cmds...)
}

// begin starts a session from the previous sample, so the movement of the
// sample that triggered it already moves the sheet.
func (c *Controller) begin(s gesture.Sample) {
	c.state = Dragging
	c.translationAtStart = c.lastTranslation
	c.spring = nil
	c.stopScrolling = true
	if c.delegate != nil {
		c.delegate.EndEditing()
	}
	if c.surface != nil {
		c.initialScrollOffset = c.surface.Offset()
		c.savedIndicator = c.surface.ShowsIndicator()
		c.savedBounces = c.surface.Bounces()
		c.surfaceAltered = true
		c.surface.SetShowsIndicator(false)
		c.surface.SetBounces(false)
	}
	slog.Debug("drag: start",
		"position", c.layout.Position(),
		"translation", s.Translation.Y,
		"start", c.translationAtStart.Y,
		"scroll_offset", c.initialScrollOffset)
}

// HandleScrollPan feeds a sample of the content's own pan gesture, after
// the surface applied it.
func (c *Controller) HandleScrollPan(s gesture.Sample) {
	if s.Phase == gesture.Began && c.opts.DismissKeyboardOnScroll && c.delegate != nil {
		c.delegate.EndEditing()
	}
	if c.surface == nil {
		return
	}
	if c.state == Dragging {
		c.surface.SetOffset(c.initialScrollOffset)
		return
	}
	if c.surface.Offset() < 0 {
		c.surface.SetOffset(0)
	}
}

// WillEndDragging implements scroll.Delegate. Content released right after
// the sheet was dragged stays where the drag found it.
func (c *Controller) WillEndDragging(velocity position.Vector, target *float64) {
	if c.stopScrolling {
		*target = c.initialScrollOffset
		c.stopScrolling = false
	}
	if c.forward != nil {
		c.forward.WillEndDragging(velocity, target)
	}
}

// MoveTo moves the sheet to p, superseding any running animation.
// Unsupported positions are ignored.
func (c *Controller) MoveTo(p position.Position, animated bool) tea.Cmd {
	if !c.layout.Model().Supports(p) {
		return nil
	}
	c.spring = nil
	if animated {
		return c.animateTo(p, position.Vector{})
	}
	c.layout.MoveTo(p)
	c.SyncDimming()
	return c.complete(p)
}

// Update advances the settle animation on its own frames.
func (c *Controller) Update(msg anim.FrameMsg) tea.Cmd {
	if c.spring == nil || msg.ID != c.animID {
		return nil
	}
	v, done := c.spring.Step()
	c.layout.SetHeight(anim.Lerp(c.from, c.to, v))
	if !done {
		return anim.Tick(c.animID)
	}
	c.spring = nil
	return c.complete(c.target)
}

// Owns reports whether msg is a frame of the settle animation.
func (c *Controller) Owns(msg anim.FrameMsg) bool {
	return c.spring != nil && msg.ID == c.animID
}

// Pending returns the frame the settle animation waits for.
func (c *Controller) Pending() (anim.FrameMsg, bool) {
	return anim.FrameMsg{ID: c.animID}, c.spring != nil
}

func (c *Controller) settle(velocity position.Vector) tea.Cmd {
	target := c.layout.Model().Target(velocity, c.layout.Height(), c.layout.Position())
	return c.animateTo(target, velocity)
}

func (c *Controller) animateTo(target position.Position, velocity position.Vector) tea.Cmd {
	height := c.layout.Height()
	model := c.layout.Model()
	distance := model.Height(target) - height

	springVelocity := 0.0
	if distance != 0 {
		springVelocity = math.Abs(velocity.Y) / math.Abs(distance) / SettleDuration.Seconds()
	}

	c.layout.Retarget(target)
	c.target = target
	c.from, c.to = height, model.Height(target)
	c.spring = anim.NewSpring(SettleDuration, Damping, springVelocity)
	c.animID = anim.NextID()
	slog.Debug("drag: settle",
		"target", target,
		"from", c.from,
		"to", c.to,
		"velocity", velocity.Y,
		"spring_velocity", springVelocity)

	cmds := []tea.Cmd{anim.Tick(c.animID)}
	if c.dimmer != nil {
		if top, second, ok := model.DimmingPair(); ok && (target == top || target == second) {
			c.dimmer.SetReversed(target == top)
			factor := SettleDuration.Seconds() / c.dimmer.Duration().Seconds()
			cmds = append(cmds, c.dimmer.Continue(springVelocity, factor))
		}
	}
	return tea.Batch(cmds...)
}

// interrupt finishes a running settle animation at its target.
func (c *Controller) interrupt() tea.Cmd {
	if c.spring == nil {
		return nil
	}
	c.spring = nil
	c.layout.SetHeight(c.to)
	return c.complete(c.target)
}

func (c *Controller) complete(p position.Position) tea.Cmd {
	slog.Debug("drag: settled", "position", p)
	if p == position.Closed {
		if c.delegate != nil {
			return c.delegate.SheetMovedToClosed()
		}
		return nil
	}
	if c.surface != nil && c.surfaceAltered {
		c.surface.SetShowsIndicator(c.savedIndicator)
		c.surface.SetBounces(c.savedBounces)
		c.surfaceAltered = false
	}
	if c.delegate != nil {
		return c.delegate.SheetDidSettle(p)
	}
	return nil
}

// SyncDimming scrubs the dimming animator to the current height.
func (c *Controller) SyncDimming() {
	if c.dimmer == nil {
		return
	}
	if f, ok := c.layout.Model().DimmingFraction(c.layout.Height()); ok {
		c.dimmer.SetFraction(f)
	}
}
