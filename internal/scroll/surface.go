// Package scroll provides the scrollable surface sheet content can embed.
//
// A Surface keeps its offset in points so it can take part in the same
// gesture arithmetic as the sheet around it, and renders through a bubbles
// viewport.
package scroll

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sheets/internal/gesture"
	"github.com/llehouerou/sheets/internal/layout"
	"github.com/llehouerou/sheets/internal/position"
	"github.com/llehouerou/sheets/internal/ui/styles"
)

// WheelRows is how many rows one wheel notch scrolls.
const WheelRows = 3

// Delegate is told when a pan of the surface is about to end. It may change
// the offset the surface settles at.
type Delegate interface {
	WillEndDragging(velocity position.Vector, target *float64)
}

// Rect is a rectangle in container points.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p position.Vector) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Surface is a vertically scrollable view.
type Surface struct {
	vp    viewport.Model
	scale float64

	width, height int
	frame         Rect
	offset        float64
	lastPan       float64

	bounces       bool
	showIndicator bool
	delegate      Delegate
}

// New returns a surface of the given size in cells.
func New(width, height int, scale float64) *Surface {
	s := &Surface{
		vp:            viewport.New(max(0, width-1), max(0, height)),
		scale:         scale,
		bounces:       true,
		showIndicator: true,
	}
	s.SetSize(width, height)
	return s
}

// SetContent replaces the scrolled content.
func (s *Surface) SetContent(content string) {
	s.vp.SetContent(content)
	s.SetOffset(s.offset)
}

// SetSize sets the size in cells. One column is kept for the indicator.
func (s *Surface) SetSize(width, height int) {
	s.width, s.height = max(0, width), max(0, height)
	s.vp.Width = max(0, s.width-1)
	s.vp.Height = s.height
	s.SetOffset(s.offset)
}

// SetFrame places the surface in container points.
func (s *Surface) SetFrame(r Rect) { s.frame = r }

// Frame returns the surface rectangle in container points.
func (s *Surface) Frame() Rect { return s.frame }

// Contains reports whether the container point p is over the surface.
func (s *Surface) Contains(p position.Vector) bool { return s.frame.Contains(p) }

// Offset returns the scroll offset in points. Negative values are top
// overscroll.
func (s *Surface) Offset() float64 { return s.offset }

// MaxOffset returns the largest resting offset.
func (s *Surface) MaxOffset() float64 {
	return layout.Points(max(0, s.vp.TotalLineCount()-s.height), s.scale)
}

// ContentHeight returns the height of the whole content in points.
func (s *Surface) ContentHeight() float64 {
	return layout.Points(s.vp.TotalLineCount(), s.scale)
}

// SetOffset sets the offset, clamped to the scrollable range. Negative
// offsets are kept only while the surface bounces.
func (s *Surface) SetOffset(o float64) {
	lo := 0.0
	if s.bounces {
		lo = min(o, 0)
	}
	s.offset = max(lo, min(o, s.MaxOffset()))
	s.vp.SetYOffset(layout.Rows(max(0, s.offset), s.scale))
}

// Bounces reports whether the surface overscrolls at the top.
func (s *Surface) Bounces() bool { return s.bounces }

// SetBounces toggles top overscroll.
func (s *Surface) SetBounces(b bool) {
	s.bounces = b
	if !b && s.offset < 0 {
		s.SetOffset(0)
	}
}

// ShowsIndicator reports whether the scroll indicator is drawn.
func (s *Surface) ShowsIndicator() bool { return s.showIndicator }

// SetShowsIndicator toggles the scroll indicator.
func (s *Surface) SetShowsIndicator(v bool) { s.showIndicator = v }

// Delegate returns the current delegate.
func (s *Surface) Delegate() Delegate { return s.delegate }

// SetDelegate replaces the delegate.
func (s *Surface) SetDelegate(d Delegate) { s.delegate = d }

// Pan scrolls with a pan gesture sample. Moving the pointer down moves the
// content down, towards offset 0. When the gesture ends the delegate picks
// the resting offset, which is then clamped to the scrollable range.
func (s *Surface) Pan(sample gesture.Sample) {
	switch sample.Phase {
	case gesture.Began:
		s.lastPan = sample.Translation.Y
	case gesture.Changed:
		dy := sample.Translation.Y - s.lastPan
		s.lastPan = sample.Translation.Y
		s.SetOffset(s.offset - dy)
	default:
		target := max(0, min(s.offset, s.MaxOffset()))
		if s.delegate != nil {
			s.delegate.WillEndDragging(sample.Velocity, &target)
		}
		s.lastPan = 0
		s.SetOffset(max(0, target))
	}
}

// Wheel scrolls with the mouse wheel. It reports whether msg was a wheel
// event.
func (s *Surface) Wheel(msg tea.MouseMsg) bool {
	var rows int
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		rows = -WheelRows
	case tea.MouseButtonWheelDown:
		rows = WheelRows
	default:
		return false
	}
	s.SetOffset(max(0, s.offset) + layout.Points(rows, s.scale))
	return true
}

// View renders the visible content and the indicator column.
func (s *Surface) View() string {
	if s.height == 0 {
		return ""
	}
	lines := strings.Split(s.vp.View(), "\n")
	if pad := layout.Rows(-s.offset, s.scale); pad > 0 {
		blank := make([]string, min(pad, s.height))
		lines = append(blank, lines...)
	}
	if len(lines) > s.height {
		lines = lines[:s.height]
	}
	for len(lines) < s.height {
		lines = append(lines, "")
	}

	bar := s.indicator()
	cell := lipgloss.NewStyle().Width(s.vp.Width).MaxWidth(s.vp.Width)
	for i, line := range lines {
		lines[i] = cell.Render(line) + bar[i]
	}
	return strings.Join(lines, "\n")
}

func (s *Surface) indicator() []string {
	bar := make([]string, s.height)
	for i := range bar {
		bar[i] = " "
	}
	total := s.vp.TotalLineCount()
	if !s.showIndicator || total <= s.height {
		return bar
	}
	thumb := max(1, s.height*s.height/total)
	start := 0
	if span := total - s.height; span > 0 {
		start = s.vp.YOffset * (s.height - thumb) / span
	}
	style := styles.T().S().Subtle
	for i := start; i < start+thumb && i < s.height; i++ {
		bar[i] = style.Render("┃")
	}
	return bar
}
