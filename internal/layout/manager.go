package layout

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/llehouerou/sheets/internal/position"
)

// ErrUnsupportedInitial is returned when the initial position is not one of
// the supported positions.
var ErrUnsupportedInitial = errors.New("initial position is not supported")

// Params is the static part of a sheet layout.
type Params struct {
	Supported []position.Position
	Initial   position.Position
	Anchor    position.Anchor
	TopInset  float64

	// HandleTopInset is the distance between the handle and the sheet top,
	// nil when the sheet has no handle.
	HandleTopInset *float64
}

// Metrics describes the container the sheet lives in, in points.
type Metrics struct {
	ContainerHeight float64
	SafeAreaTop     float64
}

// Manager owns the mutable layout of one sheet: its logical position and
// live height. Every transition keeps 0 <= Height <= OpenHeight.
type Manager struct {
	params   Params
	metrics  Metrics
	keyboard float64
	fitting  float64

	model  position.Model
	pos    position.Position
	height float64
}

// NewManager builds a layout at the initial position.
func NewManager(p Params, m Metrics) (*Manager, error) {
	mgr := &Manager{params: p, metrics: m, pos: p.Initial}
	if err := mgr.rebuild(); err != nil {
		return nil, err
	}
	if !mgr.model.Supports(p.Initial) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedInitial, p.Initial)
	}
	mgr.height = mgr.model.Height(p.Initial)
	return mgr, nil
}

func (m *Manager) rebuild() error {
	g := position.Geometry{
		ContainerHeight: m.metrics.ContainerHeight,
		SafeAreaTop:     m.metrics.SafeAreaTop,
		TopInset:        m.params.TopInset,
		KeyboardBottom:  m.keyboard,
		FittingHeight:   m.fitting,
	}
	model, err := position.NewModel(m.params.Supported, g, m.params.Anchor)
	if err != nil {
		return err
	}
	m.model = model
	return nil
}

// Position returns the logical position. During a drag it stays at the
// position the drag started from.
func (m *Manager) Position() position.Position { return m.pos }

// Height returns the live sheet height.
func (m *Manager) Height() float64 { return m.height }

// Model returns the position model for the current geometry.
func (m *Manager) Model() position.Model { return m.model }

// Metrics returns the container metrics.
func (m *Manager) Metrics() Metrics { return m.metrics }

// OpenHeight returns the height of the Open position.
func (m *Manager) OpenHeight() float64 { return m.model.OpenHeight() }

// FittingSizeMaxHeight caps the intrinsic content height of a FittingSize
// sheet.
func (m *Manager) FittingSizeMaxHeight() float64 { return m.model.OpenHeight() }

// KeyboardInset returns the keyboard height currently applied below the
// sheet.
func (m *Manager) KeyboardInset() float64 { return m.keyboard }

// HasHandle reports whether the sheet has a drag handle.
func (m *Manager) HasHandle() bool { return m.params.HandleTopInset != nil }

// ClosedOffset is how far below the container the sheet moves when Closed
// so that the handle is hidden as well.
func (m *Manager) ClosedOffset() float64 {
	if m.params.HandleTopInset == nil {
		return 0
	}
	return max(*m.params.HandleTopInset, 0)
}

// MoveTo snaps the sheet to p. Unsupported positions are ignored.
func (m *Manager) MoveTo(p position.Position) bool {
	if !m.model.Supports(p) {
		slog.Debug("layout: ignoring unsupported position", "position", p)
		return false
	}
	m.pos = p
	m.height = m.model.Height(p)
	return true
}

// Retarget changes the logical position without touching the live height.
// Animations call it once and then drive the height with SetHeight.
func (m *Manager) Retarget(p position.Position) bool {
	if !m.model.Supports(p) {
		return false
	}
	m.pos = p
	return true
}

// AdjustHeight sets the live height from a drag translation relative to
// the logical position: a positive deltaY (downward) shrinks the sheet.
func (m *Manager) AdjustHeight(deltaY float64) {
	m.SetHeight(m.model.Height(m.pos) - deltaY)
}

// SetHeight sets the live height, clamped to [0, OpenHeight].
func (m *Manager) SetHeight(h float64) {
	m.height = max(0, min(h, m.model.OpenHeight()))
}

// SetMetrics applies new container metrics and snaps the height to the
// current position.
func (m *Manager) SetMetrics(metrics Metrics) error {
	prev := m.metrics
	m.metrics = metrics
	if err := m.rebuild(); err != nil {
		m.metrics = prev
		return err
	}
	m.height = m.model.Height(m.pos)
	return nil
}

// SetFittingHeight records the measured intrinsic content height.
func (m *Manager) SetFittingHeight(h float64) {
	if h == m.fitting {
		return
	}
	m.fitting = max(0, h)
	if err := m.rebuild(); err != nil {
		return
	}
	if m.pos == position.FittingSize {
		m.height = m.model.Height(m.pos)
	}
}

// UpdateForKeyboard applies a new keyboard height. The keyboard becomes the
// bottom inset of the sheet. Outside FittingSize a visible keyboard also
// moves the sheet to Open when Open is supported. It reports whether the
// logical position changed.
func (m *Manager) UpdateForKeyboard(h float64) bool {
	h = max(0, h)
	m.keyboard = h
	if err := m.rebuild(); err != nil {
		return false
	}
	moved := false
	if m.pos != position.FittingSize && h > 0 && m.model.Supports(position.Open) && m.pos != position.Open {
		m.pos = position.Open
		moved = true
	}
	m.height = m.model.Height(m.pos)
	return moved
}
