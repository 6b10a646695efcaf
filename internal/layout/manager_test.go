package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/sheets/internal/position"
)

func newManager(t *testing.T, initial position.Position, supported ...position.Position) *Manager {
	t.Helper()
	m, err := NewManager(Params{
		Supported: supported,
		Initial:   initial,
		TopInset:  44,
	}, Metrics{ContainerHeight: 600})
	require.NoError(t, err)
	return m
}

func TestNewManager(t *testing.T) {
	m := newManager(t, position.Half, position.Open, position.Half, position.Closed)

	assert.Equal(t, position.Half, m.Position())
	assert.InDelta(t, 278, m.Height(), 1e-9)
	assert.InDelta(t, 556, m.OpenHeight(), 1e-9)
	assert.InDelta(t, 556, m.FittingSizeMaxHeight(), 1e-9)
}

func TestNewManager_Errors(t *testing.T) {
	_, err := NewManager(Params{
		Supported: []position.Position{position.Open},
		Initial:   position.Half,
	}, Metrics{ContainerHeight: 600})
	require.ErrorIs(t, err, ErrUnsupportedInitial)

	_, err = NewManager(Params{Initial: position.Open}, Metrics{ContainerHeight: 600})
	require.ErrorIs(t, err, position.ErrNoPositions)

	_, err = NewManager(Params{
		Supported: []position.Position{position.Open},
		Initial:   position.Open,
	}, Metrics{ContainerHeight: -1})
	require.ErrorIs(t, err, position.ErrInvalidContainer)
}

func TestAdjustHeight(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		want  float64
	}{
		{"no movement", 0, 556},
		{"drag down", 200, 356},
		{"drag past the bottom", 1000, 0},
		{"drag up past open", -500, 556},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newManager(t, position.Open, position.Open, position.Half, position.Closed)
			m.AdjustHeight(tt.delta)
			assert.InDelta(t, tt.want, m.Height(), 1e-9)
			assert.Equal(t, position.Open, m.Position())
		})
	}
}

func TestAdjustHeight_IsRelativeToPosition(t *testing.T) {
	m := newManager(t, position.Half, position.Open, position.Half)

	m.AdjustHeight(-10)
	m.AdjustHeight(-20)

	assert.InDelta(t, 298, m.Height(), 1e-9)
}

func TestMoveTo(t *testing.T) {
	m := newManager(t, position.Open, position.Open, position.Half)

	assert.True(t, m.MoveTo(position.Half))
	assert.Equal(t, position.Half, m.Position())
	assert.InDelta(t, 278, m.Height(), 1e-9)

	assert.False(t, m.MoveTo(position.Closed))
	assert.Equal(t, position.Half, m.Position())
}

func TestRetargetKeepsHeight(t *testing.T) {
	m := newManager(t, position.Open, position.Open, position.Half)
	m.AdjustHeight(100)

	require.True(t, m.Retarget(position.Half))

	assert.Equal(t, position.Half, m.Position())
	assert.InDelta(t, 456, m.Height(), 1e-9)
}

func TestClosedOffset(t *testing.T) {
	m := newManager(t, position.Open, position.Open)
	assert.Zero(t, m.ClosedOffset())
	assert.False(t, m.HasHandle())

	inset := 16.0
	m, err := NewManager(Params{
		Supported:      []position.Position{position.Open},
		Initial:        position.Open,
		HandleTopInset: &inset,
	}, Metrics{ContainerHeight: 600})
	require.NoError(t, err)
	assert.InDelta(t, 16, m.ClosedOffset(), 1e-9)

	negative := -4.0
	m, err = NewManager(Params{
		Supported:      []position.Position{position.Open},
		Initial:        position.Open,
		HandleTopInset: &negative,
	}, Metrics{ContainerHeight: 600})
	require.NoError(t, err)
	assert.Zero(t, m.ClosedOffset())
}

func TestSetMetrics(t *testing.T) {
	m := newManager(t, position.Half, position.Open, position.Half)

	require.NoError(t, m.SetMetrics(Metrics{ContainerHeight: 400, SafeAreaTop: 20}))
	assert.InDelta(t, 168, m.Height(), 1e-9)

	require.ErrorIs(t, m.SetMetrics(Metrics{ContainerHeight: -3}), position.ErrInvalidContainer)
	assert.InDelta(t, 400, m.Metrics().ContainerHeight, 1e-9)
}

func TestSetFittingHeight(t *testing.T) {
	m := newManager(t, position.FittingSize, position.FittingSize, position.Closed)
	assert.Zero(t, m.Height())

	m.SetFittingHeight(120)
	assert.InDelta(t, 120, m.Height(), 1e-9)

	m.SetFittingHeight(5000)
	assert.InDelta(t, 556, m.Height(), 1e-9)
}

func TestUpdateForKeyboard(t *testing.T) {
	m := newManager(t, position.Half, position.Open, position.Half)

	moved := m.UpdateForKeyboard(200)

	assert.True(t, moved)
	assert.Equal(t, position.Open, m.Position())
	assert.InDelta(t, 356, m.Height(), 1e-9)
	assert.InDelta(t, 200, m.KeyboardInset(), 1e-9)

	moved = m.UpdateForKeyboard(0)
	assert.False(t, moved)
	assert.InDelta(t, 556, m.Height(), 1e-9)
}

func TestUpdateForKeyboard_WithoutOpen(t *testing.T) {
	m := newManager(t, position.Half, position.Half, position.Closed)

	assert.False(t, m.UpdateForKeyboard(200))
	assert.Equal(t, position.Half, m.Position())
	assert.InDelta(t, 178, m.Height(), 1e-9)
}

func TestUpdateForKeyboard_FittingSize(t *testing.T) {
	m := newManager(t, position.FittingSize, position.FittingSize, position.Open)
	m.SetFittingHeight(500)

	moved := m.UpdateForKeyboard(100)

	assert.False(t, moved)
	assert.Equal(t, position.FittingSize, m.Position())
	assert.InDelta(t, 456, m.Height(), 1e-9)
}

func TestHeightStaysInRange(t *testing.T) {
	m := newManager(t, position.Open, position.Open, position.Half, position.Closed)
	for _, delta := range []float64{-1000, -1, 0, 1, 300, 556, 557, 10_000} {
		m.AdjustHeight(delta)
		assert.GreaterOrEqual(t, m.Height(), 0.0)
		assert.LessOrEqual(t, m.Height(), m.OpenHeight())
	}
}
