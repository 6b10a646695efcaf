package sheet

import (
	"errors"
	"fmt"
	"slices"

	"github.com/llehouerou/sheets/internal/position"
)

// ErrInvalidConfiguration is returned by NewConfiguration.
var ErrInvalidConfiguration = errors.New("invalid sheet configuration")

// Default configuration values.
const (
	DefaultTopInset       = 44
	DefaultCornerRadius   = 10
	DefaultHandleTopInset = 16
)

// Handle configures the drag handle above a sheet.
type Handle struct {
	// TopInset is the distance between the handle and the top of the sheet.
	TopInset float64
}

// Configuration describes how a sheet behaves. Build it with
// NewConfiguration; the zero value is not valid.
type Configuration struct {
	SupportedPositions      []position.Position
	InitialPosition         position.Position
	TopInset                float64
	CornerRadius            float64
	DismissKeyboardOnScroll bool
	KeyboardAvoidance       bool
	Handle                  *Handle
	DimmingAnchor           position.Anchor
}

// Option customizes a Configuration.
type Option func(*Configuration)

// WithPositions sets the supported positions and the initial one.
func WithPositions(initial position.Position, supported ...position.Position) Option {
	return func(c *Configuration) {
		c.InitialPosition = initial
		c.SupportedPositions = slices.Clone(supported)
	}
}

// WithTopInset sets the gap kept above an Open sheet.
func WithTopInset(inset float64) Option {
	return func(c *Configuration) { c.TopInset = inset }
}

// WithCornerRadius sets the corner radius. Zero draws square corners.
func WithCornerRadius(r float64) Option {
	return func(c *Configuration) { c.CornerRadius = r }
}

// WithHandle sets the handle inset.
func WithHandle(topInset float64) Option {
	return func(c *Configuration) { c.Handle = &Handle{TopInset: topInset} }
}

// WithoutHandle removes the handle.
func WithoutHandle() Option {
	return func(c *Configuration) { c.Handle = nil }
}

// WithDismissKeyboardOnScroll toggles ending editing when content scrolls.
func WithDismissKeyboardOnScroll(v bool) Option {
	return func(c *Configuration) { c.DismissKeyboardOnScroll = v }
}

// WithKeyboardAvoidance toggles moving the sheet above the keyboard.
func WithKeyboardAvoidance(v bool) Option {
	return func(c *Configuration) { c.KeyboardAvoidance = v }
}

// WithDimmingAnchor selects which end of the position range dims.
func WithDimmingAnchor(a position.Anchor) Option {
	return func(c *Configuration) { c.DimmingAnchor = a }
}

// DefaultConfiguration returns the defaults: a single Open position, a
// 44 point top inset, rounded corners and a handle.
func DefaultConfiguration() Configuration {
	return Configuration{
		SupportedPositions:      []position.Position{position.Open},
		InitialPosition:         position.Open,
		TopInset:                DefaultTopInset,
		CornerRadius:            DefaultCornerRadius,
		DismissKeyboardOnScroll: true,
		KeyboardAvoidance:       true,
		Handle:                  &Handle{TopInset: DefaultHandleTopInset},
	}
}

// NewConfiguration applies opts over the defaults and validates the result.
func NewConfiguration(opts ...Option) (Configuration, error) {
	c := DefaultConfiguration()
	for _, opt := range opts {
		opt(&c)
	}
	return c, c.Validate()
}

// Validate checks the configuration.
func (c Configuration) Validate() error {
	if len(c.SupportedPositions) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, position.ErrNoPositions)
	}
	seen := make(map[position.Position]bool, len(c.SupportedPositions))
	for _, p := range c.SupportedPositions {
		if !p.Valid() {
			return fmt.Errorf("%w: %w: %d", ErrInvalidConfiguration, position.ErrUnknownPosition, int(p))
		}
		if seen[p] {
			return fmt.Errorf("%w: %w: %s", ErrInvalidConfiguration, position.ErrDuplicatePosition, p)
		}
		seen[p] = true
	}
	if !seen[c.InitialPosition] {
		return fmt.Errorf("%w: initial position %s is not supported", ErrInvalidConfiguration, c.InitialPosition)
	}
	if c.TopInset < 0 {
		return fmt.Errorf("%w: negative top inset %v", ErrInvalidConfiguration, c.TopInset)
	}
	return nil
}

// Supports reports whether p is a supported position.
func (c Configuration) Supports(p position.Position) bool {
	return slices.Contains(c.SupportedPositions, p)
}
