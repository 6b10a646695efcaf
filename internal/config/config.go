// Package config loads the sheets configuration from TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/sheets/internal/dimming"
	"github.com/llehouerou/sheets/internal/layout"
	"github.com/llehouerou/sheets/internal/position"
	"github.com/llehouerou/sheets/internal/sheet"
	"github.com/llehouerou/sheets/internal/stack"
)

const appName = "sheets"

// ErrInvalidConfig is returned when a loaded value cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	PointsPerRow      float64 `koanf:"points_per_row"`
	SafeAreaTop       float64 `koanf:"safe_area_top"`
	Background        string  `koanf:"background"` // "dimming", "blurred" or "none"
	Transition        string  `koanf:"transition"` // "forward" or "backward"
	TransitionMS      int     `koanf:"transition_ms"`
	PresentMS         int     `koanf:"present_ms"`
	RememberPositions bool    `koanf:"remember_positions"`

	Log   LogConfig   `koanf:"log"`
	Sheet SheetConfig `koanf:"sheet"`
}

// LogConfig holds the log file settings.
type LogConfig struct {
	Path  string `koanf:"path"`  // empty means the XDG state directory
	Level string `koanf:"level"` // debug, info, warn or error
}

// SheetConfig overrides the configuration of the example sheets. Unset
// fields keep each example's own values.
type SheetConfig struct {
	SupportedPositions      []string      `koanf:"supported_positions"`
	InitialPosition         string        `koanf:"initial_position"`
	TopInset                *float64      `koanf:"top_inset"`
	CornerRadius            *float64      `koanf:"corner_radius"`
	DismissKeyboardOnScroll *bool         `koanf:"dismiss_keyboard_on_scroll"`
	KeyboardAvoidance       *bool         `koanf:"keyboard_avoidance"`
	DimmingAnchor           string        `koanf:"dimming_anchor"`
	Handle                  *HandleConfig `koanf:"handle"`
}

// HandleConfig holds the handle settings.
type HandleConfig struct {
	TopInset *float64 `koanf:"top_inset"`
	Disabled bool     `koanf:"disabled"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		PointsPerRow: layout.DefaultPointsPerRow,
		Background:   string(dimming.KindDimming),
		Transition:   "forward",
		TransitionMS: int(stack.DefaultDuration / time.Millisecond),
		PresentMS:    int(stack.DefaultDuration / time.Millisecond),
		Log:          LogConfig{Level: "info"},
	}
}

// Load reads the configuration files over the defaults. Later files win:
// the XDG config file, ./config.toml, then explicit when not empty. A
// missing explicit file is an error; the others are optional.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}
	if explicit != "" {
		if err := k.Load(file.Provider(expandPath(explicit)), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", explicit, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	if cfg.Log.Path != "" {
		cfg.Log.Path = expandPath(cfg.Log.Path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/sheets/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Validate checks the values that are not checked when they are used.
func (c *Config) Validate() error {
	if c.PointsPerRow <= 0 {
		return fmt.Errorf("%w: points_per_row must be positive, got %v", ErrInvalidConfig, c.PointsPerRow)
	}
	if c.SafeAreaTop < 0 {
		return fmt.Errorf("%w: negative safe_area_top %v", ErrInvalidConfig, c.SafeAreaTop)
	}
	if c.TransitionMS < 0 || c.PresentMS < 0 {
		return fmt.Errorf("%w: negative durations", ErrInvalidConfig)
	}
	switch dimming.Kind(c.Background) {
	case dimming.KindDimming, dimming.KindBlurred, dimming.KindNone:
	default:
		return fmt.Errorf("%w: unknown background %q", ErrInvalidConfig, c.Background)
	}
	if _, err := stack.ParseTransition(c.Transition, 0); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Sheet.Options(); err != nil {
		return err
	}
	return nil
}

// StackOptions returns the stack options the configuration describes.
func (c *Config) StackOptions() (stack.Options, error) {
	tr, err := stack.ParseTransition(c.Transition, time.Duration(c.TransitionMS)*time.Millisecond)
	if err != nil {
		return stack.Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return stack.Options{
		Sheet: sheet.Options{
			Scale:       c.PointsPerRow,
			SafeAreaTop: c.SafeAreaTop,
		},
		Background:      dimming.New(dimming.Kind(c.Background)),
		Transition:      tr,
		PresentDuration: time.Duration(c.PresentMS) * time.Millisecond,
	}, nil
}

// Options converts the overrides into sheet options, to be applied after
// an example's own options.
func (s SheetConfig) Options() ([]sheet.Option, error) {
	var opts []sheet.Option
	if len(s.SupportedPositions) > 0 {
		supported := make([]position.Position, 0, len(s.SupportedPositions))
		for _, name := range s.SupportedPositions {
			p, err := position.ParsePosition(name)
			if err != nil {
				return nil, fmt.Errorf("%w: sheet.supported_positions: %w", ErrInvalidConfig, err)
			}
			supported = append(supported, p)
		}
		initial := supported[0]
		if s.InitialPosition != "" {
			p, err := position.ParsePosition(s.InitialPosition)
			if err != nil {
				return nil, fmt.Errorf("%w: sheet.initial_position: %w", ErrInvalidConfig, err)
			}
			initial = p
		}
		opts = append(opts, sheet.WithPositions(initial, supported...))
	} else if s.InitialPosition != "" {
		return nil, fmt.Errorf("%w: sheet.initial_position needs sheet.supported_positions", ErrInvalidConfig)
	}
	if s.TopInset != nil {
		opts = append(opts, sheet.WithTopInset(*s.TopInset))
	}
	if s.CornerRadius != nil {
		opts = append(opts, sheet.WithCornerRadius(*s.CornerRadius))
	}
	if s.DismissKeyboardOnScroll != nil {
		opts = append(opts, sheet.WithDismissKeyboardOnScroll(*s.DismissKeyboardOnScroll))
	}
	if s.KeyboardAvoidance != nil {
		opts = append(opts, sheet.WithKeyboardAvoidance(*s.KeyboardAvoidance))
	}
	if s.DimmingAnchor != "" {
		a, err := position.ParseAnchor(s.DimmingAnchor)
		if err != nil {
			return nil, fmt.Errorf("%w: sheet.dimming_anchor: %w", ErrInvalidConfig, err)
		}
		opts = append(opts, sheet.WithDimmingAnchor(a))
	}
	if s.Handle != nil {
		switch {
		case s.Handle.Disabled:
			opts = append(opts, sheet.WithoutHandle())
		case s.Handle.TopInset != nil:
			opts = append(opts, sheet.WithHandle(*s.Handle.TopInset))
		}
	}
	return opts, nil
}
