// Package demo holds the example sheets of the demo application.
package demo

import (
	"errors"
	"fmt"

	"github.com/llehouerou/sheets/internal/position"
	"github.com/llehouerou/sheets/internal/sheet"
)

// Example names, also used as sheet names.
const (
	ExampleHalf    = "half"
	ExampleFitting = "fitting"
	ExampleList    = "list"
	ExampleForm    = "form"
	ExampleMenu    = "menu"
)

// ErrUnknownExample is returned by Build for names not in Examples.
var ErrUnknownExample = errors.New("unknown example")

// Example describes a presentable example.
type Example struct {
	Key  string
	Name string
}

// Examples lists the examples in key order.
var Examples = []Example{
	{"1", ExampleHalf},
	{"2", ExampleFitting},
	{"3", ExampleList},
	{"4", ExampleForm},
	{"5", ExampleMenu},
}

const halfText = "The sheet rests at half height. Drag the handle up to open it, " +
	"flick it down to close it, or tap the map to dismiss it. The map dims " +
	"as the sheet rises above half."

const fittingText = "This sheet is exactly as tall as its text. Resize the " +
	"terminal and it follows the wrapped height."

// Builder creates example sheet items.
type Builder struct {
	// Scale is the container's points per row.
	Scale float64
	// Overrides are applied after each example's own options.
	Overrides []sheet.Option
}

// Build creates the item of the named example. level is the depth of the
// stack it will join, starting at 1.
func (b Builder) Build(name string, level int) (sheet.Item, error) {
	var content sheet.Content
	var opts []sheet.Option
	switch name {
	case ExampleHalf:
		content = NewText("Half sheet", halfText)
		opts = []sheet.Option{sheet.WithPositions(position.Half, position.Open, position.Half, position.Closed)}
	case ExampleFitting:
		content = NewText("Fitting size", fittingText)
		opts = []sheet.Option{sheet.WithPositions(position.FittingSize, position.FittingSize, position.Closed)}
	case ExampleList:
		content = NewPlaces(NearbyPlaces(60), b.Scale)
		opts = []sheet.Option{
			sheet.WithPositions(position.Half, position.Open, position.Half, position.Closed),
			sheet.WithDimmingAnchor(position.AnchorOpen),
		}
	case ExampleForm:
		content = NewForm()
		opts = []sheet.Option{sheet.WithPositions(position.Half, position.Open, position.Half, position.Closed)}
	case ExampleMenu:
		content = NewMenu(level)
		opts = []sheet.Option{
			sheet.WithPositions(position.FittingSize, position.Open, position.FittingSize, position.Closed),
			sheet.WithoutHandle(),
		}
	default:
		return sheet.Item{}, fmt.Errorf("%w: %q", ErrUnknownExample, name)
	}

	cfg, err := sheet.NewConfiguration(append(opts, b.Overrides...)...)
	if err != nil {
		return sheet.Item{}, fmt.Errorf("example %s: %w", name, err)
	}
	return sheet.Item{Name: name, Content: content, Configuration: cfg}, nil
}
