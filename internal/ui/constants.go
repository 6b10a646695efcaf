// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for the demo screen.
const (
	// HeaderHeight is the header bar above the map.
	HeaderHeight = 1

	// FooterHeight is the status line below the map.
	FooterHeight = 1

	// KeyboardRows is the height of the simulated on-screen keyboard.
	KeyboardRows = 10

	// MinWidth is the narrowest screen the demo renders on.
	MinWidth = 20
)
