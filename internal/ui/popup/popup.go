// Package popup frames modal dialogs and centers them on the screen.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sheets/internal/ui/overlay"
	"github.com/llehouerou/sheets/internal/ui/styles"
)

// SizeConfig defines how a popup should be sized.
type SizeConfig struct {
	WidthPct  int // Percentage of screen width (0 = auto-fit)
	HeightPct int // Percentage of screen height (0 = auto-fit)
	MaxWidth  int // Maximum width in columns (0 = no limit)
}

// Common size configurations.
var (
	SizeAuto  = SizeConfig{MaxWidth: 60}
	SizeLarge = SizeConfig{WidthPct: 80, HeightPct: 70}
)

// RenderBordered wraps content in a rounded border and centers it on a
// screenW x screenH screen.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width, height := calculateDimensions(content, screenW, screenH, size)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Width(width-2).
		Height(height-2).
		MaxHeight(height).
		Padding(1, 2).
		Render(content)
	return Center(box, screenW, screenH)
}

// Show renders p bordered and centered over view.
func Show(view string, p Popup, screenW, screenH int, size SizeConfig) string {
	return overlay.Compose(view, RenderBordered(p.View(), screenW, screenH, size), screenW, 0)
}

// Center pads pre-rendered content so that it sits in the middle of the
// screen. Padding is spaces, which overlays treat as transparent.
func Center(content string, screenW, screenH int) string {
	lines := strings.Split(content, "\n")
	boxWidth := maxLineWidth(content)

	padTop := max(0, (screenH-len(lines))/2)
	padLeft := max(0, (screenW-boxWidth)/2)

	var b strings.Builder
	for range padTop {
		b.WriteString("\n")
	}
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Repeat(" ", padLeft))
		b.WriteString(line)
	}
	return b.String()
}

func calculateDimensions(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, screenH * size.HeightPct / 100
	}
	width = maxLineWidth(content) + 6 // padding + border
	if size.MaxWidth > 0 {
		width = min(width, size.MaxWidth)
	}
	width = min(width, screenW-4)

	height = strings.Count(content, "\n") + 1 + 4 // padding + border
	height = min(height, screenH-2)
	return width, height
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}
