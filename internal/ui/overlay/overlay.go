// Package overlay composites rendered blocks over a base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose overlays content on top of a base view, starting at row top.
// Leading and trailing spaces of each overlay line are transparent; the
// visible span between them replaces the base. Overlay rows falling outside
// the base are dropped. This function is ANSI-aware and handles styled text
// correctly.
func Compose(base, overlay string, width, top int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		row := top + i
		if row < 0 {
			continue
		}
		if row >= len(baseLines) {
			break
		}

		// Strip ANSI to find visible content bounds
		plainOverlay := ansi.Strip(overlayLine)
		if strings.TrimSpace(plainOverlay) == "" {
			continue // empty line (visually)
		}

		// Find visible start and end positions (in display columns)
		startCol := 0
		for _, r := range plainOverlay {
			if r != ' ' {
				break
			}
			startCol++
		}

		trimmed := strings.TrimRight(plainOverlay, " ")
		endCol := startCol + ansi.StringWidth(trimmed[startCol:])

		overlayContent := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[row]
		baseWidth := ansi.StringWidth(baseLine)
		if baseWidth < width {
			baseLine += strings.Repeat(" ", width-baseWidth)
		}

		// base[0:startCol] + overlay + base[endCol:]
		result := ansi.Cut(baseLine, 0, startCol) + overlayContent
		if endCol < width {
			result += ansi.Cut(baseLine, endCol, width)
		}

		baseLines[row] = result
	}

	return strings.Join(baseLines, "\n")
}
