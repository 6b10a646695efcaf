// Package render provides text helpers for sheet contents and the status
// line.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters other than tab, so typed or pasted
// text cannot move the terminal cursor.
func Sanitize(s string) string {
	if strings.IndexFunc(s, isControl) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isControl(r) {
			return -1
		}
		return r
	}, s)
}

func isControl(r rune) bool {
	return r != '\t' && unicode.IsControl(r)
}

// Truncate shortens plain text to maxWidth cells with a single character
// ellipsis.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// TruncateStyled is Truncate for text carrying ANSI styling.
func TruncateStyled(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// Pad fills s with spaces to width cells. Styled text is measured without
// its escape sequences.
func Pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Row lays out left and right aligned parts on a line of width cells,
// keeping at least one space between them.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Center pads s on the left so it is centered in width cells.
func Center(s string, width int) string {
	if pad := (width - lipgloss.Width(s)) / 2; pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}
