// Package testutil provides common testing utilities for UI components
// and a harness driving sheets without timers.
package testutil

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StripANSI removes ANSI escape codes from a string for easier testing.
// This allows comparing rendered output without style interference.
func StripANSI(s string) string {
	re := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return re.ReplaceAllString(s, "")
}

// MeasureWidth returns the visual width of a string, accounting for
// wide characters (CJK, emoji) and stripping ANSI codes.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// FindLine returns the first line containing the given substring, or empty string.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}
