// Package layout holds the mutable sheet layout state and the pure
// functions converting between terminal cells and points.
package layout

import "math"

// DefaultPointsPerRow is the number of points one terminal row stands for.
const DefaultPointsPerRow = 16

// Rows converts a height in points to whole terminal rows, rounding to the
// nearest row. A non-positive scale falls back to DefaultPointsPerRow.
func Rows(points, scale float64) int {
	if points <= 0 {
		return 0
	}
	return int(math.Round(points / normalizeScale(scale)))
}

// Points converts terminal rows to points.
func Points(rows int, scale float64) float64 {
	return float64(rows) * normalizeScale(scale)
}

// ColumnPoints converts terminal columns to points. A cell is about twice as
// tall as it is wide, so a column counts as half a row.
func ColumnPoints(cols int, scale float64) float64 {
	return float64(cols) * normalizeScale(scale) / 2
}

// SheetTop calculates the 0-based row where a sheet of sheetRows starts
// when it sits on top of the keyboard at the bottom of the container.
// The result is never negative.
func SheetTop(containerRows, sheetRows, keyboardRows int) int {
	return max(0, containerRows-keyboardRows-sheetRows)
}

// VisibleRows returns how many of a sheet's rows fit in the container above
// the keyboard.
func VisibleRows(containerRows, sheetRows, keyboardRows int) int {
	return max(0, min(sheetRows, containerRows-keyboardRows))
}

func normalizeScale(scale float64) float64 {
	if scale <= 0 {
		return DefaultPointsPerRow
	}
	return scale
}
