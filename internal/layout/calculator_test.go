package layout

import "testing"

func TestRows(t *testing.T) {
	tests := []struct {
		name   string
		points float64
		scale  float64
		want   int
	}{
		{"zero", 0, 16, 0},
		{"negative", -40, 16, 0},
		{"exact", 64, 16, 4},
		{"rounds down", 71, 16, 4},
		{"rounds up", 73, 16, 5},
		{"default scale", 32, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rows(tt.points, tt.scale)
			if got != tt.want {
				t.Errorf("Rows(%v, %v) = %d, want %d", tt.points, tt.scale, got, tt.want)
			}
		})
	}
}

func TestPoints(t *testing.T) {
	if got := Points(3, 16); got != 48 {
		t.Errorf("Points(3, 16) = %v, want 48", got)
	}
	if got := Points(2, -1); got != 32 {
		t.Errorf("Points(2, -1) = %v, want 32", got)
	}
	if got := ColumnPoints(10, 16); got != 80 {
		t.Errorf("ColumnPoints(10, 16) = %v, want 80", got)
	}
}

func TestSheetTop(t *testing.T) {
	tests := []struct {
		container, sheet, keyboard int
		want                       int
	}{
		{40, 10, 0, 30},
		{40, 10, 8, 22},
		{40, 40, 0, 0},
		{40, 50, 0, 0},
		{40, 10, 35, 0},
	}

	for _, tt := range tests {
		got := SheetTop(tt.container, tt.sheet, tt.keyboard)
		if got != tt.want {
			t.Errorf("SheetTop(%d, %d, %d) = %d, want %d",
				tt.container, tt.sheet, tt.keyboard, got, tt.want)
		}
	}
}

func TestVisibleRows(t *testing.T) {
	if got := VisibleRows(40, 10, 0); got != 10 {
		t.Errorf("VisibleRows = %d, want 10", got)
	}
	if got := VisibleRows(40, 38, 8); got != 32 {
		t.Errorf("VisibleRows = %d, want 32", got)
	}
	if got := VisibleRows(5, 10, 8); got != 0 {
		t.Errorf("VisibleRows = %d, want 0", got)
	}
}
