package ui

// Base provides size bookkeeping for sheet contents. Embed it to get
// SetSize and the accessors.
//
//	type Model struct {
//	    ui.Base
//	    lines []string
//	}
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// Sized reports whether the component has room to render.
func (b Base) Sized() bool {
	return b.width > 0 && b.height > 0
}
