package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyBoldGradient renders bold text with a horizontal color gradient.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	// Split into grapheme clusters for proper unicode handling
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) == 0 {
		return ""
	}

	if len(clusters) == 1 {
		return lipgloss.NewStyle().Foreground(from).Bold(true).Render(text)
	}

	// Blend colors across the text
	colors := blendColors(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(colorToHex(colors[i]))).Bold(true)
		b.WriteString(style.Render(cluster))
	}

	return b.String()
}

// blendColors returns a slice of colors blended between from and to.
// Blending is done in HCL color space for perceptually uniform transitions.
func blendColors(size int, from, to lipgloss.Color) []color.Color {
	if size < 2 {
		return []color.Color{from}
	}

	c1, _ := colorful.MakeColor(lipglossToColor(from))
	c2, _ := colorful.MakeColor(lipglossToColor(to))

	colors := make([]color.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		colors[i] = c1.BlendHcl(c2, t)
	}

	return colors
}

// Blend mixes from towards to by t in RGB space, clamping t to [0, 1].
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	t = max(0, min(t, 1))
	c1, _ := colorful.MakeColor(lipglossToColor(from))
	c2, _ := colorful.MakeColor(lipglossToColor(to))
	return lipgloss.Color(c1.BlendRgb(c2, t).Clamped().Hex())
}

// lipglossToColor converts a lipgloss.Color to a color.Color.
func lipglossToColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		col, err := colorful.Hex(hex)
		if err == nil {
			return col
		}
	}
	// Fallback for ANSI colors - return a neutral gray
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

// colorToHex converts a color.Color to a hex string.
func colorToHex(c color.Color) string {
	cf, ok := c.(colorful.Color)
	if ok {
		return cf.Hex()
	}
	r, g, b, _ := c.RGBA()
	return colorful.Color{
		R: float64(r) / 65535.0,
		G: float64(g) / 65535.0,
		B: float64(b) / 65535.0,
	}.Hex()
}
