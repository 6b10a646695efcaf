// Package dimming renders the backdrop behind a sheet and animates how
// strongly it is dimmed while the sheet moves.
package dimming

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/llehouerou/sheets/internal/ui/styles"
)

// MaxAlpha is the strongest dimming applied to the background.
const MaxAlpha = 0.5

// Background is drawn behind the sheet stack.
type Background interface {
	// ApplyBackground attaches the effect. Until then Render is a no-op.
	ApplyBackground()
	// ClearBackground detaches the effect.
	ClearBackground()
	// SetIntensity sets the effect strength, 0 (none) to 1 (full).
	SetIntensity(v float64)
	// Intensity returns the current strength.
	Intensity() float64
	// Render applies the effect to the rendered base view.
	Render(base string, width, height int) string
}

// Kind names a Background implementation.
type Kind string

const (
	KindDimming Kind = "dimming"
	KindBlurred Kind = "blurred"
	KindNone    Kind = "none"
)

// New returns the background for kind. Unknown kinds dim.
func New(kind Kind) Background {
	switch kind {
	case KindBlurred:
		return &BlurredBackground{}
	case KindNone:
		return &NoBackground{}
	default:
		return &DimmingBackground{}
	}
}

type effect struct {
	applied   bool
	intensity float64
}

func (e *effect) ApplyBackground() { e.applied = true }
func (e *effect) ClearBackground() {
	e.applied = false
	e.intensity = 0
}
func (e *effect) SetIntensity(v float64) { e.intensity = max(0, min(v, 1)) }
func (e *effect) Intensity() float64 { return e.intensity }
func (e *effect) active() bool { return e.applied && e.intensity > 0 }

// DimmingBackground fades the base view towards the scrim color.
type DimmingBackground struct {
	effect
}

// Render implements Background.
func (d *DimmingBackground) Render(base string, width, height int) string {
	if !d.active() {
		return base
	}
	t := styles.T()
	style := lipgloss.NewStyle().
		Foreground(styles.Blend(t.FgBase, t.Scrim, MaxAlpha*d.intensity))
	return mapLines(base, width, height, func(line string) string {
		return style.Render(ansi.Strip(line))
	})
}

// BlurredBackground replaces base glyphs with shade blocks whose density
// follows the intensity.
type BlurredBackground struct {
	effect
}

var shades = []string{"·", "░", "▒", "▓"}

// Render implements Background.
func (b *BlurredBackground) Render(base string, width, height int) string {
	if !b.active() {
		return base
	}
	level := min(int(b.intensity*float64(len(shades))), len(shades)-1)
	glyph := shades[level]
	t := styles.T()
	style := lipgloss.NewStyle().
		Foreground(styles.Blend(t.FgSubtle, t.Scrim, MaxAlpha*b.intensity))
	return mapLines(base, width, height, func(line string) string {
		var sb strings.Builder
		gr := uniseg.NewGraphemes(ansi.Strip(line))
		for gr.Next() {
			cluster := gr.Str()
			w := runewidth.StringWidth(cluster)
			if strings.TrimSpace(cluster) == "" {
				sb.WriteString(strings.Repeat(" ", max(w, 1)))
				continue
			}
			sb.WriteString(strings.Repeat(glyph, w))
		}
		return style.Render(sb.String())
	})
}

// NoBackground leaves the base view untouched.
type NoBackground struct {
	effect
}

// Render implements Background.
func (*NoBackground) Render(base string, _, _ int) string { return base }

// mapLines applies fn to the first height lines of base, padding lines to
// width first so the effect covers the whole row.
func mapLines(base string, width, height int, fn func(string) string) string {
	lines := strings.Split(base, "\n")
	for i, line := range lines {
		if height > 0 && i >= height {
			break
		}
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		lines[i] = fn(line)
	}
	return strings.Join(lines, "\n")
}
