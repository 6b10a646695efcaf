package demo

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/sheets/internal/layout"
	"github.com/llehouerou/sheets/internal/scroll"
	"github.com/llehouerou/sheets/internal/sheet"
	"github.com/llehouerou/sheets/internal/ui"
	"github.com/llehouerou/sheets/internal/ui/render"
	"github.com/llehouerou/sheets/internal/ui/styles"
)

// Place is a row of the places list.
type Place struct {
	Name     string
	Distance float64 // meters
}

var kinds = []string{"Café", "Pier", "Library", "Bakery", "Museum", "Park", "Market", "Station"}

// NearbyPlaces returns n places sorted by distance.
func NearbyPlaces(n int) []Place {
	places := make([]Place, n)
	for i := range places {
		places[i] = Place{
			Name:     fmt.Sprintf("%s %d", kinds[i%len(kinds)], i/len(kinds)+1),
			Distance: float64(120 + i*i*35),
		}
	}
	return places
}

// Places is a scrolling list of places. It hands its surface to the sheet,
// so drags scroll the list until it reaches the top.
type Places struct {
	ui.Base
	places  []Place
	surface *scroll.Surface
	scale   float64
}

var _ sheet.Scroller = (*Places)(nil)

// NewPlaces creates the list. scale is the container's points per row.
func NewPlaces(places []Place, scale float64) *Places {
	return &Places{
		places:  places,
		surface: scroll.New(0, 0, scale),
		scale:   scale,
	}
}

func (p *Places) Init() tea.Cmd { return nil }

// Surface implements sheet.Scroller.
func (p *Places) Surface() *scroll.Surface { return p.surface }

// Update scrolls with the keyboard.
func (p *Places) Update(msg tea.Msg) (sheet.Content, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	rows := 0
	switch key.String() {
	case "j", "down":
		rows = 1
	case "k", "up":
		rows = -1
	case "pgdown", "ctrl+d":
		rows = max(1, p.Height()-1)
	case "pgup", "ctrl+u":
		rows = -max(1, p.Height()-1)
	case "g", "home":
		p.surface.SetOffset(0)
		return p, nil
	case "G", "end":
		p.surface.SetOffset(p.surface.MaxOffset())
		return p, nil
	}
	if rows != 0 {
		offset := p.surface.Offset() + layout.Points(rows, p.scale)
		p.surface.SetOffset(max(0, min(offset, p.surface.MaxOffset())))
	}
	return p, nil
}

func (p *Places) View() string {
	return p.surface.View()
}

// SetSize lays the rows out for the new width.
func (p *Places) SetSize(width, height int) {
	resized := width != p.Width()
	p.Base.SetSize(width, height)
	p.surface.SetSize(width, height)
	if resized {
		p.surface.SetContent(p.render(width - 1))
	}
}

func (p *Places) render(width int) string {
	muted := styles.T().S().Muted
	lines := make([]string, len(p.places))
	for i, pl := range p.places {
		dist := humanize.SIWithDigits(pl.Distance, 1, "m")
		name := render.Truncate(pl.Name, max(0, width-len(dist)-1))
		lines[i] = render.Row(name, muted.Render(dist), width)
	}
	return strings.Join(lines, "\n")
}
