package headerbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var tabs = []Tab{{"1", "half"}, {"2", "fitting"}, {"3", "list"}}

func TestRender(t *testing.T) {
	got := Render(tabs, "", 60)

	if w := lipgloss.Width(got); w != 60 {
		t.Errorf("width = %d, want 60", w)
	}
	plain := ansi.Strip(got)
	if !strings.HasPrefix(plain, "sheets") {
		t.Errorf("header = %q, want the title first", plain)
	}
	if !strings.HasSuffix(plain, "1 half │ 2 fitting │ 3 list") {
		t.Errorf("header = %q, want the tabs right aligned", plain)
	}
}

func TestRender_TooNarrow(t *testing.T) {
	if got := Render(tabs, "", 10); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}

func TestRender_DropsTitleWhenCrowded(t *testing.T) {
	got := ansi.Strip(Render(tabs, "list", 28))

	if strings.Contains(got, "sheets") {
		t.Errorf("header = %q, want the title dropped", got)
	}
	if lipgloss.Width(got) > 28 {
		t.Errorf("width = %d, want at most 28", lipgloss.Width(got))
	}
}
