package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/mysterious-jump/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawTextColored(2, 0, "GAME", core.ColorRed)
	s.DrawTextColored(6, 0, "OVER", core.ColorBrightWhite)
	s.DrawTextColored(0, 2, "~~", core.ColorDarkGray)

	out := RenderScreen(s)
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("rendered %d line breaks, expected 2", n)
	}
	for _, want := range []string{"GAME", "OVER", "~~"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestEveryPaletteColorHasAStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorBlack; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}
