package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawRect(core.NewRect(0, 0, 1, 3), BlockChar, core.ColorWhite)
	s.Set(6, 1, BallChar, core.ColorWhite)
	s.DrawText(4, 2, "1 - 0", core.ColorBrightWhite)

	got := ansi.Strip(RenderScreen(s))
	if got != s.String() {
		t.Errorf("stripped render = %q, want %q", got, s.String())
	}
}

func TestRenderScreenUnknownColor(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.Set(1, 0, 'x', core.Color(200))

	if got := ansi.Strip(RenderScreen(s)); got != " x " {
		t.Errorf("render = %q, want %q", got, " x ")
	}
}
