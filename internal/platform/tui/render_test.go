package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/platformer/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '#', core.ColorGround)
	s.SetColored(3, 0, '#', core.ColorGround)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(out, "##") {
		t.Error("same-colour cells should be rendered together")
	}
	if !strings.Contains(lines[1], "xyz") {
		t.Errorf("second row = %q", lines[1])
	}
}

func TestStyleForUnknownColour(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown colours should render unstyled, got %q", got)
	}
}
