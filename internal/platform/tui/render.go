package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/platformer/internal/core"
)

// palette maps colour roles to 256-colour terminal codes.
var palette = [...]lipgloss.Color{
	core.ColorDefault: "",
	core.ColorSky:     "4",
	core.ColorHill:    "2",
	core.ColorGrass:   "10",
	core.ColorGround:  "130",
	core.ColorActor:   "9",
	core.ColorBanner:  "11",
	core.ColorUnknown: "245",
}

// styles is built once from the palette.
var styles = func() []lipgloss.Style {
	s := make([]lipgloss.Style, len(palette))
	for i, c := range palette {
		s[i] = lipgloss.NewStyle()
		if c != "" {
			s[i] = s[i].Foreground(c)
		}
	}
	return s
}()

// styleFor returns the style for a colour, falling back to the default.
func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(styles) {
		return styles[c]
	}
	return styles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same colour share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
