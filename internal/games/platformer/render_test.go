package platformer

import (
	"testing"

	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/core"
)

func TestScreenSurfaceCellSpan(t *testing.T) {
	screen := core.NewScreen(80, 24)
	s := NewScreenSurface(screen, 1024, 576)

	tests := []struct {
		name           string
		rect           core.Rect
		x0, y0, x1, y1 int
	}{
		{"full viewport", core.NewRect(0, 0, 1024, 576), 0, 0, 80, 24},
		{"first platform", core.NewRect(-1, 460, 580, 125), -1, 19, 46, 25},
		{"standing actor", core.NewRect(100, 100, 66, 150), 7, 4, 13, 11},
		{"sub-cell rect", core.NewRect(1, 1, 1, 1), 0, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0, y0, x1, y1 := s.cellSpan(tt.rect)
			if x0 != tt.x0 || y0 != tt.y0 || x1 != tt.x1 || y1 != tt.y1 {
				t.Errorf("cellSpan = (%d,%d)-(%d,%d), expected (%d,%d)-(%d,%d)",
					x0, y0, x1, y1, tt.x0, tt.y0, tt.x1, tt.y1)
			}
		})
	}
}

func TestScreenSurfacePlatform(t *testing.T) {
	screen := core.NewScreen(80, 24)
	s := NewScreenSurface(screen, 1024, 576)
	asset := config.Asset{Name: config.AssetPlatform, Width: 580, Height: 125}

	s.DrawImage(asset, core.NewRect(0, 0, 580, 125), core.NewRect(-1, 460, 580, 125))

	if c := screen.GetCell(0, 19); c.Rune != GrassChar || c.Color != core.ColorGrass {
		t.Errorf("platform top = %+v, expected grass", c)
	}
	if c := screen.GetCell(10, 22); c.Rune != GroundChar || c.Color != core.ColorGround {
		t.Errorf("platform body = %+v, expected ground", c)
	}
	if screen.Get(60, 20) != ' ' {
		t.Error("nothing should be drawn past the platform")
	}
}

func TestScreenSurfaceActor(t *testing.T) {
	tests := []struct {
		name     string
		asset    string
		frame    int
		wantFace rune
		faceDX   int
		stride   bool
	}{
		{"standing right", config.AssetStandRight, 0, '>', 1, false},
		{"standing left", config.AssetStandLeft, 0, '<', -1, false},
		{"running right mid-stride", config.AssetRunRight, 4, '>', 1, true},
		{"running left feet together", config.AssetRunLeft, 0, '<', -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := core.NewScreen(80, 24)
			s := NewScreenSurface(screen, 1024, 576)
			asset := config.Asset{Name: tt.asset, Width: 10000, Height: 400}
			src := core.NewRect(float64(tt.frame)*100, 0, 100, 400)

			s.DrawImage(asset, src, core.NewRect(100, 100, 66, 150))

			// Cells 7..12 wide, rows 4..10
			mid := 7 + 6/2
			if screen.Get(mid, 4) != HeadChar {
				t.Errorf("head missing at (%d, 4): row %q", mid, screen.Row(4))
			}
			if screen.Get(mid+tt.faceDX, 4) != tt.wantFace {
				t.Errorf("facing marker missing: row %q", screen.Row(4))
			}
			legs := screen.Get(mid, 10)
			if tt.stride && (screen.Get(mid-1, 10) != LegLeftChar || screen.Get(mid+1, 10) != LegRightChar) {
				t.Errorf("expected a stride, row %q", screen.Row(10))
			}
			if !tt.stride && legs != LegChar {
				t.Errorf("expected legs together, row %q", screen.Row(10))
			}
		})
	}
}

func TestScreenSurfaceUnknownAsset(t *testing.T) {
	screen := core.NewScreen(10, 10)
	s := NewScreenSurface(screen, 100, 100)

	s.DrawImage(config.Asset{Name: "crate", Width: 20, Height: 20}, core.NewRect(0, 0, 20, 20), core.NewRect(0, 0, 20, 20))

	if c := screen.GetCell(1, 1); c.Rune != UnknownChar {
		t.Errorf("unknown assets should draw a placeholder, got %+v", c)
	}
}

func TestHillHeight(t *testing.T) {
	if got := hillHeight(0); got != 150 {
		t.Errorf("hillHeight(0) = %g, expected the base 150", got)
	}
	if got := hillHeight(320); got != 260 {
		t.Errorf("hillHeight(320) = %g, expected the peak 260", got)
	}
	if hillHeight(-100) != hillHeight(540) {
		t.Error("hill profile should repeat every period, also for negative x")
	}
}
