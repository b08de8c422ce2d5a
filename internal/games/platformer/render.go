package platformer

import (
	"math"

	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/core"
)

// Visual characters for rendering
const (
	StarChar     = '·'
	HillTopChar  = '^'
	HillChar     = '░'
	GrassChar    = '▀'
	GroundChar   = '█'
	UnknownChar  = '▒'
	HeadChar     = 'O'
	BodyChar     = '█'
	ArmChar      = '-'
	LegLeftChar  = '/'
	LegRightChar = '\\'
	LegChar      = '|'
)

// ScreenSurface rasterizes draw calls into a character screen, scaling the
// world viewport to fit the screen.
type ScreenSurface struct {
	dst   *core.Screen
	cols  float64
	rows  float64
	viewW float64
	viewH float64
}

// NewScreenSurface creates a surface mapping a viewW x viewH world onto dst.
func NewScreenSurface(dst *core.Screen, viewW, viewH float64) *ScreenSurface {
	return &ScreenSurface{
		dst:   dst,
		cols:  float64(dst.Width()),
		rows:  float64(dst.Height()),
		viewW: viewW,
		viewH: viewH,
	}
}

// toCol and toRow map world coordinates to fractional cell coordinates.
func (s *ScreenSurface) toCol(x float64) float64 { return x * s.cols / s.viewW }
func (s *ScreenSurface) toRow(y float64) float64 { return y * s.rows / s.viewH }

// cellSpan maps a world rect to the half-open cell range it covers.
// Every non-empty rect covers at least one cell.
func (s *ScreenSurface) cellSpan(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(s.toCol(r.Left())))
	y0 = int(math.Floor(s.toRow(r.Top())))
	x1 = int(math.Ceil(s.toCol(r.Right())))
	y1 = int(math.Ceil(s.toRow(r.Bottom())))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// worldX returns the world x coordinate at the centre of a cell column.
func (s *ScreenSurface) worldX(col int) float64 {
	return (float64(col) + 0.5) * s.viewW / s.cols
}

// worldY returns the world y coordinate at the centre of a cell row.
func (s *ScreenSurface) worldY(row int) float64 {
	return (float64(row) + 0.5) * s.viewH / s.rows
}

// DrawImage draws a stand-in for the asset over dst.
func (s *ScreenSurface) DrawImage(asset config.Asset, src, dst core.Rect) {
	switch asset.Name {
	case config.AssetBackground:
		s.drawSky(dst)
	case config.AssetHills:
		s.drawHills(dst)
	case config.AssetPlatform, config.AssetPlatformSmallTall:
		s.drawPlatform(dst)
	case config.AssetStandLeft, config.AssetStandRight, config.AssetRunLeft, config.AssetRunRight:
		s.drawActor(asset.Name, src, dst)
	default:
		x0, y0, x1, y1 := s.cellSpan(dst)
		s.dst.FillRect(x0, y0, x1-x0, y1-y0, UnknownChar, core.ColorUnknown)
	}
}

// drawSky scatters stars anchored to the image, so they follow the parallax.
func (s *ScreenSurface) drawSky(dst core.Rect) {
	x0, y0, x1, y1 := s.cellSpan(dst)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			u := int(math.Floor((s.worldX(col) - dst.X) / 32))
			v := int(math.Floor((s.worldY(row) - dst.Y) / 24))
			if (u*7+v*13)%23 == 0 {
				s.dst.SetColored(col, row, StarChar, core.ColorSky)
			}
		}
	}
}

// drawHills draws a rolling silhouette along the bottom of the layer.
func (s *ScreenSurface) drawHills(dst core.Rect) {
	x0, y0, x1, y1 := s.cellSpan(dst)
	for col := x0; col < x1; col++ {
		top := dst.Bottom() - hillHeight(s.worldX(col)-dst.X)
		topRow := core.Max(int(math.Floor(s.toRow(top))), y0)
		for row := topRow; row < y1; row++ {
			ch := HillChar
			if row == topRow {
				ch = HillTopChar
			}
			s.dst.SetColored(col, row, ch, core.ColorHill)
		}
	}
}

// hillHeight is a triangle wave over the layer's local x.
func hillHeight(x float64) float64 {
	const period, base, amp = 640.0, 150.0, 110.0
	phase := math.Mod(x, period)
	if phase < 0 {
		phase += period
	}
	tri := 1 - math.Abs(2*phase/period-1)
	return base + amp*tri
}

func (s *ScreenSurface) drawPlatform(dst core.Rect) {
	x0, y0, x1, y1 := s.cellSpan(dst)
	s.dst.FillRect(x0, y0, x1-x0, 1, GrassChar, core.ColorGrass)
	s.dst.FillRect(x0, y0+1, x1-x0, y1-y0-1, GroundChar, core.ColorGround)
}

// drawActor draws a stick figure. The pose follows the sprite frame
// selected by src, so the figure animates with the sheet.
func (s *ScreenSurface) drawActor(name string, src, dst core.Rect) {
	x0, y0, x1, y1 := s.cellSpan(dst)
	w, h := x1-x0, y1-y0
	mid := x0 + w/2
	color := core.ColorActor

	frame := 0
	if src.W > 0 {
		frame = int(src.X / src.W)
	}
	facingLeft := name == config.AssetStandLeft || name == config.AssetRunLeft
	running := name == config.AssetRunLeft || name == config.AssetRunRight

	s.dst.SetColored(mid, y0, HeadChar, color)
	if facingLeft {
		s.dst.SetColored(mid-1, y0, '<', color)
	} else {
		s.dst.SetColored(mid+1, y0, '>', color)
	}
	if h < 3 {
		return
	}

	for row := y0 + 1; row < y1-1; row++ {
		s.dst.SetColored(mid, row, BodyChar, color)
	}
	s.dst.SetColored(mid-1, y0+1, ArmChar, color)
	s.dst.SetColored(mid+1, y0+1, ArmChar, color)

	legs := y1 - 1
	stride := running && (frame/4)%2 == 1
	if stride {
		s.dst.SetColored(mid-1, legs, LegLeftChar, color)
		s.dst.SetColored(mid+1, legs, LegRightChar, color)
	} else {
		s.dst.SetColored(mid, legs, LegChar, color)
	}
}
