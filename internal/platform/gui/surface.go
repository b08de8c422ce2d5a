package gui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/core"
)

// Surface blits draw calls onto an Ebitengine image in world coordinates.
type Surface struct {
	target *ebiten.Image
	res    *Resources
	pixel  *ebiten.Image
}

// NewSurface creates a surface drawing onto target. pixel is a 1x1 white
// image used for placeholders.
func NewSurface(target *ebiten.Image, res *Resources, pixel *ebiten.Image) *Surface {
	return &Surface{target: target, res: res, pixel: pixel}
}

// DrawImage draws the src part of the asset scaled into dst.
func (s *Surface) DrawImage(asset config.Asset, src, dst core.Rect) {
	op := &ebiten.DrawImageOptions{}

	img := s.res.Image(asset)
	if img == nil {
		op.GeoM = placeholderTransform(dst)
		op.ColorScale.ScaleWithColor(placeholderColor(asset.Name))
		s.target.DrawImage(s.pixel, op)
		return
	}

	sub := img.SubImage(sourceBounds(src)).(*ebiten.Image)
	op.GeoM = blitTransform(src, dst)
	op.Filter = ebiten.FilterLinear
	s.target.DrawImage(sub, op)
}

// sourceBounds converts a source rect to integer image bounds.
func sourceBounds(src core.Rect) image.Rectangle {
	return image.Rect(int(src.X), int(src.Y), int(src.Right()), int(src.Bottom()))
}

// blitTransform maps the src-sized sub image onto dst.
func blitTransform(src, dst core.Rect) ebiten.GeoM {
	var m ebiten.GeoM
	if src.W > 0 && src.H > 0 {
		m.Scale(dst.W/src.W, dst.H/src.H)
	}
	m.Translate(dst.X, dst.Y)
	return m
}

// placeholderTransform stretches a 1x1 pixel over dst.
func placeholderTransform(dst core.Rect) ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(dst.W, dst.H)
	m.Translate(dst.X, dst.Y)
	return m
}
