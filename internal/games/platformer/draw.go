package platformer

import (
	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/core"
)

// Surface is anything that can blit part of an image.
// src is in the asset's pixel space, dst in world space.
type Surface interface {
	DrawImage(asset config.Asset, src, dst core.Rect)
}

// DrawCall is one recorded DrawImage call.
type DrawCall struct {
	Asset config.Asset
	Src   core.Rect
	Dst   core.Rect
}

// drawBody records a whole-image blit of a static body.
func drawBody(b StaticBody) DrawCall {
	return DrawCall{
		Asset: b.Asset,
		Src:   core.NewRect(0, 0, b.Asset.Width, b.Asset.Height),
		Dst:   b.Rect(),
	}
}

// captureFrame records the frame back to front: scenery, platforms, actor.
func (w *World) captureFrame() {
	calls := w.frame[:0]
	for _, b := range w.Backgrounds {
		calls = append(calls, drawBody(b))
	}
	for _, p := range w.Platforms {
		calls = append(calls, drawBody(p))
	}
	v := w.table.Variant(w.Actor.State)
	calls = append(calls, DrawCall{
		Asset: v.Asset,
		Src:   SourceRect(&w.Actor, w.table),
		Dst:   w.Actor.Rect(),
	})
	w.frame = calls
}

// Frame returns the draw calls captured during the last tick.
// The slice is reused by the next tick.
func (w *World) Frame() []DrawCall {
	return w.frame
}

// DrawTo replays the last captured frame onto a surface.
func (w *World) DrawTo(s Surface) {
	for _, c := range w.frame {
		s.DrawImage(c.Asset, c.Src, c.Dst)
	}
}
