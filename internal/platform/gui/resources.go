// Package gui runs the platformer in a window with Ebitengine, drawing the
// real sprite sheets when they are available.
package gui

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"path"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/platformer/internal/config"
)

// Resources loads and caches asset images.
// A missing or undecodable image is replaced by a flat placeholder so the
// game stays playable without its art. Not safe for concurrent use; the
// Ebitengine loop is single threaded.
type Resources struct {
	files  fs.FS
	images map[string]*ebiten.Image
	failed map[string]bool
	logger *log.Logger
}

// NewResources creates a resource cache reading from files.
func NewResources(files fs.FS, logger *log.Logger) *Resources {
	return &Resources{
		files:  files,
		images: make(map[string]*ebiten.Image),
		failed: make(map[string]bool),
		logger: logger,
	}
}

// Image returns the image for an asset, or nil when only a placeholder
// can be drawn.
func (r *Resources) Image(asset config.Asset) *ebiten.Image {
	if img, ok := r.images[asset.Name]; ok {
		return img
	}
	if r.failed[asset.Name] {
		return nil
	}

	img, err := r.load(asset)
	if err != nil {
		r.failed[asset.Name] = true
		r.logger.Warn("using placeholder", "asset", asset.Name, "error", err)
		return nil
	}
	r.images[asset.Name] = img
	return img
}

// Preload loads every asset of the manifest up front and returns how many
// fell back to placeholders.
func (r *Resources) Preload(assets []config.Asset) int {
	missing := 0
	for _, a := range assets {
		if r.Image(a) == nil {
			missing++
		}
	}
	return missing
}

func (r *Resources) load(asset config.Asset) (*ebiten.Image, error) {
	if asset.Path == "" {
		return nil, fmt.Errorf("gui: asset %q has no path", asset.Name)
	}

	file, err := r.files.Open(path.Clean(asset.Path))
	if err != nil {
		return nil, fmt.Errorf("gui: failed to open %s: %w", asset.Path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("gui: failed to decode %s: %w", asset.Path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// placeholderColor picks a flat colour standing in for an asset.
func placeholderColor(name string) color.RGBA {
	switch name {
	case config.AssetBackground:
		return color.RGBA{R: 178, G: 214, B: 240, A: 255}
	case config.AssetHills:
		return color.RGBA{R: 110, G: 170, B: 110, A: 160}
	case config.AssetPlatform, config.AssetPlatformSmallTall:
		return color.RGBA{R: 140, G: 90, B: 50, A: 255}
	case config.AssetStandLeft, config.AssetStandRight, config.AssetRunLeft, config.AssetRunRight:
		return color.RGBA{R: 220, G: 50, B: 50, A: 255}
	default:
		return color.RGBA{R: 255, G: 0, B: 255, A: 255}
	}
}
