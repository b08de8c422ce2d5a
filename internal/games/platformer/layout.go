package platformer

import "github.com/vovakirdan/platformer/internal/config"

// BuildLevel places the configured platforms and scenery layers at their
// unscrolled positions.
func BuildLevel(cfg config.PlatformerConfig) (platforms, backgrounds []StaticBody) {
	platforms = make([]StaticBody, 0, len(cfg.Level.Platforms))
	for _, spec := range cfg.Level.Platforms {
		asset, _ := cfg.Asset(spec.Asset)
		platforms = append(platforms, NewStaticBody(asset, cfg.PlatformX(spec), spec.Y))
	}

	backgrounds = make([]StaticBody, 0, len(cfg.Level.Backgrounds))
	for _, spec := range cfg.Level.Backgrounds {
		asset, _ := cfg.Asset(spec.Asset)
		backgrounds = append(backgrounds, NewStaticBody(asset, spec.X, spec.Y))
	}
	return platforms, backgrounds
}
