// Package config provides the platformer's tunable configuration: physics,
// sprites, assets and level layout, loaded from YAML or TOML files with
// embedded defaults.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Asset names used by the default manifest.
const (
	AssetBackground        = "background"
	AssetHills             = "hills"
	AssetPlatform          = "platform"
	AssetPlatformSmallTall = "platform-small-tall"
	AssetStandLeft         = "stand-left"
	AssetStandRight        = "stand-right"
	AssetRunLeft           = "run-left"
	AssetRunRight          = "run-right"
)

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Viewport ViewportConfig `yaml:"viewport" toml:"viewport"`
	Physics  PhysicsConfig  `yaml:"physics" toml:"physics"`
	Player   PlayerConfig   `yaml:"player" toml:"player"`
	Scroll   ScrollConfig   `yaml:"scroll" toml:"scroll"`
	Jump     JumpConfig     `yaml:"jump" toml:"jump"`
	Sprites  SpritesConfig  `yaml:"sprites" toml:"sprites"`
	Assets   []Asset        `yaml:"assets" toml:"assets"`
	Level    LevelConfig    `yaml:"level" toml:"level"`
	Input    InputConfig    `yaml:"input" toml:"input"`
}

// ViewportConfig is the size of the world the player sees, in pixels.
type ViewportConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PhysicsConfig defines the world's physics constants.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity" toml:"gravity"`
}

// PlayerConfig defines the actor's spawn point and movement.
type PlayerConfig struct {
	StartX      float64 `yaml:"start_x" toml:"start_x"`
	StartY      float64 `yaml:"start_y" toml:"start_y"`
	Speed       float64 `yaml:"speed" toml:"speed"`
	JumpImpulse float64 `yaml:"jump_impulse" toml:"jump_impulse"`
}

// ScrollConfig defines the dead zone and the background parallax factor.
type ScrollConfig struct {
	LeftBound  float64 `yaml:"left_bound" toml:"left_bound"`
	RightBound float64 `yaml:"right_bound" toml:"right_bound"`
	Parallax   float64 `yaml:"parallax" toml:"parallax"`
}

// JumpConfig defines when a jump is allowed.
// A jump fires when the actor's bottom is within Tolerance of
// (platform top - Epsilon). Tolerance 0 requires exact equality.
type JumpConfig struct {
	Epsilon   float64 `yaml:"epsilon" toml:"epsilon"`
	Nudge     float64 `yaml:"nudge" toml:"nudge"`
	Tolerance float64 `yaml:"tolerance" toml:"tolerance"`
}

// SpritesConfig holds the two sprite sheet families.
type SpritesConfig struct {
	Stand SpriteSheet `yaml:"stand" toml:"stand"`
	Run   SpriteSheet `yaml:"run" toml:"run"`
}

// SpriteSheet describes a horizontal strip of animation frames.
type SpriteSheet struct {
	Left          string  `yaml:"left" toml:"left"`
	Right         string  `yaml:"right" toml:"right"`
	CropWidth     float64 `yaml:"crop_width" toml:"crop_width"`
	CropHeight    float64 `yaml:"crop_height" toml:"crop_height"`
	DisplayWidth  float64 `yaml:"display_width" toml:"display_width"`
	DisplayHeight float64 `yaml:"display_height" toml:"display_height"`
	FrameLimit    int     `yaml:"frame_limit" toml:"frame_limit"`
}

// Asset is an entry of the asset manifest. The simulation only uses the
// pixel size; hosts resolve Path to load the image.
type Asset struct {
	Name   string  `yaml:"name" toml:"name"`
	Path   string  `yaml:"path" toml:"path"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// LevelConfig describes the fixed level layout.
type LevelConfig struct {
	Gap          float64          `yaml:"gap" toml:"gap"`
	PlatformTrim float64          `yaml:"platform_trim" toml:"platform_trim"`
	SlotAsset    string           `yaml:"slot_asset" toml:"slot_asset"`
	WinSlots     int              `yaml:"win_slots" toml:"win_slots"`
	Platforms    []PlatformSpec   `yaml:"platforms" toml:"platforms"`
	Backgrounds  []BackgroundSpec `yaml:"backgrounds" toml:"backgrounds"`
}

// PlatformSpec places one platform on the slot grid.
// X = Slot*(slotWidth+Gap) - Gaps*Gap + DX, minus the platform's own width
// when Align is "right".
type PlatformSpec struct {
	Asset string  `yaml:"asset" toml:"asset"`
	Slot  int     `yaml:"slot" toml:"slot"`
	Gaps  int     `yaml:"gaps" toml:"gaps"`
	DX    float64 `yaml:"dx" toml:"dx"`
	Y     float64 `yaml:"y" toml:"y"`
	Align string  `yaml:"align,omitempty" toml:"align,omitempty"`
}

// BackgroundSpec places one scenery layer.
type BackgroundSpec struct {
	Asset string  `yaml:"asset" toml:"asset"`
	X     float64 `yaml:"x" toml:"x"`
	Y     float64 `yaml:"y" toml:"y"`
}

// InputConfig tunes how terminal hosts emulate key releases.
type InputConfig struct {
	HoldMS   int `yaml:"hold_ms" toml:"hold_ms"`
	TickRate int `yaml:"tick_rate" toml:"tick_rate"`
}

// Asset returns the manifest entry with the given name.
func (c PlatformerConfig) Asset(name string) (Asset, bool) {
	for _, a := range c.Assets {
		if a.Name == name {
			return a, true
		}
	}
	return Asset{}, false
}

// Validate rejects configurations the simulation cannot run with.
// Every returned error wraps ErrInvalid.
func (c PlatformerConfig) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("%w: viewport must be positive, got %gx%g", ErrInvalid, c.Viewport.Width, c.Viewport.Height)
	}
	if c.Physics.Gravity < 0 {
		return fmt.Errorf("%w: physics.gravity must not be negative", ErrInvalid)
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("%w: player.speed must be positive", ErrInvalid)
	}
	if c.Scroll.LeftBound >= c.Scroll.RightBound {
		return fmt.Errorf("%w: scroll.left_bound (%g) must be below scroll.right_bound (%g)",
			ErrInvalid, c.Scroll.LeftBound, c.Scroll.RightBound)
	}
	if c.Jump.Tolerance < 0 {
		return fmt.Errorf("%w: jump.tolerance must not be negative", ErrInvalid)
	}
	if c.Input.TickRate <= 0 {
		return fmt.Errorf("%w: input.tick_rate must be positive", ErrInvalid)
	}

	seen := make(map[string]bool, len(c.Assets))
	for _, a := range c.Assets {
		if a.Name == "" {
			return fmt.Errorf("%w: asset with empty name", ErrInvalid)
		}
		if seen[a.Name] {
			return fmt.Errorf("%w: duplicate asset %q", ErrInvalid, a.Name)
		}
		if a.Width <= 0 || a.Height <= 0 {
			return fmt.Errorf("%w: asset %q must have a positive size", ErrInvalid, a.Name)
		}
		seen[a.Name] = true
	}

	sheets := []struct {
		name  string
		sheet SpriteSheet
	}{{"stand", c.Sprites.Stand}, {"run", c.Sprites.Run}}
	for _, s := range sheets {
		name, sheet := s.name, s.sheet
		if !seen[sheet.Left] || !seen[sheet.Right] {
			return fmt.Errorf("%w: sprites.%s references an unknown asset", ErrInvalid, name)
		}
		if sheet.CropWidth <= 0 || sheet.CropHeight <= 0 || sheet.DisplayWidth <= 0 || sheet.DisplayHeight <= 0 {
			return fmt.Errorf("%w: sprites.%s sizes must be positive", ErrInvalid, name)
		}
		if sheet.FrameLimit < 0 {
			return fmt.Errorf("%w: sprites.%s.frame_limit must not be negative", ErrInvalid, name)
		}
	}

	if !seen[c.Level.SlotAsset] {
		return fmt.Errorf("%w: level.slot_asset %q is not in the manifest", ErrInvalid, c.Level.SlotAsset)
	}
	if c.Level.Gap < 0 {
		return fmt.Errorf("%w: level.gap must not be negative", ErrInvalid)
	}
	if len(c.Level.Platforms) == 0 {
		return fmt.Errorf("%w: level has no platforms", ErrInvalid)
	}
	for i, p := range c.Level.Platforms {
		if !seen[p.Asset] {
			return fmt.Errorf("%w: level.platforms[%d] asset %q is not in the manifest", ErrInvalid, i, p.Asset)
		}
		if p.Align != "" && p.Align != "left" && p.Align != "right" {
			return fmt.Errorf("%w: level.platforms[%d] align must be left or right, got %q", ErrInvalid, i, p.Align)
		}
	}
	for i, b := range c.Level.Backgrounds {
		if !seen[b.Asset] {
			return fmt.Errorf("%w: level.backgrounds[%d] asset %q is not in the manifest", ErrInvalid, i, b.Asset)
		}
	}
	return nil
}

// SlotWidth is the platform pitch used by the layout grid: the slot
// asset's width minus the trim.
func (c PlatformerConfig) SlotWidth() float64 {
	a, _ := c.Asset(c.Level.SlotAsset)
	return a.Width - c.Level.PlatformTrim
}

// PlatformX resolves the horizontal position of a platform spec.
func (c PlatformerConfig) PlatformX(p PlatformSpec) float64 {
	x := float64(p.Slot)*(c.SlotWidth()+c.Level.Gap) - float64(p.Gaps)*c.Level.Gap + p.DX
	if p.Align == "right" {
		a, _ := c.Asset(p.Asset)
		x -= a.Width
	}
	return x
}

// WinThreshold is the scroll offset past which the level counts as complete.
// It uses the untrimmed slot asset width.
func (c PlatformerConfig) WinThreshold() float64 {
	a, _ := c.Asset(c.Level.SlotAsset)
	return float64(c.Level.WinSlots)*(a.Width+c.Level.Gap) - c.Level.Gap
}
