package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Viewport: ViewportConfig{Width: 1024, Height: 576},
		Physics:  PhysicsConfig{Gravity: 0.5},
		Player: PlayerConfig{
			StartX:      100,
			StartY:      100,
			Speed:       10,
			JumpImpulse: 15,
		},
		Scroll: ScrollConfig{
			LeftBound:  100,
			RightBound: 400,
			Parallax:   0.66,
		},
		Jump: JumpConfig{
			Epsilon:   0.5,
			Nudge:     1,
			Tolerance: 0,
		},
		Sprites: SpritesConfig{
			Stand: SpriteSheet{
				Left:          AssetStandLeft,
				Right:         AssetStandRight,
				CropWidth:     177,
				CropHeight:    400,
				DisplayWidth:  66,
				DisplayHeight: 150,
				FrameLimit:    59,
			},
			Run: SpriteSheet{
				Left:          AssetRunLeft,
				Right:         AssetRunRight,
				CropWidth:     341,
				CropHeight:    400,
				DisplayWidth:  127.875,
				DisplayHeight: 150,
				FrameLimit:    29,
			},
		},
		Assets: []Asset{
			{Name: AssetBackground, Path: "images/background.png", Width: 11643, Height: 732},
			{Name: AssetHills, Path: "images/hills.png", Width: 7545, Height: 592},
			{Name: AssetPlatform, Path: "images/platform.png", Width: 580, Height: 125},
			{Name: AssetPlatformSmallTall, Path: "images/platformSmallTall.png", Width: 291, Height: 227},
			{Name: AssetStandLeft, Path: "images/spriteStandLeft.png", Width: 10620, Height: 400},
			{Name: AssetStandRight, Path: "images/spriteStandRight.png", Width: 10620, Height: 400},
			{Name: AssetRunLeft, Path: "images/spriteRunLeft.png", Width: 10230, Height: 400},
			{Name: AssetRunRight, Path: "images/spriteRunRight.png", Width: 10230, Height: 400},
		},
		Level: LevelConfig{
			Gap:          225,
			PlatformTrim: 2,
			SlotAsset:    AssetPlatform,
			WinSlots:     6,
			Platforms: []PlatformSpec{
				{Asset: AssetPlatform, Slot: 0, Gaps: 0, DX: -1, Y: 460}, // -1 hides the left edge
				{Asset: AssetPlatform, Slot: 1, Gaps: 1, Y: 460},
				{Asset: AssetPlatform, Slot: 2, Gaps: 0, Y: 460},
				{Asset: AssetPlatform, Slot: 3, Gaps: 1, Y: 460},
				{Asset: AssetPlatformSmallTall, Slot: 4, Gaps: 2, Y: 234, Align: "right"},
				{Asset: AssetPlatform, Slot: 5, Gaps: 3, Y: 234},
				{Asset: AssetPlatform, Slot: 6, Gaps: 3, Y: 460},
				{Asset: AssetPlatform, Slot: 7, Gaps: 4, DX: -50, Y: 336},
			},
			Backgrounds: []BackgroundSpec{
				{Asset: AssetBackground, X: -1, Y: -1},
				{Asset: AssetHills, X: -1, Y: -1},
			},
		},
		Input: InputConfig{
			HoldMS:   550,
			TickRate: 60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
