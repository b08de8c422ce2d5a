package core

// Color names what a screen cell shows. Hosts map each role to a real
// terminal colour, so games never deal in ANSI codes.
type Color uint8

// Scene colour roles.
const (
	ColorDefault Color = iota
	ColorSky
	ColorHill
	ColorGrass
	ColorGround
	ColorActor
	// ColorBanner highlights the win message.
	ColorBanner
	// ColorUnknown marks assets without a terminal rendition.
	ColorUnknown
)
