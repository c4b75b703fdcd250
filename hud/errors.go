package hud

import "errors"

// Sentinel errors for the hud package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("hud: empty font data")

	// ErrInvalidSize is returned when the HUD width or height is not positive.
	ErrInvalidSize = errors.New("hud: width and height must be positive")

	// ErrNilFont is returned when a HUD is created without a font.
	ErrNilFont = errors.New("hud: font is nil")
)
