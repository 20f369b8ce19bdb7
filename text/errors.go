package text

import "errors"

// Sentinel errors for the text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontNotLoaded is returned or wrapped when an operation references
	// a font id with no loaded entry.
	ErrFontNotLoaded = errors.New("text: font not loaded")
)
