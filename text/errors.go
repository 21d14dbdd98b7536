package text

import "errors"

// Sentinel errors for the text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNilSource is returned when a layout is requested without a
	// font source.
	ErrNilSource = errors.New("text: nil font source")

	// ErrNoFont is returned by resolvers that cannot produce any font
	// for a description, not even a fallback.
	ErrNoFont = errors.New("text: no usable font")
)
