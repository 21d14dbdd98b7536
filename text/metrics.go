package text

// Metrics holds font metrics at a specific size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font
	// (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the
	// font, stored as a positive value.
	Descent float64

	// Gap is the recommended extra spacing between lines.
	Gap float64
}

// LineHeight returns the logical height of a single line of text. This
// is the height callers see from measurement, so a bar segment sized by
// it fully encloses any rendered glyph.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent
}
