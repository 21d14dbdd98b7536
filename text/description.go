package text

import (
	"fmt"
	"strconv"
	"strings"
)

// FontDescription identifies a font by family, style and point size,
// parsed from strings such as "JetBrains Mono Bold 10" or "monospace".
// The zero value means "whatever the backend considers default".
type FontDescription struct {
	Family string
	Style  string
	Size   float64
}

// styleWords are the tokens recognised as style modifiers at the end of
// a description, lowercased.
var styleWords = map[string]bool{
	"thin":       true,
	"extralight": true,
	"ultralight": true,
	"light":      true,
	"regular":    true,
	"normal":     true,
	"medium":     true,
	"semibold":   true,
	"demibold":   true,
	"bold":       true,
	"extrabold":  true,
	"ultrabold":  true,
	"black":      true,
	"heavy":      true,
	"italic":     true,
	"oblique":    true,
}

// ParseDescription parses a font description string. It never fails:
// anything unrecognised is kept as the family name and resolved (or
// fallen back from) lazily at use time.
//
// Grammar, loosely: "<family> [<style words>] [<size>]". A trailing
// number is the point size; trailing style words before it become the
// style; everything else is the family.
func ParseDescription(s string) FontDescription {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return FontDescription{}
	}

	var d FontDescription

	// Trailing number is the point size.
	if size, err := strconv.ParseFloat(fields[len(fields)-1], 64); err == nil && len(fields) > 1 {
		d.Size = size
		fields = fields[:len(fields)-1]
	}

	// Peel style words off the end.
	var style []string
	for len(fields) > 1 && styleWords[strings.ToLower(fields[len(fields)-1])] {
		style = append([]string{fields[len(fields)-1]}, style...)
		fields = fields[:len(fields)-1]
	}

	d.Style = strings.Join(style, " ")
	d.Family = strings.Join(fields, " ")
	return d
}

// WithSize returns a copy of the description scaled to the given point
// size.
func (d FontDescription) WithSize(points float64) FontDescription {
	d.Size = points
	return d
}

// String formats the description back into its parseable form.
func (d FontDescription) String() string {
	parts := make([]string, 0, 3)
	if d.Family != "" {
		parts = append(parts, d.Family)
	}
	if d.Style != "" {
		parts = append(parts, d.Style)
	}
	if d.Size > 0 {
		parts = append(parts, strconv.FormatFloat(d.Size, 'g', -1, 64))
	}
	if len(parts) == 0 {
		return "<default>"
	}
	return strings.Join(parts, " ")
}

// key is the cache key for resolved descriptions: size is excluded
// because resolution picks a file, not a scaled instance.
func (d FontDescription) key() string {
	return fmt.Sprintf("%s|%s", strings.ToLower(d.Family), strings.ToLower(d.Style))
}
