package draw

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque color with red, green and blue components.
// Each component is in the range [0, 1].
type Color struct {
	R, G, B float64
}

// ColorFromHex creates a color from a packed 0xRRGGBB integer.
// Red occupies bits 16-23, green bits 8-15 and blue bits 0-7.
// Bits above 23 are ignored, so any 32-bit input is accepted.
func ColorFromHex(hex uint32) Color {
	return Color{
		R: float64((hex&0xFF0000)>>16) / 255,
		G: float64((hex&0x00FF00)>>8) / 255,
		B: float64(hex&0x0000FF) / 255,
	}
}

// RGB returns the red, green and blue components.
func (c Color) RGB() (r, g, b float64) {
	return c.R, c.G, c.B
}

// Hex returns the color packed back into 0xRRGGBB form.
func (c Color) Hex() uint32 {
	r := uint32(clamp255(c.R * 255))
	g := uint32(clamp255(c.G * 255))
	b := uint32(clamp255(c.B * 255))
	return r<<16 | g<<8 | b
}

// RGBA implements the color.Color interface. Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp255(c.R*255)) * 0x101
	g = uint32(clamp255(c.G*255)) * 0x101
	b = uint32(clamp255(c.B*255)) * 0x101
	return r, g, b, 0xffff
}

// ParseColor parses a "#RRGGBB" or "RRGGBB" string, as used in
// configuration files.
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("draw: invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("draw: invalid color %q", s)
	}
	return ColorFromHex(uint32(v)), nil
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
