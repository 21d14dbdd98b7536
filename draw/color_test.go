package draw

import (
	"image/color"
	"math"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		name    string
		hex     uint32
		r, g, b float64
	}{
		{name: "black", hex: 0x000000, r: 0, g: 0, b: 0},
		{name: "white", hex: 0xFFFFFF, r: 1, g: 1, b: 1},
		{name: "red", hex: 0xFF0000, r: 1, g: 0, b: 0},
		{name: "green", hex: 0x00FF00, r: 0, g: 1, b: 0},
		{name: "blue", hex: 0x0000FF, r: 0, g: 0, b: 1},
		{name: "grey", hex: 0x808080, r: 128.0 / 255, g: 128.0 / 255, b: 128.0 / 255},
		{name: "high bits ignored", hex: 0xAAFF0000, r: 1, g: 0, b: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := ColorFromHex(tt.hex).RGB()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("ColorFromHex(%#x).RGB() = (%v, %v, %v), want (%v, %v, %v)",
					tt.hex, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestColorFromHex_ChannelsInRange(t *testing.T) {
	for _, hex := range []uint32{0x000000, 0x123456, 0x7F7F7F, 0xABCDEF, 0xFFFFFF, 0xFFFFFFFF} {
		r, g, b := ColorFromHex(hex).RGB()
		for _, v := range []float64{r, g, b} {
			if v < 0 || v > 1 {
				t.Errorf("ColorFromHex(%#x) channel %v out of [0, 1]", hex, v)
			}
		}
	}
}

func TestColor_HexRoundtrip(t *testing.T) {
	for _, hex := range []uint32{0x000000, 0xFF0000, 0x00FF00, 0x0000FF, 0x123456, 0xFFFFFF} {
		if got := ColorFromHex(hex).Hex(); got != hex {
			t.Errorf("ColorFromHex(%#x).Hex() = %#x", hex, got)
		}
	}
}

func TestColor_RGBA(t *testing.T) {
	r, g, b, a := ColorFromHex(0xFF0000).RGBA()
	if r != 0xFFFF || g != 0 || b != 0 {
		t.Errorf("RGBA() = (%d, %d, %d), want (65535, 0, 0)", r, g, b)
	}
	if a != 0xFFFF {
		t.Errorf("RGBA() alpha = %d, want 65535 (colors are opaque)", a)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		hex     uint32
		wantErr bool
	}{
		{name: "red", in: "#FF0000", hex: 0xFF0000},
		{name: "lowercase", in: "#abcdef", hex: 0xABCDEF},
		{name: "no hash", in: "FF0000", hex: 0xFF0000},
		{name: "short", in: "#FFF", wantErr: true},
		{name: "bad digits", in: "#GGGGGG", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseColor(%q) = %v, want error", tt.in, c)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) returned error: %v", tt.in, err)
			}
			if c.Hex() != tt.hex {
				t.Errorf("ParseColor(%q).Hex() = %#x, want %#x", tt.in, c.Hex(), tt.hex)
			}
		})
	}
}

func TestColor_RGBAGrey(t *testing.T) {
	// Mid grey must map near the centre of the 16-bit range.
	r, _, _, _ := ColorFromHex(0x808080).RGBA()
	want := uint32(math.Round(128.0 / 255 * 0xFFFF))
	if diff(r, want) > 1 {
		t.Errorf("grey RGBA() red = %d, want about %d", r, want)
	}
}

func diff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
