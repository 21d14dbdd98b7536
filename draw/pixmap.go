package draw

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is the rectangular pixel buffer backing a window surface.
// Drawing primitives render into it; the X backend uploads it to the
// server on flush.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are
// dropped.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.B * 255))
	p.data[i+3] = 0xff
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Color{}
	}
	i := (y*p.width + x) * 4
	return Color{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = 0xff
	}
}

// FillRect fills the intersection of r with the pixmap bounds.
func (p *Pixmap) FillRect(r image.Rectangle, c Color) {
	r = r.Intersect(p.Bounds())
	if r.Empty() {
		return
	}
	cr := uint8(clamp255(c.R * 255))
	cg := uint8(clamp255(c.G * 255))
	cb := uint8(clamp255(c.B * 255))

	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := (y*p.width + r.Min.X) * 4
		for x := r.Min.X; x < r.Max.X; x++ {
			p.data[i+0] = cr
			p.data[i+1] = cg
			p.data[i+2] = cb
			p.data[i+3] = 0xff
			i += 4
		}
	}
}

// ToImage copies the pixmap into an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Set implements the draw.Image interface, letting the text renderer
// composite glyph masks directly into the surface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	r, g, b, a := c.RGBA()
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(r >> 8)
	p.data[i+1] = uint8(g >> 8)
	p.data[i+2] = uint8(b >> 8)
	p.data[i+3] = uint8(a >> 8)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
