package draw

import (
	"fmt"
	"image"
	"maps"
	"math"

	"github.com/Arstman/penrose/text"
)

// surface is a window's CPU render target. Contexts draw into the
// pixmap; the production backend uploads dirty surfaces on Flush.
type surface struct {
	pix   *Pixmap
	dirty bool
}

func newSurface(width, height int) *surface {
	return &surface{pix: NewPixmap(width, height)}
}

// drawContext implements Context over a surface pixmap. It carries the
// cursor state for one render pass: active font, active color and the
// current origin translation. The font registry is snapshotted at
// creation, so later registrations on the owning Draw are not visible
// to an existing context.
type drawContext struct {
	sfc      *surface
	resolver text.Resolver
	fonts    map[string]text.FontDescription

	active *text.FontDescription
	col    Color
	dx, dy float64
}

var _ Context = (*drawContext)(nil)

func newDrawContext(sfc *surface, resolver text.Resolver, fonts map[string]text.FontDescription) *drawContext {
	return &drawContext{
		sfc:      sfc,
		resolver: resolver,
		fonts:    maps.Clone(fonts),
	}
}

// Font activates name at pointSize from the context's snapshot.
func (c *drawContext) Font(name string, pointSize int) error {
	desc, ok := c.fonts[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrFont, name)
	}
	sized := desc.WithSize(float64(pointSize))
	c.active = &sized
	return nil
}

// Color sets the active fill color.
func (c *drawContext) Color(hex uint32) {
	c.col = ColorFromHex(hex)
}

// Translate shifts the drawing origin.
func (c *drawContext) Translate(dx, dy float64) {
	c.dx += dx
	c.dy += dy
}

// Rectangle fills the rectangle with the active color. Edges are
// rounded to whole pixels; the pixmap clips anything off-surface.
func (c *drawContext) Rectangle(x, y, w, h float64) {
	x0 := int(math.Round(x + c.dx))
	y0 := int(math.Round(y + c.dy))
	x1 := int(math.Round(x + c.dx + w))
	y1 := int(math.Round(y + c.dy + h))
	c.sfc.pix.FillRect(image.Rect(x0, y0, x1, y1), c.col)
	c.sfc.dirty = true
}

// Text lays out and renders s with the active font and color.
//
// The line is ellipsized against the width remaining to the right of
// the current origin, measured, and the layout box pinned to the
// measured size so the returned extent always matches what was drawn.
// The origin translation for the padding offset is undone via defer,
// so it is restored on every return path.
func (c *drawContext) Text(s string, pad Padding) (int, int, error) {
	var desc text.FontDescription
	if c.active != nil {
		desc = *c.active
	}
	src, err := c.resolver.Resolve(desc)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrText, err)
	}
	layout, err := text.NewLayout(src, desc.Size)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrText, err)
	}

	layout.SetText(s)
	layout.SetEllipsize(text.EllipsizeEnd)
	if rem := float64(c.sfc.pix.Width()) - (c.dx + pad.Left); rem > 0 {
		layout.SetMaxWidth(rem)
	}

	w, h := layout.Measure()

	c.Translate(pad.Left, pad.Top)
	defer c.Translate(-pad.Left, -pad.Top)
	layout.Render(c.sfc.pix, c.dx, c.dy, c.col)
	c.sfc.dirty = true

	width := int(float64(w) + pad.Left + pad.Right)
	height := int(float64(h) + pad.Top + pad.Bottom)
	return width, height, nil
}

// TextExtent measures s under the active font, leaving the surface
// untouched. The size is the natural one: no ellipsization, no
// padding.
func (c *drawContext) TextExtent(s string) (float64, float64, error) {
	var desc text.FontDescription
	if c.active != nil {
		desc = *c.active
	}
	src, err := c.resolver.Resolve(desc)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrText, err)
	}
	layout, err := text.NewLayout(src, desc.Size)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrText, err)
	}

	layout.SetText(s)
	w, h := layout.Measure()
	return float64(w), float64(h), nil
}
