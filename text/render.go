package text

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// maskKey identifies a rasterised glyph in the source cache. Size is
// quantised to 1/64 pixel so equal sizes share masks.
type maskKey struct {
	gid  font.GID
	size fixed.Int26_6
}

// glyphMask is an alpha coverage mask plus its offset from the pen
// position to the mask's top-left corner. A nil image means the glyph
// has no ink (spaces, control glyphs).
type glyphMask struct {
	img *image.Alpha
	dx  float64
	dy  float64
}

// Render paints the shaped glyphs into dst with the layout box's
// top-left corner at (x, y). Painting is glyph-mask compositing with
// source-over blending, so the destination shows through unpainted
// coverage.
func (l *Layout) Render(dst draw.Image, x, y float64, col color.Color) {
	l.shape()
	if len(l.glyphs) == 0 {
		return
	}

	src := image.NewUniform(col)
	baseline := y + l.metrics.Ascent

	for _, g := range l.glyphs {
		mask := l.src.glyphMask(l.face, g.ID, l.size)
		if mask == nil || mask.img == nil {
			continue
		}

		b := mask.img.Bounds()
		minX := int(math.Round(x + g.X + mask.dx))
		minY := int(math.Round(baseline - g.Y + mask.dy))
		r := image.Rect(minX, minY, minX+b.Dx(), minY+b.Dy())

		draw.DrawMask(dst, r, src, image.Point{}, mask.img, b.Min, draw.Over)
	}
}

// glyphMask returns the cached coverage mask for a glyph, rasterising
// it on first use.
func (s *FontSource) glyphMask(face *font.Face, gid font.GID, size float64) *glyphMask {
	key := maskKey{gid: gid, size: floatToFixed(size)}
	return s.masks.GetOrCreate(key, func() *glyphMask {
		return rasterizeGlyph(face, gid, size)
	})
}

// rasterizeGlyph extracts the glyph outline and renders its coverage
// into an alpha mask. Bitmap and SVG glyphs are not handled; they
// produce an empty mask.
func rasterizeGlyph(face *font.Face, gid font.GID, size float64) *glyphMask {
	outline, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return &glyphMask{}
	}

	scale := size / float64(face.Upem())

	// Outline points are in font units with Y up; on screen Y grows
	// down. The bounding box over the control points bounds the curves
	// as well.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	visit := func(p font.SegmentPoint) {
		sx := float64(p.X) * scale
		sy := -float64(p.Y) * scale
		minX = math.Min(minX, sx)
		minY = math.Min(minY, sy)
		maxX = math.Max(maxX, sx)
		maxY = math.Max(maxY, sy)
	}
	for _, seg := range outline.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo, ot.SegmentOpLineTo:
			visit(seg.Args[0])
		case ot.SegmentOpQuadTo:
			visit(seg.Args[0])
			visit(seg.Args[1])
		case ot.SegmentOpCubeTo:
			visit(seg.Args[0])
			visit(seg.Args[1])
			visit(seg.Args[2])
		}
	}

	minX = math.Floor(minX) - 1
	minY = math.Floor(minY) - 1
	w := int(math.Ceil(maxX)-minX) + 1
	h := int(math.Ceil(maxY)-minY) + 1
	if w <= 0 || h <= 0 {
		return &glyphMask{}
	}

	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src

	pt := func(p font.SegmentPoint) (float32, float32) {
		return float32(float64(p.X)*scale - minX), float32(-float64(p.Y)*scale - minY)
	}

	open := false
	for _, seg := range outline.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			px, py := pt(seg.Args[0])
			z.MoveTo(px, py)
			open = true
		case ot.SegmentOpLineTo:
			px, py := pt(seg.Args[0])
			z.LineTo(px, py)
		case ot.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			z.QuadTo(bx, by, cx, cy)
		case ot.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return &glyphMask{img: mask, dx: minX, dy: minY}
}
