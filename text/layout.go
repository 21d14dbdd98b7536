package text

import (
	"math"

	"github.com/go-text/typesetting/font"
)

// EllipsizeMode controls how text that overflows a constrained layout
// box is handled.
type EllipsizeMode int

const (
	// EllipsizeNone lets overflowing text run past the box.
	EllipsizeNone EllipsizeMode = iota

	// EllipsizeEnd truncates overflowing text and appends an ellipsis.
	EllipsizeEnd
)

// ellipsisRune is preferred for truncation; fonts without it fall back
// to three full stops.
const ellipsisRune = '…'

// Layout shapes and positions a single line of text for one render
// pass. It is created per pass, mutated with the Set methods and then
// measured or rendered; it is not safe for concurrent use.
//
// Measure reports the logical box of the line: pen advance by line
// height. Glyph ink with unusual bearings can overhang the logical box
// slightly, as it does in any pen-advance text model.
type Layout struct {
	src    *FontSource
	face   *font.Face
	shaper *Shaper
	size   float64

	text     string
	mode     EllipsizeMode
	maxWidth float64

	shaped    bool
	glyphs    []Glyph
	drawn     float64
	reported  float64
	truncated bool
	metrics   Metrics
}

// NewLayout creates a layout over src at the given pixel size. A nil
// source is the only failure; sizes at or below zero fall back to 12.
func NewLayout(src *FontSource, size float64) (*Layout, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if size <= 0 {
		size = 12
	}
	return &Layout{
		src:    src,
		face:   src.Face(),
		shaper: defaultShaper,
		size:   size,
	}, nil
}

// SetText replaces the layout content.
func (l *Layout) SetText(s string) {
	if s == l.text {
		return
	}
	l.text = s
	l.shaped = false
}

// SetEllipsize selects the overflow mode.
func (l *Layout) SetEllipsize(m EllipsizeMode) {
	if m == l.mode {
		return
	}
	l.mode = m
	l.shaped = false
}

// SetMaxWidth constrains the layout box to w pixels. Zero or negative
// removes the constraint. With EllipsizeEnd, text wider than the box is
// truncated with an ellipsis and the box width is what Measure reports.
func (l *Layout) SetMaxWidth(w float64) {
	if w < 0 {
		w = 0
	}
	if w == l.maxWidth {
		return
	}
	l.maxWidth = w
	l.shaped = false
}

// Metrics returns the line metrics of the shaped text.
func (l *Layout) Metrics() Metrics {
	l.shape()
	return l.metrics
}

// Truncated reports whether the current content was ellipsized.
func (l *Layout) Truncated() bool {
	l.shape()
	return l.truncated
}

// Measure returns the pixel size of the layout box. Empty text
// measures (0, 0). When truncation occurred the width is the
// constrained width, so callers can lay out neighbours without
// re-measuring.
func (l *Layout) Measure() (w, h int) {
	l.shape()
	if l.text == "" {
		return 0, 0
	}
	return int(math.Ceil(l.reported)), int(math.Ceil(l.metrics.LineHeight()))
}

// shape runs segmentation, shaping and truncation, caching the result
// until an input changes.
func (l *Layout) shape() {
	if l.shaped {
		return
	}
	l.shaped = true
	l.glyphs = nil
	l.drawn = 0
	l.reported = 0
	l.truncated = false
	l.metrics = Metrics{}

	runes := []rune(l.text)
	if len(runes) == 0 {
		return
	}

	var penX float64
	for _, seg := range segmentText(l.text, len(runes)) {
		run := l.shaper.Shape(runes[seg.start:seg.end], l.face, l.size, seg.dir)
		for _, g := range run.Glyphs {
			g.Cluster += seg.start
			g.X += penX
			l.glyphs = append(l.glyphs, g)
		}
		penX += run.Advance
		l.metrics = maxMetrics(l.metrics, Metrics{Ascent: run.Ascent, Descent: run.Descent, Gap: run.Gap})
	}

	l.drawn = penX
	l.reported = penX

	if l.mode == EllipsizeEnd && l.maxWidth > 0 && penX > l.maxWidth {
		l.truncate(runes)
	}
}

// truncate cuts the shaped glyphs at a cluster boundary so that the
// kept glyphs plus an ellipsis fit l.maxWidth, and pins the reported
// width to the constrained box.
func (l *Layout) truncate(runes []rune) {
	ell := []rune{ellipsisRune}
	if !l.src.HasRune(ellipsisRune) {
		ell = []rune{'.', '.', '.'}
	}
	ellRun := l.shaper.Shape(ell, l.face, l.size, DirectionLTR)

	budget := l.maxWidth - ellRun.Advance
	if budget < 0 {
		budget = 0
	}

	// Keep whole clusters while they fit the remaining budget.
	cut := 0
	cutX := 0.0
	clusterStart := 0
	for i, g := range l.glyphs {
		if i > 0 && g.Cluster != l.glyphs[i-1].Cluster {
			clusterStart = i
		}
		if g.X+g.Advance > budget {
			cut = clusterStart
			break
		}
		cut = i + 1
	}
	if cut > 0 {
		last := l.glyphs[cut-1]
		cutX = last.X + last.Advance
	}

	l.glyphs = l.glyphs[:cut]
	for _, g := range ellRun.Glyphs {
		g.Cluster = len(runes)
		g.X += cutX
		l.glyphs = append(l.glyphs, g)
	}

	l.drawn = cutX + ellRun.Advance
	l.reported = l.maxWidth
	l.truncated = true
	l.metrics = maxMetrics(l.metrics, Metrics{Ascent: ellRun.Ascent, Descent: ellRun.Descent, Gap: ellRun.Gap})
}

// maxMetrics merges line metrics, keeping the larger extent of each.
func maxMetrics(a, b Metrics) Metrics {
	return Metrics{
		Ascent:  math.Max(a.Ascent, b.Ascent),
		Descent: math.Max(a.Descent, b.Descent),
		Gap:     math.Max(a.Gap, b.Gap),
	}
}
