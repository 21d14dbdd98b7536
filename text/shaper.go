package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Direction of a horizontal text run.
type Direction int

const (
	// DirectionLTR is left-to-right text.
	DirectionLTR Direction = iota

	// DirectionRTL is right-to-left text.
	DirectionRTL
)

// Glyph is a single shaped glyph positioned relative to the start of
// its run, pen-advance style. X and Y carry the shaper's fine
// positioning offsets; Y is positive upwards from the baseline.
type Glyph struct {
	ID      font.GID
	Cluster int
	X, Y    float64
	Advance float64
}

// Run is the result of shaping one directional segment of text.
type Run struct {
	Glyphs  []Glyph
	Advance float64
	Ascent  float64
	Descent float64
	Gap     float64
}

// Shaper converts runes into positioned glyphs using HarfBuzz shaping
// via go-text/typesetting, with ligatures, kerning and complex-script
// support.
//
// Shaper is safe for concurrent use: HarfbuzzShaper instances carry
// mutable buffers and are pooled, one per shaping call.
type Shaper struct {
	pool sync.Pool
}

// NewShaper creates a shaper with an empty pool.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// defaultShaper backs layouts that do not bring their own.
var defaultShaper = NewShaper()

// Shape shapes runes with the given face at size (in pixels per em).
// The face must not be shared with concurrent callers; obtain one per
// pass from FontSource.Face.
func (s *Shaper) Shape(runes []rune, face *font.Face, size float64, dir Direction) Run {
	if len(runes) == 0 || face == nil {
		return Run{}
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(dir),
		Face:      face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)

	return convertOutput(out)
}

// mapDirection converts Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Runs are already split by direction, so a single
// dominant script per run is a workable heuristic here.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 pixel size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// convertOutput flattens a shaping output into a Run with absolute pen
// positions.
func convertOutput(out shaping.Output) Run {
	run := Run{
		Glyphs:  make([]Glyph, 0, len(out.Glyphs)),
		Advance: fixedToFloat(out.Advance),
		Ascent:  fixedToFloat(out.LineBounds.Ascent),
		Gap:     fixedToFloat(out.LineBounds.Gap),
	}

	// LineBounds.Descent is negative (below the baseline); callers get
	// it as a positive distance.
	descent := fixedToFloat(out.LineBounds.Descent)
	if descent < 0 {
		descent = -descent
	}
	run.Descent = descent

	var x float64
	for _, g := range out.Glyphs {
		run.Glyphs = append(run.Glyphs, Glyph{
			ID:      g.GlyphID,
			Cluster: g.TextIndex(),
			X:       x + fixedToFloat(g.XOffset),
			Y:       fixedToFloat(g.YOffset),
			Advance: fixedToFloat(g.Advance),
		})
		x += fixedToFloat(g.Advance)
	}

	return run
}
