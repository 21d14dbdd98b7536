package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Arstman/penrose/internal/cache"
)

// FontSource is a parsed font file. One FontSource serves every size a
// caller asks for; parsing happens once at construction.
//
// FontSource is safe for concurrent use. The underlying *font.Font is
// read-only; per-call font.Face values are created fresh because Face
// carries mutable glyph caches. FontSource must not be copied after
// creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection. It must point to the
	// FontSource itself.
	addr *FontSource

	fnt *font.Font

	// masks caches rasterised glyph coverage, keyed by glyph id and
	// quantised size. Bounded so a long-lived bar does not accumulate
	// masks for every size it ever drew.
	masks *cache.Cache[maskKey, *glyphMask]
}

// maskCacheLimit bounds the per-source glyph mask cache. A bar touches
// a few dozen glyphs per font size; the limit leaves room for several
// sizes before eviction starts.
const maskCacheLimit = 1024

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is not retained.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	return newFontSource(face.Font), nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// newFontSource wraps an already-parsed font, as handed out by the
// system font scanner.
func newFontSource(fnt *font.Font) *FontSource {
	s := &FontSource{
		fnt:   fnt,
		masks: cache.New[maskKey, *glyphMask](maskCacheLimit),
	}
	s.addr = s
	return s
}

// Font returns the parsed font. The result is read-only and safe to
// share.
func (s *FontSource) Font() *font.Font {
	s.copyCheck()
	return s.fnt
}

// Face creates a fresh shaping face for this source. font.Face holds
// mutable caches and is not safe for concurrent use, so every shaping
// pass gets its own.
func (s *FontSource) Face() *font.Face {
	if s == nil {
		panic("text: Face called on nil FontSource")
	}
	s.copyCheck()
	return font.NewFace(s.fnt)
}

// HasRune reports whether the font maps r to a glyph.
func (s *FontSource) HasRune(r rune) bool {
	s.copyCheck()
	_, ok := s.fnt.NominalGlyph(r)
	return ok
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// builtin is the compiled-in fallback face, parsed on first use.
var (
	builtinOnce sync.Once
	builtinSrc  *FontSource
)

// Builtin returns the compiled-in fallback font (Go Regular). It backs
// headless rendering and the last-resort fallback of the system
// resolver, so text keeps working with no font files on disk.
func Builtin() *FontSource {
	builtinOnce.Do(func() {
		src, err := NewFontSource(goregular.TTF)
		if err != nil {
			// The embedded font is known-good; a parse failure here is
			// a build corruption, not a runtime condition.
			panic(fmt.Sprintf("text: builtin font: %v", err))
		}
		builtinSrc = src
	})
	return builtinSrc
}
