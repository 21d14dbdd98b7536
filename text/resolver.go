package text

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
)

// Resolver turns a font description into a concrete font source.
// Resolution is expected to fall back rather than fail: an unknown
// family yields some usable face, mirroring how desktop font stacks
// behave. Only a resolver with nothing to offer at all errors.
type Resolver interface {
	Resolve(d FontDescription) (*FontSource, error)
}

// SystemResolver finds fonts installed on the host using the
// go-text font scanner. The first resolution triggers a system scan
// whose index is cached on disk; subsequent lookups are cheap.
//
// Families that match nothing resolve to the scanner's fallback face,
// and to the compiled-in font when scanning itself fails, so Resolve
// does not fail on unknown names.
type SystemResolver struct {
	logger *log.Logger

	// mu guards the font map and cache; fontscan.FontMap is not safe
	// for concurrent use.
	mu    sync.Mutex
	once  sync.Once
	fm    *fontscan.FontMap
	cache map[string]*FontSource
}

// NewSystemResolver creates a resolver over the host's installed
// fonts. The logger receives scanner diagnostics; nil discards them.
func NewSystemResolver(logger *log.Logger) *SystemResolver {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &SystemResolver{
		logger: logger,
		cache:  make(map[string]*FontSource),
	}
}

// Resolve implements Resolver.
func (r *SystemResolver) Resolve(d FontDescription) (*FontSource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if src, ok := r.cache[d.key()]; ok {
		return src, nil
	}

	r.once.Do(r.scan)

	src := Builtin()
	if r.fm != nil {
		q := fontscan.Query{Aspect: d.aspect()}
		if d.Family != "" {
			q.Families = []string{d.Family}
		}
		r.fm.SetQuery(q)
		if face := r.fm.ResolveFace('A'); face != nil {
			src = newFontSource(face.Font)
		}
	}

	r.cache[d.key()] = src
	return src, nil
}

// scan loads the system font index, building it on first run.
func (r *SystemResolver) scan() {
	fm := fontscan.NewFontMap(r.logger)
	if err := fm.UseSystemFonts(scanCacheDir()); err != nil {
		r.logger.Printf("font scan failed, using builtin font: %v", err)
		return
	}
	r.fm = fm
}

// scanCacheDir returns the directory for the scanner's font index.
func scanCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "penrose-fontscan")
	}
	return filepath.Join(dir, "penrose", "fontscan")
}

// StaticResolver serves fonts from an explicit family map with an
// optional fallback, keeping resolution fully deterministic. It backs
// headless drawing and tests.
type StaticResolver struct {
	families map[string]*FontSource
	fallback *FontSource
}

// NewStaticResolver creates a resolver that answers every description
// with fallback until families are added. A nil fallback makes
// unmatched resolutions fail.
func NewStaticResolver(fallback *FontSource) *StaticResolver {
	return &StaticResolver{
		families: make(map[string]*FontSource),
		fallback: fallback,
	}
}

// Add registers a source for a family name (case-insensitive).
func (r *StaticResolver) Add(family string, src *FontSource) {
	r.families[strings.ToLower(family)] = src
}

// Resolve implements Resolver.
func (r *StaticResolver) Resolve(d FontDescription) (*FontSource, error) {
	if src, ok := r.families[strings.ToLower(d.Family)]; ok {
		return src, nil
	}
	if r.fallback != nil {
		return r.fallback, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoFont, d)
}

// aspect maps the style words of a description onto the scanner's
// style and weight axes.
func (d FontDescription) aspect() font.Aspect {
	a := font.Aspect{Style: font.StyleNormal, Weight: font.WeightNormal}
	for _, w := range strings.Fields(strings.ToLower(d.Style)) {
		switch w {
		case "italic", "oblique":
			a.Style = font.StyleItalic
		case "thin":
			a.Weight = font.Weight(100)
		case "extralight", "ultralight":
			a.Weight = font.Weight(200)
		case "light":
			a.Weight = font.Weight(300)
		case "regular", "normal":
			a.Weight = font.WeightNormal
		case "medium":
			a.Weight = font.Weight(500)
		case "semibold", "demibold":
			a.Weight = font.Weight(600)
		case "bold":
			a.Weight = font.WeightBold
		case "extrabold", "ultrabold":
			a.Weight = font.Weight(800)
		case "black", "heavy":
			a.Weight = font.Weight(900)
		}
	}
	return a
}
