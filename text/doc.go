// Package text provides font loading, shaping and single-line layout
// for the draw package.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: Heavyweight, shared font resource (parses TTF/OTF files)
//   - FontDescription: A requested family, style and point size
//   - Resolver: Pluggable lookup from description to source
//     (system scan or a static map)
//   - Shaper: HarfBuzz shaping of runs into positioned glyphs
//   - Layout: Single-line measurement, end ellipsis and rendering
//
// # Example usage
//
//	// Resolve a font (do once, share across the application)
//	resolver := text.NewSystemResolver(nil)
//	source, err := resolver.Resolve(text.FontDescription{Family: "monospace"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Lay out and measure a line at 12pt
//	layout, err := text.NewLayout(source, 12)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	layout.SetText("hello, world")
//	w, h := layout.Measure()
//
//	// Render onto any draw.Image at (x, y)
//	layout.Render(dst, 10, 10, color.Black)
//	_, _ = w, h
//
// Text is shaped through go-text/typesetting, so kerning, ligatures
// and bidirectional runs behave the way desktop toolkits behave.
// Mixed-direction strings are reordered with golang.org/x/text before
// shaping; each visual run is shaped separately and advanced
// left to right.
package text
