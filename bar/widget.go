package bar

import "github.com/Arstman/penrose/draw"

// Widget is one segment of a status bar.
//
// The bar lays widgets out left to right: it asks each for its
// Extent, distributes any leftover width among the Greedy ones, then
// calls Draw with the final box. The context origin is at the
// widget's left edge when Draw runs.
type Widget interface {
	// Draw renders the widget into a box of w by h pixels on the
	// given screen. focused reports whether that screen currently
	// holds focus.
	Draw(ctx draw.Context, screen int, focused bool, w, h float64) error

	// Extent reports the size the widget wants on a bar of height h.
	Extent(ctx draw.Context, h float64) (w, wh float64, err error)

	// RequireDraw reports whether the widget changed since the last
	// redraw.
	RequireDraw() bool

	// Greedy marks widgets that absorb leftover bar width.
	Greedy() bool
}
