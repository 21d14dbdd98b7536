package bar

import (
	"fmt"

	"github.com/Arstman/penrose/draw"
)

// Position is the screen edge a status bar asks to occupy. Placement
// is delegated to the window manager via the dock window type; the
// position is advertised so a manager that honours it can dock the
// bar accordingly.
type Position int

const (
	// Top docks the bar to the top edge.
	Top Position = iota

	// Bottom docks the bar to the bottom edge.
	Bottom
)

// screenWindow pairs a bar window with the pixel width it spans.
type screenWindow struct {
	id    draw.WindowID
	width float64
}

// StatusBar renders a row of widgets into one dock window per screen.
//
// Widgets are laid out left to right at their measured extents, with
// leftover width split evenly among the greedy ones. The bar is
// single-threaded like the draw layer under it: Redraw, Tick-style
// widget updates and event handling must run from one goroutine.
type StatusBar struct {
	drw      draw.Draw
	position Position
	widgets  []Widget
	screens  []screenWindow
	height   int
	bg       uint32
	active   int
}

// New registers fonts, creates one dock window per screen and returns
// the bar ready for Redraw. The windows are mapped as part of
// creation.
func New(drw draw.Draw, position Position, height int, bg uint32, fonts []string, widgets ...Widget) (*StatusBar, error) {
	for _, f := range fonts {
		drw.RegisterFont(f)
	}

	b := &StatusBar{
		drw:      drw,
		position: position,
		widgets:  widgets,
		height:   height,
		bg:       bg,
	}
	if err := b.initScreens(); err != nil {
		return nil, fmt.Errorf("unable to initialise bar windows: %w", err)
	}
	return b, nil
}

func (b *StatusBar) initScreens() error {
	for i := 0; i < b.drw.ScreenCount(); i++ {
		w, _, err := b.drw.ScreenSize(i)
		if err != nil {
			return err
		}
		id, err := b.drw.NewWindow(draw.WindowTypeDock, w, b.height)
		if err != nil {
			return err
		}
		b.screens = append(b.screens, screenWindow{id: id, width: float64(w)})
	}
	return nil
}

// Position returns the requested bar position.
func (b *StatusBar) Position() Position {
	return b.position
}

// Height returns the bar height in pixels.
func (b *StatusBar) Height() int {
	return b.height
}

// Windows returns the window ids backing the bar, one per screen.
func (b *StatusBar) Windows() []draw.WindowID {
	ids := make([]draw.WindowID, len(b.screens))
	for i, s := range b.screens {
		ids[i] = s.id
	}
	return ids
}

// SetActiveScreen records which screen holds focus; widgets receive
// it on the next redraw.
func (b *StatusBar) SetActiveScreen(index int) {
	b.active = index
}

// Redraw repaints every screen's bar window and flushes the result.
func (b *StatusBar) Redraw() error {
	for i, scr := range b.screens {
		ctx, err := b.drw.ContextFor(scr.id)
		if err != nil {
			return err
		}

		ctx.Color(b.bg)
		ctx.Rectangle(0, 0, scr.width, float64(b.height))

		widths, err := b.layout(ctx, scr.width)
		if err != nil {
			return err
		}

		var x float64
		for j, wd := range b.widgets {
			if err := wd.Draw(ctx, i, i == b.active, widths[j], float64(b.height)); err != nil {
				return fmt.Errorf("unable to draw widget %d: %w", j, err)
			}
			ctx.Translate(widths[j], 0)
			x += widths[j]
		}
		ctx.Translate(-x, 0)
	}

	b.drw.Flush()
	return nil
}

// layout measures every widget and splits leftover bar width evenly
// among the greedy ones.
func (b *StatusBar) layout(ctx draw.Context, barWidth float64) ([]float64, error) {
	widths := make([]float64, len(b.widgets))
	var total float64
	var greedy []int

	for i, wd := range b.widgets {
		w, _, err := wd.Extent(ctx, float64(b.height))
		if err != nil {
			return nil, err
		}
		widths[i] = w
		total += w
		if wd.Greedy() {
			greedy = append(greedy, i)
		}
	}

	if total < barWidth && len(greedy) > 0 {
		slack := (barWidth - total) / float64(len(greedy))
		for _, i := range greedy {
			widths[i] += slack
		}
	}
	return widths, nil
}

// RedrawIfNeeded redraws only when some widget reports a change.
func (b *StatusBar) RedrawIfNeeded() error {
	for _, wd := range b.widgets {
		if wd.RequireDraw() {
			return b.Redraw()
		}
	}
	return nil
}
