package bar

import "github.com/Arstman/penrose/draw"

// TextStyle bundles the font and color settings shared by text-based
// widgets.
type TextStyle struct {
	Font      string
	PointSize int
	Fg        uint32
	// Bg fills the widget's box before the text is drawn; nil leaves
	// the bar background.
	Bg      *uint32
	Padding draw.Padding
}

// Text is a simple text widget. It caches its extent until the
// content changes, so repeated redraws do not re-measure.
type Text struct {
	style     TextStyle
	txt       string
	greedy    bool
	rightJust bool

	extentW     float64
	extentH     float64
	extentOK    bool
	requireDraw bool
}

var _ Widget = (*Text)(nil)

// NewText creates a text widget. Greedy widgets absorb leftover bar
// width; right-justified greedy widgets push their content to the
// right edge of the absorbed space.
func NewText(txt string, style TextStyle, greedy, rightJustified bool) *Text {
	return &Text{
		style:       style,
		txt:         txt,
		greedy:      greedy,
		rightJust:   rightJustified,
		requireDraw: true,
	}
}

// SetText replaces the widget content, invalidating the cached extent
// when it actually changes.
func (t *Text) SetText(s string) {
	if s == t.txt {
		return
	}
	t.txt = s
	t.extentOK = false
	t.requireDraw = true
}

// Current returns the widget content.
func (t *Text) Current() string {
	return t.txt
}

// Draw fills the optional background, then renders the text with the
// widget padding. Right-justified greedy widgets are pushed so their
// natural extent ends at the box's right edge.
func (t *Text) Draw(ctx draw.Context, _ int, _ bool, w, h float64) error {
	if t.style.Bg != nil {
		ctx.Color(*t.style.Bg)
		ctx.Rectangle(0, 0, w, h)
	}

	ew, _, err := t.Extent(ctx, h)
	if err != nil {
		return err
	}
	if err := ctx.Font(t.style.Font, t.style.PointSize); err != nil {
		return err
	}
	ctx.Color(t.style.Fg)

	offset := w - ew
	if t.rightJust && t.greedy && offset > 0 {
		ctx.Translate(offset, 0)
		defer ctx.Translate(-offset, 0)
	}
	if _, _, err := ctx.Text(t.txt, t.style.Padding); err != nil {
		return err
	}

	t.requireDraw = false
	return nil
}

// Extent measures the text plus padding, serving the cached value
// while the content is unchanged.
func (t *Text) Extent(ctx draw.Context, _ float64) (float64, float64, error) {
	if t.extentOK {
		return t.extentW, t.extentH, nil
	}
	if err := ctx.Font(t.style.Font, t.style.PointSize); err != nil {
		return 0, 0, err
	}
	w, h, err := ctx.TextExtent(t.txt)
	if err != nil {
		return 0, 0, err
	}

	p := t.style.Padding
	t.extentW = w + p.Left + p.Right
	t.extentH = h + p.Top + p.Bottom
	t.extentOK = true
	return t.extentW, t.extentH, nil
}

// RequireDraw reports whether SetText changed the content since the
// last Draw.
func (t *Text) RequireDraw() bool {
	return t.requireDraw
}

// Greedy implements Widget.
func (t *Text) Greedy() bool {
	return t.greedy
}
