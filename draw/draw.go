package draw

// WindowID is the opaque handle the display server assigns to a
// window at creation time. It is only valid after a successful
// NewWindow call on the Draw that issued it; this package never
// destroys windows, so an id stays usable for the life of its Draw.
type WindowID uint32

// Padding is the space added around rendered text, in pixels.
type Padding struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Uniform returns a Padding with the same value on all four sides.
func Uniform(p float64) Padding {
	return Padding{Left: p, Right: p, Top: p, Bottom: p}
}

// Draw manages windows and their drawing surfaces. It owns the
// display connection, the font registry and the window-to-surface
// mapping, and hands out short-lived Contexts scoped to one window.
//
// A Draw and its Contexts are single-threaded: no operation may run
// concurrently with another on the same instance.
type Draw interface {
	// NewWindow creates a window of the given type and size on the
	// first configured screen, binds a drawing surface to it and maps
	// it. The returned id keys all later operations on the window.
	NewWindow(t WindowType, width, height int) (WindowID, error)

	// ScreenCount reports the number of configured screens.
	ScreenCount() int

	// ScreenSize returns the pixel size of the screen at index.
	// It fails with ErrScreen when index is out of range.
	ScreenSize(index int) (width, height int, err error)

	// RegisterFont parses name as a font description and stores it
	// under name, overwriting any previous registration. It never
	// fails; an unresolvable description surfaces later, when a
	// Context applies it.
	RegisterFont(name string)

	// ContextFor returns a drawing context bound to the window's
	// surface, with no active font and a snapshot of the current
	// font registry. It fails with ErrContext for ids this Draw did
	// not create.
	ContextFor(id WindowID) (Context, error)

	// Flush pushes all buffered drawing to the display server.
	// Best-effort: errors are logged, not returned.
	Flush()

	// MapWindow makes the window visible. The id is forwarded to the
	// server without checking the surface registry.
	MapWindow(id WindowID)

	// UnmapWindow hides the window. Like MapWindow, the id is not
	// validated against the surface registry.
	UnmapWindow(id WindowID)

	// Close releases the display connection and all surfaces.
	// Contexts obtained from this Draw are invalid afterwards.
	Close() error
}

// Context is a drawing cursor bound to exactly one window's surface,
// valid for a single render pass. Font and Color select state for
// subsequent calls; Rectangle and Text render with it.
type Context interface {
	// Font activates the registered font name at the given point
	// size. It fails with ErrFont when name was not registered on
	// the owning Draw at the time this context was created.
	Font(name string, pointSize int) error

	// Color sets the active fill color from a 0xRRGGBB value.
	Color(hex uint32)

	// Translate shifts the drawing origin by (dx, dy). There is no
	// save/restore stack; callers undo translations themselves.
	Translate(dx, dy float64)

	// Rectangle fills an axis-aligned rectangle at (x, y) relative
	// to the current origin with the active color.
	Rectangle(x, y, w, h float64)

	// Text renders s at the current origin offset by the padding's
	// left and top, ellipsizing at the end when the line exceeds the
	// space remaining on the surface, and returns the occupied
	// extent including padding. The origin is restored before
	// returning, even on error.
	Text(s string, pad Padding) (width, height int, err error)

	// TextExtent measures s under the active font without rendering
	// and without padding. Callers use it to lay out bar segments
	// before drawing them.
	TextExtent(s string) (width, height float64, err error)
}
