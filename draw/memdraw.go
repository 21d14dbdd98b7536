package draw

import (
	"fmt"
	"image"

	"github.com/Arstman/penrose/text"
)

// MemDraw is an in-memory Draw for headless use: surfaces are plain
// pixmaps, Flush uploads nothing and map state is recorded rather
// than sent anywhere. Rendering goes through the same context code as
// the X backend, so pixel-level tests exercise the real drawing path.
type MemDraw struct {
	resolver text.Resolver
	screens  []image.Point
	fonts    map[string]text.FontDescription
	surfaces map[WindowID]*surface
	kinds    map[WindowID]WindowType
	mapped   map[WindowID]bool
	nextID   WindowID
}

var _ Draw = (*MemDraw)(nil)

// NewMemDraw creates a MemDraw with a single screen of the given
// pixel size. Further screens can be added with AddScreen.
func NewMemDraw(width, height int, opts ...Option) *MemDraw {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.resolver == nil {
		cfg.resolver = text.NewStaticResolver(text.Builtin())
	}
	return &MemDraw{
		resolver: cfg.resolver,
		screens:  []image.Point{{X: width, Y: height}},
		fonts:    make(map[string]text.FontDescription),
		surfaces: make(map[WindowID]*surface),
		kinds:    make(map[WindowID]WindowType),
		mapped:   make(map[WindowID]bool),
		nextID:   1,
	}
}

// AddScreen appends another screen of the given size and returns its
// index.
func (m *MemDraw) AddScreen(width, height int) int {
	m.screens = append(m.screens, image.Point{X: width, Y: height})
	return len(m.screens) - 1
}

// NewWindow allocates a surface of the requested size and marks the
// window mapped, mirroring the X backend's create-then-map protocol.
func (m *MemDraw) NewWindow(t WindowType, width, height int) (WindowID, error) {
	if len(m.screens) == 0 {
		return 0, fmt.Errorf("%w: 0", ErrScreen)
	}
	id := m.nextID
	m.nextID++
	m.surfaces[id] = newSurface(width, height)
	m.kinds[id] = t
	m.mapped[id] = true
	return id, nil
}

// ScreenCount reports the number of configured screens.
func (m *MemDraw) ScreenCount() int {
	return len(m.screens)
}

// ScreenSize returns the size of screen index.
func (m *MemDraw) ScreenSize(index int) (int, int, error) {
	if index < 0 || index >= len(m.screens) {
		return 0, 0, fmt.Errorf("%w: %d", ErrScreen, index)
	}
	s := m.screens[index]
	return s.X, s.Y, nil
}

// RegisterFont parses and stores a font description under name.
func (m *MemDraw) RegisterFont(name string) {
	m.fonts[name] = text.ParseDescription(name)
}

// ContextFor returns a context over the window's surface.
func (m *MemDraw) ContextFor(id WindowID) (Context, error) {
	sfc, ok := m.surfaces[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrContext, id)
	}
	return newDrawContext(sfc, m.resolver, m.fonts), nil
}

// Flush clears the dirty flags, standing in for the X backend's
// upload.
func (m *MemDraw) Flush() {
	for _, sfc := range m.surfaces {
		sfc.dirty = false
	}
}

// MapWindow records the window as visible. Unknown ids are recorded
// as-is, matching the unvalidated forwarding of the X backend.
func (m *MemDraw) MapWindow(id WindowID) {
	m.mapped[id] = true
}

// UnmapWindow records the window as hidden.
func (m *MemDraw) UnmapWindow(id WindowID) {
	m.mapped[id] = false
}

// Close implements Draw; there is nothing to release.
func (m *MemDraw) Close() error {
	return nil
}

// Image returns a copy of the window's surface for inspection, or nil
// for unknown ids.
func (m *MemDraw) Image(id WindowID) *image.RGBA {
	sfc, ok := m.surfaces[id]
	if !ok {
		return nil
	}
	return sfc.pix.ToImage()
}

// Mapped reports whether the window is currently mapped.
func (m *MemDraw) Mapped(id WindowID) bool {
	return m.mapped[id]
}

// TypeOf returns the window type requested at creation.
func (m *MemDraw) TypeOf(id WindowID) WindowType {
	return m.kinds[id]
}
