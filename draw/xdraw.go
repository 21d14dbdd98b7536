package draw

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/Arstman/penrose/text"
)

// putImageBudget caps the pixel bytes sent in one PutImage request so
// uploads stay under the protocol's maximum request length.
const putImageBudget = 260000

// XDraw is the production Draw backed by an X server. It owns the
// connection, the font registry and one surface per created window;
// drawing happens in CPU pixmaps that Flush uploads with PutImage.
type XDraw struct {
	conn     *xgb.Conn
	setup    *xproto.SetupInfo
	resolver text.Resolver
	fonts    map[string]text.FontDescription
	surfaces map[WindowID]*xsurface
	atoms    map[string]xproto.Atom
}

// xsurface pairs a window's pixmap with the X resources Flush needs
// to upload it.
type xsurface struct {
	surface
	win   xproto.Window
	gc    xproto.Gcontext
	depth byte
}

var _ Draw = (*XDraw)(nil)

// NewXDraw connects to the X server and returns an empty XDraw.
// It fails with ErrConnection when no server is reachable.
func NewXDraw(opts ...Option) (*XDraw, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	conn, err := xgb.NewConnDisplay(cfg.display)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if cfg.resolver == nil {
		scanLog := slog.NewLogLogger(Logger().Handler(), slog.LevelDebug)
		cfg.resolver = text.NewSystemResolver(scanLog)
	}

	setup := xproto.Setup(conn)
	Logger().Info("connected to X server", "screens", len(setup.Roots))

	return &XDraw{
		conn:     conn,
		setup:    setup,
		resolver: cfg.resolver,
		fonts:    make(map[string]text.FontDescription),
		surfaces: make(map[WindowID]*xsurface),
		atoms:    make(map[string]xproto.Atom),
	}, nil
}

// NewWindow creates a window on the first screen, advertises its
// EWMH type, maps it and binds a drawing surface to it. The type
// property is set before mapping so compositor placement hints take
// effect.
func (d *XDraw) NewWindow(t WindowType, width, height int) (WindowID, error) {
	screen, err := d.screen(0)
	if err != nil {
		return 0, err
	}

	wid, err := xproto.NewWindowId(d.conn)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWindow, err)
	}

	err = xproto.CreateWindowChecked(d.conn, screen.RootDepth, wid, screen.Root,
		0, 0, uint16(width), uint16(height), 0,
		xproto.WindowClassInputOutput, screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{screen.BlackPixel, xproto.EventMaskExposure}).Check()
	if err != nil {
		return 0, fmt.Errorf("%w: create: %v", ErrWindow, err)
	}

	if err := d.setWindowType(wid, t); err != nil {
		return 0, err
	}

	xproto.MapWindow(d.conn, wid)
	d.conn.Sync()

	// The surface only supports direct-mapped color; validate the
	// root visual before committing a pixmap and GC to the window.
	if _, err := rootVisualType(screen); err != nil {
		return 0, err
	}

	gc, err := d.newGC(wid, screen)
	if err != nil {
		return 0, err
	}

	id := WindowID(wid)
	d.surfaces[id] = &xsurface{
		surface: surface{pix: NewPixmap(width, height)},
		win:     wid,
		gc:      gc,
		depth:   screen.RootDepth,
	}

	Logger().Info("created window",
		"id", id, "type", t.String(), "width", width, "height", height)
	return id, nil
}

// setWindowType replaces _NET_WM_WINDOW_TYPE on the window with the
// EWMH string for t.
func (d *XDraw) setWindowType(wid xproto.Window, t WindowType) error {
	prop, err := d.atom("_NET_WM_WINDOW_TYPE")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWindow, err)
	}
	typ, err := d.atom("UTF8_STRING")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWindow, err)
	}

	data := []byte(t.EWMHString())
	err = xproto.ChangePropertyChecked(d.conn, xproto.PropModeReplace, wid,
		prop, typ, 8, uint32(len(data)), data).Check()
	if err != nil {
		return fmt.Errorf("%w: set window type: %v", ErrWindow, err)
	}
	return nil
}

// newGC creates a graphics context on the window for later PutImage
// uploads.
func (d *XDraw) newGC(wid xproto.Window, screen *xproto.ScreenInfo) (xproto.Gcontext, error) {
	gc, err := xproto.NewGcontextId(d.conn)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWindow, err)
	}
	err = xproto.CreateGCChecked(d.conn, gc, xproto.Drawable(wid),
		xproto.GcForeground, []uint32{screen.BlackPixel}).Check()
	if err != nil {
		return 0, fmt.Errorf("%w: create gc: %v", ErrWindow, err)
	}
	return gc, nil
}

// atom interns name, caching replies across calls.
func (d *XDraw) atom(name string) (xproto.Atom, error) {
	if a, ok := d.atoms[name]; ok {
		return a, nil
	}
	reply, err := xproto.InternAtom(d.conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("unable to intern atom %q: %v", name, err)
	}
	d.atoms[name] = reply.Atom
	return reply.Atom, nil
}

// screen returns the screen at ix, or ErrScreen when out of range.
func (d *XDraw) screen(ix int) (*xproto.ScreenInfo, error) {
	if ix < 0 || ix >= len(d.setup.Roots) {
		return nil, fmt.Errorf("%w: %d", ErrScreen, ix)
	}
	return &d.setup.Roots[ix], nil
}

// ScreenCount reports the number of screens the server exposes.
func (d *XDraw) ScreenCount() int {
	return len(d.setup.Roots)
}

// ScreenSize returns the pixel size of the screen at index.
func (d *XDraw) ScreenSize(index int) (int, int, error) {
	s, err := d.screen(index)
	if err != nil {
		return 0, 0, err
	}
	return int(s.WidthInPixels), int(s.HeightInPixels), nil
}

// RegisterFont parses and stores a font description under name.
// Descriptions that resolve to nothing fall back at use time, so
// registration itself never fails.
func (d *XDraw) RegisterFont(name string) {
	d.fonts[name] = text.ParseDescription(name)
}

// ContextFor returns a context over the window's surface.
func (d *XDraw) ContextFor(id WindowID) (Context, error) {
	s, ok := d.surfaces[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrContext, id)
	}
	return newDrawContext(&s.surface, d.resolver, d.fonts), nil
}

// Flush uploads every dirty surface to its window and syncs the
// connection. Upload errors are logged at debug level and otherwise
// dropped; a failed surface stays dirty for the next flush.
func (d *XDraw) Flush() {
	for id, s := range d.surfaces {
		if !s.dirty {
			continue
		}
		if err := d.putImage(s); err != nil {
			Logger().Debug("surface upload failed", "window", id, "err", err)
			continue
		}
		s.dirty = false
	}
	d.conn.Sync()
}

// putImage uploads the surface pixmap in row chunks that respect the
// request budget.
func (d *XDraw) putImage(s *xsurface) error {
	w, h := s.pix.Width(), s.pix.Height()
	if w == 0 || h == 0 {
		return nil
	}
	rows := putImageRows(w)
	for y := 0; y < h; y += rows {
		n := rows
		if y+n > h {
			n = h - y
		}
		data := bgrxRows(s.pix, y, n)
		err := xproto.PutImageChecked(d.conn, xproto.ImageFormatZPixmap,
			xproto.Drawable(s.win), s.gc,
			uint16(w), uint16(n), 0, int16(y), 0, s.depth, data).Check()
		if err != nil {
			return err
		}
	}
	return nil
}

// putImageRows returns how many rows of a width-pixel surface fit in
// one PutImage request.
func putImageRows(width int) int {
	rows := putImageBudget / (width * 4)
	if rows < 1 {
		rows = 1
	}
	return rows
}

// bgrxRows converts n pixmap rows starting at y0 from RGBA to the
// BGRX byte order of 24-bit ZPixmap data on little-endian servers.
func bgrxRows(p *Pixmap, y0, n int) []byte {
	stride := p.Width() * 4
	src := p.Data()[y0*stride : (y0+n)*stride]
	out := make([]byte, len(src))
	for i := 0; i < len(src); i += 4 {
		out[i] = src[i+2]
		out[i+1] = src[i+1]
		out[i+2] = src[i]
		out[i+3] = 0
	}
	return out
}

// rootVisualType finds the visual-type record matching the screen's
// root visual. Surfaces need a direct-mapped color visual; anything
// else fails with ErrWindow.
func rootVisualType(screen *xproto.ScreenInfo) (*xproto.VisualInfo, error) {
	for _, depth := range screen.AllowedDepths {
		for i := range depth.Visuals {
			v := &depth.Visuals[i]
			if v.VisualId != screen.RootVisual {
				continue
			}
			switch v.Class {
			case xproto.VisualClassTrueColor, xproto.VisualClassDirectColor:
				return v, nil
			default:
				return nil, fmt.Errorf("%w: unsupported visual class %d", ErrWindow, v.Class)
			}
		}
	}
	return nil, fmt.Errorf("%w: no visual type for root visual", ErrWindow)
}

// MapWindow makes the window visible. The id goes straight to the
// server; it is not checked against the surface registry.
func (d *XDraw) MapWindow(id WindowID) {
	xproto.MapWindow(d.conn, xproto.Window(id))
}

// UnmapWindow hides the window, again without registry validation.
func (d *XDraw) UnmapWindow(id WindowID) {
	xproto.UnmapWindow(d.conn, xproto.Window(id))
}

// NextEvent blocks until the server delivers an event. Both returns
// are nil once the connection shuts down.
func (d *XDraw) NextEvent() (xgb.Event, error) {
	ev, xerr := d.conn.WaitForEvent()
	if xerr != nil {
		return nil, xerr
	}
	return ev, nil
}

// Close shuts the X connection down. Surfaces and contexts from this
// XDraw are unusable afterwards.
func (d *XDraw) Close() error {
	d.conn.Close()
	return nil
}
