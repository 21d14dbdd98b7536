// Package draw creates lightweight X11 windows (status bars, menus)
// and renders simple 2D content into them: filled rectangles and a
// single line of text.
//
// # Overview
//
// The package exposes a two-level contract. A Draw owns the display
// connection, the font registry and one surface per window; a Context
// is a short-lived drawing cursor over one window's surface, valid
// for a single render pass. Drawing happens in CPU pixmaps; Flush
// uploads them to the server.
//
// # Quick Start
//
//	drw, err := draw.NewXDraw()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer drw.Close()
//
//	drw.RegisterFont("monospace")
//	id, err := drw.NewWindow(draw.WindowTypeDock, 1920, 18)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx, err := drw.ContextFor(id)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ctx.Color(0x282828)
//	ctx.Rectangle(0, 0, 1920, 18)
//	ctx.Color(0xebdbb2)
//	if err := ctx.Font("monospace", 11); err != nil {
//	    log.Fatal(err)
//	}
//	ctx.Text("hello", draw.Padding{Left: 3, Right: 3})
//	drw.Flush()
//
// # Backends
//
// XDraw talks to a real X server. MemDraw implements the same Draw
// interface headlessly for tests and golden rendering; both share the
// same context and pixmap code, so pixels match across backends.
//
// # Coordinate System
//
// Origin (0, 0) at the top-left of the window, X increasing right, Y
// increasing down, sizes in pixels. Translate shifts the origin for
// subsequent drawing on the same context.
package draw

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
