package draw

import "errors"

// Sentinel errors for the draw package. Callers match them with
// errors.Is; most are wrapped with additional context at the return
// site.
var (
	// ErrConnection is returned when no display server is reachable or
	// the connection handshake fails.
	ErrConnection = errors.New("draw: unable to connect to display server")

	// ErrScreen is returned for screen indices outside the configured
	// screen list.
	ErrScreen = errors.New("draw: screen index out of bounds")

	// ErrWindow is returned when window creation or its property setup
	// fails, including a missing visual for the target screen.
	ErrWindow = errors.New("draw: window creation failed")

	// ErrContext is returned by ContextFor for a window id without an
	// initialised surface.
	ErrContext = errors.New("draw: uninitialised window surface")

	// ErrFont is returned by Context.Font for a name that was not
	// registered when the context was created.
	ErrFont = errors.New("draw: unknown font")

	// ErrText is returned when no text layout can be produced for a
	// surface, typically because no usable font source exists.
	ErrText = errors.New("draw: unable to create text layout")
)
