package draw

// WindowType describes the intent of a window so that a compositor or
// window manager can make placement and decoration decisions for it.
type WindowType int

const (
	// WindowTypeDock is for bars that dock to a screen edge without
	// decoration.
	WindowTypeDock WindowType = iota

	// WindowTypeMenu is for popup menus.
	WindowTypeMenu

	// WindowTypeNormal is for regular top-level windows.
	WindowTypeNormal
)

// EWMHString returns the extended window manager hint identifier set as
// the _NET_WM_WINDOW_TYPE property value for this window type.
func (t WindowType) EWMHString() string {
	switch t {
	case WindowTypeDock:
		return "_NET_WM_WINDOW_TYPE_DOCK"
	case WindowTypeMenu:
		return "_NET_WM_WINDOW_TYPE_MENU"
	default:
		return "_NET_WM_WINDOW_TYPE_NORMAL"
	}
}

// String returns the short window type name.
func (t WindowType) String() string {
	switch t {
	case WindowTypeDock:
		return "dock"
	case WindowTypeMenu:
		return "menu"
	case WindowTypeNormal:
		return "normal"
	default:
		return "unknown"
	}
}
