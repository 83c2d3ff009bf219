package wm

// Window is an opaque handle to a top-level window. The core never
// interprets it; the Surface adapter maps it onto the wire protocol.
type Window uint32

// Output is one connected display region as reported at startup.
type Output struct {
	X, Y          int
	Width, Height int
}

// Surface wraps every display-server interaction the core needs. The
// real implementation lives in internal/xwm; tests substitute a
// recorder.
type Surface interface {
	// Root returns the root window handle.
	Root() Window
	// RootGeometry returns the root window size, used for the synthetic
	// monitor when output discovery comes up empty.
	RootGeometry() (width, height int)
	// Outputs enumerates connected outputs with an active CRTC.
	Outputs() ([]Output, error)
	// CreateBar creates a mapped override-redirect bar window at the
	// given root coordinates.
	CreateBar(x, y, width, height int) (Window, error)

	MapWindow(w Window)
	UnmapWindow(w Window)
	MoveResizeWindow(w Window, x, y, width, height int)
	RaiseWindow(w Window)
	SetBorderWidth(w Window, px int)
	SetBorderColor(w Window, color uint32)
	// FocusWindow directs keyboard input to w, reverting to the parent
	// when w goes away.
	FocusWindow(w Window)
	// WatchEnter subscribes the core to pointer crossings into w.
	WatchEnter(w Window)
	// ConfigureWindow applies a client's configure request verbatim.
	ConfigureWindow(ev ConfigureRequest)
	// SendDelete asks w to close itself via WM_DELETE_WINDOW. Windows
	// that ignore the message are not killed.
	SendDelete(w Window)
	// RootChildren lists the current children of the root window.
	RootChildren() ([]Window, error)
	// Origin reports the top-left corner of w in root coordinates.
	Origin(w Window) (x, y int, err error)

	FillRect(bar Window, color uint32, x, y, width, height int)
	DrawText(bar Window, fg, bg uint32, x, y int, text string)
	TextWidth(text string) int
	FontAscent() int
}

// Spawner launches detached child processes on behalf of keybindings.
type Spawner interface {
	Spawn(argv []string)
}

// Msg is an input event translated from the display server. The event
// loop dispatches on its concrete type.
type Msg interface{}

type (
	// KeyPress carries the primary keysym of the pressed keycode and
	// the raw modifier state.
	KeyPress struct {
		Keysym uint32
		State  uint16
	}

	// MapRequest is a client asking to become visible.
	MapRequest struct {
		Window Window
	}

	// DestroyNotify reports that a window is gone.
	DestroyNotify struct {
		Window Window
	}

	// EnterNotify reports the pointer crossing into a window.
	EnterNotify struct {
		Window Window
	}

	// ConfigureRequest is a client asking for geometry or stacking
	// changes. Mask selects which fields are meaningful.
	ConfigureRequest struct {
		Window      Window
		X, Y        int
		Width       int
		Height      int
		BorderWidth int
		Sibling     Window
		StackMode   byte
		Mask        uint16
	}

	// Expose reports a damaged region; only bar windows matter to us.
	Expose struct {
		Window Window
		Count  int
	}
)
