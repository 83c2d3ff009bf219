package wm

import (
	"fmt"
	"testing"
)

// recorder is a Surface that records every call so tests can assert on
// the exact operation stream. The default root is 1920x1080 with no
// outputs, which makes Startup synthesize a single monitor at the
// origin.
type recorder struct {
	root         Window
	rootW, rootH int
	outputs      []Output
	origins      map[Window][2]int
	children     []Window

	nextWin Window
	bars    []Window

	calls    []string
	mapped   []Window
	unmapped []Window
	deletes  []Window
	geom     map[Window][4]int
}

func newRecorder() *recorder {
	return &recorder{
		root:    1,
		rootW:   1920,
		rootH:   1080,
		origins: map[Window][2]int{},
		geom:    map[Window][4]int{},
		nextWin: 1000,
	}
}

func (r *recorder) logf(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (r *recorder) has(call string) bool {
	for _, c := range r.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (r *recorder) reset() {
	r.calls = nil
	r.mapped = nil
	r.unmapped = nil
	r.deletes = nil
}

func (r *recorder) Root() Window                { return r.root }
func (r *recorder) RootGeometry() (int, int)    { return r.rootW, r.rootH }
func (r *recorder) Outputs() ([]Output, error)  { return r.outputs, nil }
func (r *recorder) RootChildren() ([]Window, error) {
	return r.children, nil
}

func (r *recorder) CreateBar(x, y, width, height int) (Window, error) {
	r.nextWin++
	r.bars = append(r.bars, r.nextWin)
	r.logf("createbar %d %d %d %d", x, y, width, height)
	return r.nextWin, nil
}

func (r *recorder) MapWindow(w Window) {
	r.mapped = append(r.mapped, w)
	r.logf("map %d", w)
}

func (r *recorder) UnmapWindow(w Window) {
	r.unmapped = append(r.unmapped, w)
	r.logf("unmap %d", w)
}

func (r *recorder) MoveResizeWindow(w Window, x, y, width, height int) {
	r.geom[w] = [4]int{x, y, width, height}
	r.logf("moveresize %d %d %d %d %d", w, x, y, width, height)
}

func (r *recorder) RaiseWindow(w Window)            { r.logf("raise %d", w) }
func (r *recorder) SetBorderWidth(w Window, px int) { r.logf("borderwidth %d %d", w, px) }
func (r *recorder) SetBorderColor(w Window, c uint32) {
	r.logf("bordercolor %d %#x", w, c)
}
func (r *recorder) FocusWindow(w Window) { r.logf("focus %d", w) }
func (r *recorder) WatchEnter(w Window)  { r.logf("watchenter %d", w) }

func (r *recorder) ConfigureWindow(ev ConfigureRequest) {
	r.logf("configure %d", ev.Window)
}

func (r *recorder) SendDelete(w Window) {
	r.deletes = append(r.deletes, w)
	r.logf("delete %d", w)
}

func (r *recorder) Origin(w Window) (int, int, error) {
	if xy, ok := r.origins[w]; ok {
		return xy[0], xy[1], nil
	}
	return 0, 0, fmt.Errorf("unknown window %d", w)
}

func (r *recorder) FillRect(bar Window, color uint32, x, y, width, height int) {
	r.logf("fillrect %d %#x %d %d %d %d", bar, color, x, y, width, height)
}

func (r *recorder) DrawText(bar Window, fg, bg uint32, x, y int, text string) {
	r.logf("drawtext %d %q %d %d", bar, text, x, y)
}

func (r *recorder) TextWidth(text string) int { return 7 * len(text) }
func (r *recorder) FontAscent() int           { return 11 }

type spawnRecorder struct {
	argv [][]string
}

func (s *spawnRecorder) Spawn(argv []string) {
	s.argv = append(s.argv, argv)
}

func testOptions() Options {
	return Options{
		FocusColor:     0xf9f5d7,
		UnfocusColor:   0x282828,
		Gap:            10,
		BarHeight:      20,
		MasterFraction: 0.55,
		Terminal:       []string{"kitty"},
		Launcher:       []string{"dmenu_run"},
	}
}

func newTestWM(t *testing.T) (*WM, *recorder, *spawnRecorder) {
	t.Helper()
	r := newRecorder()
	sp := &spawnRecorder{}
	w := New(r, sp, testOptions())
	if err := w.Startup(); err != nil {
		t.Fatalf("startup: %v", err)
	}
	return w, r, sp
}

// checkWorkspace verifies the list integrity and focus membership
// invariants on one workspace.
func checkWorkspace(t *testing.T, ws *Workspace) {
	t.Helper()
	focusedSeen := false
	for cl := ws.head; cl != nil; cl = cl.next {
		if cl.prev == nil && cl != ws.head {
			t.Fatalf("client %d has nil prev but is not head", cl.window)
		}
		if cl.prev != nil && cl.prev.next != cl {
			t.Fatalf("client %d: prev.next != self", cl.window)
		}
		if cl.next != nil && cl.next.prev != cl {
			t.Fatalf("client %d: next.prev != self", cl.window)
		}
		if cl == ws.focused {
			focusedSeen = true
		}
	}
	if ws.head == nil && ws.focused != nil {
		t.Fatalf("empty list with focused client %d", ws.focused.window)
	}
	if ws.head != nil && !focusedSeen {
		t.Fatalf("focused client is not a member of the list")
	}
}

func checkInvariants(t *testing.T, w *WM) {
	t.Helper()
	checkWorkspace(t, &w.live)
	for i := range w.workspaces {
		checkWorkspace(t, &w.workspaces[i])
	}
}

func windows(ws *Workspace) []Window {
	var out []Window
	for cl := ws.head; cl != nil; cl = cl.next {
		out = append(out, cl.window)
	}
	return out
}

func equalWindows(a, b []Window) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
