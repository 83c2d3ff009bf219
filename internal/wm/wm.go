// Package wm is the window-management state machine: clients,
// workspaces, monitors, the tiling layout, focus and the workspace bar.
// It speaks to the display server only through the Surface interface
// and is driven by a single event loop goroutine.
package wm

import (
	"context"
	"errors"
	"log/slog"
)

const (
	workspaceCount   = 10
	focusBorderWidth = 5
)

// ErrQuit is returned by Run when the shutdown drain completes.
var ErrQuit = errors.New("quit")

// Options carries the startup configuration the core needs. Colors are
// allocated pixels, already resolved by the surface adapter.
type Options struct {
	FocusColor     uint32
	UnfocusColor   uint32
	Gap            int
	BarHeight      int
	MasterFraction float64
	Terminal       []string
	Launcher       []string
	Bindings       []SpawnBinding
}

// SpawnBinding is an extra Super+Shift chord that spawns a command.
type SpawnBinding struct {
	Keysym uint32
	Exec   []string
}

// WM is the window manager state. It is not safe for concurrent use;
// Run owns it for the life of the process.
type WM struct {
	surface Surface
	spawner Spawner
	opts    Options

	workspaces [workspaceCount]Workspace
	live       Workspace
	monitors   *Monitor
	selected   *Monitor
	bindings   []Binding

	quitting bool
	forced   bool

	observe func(Snapshot)
}

func New(surface Surface, spawner Spawner, opts Options) *WM {
	wm := &WM{
		surface: surface,
		spawner: spawner,
		opts:    opts,
	}
	wm.initBindings()
	return wm
}

// Observe registers a callback invoked with a state snapshot after
// every dispatched event. The callback runs on the event loop
// goroutine and must not block.
func (wm *WM) Observe(fn func(Snapshot)) {
	wm.observe = fn
}

// Startup discovers monitors and paints the initial bars.
func (wm *WM) Startup() error {
	if err := wm.discoverMonitors(); err != nil {
		return err
	}
	wm.live = wm.workspaces[wm.selected.workspace]
	wm.drawBars()
	return nil
}

// Dispatch applies one event to the state machine. Handlers run to
// completion before the next event is dequeued; the caller is the
// single event loop goroutine.
func (wm *WM) Dispatch(msg Msg) {
	switch ev := msg.(type) {
	case KeyPress:
		wm.keyPress(ev)
	case MapRequest:
		wm.mapRequest(ev.Window)
	case DestroyNotify:
		wm.destroyNotify(ev.Window)
	case EnterNotify:
		wm.enterNotify(ev.Window)
	case ConfigureRequest:
		// Honored verbatim; tiling reasserts geometry on the next
		// relayout trigger.
		wm.surface.ConfigureWindow(ev)
	case Expose:
		if ev.Count == 0 {
			if m := wm.barFor(ev.Window); m != nil {
				wm.drawBar(m)
			}
		}
	}

	wm.save(wm.selected.workspace)
	if wm.observe != nil {
		wm.observe(wm.snapshot())
	}
}

// mapRequest manages an unseen window: append, subscribe to crossings,
// map, retile, refocus. Already managed windows are just mapped again.
func (wm *WM) mapRequest(w Window) {
	if wm.live.findClient(w) != nil {
		wm.surface.MapWindow(w)
		return
	}

	slog.Debug("Managing window", "window", w)
	wm.live.appendClient(w)
	wm.surface.WatchEnter(w)
	wm.surface.MapWindow(w)
	wm.retile()
	wm.updateFocus()
}

// destroyNotify forgets a managed window. Destroys for windows we never
// managed are ignored. A window dying on a hidden workspace is removed
// from its slot without touching the screen, which also lets the quit
// drain complete for clients parked off-screen.
func (wm *WM) destroyNotify(w Window) {
	if wm.live.findClient(w) != nil {
		wm.live.removeClient(w)
		wm.retile()
		wm.updateFocus()
		return
	}

	for i := range wm.workspaces {
		if i == wm.selected.workspace {
			continue
		}
		if wm.workspaces[i].findClient(w) != nil {
			wm.workspaces[i].removeClient(w)
			return
		}
	}
}

// enterNotify focuses the client under the pointer. Crossings into the
// root window are ignored, and focus never switches monitors here.
func (wm *WM) enterNotify(w Window) {
	if w == wm.surface.Root() {
		return
	}
	if cl := wm.live.findClient(w); cl != nil {
		wm.live.focused = cl
		wm.updateFocus()
	}
}

// Run consumes events until the context is canceled or a completed
// quit drain ends the session, in which case ErrQuit is returned.
func (wm *WM) Run(ctx context.Context, events <-chan Msg) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-events:
			if !ok {
				return errors.New("event stream closed")
			}
			wm.Dispatch(msg)
			if wm.done() {
				return ErrQuit
			}
		}
	}
}

// done reports whether the quit drain has finished: the flag is latched
// and every managed window has been reaped.
func (wm *WM) done() bool {
	if !wm.quitting {
		return false
	}
	if wm.forced {
		return true
	}
	for i := range wm.workspaces {
		if wm.workspaces[i].head != nil {
			return false
		}
	}
	return wm.live.head == nil
}
