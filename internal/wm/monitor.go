package wm

import "log/slog"

// Monitor is one physical output region. Each monitor carries its own
// bar window and an active workspace index into the shared table.
// Monitors are discovered once at startup and never again.
type Monitor struct {
	x, y          int
	width, height int
	primary       bool
	bar           Window
	workspace     int
	next          *Monitor
}

// discoverMonitors builds the monitor list from the surface's outputs.
// The first output becomes primary and selected. When discovery yields
// nothing, a single synthetic monitor covering the root window is
// created.
func (wm *WM) discoverMonitors() error {
	outputs, err := wm.surface.Outputs()
	if err != nil {
		return err
	}

	var first, last *Monitor
	for i, o := range outputs {
		m, err := wm.newMonitor(o.X, o.Y, o.Width, o.Height, i == 0)
		if err != nil {
			return err
		}
		if first == nil {
			first = m
		} else {
			last.next = m
		}
		last = m
		slog.Debug("Discovered monitor", "x", o.X, "y", o.Y, "width", o.Width, "height", o.Height, "primary", i == 0)
	}

	if first == nil {
		width, height := wm.surface.RootGeometry()
		first, err = wm.newMonitor(0, 0, width, height, true)
		if err != nil {
			return err
		}
		slog.Debug("No outputs reported, using root geometry", "width", width, "height", height)
	}

	wm.monitors = first
	wm.selected = first
	return nil
}

func (wm *WM) newMonitor(x, y, width, height int, primary bool) (*Monitor, error) {
	bar, err := wm.surface.CreateBar(x, y, width, wm.opts.BarHeight)
	if err != nil {
		return nil, err
	}
	return &Monitor{
		x:       x,
		y:       y,
		width:   width,
		height:  height,
		primary: primary,
		bar:     bar,
	}, nil
}

// monitorFor maps a window to the monitor containing its origin. The
// root window, unknown windows and lookup failures all resolve to the
// selected monitor.
func (wm *WM) monitorFor(w Window) *Monitor {
	if w == wm.surface.Root() {
		return wm.selected
	}
	x, y, err := wm.surface.Origin(w)
	if err != nil {
		return wm.selected
	}
	for m := wm.monitors; m != nil; m = m.next {
		if x >= m.x && x < m.x+m.width && y >= m.y && y < m.y+m.height {
			return m
		}
	}
	return wm.selected
}

// focusMonitor selects m, rebinding the live pair to m's active
// workspace, then refreshes focus and bars.
func (wm *WM) focusMonitor(m *Monitor) {
	if m == nil || m == wm.selected {
		return
	}
	wm.save(wm.selected.workspace)
	wm.selected = m
	wm.live = wm.workspaces[m.workspace]
	wm.updateFocus()
	wm.drawBars()
}
