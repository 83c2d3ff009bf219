package wm

// tile lays the monitor's client list out as a master/stack
// arrangement: the head takes the wide left tile, the remaining clients
// share the right column vertically. All geometry is relative to the
// monitor's rectangle. The engine does not clamp; geometries that go
// negative on tiny monitors are the caller's problem.
func (wm *WM) tile(m *Monitor) {
	ws := wm.workspaceFor(m)
	master := ws.head
	if master == nil {
		return
	}

	gap := wm.opts.Gap
	barH := wm.opts.BarHeight
	left := m.x + gap
	top := m.y + barH + gap

	if master.next == nil {
		wm.surface.MoveResizeWindow(master.window, left, top,
			m.width-3*gap, m.height-3*gap-barH)
		return
	}

	masterWidth := int(wm.opts.MasterFraction * float64(m.width))
	wm.surface.MoveResizeWindow(master.window, left, top,
		masterWidth, m.height-2*gap-barH)

	n := 0
	for cl := master.next; cl != nil; cl = cl.next {
		n++
	}

	x := m.x + masterWidth + 3*gap
	y := top
	stackWidth := m.width - masterWidth - 5*gap
	for cl := master.next; cl != nil; cl = cl.next {
		wm.surface.MoveResizeWindow(cl.window, x, y,
			stackWidth, m.height/n-2*gap)
		y += m.height / n
	}
}

// retile reapplies the layout on the selected monitor.
func (wm *WM) retile() {
	wm.tile(wm.selected)
}
