package wm

import "log/slog"

// spawnCommand hands the argv to the spawner. Empty argv is ignored.
func (wm *WM) spawnCommand(argv []string) {
	if len(argv) == 0 {
		return
	}
	wm.spawner.Spawn(argv)
}

// killFocused asks the focused client to close itself via
// WM_DELETE_WINDOW. The client is expected to destroy its window, which
// comes back to us as a DestroyNotify. Sent twice, as the message can
// race a client that is still selecting for it.
func (wm *WM) killFocused() {
	if wm.live.focused == nil {
		return
	}
	w := wm.live.focused.window
	wm.surface.SendDelete(w)
	wm.surface.SendDelete(w)
}

// changeWorkspace switches the selected monitor to workspace idx,
// unmapping the outgoing clients and mapping the incoming ones.
func (wm *WM) changeWorkspace(idx int) {
	if idx == wm.selected.workspace {
		return
	}

	for cl := wm.live.head; cl != nil; cl = cl.next {
		wm.surface.UnmapWindow(cl.window)
	}

	wm.save(wm.selected.workspace)
	wm.load(idx)

	for cl := wm.live.head; cl != nil; cl = cl.next {
		wm.surface.MapWindow(cl.window)
	}

	wm.retile()
	wm.updateFocus()
	wm.drawBar(wm.selected)
}

// moveToWorkspace sends the focused window to workspace idx and hides
// it, keeping the visible set equal to the current workspace.
func (wm *WM) moveToWorkspace(idx int) {
	if idx == wm.selected.workspace || wm.live.focused == nil {
		return
	}

	win := wm.live.focused.window
	cur := wm.selected.workspace

	wm.save(cur)
	wm.load(idx)
	wm.live.appendClient(win)
	wm.save(idx)

	wm.load(cur)
	wm.live.removeClient(win)
	wm.surface.UnmapWindow(win)

	wm.retile()
	wm.updateFocus()
}

// focusNextMonitor advances the selection along the monitor list.
func (wm *WM) focusNextMonitor() {
	if wm.selected == nil || wm.selected.next == nil {
		return
	}
	wm.focusMonitor(wm.selected.next)
}

// beginQuit latches the shutdown drain: every child of the root window
// is asked to delete itself and the event loop keeps dispatching until
// no managed windows remain. A second invocation stops the drain on the
// spot.
func (wm *WM) beginQuit() {
	if wm.quitting {
		wm.forced = true
		return
	}
	wm.quitting = true

	children, err := wm.surface.RootChildren()
	if err != nil {
		slog.Error("Failed to query root children", "error", err)
		wm.forced = true
		return
	}
	for _, c := range children {
		wm.surface.SendDelete(c)
	}
	slog.Info("Quit latched, draining windows", "children", len(children))
}
