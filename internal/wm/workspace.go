package wm

// The workspace table is shared across all monitors. Handlers mutate a
// live (head, focused) pair; save and load copy between the live pair
// and the table so that switching workspaces or monitors never loses
// list state. Dispatch writes the live pair back to the current slot
// after every event, keeping slot and live equal at quiescence.

// save copies the live pair into slot idx.
func (wm *WM) save(idx int) {
	wm.workspaces[idx] = wm.live
}

// load makes slot idx the live pair and points the selected monitor at
// it.
func (wm *WM) load(idx int) {
	wm.live = wm.workspaces[idx]
	wm.selected.workspace = idx
}

// workspaceFor returns the list to lay out for m: the live pair for the
// selected monitor, the saved slot otherwise.
func (wm *WM) workspaceFor(m *Monitor) *Workspace {
	if m == wm.selected {
		return &wm.live
	}
	return &wm.workspaces[m.workspace]
}
