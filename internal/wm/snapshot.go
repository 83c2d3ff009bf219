package wm

// Snapshot is a read-only copy of the manager state handed to
// observers after each dispatch.
type Snapshot struct {
	Quitting   bool                    `json:"quitting"`
	Focused    Window                  `json:"focused"` // zero when nothing is focused
	Monitors   []MonitorState          `json:"monitors"`
	Workspaces [workspaceCount]WSState `json:"workspaces"`
}

// MonitorState describes one monitor; Selected marks the monitor the
// manager currently targets.
type MonitorState struct {
	X         int  `json:"x"`
	Y         int  `json:"y"`
	Width     int  `json:"width"`
	Height    int  `json:"height"`
	Primary   bool `json:"primary"`
	Selected  bool `json:"selected"`
	Workspace int  `json:"workspace"`
}

// WSState is the window list of one workspace slot, master first.
type WSState struct {
	Windows []Window `json:"windows"`
	Focused Window   `json:"focused"` // zero when the list is empty
}

func (wm *WM) snapshot() Snapshot {
	s := Snapshot{Quitting: wm.quitting}
	if wm.live.focused != nil {
		s.Focused = wm.live.focused.window
	}
	for m := wm.monitors; m != nil; m = m.next {
		s.Monitors = append(s.Monitors, MonitorState{
			X:         m.x,
			Y:         m.y,
			Width:     m.width,
			Height:    m.height,
			Primary:   m.primary,
			Selected:  m == wm.selected,
			Workspace: m.workspace,
		})
	}
	for i := range wm.workspaces {
		ws := &wm.workspaces[i]
		var state WSState
		for cl := ws.head; cl != nil; cl = cl.next {
			state.Windows = append(state.Windows, cl.window)
		}
		if ws.focused != nil {
			state.Focused = ws.focused.window
		}
		s.Workspaces[i] = state
	}
	return s
}
