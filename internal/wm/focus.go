package wm

// updateFocus walks the live list applying border, stacking and input
// focus so the focused client stands out. A no-op on an empty list.
func (wm *WM) updateFocus() {
	for cl := wm.live.head; cl != nil; cl = cl.next {
		if cl == wm.live.focused {
			wm.surface.SetBorderWidth(cl.window, focusBorderWidth)
			wm.surface.SetBorderColor(cl.window, wm.opts.FocusColor)
			wm.surface.FocusWindow(cl.window)
			wm.surface.RaiseWindow(cl.window)
		} else {
			wm.surface.SetBorderColor(cl.window, wm.opts.UnfocusColor)
		}
	}
}

// focusMaster moves the cursor to the master.
func (wm *WM) focusMaster() {
	if wm.live.focused == nil || wm.live.head == nil {
		return
	}
	wm.live.focused = wm.live.head
	wm.updateFocus()
}

// focusStack moves the cursor from the master to the first stacked
// client, if there is one.
func (wm *WM) focusStack() {
	if wm.live.focused == nil || wm.live.head == nil {
		return
	}
	if wm.live.focused == wm.live.head && wm.live.head.next != nil {
		wm.live.focused = wm.live.head.next
	}
	wm.updateFocus()
}

// focusPrev moves the cursor up the stack, from the first stacked
// client onto the master, and stays put on the master.
func (wm *WM) focusPrev() {
	if wm.live.focused == nil || wm.live.head == nil {
		return
	}
	if wm.live.focused != wm.live.head && wm.live.focused.prev != nil {
		wm.live.focused = wm.live.focused.prev
	}
	wm.updateFocus()
}

// focusNext moves the cursor down the stack.
func (wm *WM) focusNext() {
	if wm.live.focused == nil || wm.live.head == nil {
		return
	}
	if wm.live.focused.next != nil {
		wm.live.focused = wm.live.focused.next
	}
	wm.updateFocus()
}

// swapWithMaster exchanges window handles between the focused client
// and the master, leaving the nodes in place, then retiles.
func (wm *WM) swapWithMaster() {
	if wm.live.head == nil || wm.live.focused == nil || wm.live.focused == wm.live.head {
		return
	}
	wm.live.head.window, wm.live.focused.window = wm.live.focused.window, wm.live.head.window
	wm.live.focused = wm.live.head
	wm.retile()
	wm.updateFocus()
}
