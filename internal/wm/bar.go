package wm

// tags are the workspace labels painted on every bar, in table order.
var tags = [workspaceCount]string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"}

// drawBar repaints one monitor's tag strip. The cell of the monitor's
// active workspace is inverted.
func (wm *WM) drawBar(m *Monitor) {
	s := wm.surface
	barH := wm.opts.BarHeight

	s.FillRect(m.bar, wm.opts.UnfocusColor, 0, 0, m.width, barH)

	baseline := barH - (barH-s.FontAscent())/2
	x := 0
	for i, tag := range tags {
		cell := s.TextWidth(tag) + 10
		bg, fg := wm.opts.UnfocusColor, wm.opts.FocusColor
		if i == m.workspace {
			bg, fg = wm.opts.FocusColor, wm.opts.UnfocusColor
		}
		s.FillRect(m.bar, bg, x, 0, cell, barH)
		s.DrawText(m.bar, fg, bg, x+5, baseline, tag)
		x += cell
	}
}

func (wm *WM) drawBars() {
	for m := wm.monitors; m != nil; m = m.next {
		wm.drawBar(m)
	}
}

// barFor maps a window to the monitor owning it as a bar, nil when the
// window is not a bar.
func (wm *WM) barFor(w Window) *Monitor {
	for m := wm.monitors; m != nil; m = m.next {
		if m.bar == w {
			return m
		}
	}
	return nil
}
