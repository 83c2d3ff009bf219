package wm

// Modifier masks and keysyms, from X11's X.h and keysymdef.h. Letters
// and digits are their own keysyms so rune literals cover the rest.
const (
	ShiftMask uint16 = 1 << 0
	Mod4Mask  uint16 = 1 << 6

	xkReturn uint32 = 0xff0d
)

// Binding maps a modifier+keysym chord to an action. The table is
// fixed at startup; the surface adapter grabs each chord on the root
// window.
type Binding struct {
	Mod    uint16
	Keysym uint32
	do     func(*WM)
}

// initBindings builds the keybinding table. Spawn argv for the terminal
// and launcher chords come from the options, as do any extra spawn
// bindings from the config file.
func (wm *WM) initBindings() {
	bindings := []Binding{
		{Mod4Mask | ShiftMask, 'p', func(wm *WM) { wm.spawnCommand(wm.opts.Launcher) }},
		{Mod4Mask | ShiftMask, xkReturn, func(wm *WM) { wm.spawnCommand(wm.opts.Terminal) }},
		{Mod4Mask | ShiftMask, 'q', (*WM).killFocused},
		{Mod4Mask | ShiftMask, 'e', (*WM).beginQuit},
		{Mod4Mask, 'h', (*WM).focusMaster},
		{Mod4Mask, 'l', (*WM).focusStack},
		{Mod4Mask, 'k', (*WM).focusPrev},
		{Mod4Mask, 'j', (*WM).focusNext},
		{Mod4Mask, 'm', (*WM).swapWithMaster},
		{Mod4Mask, 'n', (*WM).focusNextMonitor},
	}

	digits := [workspaceCount]uint32{'1', '2', '3', '4', '5', '6', '7', '8', '9', '0'}
	for i, keysym := range digits {
		idx := i
		bindings = append(bindings,
			Binding{Mod4Mask, keysym, func(wm *WM) { wm.changeWorkspace(idx) }},
			Binding{Mod4Mask | ShiftMask, keysym, func(wm *WM) { wm.moveToWorkspace(idx) }},
		)
	}

	for _, sb := range wm.opts.Bindings {
		argv := sb.Exec
		bindings = append(bindings, Binding{Mod4Mask | ShiftMask, sb.Keysym, func(wm *WM) { wm.spawnCommand(argv) }})
	}

	wm.bindings = bindings
}

// Bindings exposes the table so the surface adapter can grab the
// chords.
func (wm *WM) Bindings() []Binding {
	return wm.bindings
}

// keyPress invokes the first binding whose chord equals the event's.
// Unknown combinations are ignored.
func (wm *WM) keyPress(ev KeyPress) {
	for _, b := range wm.bindings {
		if b.Keysym == ev.Keysym && b.Mod == ev.State {
			b.do(wm)
			return
		}
	}
}
