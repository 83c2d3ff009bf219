package xwm

import (
	"github.com/ItsNotGoodName/stupidwm/internal/wm"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
)

// Surface implements wm.Surface. Requests are fired unchecked; the
// protocol no-ops requests that reference windows that are already
// gone, which is exactly the behavior the core expects.
var _ wm.Surface = (*Surface)(nil)

func (s *Surface) Root() wm.Window {
	return wm.Window(s.screen.Root)
}

func (s *Surface) RootGeometry() (int, int) {
	return int(s.screen.WidthInPixels), int(s.screen.HeightInPixels)
}

// Outputs enumerates connected RandR outputs with an active CRTC. An
// empty slice makes the core fall back to the root geometry.
func (s *Surface) Outputs() ([]wm.Output, error) {
	if !s.randrOK {
		return nil, nil
	}
	res, err := randr.GetScreenResources(s.conn, s.screen.Root).Reply()
	if err != nil {
		return nil, err
	}

	var outputs []wm.Output
	for _, output := range res.Outputs {
		info, err := randr.GetOutputInfo(s.conn, output, 0).Reply()
		if err != nil {
			return nil, err
		}
		if info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
			continue
		}
		crtc, err := randr.GetCrtcInfo(s.conn, info.Crtc, 0).Reply()
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, wm.Output{
			X:      int(crtc.X),
			Y:      int(crtc.Y),
			Width:  int(crtc.Width),
			Height: int(crtc.Height),
		})
	}
	return outputs, nil
}

// CreateBar creates and maps an override-redirect strip that receives
// Expose events, with a private graphics context for drawing.
func (s *Surface) CreateBar(x, y, width, height int) (wm.Window, error) {
	wid, err := xproto.NewWindowId(s.conn)
	if err != nil {
		return 0, err
	}
	if err := xproto.CreateWindowChecked(s.conn, s.screen.RootDepth,
		wid, s.screen.Root,
		int16(x), int16(y), uint16(width), uint16(height), 0,
		xproto.WindowClassInputOutput, s.screen.RootVisual,
		xproto.CwBackPixel|xproto.CwOverrideRedirect|xproto.CwEventMask,
		[]uint32{
			s.unfocusPixel,
			1,
			xproto.EventMaskExposure,
		}).Check(); err != nil {
		return 0, err
	}

	gc, err := xproto.NewGcontextId(s.conn)
	if err != nil {
		return 0, err
	}
	if err := xproto.CreateGCChecked(s.conn, gc, xproto.Drawable(wid), 0, nil).Check(); err != nil {
		return 0, err
	}
	s.gcs[wid] = gc

	if err := xproto.MapWindowChecked(s.conn, wid).Check(); err != nil {
		return 0, err
	}
	return wm.Window(wid), nil
}

func (s *Surface) MapWindow(w wm.Window) {
	xproto.MapWindow(s.conn, xproto.Window(w))
}

func (s *Surface) UnmapWindow(w wm.Window) {
	xproto.UnmapWindow(s.conn, xproto.Window(w))
}

func (s *Surface) MoveResizeWindow(w wm.Window, x, y, width, height int) {
	xproto.ConfigureWindow(s.conn, xproto.Window(w),
		xproto.ConfigWindowX|xproto.ConfigWindowY|
			xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{
			uint32(int32(x)),
			uint32(int32(y)),
			uint32(int32(width)),
			uint32(int32(height)),
		})
}

func (s *Surface) RaiseWindow(w wm.Window) {
	xproto.ConfigureWindow(s.conn, xproto.Window(w),
		xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove})
}

func (s *Surface) SetBorderWidth(w wm.Window, px int) {
	xproto.ConfigureWindow(s.conn, xproto.Window(w),
		xproto.ConfigWindowBorderWidth, []uint32{uint32(px)})
}

func (s *Surface) SetBorderColor(w wm.Window, color uint32) {
	xproto.ChangeWindowAttributes(s.conn, xproto.Window(w),
		xproto.CwBorderPixel, []uint32{color})
}

func (s *Surface) FocusWindow(w wm.Window) {
	xproto.SetInputFocus(s.conn, xproto.InputFocusParent,
		xproto.Window(w), xproto.TimeCurrentTime)
}

func (s *Surface) WatchEnter(w wm.Window) {
	xproto.ChangeWindowAttributes(s.conn, xproto.Window(w),
		xproto.CwEventMask, []uint32{xproto.EventMaskEnterWindow})
}

// ConfigureWindow forwards a configure request verbatim. Values must
// follow the mask's bit order on the wire.
func (s *Surface) ConfigureWindow(ev wm.ConfigureRequest) {
	mask, values := uint16(0), []uint32(nil)
	if ev.Mask&xproto.ConfigWindowX != 0 {
		mask |= xproto.ConfigWindowX
		values = append(values, uint32(int32(ev.X)))
	}
	if ev.Mask&xproto.ConfigWindowY != 0 {
		mask |= xproto.ConfigWindowY
		values = append(values, uint32(int32(ev.Y)))
	}
	if ev.Mask&xproto.ConfigWindowWidth != 0 {
		mask |= xproto.ConfigWindowWidth
		values = append(values, uint32(int32(ev.Width)))
	}
	if ev.Mask&xproto.ConfigWindowHeight != 0 {
		mask |= xproto.ConfigWindowHeight
		values = append(values, uint32(int32(ev.Height)))
	}
	if ev.Mask&xproto.ConfigWindowBorderWidth != 0 {
		mask |= xproto.ConfigWindowBorderWidth
		values = append(values, uint32(int32(ev.BorderWidth)))
	}
	if ev.Mask&xproto.ConfigWindowSibling != 0 {
		mask |= xproto.ConfigWindowSibling
		values = append(values, uint32(ev.Sibling))
	}
	if ev.Mask&xproto.ConfigWindowStackMode != 0 {
		mask |= xproto.ConfigWindowStackMode
		values = append(values, uint32(ev.StackMode))
	}
	xproto.ConfigureWindow(s.conn, xproto.Window(ev.Window), mask, values)
}

// SendDelete delivers a WM_DELETE_WINDOW client message. Windows not
// speaking the protocol simply ignore it.
func (s *Surface) SendDelete(w wm.Window) {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: xproto.Window(w),
		Type:   s.atomWMProtocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(s.atomWMDeleteWindow),
			uint32(xproto.TimeCurrentTime),
			0,
			0,
			0,
		}),
	}
	xproto.SendEvent(s.conn, false, xproto.Window(w),
		xproto.EventMaskNoEvent, string(ev.Bytes()))
}

func (s *Surface) RootChildren() ([]wm.Window, error) {
	tree, err := xproto.QueryTree(s.conn, s.screen.Root).Reply()
	if err != nil {
		return nil, err
	}
	children := make([]wm.Window, 0, len(tree.Children))
	for _, c := range tree.Children {
		// Bars are ours; they never take part in the quit drain.
		if _, ok := s.gcs[c]; ok {
			continue
		}
		children = append(children, wm.Window(c))
	}
	return children, nil
}

func (s *Surface) Origin(w wm.Window) (int, int, error) {
	geom, err := xproto.GetGeometry(s.conn, xproto.Drawable(w)).Reply()
	if err != nil {
		return 0, 0, err
	}
	return int(geom.X), int(geom.Y), nil
}

func (s *Surface) FillRect(bar wm.Window, color uint32, x, y, width, height int) {
	gc, ok := s.gcs[xproto.Window(bar)]
	if !ok {
		return
	}
	xproto.ChangeGC(s.conn, gc, xproto.GcForeground, []uint32{color})
	xproto.PolyFillRectangle(s.conn, xproto.Drawable(bar), gc,
		[]xproto.Rectangle{{
			X:      int16(x),
			Y:      int16(y),
			Width:  uint16(width),
			Height: uint16(height),
		}})
}

func (s *Surface) DrawText(bar wm.Window, fg, bg uint32, x, y int, text string) {
	gc, ok := s.gcs[xproto.Window(bar)]
	if !ok {
		return
	}
	xproto.ChangeGC(s.conn, gc,
		xproto.GcForeground|xproto.GcBackground|xproto.GcFont,
		[]uint32{fg, bg, uint32(s.font)})
	xproto.ImageText8(s.conn, byte(len(text)), xproto.Drawable(bar), gc,
		int16(x), int16(y), text)
}

func (s *Surface) TextWidth(text string) int {
	return s.glyphWidth * len(text)
}

func (s *Surface) FontAscent() int {
	return s.fontAscent
}
