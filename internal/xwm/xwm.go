// Package xwm implements wm.Surface on top of the X protocol via
// jezek/xgb. It owns every X resource the manager touches: the root
// event mask, atoms, colors, the bar font and windows, and key grabs.
package xwm

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ItsNotGoodName/stupidwm/internal/wm"
	"github.com/ItsNotGoodName/stupidwm/xcursor"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
)

const (
	keycodeLo = 8
	keycodeHi = 255
)

type Surface struct {
	conn   *xgb.Conn
	screen *xproto.ScreenInfo

	atomWMProtocols    xproto.Atom
	atomWMDeleteWindow xproto.Atom

	font       xproto.Font
	fontAscent int
	glyphWidth int

	focusPixel   uint32
	unfocusPixel uint32

	// keysyms holds the primary keysym of every keycode.
	keysyms [keycodeHi + 1]xproto.Keysym

	// gcs maps each bar window to its graphics context.
	gcs map[xproto.Window]xproto.Gcontext

	randrOK bool
}

// NewSurface claims window management on the default screen and
// allocates the resources the core needs. Failing to become the
// manager, to parse a color or to open the font is fatal to startup.
func NewSurface(conn *xgb.Conn, focusColor, unfocusColor, fontName string) (*Surface, error) {
	s := &Surface{
		conn:   conn,
		screen: xproto.Setup(conn).DefaultScreen(conn),
		gcs:    map[xproto.Window]xproto.Gcontext{},
	}

	if err := xproto.ChangeWindowAttributesChecked(conn, s.screen.Root,
		xproto.CwEventMask,
		[]uint32{
			xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify,
		}).Check(); err != nil {
		if _, ok := err.(xproto.AccessError); ok {
			return nil, fmt.Errorf("another window manager is running")
		}
		return nil, err
	}

	if err := randr.Init(conn); err != nil {
		slog.Warn("RandR unavailable, falling back to root geometry", "error", err)
	} else {
		s.randrOK = true
	}

	cursor, err := xcursor.CreateCursor(conn, xcursor.LeftPtr)
	if err != nil {
		return nil, fmt.Errorf("create cursor: %w", err)
	}
	if err := xproto.ChangeWindowAttributesChecked(conn, s.screen.Root,
		xproto.CwCursor, []uint32{uint32(cursor)}).Check(); err != nil {
		return nil, err
	}

	s.atomWMProtocols, err = s.internAtom("WM_PROTOCOLS")
	if err != nil {
		return nil, err
	}
	s.atomWMDeleteWindow, err = s.internAtom("WM_DELETE_WINDOW")
	if err != nil {
		return nil, err
	}

	s.focusPixel, err = s.allocColor(focusColor)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", focusColor, err)
	}
	s.unfocusPixel, err = s.allocColor(unfocusColor)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", unfocusColor, err)
	}

	if err := s.openFont(fontName); err != nil {
		return nil, fmt.Errorf("font %q: %w", fontName, err)
	}

	if err := s.initKeymap(); err != nil {
		return nil, err
	}

	return s, nil
}

// FocusPixel is the allocated focused-border pixel.
func (s *Surface) FocusPixel() uint32 { return s.focusPixel }

// UnfocusPixel is the allocated unfocused-border pixel.
func (s *Surface) UnfocusPixel() uint32 { return s.unfocusPixel }

func (s *Surface) internAtom(name string) (xproto.Atom, error) {
	r, err := xproto.InternAtom(s.conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, err
	}
	return r.Atom, nil
}

// allocColor resolves "#rrggbb" or an X color name to a pixel in the
// default colormap.
func (s *Surface) allocColor(name string) (uint32, error) {
	cmap := s.screen.DefaultColormap

	if strings.HasPrefix(name, "#") && len(name) == 7 {
		rgb, err := strconv.ParseUint(name[1:], 16, 32)
		if err != nil {
			return 0, err
		}
		// Scale 8-bit channels to the protocol's 16-bit range.
		r := uint16((rgb >> 16 & 0xff) * 0x101)
		g := uint16((rgb >> 8 & 0xff) * 0x101)
		b := uint16((rgb & 0xff) * 0x101)
		reply, err := xproto.AllocColor(s.conn, cmap, r, g, b).Reply()
		if err != nil {
			return 0, err
		}
		return reply.Pixel, nil
	}

	reply, err := xproto.AllocNamedColor(s.conn, cmap, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, err
	}
	return reply.Pixel, nil
}

// openFont opens the named core font and caches its metrics for the
// bar. A fixed-width assumption holds for the digit tags we draw.
func (s *Surface) openFont(name string) error {
	font, err := xproto.NewFontId(s.conn)
	if err != nil {
		return err
	}
	if err := xproto.OpenFontChecked(s.conn, font, uint16(len(name)), name).Check(); err != nil {
		return err
	}
	info, err := xproto.QueryFont(s.conn, xproto.Fontable(font)).Reply()
	if err != nil {
		return err
	}
	s.font = font
	s.fontAscent = int(info.FontAscent)
	s.glyphWidth = int(info.MaxBounds.CharacterWidth)
	return nil
}

func (s *Surface) initKeymap() error {
	km, err := xproto.GetKeyboardMapping(s.conn, keycodeLo, keycodeHi-keycodeLo+1).Reply()
	if err != nil {
		return err
	}
	per := int(km.KeysymsPerKeycode)
	if per < 1 {
		return fmt.Errorf("no keysyms per keycode")
	}
	for kc := keycodeLo; kc <= keycodeHi; kc++ {
		s.keysyms[kc] = km.Keysyms[(kc-keycodeLo)*per]
	}
	return nil
}

func (s *Surface) keycodeFor(keysym uint32) xproto.Keycode {
	for kc := keycodeLo; kc <= keycodeHi; kc++ {
		if uint32(s.keysyms[kc]) == keysym {
			return xproto.Keycode(kc)
		}
	}
	return 0
}

// GrabKeys grabs every binding's chord on the root window.
func (s *Surface) GrabKeys(bindings []wm.Binding) {
	for _, b := range bindings {
		keycode := s.keycodeFor(b.Keysym)
		if keycode == 0 {
			slog.Warn("No keycode for keysym", "keysym", b.Keysym)
			continue
		}
		xproto.GrabKey(s.conn, true, s.screen.Root, b.Mod, keycode,
			xproto.GrabModeAsync, xproto.GrabModeAsync)
	}
}

// UngrabKeys releases every grab taken by GrabKeys.
func (s *Surface) UngrabKeys() {
	xproto.UngrabKey(s.conn, xproto.GrabAny, s.screen.Root, xproto.ModMaskAny)
}
