package xwm

import (
	"context"
	"log/slog"

	"github.com/ItsNotGoodName/stupidwm/internal/wm"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// ReceiveEvents pumps X events into eventC as core messages until the
// context is canceled or the connection dies. Run it in its own
// goroutine; the core consumes the channel from the event loop.
func ReceiveEvents(ctx context.Context, conn *xgb.Conn, s *Surface, eventC chan<- wm.Msg) {
	defer close(eventC)

	for {
		ev, err := conn.WaitForEvent()
		if ev == nil && err == nil {
			slog.Debug("X connection closed")
			return
		}
		if err != nil {
			// Errors here are responses to unchecked requests, most
			// commonly operations on windows that already vanished.
			slog.Debug("X error", "error", err)
			continue
		}

		msg := s.translate(ev)
		if msg == nil {
			continue
		}

		select {
		case <-ctx.Done():
			return
		case eventC <- msg:
		}
	}
}

// translate converts a raw X event into a core message, or nil for
// events the core does not consume.
func (s *Surface) translate(ev xgb.Event) wm.Msg {
	switch ev := ev.(type) {
	case xproto.KeyPressEvent:
		return wm.KeyPress{
			Keysym: uint32(s.keysyms[ev.Detail]),
			State:  ev.State,
		}
	case xproto.MapRequestEvent:
		return wm.MapRequest{Window: wm.Window(ev.Window)}
	case xproto.DestroyNotifyEvent:
		return wm.DestroyNotify{Window: wm.Window(ev.Window)}
	case xproto.EnterNotifyEvent:
		return wm.EnterNotify{Window: wm.Window(ev.Event)}
	case xproto.ConfigureRequestEvent:
		return wm.ConfigureRequest{
			Window:      wm.Window(ev.Window),
			X:           int(ev.X),
			Y:           int(ev.Y),
			Width:       int(ev.Width),
			Height:      int(ev.Height),
			BorderWidth: int(ev.BorderWidth),
			Sibling:     wm.Window(ev.Sibling),
			StackMode:   ev.StackMode,
			Mask:        ev.ValueMask,
		}
	case xproto.ExposeEvent:
		return wm.Expose{
			Window: wm.Window(ev.Window),
			Count:  int(ev.Count),
		}
	default:
		// ConfigureNotify and friends; hot-plugging monitors is not
		// supported, so there is nothing to do with them.
		return nil
	}
}
