// dwmgo
package main

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	log "github.com/sirupsen/logrus"
)

// dispatch multiplexes by concrete event type, the same shape xgbutil's
// own xevent package uses internally (it keys callbacks by event-type
// constant rather than trying every handler in turn). A single WM has
// exactly one handler per event kind, so a type switch over the already
// decoded event is that table, rather than a parallel map alongside it.
// Unhandled kinds are dropped, not an error.
func (wm *WM) dispatch(ev xgb.Event) {
	switch e := ev.(type) {
	case xproto.ButtonPressEvent:
		wm.handleButtonPress(e)
	case xproto.ClientMessageEvent:
		wm.handleClientMessage(e)
	case xproto.ConfigureRequestEvent:
		wm.handleConfigureRequest(e)
	case xproto.ConfigureNotifyEvent:
		wm.handleConfigureNotify(e)
	case xproto.DestroyNotifyEvent:
		wm.handleDestroyNotify(e)
	case xproto.UnmapNotifyEvent:
		wm.handleUnmapNotify(e)
	case xproto.EnterNotifyEvent:
		wm.handleEnterNotify(e)
	case xproto.ExposeEvent:
		wm.handleExpose(e)
	case xproto.FocusInEvent:
		wm.handleFocusIn(e)
	case xproto.KeyPressEvent:
		wm.handleKeyPress(e)
	case xproto.MappingNotifyEvent:
		wm.handleMappingNotify(e)
	case xproto.MapRequestEvent:
		wm.handleMapRequest(e)
	case xproto.MotionNotifyEvent:
		wm.handleMotionNotify(e)
	case xproto.PropertyNotifyEvent:
		wm.handlePropertyNotify(e)
	default:
		log.WithField("event", e).Debug("unhandled event type dropped")
	}
}

// run blocks on the next X event and dispatches it, until Running is
// cleared by the quit action. This is the only suspension point in the
// process (spec §5): every handler runs to completion before the next
// event is read.
func (wm *WM) run() {
	for wm.Running {
		ev, xerr := wm.X.Conn().WaitForEvent()
		if xerr != nil {
			handleXError(xerr)
			continue
		}
		if ev == nil {
			wm.Running = false
			return
		}
		wm.dispatch(ev)
	}
}

// quit is the action bound to the default "exit" keybinding (spec §8
// scenario 6): clears Running so run's loop exits on its next check.
func quit(wm *WM, arg interface{}) {
	wm.Running = false
}
