// dwmgo
package main

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil"
)

// WM is the process-wide context threaded through every handler: the
// single in-memory model spec §9 asks for in place of a hidden global
// singleton.
type WM struct {
	X *xgbutil.XUtil

	Atoms *Atoms

	Mons      []*Monitor
	SelMon    *Monitor
	MotionMon *Monitor

	ScreenW, ScreenH int
	BarHeight        int
	LrPad            int

	Cursors struct {
		Normal, Resize, Move xproto.Cursor
	}

	Schemes [2]ColorScheme

	NumLockMask uint16

	StatusText string

	Running bool

	font *barFont
}

func newWM(X *xgbutil.XUtil) *WM {
	return &WM{
		X:       X,
		Running: true,
	}
}

// moveWindow issues an X MoveWindow request without touching the stored
// client geometry (used by showhide to push invisible clients off-screen
// while their logical geometry is preserved for when they return).
func (wm *WM) moveWindow(c *Client, x, y int) {
	xproto.ConfigureWindow(wm.X.Conn(), c.Win,
		xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(int32(x)), uint32(int32(y))})
}

// resizeClient applies size hints (interact picks the clamp target, see
// applySizeHints) and, only if the result differs from the current
// geometry, updates the in-memory geometry and issues the corresponding
// ConfigureWindow request plus a synthetic ConfigureNotify for the
// client's own benefit.
func (wm *WM) resizeClient(c *Client, x, y, w, h int, interact bool) {
	nx, ny, nw, nh, changed := c.applySizeHints(wm, x, y, w, h, interact)
	if !changed {
		return
	}
	c.resize(nx, ny, nw, nh, c.Bw)
	xproto.ConfigureWindow(wm.X.Conn(), c.Win,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|
			xproto.ConfigWindowHeight|xproto.ConfigWindowBorderWidth,
		[]uint32{
			uint32(int32(nx)), uint32(int32(ny)),
			uint32(nw), uint32(nh), uint32(c.Bw),
		})
	sendConfigureNotify(wm, c)
}

// sendConfigureNotify reflects c's current geometry back to the client
// itself, as ICCCM requires after a manager-initiated resize.
func sendConfigureNotify(wm *WM, c *Client) {
	ev := xproto.ConfigureNotifyEvent{
		Event:            c.Win,
		Window:           c.Win,
		AboveSibling:     0,
		X:                int16(c.X),
		Y:                int16(c.Y),
		Width:            uint16(c.W),
		Height:           uint16(c.H),
		BorderWidth:      uint16(c.Bw),
		OverrideRedirect: false,
	}
	xproto.SendEventChecked(wm.X.Conn(), false, c.Win, xproto.EventMaskStructureNotify, string(ev.Bytes()))
}

// clientByWindow finds the managed Client for a raw window id, across all
// monitors, or nil.
func (wm *WM) clientByWindow(w xproto.Window) *Client {
	for _, m := range wm.Mons {
		for _, c := range m.Clients {
			if c.Win == w {
				return c
			}
		}
	}
	return nil
}

// totalClientCount sums |clients| across monitors — kept in lockstep with
// the published _NET_CLIENT_LIST length (spec §8 invariant).
func (wm *WM) totalClientCount() int {
	n := 0
	for _, m := range wm.Mons {
		n += len(m.Clients)
	}
	return n
}

// drainEnterNotify discards any queued EnterNotify events, so a restack's
// own window motion doesn't trigger a spurious focus change.
func (wm *WM) drainEnterNotify() {
	for {
		ev, err := wm.X.Conn().PollForEvent()
		if err != nil || ev == nil {
			return
		}
		if _, ok := ev.(xproto.EnterNotifyEvent); !ok {
			wm.requeue(ev)
			return
		}
	}
}

// requeue is a best-effort re-delivery of an event PollForEvent consumed
// while draining EnterNotify; xgbutil's queue doesn't expose a push-back,
// so this just forwards it straight to the dispatcher.
func (wm *WM) requeue(ev xgb.Event) {
	wm.dispatch(ev)
}
