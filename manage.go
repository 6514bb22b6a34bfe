// dwmgo
package main

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/ewmh"
	"github.com/jezek/xgbutil/icccm"
	log "github.com/sirupsen/logrus"
)

// manage adopts window w as a new Client: captures its initial geometry,
// reads its title, applies transient-for inheritance or else rule
// matching, clamps within its monitor, sets up border/event
// selection/button grabs, forces floating when transient or fixed,
// publishes _NET_CLIENT_LIST, maps it (positioned off-screen first, to
// dodge a class of broken Qt/GTK startup races), arranges, and focuses.
func (wm *WM) manage(w xproto.Window, attrs *xproto.GetWindowAttributesReply) {
	geom, err := xproto.GetGeometry(wm.X.Conn(), xproto.Drawable(w)).Reply()
	if err != nil {
		return
	}

	c := &Client{
		Win: w,
		X:   int(geom.X), Y: int(geom.Y),
		W: int(geom.Width), H: int(geom.Height),
		Bw: globalConfig.BorderPx,
	}
	c.OldGeom = SavedGeometry{X: c.X, Y: c.Y, W: c.W, H: c.H}
	c.OldBw = int(geom.BorderWidth)

	wm.updateClientName(c)
	class, instance := classHints(wm, w)
	c.Class = class

	var transientFor xproto.Window
	if tf, err := icccm.WmTransientForGet(wm.X, w); err == nil {
		transientFor = tf
	}

	if transientFor != 0 {
		if parent := wm.clientByWindow(transientFor); parent != nil {
			c.Mon = parent.Mon
			c.Tags = parent.Tags
		} else {
			c.Mon = wm.SelMon
			wm.applyRules(c, class, instance, c.Name)
		}
	} else {
		c.Mon = wm.SelMon
		wm.applyRules(c, class, instance, c.Name)
	}

	if c.X+c.width() > c.Mon.WX+c.Mon.WW {
		c.X = c.Mon.WX + c.Mon.WW - c.width()
	}
	if c.Y+c.height() > c.Mon.WY+c.Mon.WH {
		c.Y = c.Mon.WY + c.Mon.WH - c.height()
	}
	if c.X < c.Mon.WX {
		c.X = c.Mon.WX
	}
	if c.Y < c.Mon.WY {
		c.Y = c.Mon.WY
	}

	xproto.ConfigureWindow(wm.X.Conn(), w, xproto.ConfigWindowBorderWidth, []uint32{uint32(c.Bw)})
	xproto.ChangeWindowAttributes(wm.X.Conn(), w, xproto.CwBorderPixel,
		[]uint32{wm.Schemes[SchemeNorm].Border})
	sendConfigureNotify(wm, c)

	updateWindowTypeMessage(wm, c)
	c.updateSizeHints(wm)
	wm.updateWMHints(c)

	xproto.ChangeWindowAttributes(wm.X.Conn(), w, xproto.CwEventMask, []uint32{
		uint32(xproto.EventMaskEnterWindow | xproto.EventMaskFocusChange |
			xproto.EventMaskPropertyChange | xproto.EventMaskStructureNotify),
	})
	wm.grabButtons(c, false)

	if transientFor != 0 || c.IsFixed {
		c.IsFloating = true
	}
	if c.IsFloating {
		xproto.ConfigureWindow(wm.X.Conn(), w, xproto.ConfigWindowStackMode,
			[]uint32{uint32(xproto.StackModeAbove)})
	}

	c.Mon.attachClient(c)
	c.Mon.attachStack(c)

	publishClientList(wm)

	xproto.ConfigureWindow(wm.X.Conn(), w, xproto.ConfigWindowX, []uint32{uint32(int32(-2 * c.width()))})
	wmStateSet(wm.X, w, wm.Atoms, normalState)
	xproto.MapWindow(wm.X.Conn(), w)

	if c.Mon == wm.SelMon {
		wm.unfocus(wm.SelMon.Sel, false)
	}
	c.Mon.Sel = c
	wm.arrange(c.Mon)
	xproto.MapWindow(wm.X.Conn(), w)
	wm.focus(nil)

	log.WithFields(log.Fields{"window": w, "class": class, "title": c.Name}).Debug("managed client")
}

// unmanage detaches c from both lists and, if the window still exists,
// restores its border, withdraws ICCCM state, and deselects input —
// guarded by the §7.3 scoped error-suppression bracket to tolerate a race
// with the client window disappearing. Finally re-focuses, republishes
// _NET_CLIENT_LIST, and arranges.
func (wm *WM) unmanage(c *Client, destroyed bool) {
	m := c.Mon
	m.detachClient(c)
	m.detachStack(c)

	if !destroyed {
		withErrorsIgnored(wm, func() {
			xproto.ConfigureWindow(wm.X.Conn(), c.Win, xproto.ConfigWindowBorderWidth,
				[]uint32{uint32(c.OldBw)})
			xproto.UngrabButton(wm.X.Conn(), xproto.ButtonIndexAny, c.Win, uint16(xproto.ModMaskAny))
			wmStateSet(wm.X, c.Win, wm.Atoms, withdrawnState)
			xproto.ChangeWindowAttributes(wm.X.Conn(), c.Win, xproto.CwEventMask, []uint32{0})
		})
	}

	if wm.SelMon == m {
		wm.focus(nil)
	}
	publishClientList(wm)
	wm.arrange(m)
}

// publishClientList rewrites _NET_CLIENT_LIST to exactly the currently
// managed windows, monitor by monitor and oldest client first (the reverse
// of each monitor's Clients order) (spec §8 invariant: the total
// managed-client count equals the published list's length).
func publishClientList(wm *WM) {
	var wins []xproto.Window
	for _, m := range wm.Mons {
		for i := len(m.Clients) - 1; i >= 0; i-- {
			wins = append(wins, m.Clients[i].Win)
		}
	}
	ewmh.ClientListSet(wm.X, wins)
}

// classHints reads WM_CLASS (instance, class) for window w.
func classHints(wm *WM, w xproto.Window) (class, instance string) {
	hints, err := icccm.WmClassGet(wm.X, w)
	if err != nil || hints == nil {
		return "", ""
	}
	return hints.Class, hints.Instance
}

// updateWindowTypeMessage forces floating for dialog-typed windows at
// manage time (the PropertyNotify path re-tests this post-map).
func updateWindowTypeMessage(wm *WM, c *Client) {
	types, err := ewmh.WmWindowTypeGet(wm.X, c.Win)
	if err != nil {
		return
	}
	for _, t := range types {
		if t == "_NET_WM_WINDOW_TYPE_DIALOG" {
			c.IsFloating = true
		}
	}
}

// killClientConn forcibly terminates the X client owning win (used when
// it doesn't support WM_DELETE_WINDOW).
func killClientConn(wm *WM, win xproto.Window) {
	xproto.KillClient(wm.X.Conn(), uint32(win))
}

// scan adopts every pre-existing mapped (or iconic) top-level window as a
// managed client; used at startup in place of waiting for MapRequest
// events for windows that were already on-screen before this process
// took over the display.
func (wm *WM) scan() {
	tree, err := xproto.QueryTree(wm.X.Conn(), wm.X.RootWin()).Reply()
	if err != nil {
		return
	}
	for _, w := range tree.Children {
		attrs, err := xproto.GetWindowAttributes(wm.X.Conn(), w).Reply()
		if err != nil || attrs.OverrideRedirect {
			continue
		}
		if tf, err := icccm.WmTransientForGet(wm.X, w); err == nil && tf != 0 {
			continue
		}
		if attrs.MapState == xproto.MapStateViewable {
			wm.manage(w, attrs)
			continue
		}
		if state, _ := wmStateGet(wm.X, w, wm.Atoms); state == iconicState {
			wm.manage(w, attrs)
		}
	}
	// transient windows are walked in a second pass so parents (already
	// managed above) are available for tag/monitor inheritance.
	for _, w := range tree.Children {
		if wm.clientByWindow(w) != nil {
			continue
		}
		if tf, err := icccm.WmTransientForGet(wm.X, w); err == nil && tf != 0 {
			if attrs, err := xproto.GetWindowAttributes(wm.X.Conn(), w).Reply(); err == nil && attrs.MapState == xproto.MapStateViewable {
				wm.manage(w, attrs)
			}
		}
	}
}
