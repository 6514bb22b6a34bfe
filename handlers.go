// dwmgo
package main

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/ewmh"
	"github.com/jezek/xgbutil/icccm"
	log "github.com/sirupsen/logrus"
)

const (
	netWMStateRemove = 0
	netWMStateAdd    = 1
	netWMStateToggle = 2
)

// handleButtonPress determines the click region (bar vs. client), focuses
// the target, and runs matching bindings from the button table under
// CLEANMASK modifier equality.
func (wm *WM) handleButtonPress(e xproto.ButtonPressEvent) {
	click := ClkRootWin
	var arg interface{}

	if m := wm.monitorForWindow(e.Event); m != nil && m.BarWin == e.Event {
		click, arg = wm.barClickRegion(m, int(e.EventX))
		if m != wm.SelMon {
			wm.SelMon = m
			wm.focus(nil)
		}
	} else if c := wm.clientByWindow(e.Event); c != nil {
		wm.focus(c)
		wm.restack(wm.SelMon)
		click = ClkClientWin
	}

	clean := e.State &^ (wm.NumLockMask | xproto.ModMaskLock)
	for _, b := range globalConfig.Buttons {
		if b.Click == click && b.Button == e.Detail && b.Mod == clean {
			b.Action(wm, orArg(b.Arg, arg))
		}
	}
}

func orArg(primary, fallback interface{}) interface{} {
	if primary != nil {
		return primary
	}
	return fallback
}

// handleClientMessage implements _NET_WM_STATE fullscreen toggling and
// _NET_ACTIVE_WINDOW-triggered urgency marking.
func (wm *WM) handleClientMessage(e xproto.ClientMessageEvent) {
	c := wm.clientByWindow(e.Window)
	if c == nil {
		return
	}
	data := e.Data.Data32

	switch e.Type {
	case wm.Atoms.NetWMState:
		if len(data) < 2 {
			return
		}
		if xproto.Atom(data[1]) == wm.Atoms.NetWMFullscrn || (len(data) > 2 && xproto.Atom(data[2]) == wm.Atoms.NetWMFullscrn) {
			switch data[0] {
			case netWMStateAdd:
				wm.setFullscreen(c, true)
			case netWMStateRemove:
				wm.setFullscreen(c, false)
			case netWMStateToggle:
				wm.setFullscreen(c, !c.IsFullscreen)
			}
		}
	case wm.Atoms.NetActiveWin:
		if c != wm.SelMon.Sel && !c.IsUrgent {
			wm.setUrgent(c, true)
		}
	}
}

// setFullscreen implements the fullscreen sub-state transition described
// in the Client invariants: entering saves floating/border/geometry and
// forces floating=true, border=0, geometry = monitor output rect; leaving
// restores them.
func (wm *WM) setFullscreen(c *Client, fullscreen bool) {
	if fullscreen && !c.IsFullscreen {
		ewmh.WmStateSet(wm.X, c.Win, []string{"_NET_WM_STATE_FULLSCREEN"})
		c.IsFullscreen = true
		c.PreFSFloating = c.IsFloating
		c.PreFSBw = c.Bw
		c.OldGeom = SavedGeometry{X: c.X, Y: c.Y, W: c.W, H: c.H}
		c.Bw = 0
		c.IsFloating = true
		wm.resizeClient(c, c.Mon.MX, c.Mon.MY, c.Mon.MW, c.Mon.MH, true)
		xproto.ConfigureWindow(wm.X.Conn(), c.Win, xproto.ConfigWindowStackMode,
			[]uint32{uint32(xproto.StackModeAbove)})
	} else if !fullscreen && c.IsFullscreen {
		ewmh.WmStateSet(wm.X, c.Win, []string{})
		c.IsFullscreen = false
		c.IsFloating = c.PreFSFloating
		c.Bw = c.PreFSBw
		wm.resizeClient(c, c.OldGeom.X, c.OldGeom.Y, c.OldGeom.W, c.OldGeom.H, false)
		wm.arrange(c.Mon)
	}
}

// handleConfigureRequest: unmanaged windows pass through unconditionally.
// Managed floating clients (or clients under a no-op arranger, or a
// border-only request) are applied and re-centered if they'd fall off the
// monitor. Managed tiled clients are denied: a synthetic ConfigureNotify
// reflects the manager's own geometry instead.
func (wm *WM) handleConfigureRequest(e xproto.ConfigureRequestEvent) {
	c := wm.clientByWindow(e.Window)
	if c == nil {
		values := []uint32{}
		var mask uint16
		if e.ValueMask&xproto.ConfigWindowX != 0 {
			mask |= xproto.ConfigWindowX
			values = append(values, uint32(e.X))
		}
		if e.ValueMask&xproto.ConfigWindowY != 0 {
			mask |= xproto.ConfigWindowY
			values = append(values, uint32(e.Y))
		}
		if e.ValueMask&xproto.ConfigWindowWidth != 0 {
			mask |= xproto.ConfigWindowWidth
			values = append(values, uint32(e.Width))
		}
		if e.ValueMask&xproto.ConfigWindowHeight != 0 {
			mask |= xproto.ConfigWindowHeight
			values = append(values, uint32(e.Height))
		}
		if e.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
			mask |= xproto.ConfigWindowBorderWidth
			values = append(values, uint32(e.BorderWidth))
		}
		if e.ValueMask&xproto.ConfigWindowSibling != 0 {
			mask |= xproto.ConfigWindowSibling
			values = append(values, uint32(e.Sibling))
		}
		if e.ValueMask&xproto.ConfigWindowStackMode != 0 {
			mask |= xproto.ConfigWindowStackMode
			values = append(values, uint32(e.StackMode))
		}
		xproto.ConfigureWindow(wm.X.Conn(), e.Window, mask, values)
		return
	}

	borderOnly := e.ValueMask&^(xproto.ConfigWindowBorderWidth) == 0
	if c.IsFloating || c.Mon.activeLayout().Arrange == nil || borderOnly {
		if e.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
			c.Bw = int(e.BorderWidth)
		}
		x, y, w, h := c.X, c.Y, c.W, c.H
		if e.ValueMask&xproto.ConfigWindowX != 0 {
			x = int(e.X)
		}
		if e.ValueMask&xproto.ConfigWindowY != 0 {
			y = int(e.Y)
		}
		if e.ValueMask&xproto.ConfigWindowWidth != 0 {
			w = int(e.Width)
		}
		if e.ValueMask&xproto.ConfigWindowHeight != 0 {
			h = int(e.Height)
		}
		if x+w > c.Mon.MX+c.Mon.MW && c.IsFloating {
			x = c.Mon.MX + (c.Mon.MW-w)/2
		}
		if y+h > c.Mon.MY+c.Mon.MH && c.IsFloating {
			y = c.Mon.MY + (c.Mon.MH-h)/2
		}
		wm.resizeClient(c, x, y, w, h, false)
	} else {
		sendConfigureNotify(wm, c)
	}
}

// handleConfigureNotify reacts to root-window geometry changes: update
// screen size, redetect monitors, re-place bars and fullscreen clients,
// re-focus, re-arrange.
func (wm *WM) handleConfigureNotify(e xproto.ConfigureNotifyEvent) {
	if e.Window != wm.X.RootWin() {
		return
	}
	if int(e.Width) == wm.ScreenW && int(e.Height) == wm.ScreenH {
		return
	}
	wm.ScreenW, wm.ScreenH = int(e.Width), int(e.Height)
	if wm.updateGeometry() {
		for _, m := range wm.Mons {
			for _, c := range m.Clients {
				if c.IsFullscreen {
					wm.resizeClient(c, m.MX, m.MY, m.MW, m.MH, true)
				}
			}
		}
		wm.focus(nil)
		wm.arrange(nil)
	}
}

// handleDestroyNotify/UnmapNotify unmanage the client; a non-synthetic
// UnmapNotify also unmanages it, but with destroyed=false so its border
// and WM_STATE are restored on the still-existing window; a synthetic one
// only withdraws ICCCM state.
func (wm *WM) handleDestroyNotify(e xproto.DestroyNotifyEvent) {
	if c := wm.clientByWindow(e.Window); c != nil {
		wm.unmanage(c, true)
	}
}

func (wm *WM) handleUnmapNotify(e xproto.UnmapNotifyEvent) {
	c := wm.clientByWindow(e.Window)
	if c == nil {
		return
	}
	if e.Event == wm.X.RootWin() {
		// synthetic: client asked to withdraw without being destroyed
		wmStateSet(wm.X, c.Win, wm.Atoms, withdrawnState)
		return
	}
	wm.unmanage(c, false)
}

// handleEnterNotify focuses the entered client when the crossing is
// meaningful (not NotifyInferior/NotifyHint); crossing monitors switches
// the selected monitor.
func (wm *WM) handleEnterNotify(e xproto.EnterNotifyEvent) {
	if (e.Mode != xproto.NotifyModeNormal || e.Detail == xproto.NotifyDetailInferior) && e.Event != wm.X.RootWin() {
		return
	}
	c := wm.clientByWindow(e.Event)
	m := wm.SelMon
	if c != nil {
		m = c.Mon
	} else if mm := wm.monitorForWindow(e.Event); mm != nil {
		m = mm
	}
	if m != wm.SelMon {
		wm.unfocus(wm.SelMon.Sel, true)
		wm.SelMon = m
	} else if c == nil || c == wm.SelMon.Sel {
		return
	}
	wm.focus(c)
}

// handleExpose redraws the affected bar when the expose count is 0 (the
// last expose in a batch).
func (wm *WM) handleExpose(e xproto.ExposeEvent) {
	if e.Count != 0 {
		return
	}
	if m := wm.monitorForWindow(e.Window); m != nil {
		wm.drawBar(m)
	}
}

// handleFocusIn reasserts focus onto the selection if the server stole it
// (spec §7.5 client misbehavior tolerance).
func (wm *WM) handleFocusIn(e xproto.FocusInEvent) {
	if wm.SelMon.Sel != nil && e.Event != wm.SelMon.Sel.Win {
		wm.setClientFocus(wm.SelMon.Sel)
	}
}

// handleKeyPress looks up keysym+CLEANMASK in the key table and dispatches
// the bound action.
func (wm *WM) handleKeyPress(e xproto.KeyPressEvent) {
	sym := wm.keysymOf(e.Detail)
	clean := e.State &^ (wm.NumLockMask | xproto.ModMaskLock)
	for _, k := range globalConfig.Keys {
		if k.Keysym == sym && k.Mod == clean {
			k.Action(wm, k.Arg)
		}
	}
}

// handleMappingNotify refreshes the keyboard mapping and re-grabs keys if
// the change was keyboard-related.
func (wm *WM) handleMappingNotify(e xproto.MappingNotifyEvent) {
	wm.refreshKeyboardMapping()
	if e.Request == xproto.MappingKeyboard {
		wm.grabKeys()
	}
}

// handleMapRequest skips override-redirect windows and manages everything
// else not already managed.
func (wm *WM) handleMapRequest(e xproto.MapRequestEvent) {
	attrs, err := xproto.GetWindowAttributes(wm.X.Conn(), e.Window).Reply()
	if err != nil {
		return
	}
	if attrs.OverrideRedirect {
		return
	}
	if wm.clientByWindow(e.Window) != nil {
		return
	}
	wm.manage(e.Window, attrs)
}

// handleMotionNotify: cross-monitor pointer motion over the root window
// switches the selected monitor. Interactive move/resize pumps their own
// MotionNotify handling and rate-limit separately (drag.go).
func (wm *WM) handleMotionNotify(e xproto.MotionNotifyEvent) {
	if e.Event != wm.X.RootWin() {
		return
	}
	m := wm.recMonitorAt(int(e.RootX), int(e.RootY))
	if m != nil && m != wm.MotionMon {
		if wm.MotionMon != nil {
			wm.unfocus(wm.SelMon.Sel, true)
		}
		wm.MotionMon = m
		wm.SelMon = m
		wm.focus(nil)
	}
}

// handlePropertyNotify reacts to property changes ICCCM/EWMH define as
// mutable post-map: transient-for, normal hints, WM_HINTS (urgency),
// name, and window type.
func (wm *WM) handlePropertyNotify(e xproto.PropertyNotifyEvent) {
	if e.Window == wm.X.RootWin() {
		// Only _NET_WM_NAME changes on the root refresh the status text;
		// changes to the root's plain WM_NAME are ignored.
		if e.Atom == wm.Atoms.NetWMName {
			wm.updateStatusFromRootName()
			wm.drawBars()
		}
		return
	}
	c := wm.clientByWindow(e.Window)
	if c == nil {
		return
	}
	switch e.Atom {
	case xproto.AtomWmTransientFor:
		// Transient-for changes after mapping don't re-home the client in
		// this rewrite (spec only requires inheritance at manage time);
		// logged for visibility since dwm itself only half-handles this.
		log.WithField("window", c.Win).Debug("WM_TRANSIENT_FOR changed post-map, ignored")
	case xproto.AtomWmNormalHints:
		c.Hints.Valid = false
	case xproto.AtomWmHints:
		wm.updateWMHints(c)
		wm.drawBars()
	case wm.Atoms.NetWMName, xproto.AtomWmName:
		wm.updateClientName(c)
		if c == c.Mon.Sel {
			wm.drawBar(c.Mon)
		}
	case wm.Atoms.NetWMType:
		wm.updateWindowType(c)
	}
}

// updateWMHints re-reads WM_HINTS and syncs urgency + neverfocus.
func (wm *WM) updateWMHints(c *Client) {
	hints, err := icccm.WmHintsGet(wm.X, c.Win)
	if err != nil || hints == nil {
		return
	}
	if c == wm.SelMon.Sel && hints.Flags&icccm.HintXUrgency != 0 {
		hints.Flags &^= icccm.HintXUrgency
		icccm.WmHintsSet(wm.X, c.Win, hints)
	} else {
		c.IsUrgent = hints.Flags&icccm.HintXUrgency != 0
	}
	if hints.Flags&icccm.HintInput != 0 {
		c.NeverFocus = !hints.Input
	}
}

// updateClientName re-reads _NET_WM_NAME (falling back to WM_NAME) and
// the literal "broken" fallback for an empty title.
func (wm *WM) updateClientName(c *Client) {
	name, err := ewmh.WmNameGet(wm.X, c.Win)
	if err != nil || name == "" {
		name, err = icccm.WmNameGet(wm.X, c.Win)
	}
	if err != nil {
		name = ""
	}
	c.Name = name
}

// updateWindowType re-tests whether the client should be treated as a
// dialog (forced floating) based on _NET_WM_WINDOW_TYPE.
func (wm *WM) updateWindowType(c *Client) {
	types, err := ewmh.WmWindowTypeGet(wm.X, c.Win)
	if err != nil {
		return
	}
	for _, t := range types {
		if t == "_NET_WM_WINDOW_TYPE_DIALOG" {
			c.IsFloating = true
			return
		}
	}
}
