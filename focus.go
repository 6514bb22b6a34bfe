// dwmgo
package main

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/ewmh"
	"github.com/jezek/xgbutil/icccm"
	log "github.com/sirupsen/logrus"
)

// unfocus resets c's border to the unselected scheme and re-grabs its
// buttons passively. setfocus controls whether X input focus is also
// cleared (skipped when the caller is about to immediately focus another
// client on the same monitor).
func (wm *WM) unfocus(c *Client, setfocus bool) {
	if c == nil {
		return
	}
	wm.grabButtons(c, false)
	xproto.ChangeWindowAttributes(wm.X.Conn(), c.Win, xproto.CwBorderPixel,
		[]uint32{wm.Schemes[SchemeNorm].Border})
	if setfocus {
		xproto.SetInputFocus(wm.X.Conn(), xproto.InputFocusPointerRoot, wm.X.RootWin(), xproto.TimeCurrentTime)
		ewmh.ActiveWindowSet(wm.X, 0)
	}
}

// focus selects c (or, if c is nil, the first visible client on the
// selected monitor's stack), per spec §4.4.
func (wm *WM) focus(c *Client) {
	if c == nil || !c.isVisible() {
		c = wm.SelMon.firstVisibleInStack()
	}
	if wm.SelMon.Sel != nil && wm.SelMon.Sel != c {
		wm.unfocus(wm.SelMon.Sel, false)
	}
	if c != nil {
		if c.Mon != wm.SelMon {
			wm.SelMon = c.Mon
		}
		if c.IsUrgent {
			wm.setUrgent(c, false)
		}
		c.Mon.detachStack(c)
		c.Mon.attachStack(c)
		wm.grabButtons(c, true)
		xproto.ChangeWindowAttributes(wm.X.Conn(), c.Win, xproto.CwBorderPixel,
			[]uint32{wm.Schemes[SchemeSel].Border})
		wm.setClientFocus(c)
		wm.SelMon.Sel = c
	} else {
		xproto.SetInputFocus(wm.X.Conn(), xproto.InputFocusPointerRoot, wm.X.RootWin(), xproto.TimeCurrentTime)
		ewmh.ActiveWindowSet(wm.X, 0)
		wm.SelMon.Sel = nil
	}
}

// setClientFocus sets X input focus to c, unless its WM_HINTS asserts
// input=false (neverfocus), in which case only WM_TAKE_FOCUS is sent.
func (wm *WM) setClientFocus(c *Client) {
	if !c.NeverFocus {
		xproto.SetInputFocus(wm.X.Conn(), xproto.InputFocusPointerRoot, c.Win, xproto.TimeCurrentTime)
		ewmh.ActiveWindowSet(wm.X, c.Win)
	}
	sendProtocolMessage(wm, c.Win, "WM_TAKE_FOCUS", wm.Atoms.WMTakeFocus)
}

// sendProtocolMessage delivers a WM_PROTOCOLS ClientMessage carrying proto,
// if the client advertises support for it (by name) via WM_PROTOCOLS.
func sendProtocolMessage(wm *WM, win xproto.Window, protoName string, proto xproto.Atom) bool {
	protocols, err := icccm.WmProtocolsGet(wm.X, win)
	if err != nil {
		return false
	}
	supported := false
	for _, p := range protocols {
		if p == protoName {
			supported = true
			break
		}
	}
	if !supported {
		return false
	}
	cm := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   wm.Atoms.WMProtocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(proto), uint32(xproto.TimeCurrentTime), 0, 0, 0,
		}),
	}
	return xproto.SendEventChecked(wm.X.Conn(), false, win, xproto.EventMaskNoEvent, string(cm.Bytes())).Check() == nil
}

// setUrgent toggles c's ICCCM urgency hint and marks/clears the in-memory
// flag the bar reads.
func (wm *WM) setUrgent(c *Client, urgent bool) {
	c.IsUrgent = urgent
	hints, err := icccm.WmHintsGet(wm.X, c.Win)
	if err != nil || hints == nil {
		hints = &icccm.Hints{}
	}
	if urgent {
		hints.Flags |= icccm.HintXUrgency
	} else {
		hints.Flags &^= icccm.HintXUrgency
	}
	if err := icccm.WmHintsSet(wm.X, c.Win, hints); err != nil {
		log.WithError(err).Debug("setUrgent: WmHintsSet failed")
	}
}

// restack raises the floating selection above all else; in tiled layouts
// it stacks visible tiled clients below the bar in stack order. Pending
// EnterNotify events are drained first so the restack doesn't trigger a
// spurious focus change.
func (wm *WM) restack(m *Monitor) {
	wm.drainEnterNotify()

	if m.Sel == nil {
		return
	}
	if m.Sel.IsFloating || m.activeLayout().Arrange == nil {
		xproto.ConfigureWindow(wm.X.Conn(), m.Sel.Win, xproto.ConfigWindowStackMode,
			[]uint32{uint32(xproto.StackModeAbove)})
	}
	if m.activeLayout().Arrange != nil {
		sibling := m.BarWin
		for i := len(m.Stack) - 1; i >= 0; i-- {
			c := m.Stack[i]
			if !c.isVisible() || c.IsFloating {
				continue
			}
			xproto.ConfigureWindow(wm.X.Conn(), c.Win,
				xproto.ConfigWindowSibling|xproto.ConfigWindowStackMode,
				[]uint32{uint32(sibling), uint32(xproto.StackModeBelow)})
			sibling = c.Win
		}
	}
}

// nextVisibleIndex walks cs forward (dir>0) or backward from idx, skipping
// invisible clients and wrapping around, and returns the first visible
// index found or -1 if none qualify. The walk ends back at idx itself, so
// when idx is the only visible client its own index is returned.
func nextVisibleIndex(cs []*Client, idx, dir int) int {
	n := len(cs)
	if n == 0 || idx < 0 || idx >= n {
		return -1
	}
	for i := 1; i <= n; i++ {
		var j int
		if dir > 0 {
			j = (idx + i) % n
		} else {
			j = ((idx-i)%n + n) % n
		}
		if cs[j].isVisible() {
			return j
		}
	}
	return -1
}

// focusstack walks the selected monitor's client list forward (dir>0) or
// backward, skipping invisible clients and wrapping around. A fullscreen
// selection blocks the cycle when lockfullscreen is configured.
func (wm *WM) focusstack(dir int) {
	m := wm.SelMon
	if m.Sel == nil || (m.Sel.IsFullscreen && globalConfig.LockFullscreen) {
		return
	}
	idx := -1
	for i, c := range m.Clients {
		if c == m.Sel {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}
	if j := nextVisibleIndex(m.Clients, idx, dir); j != -1 {
		wm.focus(m.Clients[j])
		wm.restack(m)
	}
}

// pop (zoom) moves c to the head of its monitor's client list and
// re-focuses it; if c is already head, it swaps with the next tiled
// client instead, which then becomes head and takes focus. No-op for
// floating clients.
func (wm *WM) pop(c *Client) {
	if c == nil || c.IsFloating {
		return
	}
	m := c.Mon
	if len(m.Clients) > 0 && m.Clients[0] == c {
		for _, other := range m.Clients[1:] {
			if !other.IsFloating && other.isVisible() {
				m.detachClient(c)
				m.attachClient(c)
				swapToHead(m, other)
				c = other
				break
			}
		}
	} else {
		m.detachClient(c)
		m.attachClient(c)
	}
	wm.focus(c)
	wm.arrange(m)
}

func swapToHead(m *Monitor, c *Client) {
	m.detachClient(c)
	m.Clients = append([]*Client{c}, m.Clients...)
}
