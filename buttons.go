// dwmgo
package main

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/mousebind"
)

// grabButtons grabs the click combinations clients should be passively
// notified of. When focused, only modified clicks are grabbed (so plain
// clicks pass through to the application); when unfocused, every click is
// grabbed so that clicking anywhere on the window focuses it first.
func (wm *WM) grabButtons(c *Client, focused bool) {
	mousebind.UngrabAll(wm.X)
	xproto.UngrabButton(wm.X.Conn(), xproto.ButtonIndexAny, c.Win, uint16(xproto.ModMaskAny))
	if !focused {
		xproto.GrabButton(wm.X.Conn(), false, c.Win,
			xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease,
			xproto.GrabModeAsync, xproto.GrabModeAsync, 0, 0,
			xproto.ButtonIndexAny, uint16(xproto.ModMaskAny))
	}
	modifiers := []uint16{0, xproto.ModMaskLock, wm.NumLockMask, wm.NumLockMask | xproto.ModMaskLock}
	for _, b := range globalConfig.Buttons {
		if b.Click != ClkClientWin {
			continue
		}
		if focused && b.Mod == 0 {
			continue
		}
		for _, mod := range modifiers {
			xproto.GrabButton(wm.X.Conn(), false, c.Win,
				xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease,
				xproto.GrabModeAsync, xproto.GrabModeAsync, 0, 0,
				b.Button, b.Mod|mod)
		}
	}
}

// barClickRegion hit-tests an X coordinate within a bar window against
// the tag cells / layout symbol / title / status regions drawn by
// drawBar, returning the click region and an appropriate arg (e.g. the
// tag mask under the cursor).
func (wm *WM) barClickRegion(m *Monitor, x int) (ClickRegion, interface{}) {
	layout := wm.barLayout(m)
	for i, cell := range layout.tagCells {
		if x >= cell.Min.X && x < cell.Max.X {
			return ClkTagBar, uint32(1) << uint(i)
		}
	}
	if x < layout.ltSymbolRight {
		return ClkLtSymbol, nil
	}
	if x < layout.titleRight {
		// spec §9 open question: this gap also reads as ClkWinTitle even
		// with no selection; the button table decides what that means,
		// so the region is reported as-is rather than special-cased here.
		return ClkWinTitle, nil
	}
	return ClkStatusText, nil
}

func defaultButtons() []ButtonBinding {
	const modKey = xproto.ModMask1
	return []ButtonBinding{
		{Click: ClkTagBar, Button: xproto.ButtonIndex1, Action: func(wm *WM, arg interface{}) { wm.view(arg.(uint32)) }},
		{Click: ClkTagBar, Button: xproto.ButtonIndex3, Action: func(wm *WM, arg interface{}) { wm.toggleview(arg.(uint32)) }},
		{Click: ClkTagBar, Mod: modKey, Button: xproto.ButtonIndex1, Action: func(wm *WM, arg interface{}) { wm.tag(arg.(uint32)) }},
		{Click: ClkTagBar, Mod: modKey, Button: xproto.ButtonIndex3, Action: func(wm *WM, arg interface{}) { wm.toggletag(arg.(uint32)) }},
		{Click: ClkLtSymbol, Button: xproto.ButtonIndex1, Action: func(wm *WM, _ interface{}) { wm.setLayout(0) }},
		{Click: ClkLtSymbol, Button: xproto.ButtonIndex3, Action: func(wm *WM, _ interface{}) { wm.setLayout(2) }},
		{Click: ClkWinTitle, Button: xproto.ButtonIndex2, Action: func(wm *WM, _ interface{}) { wm.pop(wm.SelMon.Sel) }},
		{Click: ClkClientWin, Mod: modKey, Button: xproto.ButtonIndex1, Action: func(wm *WM, _ interface{}) { wm.movemouse() }},
		{Click: ClkClientWin, Mod: modKey, Button: xproto.ButtonIndex2, Action: func(wm *WM, _ interface{}) { wm.togglefloating() }},
		{Click: ClkClientWin, Mod: modKey, Button: xproto.ButtonIndex3, Action: func(wm *WM, _ interface{}) { wm.resizemouse() }},
	}
}
