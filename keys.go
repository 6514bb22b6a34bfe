// dwmgo
package main

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/keybind"
)

// keysymOf resolves a keycode to its primary keysym via xgbutil's keybind
// mapping cache, which handleMappingNotify refreshes on keyboard changes.
func (wm *WM) keysymOf(code xproto.Keycode) uint32 {
	return uint32(keybind.KeysymGet(wm.X, code, 0))
}

// refreshKeyboardMapping reloads xgbutil's keyboard-mapping cache after a
// MappingNotify.
func (wm *WM) refreshKeyboardMapping() {
	keybind.Initialize(wm.X)
}

// grabKeys re-grabs every configured keybinding plus its Lock/NumLock
// variants, so bindings match regardless of those modifiers' state
// (CLEANMASK semantics, spec Glossary).
func (wm *WM) grabKeys() {
	keybind.UngrabAll(wm.X)
	root := wm.X.RootWin()
	modifiers := []uint16{0, xproto.ModMaskLock, wm.NumLockMask, wm.NumLockMask | xproto.ModMaskLock}
	for _, k := range globalConfig.Keys {
		code := keybind.KeysymToKeycode(wm.X, k.Keysym)
		if code == 0 {
			continue
		}
		for _, mod := range modifiers {
			xproto.GrabKey(wm.X.Conn(), true, root, k.Mod|mod, code,
				xproto.GrabModeAsync, xproto.GrabModeAsync)
		}
	}
}

// updatenumlockmask derives the NumLock modifier bit from the server's
// modifier map, so CLEANMASK can strip it from incoming event state
// (spec Global Model: "a numlock-mask value derived from the modifier
// map").
func (wm *WM) updatenumlockmask() {
	wm.NumLockMask = 0
	mapping, err := xproto.GetModifierMapping(wm.X.Conn()).Reply()
	if err != nil {
		return
	}
	numlockCode := keybind.KeysymToKeycode(wm.X, 0xff7f) // XK_Num_Lock
	if numlockCode == 0 {
		return
	}
	perMod := int(mapping.KeycodesPerModifier)
	for mod := 0; mod < 8; mod++ {
		for i := 0; i < perMod; i++ {
			if mapping.Keycodes[mod*perMod+i] == numlockCode {
				wm.NumLockMask = 1 << uint(mod)
			}
		}
	}
}

// defaultKeys is the keybinding table bundled with this configuration: a
// minimal but representative set covering every action named in spec §3/
// §8 (focus cycling, zoom, layout selection, tag view/move, quit,
// fullscreen/floating toggles, spawn).
func defaultKeys() []KeyBinding {
	const modKey = xproto.ModMask1 // "MOD" in spec's keybinding examples
	keys := []KeyBinding{
		{Mod: modKey, Keysym: xkReturn, Action: spawnTerminal},
		{Mod: modKey, Keysym: xkJ, Action: func(wm *WM, _ interface{}) { wm.focusstack(1) }},
		{Mod: modKey, Keysym: xkK, Action: func(wm *WM, _ interface{}) { wm.focusstack(-1) }},
		{Mod: modKey, Keysym: xkReturn2, Action: func(wm *WM, _ interface{}) { wm.pop(wm.SelMon.Sel) }},
		{Mod: modKey, Keysym: xkB, Action: func(wm *WM, _ interface{}) { wm.togglebar() }},
		{Mod: modKey, Keysym: xkT, Action: func(wm *WM, arg interface{}) { wm.setLayout(0) }},
		{Mod: modKey, Keysym: xkF, Action: func(wm *WM, arg interface{}) { wm.setLayout(1) }},
		{Mod: modKey, Keysym: xkM, Action: func(wm *WM, arg interface{}) { wm.setLayout(2) }},
		{Mod: modKey | xproto.ModMaskShift, Keysym: xkSpace, Action: func(wm *WM, _ interface{}) { wm.togglefloating() }},
		{Mod: modKey, Keysym: xkF11, Action: func(wm *WM, _ interface{}) {
			if c := wm.SelMon.Sel; c != nil {
				wm.setFullscreen(c, !c.IsFullscreen)
			}
		}},
		{Mod: modKey | xproto.ModMaskShift, Keysym: xkC, Action: func(wm *WM, _ interface{}) { wm.killclient() }},
		{Mod: modKey | xproto.ModMaskShift, Keysym: xkQ, Action: quit},
	}
	for i := 0; i < len(globalConfig.Tags); i++ {
		i := i
		keys = append(keys,
			KeyBinding{Mod: modKey, Keysym: xk1 + uint32(i), Action: func(wm *WM, _ interface{}) { wm.view(uint32(1) << uint(i)) }},
			KeyBinding{Mod: modKey | xproto.ModMaskControl, Keysym: xk1 + uint32(i), Action: func(wm *WM, _ interface{}) { wm.toggleview(uint32(1) << uint(i)) }},
			KeyBinding{Mod: modKey | xproto.ModMaskShift, Keysym: xk1 + uint32(i), Action: func(wm *WM, _ interface{}) { wm.tag(uint32(1) << uint(i)) }},
			KeyBinding{Mod: modKey | xproto.ModMaskShift | xproto.ModMaskControl, Keysym: xk1 + uint32(i), Action: func(wm *WM, _ interface{}) { wm.toggletag(uint32(1) << uint(i)) }},
		)
	}
	return keys
}

// X keysym constants used by the default table (subset of keysymdef.h).
const (
	xkReturn  = 0xff0d
	xkReturn2 = 0xff8d
	xkSpace   = 0x0020
	xkB       = 0x0062
	xkC       = 0x0063
	xkF       = 0x0066
	xkJ       = 0x006a
	xkK       = 0x006b
	xkM       = 0x006d
	xkQ       = 0x0071
	xkT       = 0x0074
	xkF11     = 0xffc8
	xk1       = 0x0031
)

func spawnTerminal(wm *WM, _ interface{}) { spawn(wm, "xterm") }
