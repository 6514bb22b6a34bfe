// dwmgo
package main

import (
	"fmt"

	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil"
	"github.com/jezek/xgbutil/ewmh"
	"github.com/jezek/xgbutil/keybind"
	"github.com/jezek/xgbutil/mousebind"
	log "github.com/sirupsen/logrus"
)

// setup prepares all global state: takes over the root window
// (exclusively — startup fails fast if another WM already holds
// SubstructureRedirect), interns atoms, loads the bar font, computes bar
// height/padding, detects monitors, publishes _NET_SUPPORTED and the
// supporting-WM-check window, and scans pre-existing windows. No cursors
// are created: wm.Cursors stays zero, so the move/resize pointer grabs
// leave the cursor unchanged.
func setup(X *xgbutil.XUtil, debug bool) (*WM, error) {
	wm := newWM(X)

	if err := becomeWM(wm); err != nil {
		return nil, fmt.Errorf("could not become window manager (is another one running?): %w", err)
	}

	atoms, err := internAtoms(X)
	if err != nil {
		return nil, fmt.Errorf("intern atoms: %w", err)
	}
	wm.Atoms = atoms

	keybind.Initialize(X)
	mousebind.Initialize(X)

	wm.Schemes[SchemeNorm] = globalConfig.Colors[SchemeNorm]
	wm.Schemes[SchemeSel] = globalConfig.Colors[SchemeSel]

	wm.font = loadBarFont()
	wm.LrPad = 16
	wm.BarHeight = barHeightFor(wm.font) + 20 // +20: theme padding constant, see spec §9 open question

	root := X.Screen()
	wm.ScreenW, wm.ScreenH = int(root.WidthInPixels), int(root.HeightInPixels)

	if wm.updateGeometry() {
		log.WithField("monitors", len(wm.Mons)).Info("monitors detected")
	}
	wm.SelMon = wm.Mons[0]

	wm.updatenumlockmask()
	wm.grabKeys()

	if err := createSupportWindow(wm); err != nil {
		log.WithError(err).Warn("could not create EWMH supporting-WM-check window")
	}
	ewmh.SupportedSet(X, supportedAtomNames())

	reapZombiesOnce()

	wm.scan()
	wm.focus(nil)
	wm.drawBars()

	return wm, nil
}

// becomeWM requests SubstructureRedirect on the root window; a BadAccess
// here means another manager already holds it (spec §7.1).
func becomeWM(wm *WM) error {
	root := wm.X.RootWin()
	mask := uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify |
		xproto.EventMaskButtonPress | xproto.EventMaskPointerMotion |
		xproto.EventMaskEnterWindow | xproto.EventMaskLeaveWindow |
		xproto.EventMaskStructureNotify | xproto.EventMaskPropertyChange)
	return xproto.ChangeWindowAttributesChecked(wm.X.Conn(), root, xproto.CwEventMask, []uint32{mask}).Check()
}

// createSupportWindow makes the small off-screen window EWMH clients use
// to verify a conforming WM is present, advertising _NET_WM_NAME="dwmgo".
func createSupportWindow(wm *WM) error {
	win, err := xproto.NewWindowId(wm.X.Conn())
	if err != nil {
		return err
	}
	if err := xproto.CreateWindowChecked(wm.X.Conn(), xproto.WindowClassCopyFromParent, win, wm.X.RootWin(),
		-1, -1, 1, 1, 0, xproto.WindowClassInputOutput, 0, 0, nil).Check(); err != nil {
		return err
	}
	if err := ewmh.SupportingWmCheckSet(wm.X, wm.X.RootWin(), win); err != nil {
		return err
	}
	if err := ewmh.SupportingWmCheckSet(wm.X, win, win); err != nil {
		return err
	}
	return ewmh.WmNameSet(wm.X, win, "dwmgo")
}

func barHeightFor(f *barFont) int {
	if f == nil || f.face == nil {
		return 16
	}
	metrics := f.face.Metrics()
	return metrics.Height.Round()
}

// cleanup detaches every managed client and restores borders before exit,
// the counterpart to manage's border/event-mask setup.
func (wm *WM) cleanup() {
	for _, m := range wm.Mons {
		for _, c := range append([]*Client{}, m.Clients...) {
			wm.unmanage(c, false)
		}
	}
	keybind.UngrabAll(wm.X)
	mousebind.UngrabAll(wm.X)
}
