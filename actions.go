// dwmgo
package main

import (
	"os"
	"os/exec"
	"syscall"

	log "github.com/sirupsen/logrus"
)

// view switches the selected monitor's current tagset to ui (spec
// Glossary: "Tagset"). Re-selecting the already-active tagset is a no-op;
// ui==0 toggles back to the previously-viewed tagset (dwm's view(0)
// convention).
func (wm *WM) view(ui uint32) {
	m := wm.SelMon
	if ui&tagMaskAll(len(globalConfig.Tags)) == m.TagSet[m.SelTags] {
		return
	}
	m.SelTags ^= 1
	if ui != 0 {
		m.TagSet[m.SelTags] = ui
	}
	wm.focus(nil)
	wm.arrange(m)
}

// viewall shows every tag at once (supplemented feature, SPEC_FULL §3).
func (wm *WM) viewall() {
	m := wm.SelMon
	m.SelTags ^= 1
	m.TagSet[m.SelTags] = tagMaskAll(len(globalConfig.Tags))
	wm.focus(nil)
	wm.arrange(m)
}

// toggleview flips ui's bits in the current tagset; if the result would
// leave no tag selected, the request is ignored.
func (wm *WM) toggleview(ui uint32) {
	m := wm.SelMon
	newTagset := m.TagSet[m.SelTags] ^ ui
	if newTagset == 0 {
		return
	}
	m.TagSet[m.SelTags] = newTagset
	wm.focus(nil)
	wm.arrange(m)
}

// tag moves the selected client to exactly the tags in ui.
func (wm *WM) tag(ui uint32) {
	c := wm.SelMon.Sel
	if c == nil || ui&tagMaskAll(len(globalConfig.Tags)) == 0 {
		return
	}
	c.Tags = ui
	wm.focus(nil)
	wm.arrange(wm.SelMon)
}

// toggletag flips ui's bits in the selected client's tag mask; a result
// with no bits set is ignored (every Client must belong to ≥1 tag).
func (wm *WM) toggletag(ui uint32) {
	c := wm.SelMon.Sel
	if c == nil {
		return
	}
	newTags := c.Tags ^ ui
	if newTags&tagMaskAll(len(globalConfig.Tags)) == 0 {
		return
	}
	c.Tags = newTags
	wm.focus(nil)
	wm.arrange(wm.SelMon)
}

// togglefloating toggles the selected client's floating flag. A client
// that becomes floating is resized to the geometry saved in OldGeom; a
// client that stops floating saves its current geometry there first. No-op
// for fixed or fullscreen clients.
func (wm *WM) togglefloating() {
	c := wm.SelMon.Sel
	if c == nil || c.IsFixed || c.IsFullscreen {
		return
	}
	c.IsFloating = !c.IsFloating
	if c.IsFloating {
		wm.resizeClient(c, c.OldGeom.X, c.OldGeom.Y, c.OldGeom.W, c.OldGeom.H, false)
	} else {
		c.OldGeom = SavedGeometry{X: c.X, Y: c.Y, W: c.W, H: c.H}
	}
	wm.arrange(c.Mon)
}

// togglebar flips the selected monitor's bar visibility and re-derives
// its working area.
func (wm *WM) togglebar() {
	m := wm.SelMon
	m.ShowBar = !m.ShowBar
	m.recomputeWorkingArea(wm.BarHeight)
	wm.placeBarWindow(m)
	wm.arrange(m)
}

// setLayout puts the configured layout at index idx into the selected
// monitor's currently active layout slot (spec: "two assigned layouts plus
// a current-layout selector bit"); the selector bit itself is not changed.
func (wm *WM) setLayout(idx int) {
	if idx < 0 || idx >= len(globalConfig.Layouts) {
		return
	}
	m := wm.SelMon
	m.Lt[m.SelLayout] = globalConfig.Layouts[idx]
	m.LtSymbol = m.Lt[m.SelLayout].Symbol
	if m.Sel != nil {
		wm.arrange(m)
	} else {
		wm.drawBar(m)
	}
}

// setmfact adjusts the selected monitor's master-area fraction within
// [0.05, 0.95].
func (wm *WM) setmfact(delta float64) {
	m := wm.SelMon
	f := m.MFact + delta
	if f < 0.05 || f > 0.95 {
		return
	}
	m.MFact = f
	wm.arrange(m)
}

// killclient politely asks the selected client to close via
// WM_DELETE_WINDOW if it supports WM_PROTOCOLS; otherwise forcibly kills
// the X client, guarded by the §7.3 scoped error-suppression bracket.
func (wm *WM) killclient() {
	c := wm.SelMon.Sel
	if c == nil {
		return
	}
	if sendProtocolMessage(wm, c.Win, "WM_DELETE_WINDOW", wm.Atoms.WMDelete) {
		return
	}
	withErrorsIgnored(wm, func() {
		killClientConn(wm, c.Win)
	})
}

// spawn launches an external command the way spec §6 describes. setsid
// detaches the child into its own session so it isn't killed by a signal
// aimed at the WM's process group; the other two steps spec §6 names
// don't need explicit code here. The X socket xgb opens is a Go net.Conn,
// which the runtime already marks close-on-exec, so the child never
// inherits it. And SIGCHLD's disposition restores to default on exec by
// itself: Go's signal.Notify installs a real handler rather than SIG_IGN,
// and execve resets any caught (non-default, non-ignored) signal back to
// SIG_DFL, which is exactly the state a spawned child needs.
func spawn(wm *WM, command string, args ...string) {
	cmd := exec.Command(command, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		log.WithError(err).WithField("command", command).Warn("spawn failed")
		return
	}
	go func() { _ = cmd.Wait() }()
}
