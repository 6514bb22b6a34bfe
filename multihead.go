// dwmgo
package main

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/xinerama"
	"github.com/jezek/xgbutil/xrect"
	log "github.com/sirupsen/logrus"
)

// updateGeometry queries Xinerama (falling back to a single virtual
// monitor spanning the screen when Xinerama is unavailable or reports
// nothing), deduplicates identical geometries, reconciles the result
// against the existing monitor list, and returns whether anything
// changed. New heads become new Monitors; removed heads migrate their
// clients to monitor 0 before being dropped.
func (wm *WM) updateGeometry() bool {
	heads := dedupeHeads(queryHeads(wm))
	dirty := false

	if len(heads) == 0 {
		heads = []xrect.Rect{xrect.New(0, 0, wm.ScreenW, wm.ScreenH)}
	}

	for i, h := range heads {
		if i >= len(wm.Mons) {
			m := newMonitor(i)
			m.MX, m.MY, m.MW, m.MH = h.X(), h.Y(), h.Width(), h.Height()
			m.recomputeWorkingArea(wm.BarHeight)
			wm.Mons = append(wm.Mons, m)
			dirty = true
			continue
		}
		m := wm.Mons[i]
		if m.MX != h.X() || m.MY != h.Y() || m.MW != h.Width() || m.MH != h.Height() {
			dirty = true
			m.MX, m.MY, m.MW, m.MH = h.X(), h.Y(), h.Width(), h.Height()
			m.recomputeWorkingArea(wm.BarHeight)
		}
	}

	for len(wm.Mons) > len(heads) {
		removed := wm.Mons[len(wm.Mons)-1]
		wm.migrateClients(removed, wm.Mons[0])
		wm.Mons = wm.Mons[:len(wm.Mons)-1]
		dirty = true
		log.WithField("monitor", removed.Num).Info("monitor removed, clients migrated to monitor 0")
	}

	if wm.SelMon == nil && len(wm.Mons) > 0 {
		wm.SelMon = wm.Mons[0]
	}
	for i := 1; i < len(wm.Mons); i++ {
		wm.Mons[i-1].Next = wm.Mons[i]
	}

	if dirty {
		for _, m := range wm.Mons {
			wm.placeBarWindow(m)
		}
	}

	return dirty
}

func queryHeads(wm *WM) []xrect.Rect {
	heads, err := xinerama.PhysicalHeads(wm.X)
	if err != nil {
		return nil
	}
	out := make([]xrect.Rect, len(heads))
	for i, h := range heads {
		out[i] = h
	}
	return out
}

// dedupeHeads discards any head whose (x,y,w,h) exactly matches an
// earlier entry, per spec §4.8.
func dedupeHeads(heads []xrect.Rect) []xrect.Rect {
	var out []xrect.Rect
	for _, h := range heads {
		dup := false
		for _, seen := range out {
			if seen.X() == h.X() && seen.Y() == h.Y() && seen.Width() == h.Width() && seen.Height() == h.Height() {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, h)
		}
	}
	return out
}

// migrateClients moves every client of from onto to, detaching from both
// of from's lists and attaching to both of to's.
func (wm *WM) migrateClients(from, to *Monitor) {
	for _, c := range append([]*Client{}, from.Clients...) {
		from.detachClient(c)
		from.detachStack(c)
		c.Mon = to
		to.attachClient(c)
		to.attachStack(c)
	}
	if wm.SelMon == from {
		wm.SelMon = to
	}
}

// monitorForWindow finds the Monitor owning a given bar window id.
func (wm *WM) monitorForWindow(w xproto.Window) *Monitor {
	for _, m := range wm.Mons {
		if m.BarWin == w {
			return m
		}
	}
	return nil
}

// recMonitorAt returns the monitor whose output rectangle contains
// (x,y), or SelMon when no monitor does. It does not touch MotionMon;
// handleMotionNotify stores the result there (the Global Model's
// "mouse-motion monitor cache").
func (wm *WM) recMonitorAt(x, y int) *Monitor {
	for _, m := range wm.Mons {
		if x >= m.MX && x < m.MX+m.MW && y >= m.MY && y < m.MY+m.MH {
			return m
		}
	}
	return wm.SelMon
}
