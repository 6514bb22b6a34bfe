// dwmgo
package main

import "fmt"

// Layout is a (symbol, arranger) pair. Arrange is nil for the floating
// layout: the tiler never touches geometries in that case.
type Layout struct {
	Symbol  string
	Arrange func(wm *WM, m *Monitor)
}

// tileGeometry is one client's computed placement within the tile layout,
// before size-hint clamping or any X request.
type tileGeometry struct {
	client     *Client
	x, y, w, h int
}

// tileGeometries computes the master/stack placement for every visible
// tiled client on m, per spec §4.3. Pulled out of tileLayout so the
// arithmetic can be tested without a live X connection; tileLayout itself
// just applies each result via resizeClient.
func tileGeometries(m *Monitor) []tileGeometry {
	cs := m.visibleTiled()
	n := len(cs)
	if n == 0 {
		return nil
	}

	nmaster := m.NMaster
	if nmaster < 0 {
		nmaster = 0
	}

	mw := m.WW
	if n > nmaster && nmaster > 0 {
		mw = int(float64(m.WW) * m.MFact)
	} else if nmaster == 0 {
		mw = 0
	}

	out := make([]tileGeometry, n)
	var my, ty int
	for i, c := range cs {
		if i < nmaster {
			rows := nmaster
			if n < rows {
				rows = n
			}
			h := (m.WH - my) / (rows - i)
			out[i] = tileGeometry{c, m.WX, m.WY + my, mw - 2*c.Bw, h - 2*c.Bw}
			if my+h < m.WH {
				my += h
			}
		} else {
			h := (m.WH - ty) / (n - i)
			out[i] = tileGeometry{c, m.WX + mw, m.WY + ty, m.WW - mw - 2*c.Bw, h - 2*c.Bw}
			if ty+h < m.WH {
				ty += h
			}
		}
	}
	return out
}

// tileLayout places clients in a master column plus a stack column, per
// spec §4.3.
func tileLayout(wm *WM, m *Monitor) {
	for _, g := range tileGeometries(m) {
		wm.resizeClient(g.client, g.x, g.y, g.w, g.h, false)
	}
}

// monocleLayout fills the working area with each visible tiled client in
// turn (only the selected one is normally visible to the user since they
// fully overlap); the layout symbol is overridden to show the count.
func monocleLayout(wm *WM, m *Monitor) {
	cs := m.visibleTiled()
	m.LtSymbol = fmt.Sprintf("[%d]", len(cs))
	for _, c := range cs {
		wm.resizeClient(c, m.WX, m.WY, m.WW-2*c.Bw, m.WH-2*c.Bw, false)
	}
}

// floatingLayout is the no-op arranger: nil Arrange already skips the
// tiler, but this symbol is kept in the layout table for explicit
// selection via the keybinding table.
var floatingLayout = &Layout{Symbol: "><>", Arrange: nil}

var tileLayoutDef = &Layout{Symbol: "[]=", Arrange: tileLayout}
var monocleLayoutDef = &Layout{Symbol: "[M]", Arrange: monocleLayout}

// showhide pushes invisible clients off-screen (x = -2*width) without
// unmapping them, and restores visible ones to their stored geometry.
// Walking the focus stack (not the client list) matches dwm's traversal
// order, which keeps recently-focused clients' positions settling first.
func (wm *WM) showhide(m *Monitor) {
	if m == nil {
		return
	}
	for _, c := range m.Stack {
		if c.isVisible() {
			wm.moveWindow(c, c.X, c.Y)
			if (c.Mon.activeLayout().Arrange == nil || c.IsFloating) && !c.IsFullscreen {
				wm.resizeClient(c, c.X, c.Y, c.W, c.H, false)
			}
		} else {
			wm.moveWindow(c, -2*c.width(), c.Y)
		}
	}
}

// arrange re-derives geometries for m (or every monitor, if m is nil),
// in the order showhide -> arranger -> restack, per spec §4.3.
func (wm *WM) arrange(m *Monitor) {
	if m != nil {
		wm.showhide(m)
	} else {
		for _, mon := range wm.Mons {
			wm.showhide(mon)
		}
	}

	arrangeOne := func(mon *Monitor) {
		mon.LtSymbol = mon.activeLayout().Symbol
		if fn := mon.activeLayout().Arrange; fn != nil {
			fn(wm, mon)
		}
		wm.restack(mon)
	}

	if m != nil {
		arrangeOne(m)
	} else {
		for _, mon := range wm.Mons {
			arrangeOne(mon)
		}
	}
}
