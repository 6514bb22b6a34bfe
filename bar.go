// dwmgo
//
// Bar drawing is adapted from distatus/gobar's Bar.Draw/Bar.create: the
// same xgraphics-backed per-monitor dock window, repurposed from
// free-form status text to the tag/layout/title/status bar spec §4.7
// describes.

package main

import (
	"image"

	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/ewmh"
	"github.com/jezek/xgbutil/xgraphics"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type barFont struct {
	face font.Face
}

// barLayoutInfo caches the horizontal regions drawBar last painted, so
// barClickRegion can hit-test without redrawing.
type barLayoutInfo struct {
	tagCells      []image.Rectangle
	ltSymbolRight int
	titleRight    int
}

var barLayouts = map[int]*barLayoutInfo{}

func (wm *WM) barLayout(m *Monitor) *barLayoutInfo {
	if l, ok := barLayouts[m.Num]; ok {
		return l
	}
	return &barLayoutInfo{}
}

// placeBarWindow (re)creates m's bar window at the correct position for
// its current geometry and TopBar/ShowBar settings, and advertises it as
// an EWMH dock the way the teacher's Bar.create does for its own windows.
func (wm *WM) placeBarWindow(m *Monitor) {
	m.recomputeWorkingArea(wm.BarHeight)

	if m.BarWin == 0 {
		win, err := xproto.NewWindowId(wm.X.Conn())
		if err != nil {
			return
		}
		m.BarWin = win
		xproto.CreateWindow(wm.X.Conn(), xproto.WindowClassCopyFromParent, win, wm.X.RootWin(),
			int16(m.MX), int16(wm.barY(m)), uint16(m.MW), uint16(wm.BarHeight), 0,
			xproto.WindowClassInputOutput, 0, xproto.CwEventMask|xproto.CwOverrideRedirect,
			[]uint32{1, uint32(xproto.EventMaskExposure)})
		ewmh.WmWindowTypeSet(wm.X, win, []string{"_NET_WM_WINDOW_TYPE_DOCK"})
		ewmh.WmStateSet(wm.X, win, []string{"_NET_WM_STATE_STICKY"})
		if m.ShowBar {
			xproto.MapWindow(wm.X.Conn(), win)
		}
		return
	}

	xproto.ConfigureWindow(wm.X.Conn(), m.BarWin,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(int32(m.MX)), uint32(int32(wm.barY(m))), uint32(m.MW), uint32(wm.BarHeight)})
	if m.ShowBar {
		xproto.MapWindow(wm.X.Conn(), m.BarWin)
	} else {
		xproto.UnmapWindow(wm.X.Conn(), m.BarWin)
	}
}

func (wm *WM) barY(m *Monitor) int {
	if m.TopBar {
		return m.MY
	}
	return m.MY + m.MH - wm.BarHeight
}

func (wm *WM) drawBars() {
	for _, m := range wm.Mons {
		wm.drawBar(m)
	}
}

// drawBar renders, left to right: tag cells (selected tag uses the
// selected scheme; a small square indicates occupied/urgent), the layout
// symbol, the selected client's title filling the remainder, and (on the
// selected monitor only) the right-aligned status text.
func (wm *WM) drawBar(m *Monitor) {
	if m.BarWin == 0 || !m.ShowBar {
		return
	}
	img := xgraphics.New(wm.X, image.Rect(0, 0, m.MW, wm.BarHeight))
	bg := colorBGRA(wm.Schemes[SchemeNorm].Bg)
	img.For(func(x, y int) xgraphics.BGRA { return bg })

	face := wm.font.face
	x := 0
	layout := &barLayoutInfo{}

	occupied, selectedTags, urgentTags := wm.tagOccupancy(m)

	for i, name := range globalConfig.Tags {
		scheme := SchemeNorm
		if m.TagSet[m.SelTags]&(1<<uint(i)) != 0 {
			scheme = SchemeSel
		}
		w := font.MeasureString(face, name).Round() + wm.LrPad
		cellBg := colorBGRA(wm.Schemes[scheme].Bg)
		cellFg := colorBGRA(wm.Schemes[scheme].Fg)

		sub := img.SubImage(image.Rect(x, 0, x+w, wm.BarHeight)).(*xgraphics.Image)
		sub.For(func(px, py int) xgraphics.BGRA { return cellBg })
		sub.Text(fixed.Point26_6{X: fixed.I(wm.LrPad / 2), Y: fixed.I(wm.BarHeight / 2)}, &cellFg, face, name)

		if occupied&(1<<uint(i)) != 0 {
			filled := m == wm.SelMon && selectedTags&(1<<uint(i)) != 0 && urgentTags&(1<<uint(i)) == 0
			markColor := cellFg
			if urgentTags&(1<<uint(i)) != 0 {
				markColor = colorBGRA(0xFFFF0000)
			}
			drawOccupiedMark(sub, markColor, filled)
		}

		layout.tagCells = append(layout.tagCells, image.Rect(x, 0, x+w, wm.BarHeight))
		x += w
	}

	ltw := font.MeasureString(face, m.LtSymbol).Round() + wm.LrPad
	ltFg := colorBGRA(wm.Schemes[SchemeNorm].Fg)
	img.Text(fixed.Point26_6{X: fixed.I(x + wm.LrPad/2), Y: fixed.I(wm.BarHeight / 2)}, &ltFg, face, m.LtSymbol)
	x += ltw
	layout.ltSymbolRight = x

	statusW := 0
	if m == wm.SelMon && wm.StatusText != "" {
		statusW = font.MeasureString(face, wm.StatusText).Round() + wm.LrPad
		sx := m.MW - statusW
		img.Text(fixed.Point26_6{X: fixed.I(sx + wm.LrPad/2), Y: fixed.I(wm.BarHeight / 2)}, &ltFg, face, wm.StatusText)
	}

	titleRight := m.MW - statusW
	layout.titleRight = titleRight
	if m.Sel != nil {
		title := m.Sel.displayName()
		img.Text(fixed.Point26_6{X: fixed.I(x + wm.LrPad/2), Y: fixed.I(wm.BarHeight / 2)}, &ltFg, face, title)
	}

	barLayouts[m.Num] = layout

	img.XSurfaceSet(m.BarWin)
	img.XDraw()
	img.XPaint(m.BarWin)
	img.Destroy()
}

// drawOccupiedMark draws the small top-left square indicator: filled if
// the selected client on the selected monitor also carries this tag,
// hollow if any urgent client carries it.
func drawOccupiedMark(img *xgraphics.Image, c xgraphics.BGRA, filled bool) {
	const size = 4
	b := img.Bounds()
	for y := b.Min.Y + 1; y < b.Min.Y+1+size; y++ {
		for x := b.Min.X + 1; x < b.Min.X+1+size; x++ {
			edge := x == b.Min.X+1 || x == b.Min.X+size || y == b.Min.Y+1 || y == b.Min.Y+size
			if filled || edge {
				img.Set(x, y, c)
			}
		}
	}
}

// tagOccupancy computes, per tag bit: whether any client on m carries it
// (occupied), whether m.Sel carries it (selectedTags), and whether any
// urgent client on any monitor carries it (urgentTags).
func (wm *WM) tagOccupancy(m *Monitor) (occupied, selectedTags, urgentTags uint32) {
	for _, c := range m.Clients {
		occupied |= c.Tags
	}
	if m.Sel != nil {
		selectedTags = m.Sel.Tags
	}
	for _, mon := range wm.Mons {
		for _, c := range mon.Clients {
			if c.IsUrgent {
				urgentTags |= c.Tags
			}
		}
	}
	return
}

// updateStatusFromRootName reads the root window's _NET_WM_NAME (through
// ewmh.WmNameGet) for use as status text (spec §9 open question: the
// original renders a clock unconditionally while also reading WM_NAME
// through an unused path; this rewrite treats a root name property as
// status and the clock as two mutually exclusive policies and picks the
// root name, since an external companion process can set it, whereas an
// internal clock has no configuration surface at all). The plain ICCCM
// WM_NAME property of the root window (the one xsetroot -name sets) is not
// read, and no clock is drawn.
func (wm *WM) updateStatusFromRootName() {
	name, err := ewmh.WmNameGet(wm.X, wm.X.RootWin())
	if err != nil || name == "" {
		wm.StatusText = ""
		return
	}
	wm.StatusText = name
}

func colorBGRA(argb uint32) xgraphics.BGRA {
	a := uint8(argb >> 24)
	r := uint8((argb >> 16) & 0xff)
	g := uint8((argb >> 8) & 0xff)
	b := uint8(argb & 0xff)
	return xgraphics.BGRA{B: b, G: g, R: r, A: a}
}
