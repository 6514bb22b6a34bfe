// dwmgo
package main

import (
	"github.com/jezek/xgb/xproto"
)

// movemouse and resizemouse are the modal interactive pumps of spec
// §4.5/§9: grab the pointer, loop on the next mouse/expose/substructure-
// redirect event (dispatching Expose/MapRequest/ConfigureRequest through
// the normal table so the rest of the system keeps behaving), throttle
// MotionNotify to <=60Hz by event-timestamp delta, and exit on
// ButtonRelease.

const motionThrottleMs = 1000 / 60

func (wm *WM) movemouse() {
	c := wm.SelMon.Sel
	if c == nil || c.IsFullscreen {
		return
	}
	wm.restack(wm.SelMon)
	ocx, ocy := c.X, c.Y

	xproto.GrabPointer(wm.X.Conn(), false, wm.X.RootWin(),
		xproto.EventMaskButtonRelease|xproto.EventMaskPointerMotion,
		xproto.GrabModeAsync, xproto.GrabModeAsync, 0, wm.Cursors.Move,
		xproto.TimeCurrentTime)

	var lastTime xproto.Timestamp
	startX, startY := wm.pointerRoot()

	for {
		ev, err := wm.X.Conn().WaitForEvent()
		if err != nil || ev == nil {
			continue
		}
		switch e := ev.(type) {
		case xproto.ExposeEvent:
			wm.handleExpose(e)
		case xproto.MapRequestEvent:
			wm.handleMapRequest(e)
		case xproto.ConfigureRequestEvent:
			wm.handleConfigureRequest(e)
		case xproto.MotionNotifyEvent:
			if e.Time-lastTime <= motionThrottleMs {
				continue
			}
			lastTime = e.Time
			nx := ocx + (int(e.RootX) - startX)
			ny := ocy + (int(e.RootY) - startY)
			nx, ny = wm.snap(c, nx, ny)

			if !c.IsFloating && dragExceedsSnap(c, nx, ny) {
				c.IsFloating = true
				wm.arrange(c.Mon)
			}
			if c.IsFloating {
				wm.resizeClient(c, nx, ny, c.W, c.H, true)
			}
		case xproto.ButtonReleaseEvent:
			xproto.UngrabPointer(wm.X.Conn(), xproto.TimeCurrentTime)
			wm.maybeTransferMonitor(c)
			return
		}
	}
}

func (wm *WM) resizemouse() {
	c := wm.SelMon.Sel
	if c == nil || c.IsFullscreen {
		return
	}
	wm.restack(wm.SelMon)

	xproto.GrabPointer(wm.X.Conn(), false, wm.X.RootWin(),
		xproto.EventMaskButtonRelease|xproto.EventMaskPointerMotion,
		xproto.GrabModeAsync, xproto.GrabModeAsync, 0, wm.Cursors.Resize,
		xproto.TimeCurrentTime)

	var lastTime xproto.Timestamp
	for {
		ev, err := wm.X.Conn().WaitForEvent()
		if err != nil || ev == nil {
			continue
		}
		switch e := ev.(type) {
		case xproto.ExposeEvent:
			wm.handleExpose(e)
		case xproto.MapRequestEvent:
			wm.handleMapRequest(e)
		case xproto.ConfigureRequestEvent:
			wm.handleConfigureRequest(e)
		case xproto.MotionNotifyEvent:
			if e.Time-lastTime <= motionThrottleMs {
				continue
			}
			lastTime = e.Time
			nw := int(e.RootX) - c.X - 2*c.Bw + 1
			nh := int(e.RootY) - c.Y - 2*c.Bw + 1
			if nw < 1 {
				nw = 1
			}
			if nh < 1 {
				nh = 1
			}

			if !c.IsFloating && (abs(nw-c.W) > globalConfig.Snap || abs(nh-c.H) > globalConfig.Snap) {
				c.IsFloating = true
				wm.arrange(c.Mon)
			}
			if c.IsFloating {
				wm.resizeClient(c, c.X, c.Y, nw, nh, true)
			}
		case xproto.ButtonReleaseEvent:
			xproto.UngrabPointer(wm.X.Conn(), xproto.TimeCurrentTime)
			wm.maybeTransferMonitor(c)
			return
		}
	}
}

// snap aligns (x,y) within globalConfig.Snap pixels to the monitor
// working-area edges and to other clients' edges.
func (wm *WM) snap(c *Client, x, y int) (int, int) {
	m := c.Mon
	snap := globalConfig.Snap

	if abs(x-m.WX) < snap {
		x = m.WX
	} else if abs((m.WX+m.WW)-(x+c.width())) < snap {
		x = m.WX + m.WW - c.width()
	}
	if abs(y-m.WY) < snap {
		y = m.WY
	} else if abs((m.WY+m.WH)-(y+c.height())) < snap {
		y = m.WY + m.WH - c.height()
	}

	for _, other := range m.Clients {
		if other == c || !other.isVisible() {
			continue
		}
		if abs(x-(other.X+other.width())) < snap {
			x = other.X + other.width()
		}
		if abs(y-(other.Y+other.height())) < snap {
			y = other.Y + other.height()
		}
	}
	return x, y
}

func dragExceedsSnap(c *Client, nx, ny int) bool {
	return abs(nx-c.X) > globalConfig.Snap || abs(ny-c.Y) > globalConfig.Snap
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// maybeTransferMonitor moves c to the monitor it now mostly overlaps, if
// that differs from its current one (spec §4.5: "On exit, if the
// client's new rectangle lies mostly on another monitor, transfer it
// there").
func (wm *WM) maybeTransferMonitor(c *Client) {
	best := c.Mon
	bestArea := 0
	for _, m := range wm.Mons {
		area := overlapArea(c.X, c.Y, c.width(), c.height(), m.MX, m.MY, m.MW, m.MH)
		if area > bestArea {
			bestArea = area
			best = m
		}
	}
	if best != c.Mon {
		c.Mon.detachClient(c)
		c.Mon.detachStack(c)
		best.attachClient(c)
		best.attachStack(c)
		wm.focus(nil)
		wm.arrange(nil)
	}
}

func overlapArea(x1, y1, w1, h1, x2, y2, w2, h2 int) int {
	ix := maxInt(x1, x2)
	iy := maxInt(y1, y2)
	iw := minInt(x1+w1, x2+w2) - ix
	ih := minInt(y1+h1, y2+h2) - iy
	if iw <= 0 || ih <= 0 {
		return 0
	}
	return iw * ih
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// pointerRoot returns the current pointer position relative to the root
// window.
func (wm *WM) pointerRoot() (int, int) {
	reply, err := xproto.QueryPointer(wm.X.Conn(), wm.X.RootWin()).Reply()
	if err != nil {
		return 0, 0
	}
	return int(reply.RootX), int(reply.RootY)
}
