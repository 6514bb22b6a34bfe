// dwmgo
package main

import (
	"github.com/jezek/xgbutil/icccm"
)

// SizeHints mirrors the ICCCM 4.1.2.3 fields a client may advertise via
// WM_NORMAL_HINTS.
type SizeHints struct {
	BaseW, BaseH int
	MinW, MinH   int
	MaxW, MaxH   int
	IncW, IncH   int
	MinA, MaxA   float64
	Valid        bool
}

// updateSizeHints reads WM_NORMAL_HINTS for c.Win and fills c.Hints. If
// neither base nor min size is supplied by the client the corresponding
// field stays 0, per ICCCM.
func (c *Client) updateSizeHints(wm *WM) {
	h := SizeHints{}

	normal, err := icccm.WmNormalHintsGet(wm.X, c.Win)
	if err == nil && normal != nil {
		if normal.Flags&icccm.SizeHintPBaseSize != 0 {
			h.BaseW, h.BaseH = int(normal.BaseWidth), int(normal.BaseHeight)
		} else if normal.Flags&icccm.SizeHintPMinSize != 0 {
			h.BaseW, h.BaseH = int(normal.MinWidth), int(normal.MinHeight)
		}
		if normal.Flags&icccm.SizeHintPResizeInc != 0 {
			h.IncW, h.IncH = int(normal.WidthInc), int(normal.HeightInc)
		}
		if normal.Flags&icccm.SizeHintPMaxSize != 0 {
			h.MaxW, h.MaxH = int(normal.MaxWidth), int(normal.MaxHeight)
		}
		if normal.Flags&icccm.SizeHintPMinSize != 0 {
			h.MinW, h.MinH = int(normal.MinWidth), int(normal.MinHeight)
		} else if normal.Flags&icccm.SizeHintPBaseSize != 0 {
			h.MinW, h.MinH = int(normal.BaseWidth), int(normal.BaseHeight)
		}
		if normal.Flags&icccm.SizeHintPAspect != 0 && normal.MinAspectDen != 0 && normal.MaxAspectDen != 0 {
			h.MinA = float64(normal.MinAspectDen) / float64(normal.MinAspectNum)
			h.MaxA = float64(normal.MaxAspectNum) / float64(normal.MaxAspectDen)
		}
	}

	c.Hints = h
	c.Hints.Valid = true
	c.IsFixed = h.MaxW > 0 && h.MaxW == h.MinW && h.MaxH > 0 && h.MaxH == h.MinH
	if c.IsFixed {
		c.IsFloating = true
	}
}

// applySizeHints clamps (x,y,w,h) to the client's constraints and returns
// the adjusted rectangle plus whether anything changed relative to the
// client's current geometry. interact selects whether the clamp target is
// the full screen (true, for interactive drags) or the owning monitor's
// working area (false).
func (c *Client) applySizeHints(wm *WM, x, y, w, h int, interact bool) (nx, ny, nw, nh int, changed bool) {
	if !c.Hints.Valid {
		c.updateSizeHints(wm)
	}

	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w < wm.BarHeight {
		w = wm.BarHeight
	}
	if h < wm.BarHeight {
		h = wm.BarHeight
	}

	if interact {
		if x > wm.ScreenW {
			x = wm.ScreenW - widthOf(w, c.Bw)
		}
		if y > wm.ScreenH {
			y = wm.ScreenH - heightOf(h, c.Bw)
		}
		if x+w+2*c.Bw < 0 {
			x = 0
		}
		if y+h+2*c.Bw < 0 {
			y = 0
		}
	} else if c.Mon != nil {
		m := c.Mon
		if x >= m.WX+m.WW {
			x = m.WX + m.WW - widthOf(w, c.Bw)
		}
		if y >= m.WY+m.WH {
			y = m.WY + m.WH - heightOf(h, c.Bw)
		}
		if x+w+2*c.Bw <= m.WX {
			x = m.WX
		}
		if y+h+2*c.Bw <= m.WY {
			y = m.WY
		}
	}

	resizeHints := c.IsFloating || (c.Mon != nil && c.Mon.activeLayout().Arrange == nil) || globalConfig.ResizeHints
	if resizeHints {
		baseIsMin := c.Hints.BaseW == c.Hints.MinW && c.Hints.BaseH == c.Hints.MinH
		if !baseIsMin {
			w -= c.Hints.BaseW
			h -= c.Hints.BaseH
		}
		if c.Hints.MaxA > 0 && c.Hints.MinA > 0 {
			if c.Hints.MaxA < float64(w)/float64(h) {
				w = int(float64(h)*c.Hints.MaxA + 0.5)
			} else if c.Hints.MinA < float64(h)/float64(w) {
				h = int(float64(w)*c.Hints.MinA + 0.5)
			}
		}
		if baseIsMin {
			w -= c.Hints.BaseW
			h -= c.Hints.BaseH
		}
		if c.Hints.IncW != 0 {
			w -= w % c.Hints.IncW
		}
		if c.Hints.IncH != 0 {
			h -= h % c.Hints.IncH
		}
		w += c.Hints.BaseW
		h += c.Hints.BaseH
		if c.Hints.MinW > 0 && w < c.Hints.MinW {
			w = c.Hints.MinW
		}
		if c.Hints.MinH > 0 && h < c.Hints.MinH {
			h = c.Hints.MinH
		}
		if c.Hints.MaxW > 0 && w > c.Hints.MaxW {
			w = c.Hints.MaxW
		}
		if c.Hints.MaxH > 0 && h > c.Hints.MaxH {
			h = c.Hints.MaxH
		}
	}

	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	changed = x != c.X || y != c.Y || w != c.W || h != c.H
	return x, y, w, h, changed
}

func widthOf(w, bw int) int  { return w + 2*bw }
func heightOf(h, bw int) int { return h + 2*bw }
