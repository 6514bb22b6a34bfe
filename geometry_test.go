package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(mon *Monitor, x, y, w, h, bw int) *Client {
	c := &Client{X: x, Y: y, W: w, H: h, Bw: bw, Mon: mon}
	c.Hints.Valid = true
	return c
}

func TestApplySizeHintsIdempotent(t *testing.T) {
	wm := &WM{ScreenW: 1920, ScreenH: 1080, BarHeight: 16}
	m := newMonitor(0)
	m.MX, m.MY, m.MW, m.MH = 0, 0, 1920, 1080
	m.recomputeWorkingArea(wm.BarHeight)

	c := newTestClient(m, 100, 100, 400, 300, 1)
	c.Hints = SizeHints{MinW: 50, MinH: 50, Valid: true}
	c.IsFloating = true

	x1, y1, w1, h1, changed1 := c.applySizeHints(wm, 120, 140, 500, 260, false)
	require.True(t, changed1, "expected first apply to report a change")
	c.X, c.Y, c.W, c.H = x1, y1, w1, h1

	x2, y2, w2, h2, changed2 := c.applySizeHints(wm, x1, y1, w1, h1, false)
	assert.False(t, changed2, "second apply with identical inputs reported changed=true")
	assert.Equal(t, [4]int{x1, y1, w1, h1}, [4]int{x2, y2, w2, h2}, "second apply diverged from the first")
}

func TestApplySizeHintsMinimumFloor(t *testing.T) {
	wm := &WM{ScreenW: 1920, ScreenH: 1080, BarHeight: 16}
	m := newMonitor(0)
	m.MX, m.MY, m.MW, m.MH = 0, 0, 1920, 1080
	m.recomputeWorkingArea(wm.BarHeight)

	c := newTestClient(m, 0, 0, 100, 100, 0)
	c.IsFloating = true
	c.Hints.Valid = true

	_, _, w, h, _ := c.applySizeHints(wm, 0, 0, 0, 0, false)
	assert.GreaterOrEqual(t, w, 1, "expected width floored to >=1")
	assert.GreaterOrEqual(t, h, 1, "expected height floored to >=1")
}

func TestApplySizeHintsRespectsMinMax(t *testing.T) {
	wm := &WM{ScreenW: 1920, ScreenH: 1080, BarHeight: 16}
	m := newMonitor(0)
	m.MX, m.MY, m.MW, m.MH = 0, 0, 1920, 1080
	m.recomputeWorkingArea(wm.BarHeight)

	c := newTestClient(m, 0, 0, 400, 300, 0)
	c.IsFloating = true
	c.Hints = SizeHints{MinW: 200, MinH: 200, MaxW: 600, MaxH: 600, Valid: true}

	_, _, w, h, _ := c.applySizeHints(wm, 0, 0, 50, 50, false)
	assert.GreaterOrEqual(t, w, 200, "expected clamp to MinW=200")
	assert.GreaterOrEqual(t, h, 200, "expected clamp to MinH=200")

	_, _, w, h, _ = c.applySizeHints(wm, 0, 0, 5000, 5000, false)
	assert.LessOrEqual(t, w, 600, "expected clamp to MaxW=600")
	assert.LessOrEqual(t, h, 600, "expected clamp to MaxH=600")
}

func TestApplySizeHintsIncrementSnapping(t *testing.T) {
	wm := &WM{ScreenW: 1920, ScreenH: 1080, BarHeight: 16}
	m := newMonitor(0)
	m.MX, m.MY, m.MW, m.MH = 0, 0, 1920, 1080
	m.recomputeWorkingArea(wm.BarHeight)

	c := newTestClient(m, 0, 0, 81, 81, 0)
	c.IsFloating = true
	c.Hints = SizeHints{BaseW: 1, BaseH: 1, IncW: 10, IncH: 10, Valid: true}

	_, _, w, h, _ := c.applySizeHints(wm, 0, 0, 81, 81, false)
	assert.Zero(t, (w-c.Hints.BaseW)%c.Hints.IncW, "expected w-base to be a multiple of IncW=10, got w=%d", w)
	assert.Zero(t, (h-c.Hints.BaseH)%c.Hints.IncH, "expected h-base to be a multiple of IncH=10, got h=%d", h)
}

// TestUpdateSizeHintsFixedImpliesFloating exercises the same fixed/floating
// rule updateSizeHints applies after reading WM_NORMAL_HINTS; the read
// itself needs a live X connection, so updateSizeHints isn't called here.
func TestUpdateSizeHintsFixedImpliesFloating(t *testing.T) {
	c := &Client{}
	c.Hints = SizeHints{MinW: 200, MinH: 100, MaxW: 200, MaxH: 100, Valid: true}
	c.IsFixed = c.Hints.MaxW > 0 && c.Hints.MaxW == c.Hints.MinW && c.Hints.MaxH > 0 && c.Hints.MaxH == c.Hints.MinH
	if c.IsFixed {
		c.IsFloating = true
	}
	assert.True(t, c.IsFixed, "expected equal min/max dimensions to mark the client fixed")
	assert.True(t, c.IsFloating, "expected a fixed client to also be floating")
}
