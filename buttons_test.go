package main

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarClickRegionTagCell(t *testing.T) {
	wm := &WM{}
	m := newMonitor(7)
	barLayouts[m.Num] = &barLayoutInfo{
		tagCells:      []image.Rectangle{image.Rect(0, 0, 20, 16), image.Rect(20, 0, 40, 16)},
		ltSymbolRight: 60,
		titleRight:    400,
	}
	defer delete(barLayouts, m.Num)

	region, arg := wm.barClickRegion(m, 25)
	require.Equal(t, ClkTagBar, region)
	assert.Equal(t, uint32(1<<1), arg.(uint32), "expected tag bit 1 for the second cell")
}

func TestBarClickRegionLtSymbol(t *testing.T) {
	wm := &WM{}
	m := newMonitor(8)
	barLayouts[m.Num] = &barLayoutInfo{ltSymbolRight: 60, titleRight: 400}
	defer delete(barLayouts, m.Num)

	region, _ := wm.barClickRegion(m, 45)
	assert.Equal(t, ClkLtSymbol, region)
}

func TestBarClickRegionTitleAndStatus(t *testing.T) {
	wm := &WM{}
	m := newMonitor(9)
	barLayouts[m.Num] = &barLayoutInfo{ltSymbolRight: 60, titleRight: 400}
	defer delete(barLayouts, m.Num)

	region, _ := wm.barClickRegion(m, 200)
	assert.Equal(t, ClkWinTitle, region)

	region, _ = wm.barClickRegion(m, 450)
	assert.Equal(t, ClkStatusText, region)
}

func TestBarClickRegionUncachedMonitorDefaultsEmpty(t *testing.T) {
	wm := &WM{}
	m := newMonitor(123)
	region, _ := wm.barClickRegion(m, 5)
	assert.Equal(t, ClkStatusText, region, "expected an uncached (all-zero) layout to fall through to ClkStatusText")
}
