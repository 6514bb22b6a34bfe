package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tiledTestMonitor(bw int) (*Monitor, int) {
	const barHeight = 16
	m := newMonitor(0)
	m.MX, m.MY, m.MW, m.MH = 0, 0, 1920, 1080
	m.MFact = 0.55
	m.NMaster = 1
	m.recomputeWorkingArea(barHeight)
	return m, barHeight
}

func addVisibleClient(m *Monitor, bw int) *Client {
	c := &Client{Mon: m, Tags: 1, Bw: bw}
	m.TagSet[m.SelTags] = 1
	m.Clients = append(m.Clients, c)
	return c
}

// TestTileLayoutThreeClients matches spec §8 scenario 1: 1920x1080,
// mfact=0.55, nmaster=1, three tiled clients on tag 1.
func TestTileLayoutThreeClients(t *testing.T) {
	m, bh := tiledTestMonitor(0)
	a := addVisibleClient(m, 0)
	b := addVisibleClient(m, 0)
	c := addVisibleClient(m, 0)

	geoms := tileGeometries(m)
	require.Len(t, geoms, 3)

	wantMW := 1056
	assert.Equal(t, tileGeometry{a, 0, bh, wantMW, 1080 - bh}, geoms[0], "master geometry mismatch (bh=%d)", bh)

	stackH := (1080 - bh) / 2
	assert.Equal(t, tileGeometry{b, wantMW, bh, 1920 - wantMW, stackH}, geoms[1], "first stack geometry mismatch")
	assert.Equal(t, tileGeometry{c, wantMW, bh + stackH, 1920 - wantMW, stackH}, geoms[2], "second stack geometry mismatch")
}

func TestTileLayoutNoMaster(t *testing.T) {
	m, _ := tiledTestMonitor(0)
	m.NMaster = 0
	addVisibleClient(m, 0)
	addVisibleClient(m, 0)

	for _, g := range tileGeometries(m) {
		assert.Equal(t, m.WX, g.x, "with nmaster=0 every client should start at WX")
		assert.Equal(t, m.WW, g.w, "with nmaster=0 every client should span the full working width")
	}
}

func TestTileLayoutSingleClientFillsMaster(t *testing.T) {
	m, bh := tiledTestMonitor(0)
	only := addVisibleClient(m, 0)

	geoms := tileGeometries(m)
	require.Len(t, geoms, 1)
	g := geoms[0]
	assert.Same(t, only, g.client)
	assert.Equal(t, m.WW, g.w, "single client should occupy the full working width")
	assert.Equal(t, 1080-bh, g.h, "single client should occupy the full working height")
}

func TestTileLayoutEmptyIsNoOp(t *testing.T) {
	m, _ := tiledTestMonitor(0)
	assert.Nil(t, tileGeometries(m), "expected nil geometries for an empty monitor")
}

func TestVisibleTiledExcludesFloatingAndFullscreen(t *testing.T) {
	m, _ := tiledTestMonitor(0)
	tiled := addVisibleClient(m, 0)
	floating := addVisibleClient(m, 0)
	floating.IsFloating = true
	fullscreen := addVisibleClient(m, 0)
	fullscreen.IsFullscreen = true

	vis := m.visibleTiled()
	require.Len(t, vis, 1)
	assert.Same(t, tiled, vis[0])
}

// TestMonocleLayoutSymbolReflectsCount exercises the same formula
// monocleLayout uses (fmt.Sprintf("[%d]", len(visible))); monocleLayout
// itself also issues resizeClient per client, which needs a live X
// connection and so isn't driven directly here.
func TestMonocleLayoutSymbolReflectsCount(t *testing.T) {
	m, _ := tiledTestMonitor(0)
	addVisibleClient(m, 0)
	addVisibleClient(m, 0)
	addVisibleClient(m, 0)

	cs := m.visibleTiled()
	got := fmt.Sprintf("[%d]", len(cs))
	assert.Equal(t, "[3]", got)
}
