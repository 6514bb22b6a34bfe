package main

import (
	"testing"

	"github.com/jezek/xgbutil/xrect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeHeadsDropsExactDuplicates(t *testing.T) {
	heads := []xrect.Rect{
		xrect.New(0, 0, 1920, 1080),
		xrect.New(0, 0, 1920, 1080),
		xrect.New(1920, 0, 1920, 1080),
	}
	out := dedupeHeads(heads)
	assert.Len(t, out, 2)
}

func TestDedupeHeadsKeepsDistinctGeometries(t *testing.T) {
	heads := []xrect.Rect{
		xrect.New(0, 0, 1920, 1080),
		xrect.New(0, 0, 1280, 1024),
	}
	out := dedupeHeads(heads)
	assert.Len(t, out, 2)
}

func TestMigrateClientsMovesAllAndRehomesSelMon(t *testing.T) {
	wm := &WM{}
	from := newMonitor(0)
	to := newMonitor(1)
	wm.Mons = []*Monitor{from, to}
	wm.SelMon = from

	a := &Client{}
	b := &Client{}
	from.attachClient(a)
	from.attachClient(b)
	from.attachStack(a)
	from.attachStack(b)

	wm.migrateClients(from, to)

	assert.Empty(t, from.Clients, "expected from to be emptied")
	assert.Empty(t, from.Stack)
	require.Len(t, to.Clients, 2)
	require.Len(t, to.Stack, 2)
	assert.Same(t, to, a.Mon)
	assert.Same(t, to, b.Mon)
	assert.Same(t, to, wm.SelMon, "expected SelMon to follow when it pointed at the removed monitor")
}

func TestMonitorForWindow(t *testing.T) {
	wm := &WM{}
	m0 := newMonitor(0)
	m0.BarWin = 42
	m1 := newMonitor(1)
	m1.BarWin = 99
	wm.Mons = []*Monitor{m0, m1}

	assert.Same(t, m1, wm.monitorForWindow(99))
	assert.Nil(t, wm.monitorForWindow(7), "expected nil for an unknown window")
}

func TestRecMonitorAtFallsBackToSelMon(t *testing.T) {
	wm := &WM{}
	m0 := newMonitor(0)
	m0.MX, m0.MY, m0.MW, m0.MH = 0, 0, 1920, 1080
	m1 := newMonitor(1)
	m1.MX, m1.MY, m1.MW, m1.MH = 1920, 0, 1920, 1080
	wm.Mons = []*Monitor{m0, m1}
	wm.SelMon = m0

	assert.Same(t, m1, wm.recMonitorAt(2000, 10), "expected m1 for a point inside its rectangle")
	assert.Same(t, wm.SelMon, wm.recMonitorAt(-5, -5), "expected fallback to SelMon for a point outside every monitor")
}
