package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachClientInsertsAtHead(t *testing.T) {
	m := newMonitor(0)
	a := &Client{}
	b := &Client{}
	m.attachClient(a)
	m.attachClient(b)
	require.Len(t, m.Clients, 2)
	assert.Same(t, b, m.Clients[0])
	assert.Same(t, a, m.Clients[1])
	assert.Same(t, m, a.Mon, "attachClient must set Mon on the attached client")
	assert.Same(t, m, b.Mon)
}

func TestDetachClientPreservesOrder(t *testing.T) {
	m := newMonitor(0)
	a, b, c := &Client{}, &Client{}, &Client{}
	m.Clients = []*Client{a, b, c}
	m.detachClient(b)
	require.Len(t, m.Clients, 2)
	assert.Same(t, a, m.Clients[0])
	assert.Same(t, c, m.Clients[1])
}

func TestDetachStackReselectsFirstVisible(t *testing.T) {
	m := newMonitor(0)
	m.TagSet[m.SelTags] = 1
	invisible := &Client{Mon: m, Tags: 2}
	visible := &Client{Mon: m, Tags: 1}
	m.Stack = []*Client{invisible, visible}
	m.Sel = invisible
	m.detachStack(invisible)
	assert.Same(t, visible, m.Sel, "expected Sel to fall back to the first visible stack entry")
}

func TestDetachStackClearsSelWhenNoneVisible(t *testing.T) {
	m := newMonitor(0)
	m.TagSet[m.SelTags] = 1
	c := &Client{Mon: m, Tags: 2}
	m.Stack = []*Client{c}
	m.Sel = c
	m.detachStack(c)
	assert.Nil(t, m.Sel)
}

func TestFirstVisibleInStackSkipsHidden(t *testing.T) {
	m := newMonitor(0)
	m.TagSet[m.SelTags] = 1
	hidden := &Client{Mon: m, Tags: 2}
	shown := &Client{Mon: m, Tags: 1}
	m.Stack = []*Client{hidden, shown}
	assert.Same(t, shown, m.firstVisibleInStack())
}

func TestContainsClient(t *testing.T) {
	m := newMonitor(0)
	a := &Client{}
	other := &Client{}
	m.Clients = []*Client{a}
	assert.True(t, m.containsClient(a))
	assert.False(t, m.containsClient(other))
}

func TestRecomputeWorkingAreaTopBar(t *testing.T) {
	m := newMonitor(0)
	m.MX, m.MY, m.MW, m.MH = 100, 50, 1920, 1080
	m.ShowBar = true
	m.TopBar = true
	m.recomputeWorkingArea(20)
	assert.Equal(t, 100, m.WX)
	assert.Equal(t, 70, m.WY)
	assert.Equal(t, 1920, m.WW)
	assert.Equal(t, 1060, m.WH)
}

func TestRecomputeWorkingAreaBottomBar(t *testing.T) {
	m := newMonitor(0)
	m.MX, m.MY, m.MW, m.MH = 0, 0, 1920, 1080
	m.ShowBar = true
	m.TopBar = false
	m.recomputeWorkingArea(20)
	assert.Zero(t, m.WY, "bottom bar should not shift WY")
	assert.Equal(t, 1060, m.WH)
}

func TestRecomputeWorkingAreaNoBar(t *testing.T) {
	m := newMonitor(0)
	m.MX, m.MY, m.MW, m.MH = 0, 0, 1920, 1080
	m.ShowBar = false
	m.recomputeWorkingArea(20)
	assert.Equal(t, 0, m.WX)
	assert.Equal(t, 0, m.WY)
	assert.Equal(t, 1920, m.WW)
	assert.Equal(t, 1080, m.WH)
}
