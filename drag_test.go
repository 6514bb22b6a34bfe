package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, 5, abs(-5))
	assert.Equal(t, 5, abs(5))
	assert.Equal(t, 0, abs(0))
}

func TestMaxMinInt(t *testing.T) {
	assert.Equal(t, 7, maxInt(3, 7))
	assert.Equal(t, 7, maxInt(7, 3))
	assert.Equal(t, 3, minInt(3, 7))
	assert.Equal(t, 3, minInt(7, 3))
}

func TestOverlapAreaDisjointIsZero(t *testing.T) {
	assert.Zero(t, overlapArea(0, 0, 100, 100, 200, 200, 100, 100))
}

func TestOverlapAreaPartial(t *testing.T) {
	// [0,100)x[0,100) and [50,150)x[50,150) overlap in [50,100)x[50,100) = 50x50.
	assert.Equal(t, 2500, overlapArea(0, 0, 100, 100, 50, 50, 100, 100))
}

func TestDragExceedsSnap(t *testing.T) {
	c := &Client{X: 100, Y: 100}
	assert.True(t, dragExceedsSnap(c, 100+globalConfig.Snap+1, 100), "expected exceeding snap distance on X to report true")
	assert.False(t, dragExceedsSnap(c, 100+globalConfig.Snap-1, 100), "expected staying within snap distance to report false")
}

func TestSnapToWorkingAreaEdges(t *testing.T) {
	m := newMonitor(0)
	m.WX, m.WY, m.WW, m.WH = 0, 0, 1920, 1080
	c := &Client{Mon: m, W: 200, H: 100, Bw: 0}

	x, y := (&WM{}).snap(c, 5, 5)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestSnapToOtherClientEdge(t *testing.T) {
	m := newMonitor(0)
	m.WX, m.WY, m.WW, m.WH = 0, 0, 1920, 1080
	neighbor := &Client{Mon: m, X: 0, Y: 0, W: 300, H: 300, Bw: 0}
	m.Clients = []*Client{neighbor}
	neighbor.Tags = 1
	m.TagSet[m.SelTags] = 1

	c := &Client{Mon: m, X: 305, Y: 305, W: 200, H: 100, Bw: 0}
	x, _ := (&WM{}).snap(c, 305, 305)
	assert.Equal(t, 300, x, "expected snap to neighbor's right edge")
}
