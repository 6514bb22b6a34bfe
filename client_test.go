package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIsVisibleRequiresSharedTag(t *testing.T) {
	m := newMonitor(0)
	m.TagSet[m.SelTags] = 1 << 2
	c := &Client{Mon: m, Tags: 1 << 2}
	assert.True(t, c.isVisible(), "expected client sharing the current tag to be visible")
	c.Tags = 1 << 3
	assert.False(t, c.isVisible(), "expected client with a different tag to be hidden")
}

func TestClientIsVisibleFalseWithoutMonitor(t *testing.T) {
	c := &Client{Tags: 1}
	assert.False(t, c.isVisible(), "expected an unmanaged client (Mon == nil) to report not visible")
}

func TestClientWidthHeightIncludeBorder(t *testing.T) {
	c := &Client{W: 100, H: 50, Bw: 2}
	assert.Equal(t, 104, c.width())
	assert.Equal(t, 54, c.height())
}

func TestClientResizeUpdatesFields(t *testing.T) {
	c := &Client{}
	c.resize(1, 2, 3, 4, 5)
	assert.Equal(t, &Client{X: 1, Y: 2, W: 3, H: 4, Bw: 5}, c)
}

func TestClientDisplayNameFallsBackToBroken(t *testing.T) {
	c := &Client{}
	assert.Equal(t, "broken", c.displayName())
	c.Name = "xterm"
	assert.Equal(t, "xterm", c.displayName())
}
