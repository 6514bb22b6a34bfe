package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Only the no-op guard branches of these actions are exercised here: any
// path that reaches wm.focus/wm.arrange touches a live X connection (see
// SPEC_FULL.md's test-tooling policy), so those paths are left to manual
// verification rather than given a fake X connection.

func TestViewNoOpWhenAlreadyActive(t *testing.T) {
	wm := &WM{}
	m := newMonitor(0)
	m.TagSet[m.SelTags] = 1 << 2
	wm.SelMon = m

	wm.view(1 << 2)

	assert.Zero(t, m.SelTags, "expected no tag-slot switch when re-viewing the active tagset")
	assert.Equal(t, uint32(1<<2), m.TagSet[0])
}

func TestToggleviewNoOpWhenResultEmpty(t *testing.T) {
	wm := &WM{}
	m := newMonitor(0)
	m.TagSet[m.SelTags] = 1 << 2
	wm.SelMon = m

	wm.toggleview(1 << 2)

	assert.Equal(t, uint32(1<<2), m.TagSet[m.SelTags], "expected toggleview to refuse clearing the last tag")
}

func TestTagNoOpWithoutSelection(t *testing.T) {
	wm := &WM{}
	m := newMonitor(0)
	wm.SelMon = m
	// m.Sel is nil; tag must return before touching X.
	wm.tag(1 << 3)
	assert.Nil(t, m.Sel)
}

func TestTagNoOpWithEmptyMask(t *testing.T) {
	wm := &WM{}
	m := newMonitor(0)
	c := &Client{Mon: m, Tags: 1}
	m.Sel = c
	wm.SelMon = m

	wm.tag(0)

	assert.Equal(t, uint32(1), c.Tags, "expected tags to be untouched by an empty mask")
}

func TestToggletagNoOpWithoutSelection(t *testing.T) {
	wm := &WM{}
	m := newMonitor(0)
	wm.SelMon = m
	wm.toggletag(1 << 3)
}

func TestToggletagNoOpWhenResultEmpty(t *testing.T) {
	wm := &WM{}
	m := newMonitor(0)
	c := &Client{Mon: m, Tags: 1 << 4}
	m.Sel = c
	wm.SelMon = m

	wm.toggletag(1 << 4)

	assert.Equal(t, uint32(1<<4), c.Tags, "expected toggletag to refuse clearing the client's last tag")
}

func TestSetmfactRejectsOutOfRange(t *testing.T) {
	wm := &WM{}
	m := newMonitor(0)
	m.MFact = 0.5
	wm.SelMon = m

	wm.setmfact(0.5) // would push to 1.0, above the 0.95 ceiling
	assert.Equal(t, 0.5, m.MFact, "expected MFact to stay at 0.5 when the delta exceeds the ceiling")

	wm.setmfact(-0.5) // would push to 0.0, below the 0.05 floor
	assert.Equal(t, 0.5, m.MFact, "expected MFact to stay at 0.5 when the delta goes below the floor")
}
