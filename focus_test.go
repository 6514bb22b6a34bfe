package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextVisibleIndexSkipsHiddenAndWraps(t *testing.T) {
	m := newMonitor(0)
	m.TagSet[m.SelTags] = 1
	a := &Client{Mon: m, Tags: 1}
	hidden := &Client{Mon: m, Tags: 2}
	c := &Client{Mon: m, Tags: 1}
	cs := []*Client{a, hidden, c}

	assert.Equal(t, 2, nextVisibleIndex(cs, 0, 1), "forward from a should skip hidden and land on c")
	assert.Equal(t, 0, nextVisibleIndex(cs, 2, 1), "forward from c should wrap to a")
	assert.Equal(t, 2, nextVisibleIndex(cs, 0, -1), "backward from a should wrap to c")
}

func TestNextVisibleIndexNoneVisible(t *testing.T) {
	m := newMonitor(0)
	m.TagSet[m.SelTags] = 1
	cs := []*Client{{Mon: m, Tags: 2}, {Mon: m, Tags: 4}}
	assert.Equal(t, -1, nextVisibleIndex(cs, 0, 1), "expected -1 when no other client is visible")
}

func TestNextVisibleIndexSingleClientReturnsItself(t *testing.T) {
	m := newMonitor(0)
	m.TagSet[m.SelTags] = 1
	only := &Client{Mon: m, Tags: 1}
	cs := []*Client{only}
	assert.Equal(t, 0, nextVisibleIndex(cs, 0, 1), "a single visible client should be its own wraparound neighbor")
}

func TestNextVisibleIndexEmptyOrOutOfRange(t *testing.T) {
	assert.Equal(t, -1, nextVisibleIndex(nil, 0, 1), "expected -1 for an empty list")
	cs := []*Client{{}}
	assert.Equal(t, -1, nextVisibleIndex(cs, 5, 1), "expected -1 for an out-of-range index")
}
