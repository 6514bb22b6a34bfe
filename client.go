// dwmgo
package main

import "github.com/jezek/xgb/xproto"

// SavedGeometry is a rectangle kept aside so a client can be restored to
// it later (togglefloating and leaving fullscreen restore OldGeom).
type SavedGeometry struct {
	X, Y, W, H int
}

// Client is a managed top-level window. Every Client belongs to exactly
// one Monitor and appears exactly once in that monitor's Clients order
// list and exactly once in its Stack focus list.
type Client struct {
	Win   xproto.Window
	Name  string
	Class string

	X, Y, W, H int
	Bw         int
	OldBw      int

	OldGeom       SavedGeometry // pre-interaction saved geometry
	PreMinimize   SavedGeometry // pre-minimize saved geometry
	PreFSFloating bool          // floating flag saved before entering fullscreen
	PreFSBw       int           // border width saved before entering fullscreen

	Hints SizeHints

	Tags uint32
	Mon  *Monitor

	IsFixed      bool
	IsFloating   bool
	IsUrgent     bool
	NeverFocus   bool
	IsFullscreen bool
	IsMinimized  bool
}

// isVisible reports whether c shares a tag with its monitor's current
// tagset.
func (c *Client) isVisible() bool {
	if c.Mon == nil {
		return false
	}
	return c.Tags&c.Mon.TagSet[c.Mon.SelTags] != 0
}

// width/height are the client's external (border-inclusive) dimensions.
func (c *Client) width() int  { return c.W + 2*c.Bw }
func (c *Client) height() int { return c.H + 2*c.Bw }

// resize applies geometry directly to the in-memory model; callers are
// responsible for issuing the corresponding ConfigureWindow request
// (see (*WM).resizeClient).
func (c *Client) resize(x, y, w, h, bw int) {
	c.X, c.Y, c.W, c.H, c.Bw = x, y, w, h, bw
}

// displayName returns the client's title, falling back to the literal
// "broken" for clients that never supply one (spec §7.5).
func (c *Client) displayName() string {
	if c.Name == "" {
		return "broken"
	}
	return c.Name
}
