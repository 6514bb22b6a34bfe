// dwmgo
package main

import "github.com/jezek/xgb/xproto"

// Monitor is a logical output: either one Xinerama head, or the single
// virtual monitor used when Xinerama is unavailable.
type Monitor struct {
	Num int

	MX, MY, MW, MH int // output rectangle
	WX, WY, WW, WH int // working area (output minus bar strip)

	MFact   float64
	NMaster int

	ShowBar bool
	TopBar  bool
	BarWin  xproto.Window

	SelTags   uint // 0 or 1: index into TagSet/Lt
	TagSet    [2]uint32
	SelLayout uint
	Lt        [2]*Layout
	LtSymbol  string

	Clients []*Client // insertion order, most-recent at index 0
	Stack   []*Client // focus order, most-recently-focused at index 0
	Sel     *Client

	Next *Monitor
}

func newMonitor(num int) *Monitor {
	m := &Monitor{
		Num:     num,
		MFact:   globalConfig.MFact,
		NMaster: globalConfig.NMaster,
		ShowBar: globalConfig.ShowBar,
		TopBar:  globalConfig.TopBar,
		TagSet:  [2]uint32{1, 1},
		Lt:      [2]*Layout{globalConfig.Layouts[0], globalConfig.Layouts[1%len(globalConfig.Layouts)]},
	}
	m.LtSymbol = m.Lt[0].Symbol
	return m
}

func (m *Monitor) activeLayout() *Layout { return m.Lt[m.SelLayout] }

// recomputeWorkingArea derives (wx,wy,ww,wh) from (mx,my,mw,mh) and the
// bar's visibility/placement.
func (m *Monitor) recomputeWorkingArea(barHeight int) {
	m.WX, m.WY, m.WW, m.WH = m.MX, m.MY, m.MW, m.MH
	if m.ShowBar {
		m.WH -= barHeight
		if m.TopBar {
			m.WY += barHeight
		}
	}
}

// attachClient inserts c at the head of m.Clients.
func (m *Monitor) attachClient(c *Client) {
	c.Mon = m
	m.Clients = append([]*Client{c}, m.Clients...)
}

// detachClient removes c from m.Clients, preserving relative order of the
// rest.
func (m *Monitor) detachClient(c *Client) {
	m.Clients = removeClient(m.Clients, c)
}

// attachStack inserts c at the head of the focus stack.
func (m *Monitor) attachStack(c *Client) {
	m.Stack = append([]*Client{c}, m.Stack...)
}

func (m *Monitor) detachStack(c *Client) {
	m.Stack = removeClient(m.Stack, c)
	if m.Sel == c {
		for _, s := range m.Stack {
			if s.isVisible() {
				m.Sel = s
				return
			}
		}
		m.Sel = nil
	}
}

func removeClient(list []*Client, c *Client) []*Client {
	out := make([]*Client, 0, len(list))
	for _, e := range list {
		if e != c {
			out = append(out, e)
		}
	}
	return out
}

// visibleTiled returns the visible, non-floating clients in monitor
// (Clients) order — the input to the tiling arrangers.
func (m *Monitor) visibleTiled() []*Client {
	var out []*Client
	for _, c := range m.Clients {
		if c.isVisible() && !c.IsFloating && !c.IsFullscreen {
			out = append(out, c)
		}
	}
	return out
}

// firstVisibleInStack returns the head of Stack restricted to visible
// clients, or nil.
func (m *Monitor) firstVisibleInStack() *Client {
	for _, c := range m.Stack {
		if c.isVisible() {
			return c
		}
	}
	return nil
}

// containsClient reports whether c belongs to this monitor's client list.
func (m *Monitor) containsClient(c *Client) bool {
	for _, e := range m.Clients {
		if e == c {
			return true
		}
	}
	return false
}
