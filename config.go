// dwmgo
package main

// Config is the compile-time configuration table: the direct analogue of
// dwm's config.h, expressed as Go data rather than a parsed file (spec §1
// scopes configuration as compile-time; nothing in the pack shows a
// runtime loader that fits this domain).
type Config struct {
	Tags []string

	BorderPx       int
	Snap           int
	ShowBar        bool
	TopBar         bool
	MFact          float64
	NMaster        int
	ResizeHints    bool
	LockFullscreen bool

	Rules   []Rule
	Layouts []*Layout

	Keys    []KeyBinding
	Buttons []ButtonBinding

	Fonts  []string
	Colors [2]ColorScheme

	DmenuMon string // spawn argument with a single-char monitor index slot
}

// ColorScheme indexes (0 = Norm, 1 = Sel); each carries fg/bg/border in
// 0xAARRGGBB form, matching the teacher's NewBGRA encoding.
type ColorScheme struct {
	Fg, Bg, Border uint32
}

const (
	SchemeNorm = 0
	SchemeSel  = 1
)

// Action is a keybinding/button-binding target: a closure over *WM plus an
// opaque argument (tag mask, layout index, direction, ...).
type Action func(wm *WM, arg interface{})

type KeyBinding struct {
	Mod    uint16
	Keysym uint32
	Action Action
	Arg    interface{}
}

type ButtonBinding struct {
	Click  ClickRegion
	Mod    uint16
	Button uint8
	Action Action
	Arg    interface{}
}

// ClickRegion names the bar/client region a ButtonPress hit, per the
// click-to-region table of spec §4.5.
type ClickRegion int

const (
	ClkTagBar ClickRegion = iota
	ClkLtSymbol
	ClkWinTitle
	ClkStatusText
	ClkClientWin
	ClkRootWin
)

// globalConfig is the single compiled-in configuration instance. A real
// deployment would customize this literal (renamed keys, a different
// layout order, different modifier); it is not read from a file.
var globalConfig = &Config{
	Tags: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},

	BorderPx:       1,
	Snap:           32,
	ShowBar:        true,
	TopBar:         true,
	MFact:          0.55,
	NMaster:        1,
	ResizeHints:    false,
	LockFullscreen: true,

	Layouts: []*Layout{tileLayoutDef, floatingLayout, monocleLayoutDef},

	Rules: []Rule{
		{Class: "Gimp", Floating: true, Monitor: -1},
		{Class: "Firefox", Tags: 1 << 8, Monitor: -1},
	},

	Fonts: []string{"monospace:12"},
	Colors: [2]ColorScheme{
		{Fg: 0xFFBBBBBB, Bg: 0xFF222222, Border: 0xFF444444},
		{Fg: 0xFFEEEEEE, Bg: 0xFF005577, Border: 0xFF005577},
	},

	DmenuMon: "0",
}

func init() {
	globalConfig.Keys = defaultKeys()
	globalConfig.Buttons = defaultButtons()
}
