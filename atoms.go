// dwmgo
//
// Copyright (C) 2014-2015,2022 Karol 'Kenji Takahashi' Woźniak
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the "Software"),
// to deal in the Software without restriction, including without limitation
// the rights to use, copy, modify, merge, publish, distribute, sublicense,
// and/or sell copies of the Software, and to permit persons to whom the
// Software is furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included
// in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES
// OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM,
// DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE
// OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package main

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil"
	"github.com/jezek/xgbutil/xprop"
)

// Atoms holds every ICCCM/EWMH atom the core touches, interned once at
// startup. Nothing downstream reads a raw atom number.
type Atoms struct {
	WMProtocols    xproto.Atom
	WMDelete       xproto.Atom
	WMState        xproto.Atom
	WMTakeFocus    xproto.Atom
	NetSupported   xproto.Atom
	NetActiveWin   xproto.Atom
	NetWMName      xproto.Atom
	NetWMState     xproto.Atom
	NetWMFullscrn  xproto.Atom
	NetWMCheck     xproto.Atom
	NetWMType      xproto.Atom
	NetWMTypeDlg   xproto.Atom
	NetClientList  xproto.Atom
}

func internAtoms(X *xgbutil.XUtil) (*Atoms, error) {
	names := []string{
		"WM_PROTOCOLS", "WM_DELETE_WINDOW", "WM_STATE", "WM_TAKE_FOCUS",
		"_NET_SUPPORTED", "_NET_ACTIVE_WINDOW", "_NET_WM_NAME",
		"_NET_WM_STATE", "_NET_WM_STATE_FULLSCREEN",
		"_NET_SUPPORTING_WM_CHECK", "_NET_WM_WINDOW_TYPE",
		"_NET_WM_WINDOW_TYPE_DIALOG", "_NET_CLIENT_LIST",
	}
	got := make(map[string]xproto.Atom, len(names))
	for _, n := range names {
		a, err := xprop.Atm(X, n)
		if err != nil {
			return nil, err
		}
		got[n] = a
	}
	return &Atoms{
		WMProtocols:   got["WM_PROTOCOLS"],
		WMDelete:      got["WM_DELETE_WINDOW"],
		WMState:       got["WM_STATE"],
		WMTakeFocus:   got["WM_TAKE_FOCUS"],
		NetSupported:  got["_NET_SUPPORTED"],
		NetActiveWin:  got["_NET_ACTIVE_WINDOW"],
		NetWMName:     got["_NET_WM_NAME"],
		NetWMState:    got["_NET_WM_STATE"],
		NetWMFullscrn: got["_NET_WM_STATE_FULLSCREEN"],
		NetWMCheck:    got["_NET_SUPPORTING_WM_CHECK"],
		NetWMType:     got["_NET_WM_WINDOW_TYPE"],
		NetWMTypeDlg:  got["_NET_WM_WINDOW_TYPE_DIALOG"],
		NetClientList: got["_NET_CLIENT_LIST"],
	}, nil
}

// supportedAtomNames lists, by name, every atom advertised under
// _NET_SUPPORTED at startup. ewmh.SupportedSet takes names rather than
// interned atom ids, so this is what setup() passes it directly.
func supportedAtomNames() []string {
	return []string{
		"_NET_ACTIVE_WINDOW", "_NET_WM_NAME", "_NET_WM_STATE",
		"_NET_WM_STATE_FULLSCREEN", "_NET_SUPPORTING_WM_CHECK",
		"_NET_WM_WINDOW_TYPE", "_NET_WM_WINDOW_TYPE_DIALOG",
		"_NET_CLIENT_LIST", "_NET_SUPPORTED",
	}
}

// wmStateGet reads a client's ICCCM WM_STATE (NormalState/WithdrawnState/
// IconicState), defaulting to WithdrawnState when unset.
func wmStateGet(X *xgbutil.XUtil, win xproto.Window, atoms *Atoms) (int, error) {
	reply, err := xprop.GetProperty(X, win, "WM_STATE")
	if err != nil || len(reply.Value) < 4 {
		return withdrawnState, nil
	}
	num, err := xprop.PropValNum(reply, nil)
	if err != nil {
		return withdrawnState, nil
	}
	return int(num), nil
}

const (
	withdrawnState = 0
	normalState    = 1
	iconicState    = 3
)

// wmStateSet sets the ICCCM WM_STATE property (32-bit state, icon window 0).
func wmStateSet(X *xgbutil.XUtil, win xproto.Window, atoms *Atoms, state int) error {
	return xprop.ChangeProp32(X, win, "WM_STATE", "WM_STATE", uint32(state), 0)
}
