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
	"flag"
	"fmt"
	"os"

	"github.com/jezek/xgbutil"
	log "github.com/sirupsen/logrus"
)

const version = "dwmgo-1.0"

func main() {
	v := flag.Bool("v", false, "print version information and exit")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *v {
		fmt.Println(version)
		os.Exit(0)
	}

	initLogging(*debug)
	ignoreChildSignals()

	X, err := xgbutil.NewConn()
	if err != nil {
		log.WithError(err).Fatal("could not open X display")
	}
	defer X.Conn().Close()

	wm, err := setup(X, *debug)
	if err != nil {
		log.WithError(err).Fatal("setup failed")
	}

	wm.run()
	wm.cleanup()
}
