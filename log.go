// dwmgo
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// initLogging configures the process-wide logrus logger: plain text
// formatting (matching the teacher's plain log.Printf style), level gated
// by the -debug flag.
func initLogging(debug bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		DisableColors:   false,
		FullTimestamp:   false,
		DisableSorting:  true,
	})
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
