// dwmgo
package main

import (
	"os"
	"os/signal"
	"syscall"
)

// ignoreChildSignals arranges for SIGCHLD to be fully ignored (spec §5:
// "SIGCHLD is fully ignored via SA_NOCLDSTOP|SA_NOCLDWAIT"). Go's signal
// package doesn't expose sigaction flags directly, and SA_NOCLDWAIT's
// actual effect — the kernel reaping exited children itself, with no
// zombie ever left behind — has to be reproduced by hand: every SIGCHLD
// triggers a non-blocking reap of whatever already exited, so spawned
// processes (dmenu, terminals, ...) never accumulate as zombies even
// though the main loop never reacts to the signal itself.
func ignoreChildSignals() {
	ch := make(chan os.Signal, 16)
	signal.Notify(ch, syscall.SIGCHLD)
	go func() {
		for range ch {
			reapZombiesOnce()
		}
	}()
}

// reapZombiesOnce reaps, without blocking, every child that has already
// exited. setup calls it once for zombies inherited at startup (the
// source's one-time reap); ignoreChildSignals calls it on every SIGCHLD.
func reapZombiesOnce() {
	for {
		var status syscall.WaitStatus
		pid, err := syscall.Wait4(-1, &status, syscall.WNOHANG, nil)
		if err != nil || pid <= 0 {
			return
		}
	}
}
