//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// The BSDs and macOS have a dedicated status signal; keep SIGUSR1 as well
// so scripted use works the same everywhere.
func progressSignals() []os.Signal {
	return []os.Signal{unix.SIGINFO, unix.SIGUSR1}
}
