//go:build unix && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

func progressSignals() []os.Signal {
	return []os.Signal{unix.SIGUSR1}
}
