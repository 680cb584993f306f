//go:build linux || freebsd

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// fadvise tells the kernel we are about to read the file sequentially,
// which typically doubles readahead. Failure is harmless.
func fadvise(f *os.File) {
	_ = unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
}
