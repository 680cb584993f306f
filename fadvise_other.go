//go:build !linux && !freebsd

package main

import "os"

func fadvise(*os.File) {}
