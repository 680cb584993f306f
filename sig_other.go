//go:build !unix

package main

import "os"

func progressSignals() []os.Signal { return nil }
