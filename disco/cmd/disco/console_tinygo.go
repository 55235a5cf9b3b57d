//go:build tinygo

package main

import (
	"github.com/merliot/blinky"
)

// No console on the board; the debug channel carries the log lines.
func plugConsole(*blinky.Runner) {}
