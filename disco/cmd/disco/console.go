//go:build !tinygo

package main

import (
	"github.com/merliot/blinky"
	"github.com/merliot/blinky/console"
)

func plugConsole(r *blinky.Runner) {
	r.Plugin(console.New("console", 4))
}
