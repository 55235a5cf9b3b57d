//go:build !(tinygo && cortexm)

package blinky

import "os"

func trap() {
	os.Exit(2)
}
