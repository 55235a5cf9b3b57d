package blinky

import "fmt"

// halt is swapped out by tests
var halt = trap

// Halt reports reason on the debug channel and halts.  Halt does not return.
func Halt(reason any) {
	fmt.Printf("panic: %v\r\n", reason)
	halt()
	for {
	}
}

func haltOnPanic() {
	if r := recover(); r != nil {
		Halt(r)
	}
}
