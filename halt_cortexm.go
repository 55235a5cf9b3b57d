//go:build tinygo && cortexm

package blinky

import (
	"device/arm"
)

// trap the core with a permanently-undefined instruction.  The udf escalates
// to HardFault, which masking interrupts does not block, and the runtime's
// HardFault handler locks the core up.
func trap() {
	arm.DisableInterrupts()
	arm.Asm("udf #0")
}
