//go:build tinygo && stm32f4disco

package disco

import (
	"device/arm"
	"machine"
)

var ledPins = [numLeds]machine.Pin{
	machine.LED_GREEN,  // PD12
	machine.LED_ORANGE, // PD13
	machine.LED_RED,    // PD14
	machine.LED_BLUE,   // PD15
}

func (d *Disco) setupLeds() {
	for i, pin := range ledPins {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pin.Low()
		d.leds[i].pin = pin
	}
}

// CPU cycles per busy-loop iteration: nop, subs, and a taken branch
const loopCycles = 4

var delay = busyWait

// busyWait spins for as long as cycles of the reference clock take.  The
// runtime has already switched the core to the PLL (168MHz) by the time main
// runs, so the spin count is scaled to the actual CPU frequency.
func busyWait(cycles uint32) {
	for i := spins(cycles, machine.CPUFrequency(), loopCycles); i > 0; i-- {
		arm.Asm("nop")
	}
}
