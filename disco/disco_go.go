//go:build !tinygo

package disco

import (
	"time"
)

// simPin is an LED pin on the simulated board
type simPin struct {
	high bool
}

func (p *simPin) Set(high bool) { p.high = high }
func (p *simPin) Get() bool     { return p.high }

func (d *Disco) setupLeds() {
	for i := range d.leds {
		d.leds[i].pin = &simPin{}
	}
}

var delay = sleepCycles

func sleepCycles(cycles uint32) {
	time.Sleep(cyclesDuration(cycles))
}
