// Package disco cycles the four user LEDs of the STM32F4 Discovery board,
// lighting one LED at a time.
package disco

import (
	"fmt"
	"time"

	"github.com/merliot/blinky"
)

const (
	numLeds = 4
	// Busy-wait per step, in cycles of the reference clock (500ms)
	delayCycles = 8_000_000
	// The 16MHz internal oscillator.  The step delay is measured against
	// it regardless of the clock the core actually runs at.
	refFrequency = 16_000_000
)

// cyclesDuration returns how long cycles of the reference clock take
func cyclesDuration(cycles uint32) time.Duration {
	return time.Duration(cycles) * time.Second / refFrequency
}

// spins returns the number of busy-loop iterations that last as long as
// cycles of the reference clock, on a core clocked at cpuHz that spends
// spinCycles per iteration
func spins(cycles, cpuHz, spinCycles uint32) uint32 {
	return uint32(uint64(cycles) * uint64(cpuHz) /
		(refFrequency * uint64(spinCycles)))
}

// Pin is a digital output.  machine.Pin is a Pin.
type Pin interface {
	Set(high bool)
	Get() bool
}

type led struct {
	color string
	pin   Pin
}

func (l *led) toggle() {
	l.pin.Set(!l.pin.Get())
}

var colors = [numLeds]string{"Green", "Orange", "Red", "Blue"}

type Disco struct {
	blinky.Thing
	// Index of the next LED to light
	Current  uint8
	Toggles  uint32
	leds     [numLeds]led
	injector *blinky.Injector
}

// MsgToggled is the packet message injected each step
type MsgToggled struct {
	Path    string
	Led     string
	Index   uint8
	Toggles uint32
}

func New(id, model, name string) blinky.Thinger {
	d := &Disco{Thing: blinky.NewThing(id, model, name)}
	for i := range d.leds {
		d.leds[i].color = colors[i]
	}
	return d
}

func (d *Disco) toggled(pkt *blinky.Packet) {
	var msg MsgToggled
	pkt.Unmarshal(&msg)
	fmt.Printf("%s LED toggled\r\n", msg.Led)
	pkt.Broadcast()
}

func (d *Disco) Subscribers() blinky.Subscribers {
	return blinky.Subscribers{
		"toggled": d.toggled,
	}
}

// Setup configures the LED pins.  Call once before Step or Run.  The clocks
// are already set up by the runtime.
func (d *Disco) Setup() {
	if d.IsMetal() {
		fmt.Printf("%s driving board LEDs\r\n", d)
	} else {
		fmt.Printf("%s driving simulated LEDs\r\n", d)
	}
	d.setupLeds()
}

// Step turns all LEDs off, toggles the current LED on, and advances to the
// next LED
func (d *Disco) Step() {
	for i := range d.leds {
		d.leds[i].pin.Set(false)
	}

	l := &d.leds[d.Current]
	l.toggle()
	d.Toggles++

	if d.injector != nil {
		var pkt blinky.Packet
		msg := MsgToggled{
			Path:    "toggled",
			Led:     l.color,
			Index:   d.Current,
			Toggles: d.Toggles,
		}
		d.injector.Inject(pkt.Marshal(&msg))
	}

	d.Current = (d.Current + 1) % numLeds
}

func (d *Disco) Run(i *blinky.Injector) {
	d.injector = i
	for {
		d.Step()
		delay(delayCycles)
	}
}
