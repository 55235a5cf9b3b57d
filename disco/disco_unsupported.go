//go:build tinygo && !stm32f4disco

package disco

// The LED wiring is only known for the STM32F4 Discovery.  Build with
// -target=stm32f4disco.
var _ = disco_only_supports_target_stm32f4disco

func (d *Disco) setupLeds() {}

var delay = func(cycles uint32) {}
