package blinky

// Injector is the socket a thing uses to inject packets into its own bus
type Injector struct {
	Socket
	bus *Bus
}

// NewInjector returns an injector plugged into bus
func NewInjector(name string, bus *Bus) *Injector {
	i := &Injector{Socket: NewSocket(name, "", 0), bus: bus}
	bus.Plugin(i)
	return i
}

// Inject the packet into the bus.  The packet handler for the packet's path
// is called before Inject returns.
func (i *Injector) Inject(pkt *Packet) {
	pkt.bus, pkt.src = i.bus, i
	i.bus.receive(pkt)
}
