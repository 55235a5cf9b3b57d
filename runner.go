package blinky

// Runner runs a thing on real hardware.  The runner's bus routes the
// packets the thing injects to the thing's subscribers.
type Runner struct {
	thinger  Thinger
	bus      *Bus
	injector *Injector
}

// NewRunner returns a runner for thinger.  The thing's subscribers are
// registered on the runner's bus.
func NewRunner(thinger Thinger) *Runner {
	var r Runner

	r.thinger = thinger

	r.bus = NewBus("runner bus", nil, nil)
	r.injector = NewInjector("runner injector", r.bus)

	for path, handler := range thinger.Subscribers() {
		r.bus.Handle(path, handler)
	}

	return &r
}

// Plugin a packet sink into the runner's bus.  Packets broadcast by the
// thing's subscribers are sent on the socket.
func (r *Runner) Plugin(s Socketer) {
	r.bus.Plugin(s)
}

// Unplug a packet sink from the runner's bus
func (r *Runner) Unplug(s Socketer) {
	r.bus.Unplug(s)
	s.Close()
}

// Run sets up the thing once and then runs it.  The thing is flagged metal
// when built for a board.  A panic escaping the thing halts the program.
func (r *Runner) Run() {
	defer haltOnPanic()
	if metal {
		r.thinger.SetFlag(ThingFlagMetal)
	}
	r.thinger.Setup()
	r.thinger.Run(r.injector)
}
