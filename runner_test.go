package blinky

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

type halted struct{}

// stubHalt makes Halt unwind with a halted panic instead of trapping
func stubHalt(c *qt.C) {
	saved := halt
	halt = func() { panic(halted{}) }
	c.Cleanup(func() { halt = saved })
}

type testThing struct {
	Thing
	ThingMsg
	Count int
	calls []string
	seen  []int
}

func (t *testThing) count(pkt *Packet) {
	var msg testThing
	pkt.Unmarshal(&msg)
	t.seen = append(t.seen, msg.Count)
	pkt.Broadcast()
}

func (t *testThing) Subscribers() Subscribers {
	return Subscribers{"count": t.count}
}

func (t *testThing) Setup() { t.calls = append(t.calls, "setup") }

func (t *testThing) Run(i *Injector) {
	t.calls = append(t.calls, "run")
	for t.Count < 3 {
		var pkt Packet
		t.Path = "count"
		t.Count++
		i.Inject(pkt.Marshal(t))
	}
	panic("out of counts")
}

func runHalted(c *qt.C, r *Runner) {
	defer func() {
		c.Assert(recover(), qt.Equals, halted{})
	}()
	r.Run()
	c.Fatal("Run returned")
}

func TestRunnerRun(t *testing.T) {
	c := qt.New(t)
	stubHalt(c)

	thing := &testThing{Thing: NewThing("id", "model", "name")}
	r := NewRunner(thing)
	sock := &testSocket{Socket: NewSocket("test", "", SocketFlagBcast)}
	r.Plugin(sock)

	runHalted(c, r)

	c.Assert(thing.IsMetal(), qt.Equals, metal)
	c.Assert(thing.calls, qt.DeepEquals, []string{"setup", "run"})
	c.Assert(thing.seen, qt.DeepEquals, []int{1, 2, 3})
	c.Assert(sock.sent, qt.HasLen, 3)
	c.Assert(sock.sent[2].String(), qt.Equals, `{"Path":"count","Count":3}`)
}

func TestRunnerUnplug(t *testing.T) {
	c := qt.New(t)
	stubHalt(c)

	thing := &testThing{Thing: NewThing("id", "model", "name")}
	r := NewRunner(thing)
	sock := &testSocket{Socket: NewSocket("test", "", SocketFlagBcast)}
	r.Plugin(sock)
	r.Unplug(sock)

	runHalted(c, r)

	c.Assert(thing.seen, qt.HasLen, 3)
	c.Assert(sock.sent, qt.HasLen, 0)
}

func TestHaltOnPanic(t *testing.T) {
	c := qt.New(t)
	stubHalt(c)

	defer func() {
		c.Assert(recover(), qt.Equals, halted{})
	}()
	func() {
		defer haltOnPanic()
		var leds []int
		_ = leds[4]
	}()
	c.Fatal("haltOnPanic did not halt")
}
