package blinky

import (
	"fmt"
)

var defaultMaxSockets = 8

// Bus is an in-process packet bus.  Packets injected on the bus are routed to
// the handler for the packet's path.  A handler can broadcast the packet to
// the other sockets plugged into the bus.  A socket has a tag, and the bus
// segregates the sockets by tag.  Packets arriving from a tagged socket will
// be broadcast only to other sockets with same tag.  The empty tag "" is the
// default tag on the bus.
type Bus struct {
	name       string
	socketsMu  rwMutex
	sockets    map[Socketer]bool
	socketQ    chan bool
	handlersMu rwMutex
	handlers   map[string]func(*Packet)
	connect    func(Socketer)
	disconnect func(Socketer)
}

// NewBus returns a new bus with connect and disconnect callbacks
func NewBus(name string, connect, disconnect func(Socketer)) *Bus {
	if connect == nil {
		connect = func(Socketer) { /* don't notify */ }
	}
	if disconnect == nil {
		disconnect = func(Socketer) { /* don't notify */ }
	}
	return &Bus{
		name:       name,
		sockets:    make(map[Socketer]bool),
		socketQ:    make(chan bool, defaultMaxSockets),
		handlers:   make(map[string]func(*Packet)),
		connect:    connect,
		disconnect: disconnect,
	}
}

// Handle sets the packet handler for a packet path.  Handle returns false if
// the path already has a handler.
func (b *Bus) Handle(path string, handler func(*Packet)) bool {
	if handler == nil {
		panic("handler is nil")
	}
	b.handlersMu.Lock()
	defer b.handlersMu.Unlock()
	if _, ok := b.handlers[path]; !ok {
		b.handlers[path] = handler
		return true
	}
	return false
}

// Unhandle removes the packet handler for the packet path
func (b *Bus) Unhandle(path string) {
	b.handlersMu.Lock()
	defer b.handlersMu.Unlock()
	delete(b.handlers, path)
}

func (b *Bus) Name() string {
	return b.name
}

// MaxSockets sets the maximum number of sockets that can be plugged into the
// bus.  Any plugin past the maximum will block until other sockets unplug.
// MaxSockets panics if sockets are already plugged into the bus.
func (b *Bus) MaxSockets(maxSockets int) {
	b.socketsMu.Lock()
	defer b.socketsMu.Unlock()
	if len(b.sockets) > 0 {
		panic("MaxSockets on bus with sockets plugged")
	}
	b.socketQ = make(chan bool, maxSockets)
}

// Plugin the socket to the bus.  Plugin blocks while the bus is full.
// Plugging a socket already on the bus does nothing.
func (b *Bus) Plugin(s Socketer) {
	b.socketsMu.RLock()
	plugged := b.sockets[s]
	socketQ := b.socketQ
	b.socketsMu.RUnlock()
	if plugged {
		return
	}

	// block here when socketQ is full
	socketQ <- true

	b.socketsMu.Lock()
	if b.sockets[s] {
		// lost a race with another Plugin of s
		b.socketsMu.Unlock()
		<-socketQ
		return
	}
	b.sockets[s] = true
	b.socketsMu.Unlock()

	b.connect(s)
}

// Unplug the socket from the bus.  Unplugging a socket not on the bus does
// nothing.
func (b *Bus) Unplug(s Socketer) {
	b.socketsMu.Lock()
	plugged := b.sockets[s]
	delete(b.sockets, s)
	socketQ := b.socketQ
	b.socketsMu.Unlock()
	if !plugged {
		return
	}

	b.disconnect(s)

	// release one from the socketQ
	<-socketQ
}

// broadcast packet to all sockets with matching tag, skipping the source
// socket
func (b *Bus) broadcast(pkt *Packet) {
	b.socketsMu.RLock()
	defer b.socketsMu.RUnlock()
	for sock := range b.sockets {
		if pkt.src != sock &&
			pkt.src.Tag() == sock.Tag() &&
			sock.TestFlag(SocketFlagBcast) {
			if err := sock.Send(pkt); err != nil {
				fmt.Printf("Bcast to %s failed: %s\r\n", sock, err.Error())
			}
		}
	}
}

// receive calls the packet handler for the packet path.  Packets with no
// handler are dropped.
func (b *Bus) receive(pkt *Packet) {
	path := pkt.Path()
	b.handlersMu.RLock()
	handler, ok := b.handlers[path]
	b.handlersMu.RUnlock()
	if ok {
		handler(pkt)
	}
}
