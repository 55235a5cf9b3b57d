//go:build !tinygo

// Package console renders the LEDs of a running thing as a row of lamps on
// the host terminal.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/merliot/blinky"
)

const (
	lampOn  = "●"
	lampOff = "○"
)

var ansi = map[string]string{
	"Green":  "\x1b[32m",
	"Orange": "\x1b[33m",
	"Red":    "\x1b[31m",
	"Blue":   "\x1b[34m",
}

const ansiReset = "\x1b[0m"

type msgLamp struct {
	Led   string
	Index uint8
}

// Console is a socket that draws a lamp row for each toggled packet sent on
// it
type Console struct {
	blinky.Socket
	w     io.Writer
	color bool
	lamps int
}

// New returns a console drawing lamps on stdout
func New(name string, lamps int) *Console {
	color := isatty.IsTerminal(os.Stdout.Fd()) ||
		isatty.IsCygwinTerminal(os.Stdout.Fd())
	return NewWriter(name, lamps, colorable.NewColorableStdout(), color)
}

// NewWriter returns a console drawing lamps on w.  ANSI color is used if
// color is true.
func NewWriter(name string, lamps int, w io.Writer, color bool) *Console {
	return &Console{
		Socket: blinky.NewSocket(name, "", blinky.SocketFlagBcast),
		w:      w,
		color:  color,
		lamps:  lamps,
	}
}

func (c *Console) Send(pkt *blinky.Packet) error {
	if pkt.Path() != "toggled" {
		return nil
	}

	var msg msgLamp
	pkt.Unmarshal(&msg)
	if int(msg.Index) >= c.lamps {
		return fmt.Errorf("lamp %d out of range, have %d", msg.Index, c.lamps)
	}

	var b strings.Builder
	for i := 0; i < c.lamps; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i != int(msg.Index) {
			b.WriteString(lampOff)
			continue
		}
		if c.color {
			b.WriteString(ansi[msg.Led])
		}
		b.WriteString(lampOn)
		if c.color {
			b.WriteString(ansiReset)
		}
	}
	b.WriteString("  ")
	b.WriteString(msg.Led)

	_, err := fmt.Fprintf(c.w, "%s\r\n", b.String())
	return err
}
