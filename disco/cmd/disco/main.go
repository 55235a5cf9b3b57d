package main

import (
	"github.com/merliot/blinky"
	"github.com/merliot/blinky/disco"
)

func main() {
	thing := disco.New("disco_01", "stm32f4disco", "disco")
	runner := blinky.NewRunner(thing)
	plugConsole(runner)
	runner.Run()
}
