//go:build !tinygo

package blinky

const metal = false
