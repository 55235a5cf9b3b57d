//go:build !tinygo

package blinky

import (
	sync "github.com/sasha-s/go-deadlock"
)

type rwMutex struct {
	sync.RWMutex
}
