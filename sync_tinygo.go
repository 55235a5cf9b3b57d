//go:build tinygo

package blinky

import (
	"sync"
)

type rwMutex struct {
	sync.RWMutex
}
