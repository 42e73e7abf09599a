//go:build !linux

package input

import (
	"errors"

	"git.lost.host/meutraa/vsrg/internal/config"
)

var errUnsupported = errors.New("only supported on linux")

type Evdev struct{}

func OpenEvdev(device string, codes []uint16) (*Evdev, error) {
	return nil, errUnsupported
}

func (e *Evdev) Button(column int) Button { return nil }
func (e *Evdev) Close() error             { return nil }

type GPIO struct{}

func OpenGPIO(c config.GPIO) (*GPIO, error) {
	return nil, errUnsupported
}

func (g *GPIO) Button(column int) Button  { return nil }
func (g *GPIO) Indicator(column int) *LED { return nil }
func (g *GPIO) Close() error              { return nil }

type LED struct{}

func (l *LED) Set(on bool) {}
