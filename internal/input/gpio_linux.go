package input

import (
	"fmt"

	"git.lost.host/meutraa/vsrg/internal/config"
	"git.lost.host/meutraa/vsrg/internal/game"
	"github.com/warthog618/gpiod"
)

// line is the part of *gpiod.Line used by buttons and LEDs.
type line interface {
	Value() (int, error)
	SetValue(value int) error
	Close() error
}

// GPIO drives the cabinet: one pulled down button and one LED per column.
type GPIO struct {
	buttons [game.Columns]line
	leds    [game.Columns]line
}

func OpenGPIO(c config.GPIO) (*GPIO, error) {
	g := &GPIO{}
	for i := 0; i < game.Columns; i++ {
		led, err := gpiod.RequestLine(c.Chip, c.LEDs[i], gpiod.AsOutput(0))
		if nil != err {
			g.Close()
			return nil, fmt.Errorf("unable to request led %v: %w", c.LEDs[i], err)
		}
		g.leds[i] = led

		button, err := gpiod.RequestLine(c.Chip, c.Buttons[i], gpiod.AsInput, gpiod.WithPullDown)
		if nil != err {
			g.Close()
			return nil, fmt.Errorf("unable to request button %v: %w", c.Buttons[i], err)
		}
		g.buttons[i] = button
	}
	return g, nil
}

func (g *GPIO) Button(column int) Button {
	return gpioButton{line: g.buttons[column]}
}

// Indicator returns the LED of column, it satisfies score.Indicator.
func (g *GPIO) Indicator(column int) *LED {
	return &LED{line: g.leds[column]}
}

// Close turns the LEDs off and releases every line.
func (g *GPIO) Close() error {
	var first error
	for _, led := range g.leds {
		if nil == led {
			continue
		}
		if err := led.SetValue(0); nil != err && nil == first {
			first = err
		}
		if err := led.Close(); nil != err && nil == first {
			first = err
		}
	}
	for _, button := range g.buttons {
		if nil == button {
			continue
		}
		if err := button.Close(); nil != err && nil == first {
			first = err
		}
	}
	return first
}

type gpioButton struct {
	line line
}

func (b gpioButton) Pressed() bool {
	v, err := b.line.Value()
	return nil == err && v == 1
}

type LED struct {
	line line
	on   bool
	set  bool
}

// Set only writes to the line when the level changes.
func (l *LED) Set(on bool) {
	if l.set && l.on == on {
		return
	}
	v := 0
	if on {
		v = 1
	}
	if err := l.line.SetValue(v); nil == err {
		l.on, l.set = on, true
	}
}
