package input

import (
	"errors"
	"testing"
)

type fakeLine struct {
	value    int
	writes   int
	closed   bool
	setErr   error
	closeErr error
}

func (l *fakeLine) Value() (int, error) { return l.value, nil }

func (l *fakeLine) SetValue(value int) error {
	if nil != l.setErr {
		return l.setErr
	}
	l.value = value
	l.writes++
	return nil
}

func (l *fakeLine) Close() error {
	l.closed = true
	return l.closeErr
}

func newFakeGPIO() (*GPIO, [4]*fakeLine, [4]*fakeLine) {
	g := &GPIO{}
	var buttons, leds [4]*fakeLine
	for i := range buttons {
		buttons[i], leds[i] = &fakeLine{}, &fakeLine{}
		g.buttons[i], g.leds[i] = buttons[i], leds[i]
	}
	return g, buttons, leds
}

func TestGPIOButtonAndLED(t *testing.T) {
	g, buttons, leds := newFakeGPIO()

	buttons[1].value = 1
	if !g.Button(1).Pressed() || g.Button(0).Pressed() {
		t.Fatal("expected only column 1 to be pressed")
	}

	led := g.Indicator(2)
	led.Set(true)
	led.Set(true)
	led.Set(false)
	if leds[2].writes != 2 || leds[2].value != 0 {
		t.Fatalf("expected 2 writes ending low, got %d writes at %d", leds[2].writes, leds[2].value)
	}
}

func TestGPIOCloseTurnsLEDsOff(t *testing.T) {
	g, buttons, leds := newFakeGPIO()
	leds[0].value = 1
	if err := g.Close(); nil != err {
		t.Fatal(err)
	}
	for i := range leds {
		if leds[i].value != 0 || !leds[i].closed || !buttons[i].closed {
			t.Fatalf("column %d was not released", i)
		}
	}
}

func TestGPIOCloseReportsLEDError(t *testing.T) {
	g, buttons, leds := newFakeGPIO()
	failure := errors.New("line busy")
	leds[1].setErr = failure

	if err := g.Close(); !errors.Is(err, failure) {
		t.Fatalf("expected the led error, got %v", err)
	}
	for i := range leds {
		if !leds[i].closed || !buttons[i].closed {
			t.Fatalf("column %d must still be closed", i)
		}
	}
}
