package input

import (
	"git.lost.host/meutraa/vsrg/internal/config"
	"git.lost.host/meutraa/vsrg/internal/game"
	"github.com/eiannone/keyboard"
)

// Keyboard turns terminal key events into presses. A terminal only reports
// key downs, so every event is a press for exactly one poll.
type Keyboard struct {
	keys    []rune
	events  <-chan keyboard.KeyEvent
	pending [game.Columns]bool
}

func OpenKeyboard(keys []rune) (*Keyboard, error) {
	events, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, err
	}
	return NewKeyboard(keys, events), nil
}

func NewKeyboard(keys []rune, events <-chan keyboard.KeyEvent) *Keyboard {
	return &Keyboard{keys: keys, events: events}
}

// drain reads every queued event without blocking.
func (k *Keyboard) drain() {
	for {
		select {
		case ev, ok := <-k.events:
			if !ok {
				return
			}
			if i := config.KeyColumn(k.keys, ev.Rune); i >= 0 {
				k.pending[i] = true
			}
		default:
			return
		}
	}
}

func (k *Keyboard) Button(column int) Button {
	return keyButton{k: k, column: column}
}

func (k *Keyboard) Close() error {
	return keyboard.Close()
}

type keyButton struct {
	k      *Keyboard
	column int
}

func (b keyButton) Pressed() bool {
	b.k.drain()
	pressed := b.k.pending[b.column]
	b.k.pending[b.column] = false
	return pressed
}
