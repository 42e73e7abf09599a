package input

import (
	"encoding/binary"
	"errors"
	"log"
	"os"
	"sync/atomic"
	"syscall"

	"git.lost.host/meutraa/vsrg/internal/game"
)

// https://github.com/torvalds/linux/blob/master/include/uapi/linux/input-event-codes.h
const evKey = 0x01

type keyEvent struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32 // 0 release, 1 press, 2 autorepeat
}

// Evdev reads a raw input device and keeps the held state of the keys
// bound to each column, so a key behaves like a GPIO button.
type Evdev struct {
	file  *os.File
	codes []uint16
	held  [game.Columns]atomic.Bool
	log   *log.Logger
	done  chan struct{}
}

func OpenEvdev(device string, codes []uint16) (*Evdev, error) {
	file, err := os.Open(device)
	if err != nil {
		return nil, err
	}
	return newEvdev(file, codes, log.Default()), nil
}

func newEvdev(file *os.File, codes []uint16, l *log.Logger) *Evdev {
	e := &Evdev{file: file, codes: codes, log: l, done: make(chan struct{})}
	go e.read()
	return e
}

func (e *Evdev) read() {
	defer close(e.done)
	var ev keyEvent
	for {
		if err := binary.Read(e.file, binary.LittleEndian, &ev); nil != err {
			if !errors.Is(err, os.ErrClosed) {
				e.log.Println(err, "unable to read keyboard input")
			}
			return
		}
		if ev.Type != evKey {
			continue
		}
		for i, code := range e.codes {
			if code == ev.Code {
				e.held[i].Store(ev.Value != 0)
			}
		}
	}
}

func (e *Evdev) Button(column int) Button {
	return evdevButton{held: &e.held[column]}
}

func (e *Evdev) Close() error {
	return e.file.Close()
}

type evdevButton struct {
	held *atomic.Bool
}

func (b evdevButton) Pressed() bool {
	return b.held.Load()
}
