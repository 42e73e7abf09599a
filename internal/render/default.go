package render

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"git.lost.host/meutraa/vsrg/internal/game"
	"git.lost.host/meutraa/vsrg/internal/theme"
)

type DefaultRenderer struct {
	Out   io.Writer
	Theme theme.Theme

	lamps     [game.Columns]bool
	showLamps bool
	buffer    strings.Builder
}

func (r *DefaultRenderer) flush() {
	io.WriteString(r.Out, r.buffer.String())
	r.buffer.Reset()
}

func (r *DefaultRenderer) line(s string) {
	if r.showLamps {
		// Clear the lamp row, raw terminals need the carriage return
		r.buffer.WriteString("\r\033[K")
		r.buffer.WriteString(s)
		r.buffer.WriteString("\r\n")
		r.writeLamps()
	} else {
		r.buffer.WriteString(s)
		r.buffer.WriteString("\n")
	}
	r.flush()
}

func (r *DefaultRenderer) Listing(sets []*game.Set) {
	r.line(fmt.Sprintf("%v set(s) loaded!", len(sets)))
	r.line("")
	r.line("Set | Map")
	for i, set := range sets {
		r.line(r.Theme.RenderSet(i, filepath.Base(set.Path)))
		for j, m := range set.Maps {
			r.line(r.Theme.RenderMap(j, m.FullTitle, m.NoteCount()))
		}
	}
}

func (r *DefaultRenderer) Prompt() {
	r.buffer.WriteString("Select a map {set_id},{map_id}: ")
	r.flush()
}

func (r *DefaultRenderer) Starting(m *game.Map) {
	r.line(fmt.Sprintf("Starting... %v", m.FullTitle))
}

// Judgement writes one line per judged note, naming the column.
func (r *DefaultRenderer) Judgement(ev game.Event) {
	name := fmt.Sprintf("P1B%v", ev.Column+1)
	switch ev.Judgement {
	case game.Hit:
		r.line(r.Theme.RenderHit(ev.Column, name+" PRESSED!"))
	case game.Miss:
		r.line(r.Theme.RenderMiss(ev.Column, name+" MISSED!"))
	}
}

func (r *DefaultRenderer) Accuracy(score fmt.Stringer) {
	line := r.Theme.RenderAccuracy(score.String())
	if !r.showLamps {
		r.line(line)
		return
	}
	// The accuracy line replaces the lamp row for good
	r.showLamps = false
	r.buffer.WriteString("\r\033[K")
	r.buffer.WriteString(line)
	r.buffer.WriteString("\r\n")
	r.flush()
}

func (r *DefaultRenderer) writeLamps() {
	r.buffer.WriteString("[")
	for i, on := range r.lamps {
		if i > 0 {
			r.buffer.WriteString(" ")
		}
		r.buffer.WriteString(r.Theme.RenderLamp(i, on))
	}
	r.buffer.WriteString("]")
}

// Lamp returns an on screen indicator for column, for when there are no
// LEDs attached. It satisfies score.Indicator.
func (r *DefaultRenderer) Lamp(column int) *Lamp {
	r.showLamps = true
	return &Lamp{r: r, column: column}
}

type Lamp struct {
	r      *DefaultRenderer
	column int
}

// Set redraws the lamp row when the state changes.
func (l *Lamp) Set(on bool) {
	if l.r.lamps[l.column] == on {
		return
	}
	l.r.lamps[l.column] = on
	l.r.buffer.WriteString("\r")
	l.r.writeLamps()
	l.r.flush()
}
