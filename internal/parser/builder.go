package parser

import (
	"git.lost.host/meutraa/vsrg/internal/game"
)

// hitObject only lives until it is folded into a column.
type hitObject struct {
	x, time int64
}

// builder collects the fields of a chart while it is being read and only
// yields a Map once every required field is present.
type builder struct {
	source string

	audioFileName string
	hasAudio      bool
	audioLeadIn   int64
	mode          bool // Mode: 3 was seen
	title         string
	hasTitle      bool
	version       string
	hasVersion    bool
	columnCount   int64 // 0 until CircleSize: 4 is seen

	hitObjects []hitObject
}

func newBuilder(source string) *builder {
	return &builder{source: source}
}

func (b *builder) missing() []string {
	reasons := []string{}
	if !b.hasAudio {
		reasons = append(reasons, "map does not have an audio file listed")
	}
	if !b.mode {
		reasons = append(reasons, "map does not report to be osu!mania")
	}
	if !b.hasTitle {
		reasons = append(reasons, "map does not have a title")
	}
	if !b.hasVersion {
		reasons = append(reasons, "map does not report a version")
	}
	if b.columnCount != game.Columns {
		reasons = append(reasons, "map does not report its circle size (column count)")
	}
	return reasons
}

// build folds the hit objects into columns. warn is called for every hit
// object that falls outside of the playfield.
func (b *builder) build(warn func(format string, v ...interface{})) (*game.Map, error) {
	if reasons := b.missing(); len(reasons) > 0 {
		return nil, reject(b.source, reasons...)
	}

	var notes game.Notes
	for i := range notes {
		notes[i] = []int64{}
	}
	for _, h := range b.hitObjects {
		column := h.x * b.columnCount / 512
		if column >= b.columnCount {
			warn("%v: hit object at x=%v time=%v does not fit in %v columns, ignoring", b.source, h.x, h.time, b.columnCount)
			continue
		}
		notes[column] = append(notes[column], h.time)
	}

	return game.NewMap(b.source, b.audioFileName, b.audioLeadIn, b.title, b.version, notes), nil
}
