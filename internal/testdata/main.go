package testdata

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
)

// Chart is a minimal playable 4k chart with one note per column.
const Chart = `osu file format v14

[General]
AudioFilename: audio.mp3
AudioLeadIn: 250
PreviewTime: 1000
Mode: 3
SpecialStyle: 0

[Editor]
DistanceSpacing: 1.2
BeatDivisor: 4

[Metadata]
Title:Song
TitleUnicode:Song Unicode
Artist:Someone
Creator:Mapper
Version:Hard
BeatmapID:1

[Difficulty]
HPDrainRate:8
CircleSize:4
OverallDifficulty:8

[Events]
//Background and Video events
0,0,"bg.jpg",0,0

[TimingPoints]
0,500,4,2,1,60,1,0

[HitObjects]
64,192,1000,1,0,0:0:0:0:
192,192,1500,1,0,0:0:0:0:
320,192,2000,1,0,0:0:0:0:
448,192,2500,1,0,0:0:0:0:
`

// ChartWith returns Chart with every occurrence of old replaced by new.
func ChartWith(old, new string) string {
	return strings.ReplaceAll(Chart, old, new)
}

// ChartNotes returns Chart with its hit objects replaced by lines.
func ChartNotes(lines ...string) string {
	head := Chart[:strings.Index(Chart, "[HitObjects]")]
	return head + "[HitObjects]\n" + strings.Join(lines, "\n") + "\n"
}

type Entry struct {
	Name string
	Data []byte
}

// Archive writes the entries, in order, into an in-memory zip.
func Archive(entries ...Entry) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, e := range entries {
		f, err := w.Create(e.Name)
		if nil != err {
			return nil, fmt.Errorf("unable to create %v: %w", e.Name, err)
		}
		if _, err := f.Write(e.Data); nil != err {
			return nil, fmt.Errorf("unable to write %v: %w", e.Name, err)
		}
	}
	if err := w.Close(); nil != err {
		return nil, err
	}
	return buf.Bytes(), nil
}
