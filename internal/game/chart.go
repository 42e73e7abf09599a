package game

import "fmt"

// Map is one playable 4k chart. It is not modified after the parser
// builds it.
type Map struct {
	Source        string // The archive path of the chart file
	AudioFileName string // Key into the owning Set's Files
	AudioLeadIn   int64  // ms of silence before the audio starts
	FullTitle     string
	Notes         Notes
}

func NewMap(source, audio string, leadIn int64, title, version string, notes Notes) *Map {
	return &Map{
		Source:        source,
		AudioFileName: audio,
		AudioLeadIn:   leadIn,
		FullTitle:     FullTitle(title, version),
		Notes:         notes,
	}
}

// FullTitle formats the title shown for a chart, "{version} - {title}".
func FullTitle(title, version string) string {
	return fmt.Sprintf("%s - %s", version, title)
}

func (m *Map) NoteCount() int {
	return m.Notes.Count()
}
