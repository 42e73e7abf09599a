package game

import "fmt"

// Set is the in-memory contents of one archive.
type Set struct {
	Path  string
	Maps  []*Map
	Files map[string][]byte
}

// NewSet combines the charts and assets read from one archive. No cross
// checks are made, a map whose audio file is absent is still kept.
func NewSet(path string, maps []*Map, files map[string][]byte) *Set {
	if maps == nil {
		maps = []*Map{}
	}
	if files == nil {
		files = map[string][]byte{}
	}
	return &Set{Path: path, Maps: maps, Files: files}
}

// Audio returns the bytes of the audio file referenced by m.
func (s *Set) Audio(m *Map) ([]byte, error) {
	data, ok := s.Files[m.AudioFileName]
	if !ok {
		return nil, fmt.Errorf("audio file %q not found in %v", m.AudioFileName, s.Path)
	}
	return data, nil
}
