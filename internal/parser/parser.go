package parser

import (
	"fmt"
	"io"
	"strings"

	"git.lost.host/meutraa/vsrg/internal/game"
)

// VersionMarker must be the first non-blank line of every chart.
const VersionMarker = "osu file format v14"

type Parser interface {
	// Parse reads one chart. A chart that is not playable is reported as a
	// *RejectError, any other error comes from reading r.
	Parse(name string, r io.Reader) (*game.Map, error)
}

// RejectError explains why a chart was excluded from its set.
type RejectError struct {
	Name    string
	Reasons []string
}

func (e *RejectError) Error() string {
	return fmt.Sprintf("chart %v rejected: %v", e.Name, strings.Join(e.Reasons, "; "))
}

func reject(name string, reasons ...string) *RejectError {
	return &RejectError{Name: name, Reasons: reasons}
}
