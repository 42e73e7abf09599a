package archive

import (
	"fmt"
	"io"

	"git.lost.host/meutraa/vsrg/internal/game"
)

// ChartExt is compared case-insensitively against every entry name.
const ChartExt = ".osu"

type Extractor interface {
	Extract(name string, r io.ReaderAt, size int64) (*game.Set, error)
}

// Error is returned when an archive, or one of its entries, cannot be read.
// The whole archive is dropped.
type Error struct {
	Archive string
	Entry   string // Empty when the container itself is unreadable
	Err     error
}

func (e *Error) Error() string {
	if e.Entry == "" {
		return fmt.Sprintf("unable to read archive %v: %v", e.Archive, e.Err)
	}
	return fmt.Sprintf("unable to read %v in archive %v: %v", e.Entry, e.Archive, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
