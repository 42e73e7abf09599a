package game

type Judgement int

const (
	Hit Judgement = iota
	Miss
)

func (j Judgement) String() string {
	switch j {
	case Hit:
		return "HIT"
	case Miss:
		return "MISS"
	}
	return "UNKNOWN"
}

// Event is emitted once for every note that is judged.
type Event struct {
	Column    int
	Judgement Judgement
	Note      int64 // The time the note should be hit
	At        int64 // The clock time of the judgement
}
