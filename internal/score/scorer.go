package score

import "fmt"

const (
	HitRange = 2000 // ms either side of a note in which a press hits it
	Debounce = 50   // ms that must pass between two accepted presses
)

// Clock returns milliseconds since the start of the chart.
type Clock interface {
	Milliseconds() int64
}

type Button interface {
	Pressed() bool
}

// Indicator is lit while a column has a note that can be hit.
type Indicator interface {
	Set(on bool)
}

// Lane is the input and output of one column.
type Lane struct {
	Button    Button
	Indicator Indicator
}

type Scorer interface {
	// Tick judges every column against now and reports whether the chart
	// was already finished before this pass.
	Tick(now int64) bool

	// Run ticks with the Clock until the chart is finished.
	Run() Score

	Score() Score
}

type Score struct {
	Hits   uint64
	Misses uint64
}

func (s Score) Total() uint64 {
	return s.Hits + s.Misses
}

// Accuracy is the fraction of notes hit, 0 when nothing was judged.
func (s Score) Accuracy() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Total())
}

func (s Score) String() string {
	return fmt.Sprintf("Accuracy: %v/%v", s.Hits, s.Total())
}
