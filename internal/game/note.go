package game

// Columns is the number of lanes every playable chart has.
const Columns = 4

// Notes holds the target times in milliseconds of every note, one ordered
// sequence per column. Order is the order the notes were found in the chart.
type Notes [Columns][]int64

// Count returns the number of notes over all columns.
func (n *Notes) Count() int {
	total := 0
	for _, column := range n {
		total += len(column)
	}
	return total
}

// Last returns the time of the latest note in any column
func (n *Notes) Last() int64 {
	var last int64
	for _, column := range n {
		for _, t := range column {
			if t > last {
				last = t
			}
		}
	}
	return last
}
