package score

import "time"

// MonotonicClock counts from the moment it is created. Offset is
// subtracted from every reading.
type MonotonicClock struct {
	origin time.Time
	offset time.Duration
}

func NewClock(offset time.Duration) *MonotonicClock {
	return &MonotonicClock{origin: time.Now(), offset: offset}
}

func (c *MonotonicClock) Milliseconds() int64 {
	return (time.Since(c.origin) - c.offset).Milliseconds()
}
