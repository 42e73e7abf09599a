package audio

import "time"

// Player plays the audio of one map. Load leaves playback paused.
type Player interface {
	Load(name string, data []byte, leadIn time.Duration) error
	Play()
	Pause()
	Close() error
}
