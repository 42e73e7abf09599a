package audio

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

type DefaultPlayer struct {
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
}

func decode(name string, data []byte) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".mp3":
		return mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	case ".ogg":
		return vorbis.Decode(io.NopCloser(bytes.NewReader(data)))
	case ".wav":
		return wav.Decode(bytes.NewReader(data))
	}
	return nil, beep.Format{}, fmt.Errorf("unsupported audio file %v", name)
}

// stream prefixes the decoded audio with leadIn of silence.
func stream(name string, data []byte, leadIn time.Duration) (beep.StreamSeekCloser, beep.Streamer, beep.Format, error) {
	streamer, format, err := decode(name, data)
	if nil != err {
		return nil, nil, format, fmt.Errorf("unable to decode %v: %w", name, err)
	}
	return streamer, beep.Seq(beep.Silence(format.SampleRate.N(leadIn)), streamer), format, nil
}

func (p *DefaultPlayer) Load(name string, data []byte, leadIn time.Duration) error {
	streamer, s, format, err := stream(name, data, leadIn)
	if nil != err {
		return err
	}
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/60)); nil != err {
		streamer.Close()
		return fmt.Errorf("unable to open speaker: %w", err)
	}
	p.streamer = streamer
	p.ctrl = &beep.Ctrl{Streamer: s, Paused: true}
	speaker.Play(p.ctrl)
	return nil
}

func (p *DefaultPlayer) setPaused(paused bool) {
	if nil == p.ctrl {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

func (p *DefaultPlayer) Play() {
	p.setPaused(false)
}

func (p *DefaultPlayer) Pause() {
	p.setPaused(true)
}

func (p *DefaultPlayer) Close() error {
	if nil == p.streamer {
		return nil
	}
	speaker.Lock()
	p.ctrl.Streamer = nil
	speaker.Unlock()
	return p.streamer.Close()
}
