package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"time"

	"git.lost.host/meutraa/vsrg/internal/archive"
	"git.lost.host/meutraa/vsrg/internal/audio"
	"git.lost.host/meutraa/vsrg/internal/config"
	"git.lost.host/meutraa/vsrg/internal/game"
	"git.lost.host/meutraa/vsrg/internal/input"
	"git.lost.host/meutraa/vsrg/internal/render"
	"git.lost.host/meutraa/vsrg/internal/score"
)

type Program struct {
	Config    *config.Config
	Extractor *archive.DefaultExtractor
	Renderer  *render.DefaultRenderer
	Player    audio.Player

	sets []*game.Set
}

// Init loads every archive in the map depot and lists their maps.
func (p *Program) Init() error {
	sets, err := p.Extractor.LoadDirectory(p.Config.Directory)
	if nil != err {
		return err
	}
	p.sets = sets
	p.Renderer.Listing(p.sets)
	return nil
}

func (p *Program) Select(in io.Reader) (*game.Set, *game.Map, error) {
	p.Renderer.Prompt()
	line, err := bufio.NewReader(in).ReadString('\n')
	if nil != err && (err != io.EOF || line == "") {
		return nil, nil, fmt.Errorf("unable to read selection: %w", err)
	}
	selection, err := game.ParseSelection(line)
	if nil != err {
		return nil, nil, err
	}
	return selection.Resolve(p.sets)
}

// lanes opens the configured input device. Without LEDs the indicators
// are drawn in the terminal.
func (p *Program) lanes() ([game.Columns]score.Lane, io.Closer, error) {
	var lanes [game.Columns]score.Lane

	switch p.Config.Input {
	case config.InputGPIO:
		g, err := input.OpenGPIO(p.Config.GPIO)
		if nil != err {
			return lanes, nil, fmt.Errorf("unable to open gpio: %w", err)
		}
		for i := range lanes {
			lanes[i] = score.Lane{Button: g.Button(i), Indicator: g.Indicator(i)}
		}
		return lanes, g, nil
	case config.InputKeyboard, config.InputEvdev:
		var src input.Source
		var err error
		if p.Config.Input == config.InputKeyboard {
			src, err = input.OpenKeyboard(p.Config.Keys)
		} else {
			src, err = input.OpenEvdev(p.Config.Evdev.Device, p.Config.Evdev.Codes)
		}
		if nil != err {
			return lanes, nil, fmt.Errorf("unable to open %v: %w", p.Config.Input, err)
		}
		for i := range lanes {
			lanes[i] = score.Lane{Button: src.Button(i), Indicator: p.Renderer.Lamp(i)}
		}
		return lanes, src, nil
	}
	return lanes, nil, fmt.Errorf("unknown input %v", p.Config.Input)
}

// Play runs the judgement loop for m until every note is judged.
func (p *Program) Play(set *game.Set, m *game.Map) (score.Score, error) {
	p.Renderer.Starting(m)

	data, err := set.Audio(m)
	if nil != err {
		return score.Score{}, err
	}
	if err := p.Player.Load(m.AudioFileName, data, time.Duration(m.AudioLeadIn)*time.Millisecond); nil != err {
		return score.Score{}, err
	}
	defer p.Player.Close()

	lanes, closer, err := p.lanes()
	if nil != err {
		return score.Score{}, err
	}
	defer func() {
		if err := closer.Close(); nil != err {
			log.Println("unable to close input", err)
		}
	}()

	clock := score.NewClock(p.Config.Offset)
	scorer := score.NewScorer(m, lanes, clock)
	scorer.OnJudge = p.Renderer.Judgement

	p.Player.Play()
	result := scorer.Run()
	p.Player.Pause()

	p.Renderer.Accuracy(result)
	return result, nil
}
