package main

import (
	"fmt"
	"log"
	"os"

	"git.lost.host/meutraa/vsrg/internal/archive"
	"git.lost.host/meutraa/vsrg/internal/audio"
	"git.lost.host/meutraa/vsrg/internal/config"
	"git.lost.host/meutraa/vsrg/internal/render"
	"git.lost.host/meutraa/vsrg/internal/theme"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	cfg, err := config.Parse(os.Args[1:])
	if nil != err {
		return err
	}

	fmt.Printf("Welcome to Micro VSRG %v\n", config.Version)

	p := &Program{
		Config:    cfg,
		Extractor: &archive.DefaultExtractor{},
		Renderer:  &render.DefaultRenderer{Out: os.Stdout, Theme: theme.For(os.Stdout, cfg.Plain)},
		Player:    &audio.DefaultPlayer{},
	}

	fmt.Printf("Loading maps from %v ...\n", cfg.Directory)
	if err := p.Init(); nil != err {
		return err
	}

	set, m, err := p.Select(os.Stdin)
	if nil != err {
		return err
	}

	_, err = p.Play(set, m)
	return err
}
