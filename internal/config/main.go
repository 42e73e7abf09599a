package config

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/vsrg/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

const (
	InputGPIO     = "gpio"
	InputKeyboard = "keyboard"
	InputEvdev    = "evdev"
)

type Config struct {
	Directory string
	Input     string
	Keys      []rune
	Offset    time.Duration
	Plain     bool
	File      string

	GPIO  GPIO
	Evdev Evdev
}

// Parse reads the command line, args excludes the program name.
func Parse(args []string) (*Config, error) {
	app := kingpin.New("vsrg", "A 4k rhythm game played on buttons and LEDs")
	app.Version(Version)

	var (
		directory = app.Arg("directory", "Map depot, one .osz archive per file").Default("./map_depot").ExistingDir()
		input     = app.Flag("input", "Button source").Default(InputGPIO).Short('i').Enum(InputGPIO, InputKeyboard, InputEvdev)
		keys      = app.Flag("keys", "Keys for the 4 columns when --input=keyboard").Default("dfjk").Short('k').String()
		device    = app.Flag("device", "Input device when --input=evdev").String()
		offset    = app.Flag("offset", "Global offset").Default("0ms").Short('o').Duration()
		plain     = app.Flag("plain", "Disable colored output").Bool()
		file      = app.Flag("config", "YAML file with pin and key code assignments").Short('c').ExistingFile()
	)

	if _, err := app.Parse(args); nil != err {
		return nil, err
	}

	c := &Config{
		Directory: *directory,
		Input:     *input,
		Keys:      []rune(*keys),
		Offset:    *offset,
		Plain:     *plain,
		File:      *file,
		GPIO:      DefaultGPIO(),
		Evdev:     DefaultEvdev(),
	}
	if len(c.Keys) != game.Columns {
		return nil, fmt.Errorf("expected %v keys, got %q", game.Columns, *keys)
	}
	if c.File != "" {
		if err := c.load(c.File); nil != err {
			return nil, err
		}
	}
	if *device != "" {
		c.Evdev.Device = *device
	}
	return c, nil
}

// KeyColumn returns the column bound to r, or -1.
func KeyColumn(keys []rune, r rune) int {
	for i, c := range keys {
		if r == c {
			return i
		}
	}
	return -1
}
