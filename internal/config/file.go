package config

import (
	"fmt"
	"os"

	"git.lost.host/meutraa/vsrg/internal/game"
	"gopkg.in/yaml.v3"
)

// GPIO holds BCM line offsets. Buttons are read with a pull down, LEDs
// light while their column has a note in range.
type GPIO struct {
	Chip    string `yaml:"chip"`
	Buttons []int  `yaml:"buttons"`
	LEDs    []int  `yaml:"leds"`
}

type Evdev struct {
	Device string   `yaml:"device"`
	Codes  []uint16 `yaml:"codes"`
}

type file struct {
	GPIO  *GPIO  `yaml:"gpio"`
	Evdev *Evdev `yaml:"evdev"`
}

func DefaultGPIO() GPIO {
	return GPIO{
		Chip:    "gpiochip0",
		Buttons: []int{4, 17, 22, 9},
		LEDs:    []int{2, 3, 27, 10},
	}
}

func DefaultEvdev() Evdev {
	return Evdev{
		Device: "/dev/input/event0",
		Codes:  []uint16{32, 33, 36, 37}, // KEY_D KEY_F KEY_J KEY_K
	}
}

// load overrides the sections present in the YAML file at p.
func (c *Config) load(p string) error {
	data, err := os.ReadFile(p)
	if nil != err {
		return fmt.Errorf("unable to read config file: %w", err)
	}
	f := file{GPIO: &c.GPIO, Evdev: &c.Evdev}
	if err := yaml.Unmarshal(data, &f); nil != err {
		return fmt.Errorf("unable to parse config file %v: %w", p, err)
	}
	return c.validate()
}

func (c *Config) validate() error {
	if len(c.GPIO.Buttons) != game.Columns {
		return fmt.Errorf("gpio.buttons needs %v lines, got %v", game.Columns, len(c.GPIO.Buttons))
	}
	if len(c.GPIO.LEDs) != game.Columns {
		return fmt.Errorf("gpio.leds needs %v lines, got %v", game.Columns, len(c.GPIO.LEDs))
	}
	if len(c.Evdev.Codes) != game.Columns {
		return fmt.Errorf("evdev.codes needs %v key codes, got %v", game.Columns, len(c.Evdev.Codes))
	}
	return nil
}
