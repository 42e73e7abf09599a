package theme

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// For returns the DefaultTheme when f is a terminal and colors are wanted.
func For(f *os.File, plain bool) Theme {
	if plain || !term.IsTerminal(int(f.Fd())) {
		return &PlainTheme{}
	}
	return NewDefaultTheme()
}

type DefaultTheme struct {
	set      lipgloss.Style
	index    lipgloss.Style
	dim      lipgloss.Style
	miss     lipgloss.Style
	accuracy lipgloss.Style
	columns  [len(columnColors)]lipgloss.Style
}

var columnColors = [...]lipgloss.Color{
	"#EC1E00", // red
	"#0076EC", // blue
	"#ECC300", // yellow
	"#00EC80", // green
}

func NewDefaultTheme() *DefaultTheme {
	t := &DefaultTheme{
		set:      lipgloss.NewStyle().Bold(true),
		index:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ADECEC")),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("#6A6A6A")),
		miss:     lipgloss.NewStyle().Foreground(lipgloss.Color("#EC1E00")).Bold(true),
		accuracy: lipgloss.NewStyle().Bold(true).Underline(true),
	}
	for i, c := range columnColors {
		t.columns[i] = lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return t
}

func (t *DefaultTheme) column(c int) lipgloss.Style {
	return t.columns[c%len(t.columns)]
}

func (t *DefaultTheme) RenderSet(index int, name string) string {
	return fmt.Sprintf("%v %v", t.set.Render(fmt.Sprintf("%v ~~~~~~~", index)), t.dim.Render(name))
}

func (t *DefaultTheme) RenderMap(index int, title string, notes int) string {
	return fmt.Sprintf("    %v %q %v", t.index.Render(fmt.Sprintf("%v:", index)), title, t.dim.Render(fmt.Sprintf("(%v notes)", notes)))
}

func (t *DefaultTheme) RenderHit(column int, text string) string {
	return t.column(column).Render(text)
}

func (t *DefaultTheme) RenderMiss(column int, text string) string {
	return t.miss.Render(text)
}

func (t *DefaultTheme) RenderLamp(column int, on bool) string {
	if on {
		return t.column(column).Render(lampOn)
	}
	return t.dim.Render(lampOff)
}

func (t *DefaultTheme) RenderAccuracy(text string) string {
	return t.accuracy.Render(text)
}

const (
	lampOn  = "⬤"
	lampOff = "◯"
)

// PlainTheme is used when output is not a terminal.
type PlainTheme struct{}

func (t *PlainTheme) RenderSet(index int, name string) string {
	return fmt.Sprintf("%v ~~~~~~~ %v", index, name)
}

func (t *PlainTheme) RenderMap(index int, title string, notes int) string {
	return fmt.Sprintf("    %v: %q (%v notes)", index, title, notes)
}

func (t *PlainTheme) RenderHit(column int, text string) string  { return text }
func (t *PlainTheme) RenderMiss(column int, text string) string { return text }

func (t *PlainTheme) RenderLamp(column int, on bool) string {
	if on {
		return lampOn
	}
	return lampOff
}

func (t *PlainTheme) RenderAccuracy(text string) string { return text }
