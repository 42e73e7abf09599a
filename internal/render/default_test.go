package render

import (
	"bytes"
	"strings"
	"testing"

	"git.lost.host/meutraa/vsrg/internal/game"
	"git.lost.host/meutraa/vsrg/internal/theme"
)

type score string

func (s score) String() string {
	return string(s)
}

func newRenderer() (*DefaultRenderer, *bytes.Buffer) {
	var buf bytes.Buffer
	return &DefaultRenderer{Out: &buf, Theme: &theme.PlainTheme{}}, &buf
}

func TestListing(t *testing.T) {
	r, out := newRenderer()
	hard := game.NewMap("hard.osu", "a.mp3", 0, "Song", "Hard", game.Notes{{1, 2}, {3}})
	easy := game.NewMap("easy.osu", "a.mp3", 0, "Song", "Easy", game.Notes{})
	r.Listing([]*game.Set{
		game.NewSet("depot/first.osz", []*game.Map{hard, easy}, nil),
		game.NewSet("depot/second.osz", nil, nil),
	})

	expected := strings.Join([]string{
		"2 set(s) loaded!",
		"",
		"Set | Map",
		"0 ~~~~~~~ first.osz",
		`    0: "Hard - Song" (3 notes)`,
		`    1: "Easy - Song" (0 notes)`,
		"1 ~~~~~~~ second.osz",
		"",
	}, "\n")
	if out.String() != expected {
		t.Log("out     ", out.String())
		t.Log("expected", expected)
		t.Fail()
	}
}

func TestJudgementLines(t *testing.T) {
	r, out := newRenderer()
	r.Judgement(game.Event{Column: 0, Judgement: game.Hit})
	r.Judgement(game.Event{Column: 3, Judgement: game.Miss})
	r.Accuracy(score("Accuracy: 1/2"))

	expected := "P1B1 PRESSED!\nP1B4 MISSED!\nAccuracy: 1/2\n"
	if out.String() != expected {
		t.Fatalf("got %q, expected %q", out.String(), expected)
	}
}

func TestLamps(t *testing.T) {
	r, out := newRenderer()
	lamps := []*Lamp{r.Lamp(0), r.Lamp(1), r.Lamp(2), r.Lamp(3)}

	lamps[1].Set(true)
	if out.String() != "\r[◯ ⬤ ◯ ◯]" {
		t.Fatalf("unexpected lamp row %q", out.String())
	}

	out.Reset()
	lamps[1].Set(true)
	if out.Len() != 0 {
		t.Fatalf("an unchanged lamp must not redraw, got %q", out.String())
	}

	r.Judgement(game.Event{Column: 1, Judgement: game.Hit})
	if out.String() != "\r\033[KP1B2 PRESSED!\r\n[◯ ⬤ ◯ ◯]" {
		t.Fatalf("unexpected judgement with lamps %q", out.String())
	}
}

func TestAccuracyReplacesLamps(t *testing.T) {
	r, out := newRenderer()
	r.Lamp(0)
	r.Accuracy(score("Accuracy: 0/0"))
	if out.String() != "\r\033[KAccuracy: 0/0\r\n" {
		t.Fatalf("unexpected accuracy line %q", out.String())
	}

	out.Reset()
	r.Judgement(game.Event{Column: 0, Judgement: game.Hit})
	if out.String() != "P1B1 PRESSED!\n" {
		t.Fatalf("lamps must stay hidden after the accuracy line, got %q", out.String())
	}
}

func TestPromptAndStarting(t *testing.T) {
	r, out := newRenderer()
	r.Prompt()
	r.Starting(game.NewMap("a.osu", "a.mp3", 0, "Song", "Hard", game.Notes{}))
	expected := "Select a map {set_id},{map_id}: Starting... Hard - Song\n"
	if out.String() != expected {
		t.Fatalf("got %q, expected %q", out.String(), expected)
	}
}
