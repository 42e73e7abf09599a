package game

import "testing"

var selectionTests = map[string]Selection{
	"0,1":     {Set: 0, Map: 1},
	" 3,0\n":  {Set: 3, Map: 0},
	"12 , 7":  {Set: 12, Map: 7},
	"0,0\r\n": {Set: 0, Map: 0},
}

func TestParseSelection(t *testing.T) {
	for in, expected := range selectionTests {
		out, err := ParseSelection(in)
		if nil != err {
			t.Fatalf("ParseSelection(%q) returned error: %v", in, err)
		}
		if out != expected {
			t.Log("in      ", in)
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestParseSelectionRejects(t *testing.T) {
	for _, in := range []string{"", "1", "1,2,3", "a,1", "1,-2", "-1,0"} {
		if _, err := ParseSelection(in); nil == err {
			t.Errorf("expected ParseSelection(%q) to fail", in)
		}
	}
}

func TestResolve(t *testing.T) {
	m := NewMap("a.osu", "audio.mp3", 0, "Title", "Hard", Notes{})
	sets := []*Set{NewSet("a.osz", []*Map{m}, nil)}

	set, got, err := Selection{Set: 0, Map: 0}.Resolve(sets)
	if nil != err {
		t.Fatal(err)
	}
	if set != sets[0] || got != m {
		t.Fatalf("resolved to the wrong map: %v", got)
	}
	if _, _, err := (Selection{Set: 1, Map: 0}).Resolve(sets); nil == err {
		t.Fatal("expected an error for a missing set")
	}
	if _, _, err := (Selection{Set: 0, Map: 1}).Resolve(sets); nil == err {
		t.Fatal("expected an error for a missing map")
	}
}

func TestSetAudio(t *testing.T) {
	m := NewMap("a.osu", "audio.mp3", 0, "Title", "Hard", Notes{})
	set := NewSet("a.osz", []*Map{m}, map[string][]byte{"audio.mp3": {1, 2, 3}})
	data, err := set.Audio(m)
	if nil != err || len(data) != 3 {
		t.Fatalf("expected audio bytes, got %v %v", data, err)
	}
	delete(set.Files, "audio.mp3")
	if _, err := set.Audio(m); nil == err {
		t.Fatal("expected an error for missing audio")
	}
}

func TestFullTitle(t *testing.T) {
	m := NewMap("a.osu", "audio.mp3", 0, "Song", "Insane", Notes{{1}, {2, 3}, nil, {4}})
	if m.FullTitle != "Insane - Song" {
		t.Fatalf("wrong full title %q", m.FullTitle)
	}
	if m.NoteCount() != 4 {
		t.Fatalf("expected 4 notes, got %d", m.NoteCount())
	}
	if m.Notes.Last() != 4 {
		t.Fatalf("expected last note at 4, got %d", m.Notes.Last())
	}
}
