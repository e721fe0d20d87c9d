package playlist

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"plain", "road trip", true},
		{"unicode", "bästa låtarna", true},
		{"exactly max length", strings.Repeat("a", 100), true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"over max length", strings.Repeat("a", 101), false},
		{"slash", "a/b", false},
		{"backslash", `a\b`, false},
		{"colon", "a:b", false},
		{"star", "a*b", false},
		{"question mark", "a?b", false},
		{"quote", `a"b`, false},
		{"angle brackets", "a<b>", false},
		{"pipe", "a|b", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateName(tc.input)
			if tc.ok && err != nil {
				t.Errorf("ValidateName(%q) = %v, want nil", tc.input, err)
			}
			if !tc.ok && !errors.Is(err, ErrBadName) {
				t.Errorf("ValidateName(%q) = %v, want ErrBadName", tc.input, err)
			}
		})
	}
}

func songs(p *Playlist) string {
	var titles []string
	for _, e := range p.Entries() {
		titles = append(titles, e.Song)
	}
	return strings.Join(titles, ",")
}

func TestAddPositions(t *testing.T) {
	p, err := New("mix")
	if err != nil {
		t.Fatal(err)
	}

	p.AddBack(Entry{Song: "B"})
	p.AddBack(Entry{Song: "D"})
	p.AddFront(Entry{Song: "A"})
	if err := p.AddAt(3, Entry{Song: "C"}); err != nil {
		t.Fatalf("AddAt(3) = %v", err)
	}
	if err := p.AddAt(5, Entry{Song: "E"}); err != nil { // len+1 appends
		t.Fatalf("AddAt(len+1) = %v", err)
	}

	if got := songs(p); got != "A,B,C,D,E" {
		t.Errorf("order = %s, want A,B,C,D,E", got)
	}

	if err := p.AddAt(0, Entry{Song: "X"}); !errors.Is(err, ErrBadPosition) {
		t.Errorf("AddAt(0) = %v, want ErrBadPosition", err)
	}
	if err := p.AddAt(7, Entry{Song: "X"}); !errors.Is(err, ErrBadPosition) {
		t.Errorf("AddAt(len+2) = %v, want ErrBadPosition", err)
	}
}

func TestRemovePositions(t *testing.T) {
	p, _ := New("mix")
	for _, s := range []string{"A", "B", "C", "D"} {
		p.AddBack(Entry{Song: s})
	}

	if err := p.RemoveFront(); err != nil {
		t.Fatal(err)
	}
	if err := p.RemoveBack(); err != nil {
		t.Fatal(err)
	}
	if err := p.RemoveAt(2); err != nil {
		t.Fatal(err)
	}
	if got := songs(p); got != "B" {
		t.Errorf("after removals = %s, want B", got)
	}

	if err := p.RemoveAt(2); !errors.Is(err, ErrBadPosition) {
		t.Errorf("RemoveAt past end = %v, want ErrBadPosition", err)
	}

	p.Clear()
	if p.Len() != 0 {
		t.Errorf("Len after Clear = %d", p.Len())
	}
	if err := p.RemoveFront(); !errors.Is(err, ErrEmpty) {
		t.Errorf("RemoveFront on empty = %v, want ErrEmpty", err)
	}
}

func TestEntriesIsACopy(t *testing.T) {
	p, _ := New("mix")
	p.AddBack(Entry{Song: "original"})

	got := p.Entries()
	got[0].Song = "mutated"

	if p.Entries()[0].Song != "original" {
		t.Error("mutating the returned slice must not affect the playlist")
	}
}

func TestRename(t *testing.T) {
	p, _ := New("before")
	if err := p.Rename("after"); err != nil {
		t.Fatalf("Rename = %v", err)
	}
	if p.Name() != "after" {
		t.Errorf("Name = %q, want after", p.Name())
	}
	if err := p.Rename("bad|name"); !errors.Is(err, ErrBadName) {
		t.Errorf("Rename invalid = %v, want ErrBadName", err)
	}
	if p.Name() != "after" {
		t.Errorf("failed rename changed the name to %q", p.Name())
	}
}

func TestSearch(t *testing.T) {
	p, _ := New("mix")
	p.AddBack(Entry{Song: "Blue Train", Artist: "Coltrane"})
	p.AddBack(Entry{Song: "So What", Artist: "Miles Davis"})
	p.AddBack(Entry{Song: "Blue in Green", Artist: "Miles Davis"})

	tests := []struct {
		name string
		term string
		want int
	}{
		{"substring of song", "blue", 2},
		{"substring of artist", "MILES", 2},
		{"both fields searched", "train", 1},
		{"no match", "polka", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Search(tc.term); len(got) != tc.want {
				t.Errorf("Search(%q) found %d, want %d", tc.term, len(got), tc.want)
			}
		})
	}
}

func TestSortStability(t *testing.T) {
	p, _ := New("mix")
	p.AddBack(Entry{Song: "same", Artist: "first"})
	p.AddBack(Entry{Song: "Apple", Artist: "z"})
	p.AddBack(Entry{Song: "same", Artist: "second"})

	p.SortBySong()
	got := p.Entries()
	if got[0].Song != "Apple" {
		t.Errorf("first after sort = %q, want Apple", got[0].Song)
	}
	if got[1].Artist != "first" || got[2].Artist != "second" {
		t.Errorf("equal keys reordered: %v", got)
	}

	p.SortByArtist()
	got = p.Entries()
	if got[0].Artist != "first" || got[1].Artist != "second" || got[2].Artist != "z" {
		t.Errorf("artist order = %v", got)
	}
}
