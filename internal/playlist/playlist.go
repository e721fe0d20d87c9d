// Package playlist holds named song lists and their slot-file persistence.
// Entries store display titles, not paths; titles resolve to files at
// playback time.
package playlist

import (
	"errors"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

var (
	ErrBadPosition = errors.New("position out of range")
	ErrEmpty       = errors.New("playlist is empty")
	ErrBadName     = errors.New("invalid playlist name")
)

// maxNameLen bounds playlist names.
const maxNameLen = 100

// forbiddenNameChars would break the slot files or the display.
const forbiddenNameChars = `\/:*?"<>|`

// Entry is one song reference: display title plus artist credit.
type Entry struct {
	Song   string `json:"song"`
	Artist string `json:"artist"`
}

// Playlist is a named ordered sequence of entries.
type Playlist struct {
	name    string
	entries []Entry
}

// New creates an empty playlist. The name must satisfy ValidateName.
func New(name string) (*Playlist, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &Playlist{name: name}, nil
}

// ValidateName rejects empty names, names over 100 characters and names
// containing any of \ / : * ? " < > |.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrBadName
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return ErrBadName
	}
	if strings.ContainsAny(name, forbiddenNameChars) {
		return ErrBadName
	}
	return nil
}

func (p *Playlist) Name() string { return p.name }

// Rename validates and applies a new name.
func (p *Playlist) Rename(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	p.name = name
	return nil
}

func (p *Playlist) Len() int { return len(p.entries) }

// Entries returns a copy; mutating it does not affect the playlist.
func (p *Playlist) Entries() []Entry {
	return slices.Clone(p.entries)
}

func (p *Playlist) AddFront(e Entry) {
	p.entries = slices.Insert(p.entries, 0, e)
}

func (p *Playlist) AddBack(e Entry) {
	p.entries = append(p.entries, e)
}

// AddAt inserts at a 1-based position; position len+1 appends.
func (p *Playlist) AddAt(pos int, e Entry) error {
	if pos < 1 || pos > len(p.entries)+1 {
		return ErrBadPosition
	}
	p.entries = slices.Insert(p.entries, pos-1, e)
	return nil
}

func (p *Playlist) RemoveFront() error {
	return p.RemoveAt(1)
}

func (p *Playlist) RemoveBack() error {
	return p.RemoveAt(len(p.entries))
}

// RemoveAt removes the entry at a 1-based position.
func (p *Playlist) RemoveAt(pos int) error {
	if len(p.entries) == 0 {
		return ErrEmpty
	}
	if pos < 1 || pos > len(p.entries) {
		return ErrBadPosition
	}
	p.entries = slices.Delete(p.entries, pos-1, pos)
	return nil
}

func (p *Playlist) Clear() {
	p.entries = nil
}

// Search returns the entries whose song or artist contains term,
// case-insensitively.
func (p *Playlist) Search(term string) []Entry {
	needle := strings.ToLower(term)
	return lo.Filter(p.entries, func(e Entry, _ int) bool {
		return strings.Contains(strings.ToLower(e.Song), needle) ||
			strings.Contains(strings.ToLower(e.Artist), needle)
	})
}

// SortBySong orders entries by song title, case-insensitive, stable.
func (p *Playlist) SortBySong() {
	slices.SortStableFunc(p.entries, func(a, b Entry) int {
		return strings.Compare(strings.ToLower(a.Song), strings.ToLower(b.Song))
	})
}

// SortByArtist orders entries by artist, case-insensitive, stable.
func (p *Playlist) SortByArtist() {
	slices.SortStableFunc(p.entries, func(a, b Entry) int {
		return strings.Compare(strings.ToLower(a.Artist), strings.ToLower(b.Artist))
	})
}
