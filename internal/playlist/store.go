package playlist

import (
	"errors"
	"slices"
)

// MaxPlaylists is the number of slots the store (and its slot files) can
// hold.
const MaxPlaylists = 3

var ErrStoreFull = errors.New("playlist store is full")

// Store is the in-memory playlist collection, bounded by MaxPlaylists.
// Presence is membership; there are no tombstones.
type Store struct {
	lists []*Playlist
}

// Create validates the name, appends a new empty playlist and returns it.
func (s *Store) Create(name string) (*Playlist, error) {
	if len(s.lists) >= MaxPlaylists {
		return nil, ErrStoreFull
	}
	p, err := New(name)
	if err != nil {
		return nil, err
	}
	s.lists = append(s.lists, p)
	return p, nil
}

// Get returns the playlist at a 0-based index.
func (s *Store) Get(i int) (*Playlist, error) {
	if i < 0 || i >= len(s.lists) {
		return nil, ErrBadPosition
	}
	return s.lists[i], nil
}

// Remove deletes the playlist at a 0-based index; later slots shift down.
func (s *Store) Remove(i int) error {
	if i < 0 || i >= len(s.lists) {
		return ErrBadPosition
	}
	s.lists = slices.Delete(s.lists, i, i+1)
	return nil
}

// All returns the playlists in slot order. The slice is a copy, the
// playlists are shared.
func (s *Store) All() []*Playlist {
	return slices.Clone(s.lists)
}

func (s *Store) Len() int { return len(s.lists) }
