package playlist

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// slotFile returns the fixed file name for a 1-based slot.
func slotFile(slot int) string {
	return fmt.Sprintf("playlist%d.json", slot)
}

// slotShape is the on-disk document. The length field is redundant with the
// songs array and exists for human inspection; on load the array wins.
type slotShape struct {
	ListName string  `json:"listName"`
	Length   int     `json:"length"`
	Songs    []Entry `json:"songs"`
}

// Save writes one slot file per stored playlist under dir and removes stale
// files of slots no longer occupied, so a following Load reproduces the
// store exactly.
func Save(fsys afero.Fs, dir string, s *Store) error {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating playlist dir %s: %w", dir, err)
	}

	for i, p := range s.All() {
		doc := slotShape{ListName: p.Name(), Length: p.Len(), Songs: p.Entries()}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding playlist %q: %w", p.Name(), err)
		}
		file := filepath.Join(dir, slotFile(i+1))
		if err := afero.WriteFile(fsys, file, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", file, err)
		}
	}

	for slot := s.Len() + 1; slot <= MaxPlaylists; slot++ {
		file := filepath.Join(dir, slotFile(slot))
		if exists, _ := afero.Exists(fsys, file); exists {
			if err := fsys.Remove(file); err != nil {
				return fmt.Errorf("removing stale %s: %w", file, err)
			}
		}
	}
	return nil
}

// Load reads every slot file present under dir into the store's remaining
// capacity, in slot order. Missing files are skipped silently; surplus files
// beyond the store's capacity are skipped with a warning. Returns the number
// of playlists loaded.
func Load(fsys afero.Fs, dir string, s *Store) (int, error) {
	loaded := 0
	for slot := 1; slot <= MaxPlaylists; slot++ {
		file := filepath.Join(dir, slotFile(slot))
		exists, err := afero.Exists(fsys, file)
		if err != nil {
			return loaded, fmt.Errorf("probing %s: %w", file, err)
		}
		if !exists {
			continue
		}
		if s.Len() >= MaxPlaylists {
			slog.Warn("playlist store is full, skipping slot file", "file", file)
			continue
		}

		data, err := afero.ReadFile(fsys, file)
		if err != nil {
			return loaded, fmt.Errorf("reading %s: %w", file, err)
		}
		var doc slotShape
		if err := json.Unmarshal(data, &doc); err != nil {
			return loaded, fmt.Errorf("parsing %s: %w", file, err)
		}
		if doc.Length != len(doc.Songs) {
			slog.Warn("playlist length field disagrees with songs array, using the array",
				"file", file, "length", doc.Length, "songs", len(doc.Songs))
		}

		p, err := s.Create(sanitizeName(doc.ListName, slot))
		if err != nil {
			return loaded, fmt.Errorf("restoring %s: %w", file, err)
		}
		for _, e := range doc.Songs {
			p.AddBack(e)
		}
		loaded++
	}
	return loaded, nil
}

// sanitizeName makes a loaded name usable: NULs stripped, over-long names
// truncated, anything still invalid replaced by a per-slot fallback.
func sanitizeName(name string, slot int) string {
	name = strings.ReplaceAll(name, "\x00", "")
	if runes := []rune(name); len(runes) > maxNameLen {
		name = string(runes[:maxNameLen])
	}
	if ValidateName(name) != nil {
		fallback := fmt.Sprintf("playlist %d", slot)
		slog.Warn("slot file carried an unusable name, falling back", "fallback", fallback)
		return fallback
	}
	return name
}
