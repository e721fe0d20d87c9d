package media

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

var (
	ErrSongNotFound  = errors.New("song not found in music directory")
	ErrAmbiguousSong = errors.New("song name matches more than one file")
)

var audioExts = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".flac": true,
	".ogg":  true,
}

// IsAudioFile reports whether name carries a recognized audio extension.
func IsAudioFile(name string) bool {
	return audioExts[strings.ToLower(filepath.Ext(name))]
}

var trackNumPrefix = regexp.MustCompile(`^\s*\d+\.?\s*`)

// CleanName derives a display title from a file path: directory and extension
// stripped, leading track-number prefixes like "01. " or "003 " removed.
func CleanName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = trackNumPrefix.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)
	if name == "" {
		return "(untitled)"
	}
	return name
}

// ListAudioFiles returns the recognized audio files directly inside dir
// (non-recursive), sorted by clean display name.
func ListAudioFiles(fsys afero.Fs, dir string) ([]string, error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading music directory %q: %w", dir, err)
	}

	files := lo.FilterMap(infos, func(fi fs.FileInfo, _ int) (string, bool) {
		if fi.IsDir() || !IsAudioFile(fi.Name()) {
			return "", false
		}
		return filepath.Join(dir, fi.Name()), true
	})

	slices.SortFunc(files, func(a, b string) int {
		return strings.Compare(strings.ToLower(CleanName(a)), strings.ToLower(CleanName(b)))
	})
	return files, nil
}

// Subdirectories returns the child directories of dir, sorted by name.
func Subdirectories(fsys afero.Fs, dir string) ([]string, error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %q: %w", dir, err)
	}

	dirs := lo.FilterMap(infos, func(fi fs.FileInfo, _ int) (string, bool) {
		return fi.Name(), fi.IsDir()
	})
	slices.Sort(dirs)
	return dirs, nil
}

// Resolve finds the audio file under root whose clean name matches title
// case-insensitively. Playlists store titles rather than paths, so this is
// how an entry becomes something a decoder can open. Exactly one match is
// required: none yields ErrSongNotFound, several yield ErrAmbiguousSong.
func Resolve(fsys afero.Fs, root, title string) (string, error) {
	want := strings.ToLower(strings.TrimSpace(title))

	var matches []string
	err := afero.Walk(fsys, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !IsAudioFile(path) {
			return nil
		}
		if strings.ToLower(CleanName(path)) == want {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("scanning %q: %w", root, err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %q", ErrSongNotFound, title)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %q (%d matches)", ErrAmbiguousSong, title, len(matches))
	}
}
