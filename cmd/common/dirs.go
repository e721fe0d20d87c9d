package common

import (
	"os"
	"path/filepath"
)

// MusicDir resolves the music library root: the VINYL_MUSIC_DIR environment
// variable if set, otherwise the "music" directory under the working
// directory.
func MusicDir() string {
	if dir := os.Getenv("VINYL_MUSIC_DIR"); dir != "" {
		return dir
	}
	return "music"
}

// DataDir resolves where playlist slot files live: VINYL_DATA_DIR if set,
// otherwise the XDG data home.
func DataDir() string {
	if dir := os.Getenv("VINYL_DATA_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(dataHome(), "vinyl")
}

// https://specifications.freedesktop.org/basedir/latest/#variables
func dataHome() string {
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".local", "share")
	}
	return dir
}
