package common

import (
	"path/filepath"
	"testing"
)

func TestMusicDir(t *testing.T) {
	t.Setenv("VINYL_MUSIC_DIR", "")
	if got := MusicDir(); got != "music" {
		t.Errorf("MusicDir() = %q, want the working-directory default", got)
	}

	t.Setenv("VINYL_MUSIC_DIR", "/srv/tunes")
	if got := MusicDir(); got != "/srv/tunes" {
		t.Errorf("MusicDir() = %q, want the env override", got)
	}
}

func TestDataDir(t *testing.T) {
	t.Setenv("VINYL_DATA_DIR", "/var/lib/vinyl")
	if got := DataDir(); got != "/var/lib/vinyl" {
		t.Errorf("DataDir() = %q, want the env override", got)
	}

	t.Setenv("VINYL_DATA_DIR", "")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	want := filepath.Join("/xdg/data", "vinyl")
	if got := DataDir(); got != want {
		t.Errorf("DataDir() = %q, want %q", got, want)
	}
}
