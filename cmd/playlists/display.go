package playlists

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/gigurra/vinyl/internal/media"
	"github.com/gigurra/vinyl/internal/player"
	"github.com/gigurra/vinyl/internal/playlist"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
)

// renderEntries prints entries as a numbered table.
func renderEntries(w io.Writer, entries []playlist.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, noteStyle.Render("the playlist is empty"))
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Song", "Artist"})
	for i, e := range entries {
		t.AppendRow(table.Row{i + 1, e.Song, e.Artist})
	}
	t.Render()
}

// resolveTracks maps entries to tracks via title resolution under musicDir.
// A title that does not resolve to exactly one file yields a track whose
// path points at the missing title inside musicDir, which fails at open
// time and flows through the traversal driver's error handling.
func resolveTracks(fsys afero.Fs, musicDir string, entries []playlist.Entry, log *slog.Logger) []player.Track {
	tracks := make([]player.Track, 0, len(entries))
	for _, e := range entries {
		path, err := media.Resolve(fsys, musicDir, e.Song)
		if err != nil {
			log.Warn("song did not resolve to a file", "song", e.Song, "error", err)
			path = filepath.Join(musicDir, e.Song)
		}
		tracks = append(tracks, player.Track{Path: path, Title: e.Song, Artist: e.Artist})
	}
	return tracks
}
