package playlists

import (
	"fmt"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/gigurra/vinyl/internal/media"
	"github.com/gigurra/vinyl/internal/playlist"
)

const (
	navUp     = ".. (up one directory)"
	navPick   = "Pick songs here"
	navAll    = "Add all songs here"
	navCancel = "Cancel"
)

// pickSongs walks the music library with select prompts and returns the
// chosen songs as entries. An empty slice means the user cancelled or the
// directory had nothing to offer.
func (m *manager) pickSongs() []playlist.Entry {
	dir := m.musicDir
	for {
		fmt.Fprintln(m.out, headerStyle.Render(m.breadcrumb(dir)))

		files, err := media.ListAudioFiles(m.fsys, dir)
		if err != nil {
			m.printErr(err)
			return nil
		}
		subs, err := media.Subdirectories(m.fsys, dir)
		if err != nil {
			m.printErr(err)
			return nil
		}

		options := make([]string, 0, len(subs)+4)
		if dir != m.musicDir {
			options = append(options, navUp)
		}
		for _, s := range subs {
			options = append(options, "[dir] "+s)
		}
		if len(files) > 0 {
			options = append(options, navPick, navAll)
		}
		options = append(options, navCancel)

		var choice string
		err = survey.AskOne(&survey.Select{
			Message:  fmt.Sprintf("%d songs, %d directories", len(files), len(subs)),
			Options:  options,
			PageSize: 15,
		}, &choice)
		if err != nil {
			return nil
		}

		switch {
		case choice == navCancel:
			return nil
		case choice == navUp:
			dir = filepath.Dir(dir)
		case choice == navPick:
			return m.multiSelect(files)
		case choice == navAll:
			return m.withArtist(files)
		default:
			dir = filepath.Join(dir, choice[len("[dir] "):])
		}
	}
}

// breadcrumb shows where in the library the browser is.
func (m *manager) breadcrumb(dir string) string {
	rel, err := filepath.Rel(m.musicDir, dir)
	if err != nil || rel == "." {
		return "library"
	}
	return "library" + string(filepath.Separator) + rel
}

func (m *manager) multiSelect(files []string) []playlist.Entry {
	titles := make([]string, len(files))
	byTitle := make(map[string]string, len(files))
	for i, f := range files {
		titles[i] = media.CleanName(f)
		byTitle[titles[i]] = f
	}

	var picked []string
	err := survey.AskOne(&survey.MultiSelect{
		Message:  "Which songs?",
		Options:  titles,
		PageSize: 15,
	}, &picked)
	if err != nil || len(picked) == 0 {
		return nil
	}

	chosen := make([]string, 0, len(picked))
	for _, title := range picked {
		chosen = append(chosen, byTitle[title])
	}
	return m.withArtist(chosen)
}

// withArtist asks for one artist credit for the whole batch and builds the
// entries. Songs are stored by display title, not by path.
func (m *manager) withArtist(files []string) []playlist.Entry {
	if len(files) == 0 {
		return nil
	}
	artist := "(unknown)"
	err := survey.AskOne(&survey.Input{Message: "Artist for these songs?", Default: "(unknown)"}, &artist)
	if err != nil {
		return nil
	}
	if artist == "" {
		artist = "(unknown)"
	}

	entries := make([]playlist.Entry, 0, len(files))
	for _, f := range files {
		entries = append(entries, playlist.Entry{Song: media.CleanName(f), Artist: artist})
	}
	m.printOK(fmt.Sprintf("added %d song(s)", len(entries)))
	return entries
}
