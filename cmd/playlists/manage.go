package playlists

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/gigurra/vinyl/internal/player"
	"github.com/gigurra/vinyl/internal/playlist"
)

const (
	opDisplay     = "Display songs"
	opAddBack     = "Add songs at the back"
	opAddFront    = "Add songs at the front"
	opAddAt       = "Add songs at a position"
	opRemoveFirst = "Remove the first song"
	opRemoveLast  = "Remove the last song"
	opRemoveAt    = "Remove the song at a position"
	opPlayAll     = "Play all"
	opPlayOne     = "Play one song"
	opPlayRepeat  = "Play on repeat"
	opPlayReverse = "Play in reverse"
	opSearch      = "Search songs"
	opSortSong    = "Sort by song title"
	opSortArtist  = "Sort by artist"
	opRename      = "Rename playlist"
	opDelete      = "Delete this playlist"
	opBack        = "Back"
)

func (m *manager) manageLoop(idx int) {
	p, err := m.store.Get(idx)
	if err != nil {
		m.printErr(err)
		return
	}

	for {
		var choice string
		err := survey.AskOne(&survey.Select{
			Message: fmt.Sprintf("%s (%d songs)", p.Name(), p.Len()),
			Options: []string{
				opDisplay,
				opAddBack, opAddFront, opAddAt,
				opRemoveFirst, opRemoveLast, opRemoveAt,
				opPlayAll, opPlayOne, opPlayRepeat, opPlayReverse,
				opSearch, opSortSong, opSortArtist,
				opRename, opDelete,
				opBack,
			},
			PageSize: 17,
		}, &choice)
		if err != nil {
			return
		}

		switch choice {
		case opDisplay:
			renderEntries(m.out, p.Entries())
		case opAddBack:
			for _, e := range m.pickSongs() {
				p.AddBack(e)
			}
		case opAddFront:
			// reversed so a picked batch keeps its order at the front
			batch := m.pickSongs()
			for i := len(batch) - 1; i >= 0; i-- {
				p.AddFront(batch[i])
			}
		case opAddAt:
			m.addAt(p)
		case opRemoveFirst:
			m.report(p.RemoveFront())
		case opRemoveLast:
			m.report(p.RemoveBack())
		case opRemoveAt:
			if pos, ok := m.askPosition("Remove which position?"); ok {
				m.report(p.RemoveAt(pos))
			}
		case opPlayAll:
			m.afterPlay(m.driver().PlaySequential(m.resolve(p)))
		case opPlayOne:
			if pos, ok := m.askPosition("Play which position?"); ok {
				m.afterPlay(m.driver().PlayOne(m.resolve(p), pos))
			}
		case opPlayRepeat:
			if rounds, ok := m.askRounds(); ok {
				m.afterPlay(m.driver().PlayRepeat(m.resolve(p), rounds))
			}
		case opPlayReverse:
			m.afterPlay(m.driver().PlayReverse(m.resolve(p)))
		case opSearch:
			m.search(p)
		case opSortSong:
			p.SortBySong()
			m.printOK("sorted by song title")
		case opSortArtist:
			p.SortByArtist()
			m.printOK("sorted by artist")
		case opRename:
			m.rename(p)
		case opDelete:
			if m.deletePlaylist(idx, p.Name()) {
				return
			}
		case opBack:
			return
		}
	}
}

func (m *manager) addAt(p *playlist.Playlist) {
	pos, ok := m.askPosition(fmt.Sprintf("Insert at which position? (1-%d)", p.Len()+1))
	if !ok {
		return
	}
	if pos > p.Len()+1 {
		m.printErr(fmt.Errorf("position %d is out of range, the playlist has %d songs", pos, p.Len()))
		return
	}
	for i, e := range m.pickSongs() {
		if err := p.AddAt(pos+i, e); err != nil {
			m.printErr(err)
			return
		}
	}
}

func (m *manager) rename(p *playlist.Playlist) {
	var name string
	err := survey.AskOne(&survey.Input{Message: "New name:", Default: p.Name()}, &name)
	if err != nil {
		return
	}
	if err := p.Rename(name); err != nil {
		m.printErr(err)
		return
	}
	m.printOK("renamed to " + name)
}

func (m *manager) deletePlaylist(idx int, name string) bool {
	sure := false
	err := survey.AskOne(&survey.Confirm{
		Message: fmt.Sprintf("Delete playlist %q?", name),
		Default: false,
	}, &sure)
	if err != nil || !sure {
		return false
	}
	if err := m.store.Remove(idx); err != nil {
		m.printErr(err)
		return false
	}
	m.printOK("deleted " + name)
	return true
}

func (m *manager) search(p *playlist.Playlist) {
	var term string
	if err := survey.AskOne(&survey.Input{Message: "Search for:"}, &term); err != nil {
		return
	}
	if strings.TrimSpace(term) == "" {
		return
	}
	hits := p.Search(term)
	if len(hits) == 0 {
		fmt.Fprintln(m.out, noteStyle.Render("no matches for "+term))
		return
	}
	renderEntries(m.out, hits)
}

// askPosition prompts for a 1-based position. A prompt error cancels;
// unparseable input reports and cancels.
func (m *manager) askPosition(msg string) (int, bool) {
	var raw string
	if err := survey.AskOne(&survey.Input{Message: msg}, &raw); err != nil {
		return 0, false
	}
	pos, err := parsePosition(raw)
	if err != nil {
		m.printErr(err)
		return 0, false
	}
	return pos, true
}

func (m *manager) askRounds() (int, bool) {
	var raw string
	err := survey.AskOne(&survey.Input{Message: "How many rounds? (1-10)", Default: "2"}, &raw)
	if err != nil {
		return 0, false
	}
	rounds, perr := parsePosition(raw)
	if perr != nil || rounds > 10 {
		m.printErr(fmt.Errorf("rounds must be a number between 1 and 10"))
		return 0, false
	}
	return rounds, true
}

// resolve maps playlist entries to playable tracks. Entries whose title does
// not resolve to exactly one file keep a path that will fail at open time,
// so the traversal driver surfaces them through its normal error protocol.
func (m *manager) resolve(p *playlist.Playlist) []player.Track {
	return resolveTracks(m.fsys, m.musicDir, p.Entries(), m.log)
}

func (m *manager) afterPlay(res player.Result) {
	switch res {
	case player.ResultSuccess:
		m.printOK("done")
	case player.ResultError:
		fmt.Fprintln(m.out, errorStyle.Render("playback ended with an error"))
	}
}

func (m *manager) report(err error) {
	if err != nil {
		m.printErr(err)
	}
}

// parsePosition parses a positive 1-based position.
func parsePosition(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	if n < 1 {
		return 0, fmt.Errorf("position must be 1 or higher, got %d", n)
	}
	return n, nil
}
