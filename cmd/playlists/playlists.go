// Package playlists is the interactive playlist manager: create, edit, save,
// load and play named playlists from menu prompts.
package playlists

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/GiGurra/boa/pkg/boa"
	"github.com/charmbracelet/lipgloss"
	"github.com/gigurra/vinyl/cmd/common"
	"github.com/gigurra/vinyl/internal/player"
	"github.com/gigurra/vinyl/internal/playlist"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))  // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // Bright red
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")) // Gray
)

type Params struct {
	MusicDir string `optional:"true" help:"Music library root. Defaults to VINYL_MUSIC_DIR or ./music."`
	DataDir  string `optional:"true" help:"Directory for playlist files. Defaults to VINYL_DATA_DIR or the XDG data home."`
	Notify   bool   `help:"Send a desktop notification when a track starts."`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:   "playlists",
		Short: "Manage and play named playlists interactively",
		Long: `An interactive manager for up to three named playlists. Songs are stored
by display title and resolved against the music library at playback time.
Playlists persist as playlist1.json, playlist2.json, playlist3.json in the
data directory.`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := runManager(params); err != nil {
				fmt.Fprintf(os.Stderr, "playlists: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

// manager carries the state of one interactive run.
type manager struct {
	fsys     afero.Fs
	musicDir string
	dataDir  string
	store    *playlist.Store
	notify   bool
	out      io.Writer
	log      *slog.Logger
}

func runManager(params *Params) error {
	musicDir := params.MusicDir
	if musicDir == "" {
		musicDir = common.MusicDir()
	}
	dataDir := params.DataDir
	if dataDir == "" {
		dataDir = common.DataDir()
	}

	fsys := afero.NewOsFs()
	if err := fsys.MkdirAll(musicDir, 0o755); err != nil {
		return fmt.Errorf("preparing music directory %s: %w", musicDir, err)
	}

	m := &manager{
		fsys:     fsys,
		musicDir: musicDir,
		dataDir:  dataDir,
		store:    &playlist.Store{},
		notify:   params.Notify,
		out:      os.Stdout,
		log:      slog.Default(),
	}
	m.mainLoop()
	return nil
}

func (m *manager) mainLoop() {
	fmt.Fprintln(m.out, headerStyle.Render("vinyl playlist manager"))
	fmt.Fprintln(m.out, noteStyle.Render("music library: "+m.musicDir))

	for {
		const (
			opCreate = "Create a new playlist"
			opManage = "Manage a playlist"
			opSave   = "Save playlists to disk"
			opLoad   = "Load playlists from disk"
			opQuit   = "Quit"
		)
		var choice string
		err := survey.AskOne(&survey.Select{
			Message: "What would you like to do?",
			Options: []string{opCreate, opManage, opSave, opLoad, opQuit},
		}, &choice)
		if err != nil {
			return
		}

		switch choice {
		case opCreate:
			m.createPlaylist()
		case opManage:
			m.pickAndManage()
		case opSave:
			m.savePlaylists()
		case opLoad:
			m.loadPlaylists()
		case opQuit:
			return
		}
	}
}

func (m *manager) createPlaylist() {
	var name string
	if err := survey.AskOne(&survey.Input{Message: "Playlist name:"}, &name); err != nil {
		return
	}
	p, err := m.store.Create(name)
	if err != nil {
		m.printErr(err)
		return
	}
	m.printOK(fmt.Sprintf("created playlist %q (%d of %d slots used)",
		p.Name(), m.store.Len(), playlist.MaxPlaylists))
}

func (m *manager) pickAndManage() {
	if m.store.Len() == 0 {
		fmt.Fprintln(m.out, noteStyle.Render("no playlists yet"))
		return
	}
	names := make([]string, 0, m.store.Len())
	for _, p := range m.store.All() {
		names = append(names, fmt.Sprintf("%s (%d songs)", p.Name(), p.Len()))
	}
	var idx int
	err := survey.AskOne(&survey.Select{Message: "Which playlist?", Options: names}, &idx)
	if err != nil {
		return
	}
	m.manageLoop(idx)
}

func (m *manager) savePlaylists() {
	if err := playlist.Save(m.fsys, m.dataDir, m.store); err != nil {
		m.printErr(err)
		return
	}
	m.printOK(fmt.Sprintf("saved %d playlist(s) to %s", m.store.Len(), m.dataDir))
}

func (m *manager) loadPlaylists() {
	n, err := playlist.Load(m.fsys, m.dataDir, m.store)
	if err != nil {
		m.printErr(err)
		return
	}
	if n == 0 {
		fmt.Fprintln(m.out, noteStyle.Render("nothing to load from "+m.dataDir))
		return
	}
	m.printOK(fmt.Sprintf("loaded %d playlist(s) from %s", n, m.dataDir))
}

func (m *manager) driver() *player.Driver {
	return &player.Driver{Console: m.out, Notify: m.notify, Log: m.log}
}

func (m *manager) printOK(msg string) {
	fmt.Fprintln(m.out, successStyle.Render(msg))
}

func (m *manager) printErr(err error) {
	fmt.Fprintln(m.out, errorStyle.Render(err.Error()))
}
