package play

import (
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/vinyl/cmd/common"
	"github.com/gigurra/vinyl/internal/media"
	"github.com/gigurra/vinyl/internal/player"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type Params struct {
	Paths   []string `pos:"true" help:"Audio files or directories to play."`
	Reverse bool     `short:"r" help:"Play in reverse order."`
	Repeat  int      `help:"Play the whole list this many times (1-10)." default:"1"`
	Track   int      `short:"t" optional:"true" help:"Play only the track at this 1-based position." default:"0"`
	Notify  bool     `help:"Send a desktop notification when a track starts."`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:   "play",
		Short: "Play audio files with live transport controls",
		Long: `Play audio files or directories through the system audio output.
Directories expand to their recognized audio files (mp3, wav, flac, ogg)
in title order.

Controls during playback:
  SPACE - pause / resume
  s     - stop
  j / k - seek back / forward 10 seconds

--track picks a single entry; otherwise --reverse takes precedence over
--repeat.`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			os.Exit(Run(params, afero.NewOsFs(), os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

// Run expands the given paths and drives playback, returning the process
// exit code: 0 for success or a user stop, 1 for errors.
func Run(params *Params, fsys afero.Fs, stdout, stderr io.Writer) int {
	tracks, err := expandTracks(fsys, params.Paths)
	if err != nil {
		fmt.Fprintf(stderr, "play: %v\n", err)
		return 1
	}

	driver := &player.Driver{Console: stdout, Notify: params.Notify}

	var res player.Result
	switch {
	case params.Track > 0:
		res = driver.PlayOne(tracks, params.Track)
	case params.Reverse:
		res = driver.PlayReverse(tracks)
	case params.Repeat > 1:
		res = driver.PlayRepeat(tracks, params.Repeat)
	default:
		res = driver.PlaySequential(tracks)
	}

	if res == player.ResultError {
		return 1
	}
	return 0
}

// expandTracks turns a mix of file and directory paths into a flat track
// list. Files are taken as-is; directories contribute their recognized audio
// files in title order. Ad-hoc tracks carry no artist credit.
func expandTracks(fsys afero.Fs, paths []string) ([]player.Track, error) {
	var tracks []player.Track
	for _, p := range paths {
		info, err := fsys.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", p, err)
		}
		if !info.IsDir() {
			tracks = append(tracks, player.Track{Path: p, Title: media.CleanName(p)})
			continue
		}
		files, err := media.ListAudioFiles(fsys, p)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			tracks = append(tracks, player.Track{Path: f, Title: media.CleanName(f)})
		}
	}
	return tracks, nil
}
