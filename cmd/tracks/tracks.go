package tracks

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/vinyl/cmd/common"
	"github.com/gigurra/vinyl/internal/media"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type Params struct {
	Dir string `pos:"true" optional:"true" help:"Directory to list. Defaults to the music library root."`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "tracks",
		Short:       "List the recognized audio files in a directory",
		Long:        "List the recognized audio files (mp3, wav, flac, ogg) in a directory with their display titles and decode family.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			os.Exit(Run(params, afero.NewOsFs(), os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

func Run(params *Params, fsys afero.Fs, stdout, stderr io.Writer) int {
	dir := params.Dir
	if dir == "" {
		dir = common.MusicDir()
	}

	files, err := media.ListAudioFiles(fsys, dir)
	if err != nil {
		fmt.Fprintf(stderr, "tracks: %v\n", err)
		return 1
	}
	if len(files) == 0 {
		fmt.Fprintf(stdout, "no audio files in %s\n", dir)
		return 0
	}

	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Title", "File", "Family"})
	for i, f := range files {
		t.AppendRow(table.Row{i + 1, media.CleanName(f), filepath.Base(f), media.Classify(f).String()})
	}
	t.Render()
	return 0
}
