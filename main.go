package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/vinyl/cmd/play"
	"github.com/gigurra/vinyl/cmd/playlists"
	"github.com/gigurra/vinyl/cmd/tracks"
	"github.com/spf13/cobra"
)

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "vinyl",
		Short:   "Console playlists and audio playback",
		Version: appVersion(),
		SubCmds: []*cobra.Command{
			play.Cmd(),
			playlists.Cmd(),
			tracks.Cmd(),
		},
	}.Run()
}

func appVersion() string {
	bi, hasBuilInfo := debug.ReadBuildInfo()
	if !hasBuilInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
