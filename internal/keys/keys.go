// Package keys puts the controlling terminal into raw single-character mode
// for the duration of a playback session and exposes a non-blocking key poll.
package keys

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// Input is one claim on the terminal's raw mode. The zero-ish Input returned
// when raw mode cannot be entered still satisfies the poll API but never
// reports a key, so playback simply runs without transport controls.
type Input struct {
	fd   int
	prev *term.State
}

// EnterRaw disables line buffering and echo on stdin, capturing the previous
// configuration. Failure to do so (stdin not a terminal, or the mode change
// rejected) is logged and degrades to a non-interactive Input rather than
// failing playback.
func EnterRaw() *Input {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		slog.Warn("stdin is not a terminal, transport controls disabled")
		return &Input{fd: fd}
	}
	prev, err := term.MakeRaw(fd)
	if err != nil {
		slog.Warn("could not enter raw terminal mode, transport controls disabled", "error", err)
		return &Input{fd: fd}
	}
	return &Input{fd: fd, prev: prev}
}

// Restore puts the terminal back into the mode captured by EnterRaw. It must
// run on every exit path of a session that entered raw mode; calling it when
// raw mode was never entered (or a second time) is a no-op.
func (in *Input) Restore() {
	if in.prev == nil {
		return
	}
	if err := term.Restore(in.fd, in.prev); err != nil {
		slog.Error("failed to restore terminal mode", "error", err)
	}
	in.prev = nil
}
