// Package player drives audio playback: per-format decoder backends behind
// one interface, a PCM output device, and a single cooperative session loop
// that multiplexes decoding, device writes, key polling and progress redraw.
package player

import (
	"github.com/gopxl/beep/v2"

	"github.com/gigurra/vinyl/internal/media"
)

// chunkFrames is the fixed number of decoded frames moved from decoder to
// output device per loop iteration. At common sample rates one chunk is well
// under a second of audio, which keeps the key-poll cadence responsive.
const chunkFrames = 8192

// decoder is the capability set both format families expose to the session.
// Positions and lengths are counted in decoded frames at the stream's own
// sample rate.
type decoder interface {
	format() beep.Format

	// readChunk fills buf with decoded frames and reports how many were
	// produced. n == 0 with eof == false is a valid empty read and does not
	// end the stream; eof == true means the stream is exhausted (n may still
	// be > 0 for the final chunk).
	readChunk(buf [][2]float64) (n int, eof bool, err error)

	seek(frame int) error
	position() int

	// length returns the total frame count, or <= 0 when unknown.
	length() int

	close() error
}

// openDecoder opens the backend matching the file's format family.
func openDecoder(path string) (decoder, error) {
	switch media.Classify(path) {
	case media.FrameCoded:
		return openFrameDecoder(path)
	default:
		return openSampleDecoder(path)
	}
}
