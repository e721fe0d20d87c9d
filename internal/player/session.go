package player

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gopxl/beep/v2"

	"github.com/gigurra/vinyl/internal/keys"
)

// sessionState is the lifecycle of one track's playback.
type sessionState int

const (
	stateOpening sessionState = iota
	statePlaying
	statePaused
	stateDraining
	stateStopped
	stateErrored
	stateClosed
)

// pauseSleep bounds the busy-wait while paused; key polling continues at
// this cadence.
const pauseSleep = 100 * time.Millisecond

// keyPoller is the slice of the terminal input adapter the session needs.
type keyPoller interface {
	KeyAvailable() bool
	ReadKey() (byte, error)
}

// sessionDeps carries the session's collaborators. Zero fields are filled
// with production defaults; tests inject fakes.
type sessionDeps struct {
	openDecoder func(path string) (decoder, error)
	openOutput  func(rate beep.SampleRate) (outputStream, error)
	keys        keyPoller
	console     io.Writer
	sleep       func(time.Duration)
	log         *slog.Logger
}

func (d sessionDeps) withDefaults() sessionDeps {
	if d.openDecoder == nil {
		d.openDecoder = openDecoder
	}
	if d.openOutput == nil {
		d.openOutput = openOutput
	}
	if d.console == nil {
		d.console = os.Stdout
	}
	if d.sleep == nil {
		d.sleep = time.Sleep
	}
	if d.log == nil {
		d.log = slog.Default()
	}
	return d
}

// session drives one track from open to close: a single cooperative loop
// that decodes a chunk, writes it to the device, polls the keyboard and
// redraws progress, strictly in sequence. The blocking device write is the
// only flow control; pausing is the only sleep.
type session struct {
	dec      decoder
	out      outputStream
	keys     keyPoller
	console  io.Writer
	progress *progressBar
	log      *slog.Logger
	sleep    func(time.Duration)

	state sessionState
	rate  beep.SampleRate
	total int
	pos   int

	chunk [][2]float64
	pcm   []byte
}

// playTrack runs one complete decode/output session for path and reports the
// tri-state outcome. Decoder and output handles are released exactly once on
// every exit path, and the terminal mode is restored unconditionally when
// this call claimed it.
func playTrack(path string, deps sessionDeps) Result {
	deps = deps.withDefaults()
	log := deps.log.With("session", uuid.NewString()[:8], "path", path)

	if deps.keys == nil {
		in := keys.EnterRaw()
		defer in.Restore()
		deps.keys = in
	}

	dec, err := deps.openDecoder(path)
	if err != nil {
		log.Error("could not open track", "error", err)
		fmt.Fprintf(deps.console, "cannot play %s: %v\r\n", path, err)
		return ResultError
	}
	defer dec.close()

	format := dec.format()
	out, err := deps.openOutput(format.SampleRate)
	if err != nil {
		log.Error("could not open audio output", "error", err)
		fmt.Fprintf(deps.console, "audio output failed: %v\r\n", err)
		return ResultError
	}
	defer out.close()

	s := &session{
		dec:      dec,
		out:      out,
		keys:     deps.keys,
		console:  deps.console,
		progress: newProgressBar(deps.console),
		log:      log,
		sleep:    deps.sleep,
		state:    statePlaying,
		rate:     format.SampleRate,
		total:    dec.length(),
		chunk:    make([][2]float64, chunkFrames),
	}

	if s.total > 0 {
		fmt.Fprintf(deps.console, "length: %s\r\n", format.SampleRate.D(s.total).Round(time.Second))
	} else {
		log.Warn("track length unknown, progress degrades to indeterminate")
	}
	log.Debug("session playing", "rate", int(format.SampleRate), "totalFrames", s.total)

	res := s.run()
	log.Debug("session finished", "result", res.String())
	return res
}

// run executes the Playing/Paused loop until a terminal state is reached,
// then settles draining and reports the outcome.
func (s *session) run() Result {
	for s.state == statePlaying || s.state == statePaused {
		s.pollKey()

		switch s.state {
		case statePaused:
			s.sleep(pauseSleep)
			continue
		case statePlaying:
			// fall through to decode
		default:
			continue // stop requested; loop condition exits
		}

		n, eof, err := s.dec.readChunk(s.chunk)
		if err != nil {
			s.log.Error("decode failed", "error", err)
			fmt.Fprintf(s.console, "\r\ndecode error: %v\r\n", err)
			s.state = stateErrored
			continue
		}
		if n > 0 {
			s.pcm = encodePCM(s.chunk[:n], s.pcm)
			if werr := s.out.write(s.pcm); werr != nil {
				s.log.Error("device write failed", "error", werr)
				fmt.Fprintf(s.console, "\r\noutput error: %v\r\n", werr)
				s.state = stateErrored
				continue
			}
			s.pos = s.dec.position()
			s.progress.update(s.pos, s.total)
		}
		if eof {
			s.state = stateDraining
		}
		// n == 0 without eof is an empty read; the loop just goes around.
	}

	defer func() { s.state = stateClosed }()

	switch s.state {
	case stateDraining:
		if err := s.out.drain(); err != nil {
			s.log.Warn("drain failed", "error", err)
		}
		s.progress.finish()
		return ResultSuccess
	case stateStopped:
		s.progress.finish()
		return ResultStopped
	default:
		s.progress.finish()
		return ResultError
	}
}
