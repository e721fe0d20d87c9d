package player

import (
	"fmt"
	"time"
)

// seekStep is the transport seek distance, converted to frames at the
// session's sample rate when applied.
const seekStep = 10 * time.Second

// pollKey consumes at most one pending key per loop iteration. A single
// non-blocking read, never a drain-all: keys typed faster than the loop
// spins are handled on subsequent iterations.
func (s *session) pollKey() {
	if !s.keys.KeyAvailable() {
		return
	}
	b, err := s.keys.ReadKey()
	if err != nil {
		s.log.Warn("key read failed", "error", err)
		return
	}
	s.handleKey(b)
}

// handleKey applies one transport key. Unknown keys are ignored. Each
// effect prints one status line.
func (s *session) handleKey(b byte) {
	switch b {
	case ' ':
		switch s.state {
		case statePlaying:
			s.state = statePaused
			fmt.Fprint(s.console, "\r\n[paused] space resumes\r\n")
		case statePaused:
			s.state = statePlaying
			fmt.Fprint(s.console, "\r\n[resumed]\r\n")
		}
	case 's', 'S':
		s.state = stateStopped
		fmt.Fprint(s.console, "\r\n[stopped]\r\n")
	case 'j':
		s.seekBy(-seekStep)
	case 'k':
		s.seekBy(seekStep)
	}
}

// seekBy moves the decoder by a signed offset, clamped to the track bounds.
// Forward seeks are refused when total length is unknown, because the target
// cannot be bounded. A failed backward seek falls back to rewinding to the
// start. The position counter resynchronizes from the decoder afterwards so
// that progress stays consistent.
func (s *session) seekBy(offset time.Duration) {
	frames := s.rate.N(offset)
	switch {
	case frames >= 0:
		if s.total <= 0 {
			fmt.Fprint(s.console, "\r\n[seek refused: duration unknown]\r\n")
			return
		}
		target := s.pos + frames
		if target > s.total-1 {
			target = s.total - 1
		}
		if err := s.dec.seek(target); err != nil {
			s.log.Warn("forward seek failed", "error", err)
		}
	default:
		target := s.pos + frames
		if target < 0 {
			target = 0
		}
		if err := s.dec.seek(target); err != nil {
			s.log.Warn("backward seek failed, rewinding to start", "error", err)
			if err := s.dec.seek(0); err != nil {
				s.log.Warn("rewind failed", "error", err)
			}
		}
	}

	s.pos = s.dec.position()
	fmt.Fprintf(s.console, "\r\n[seek %+ds]\r\n", int(offset.Seconds()))
	s.progress.update(s.pos, s.total)
}
