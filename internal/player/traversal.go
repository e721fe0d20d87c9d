package player

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/gen2brain/beeep"
	"github.com/mattn/go-runewidth"
)

// trackGap is the pause between tracks, giving the listener a breather and
// letting the terminal settle. Not applied after the last track.
const trackGap = 2 * time.Second

// maxRepeatRounds caps PlayRepeat.
const maxRepeatRounds = 10

// bannerWidth bounds the now-playing line.
const bannerWidth = 60

// Driver walks tracks in a variant-specific order, runs one playback session
// per entry, and decides continuation from each session's tri-state result.
// A user stop halts the whole traversal; a track error suspends between
// sessions for a continue-or-abort prompt.
type Driver struct {
	Console io.Writer    // defaults to os.Stdout
	Notify  bool         // desktop notification per track
	Log     *slog.Logger // defaults to slog.Default()

	play    func(t Track) Result
	confirm func(msg string) bool
	sleep   func(time.Duration)
}

func (d *Driver) setDefaults() {
	if d.Console == nil {
		d.Console = os.Stdout
	}
	if d.Log == nil {
		d.Log = slog.Default()
	}
	if d.play == nil {
		d.play = func(t Track) Result {
			return playTrack(t.Path, sessionDeps{console: d.Console, log: d.Log})
		}
	}
	if d.confirm == nil {
		d.confirm = func(msg string) bool {
			ok := false
			if err := survey.AskOne(&survey.Confirm{Message: msg}, &ok); err != nil {
				return false
			}
			return ok
		}
	}
	if d.sleep == nil {
		d.sleep = time.Sleep
	}
}

// PlaySequential plays tracks head to tail, once.
func (d *Driver) PlaySequential(tracks []Track) Result {
	return d.runAll(tracks)
}

// PlayOne plays exactly the entry at 1-based position pos.
func (d *Driver) PlayOne(tracks []Track, pos int) Result {
	d.setDefaults()
	if pos < 1 || pos > len(tracks) {
		fmt.Fprintf(d.Console, "no track at position %d\n", pos)
		return ResultError
	}
	return d.runAll(tracks[pos-1 : pos])
}

// PlayReverse plays tail to head: a forward traversal is pushed onto a stack
// and popped back out, so the underlying list is never mutated.
func (d *Driver) PlayReverse(tracks []Track) Result {
	var st trackStack
	for _, t := range tracks {
		st.push(t)
	}
	reversed := make([]Track, 0, st.len())
	for st.len() > 0 {
		reversed = append(reversed, st.pop())
	}
	return d.runAll(reversed)
}

// PlayRepeat replays the whole list rounds times (clamped to 1..10), the
// traversal pointer continuing across round boundaries: round N's first
// track follows round N-1's last in list order.
func (d *Driver) PlayRepeat(tracks []Track, rounds int) Result {
	if rounds < 1 {
		rounds = 1
	}
	if rounds > maxRepeatRounds {
		rounds = maxRepeatRounds
	}
	seq := make([]Track, 0, len(tracks)*rounds)
	for i := 0; i < len(tracks)*rounds; i++ {
		seq = append(seq, tracks[i%len(tracks)])
	}
	return d.runAll(seq)
}

func (d *Driver) runAll(tracks []Track) Result {
	d.setDefaults()
	if len(tracks) == 0 {
		fmt.Fprintln(d.Console, "nothing to play")
		return ResultSuccess
	}

	for i, t := range tracks {
		d.banner(i+1, len(tracks), t)
		res := d.play(t)
		switch res {
		case ResultStopped:
			fmt.Fprintln(d.Console, "stopped by user")
			return ResultStopped
		case ResultError:
			if i == len(tracks)-1 {
				return ResultError
			}
			if !d.confirm("Playback failed. Continue with the next track?") {
				return ResultError
			}
		}
		if i < len(tracks)-1 {
			d.sleep(trackGap)
		}
	}
	return ResultSuccess
}

func (d *Driver) banner(n, total int, t Track) {
	line := runewidth.Truncate(t.Display(), bannerWidth, "...")
	fmt.Fprintf(d.Console, "\n[%d/%d] %s\n", n, total, line)
	if d.Notify {
		if err := beeep.Notify("vinyl", "Now playing: "+line, ""); err != nil {
			d.Log.Debug("desktop notification failed", "error", err)
		}
	}
}

// trackStack is a slice-backed LIFO used to invert traversal order.
type trackStack struct {
	items []Track
}

func (s *trackStack) push(t Track) {
	s.items = append(s.items, t)
}

func (s *trackStack) pop() Track {
	t := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return t
}

func (s *trackStack) len() int {
	return len(s.items)
}
