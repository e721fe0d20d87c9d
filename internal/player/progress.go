package player

import (
	"fmt"
	"io"
	"strings"
)

// progressCells is the width of the bar's fill area.
const progressCells = 25

// progressBar renders a fixed-width completion bar in place via carriage
// return, redrawing only when the integer percentage moves. A seek can move
// the percentage backward; that still redraws.
type progressBar struct {
	w     io.Writer
	last  int
	drawn bool
}

func newProgressBar(w io.Writer) *progressBar {
	return &progressBar{w: w, last: -1}
}

// update recomputes the percentage for pos out of total frames. total <= 0
// means the length is unknown: a one-shot indeterminate notice replaces the
// bar and no percentage is tracked.
func (p *progressBar) update(pos, total int) {
	if total <= 0 {
		if !p.drawn {
			fmt.Fprint(p.w, "\rplaying... (duration unknown)")
			p.drawn = true
		}
		return
	}

	fraction := float64(pos) / float64(total)
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	percent := int(fraction * 100)
	if percent == p.last {
		return
	}
	p.last = percent
	p.drawn = true

	filled := percent * progressCells / 100
	bar := strings.Repeat("=", filled) + strings.Repeat(" ", progressCells-filled)
	fmt.Fprintf(p.w, "\r[%s] %3d%%", bar, percent)
}

// finish drops below the bar line once the session is over.
func (p *progressBar) finish() {
	if p.drawn {
		fmt.Fprint(p.w, "\r\n")
	}
}
