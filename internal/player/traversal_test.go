package player

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func namedTracks(titles ...string) []Track {
	tracks := make([]Track, 0, len(titles))
	for _, title := range titles {
		tracks = append(tracks, Track{Path: title + ".mp3", Title: title, Artist: "tester"})
	}
	return tracks
}

// recordingDriver returns a Driver whose playback is replaced by the given
// per-title results, recording play order. Sleeps are collected, prompts
// answered by confirmAnswer.
func recordingDriver(results map[string]Result, confirmAnswer bool) (*Driver, *[]string, *[]time.Duration, *int) {
	var played []string
	var sleeps []time.Duration
	confirms := 0
	d := &Driver{
		Console: &bytes.Buffer{},
		Log:     quietLog(),
		play: func(t Track) Result {
			played = append(played, t.Title)
			if r, ok := results[t.Title]; ok {
				return r
			}
			return ResultSuccess
		},
		confirm: func(string) bool {
			confirms++
			return confirmAnswer
		},
		sleep: func(d time.Duration) { sleeps = append(sleeps, d) },
	}
	return d, &played, &sleeps, &confirms
}

func TestPlaySequentialOrder(t *testing.T) {
	d, played, _, _ := recordingDriver(nil, true)

	if res := d.PlaySequential(namedTracks("A", "B", "C")); res != ResultSuccess {
		t.Fatalf("result = %v, want success", res)
	}
	if got := strings.Join(*played, ","); got != "A,B,C" {
		t.Errorf("play order = %s, want A,B,C", got)
	}
}

func TestPlayReverseOrder(t *testing.T) {
	d, played, _, _ := recordingDriver(nil, true)

	if res := d.PlayReverse(namedTracks("A", "B", "C")); res != ResultSuccess {
		t.Fatalf("result = %v, want success", res)
	}
	if got := strings.Join(*played, ","); got != "C,B,A" {
		t.Errorf("play order = %s, want C,B,A", got)
	}
}

func TestPlayRepeatPointerContinuesAcrossRounds(t *testing.T) {
	d, played, _, _ := recordingDriver(nil, true)

	if res := d.PlayRepeat(namedTracks("one", "two"), 3); res != ResultSuccess {
		t.Fatalf("result = %v, want success", res)
	}
	if got := strings.Join(*played, ","); got != "one,two,one,two,one,two" {
		t.Errorf("play order = %s, want the list three times over", got)
	}
}

func TestPlayRepeatClampsRounds(t *testing.T) {
	tests := []struct {
		name   string
		rounds int
		want   int
	}{
		{"zero becomes one", 0, 1},
		{"negative becomes one", -3, 1},
		{"above cap becomes ten", 99, maxRepeatRounds},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, played, _, _ := recordingDriver(nil, true)
			d.PlayRepeat(namedTracks("x"), tc.rounds)
			if len(*played) != tc.want {
				t.Errorf("rounds=%d played %d times, want %d", tc.rounds, len(*played), tc.want)
			}
		})
	}
}

func TestStopHaltsTraversal(t *testing.T) {
	d, played, _, _ := recordingDriver(map[string]Result{"B": ResultStopped}, true)

	res := d.PlaySequential(namedTracks("A", "B", "C"))

	if res != ResultStopped {
		t.Fatalf("result = %v, want stopped", res)
	}
	if got := strings.Join(*played, ","); got != "A,B" {
		t.Errorf("play order = %s, want traversal to halt at B", got)
	}
	if !strings.Contains(d.Console.(*bytes.Buffer).String(), "stopped by user") {
		t.Error("expected a stopped-by-user notice")
	}
}

func TestErrorPromptContinue(t *testing.T) {
	d, played, _, confirms := recordingDriver(map[string]Result{"A": ResultError}, true)

	res := d.PlaySequential(namedTracks("A", "B", "C"))

	if res != ResultSuccess {
		t.Fatalf("result = %v, want success when the rest plays through", res)
	}
	if got := strings.Join(*played, ","); got != "A,B,C" {
		t.Errorf("play order = %s, want traversal to continue past the failure", got)
	}
	if *confirms != 1 {
		t.Errorf("prompted %d times, want 1", *confirms)
	}
}

func TestErrorPromptAbort(t *testing.T) {
	d, played, _, _ := recordingDriver(map[string]Result{"A": ResultError}, false)

	res := d.PlaySequential(namedTracks("A", "B", "C"))

	if res != ResultError {
		t.Fatalf("result = %v, want error", res)
	}
	if len(*played) != 1 {
		t.Errorf("played %d tracks after abort, want 1", len(*played))
	}
}

func TestErrorOnLastTrackSkipsPrompt(t *testing.T) {
	d, _, _, confirms := recordingDriver(map[string]Result{"C": ResultError}, true)

	res := d.PlaySequential(namedTracks("A", "B", "C"))

	if res != ResultError {
		t.Fatalf("result = %v, want error", res)
	}
	if *confirms != 0 {
		t.Errorf("prompted %d times after the last track, want none", *confirms)
	}
}

func TestGapBetweenTracksNotAfterLast(t *testing.T) {
	d, _, sleeps, _ := recordingDriver(nil, true)

	d.PlaySequential(namedTracks("A", "B", "C"))

	if len(*sleeps) != 2 {
		t.Fatalf("slept %d times for 3 tracks, want 2", len(*sleeps))
	}
	for _, gap := range *sleeps {
		if gap != trackGap {
			t.Errorf("gap = %v, want %v", gap, trackGap)
		}
	}
}

func TestPlayOne(t *testing.T) {
	tests := []struct {
		name   string
		pos    int
		want   Result
		played string
	}{
		{"below range", 0, ResultError, ""},
		{"above range", 4, ResultError, ""},
		{"in range", 2, ResultSuccess, "B"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, played, _, _ := recordingDriver(nil, true)
			res := d.PlayOne(namedTracks("A", "B", "C"), tc.pos)
			if res != tc.want {
				t.Errorf("result = %v, want %v", res, tc.want)
			}
			if got := strings.Join(*played, ","); got != tc.played {
				t.Errorf("played %q, want %q", got, tc.played)
			}
		})
	}
}

func TestEmptyTraversal(t *testing.T) {
	d, played, _, _ := recordingDriver(nil, true)

	if res := d.PlaySequential(nil); res != ResultSuccess {
		t.Fatalf("result = %v, want success", res)
	}
	if res := d.PlayRepeat(nil, 5); res != ResultSuccess {
		t.Fatalf("repeat of nothing = %v, want success", res)
	}
	if len(*played) != 0 {
		t.Errorf("played %v for empty lists", *played)
	}
	if !strings.Contains(d.Console.(*bytes.Buffer).String(), "nothing to play") {
		t.Error("expected a nothing-to-play notice")
	}
}

func TestBannerTruncatesLongTitles(t *testing.T) {
	d, _, _, _ := recordingDriver(nil, true)
	long := strings.Repeat("very long title ", 10)

	d.PlaySequential([]Track{{Path: "x.mp3", Title: long, Artist: "tester"}})

	out := d.Console.(*bytes.Buffer).String()
	if !strings.Contains(out, "...") {
		t.Errorf("expected a truncated banner, got %q", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if len(line) > bannerWidth+16 {
			t.Errorf("banner line too wide: %q", line)
		}
	}
}

func TestTrackStack(t *testing.T) {
	var st trackStack
	for _, title := range []string{"first", "second", "third"} {
		st.push(Track{Title: title})
	}
	if st.len() != 3 {
		t.Fatalf("len = %d, want 3", st.len())
	}
	var popped []string
	for st.len() > 0 {
		popped = append(popped, st.pop().Title)
	}
	if got := strings.Join(popped, ","); got != "third,second,first" {
		t.Errorf("pop order = %s, want third,second,first", got)
	}
}
