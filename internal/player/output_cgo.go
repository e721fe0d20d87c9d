//go:build (linux && cgo) || windows || darwin

package player

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/gopxl/beep/v2"
)

// AudioAvailable indicates whether audio playback is supported in this build.
const AudioAvailable = true

const drainTimeout = 10 * time.Second

var (
	otoMu   sync.Mutex
	otoCtx  *oto.Context
	otoRate beep.SampleRate
)

// openOutput opens a per-track PCM stream on the system audio device. The
// device context is created lazily from the first track's sample rate
// (stereo, 16-bit); later tracks with a different rate fail with
// ErrDeviceRate since the context cannot be recreated within one process.
func openOutput(rate beep.SampleRate) (outputStream, error) {
	otoMu.Lock()
	defer otoMu.Unlock()

	if otoCtx == nil {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   int(rate),
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			return nil, fmt.Errorf("opening audio device: %w", err)
		}
		<-ready
		otoCtx = ctx
		otoRate = rate
	} else if rate != otoRate {
		return nil, fmt.Errorf("%w: device %d Hz, track %d Hz", ErrDeviceRate, otoRate, rate)
	}

	// The player pulls from the pipe as the device drains, so writes to the
	// pipe block exactly when the device is saturated.
	pr, pw := io.Pipe()
	p := otoCtx.NewPlayer(pr)
	p.Play()
	return &otoStream{player: p, pr: pr, pw: pw}, nil
}

type otoStream struct {
	player *oto.Player
	pr     *io.PipeReader
	pw     *io.PipeWriter
}

func (o *otoStream) write(pcm []byte) error {
	if _, err := o.pw.Write(pcm); err != nil {
		return fmt.Errorf("writing to audio device: %w", err)
	}
	return nil
}

func (o *otoStream) drain() error {
	o.pw.Close()
	deadline := time.Now().Add(drainTimeout)
	for o.player.IsPlaying() && o.player.BufferedSize() > 0 {
		if time.Now().After(deadline) {
			return fmt.Errorf("audio device drain timed out after %s", drainTimeout)
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

func (o *otoStream) close() error {
	o.pw.Close()
	err := o.player.Close()
	o.pr.Close()
	if err != nil {
		return fmt.Errorf("closing audio device stream: %w", err)
	}
	return nil
}
