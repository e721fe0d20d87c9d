package player

import (
	"errors"
)

var (
	// ErrNoAudioDevice is returned by builds without audio support.
	ErrNoAudioDevice = errors.New("audio output is not available in this build")

	// ErrDeviceRate is returned when a track's sample rate differs from the
	// rate the device context was created with. The PCM backend permits one
	// context per process, and playback does no resampling.
	ErrDeviceRate = errors.New("audio device is locked to a different sample rate")
)

// outputStream is one per-track PCM sink. write blocks until the device
// accepts the chunk; that backpressure is the session's only flow control.
type outputStream interface {
	write(pcm []byte) error

	// drain blocks until audio buffered in the device has played out.
	drain() error

	close() error
}
