//go:build !((linux && cgo) || windows || darwin)

package player

import (
	"github.com/gopxl/beep/v2"
)

// AudioAvailable indicates whether audio playback is supported in this build.
// Audio on Linux requires CGO for the native sound libraries.
const AudioAvailable = false

// openOutput always fails in builds without audio support; every session
// then reports an error at opening without entering playback.
func openOutput(rate beep.SampleRate) (outputStream, error) {
	return nil, ErrNoAudioDevice
}
