package media

import (
	"path/filepath"
	"strings"
)

// Family is the decode family of an audio file. It decides which playback
// backend opens the file; it says nothing about whether the file is valid.
type Family int

const (
	// FrameCoded marks formats decoded as discrete compressed frames (the MP3 family).
	FrameCoded Family = iota
	// SampleCoded marks formats decoded directly into PCM sample frames
	// (WAV/FLAC/OGG family).
	SampleCoded
)

func (f Family) String() string {
	switch f {
	case FrameCoded:
		return "frame-coded"
	case SampleCoded:
		return "sample-coded"
	default:
		return "unknown"
	}
}

// Classify returns the decode family for a file name. Only the extension is
// inspected, case-insensitively. Unrecognized extensions (or none at all)
// fall back to SampleCoded and may still fail later at open time.
func Classify(name string) Family {
	if strings.EqualFold(filepath.Ext(name), ".mp3") {
		return FrameCoded
	}
	return SampleCoded
}
