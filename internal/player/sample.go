package player

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// ErrUnsupportedContent is returned when no sample-coded decoder accepts a
// file's content.
var ErrUnsupportedContent = errors.New("unsupported audio content")

// sampleDecoder is the PCM-frame backend (WAV/FLAC/OGG family). Position is
// an accumulated frames-played counter, resynchronized against the decoder's
// own position after every seek.
type sampleDecoder struct {
	streamer beep.StreamSeekCloser
	fmtv     beep.Format
	played   int
}

func openSampleDecoder(path string) (*sampleDecoder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	streamer, format, err := decodeSample(f, path)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &sampleDecoder{streamer: streamer, fmtv: format}, nil
}

// decodeSample picks the sound-file decoder by extension. Unrecognized
// extensions fall back to trying each decoder in turn against the content,
// rewinding between attempts.
func decodeSample(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		s, format, err := wav.Decode(f)
		if err != nil {
			return nil, beep.Format{}, fmt.Errorf("decoding wav %q: %w", path, err)
		}
		return s, format, nil
	case ".flac":
		s, format, err := flac.Decode(f)
		if err != nil {
			return nil, beep.Format{}, fmt.Errorf("decoding flac %q: %w", path, err)
		}
		return s, format, nil
	case ".ogg":
		s, format, err := vorbis.Decode(f)
		if err != nil {
			return nil, beep.Format{}, fmt.Errorf("decoding ogg %q: %w", path, err)
		}
		return s, format, nil
	}

	attempts := []func(*os.File) (beep.StreamSeekCloser, beep.Format, error){
		func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) },
		func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(f) },
		func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return vorbis.Decode(f) },
	}
	for _, attempt := range attempts {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, beep.Format{}, fmt.Errorf("rewinding %q: %w", path, err)
		}
		if s, format, err := attempt(f); err == nil {
			return s, format, nil
		}
	}
	return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedContent, path)
}

func (d *sampleDecoder) format() beep.Format {
	return d.fmtv
}

func (d *sampleDecoder) readChunk(buf [][2]float64) (int, bool, error) {
	n, ok := d.streamer.Stream(buf)
	d.played += n
	if !ok {
		if err := d.streamer.Err(); err != nil {
			return n, false, fmt.Errorf("sample decode: %w", err)
		}
		return n, true, nil
	}
	return n, false, nil
}

func (d *sampleDecoder) seek(frame int) error {
	err := d.streamer.Seek(frame)
	d.played = d.streamer.Position()
	return err
}

func (d *sampleDecoder) position() int {
	return d.played
}

func (d *sampleDecoder) length() int {
	return d.streamer.Len()
}

// close releases the decoder, which owns and closes the underlying file.
func (d *sampleDecoder) close() error {
	return d.streamer.Close()
}
