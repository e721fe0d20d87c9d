package player

import (
	"fmt"
	"os"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
)

// frameDecoder is the compressed-frame backend (MP3 family). Mid-stream
// bitrate changes are absorbed inside the decoder and never surface as
// errors; position is queried from the decoder rather than accumulated, and
// total length may be unknown for streams without a reliable frame index.
type frameDecoder struct {
	streamer beep.StreamSeekCloser
	fmtv     beep.Format
}

func openFrameDecoder(path string) (*frameDecoder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding mp3 %q: %w", path, err)
	}
	return &frameDecoder{streamer: streamer, fmtv: format}, nil
}

func (d *frameDecoder) format() beep.Format {
	return d.fmtv
}

func (d *frameDecoder) readChunk(buf [][2]float64) (int, bool, error) {
	n, ok := d.streamer.Stream(buf)
	if !ok {
		if err := d.streamer.Err(); err != nil {
			return n, false, fmt.Errorf("mp3 decode: %w", err)
		}
		return n, true, nil
	}
	return n, false, nil
}

func (d *frameDecoder) seek(frame int) error {
	return d.streamer.Seek(frame)
}

func (d *frameDecoder) position() int {
	return d.streamer.Position()
}

func (d *frameDecoder) length() int {
	return d.streamer.Len()
}

// close releases the decoder, which owns and closes the underlying file.
func (d *frameDecoder) close() error {
	return d.streamer.Close()
}
