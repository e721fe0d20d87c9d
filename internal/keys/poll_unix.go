//go:build linux || darwin

package keys

import (
	"os"

	"golang.org/x/sys/unix"
)

// KeyAvailable polls stdin with a zero timeout. It never suspends the caller,
// so the playback loop's cadence is bounded by decode and device writes only.
func (in *Input) KeyAvailable() bool {
	if in.prev == nil {
		return false
	}
	fds := []unix.PollFd{{Fd: int32(in.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	return err == nil && n > 0 && fds[0].Revents&unix.POLLIN != 0
}

// ReadKey fetches one buffered byte. Callers check KeyAvailable first, so the
// read returns immediately.
func (in *Input) ReadKey() (byte, error) {
	var buf [1]byte
	_, err := os.Stdin.Read(buf[:])
	return buf[0], err
}
