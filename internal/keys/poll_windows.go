//go:build windows

package keys

import (
	"bufio"
	"os"
)

// Windows consoles have no zero-timeout poll over os.Stdin, so a single
// process-wide reader goroutine feeds a buffered channel instead. It starts
// lazily on the first poll and lives for the rest of the process.
var winKeys chan byte

func ensureWinReader() {
	if winKeys != nil {
		return
	}
	winKeys = make(chan byte, 16)
	go func() {
		reader := bufio.NewReader(os.Stdin)
		for {
			b, err := reader.ReadByte()
			if err != nil {
				return
			}
			winKeys <- b
		}
	}()
}

// KeyAvailable reports whether the reader goroutine has buffered a key.
func (in *Input) KeyAvailable() bool {
	if in.prev == nil {
		return false
	}
	ensureWinReader()
	return len(winKeys) > 0
}

// ReadKey fetches one buffered byte. Callers check KeyAvailable first.
func (in *Input) ReadKey() (byte, error) {
	ensureWinReader()
	return <-winKeys, nil
}
